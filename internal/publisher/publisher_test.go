package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsledger/rights-parser/internal/encryption"
)

type capturingPinner struct {
	name string
	data []byte
	err  error
}

func (p *capturingPinner) Add(_ context.Context, name string, data []byte) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.name = name
	p.data = data
	return "QmSealed", nil
}

func TestPublishSealsBeforePinning(t *testing.T) {
	pin := &capturingPinner{}
	p := New(pin, nil)

	parsed := json.RawMessage(`{"territories": ["INDIA"], "financial": {"deal_value": "USD 2,500,000"}}`)
	res, err := p.Publish(context.Background(), "job-42", parsed)
	require.NoError(t, err)
	assert.Equal(t, "QmSealed", res.Cid)
	assert.Equal(t, "job-42.bin", pin.name)

	// the pinned bytes must not leak the plaintext
	assert.NotContains(t, string(pin.data), "INDIA")
	assert.NotContains(t, string(pin.data), "2,500,000")

	// the returned key opens what was pinned
	key, err := encryption.DecodeKey(res.EncodedKey)
	require.NoError(t, err)
	opened, err := encryption.Decrypt(key, pin.data)
	require.NoError(t, err)
	assert.JSONEq(t, string(parsed), string(opened))
}

func TestPublishPinFailure(t *testing.T) {
	pin := &capturingPinner{err: errors.New("ipfs add: connection refused")}
	p := New(pin, nil)

	_, err := p.Publish(context.Background(), "job-42", json.RawMessage(`{}`))
	assert.ErrorContains(t, err, "connection refused")
}
