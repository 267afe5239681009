// Package publisher turns a parsed agreement into a pinned, encrypted
// artifact: seal the JSON with a fresh per-job key, push the sealed bytes
// to content-addressed storage, and hand back the CID plus the key.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rightsledger/rights-parser/internal/encryption"
	"github.com/rightsledger/rights-parser/internal/ipfs"
)

// Result identifies a published artifact and the key that opens it.
type Result struct {
	Cid        string
	EncodedKey string
}

type Publisher struct {
	pinner ipfs.Pinner
	log    *slog.Logger
}

func New(pinner ipfs.Pinner, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{pinner: pinner, log: logger}
}

// Publish seals parsed and pins it under a name derived from jobID.
func (p *Publisher) Publish(ctx context.Context, jobID string, parsed json.RawMessage) (*Result, error) {
	key, err := encryption.NewKey()
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	sealed, err := encryption.Encrypt(key, parsed)
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	cid, err := p.pinner.Add(ctx, jobID+".bin", sealed)
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	p.log.Info("publish.ok", "job_id", jobID, "cid", cid, "sealed_bytes", len(sealed))
	return &Result{Cid: cid, EncodedKey: encryption.EncodeKey(key)}, nil
}
