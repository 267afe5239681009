package encryption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)
	require.Len(t, key, KeySize)

	plaintext := []byte(`{"parties":{"licensor":"Sony Pictures"},"term":"5 years"}`)
	sealed, err := Encrypt(key, plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, sealed)
	assert.Greater(t, len(sealed), len(plaintext))

	opened, err := Decrypt(key, sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestEncryptProducesUniqueCiphertexts(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)

	plaintext := []byte("same input")
	a, err := Encrypt(key, plaintext)
	require.NoError(t, err)
	b, err := Encrypt(key, plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "nonces must differ between calls")
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)

	sealed, err := Encrypt(key, []byte("payload"))
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0xff

	_, err = Decrypt(key, sealed)
	assert.Error(t, err)
}

func TestDecryptRejectsWrongKey(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)
	other, err := NewKey()
	require.NoError(t, err)

	sealed, err := Encrypt(key, []byte("payload"))
	require.NoError(t, err)

	_, err = Decrypt(other, sealed)
	assert.Error(t, err)
}

func TestDecryptShortCiphertext(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)

	_, err = Decrypt(key, []byte{0x01, 0x02})
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestKeyLengthEnforced(t *testing.T) {
	_, err := Encrypt([]byte("short"), []byte("x"))
	assert.Error(t, err)
	_, err = Decrypt(make([]byte, 16), []byte("x"))
	assert.Error(t, err)
}

func TestKeyEncodeDecode(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)

	encoded := EncodeKey(key)
	decoded, err := DecodeKey(encoded)
	require.NoError(t, err)
	assert.Equal(t, key, decoded)

	_, err = DecodeKey("not base64!!")
	assert.Error(t, err)

	_, err = DecodeKey(EncodeKey([]byte("too short")))
	assert.Error(t, err)
}
