package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

var (
	ErrUnknownKeyVersion = errors.New("no key registered for ciphertext version")
	ErrDecryptFailed     = errors.New("ciphertext could not be decrypted")
)

// Box encrypts and decrypts message content with a small keyring of
// AES-256-GCM keys. Every ciphertext is tagged with the version of the key
// that produced it, so rotating the current key never requires
// re-encrypting history.
type Box struct {
	keys    map[int][]byte
	current int
}

// NewBox builds a Box from base64-encoded 32-byte keys keyed by version.
// current must name one of the supplied versions.
func NewBox(keys map[int]string, current int) (*Box, error) {
	if len(keys) == 0 {
		return nil, errors.New("crypto: keyring is empty")
	}

	decoded := make(map[int][]byte, len(keys))
	for version, b64 := range keys {
		key, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return nil, errors.Wrapf(err, "crypto: key version %d is not valid base64", version)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("crypto: key version %d must be 32 bytes, got %d", version, len(key))
		}
		decoded[version] = key
	}

	if _, ok := decoded[current]; !ok {
		return nil, fmt.Errorf("crypto: current version %d not present in keyring", current)
	}

	return &Box{keys: decoded, current: current}, nil
}

// Encrypt seals plaintext under the current key. The nonce is prepended to
// the returned ciphertext; the returned version must be stored alongside it.
func (b *Box) Encrypt(plaintext []byte) (ciphertext []byte, version int, err error) {
	aead, err := b.aead(b.current)
	if err != nil {
		return nil, 0, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, 0, errors.Wrap(err, "crypto: failed to generate nonce")
	}

	return aead.Seal(nonce, nonce, plaintext, nil), b.current, nil
}

// Decrypt opens a ciphertext produced by Encrypt under the given key
// version. Returns ErrUnknownKeyVersion when the version is not in the
// keyring and ErrDecryptFailed when authentication fails.
func (b *Box) Decrypt(ciphertext []byte, version int) ([]byte, error) {
	if _, ok := b.keys[version]; !ok {
		return nil, ErrUnknownKeyVersion
	}

	aead, err := b.aead(version)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < aead.NonceSize() {
		return nil, ErrDecryptFailed
	}

	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}

func (b *Box) aead(version int) (cipher.AEAD, error) {
	block, err := aes.NewCipher(b.keys[version])
	if err != nil {
		return nil, errors.Wrap(err, "crypto: failed to create AES cipher")
	}
	return cipher.NewGCM(block)
}
