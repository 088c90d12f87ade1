package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/hradmin/internal/common"
	"golang.org/x/crypto/argon2"
)

// SealingKeySize is the AES-256 key size produced by DeriveSealingKey.
const SealingKeySize = 32

// DeriveSealingKey derives the at-rest key for local records from the
// deployment secret and a per-database salt.
func DeriveSealingKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, SealingKeySize)
}

// Seal serializes v to JSON and encrypts it with AES-GCM under key. A new
// random nonce is generated for every call.
func Seal(v any, key []byte) (ciphertext, nonce []byte, err error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	defer common.WipeByteArray(plaintext)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	return aesgcm.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Open decrypts a Seal result and unmarshals it into v. Tampered data or a
// wrong key yields common.ErrDecryption.
func Open(ciphertext, nonce, key []byte, v any) error {
	aesgcm, err := newGCM(key)
	if err != nil {
		return err
	}
	if len(nonce) != aesgcm.NonceSize() {
		return errors.Join(common.ErrDecryption, errors.New("invalid nonce size"))
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return errors.Join(common.ErrDecryption, err)
	}
	defer common.WipeByteArray(plaintext)

	return json.Unmarshal(plaintext, v)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(common.ErrInvalidKey, err)
	}
	return cipher.NewGCM(block)
}
