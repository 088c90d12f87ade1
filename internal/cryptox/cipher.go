package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/hradmin/internal/common"
)

// Cipher is the deterministic field cipher bound to one deployment key.
// It is safe for concurrent use.
type Cipher struct {
	key   string
	block cipher.Block
	iv    []byte
}

// NewCipher binds a Cipher to key. The UTF-8 bytes of key are the AES key,
// so the key must be 16, 24 or 32 bytes long.
func NewCipher(key string) (*Cipher, error) {
	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("%w: key must be 16, 24 or 32 bytes, got %d", common.ErrInvalidKey, len(key))
	}
	return &Cipher{key: key, block: block, iv: DeriveIV(key)}, nil
}

// DeriveIV returns the first block of MD5(key). Every party sharing a key
// shares its IV.
func DeriveIV(key string) []byte {
	sum := md5.Sum([]byte(key))
	return sum[:aes.BlockSize]
}

// Encrypt returns the Base64 AES-CBC ciphertext of plaintext.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out, padded)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Any malformed input, wrong key or bad padding
// yields an error wrapping common.ErrDecryption, never partial plaintext.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64: %v", common.ErrDecryption, err)
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size", common.ErrDecryption, len(raw))
	}

	out := make([]byte, len(raw))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(out, raw)

	plain, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", common.ErrDecryption)
	}
	return string(plain), nil
}

// HMAC returns the lowercase hex HMAC-SHA256 of data keyed by the cipher key.
func (c *Cipher) HMAC(data string) string {
	return hmacHex(data, c.key)
}

// EncryptPassword encrypts a plaintext password for the credential exchange.
func (c *Cipher) EncryptPassword(password string) (string, error) {
	return c.Encrypt(password)
}

// Encrypt is a one-shot Cipher.Encrypt under an explicit key.
func Encrypt(plaintext, key string) (string, error) {
	c, err := NewCipher(key)
	if err != nil {
		return "", err
	}
	return c.Encrypt(plaintext)
}

// Decrypt is a one-shot Cipher.Decrypt under an explicit key.
func Decrypt(ciphertext, key string) (string, error) {
	c, err := NewCipher(key)
	if err != nil {
		return "", err
	}
	return c.Decrypt(ciphertext)
}

// HMAC is Cipher.HMAC under an explicit key. Any key length is accepted.
func HMAC(data, key string) string {
	return hmacHex(data, key)
}

func hmacHex(data, key string) string {
	m := hmac.New(sha256.New, []byte(key))
	m.Write([]byte(data))
	return hex.EncodeToString(m.Sum(nil))
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(b[:len(b):len(b)], bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, fmt.Errorf("%w: invalid padding", common.ErrDecryption)
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("%w: invalid padding", common.ErrDecryption)
		}
	}
	return b[:len(b)-n], nil
}
