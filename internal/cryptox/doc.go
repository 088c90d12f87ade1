// Package cryptox holds the field cipher shared with the platform backend and
// the helpers that seal the local session record.
//
// # Field cipher
//
// Cipher encrypts short sensitive strings (phone numbers, passwords) with
// AES-CBC and PKCS7 padding. The IV is not random: it is the MD5 digest of
// the key, and the key bytes are the UTF-8 bytes of the configured key
// string, used without any stretching. The same (plaintext, key) pair always
// produces the same Base64 ciphertext, which is what lets the backend store
// and search these fields by exact ciphertext. Do not replace the IV with a
// random one: existing ciphertexts and server-side lookups would break.
//
// HMAC returns a hex HMAC-SHA256 of a value under the same key, for equality
// lookups that must not reveal the value.
//
// # Sealing
//
// Seal and Open protect the locally persisted session with AES-GCM under a
// key derived by DeriveSealingKey (Argon2id). Unlike the field cipher they use
// a fresh random nonce per call.
package cryptox
