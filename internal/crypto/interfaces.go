// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_sealer_mock.go -package=mock

// TokenSealer protects the admin access token while it is stored locally.
// It knows nothing about the network or the database.
//
// Sealed format (base64 of):
//
//	salt (16 bytes) || nonce (12 bytes) || AES-GCM ciphertext
//
// The AES key is derived from the configured secret and the salt with
// Argon2id.
type TokenSealer interface {
	// Seal encrypts plaintext and returns the base64 blob.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It fails with ErrSealedTokenCorrupt when the blob
	// is malformed or was sealed under another secret.
	Open(sealed string) (string, error)
}
