// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// sealedPrefix marks values produced by Seal: "enc:v1:" + base64(nonce ‖ ciphertext).
const sealedPrefix = "enc:v1:"

// keySalt domain-separates the derived key. The passphrase is a single
// server-wide secret, so a fixed salt is enough.
var keySalt = []byte("netalert/server-config/v1")

// Argon2id parameters as recommended by OWASP.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

type aesSealer struct {
	gcm cipher.AEAD
}

// NewSealer derives an AES-256-GCM key from passphrase with Argon2id.
func NewSealer(passphrase string) (Sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptySecretKey
	}

	key := argon2.IDKey([]byte(passphrase), keySalt, argonTime, argonMemory, argonThreads, argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrSealingSecret, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrSealingSecret, err)
	}

	return &aesSealer{gcm: gcm}, nil
}

func (s *aesSealer) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrSealingSecret, err)
	}

	blob := s.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

func (s *aesSealer) Open(stored string) (string, error) {
	encoded, ok := strings.CutPrefix(stored, sealedPrefix)
	if !ok {
		return stored, nil
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrOpeningSecret, err)
	}

	nonceSize := s.gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrOpeningSecret)
	}

	// a wrong passphrase fails the authentication tag check here
	plaintext, err := s.gcm.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpeningSecret, err)
	}
	return string(plaintext), nil
}
