// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package security

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
)

var ErrInvalidCiphertext = errors.New("invalid ciphertext")

type CipherInterface interface {
	Encrypt(string) (string, error)
	Decrypt(string) (string, error)
}

var _ CipherInterface = (*Cipher)(nil)

// Cipher is AES-CBC with PKCS7 padding over a fixed key and IV, the
// ciphertext is base64 encoded.
type Cipher struct {
	block cipher.Block
	iv    []byte
}

func (c *Cipher) Encrypt(plaintext string) (string, error) {
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))

	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out, padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}

	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", ErrInvalidCiphertext
	}

	out := make([]byte, len(raw))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(out, raw)

	plain, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return "", err
	}

	return string(plain), nil
}

func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, size int) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, ErrInvalidCiphertext
	}

	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, ErrInvalidCiphertext
		}
	}

	return b[:len(b)-n], nil
}

// NewCipher builds a Cipher from a base64 key (16, 24 or 32 bytes) and a
// base64 16 byte IV.
func NewCipher(key, iv string) (*Cipher, error) {
	k, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key: %v", err)
	}

	v, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption iv: %v", err)
	}

	if len(v) != aes.BlockSize {
		return nil, fmt.Errorf("invalid encryption iv length %d", len(v))
	}

	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key: %v", err)
	}

	c := new(Cipher)
	c.block = block
	c.iv = v

	return c, nil
}
