// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: password digests and identifier generation.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool keeps reusable SHA-256 instances for password hashing.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// HashPassword returns the lowercase hex SHA-256 digest of password.
//
// The digest is unsalted and deterministic: equal passwords always produce
// equal digests, which is what the Accounts table stores and compares.
//
// Example usage:
//
//	digest := utils.HashPassword("admin")
//	// 8c6976e5b5410415bde908bd4dee15dfb167a9c873fc4bb8a81f6f2ab448a918
func HashPassword(password string) string {
	return hex.EncodeToString(Hash([]byte(password)))
}

// Hash computes a SHA-256 digest over data using a hasher pulled from the
// package pool.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}
