/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security

import (
	"bytes"
	"crypto/sha256"
)

// DigestSha256 computes the SHA-256 digest of the concatenation of the buffers.
// It backs implicit digest and parameters digest name components.
func DigestSha256(buffers ...[]byte) []byte {
	sha := sha256.New()
	for _, buf := range buffers {
		sha.Write(buf)
	}
	return sha.Sum(nil)
}

// ValidateDigestSha256 returns whether digest is the SHA-256 digest of the concatenation of the buffers.
func ValidateDigestSha256(digest []byte, buffers ...[]byte) bool {
	return bytes.Equal(DigestSha256(buffers...), digest)
}
