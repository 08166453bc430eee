// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package cpio

// Sum computes the checksum of a payload: the sum of all bytes treated as
// unsigned values, truncated to the least-significant 32 bits. A non-zero
// checksum on an appended header selects the checksum archive variant.
func Sum(p []byte) Checksum {
	var sum uint32
	for _, b := range p {
		sum += uint32(b)
	}

	return Checksum(sum)
}
