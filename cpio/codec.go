// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package cpio

import (
	"fmt"
	"strconv"
)

// Fixed byte offsets of the hex fields inside the 110-byte header record.
const (
	fieldMagic     = 0
	fieldInode     = 6
	fieldMode      = 14
	fieldUID       = 22
	fieldGID       = 30
	fieldLinks     = 38
	fieldModTime   = 46
	fieldSize      = 54
	fieldDevMajor  = 62
	fieldDevMinor  = 70
	fieldRDevMajor = 78
	fieldRDevMinor = 86
	fieldNameSize  = 94
	fieldChecksum  = 102
)

// writeSession carries the sequential inode/dev defaults shared across one
// builder instance. It must never be shared between concurrent builds.
type writeSession struct {
	nextInode    int64
	nextDevMajor int64
	nextDevMinor int64
}

// encodeHeader serializes one header plus content size into a fixed record.
// Unset inode/dev fields take the session's current counter values; the
// counters advance once per call whether or not their values were used, so
// later default-valued entries stay distinct.
func encodeHeader(hdr Header, contentSize int64, s *writeSession) [headerSize]byte {
	var record [headerSize]byte
	for i := range record {
		record[i] = '0'
	}

	copy(record[fieldMagic:], magicPrefix)
	record[fieldMagic+5] = '1'
	if hdr.Checksum != 0 {
		record[fieldMagic+5] = '2'
	}

	inode := s.nextInode
	if hdr.Inode != nil {
		inode = *hdr.Inode
	}

	devMajor := s.nextDevMajor
	if hdr.DevMajor != nil {
		devMajor = *hdr.DevMajor
	}

	devMinor := s.nextDevMinor
	if hdr.DevMinor != nil {
		devMinor = *hdr.DevMinor
	}

	s.nextInode++
	s.nextDevMajor++
	s.nextDevMinor++

	putHex(record[fieldInode:], inode)
	putHex(record[fieldMode:], int64(hdr.Mode))
	putHex(record[fieldUID:], hdr.UID)
	putHex(record[fieldGID:], hdr.GID)
	putHex(record[fieldLinks:], hdr.Links)
	if hdr.ModTime != 0 {
		putHex(record[fieldModTime:], hdr.ModTime)
	}

	putHex(record[fieldSize:], contentSize)
	putHex(record[fieldDevMajor:], devMajor)
	putHex(record[fieldDevMinor:], devMinor)
	putHex(record[fieldRDevMajor:], hdr.RDevMajor)
	putHex(record[fieldRDevMinor:], hdr.RDevMinor)
	putHex(record[fieldNameSize:], int64(len(hdr.Name))+1)
	if hdr.Checksum != 0 {
		putHex(record[fieldChecksum:], int64(hdr.Checksum))
	}

	return record
}

// decodeHeader parses one fixed record into a header without its name.
// The name and content location are resolved by the scanner from the
// variable-length region that follows the record.
func decodeHeader(b []byte) (Header, int64, int64, error) {
	if len(b) < headerSize {
		return Header{}, 0, 0, fmt.Errorf("%w: short record (%d bytes)", ErrInvalidHeader, len(b))
	}

	if string(b[fieldMagic:fieldMagic+5]) != magicPrefix {
		return Header{}, 0, 0, fmt.Errorf("%w: bad magic %q", ErrInvalidHeader, b[fieldMagic:fieldMagic+6])
	}

	variantByte := b[fieldMagic+5]
	if variantByte != '1' && variantByte != '2' {
		return Header{}, 0, 0, fmt.Errorf("%w: bad magic %q", ErrInvalidHeader, b[fieldMagic:fieldMagic+6])
	}

	fields := [12]int64{}
	offsets := [12]int{
		fieldInode, fieldMode, fieldUID, fieldGID, fieldLinks, fieldModTime,
		fieldSize, fieldDevMajor, fieldDevMinor, fieldRDevMajor, fieldRDevMinor, fieldNameSize,
	}
	for i, off := range offsets {
		v, err := parseHex(b[off : off+8])
		if err != nil {
			return Header{}, 0, 0, fmt.Errorf("%w: field at offset %d: %v", ErrInvalidHeader, off, err)
		}

		fields[i] = v
	}

	hdr := Header{
		Mode:      FileMode(fields[1]),
		UID:       fields[2],
		GID:       fields[3],
		Links:     fields[4],
		ModTime:   fields[5],
		Size:      fields[6],
		RDevMajor: fields[9],
		RDevMinor: fields[10],
	}
	hdr.Inode = &fields[0]
	hdr.DevMajor = &fields[7]
	hdr.DevMinor = &fields[8]

	size := fields[6]
	nameSize := fields[11]
	if nameSize < 1 || nameSize > maxNameSize {
		return Header{}, 0, 0, fmt.Errorf("%w: name size %d out of range", ErrInvalidHeader, nameSize)
	}

	if variantByte == '2' {
		sum, err := parseHex(b[fieldChecksum : fieldChecksum+8])
		if err != nil {
			return Header{}, 0, 0, &ChecksumError{Header: hdr}
		}

		hdr.Checksum = Checksum(sum)
	}

	return hdr, size, nameSize, nil
}

// putHex renders the low 32 bits of v as 8 uppercase hex digits.
func putHex(dst []byte, v int64) {
	copy(dst, fmt.Sprintf("%08X", uint64(v)&0xFFFFFFFF))
}

// parseHex parses one fixed 8-digit hex field.
func parseHex(b []byte) (int64, error) {
	v, err := strconv.ParseUint(string(b), 16, 64)
	if err != nil {
		return 0, err
	}

	return int64(v), nil
}

// pad4 returns the padding needed to align n to a 4-byte boundary.
func pad4(n int64) int64 {
	return (4 - n%4) % 4
}
