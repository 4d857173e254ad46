// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serial

import "encoding/binary"

// Reader deserializes values from a byte buffer. Unlike the writer each
// read reports its error directly since a failed read usually means the
// remaining buffer cannot be interpreted either.
type Reader struct {
	buf    []byte
	offset int
}

// NewReader returns a reader over the passed buffer. The buffer is not
// copied and must not be modified while the reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// take returns the next n bytes of the buffer and advances the read offset.
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.offset+n > len(r.buf) {
		return nil, ErrReadBeyondBounds
	}
	b := r.buf[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads a big-endian 16 bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadUint16LE reads a little-endian 16 bit integer.
func (r *Reader) ReadUint16LE() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads a big-endian 32 bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadUint32LE reads a little-endian 32 bit integer.
func (r *Reader) ReadUint32LE() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads a big-endian 64 bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadUint64LE reads a little-endian 64 bit integer.
func (r *Reader) ReadUint64LE() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadBytes reads n raw bytes. The returned slice aliases the underlying
// buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.take(n)
}

// ReadBytesWithLength reads a 32 bit big-endian length prefix followed by
// that many raw bytes.
func (r *Reader) ReadBytesWithLength() ([]byte, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return r.take(int(n))
}

// ReadString reads a 16 bit big-endian length prefix followed by that many
// string bytes.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Offset returns the current read offset.
func (r *Reader) Offset() int {
	return r.offset
}

// SetOffset repositions the reader at the given offset. Offsets up to and
// including the buffer length are valid, the latter leaving nothing to
// read.
func (r *Reader) SetOffset(offset int) error {
	if offset < 0 || offset > len(r.buf) {
		return ErrInvalidOffset
	}
	r.offset = offset
	return nil
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.offset
}
