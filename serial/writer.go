// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package serial implements fixed-capacity binary buffers used to serialize
// address and script payloads. Multi-byte integers are big endian unless the
// explicit little-endian variant is used, strings carry a 16 bit length
// prefix and raw byte arrays carry a 32 bit length prefix.
package serial

import (
	"encoding/binary"
	"math"
)

// Writer serializes values into a buffer of fixed capacity. Writes that
// would exceed the capacity are dropped and set an error which persists
// until the writer is reset, so callers may chain any number of writes and
// only check the error once.
type Writer struct {
	buf []byte
	err error
}

// NewWriter returns a writer that serializes into a buffer of the given
// fixed capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// reserve extends the buffer by n bytes and returns the extension for the
// caller to fill in. It returns nil when the writer already failed or the
// extension does not fit.
func (w *Writer) reserve(n int) []byte {
	if w.err != nil {
		return nil
	}
	if len(w.buf)+n > cap(w.buf) {
		w.err = ErrWriteBeyondCapacity
		return nil
	}
	w.buf = w.buf[:len(w.buf)+n]
	return w.buf[len(w.buf)-n:]
}

// WriteUint8 appends a single byte to the buffer.
func (w *Writer) WriteUint8(val uint8) *Writer {
	if b := w.reserve(1); b != nil {
		b[0] = val
	}
	return w
}

// WriteUint16 appends a big-endian 16 bit integer to the buffer.
func (w *Writer) WriteUint16(val uint16) *Writer {
	if b := w.reserve(2); b != nil {
		binary.BigEndian.PutUint16(b, val)
	}
	return w
}

// WriteUint16LE appends a little-endian 16 bit integer to the buffer.
func (w *Writer) WriteUint16LE(val uint16) *Writer {
	if b := w.reserve(2); b != nil {
		binary.LittleEndian.PutUint16(b, val)
	}
	return w
}

// WriteUint32 appends a big-endian 32 bit integer to the buffer.
func (w *Writer) WriteUint32(val uint32) *Writer {
	if b := w.reserve(4); b != nil {
		binary.BigEndian.PutUint32(b, val)
	}
	return w
}

// WriteUint32LE appends a little-endian 32 bit integer to the buffer.
func (w *Writer) WriteUint32LE(val uint32) *Writer {
	if b := w.reserve(4); b != nil {
		binary.LittleEndian.PutUint32(b, val)
	}
	return w
}

// WriteUint64 appends a big-endian 64 bit integer to the buffer.
func (w *Writer) WriteUint64(val uint64) *Writer {
	if b := w.reserve(8); b != nil {
		binary.BigEndian.PutUint64(b, val)
	}
	return w
}

// WriteUint64LE appends a little-endian 64 bit integer to the buffer.
func (w *Writer) WriteUint64LE(val uint64) *Writer {
	if b := w.reserve(8); b != nil {
		binary.LittleEndian.PutUint64(b, val)
	}
	return w
}

// WriteBytes appends the raw bytes to the buffer with no length prefix.
func (w *Writer) WriteBytes(val []byte) *Writer {
	if b := w.reserve(len(val)); b != nil {
		copy(b, val)
	}
	return w
}

// WriteBytesWithLength appends a 32 bit big-endian length prefix followed by
// the raw bytes.
func (w *Writer) WriteBytesWithLength(val []byte) *Writer {
	w.WriteUint32(uint32(len(val)))
	return w.WriteBytes(val)
}

// WriteString appends a 16 bit big-endian length prefix followed by the
// string bytes.
func (w *Writer) WriteString(val string) *Writer {
	if len(val) > math.MaxUint16 {
		if w.err == nil {
			w.err = ErrStringTooLong
		}
		return w
	}
	w.WriteUint16(uint16(len(val)))
	return w.WriteBytes([]byte(val))
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int {
	return len(w.buf)
}

// Err returns the first error the writer ran into, or nil when every write
// so far fit the buffer.
func (w *Writer) Err() error {
	return w.err
}

// Bytes returns the serialized buffer and any error set by a previous
// write. The buffer must not be modified while the writer is still in use.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.buf, nil
}

// Reset empties the buffer and clears any error so the writer can be
// reused. The capacity is retained.
func (w *Writer) Reset() *Writer {
	w.buf = w.buf[:0]
	w.err = nil
	return w
}

// Reader returns a reader positioned at the start of the written bytes, or
// an error when any write failed.
func (w *Writer) Reader() (*Reader, error) {
	buf, err := w.Bytes()
	if err != nil {
		return nil, err
	}
	return NewReader(buf), nil
}
