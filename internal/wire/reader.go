// Package wire implements the protobuf wire-format primitives needed to
// decode GTFS-Realtime feeds without a generated client. Only the field
// types the MTA feeds actually use are supported.
package wire

// Protobuf wire types.
const (
	TypeVarint          = 0
	TypeFixed64         = 1
	TypeLengthDelimited = 2
	TypeFixed32         = 5
)

// Reader is a cursor over an immutable byte buffer. All reads advance the
// cursor; reads that would run past the end of the buffer clamp to it, so a
// truncated feed yields short data rather than a panic.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf with the cursor at position 0. The buffer must not be
// mutated while the reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// HasMore reports whether any unread bytes remain.
func (r *Reader) HasMore() bool {
	return r.pos < len(r.buf)
}

// ReadVarint decodes a base-128 varint as an unsigned 64-bit integer.
// Callers guarantee HasMore via the enclosing length-delimited framing.
func (r *Reader) ReadVarint() uint64 {
	var v uint64
	var shift uint
	for r.pos < len(r.buf) {
		b := r.buf[r.pos]
		r.pos++
		v |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	return v
}

// ReadFixed32 reads 4 little-endian bytes. No field in the MTA feed subset
// carries a fixed32 value we use, so this exists for skip parity.
func (r *Reader) ReadFixed32() uint32 {
	var v uint32
	for i := 0; i < 4 && r.pos < len(r.buf); i++ {
		v |= uint32(r.buf[r.pos]) << (8 * i)
		r.pos++
	}
	return v
}

// ReadFixed64 reads 8 little-endian bytes.
func (r *Reader) ReadFixed64() uint64 {
	var v uint64
	for i := 0; i < 8 && r.pos < len(r.buf); i++ {
		v |= uint64(r.buf[r.pos]) << (8 * i)
		r.pos++
	}
	return v
}

// ReadLengthDelimited returns the next length bytes, clamped to the end of
// the buffer when the feed is truncated mid-message.
func (r *Reader) ReadLengthDelimited(length int) []byte {
	if length < 0 {
		return nil
	}
	end := r.pos + length
	if end > len(r.buf) {
		end = len(r.buf)
	}
	b := r.buf[r.pos:end]
	r.pos = end
	return b
}

// ReadString returns the next length bytes as a UTF-8 string.
func (r *Reader) ReadString(length int) string {
	return string(r.ReadLengthDelimited(length))
}

// SkipField consumes a field of the given wire type. It returns false for
// an unrecognized wire type, which tells the caller to stop decoding the
// enclosing message rather than guess at framing.
func (r *Reader) SkipField(wireType uint64) bool {
	switch wireType {
	case TypeVarint:
		r.ReadVarint()
	case TypeFixed64:
		r.advance(8)
	case TypeLengthDelimited:
		r.advance(int(r.ReadVarint()))
	case TypeFixed32:
		r.advance(4)
	default:
		return false
	}
	return true
}

func (r *Reader) advance(n int) {
	r.pos += n
	if r.pos > len(r.buf) {
		r.pos = len(r.buf)
	}
	if r.pos < 0 {
		r.pos = len(r.buf)
	}
}
