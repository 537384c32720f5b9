package utf8codec

import "io"

// Reader wraps an io.Reader and decodes a UTF-8 byte stream into runes,
// tracking validity across the whole read history the way
// wsutil.UTF8Reader does: callers that use io.ReadFull-style helpers and
// so lose an individual error can still check Valid() at a natural
// boundary.
type Reader struct {
	src     io.Reader
	dec     Decoder
	scratch [1]byte
	byteSrc io.ByteReader // set when src also implements io.ByteReader

	// holdback carries a byte that a resync pushed back (it failed the
	// current sequence's continuation check and must be reprocessed
	// fresh at idle) so the next call re-feeds it instead of pulling a
	// new byte from src and silently dropping it.
	holdback    byte
	hasHoldback bool

	accepted int // bytes pulled from src to produce the most recent rune
}

// NewReader creates a Reader that decodes from r. r is assumed to be
// exhausted at EOF (the final buffer); Reader sets SetLastBuffer(true)
// on its internal Decoder accordingly once r reports io.EOF.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{src: r}
	if br, ok := r.(io.ByteReader); ok {
		rd.byteSrc = br
	}
	return rd
}

// Reset reconfigures the Reader to read from r, clearing all decoder
// state as if newly constructed.
func (r *Reader) Reset(src io.Reader) {
	r.src = src
	r.dec = Decoder{}
	r.byteSrc = nil
	r.hasHoldback = false
	r.accepted = 0
	if br, ok := src.(io.ByteReader); ok {
		r.byteSrc = br
	}
}

// Valid reports whether every byte read so far formed well-formed
// UTF-8; it is the negation of the decoder's sticky invalid flag.
func (r *Reader) Valid() bool { return !r.dec.HasInvalidSequence() }

// Accepted returns the number of bytes pulled from the underlying
// source to produce the rune returned by the most recent ReadRune
// call (0 before the first call).
func (r *Reader) Accepted() int { return r.accepted }

func (r *Reader) readByte() (byte, error) {
	if r.byteSrc != nil {
		return r.byteSrc.ReadByte()
	}
	n, err := r.src.Read(r.scratch[:])
	if n == 1 {
		return r.scratch[0], nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return 0, err
}

// ReadRune implements io.RuneReader. It reads exactly the bytes needed
// to produce one scalar value (substituting U+FFFD for malformed
// input), returning io.EOF once the underlying reader is exhausted and
// no further scalar can be produced.
//
// A byte that fails the current sequence's continuation check is
// reported by the Decoder as unconsumed (it may itself start a fresh
// sequence); ReadRune holds such a byte back and re-feeds it on the
// next call instead of discarding it, matching the resync behavior of
// the slice and iterator interfaces.
func (r *Reader) ReadRune() (ru rune, size int, err error) {
	pulled := 0
	fed := 0 // bytes the Decoder consumed toward this rune
	for {
		var b byte
		if r.hasHoldback {
			r.hasHoldback = false
			b = r.holdback
		} else {
			var rerr error
			b, rerr = r.readByte()
			if rerr != nil {
				if rerr == io.EOF {
					r.dec.SetLastBuffer(true)
					var buf []byte
					_, ru, _, status := r.dec.DecodeRune(buf)
					switch status {
					case StatusOK:
						r.accepted = pulled
						return ru, fed, nil
					case StatusEndOfStream:
						return 0, 0, io.EOF
					case StatusClosed:
						return 0, 0, ErrLastBufferClosed
					default:
						return 0, 0, io.ErrUnexpectedEOF
					}
				}
				return 0, 0, rerr
			}
			pulled++
		}

		rest, item, _, status := r.dec.DecodeRune([]byte{b})
		fed++
		if len(rest) > 0 {
			r.holdback = rest[0]
			r.hasHoldback = true
			fed--
		}
		switch status {
		case StatusOK:
			r.accepted = pulled
			return item, fed, nil
		case StatusNeedMore:
			continue
		case StatusClosed:
			return 0, 0, ErrLastBufferClosed
		default:
			return 0, 0, io.ErrUnexpectedEOF
		}
	}
}
