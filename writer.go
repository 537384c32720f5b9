package utf8codec

import "io"

// Writer wraps an io.Writer and encodes a stream of scalar values into
// UTF-8 bytes, flushing each scalar's canonical encoding (or U+FFFD's
// encoding, on substitution) through the underlying writer as it is
// produced.
type Writer struct {
	dst io.Writer
	enc Encoder
	buf [4]byte
}

// NewWriter creates a Writer that flushes encoded UTF-8 bytes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{dst: w}
}

// Reset reconfigures the Writer to write to w, clearing all encoder
// state as if newly constructed.
func (w *Writer) Reset(dst io.Writer) {
	w.dst = dst
	w.enc = Encoder{}
}

// Valid reports whether every scalar written so far was valid; it is
// the negation of the encoder's sticky invalid flag.
func (w *Writer) Valid() bool { return !w.enc.HasInvalidSequence() }

// WriteRune encodes r to its canonical UTF-8 form (or substitutes
// U+FFFD if r is not a valid scalar) and writes the resulting bytes to
// the underlying io.Writer.
func (w *Writer) WriteRune(r rune) (n int, err error) {
	w.enc.Put(r)
	for {
		b, ok := w.enc.Byte()
		if !ok {
			return n, nil
		}
		w.buf[0] = b
		written, werr := w.dst.Write(w.buf[:1])
		n += written
		if werr != nil {
			return n, werr
		}
	}
}

// WriteRunes encodes and writes every rune in s, stopping at the first
// write error.
func (w *Writer) WriteRunes(s []rune) (n int, err error) {
	for _, r := range s {
		written, werr := w.WriteRune(r)
		n += written
		if werr != nil {
			return n, werr
		}
	}
	return n, nil
}
