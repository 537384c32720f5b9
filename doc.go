// Package utf8codec provides a streaming, heap-free codec between UTF-8
// byte sequences and Unicode scalar values.
//
// # Overview
//
// The package is built around two small, fixed-size state machines:
//
//   - Decoder consumes bytes one at a time and emits scalar values
//     (runes), recovering from malformed input by substituting U+FFFD.
//   - Encoder consumes scalar values and emits the canonical (shortest)
//     UTF-8 byte sequence for each one, substituting malformed scalars.
//
// Both support a multi-buffer protocol: a partial sequence at the end of
// one buffer is completed with the first bytes of the next. Callers set
// SetLastBuffer(true) on the final buffer so the codec knows a truncated
// tail is final, not merely paused.
//
// # When to Use This Package
//
// Use it when input (or output) arrives as a sequence of buffers rather
// than one contiguous slice — network reads, chunked files, embedded
// UARTs — and each decoded rune (or encoded byte) must be available the
// instant it is complete, without buffering the whole stream.
//
// # When NOT to Use This Package
//
// This package does not perform grapheme clustering, normalization,
// collation, or case folding, and it does not convert to or from UTF-16.
// For a single in-memory buffer with no streaming requirement, a plain
// range over a Go string already does everything this package offers.
//
// # Basic Usage
//
//	var dec Decoder
//	dec.SetLastBuffer(true)
//	buf := []byte{0xE2, 0x82, 0xAC}
//	for len(buf) > 0 {
//	    rest, r, _, status := dec.DecodeRune(buf)
//	    if status == StatusNeedMore {
//	        break
//	    }
//	    fmt.Printf("%U\n", r)
//	    buf = rest
//	}
//
//	var enc Encoder
//	enc.Put('€')
//	for {
//	    b, ok := enc.Byte()
//	    if !ok {
//	        break
//	    }
//	    fmt.Printf("%02x ", b)
//	}
//
// # Performance Characteristics
//
// Decoding and encoding are O(n) in the number of input bytes/scalars,
// with O(1) state per Decoder/Encoder and zero heap allocation in the
// core path. The multi-buffer protocol adds no re-scanning of completed
// output: a byte that fails a continuation check is reclassified once,
// fresh, at the idle state, which is what bounds every malformed
// subpart to exactly one U+FFFD regardless of where buffers are split.
package utf8codec
