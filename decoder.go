package utf8codec

// decoderState enumerates the FSM states from Sivonen's classification,
// kept distinct per spec rather than collapsed into a single "need N"
// state: the *a/*b variants carry a restricted range for their first
// continuation byte, which is what rejects over-long forms and
// surrogates at the byte level instead of after the scalar is
// assembled.
type decoderState uint8

const (
	stateIdle decoderState = iota // S0
	state1                        // S1: need 1 continuation, unrestricted
	state2                        // S2: need 2, unrestricted
	state2E0                      // S2a: need 2, first restricted to 0xA0..0xBF
	state2ED                      // S2b: need 2, first restricted to 0x80..0x9F
	state3                        // S3: need 3, unrestricted
	state3F0                      // S3a: need 3, first restricted to 0x90..0xBF
	state3F4                      // S3b: need 3, first restricted to 0x80..0x8F
)

// Decoder is a streaming UTF-8-to-scalar decoder. Its zero value is a
// ready-to-use decoder at the idle state. A Decoder occupies O(1) memory
// and performs no heap allocation.
type Decoder struct {
	state   decoderState
	accum   uint32 // partial scalar; meaningful only when need > 0
	need    uint8  // continuation bytes still expected (0..3)
	invalid bool   // sticky invalid-sequence flag
	last    bool   // last-buffer flag
	done    bool   // true once StatusEndOfStream has been observed

	// pending holds a byte that failed the current state's continuation
	// range check and must be reprocessed fresh at S0. Only used by the
	// Runes iterator, which (unlike the slice interface) has no slice
	// to rewind.
	pending    byte
	hasPending bool
}

// SetLastBuffer declares whether the next input supplied to this
// Decoder is the final buffer of the stream. Calling it with true and
// then supplying further non-empty input after end-of-stream has been
// observed is caller error; see ErrLastBufferClosed.
func (d *Decoder) SetLastBuffer(last bool) { d.last = last }

// HasInvalidSequence reports whether any malformed input has been
// observed since the Decoder was created or last cleared.
func (d *Decoder) HasInvalidSequence() bool { return d.invalid }

// ClearInvalidSequence resets the sticky invalid-sequence flag.
func (d *Decoder) ClearInvalidSequence() { d.invalid = false }

// decodeStep is the outcome of feeding one byte to the FSM.
type decodeStep struct {
	consumed bool // whether the input byte was consumed
	produced bool // whether an item (valid scalar or U+FFFD) was produced
	item     rune
}

// continuationRange reports the inclusive byte range the current state
// accepts for its next continuation byte. Only the state entered
// directly from a restricted lead (E0/ED/F0/F4) narrows this range;
// every later continuation in the sequence accepts the generic range,
// which is why this maps straight onto leadClass's restriction table.
func (d *Decoder) continuationRange() (lo, hi byte) {
	switch d.state {
	case state2E0:
		return firstContinuationRange(lead3E0)
	case state2ED:
		return firstContinuationRange(lead3ED)
	case state3F0:
		return firstContinuationRange(lead4F0)
	case state3F4:
		return firstContinuationRange(lead4F4)
	default:
		return firstContinuationRange(lead3)
	}
}

// nextContinuationState returns the state to move to after successfully
// consuming a non-final continuation byte (need is still > 0).
func nextContinuationState(s decoderState) decoderState {
	switch s {
	case state2, state2E0, state2ED:
		return state1
	case state3, state3F0, state3F4:
		return state2
	default:
		return stateIdle
	}
}

// stateForLead returns the state entered immediately after a valid
// multi-byte lead, with the accumulator already seeded by the caller.
func stateForLead(c leadClass) decoderState {
	switch c {
	case lead2:
		return state1
	case lead3E0:
		return state2E0
	case lead3ED:
		return state2ED
	case lead3:
		return state2
	case lead4F0:
		return state3F0
	case lead4F4:
		return state3F4
	case lead4:
		return state3
	default:
		return stateIdle
	}
}

// step feeds one byte to the FSM. On failure it emits U+FFFD and sets
// the sticky invalid flag. A byte that fails a continuation range check
// is always reported unconsumed so the caller reprocesses it at S0: a
// valid lead or ASCII byte then starts a fresh sequence, while a stray
// continuation or never-valid byte yields its own U+FFFD there. This
// gives the "maximal subpart" recovery its per-subpart replacement
// count. An invalid byte seen at S0 is consumed.
func (d *Decoder) step(b byte) decodeStep {
	if d.state == stateIdle {
		class, bits := classifyLead(b)
		switch class {
		case leadASCII:
			return decodeStep{consumed: true, produced: true, item: rune(b)}
		case leadInvalid:
			d.invalid = true
			return decodeStep{consumed: true, produced: true, item: RuneError}
		default:
			d.accum = uint32(bits)
			d.need = uint8(class.continuations())
			d.state = stateForLead(class)
			return decodeStep{consumed: true}
		}
	}

	lo, hi := d.continuationRange()
	if b < lo || b > hi {
		d.invalid = true
		d.state = stateIdle
		d.need = 0
		d.accum = 0
		return decodeStep{consumed: false, produced: true, item: RuneError}
	}

	d.accum = (d.accum << 6) | uint32(continuationBits(b))
	d.need--
	if d.need == 0 {
		r := rune(d.accum)
		d.state = stateIdle
		d.accum = 0
		return decodeStep{consumed: true, produced: true, item: r}
	}
	d.state = nextContinuationState(d.state)
	return decodeStep{consumed: true}
}

// DecodeRune decodes the next scalar value from buf. On success it
// returns the remaining, unconsumed suffix of buf, the decoded rune (or
// U+FFFD on substitution), the number of bytes consumed from buf, and
// StatusOK. If buf is exhausted before an item can be produced, it
// returns StatusNeedMore (more input required) or, if SetLastBuffer(true)
// was declared, StatusEndOfStream once the stream is fully drained.
func (d *Decoder) DecodeRune(buf []byte) (rest []byte, r rune, n int, status Status) {
	if d.done {
		if len(buf) == 0 {
			return buf, 0, 0, StatusEndOfStream
		}
		return buf, 0, 0, StatusClosed
	}

	i := 0
	for i < len(buf) {
		out := d.step(buf[i])
		if out.consumed {
			i++
		}
		if out.produced {
			return buf[i:], out.item, i, StatusOK
		}
	}

	if d.state == stateIdle {
		if d.last {
			d.done = true
			return buf[i:], 0, 0, StatusEndOfStream
		}
		return buf[i:], 0, 0, StatusNeedMore
	}

	// Buffer exhausted mid-sequence.
	if d.last {
		d.invalid = true
		d.state = stateIdle
		d.need = 0
		d.accum = 0
		return buf[i:], RuneError, i, StatusOK
	}
	return buf[i:], 0, i, StatusNeedMore
}

// RuneIter is a restartable, pull-based view of a Decoder over a
// caller-supplied byte source. A new RuneIter may be created for each
// input buffer while sharing the same Decoder, so a malformed or
// truncated sequence at a buffer boundary resumes correctly in the next
// RuneIter.
type RuneIter struct {
	d    *Decoder
	next func() (byte, bool)
}

// Runes returns a pull-based iterator over this Decoder's scalar
// stream, reading bytes from next. next must return (byte, true) while
// bytes remain in the current buffer and (0, false) once it is
// exhausted.
func (d *Decoder) Runes(next func() (byte, bool)) RuneIter {
	return RuneIter{d: d, next: next}
}

// pull returns the next byte to feed the FSM, preferring a byte that
// was pushed back by a previous resync over pulling from next.
func (it *RuneIter) pull() (byte, bool) {
	if it.d.hasPending {
		it.d.hasPending = false
		return it.d.pending, true
	}
	return it.next()
}

// Next returns the next decoded rune, or (0, false) if the current
// buffer is exhausted (call Done to distinguish "need another buffer"
// from "end of stream").
func (it *RuneIter) Next() (rune, bool) {
	d := it.d
	if d.done {
		return 0, false
	}
	for {
		b, ok := it.pull()
		if !ok {
			if d.state == stateIdle {
				if d.last {
					d.done = true
				}
				return 0, false
			}
			if d.last {
				d.invalid = true
				d.state = stateIdle
				d.need = 0
				d.accum = 0
				return RuneError, true
			}
			return 0, false
		}
		out := d.step(b)
		if !out.consumed {
			d.pending = b
			d.hasPending = true
		}
		if out.produced {
			return out.item, true
		}
	}
}

// Done reports whether this Decoder's stream has been fully consumed
// (SetLastBuffer(true) was declared and every byte has been processed).
func (it *RuneIter) Done() bool { return it.d.done }
