package utf8codec

// leadClass identifies the structural category of a UTF-8 lead byte.
// The E0/ED/F0/F4 variants exist so the decoder can select the correct
// restricted first-continuation range without a second pass over the
// assembled scalar: collapsing them into a single "3-byte"/"4-byte"
// class would let over-long forms and surrogates survive until after
// the scalar is assembled, placing replacement characters at the wrong
// position during resync.
type leadClass uint8

const (
	leadInvalid leadClass = iota
	leadASCII
	lead2    // 0xC2..0xDF
	lead3E0  // 0xE0: first continuation restricted to 0xA0..0xBF
	lead3ED  // 0xED: first continuation restricted to 0x80..0x9F
	lead3    // 0xE1..0xEC, 0xEE..0xEF
	lead4F0  // 0xF0: first continuation restricted to 0x90..0xBF
	lead4F4  // 0xF4: first continuation restricted to 0x80..0x8F
	lead4    // 0xF1..0xF3
)

// continuations reports how many continuation bytes a lead class demands.
func (c leadClass) continuations() int {
	switch c {
	case leadASCII:
		return 0
	case lead2:
		return 1
	case lead3E0, lead3ED, lead3:
		return 2
	case lead4F0, lead4F4, lead4:
		return 3
	default:
		return 0
	}
}

// classifyLead maps a lead byte to its class and the data bits it
// contributes to the accumulator. dataBits is meaningless for
// leadInvalid.
func classifyLead(b byte) (class leadClass, dataBits byte) {
	switch {
	case b <= 0x7F:
		return leadASCII, b
	case b >= 0xC2 && b <= 0xDF:
		return lead2, b & 0x1F
	case b == 0xE0:
		return lead3E0, b & 0x0F
	case b == 0xED:
		return lead3ED, b & 0x0F
	case b >= 0xE1 && b <= 0xEF: // excludes 0xE0, 0xED handled above
		return lead3, b & 0x0F
	case b == 0xF0:
		return lead4F0, b & 0x07
	case b == 0xF4:
		return lead4F4, b & 0x07
	case b >= 0xF1 && b <= 0xF3:
		return lead4, b & 0x07
	default: // 0x80..0xBF, 0xC0, 0xC1, 0xF5..0xFF
		return leadInvalid, 0
	}
}

// isContinuation reports whether b is a generic UTF-8 continuation byte
// (0x80..0xBF).
func isContinuation(b byte) bool {
	return b >= 0x80 && b <= 0xBF
}

// continuationBits extracts the 6 data bits carried by a continuation
// byte. The caller must have already verified isContinuation(b).
func continuationBits(b byte) byte {
	return b & 0x3F
}

// isValidLeadOrASCII reports whether b could start a fresh sequence.
// The decoder does not consult it: it always pushes back a byte that
// fails a continuation range check and lets idle re-classify it. It is
// kept for callers that want to reason about a byte outside of a
// Decoder.
func isValidLeadOrASCII(b byte) bool {
	class, _ := classifyLead(b)
	return class != leadInvalid
}

// firstContinuationRange returns the inclusive byte range permitted for
// the FIRST continuation byte following the given lead class. For
// classes without a restricted first continuation, the general
// continuation range (0x80..0xBF) applies.
func firstContinuationRange(class leadClass) (lo, hi byte) {
	switch class {
	case lead3E0:
		return 0xA0, 0xBF
	case lead3ED:
		return 0x80, 0x9F
	case lead4F0:
		return 0x90, 0xBF
	case lead4F4:
		return 0x80, 0x8F
	default:
		return 0x80, 0xBF
	}
}
