package utf8codec

import "testing"

func TestClassifyLead(t *testing.T) {
	cases := []struct {
		b       byte
		class   leadClass
		bits    byte
		contLen int
	}{
		{0x00, leadASCII, 0x00, 0},
		{0x7F, leadASCII, 0x7F, 0},
		{0x80, leadInvalid, 0, 0},
		{0xBF, leadInvalid, 0, 0},
		{0xC0, leadInvalid, 0, 0},
		{0xC1, leadInvalid, 0, 0},
		{0xC2, lead2, 0x02, 1},
		{0xDF, lead2, 0x1F, 1},
		{0xE0, lead3E0, 0x00, 2},
		{0xE1, lead3, 0x01, 2},
		{0xEC, lead3, 0x0C, 2},
		{0xED, lead3ED, 0x0D, 2},
		{0xEE, lead3, 0x0E, 2},
		{0xEF, lead3, 0x0F, 2},
		{0xF0, lead4F0, 0x00, 3},
		{0xF1, lead4, 0x01, 3},
		{0xF3, lead4, 0x03, 3},
		{0xF4, lead4F4, 0x04, 3},
		{0xF5, leadInvalid, 0, 0},
		{0xFF, leadInvalid, 0, 0},
	}
	for _, c := range cases {
		class, bits := classifyLead(c.b)
		if class != c.class {
			t.Errorf("classifyLead(%#02x) class = %v, want %v", c.b, class, c.class)
		}
		if class != leadInvalid && bits != c.bits {
			t.Errorf("classifyLead(%#02x) bits = %#02x, want %#02x", c.b, bits, c.bits)
		}
		if got := class.continuations(); got != c.contLen {
			t.Errorf("class(%#02x).continuations() = %d, want %d", c.b, got, c.contLen)
		}
	}
}

func TestIsContinuation(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		want := b >= 0x80 && b <= 0xBF
		if got := isContinuation(byte(b)); got != want {
			t.Errorf("isContinuation(%#02x) = %v, want %v", b, got, want)
		}
	}
}

func TestContinuationBits(t *testing.T) {
	if got := continuationBits(0xBF); got != 0x3F {
		t.Errorf("continuationBits(0xBF) = %#02x, want 0x3F", got)
	}
	if got := continuationBits(0x80); got != 0x00 {
		t.Errorf("continuationBits(0x80) = %#02x, want 0x00", got)
	}
}

func TestFirstContinuationRange(t *testing.T) {
	cases := []struct {
		class  leadClass
		lo, hi byte
	}{
		{lead3E0, 0xA0, 0xBF},
		{lead3ED, 0x80, 0x9F},
		{lead4F0, 0x90, 0xBF},
		{lead4F4, 0x80, 0x8F},
		{lead3, 0x80, 0xBF},
		{lead2, 0x80, 0xBF},
	}
	for _, c := range cases {
		lo, hi := firstContinuationRange(c.class)
		if lo != c.lo || hi != c.hi {
			t.Errorf("firstContinuationRange(%v) = (%#02x,%#02x), want (%#02x,%#02x)", c.class, lo, hi, c.lo, c.hi)
		}
	}
}

func TestIsValidLeadOrASCII(t *testing.T) {
	valid := []byte{0x00, 0x7F, 0xC2, 0xDF, 0xE0, 0xED, 0xF0, 0xF4}
	invalid := []byte{0x80, 0xBF, 0xC0, 0xC1, 0xF5, 0xFF}
	for _, b := range valid {
		if !isValidLeadOrASCII(b) {
			t.Errorf("isValidLeadOrASCII(%#02x) = false, want true", b)
		}
	}
	for _, b := range invalid {
		if isValidLeadOrASCII(b) {
			t.Errorf("isValidLeadOrASCII(%#02x) = true, want false", b)
		}
	}
}
