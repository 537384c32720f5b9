package utf8codec

import "fmt"

func Example() {
	var dec Decoder
	dec.SetLastBuffer(true)

	buf := []byte{0xE2, 0x82, 0xAC, 0xF0, 0x9F, 0x98, 0x80} // "€😀"
	for len(buf) > 0 {
		rest, r, _, status := dec.DecodeRune(buf)
		if status != StatusOK {
			break
		}
		fmt.Printf("%U\n", r)
		buf = rest
	}

	var enc Encoder
	enc.Put('€')
	for {
		b, ok := enc.Byte()
		if !ok {
			break
		}
		fmt.Printf("%02x ", b)
	}
	fmt.Println()

	// Output:
	// U+20AC
	// U+1F600
	// e2 82 ac
}
