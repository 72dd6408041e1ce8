package mmr3_test

import (
	"fmt"

	"github.com/segmentio/mmr3"
)

func ExampleHash32() {
	h := mmr3.Hash32([]byte("foo"), 0)
	fmt.Printf("0x%08x %d\n", h, int32(h))
	// Output: 0xf6a5c420 -156908512
}

func ExampleHash128x64() {
	h := mmr3.Hash128x64([]byte("foo"), 0)
	fmt.Println(h)
	// Output: 168394135621993849475852668931176482145
}

func ExampleHashBits() {
	d, err := mmr3.HashBits(128, []byte("baz"), mmr3.Signed(true))
	if err != nil {
		panic(err)
	}
	fmt.Println(d)

	_, err = mmr3.HashBits(64, []byte("baz"))
	fmt.Println(err)
	// Output:
	// -20143551190955824769497853377875567350
	// hash width should be either 32 or 128 bits: 64
}
