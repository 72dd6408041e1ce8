package quick

import (
	"fmt"
	"math/rand"
	"reflect"
)

// Sizes is the list of input sizes exercised by Check. It covers every tail
// length of the 4 and 16 bytes block sizes, and the boundaries around larger
// powers of two.
var Sizes = [...]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
	20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
	30, 31, 32, 33, 34, 35, 36, 37, 38, 39,
	99, 100, 101,
	127, 128, 129,
	255, 256, 257,
	1000, 1023, 1024, 1025,
	2000, 2095, 2048, 2049,
	4000, 4095, 4096, 4097,
}

// Check is inspired by the standard quick.Check package, but enhances the
// API and tests inputs of larger sizes than the maximum of 50 hardcoded in
// testing/quick.
//
// The function f must accept a single argument of type []byte, in which case
// it is called with random keys of each length in Sizes, or [][]byte, in which
// case it is called with that many random keys of random lengths.
func Check(f interface{}) error {
	v := reflect.ValueOf(f)
	r := rand.New(rand.NewSource(0))

	makeKey := func(n int) []byte {
		b := make([]byte, n)
		r.Read(b)
		return b
	}

	var makeInput func(int) interface{}
	switch t := v.Type().In(0); {
	case t == reflect.TypeOf([]byte(nil)):
		makeInput = func(n int) interface{} { return makeKey(n) }

	case t == reflect.TypeOf([][]byte(nil)):
		makeInput = func(n int) interface{} {
			keys := make([][]byte, n)
			for i := range keys {
				keys[i] = makeKey(r.Intn(64))
			}
			return keys
		}
	}

	if makeInput == nil {
		panic("cannot run quick check on function with input of type " + v.Type().In(0).String())
	}

	for _, n := range Sizes {
		for i := 0; i < 3; i++ {
			in := makeInput(n)
			ok := v.Call([]reflect.Value{reflect.ValueOf(in)})
			if !ok[0].Bool() {
				return fmt.Errorf("test #%d: failed on input of size %d: %#v\n", i+1, n, in)
			}
		}
	}
	return nil
}
