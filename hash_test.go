package mmr3_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/segmentio/mmr3"
)

func TestParseWidth(t *testing.T) {
	for _, bits := range []int{32, 128} {
		w, err := mmr3.ParseWidth(bits)
		if err != nil {
			t.Errorf("ParseWidth(%d): %v", bits, err)
		}
		if w.Bits() != bits {
			t.Errorf("ParseWidth(%d): got %d bits", bits, w.Bits())
		}
	}

	for _, bits := range []int{-32, 0, 1, 16, 31, 33, 64, 127, 129, 256} {
		if _, err := mmr3.ParseWidth(bits); !errors.Is(err, mmr3.ErrInvalidWidth) {
			t.Errorf("ParseWidth(%d): got error %v; want %v", bits, err, mmr3.ErrInvalidWidth)
		}
	}
}

func TestHashInvalidWidth(t *testing.T) {
	d, err := mmr3.HashBits(64, []byte("foo"))
	if !errors.Is(err, mmr3.ErrInvalidWidth) {
		t.Fatalf("got error %v; want %v", err, mmr3.ErrInvalidWidth)
	}
	if d != (mmr3.Digest{}) {
		t.Errorf("got non-zero digest on error: %v", d)
	}

	if _, err := mmr3.Hash(mmr3.Width(64), []byte("foo")); !errors.Is(err, mmr3.ErrInvalidWidth) {
		t.Errorf("got error %v; want %v", err, mmr3.ErrInvalidWidth)
	}
}

func TestHashDispatch(t *testing.T) {
	for _, tt := range []struct {
		scenario string
		bits     int
		key      string
		options  []mmr3.Option
		want     string
	}{
		{
			scenario: "32 bits default options",
			bits:     32,
			key:      "foo",
			want:     "4138058784",
		},
		{
			scenario: "32 bits signed with seed",
			bits:     32,
			key:      "bar",
			options:  []mmr3.Option{mmr3.Seed(100), mmr3.Signed(true)},
			want:     "68182433",
		},
		{
			scenario: "32 bits signed negative",
			bits:     32,
			key:      "foo",
			options:  []mmr3.Option{mmr3.Signed(true)},
			want:     "-156908512",
		},
		{
			scenario: "128 bits unsigned",
			bits:     128,
			key:      "baz",
			want:     "320138815729982638693876754053892644106",
		},
		{
			scenario: "128 bits signed from config",
			bits:     128,
			key:      "baz",
			options:  []mmr3.Option{&mmr3.Config{Signed: true}},
			want:     "-20143551190955824769497853377875567350",
		},
		{
			scenario: "later options override config",
			bits:     128,
			key:      "foo",
			options:  []mmr3.Option{&mmr3.Config{Seed: 7, Signed: true}, mmr3.Seed(100)},
			want:     "-5406129137293606925601101536342076629",
		},
	} {
		t.Run(tt.scenario, func(t *testing.T) {
			d, err := mmr3.HashBits(tt.bits, []byte(tt.key), tt.options...)
			if err != nil {
				t.Fatal(err)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("got %s; want %s", got, tt.want)
			}
			if got := d.Big().String(); got != tt.want {
				t.Errorf("big: got %s; want %s", got, tt.want)
			}
			if d.Width().Bits() != tt.bits {
				t.Errorf("width: got %v; want %d", d.Width(), tt.bits)
			}
		})
	}
}

func TestHashMatchesDirectCalls(t *testing.T) {
	key := []byte("hello world")

	d32, err := mmr3.Hash(mmr3.Width32, key, mmr3.Seed(9))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d32.Uint32(), mmr3.Hash32(key, 9); got != want {
		t.Errorf("32 bits: got %08x; want %08x", got, want)
	}
	if got, want := d32.Int32(), int32(mmr3.Hash32(key, 9)); got != want {
		t.Errorf("32 bits signed: got %d; want %d", got, want)
	}

	d128, err := mmr3.Hash(mmr3.Width128, key, mmr3.Seed(9))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d128.Uint128(), mmr3.Hash128x64(key, 9); got != want {
		t.Errorf("128 bits: got %v; want %v", got, want)
	}
}

func TestSignedUnsignedConsistency(t *testing.T) {
	two32 := new(big.Int).Lsh(big.NewInt(1), 32)
	two128 := new(big.Int).Lsh(big.NewInt(1), 128)

	for _, key := range []string{"", "a", "foo", "bar", "baz", "hello", "The quick brown fox jumps over the lazy dog"} {
		for _, seed := range []uint32{0, 1, 100, 0x9747b28c, 0xffffffff} {
			for _, tt := range []struct {
				width   mmr3.Width
				modulus *big.Int
			}{
				{mmr3.Width32, two32},
				{mmr3.Width128, two128},
			} {
				u, _ := mmr3.Hash(tt.width, []byte(key), mmr3.Seed(seed))
				s, _ := mmr3.Hash(tt.width, []byte(key), mmr3.Seed(seed), mmr3.Signed(true))

				m := new(big.Int).Mod(s.Big(), tt.modulus)
				if m.Cmp(u.Big()) != 0 {
					t.Errorf("%v %q seed=%d: signed %s mod 2^%d = %s; want %s", tt.width, key, seed, s.Big(), tt.width.Bits(), m, u.Big())
				}
			}
		}
	}
}

func TestDigestInt128SignExtends32Bits(t *testing.T) {
	d, err := mmr3.Hash(mmr3.Width32, []byte("foo"), mmr3.Signed(true))
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Int128().String(); got != "-156908512" {
		t.Errorf("got %s; want -156908512", got)
	}
	if got := d.Uint128(); got != (mmr3.Uint128{Lo: 0xf6a5c420}) {
		t.Errorf("got %v; want zero-extended digest", got)
	}
}
