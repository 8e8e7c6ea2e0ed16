package onehot

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"kinvec/internal/common"
)

func TestTextForms(t *testing.T) {
	v := New(3, 0)
	if got := v.String(); got != "[1, 0, 0]" {
		t.Fatalf("String = %q", got)
	}
	if got := v.Joined(); got != "1,0,0" {
		t.Fatalf("Joined = %q", got)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Vector
		bad  bool
	}{
		{in: "[0, 1, 0]", want: Vector{0, 1, 0}},
		{in: " [1,0] ", want: Vector{1, 0}},
		{in: "[1]", want: Vector{1}},
		{in: "[]", bad: true},
		{in: "1, 0", bad: true},
		{in: "[1, x]", bad: true},
		{in: "nan", bad: true},
		{in: "", bad: true},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.bad {
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Parse(%q): want ErrMalformed, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseRoundTripsString(t *testing.T) {
	v := New(5, 3)
	got, err := Parse(v.String())
	if err != nil || !cmp.Equal(v, got) {
		t.Fatalf("round trip: %v %v", got, err)
	}
}

func TestHot(t *testing.T) {
	if New(4, 2).Hot() != 2 {
		t.Fatalf("Hot of one-hot")
	}
	if (Vector{1, 1}).Hot() != -1 || (Vector{0, 0}).Hot() != -1 || (Vector{2}).Hot() != -1 {
		t.Fatalf("non one-hot vectors must report -1")
	}
}

func TestEncoderOneHotPerFamily(t *testing.T) {
	enc := NewEncoder(common.NewOrderedSet("TK", "TKL", "CMGC", "AGC"))
	if n := len(enc.Families()); n != 4 {
		t.Fatalf("width %d", n)
	}
	seen := map[int]string{}
	for _, fam := range enc.Families() {
		v, _ := enc.Encode(fam)
		if len(v) != 4 {
			t.Fatalf("%s: width %d", fam, len(v))
		}
		sum := 0
		for _, x := range v {
			sum += x
		}
		h := v.Hot()
		if sum != 1 || h < 0 {
			t.Fatalf("%s: not one-hot: %v", fam, v)
		}
		if other, dup := seen[h]; dup {
			t.Fatalf("%s and %s share index %d", fam, other, h)
		}
		seen[h] = fam
	}
	if v, ok := enc.Encode("TKL"); !ok || v.Hot() != 1 {
		t.Fatalf("TKL should be index 1 (first-seen order), got %v", v)
	}
	if _, ok := enc.Encode("OTHER"); ok {
		t.Fatalf("unknown family must not encode")
	}
}
