// Package onehot encodes family labels as one-hot integer vectors and
// converts them to and from their two text forms: the bracketed list form
// stored in the mapping table ("[0, 1, 0]") and the comma-joined form written
// to matrix files ("0,1,0").
package onehot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"kinvec/internal/common"
)

// NaN is the serialized placeholder for a row whose vector is unresolved.
const NaN = "nan"

var ErrMalformed = errors.New("malformed vector")

type Vector []int

// New returns a vector of width n with position pos set.
func New(n, pos int) Vector {
	v := make(Vector, n)
	v[pos] = 1
	return v
}

// String renders the bracketed list form, e.g. "[1, 0, 0]".
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte(']')
	return b.String()
}

// Joined renders the comma-joined form, e.g. "1,0,0".
func (v Vector) Joined() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

// Hot returns the index of the set position, or -1 if v is not one-hot.
func (v Vector) Hot() int {
	hot := -1
	for i, x := range v {
		switch x {
		case 0:
		case 1:
			if hot >= 0 {
				return -1
			}
			hot = i
		default:
			return -1
		}
	}
	return hot
}

// Parse reads the bracketed list form back into a Vector.
func Parse(s string) (Vector, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 || t[0] != '[' || t[len(t)-1] != ']' {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	body := strings.TrimSpace(t[1 : len(t)-1])
	if body == "" {
		return nil, fmt.Errorf("%w: empty %q", ErrMalformed, s)
	}
	fields := strings.Split(body, ",")
	v := make(Vector, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: element %d of %q", ErrMalformed, i, s)
		}
		v[i] = n
	}
	return v, nil
}

// Encoder assigns each family the one-hot vector for its position in a
// fixed family order.
type Encoder struct {
	families *common.OrderedSet[string]
}

func NewEncoder(families *common.OrderedSet[string]) *Encoder {
	return &Encoder{families: families}
}

func (e *Encoder) Families() []string { return e.families.Items() }

// Encode returns the vector for family, or false if it is unknown.
func (e *Encoder) Encode(family string) (Vector, bool) {
	i, ok := e.families.Index(family)
	if !ok {
		return nil, false
	}
	return New(e.families.Len(), i), true
}
