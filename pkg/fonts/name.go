package fonts

import (
	"strconv"
	"strings"

	"github.com/matzehuels/stackbadge/pkg/errors"
)

// Name is a parsed font name of the form <family>-<size>px-<weight>.
type Name struct {
	Family string
	Size   int
	Weight string
}

// ParseName splits a font name into its parts. The family may itself
// contain dashes; size and weight are taken from the end.
func ParseName(s string) (Name, error) {
	rest, weight, ok := cutLast(s, "-")
	if !ok || weight == "" {
		return Name{}, errors.New(errors.ErrCodeInvalidInput, "font name %q: missing weight", s)
	}
	family, sizeText, ok := cutLast(rest, "-")
	if !ok || family == "" {
		return Name{}, errors.New(errors.ErrCodeInvalidInput, "font name %q: missing family", s)
	}
	num, found := strings.CutSuffix(sizeText, "px")
	if !found {
		return Name{}, errors.New(errors.ErrCodeInvalidInput, "font name %q: size must end in px", s)
	}
	size, err := strconv.Atoi(num)
	if err != nil || size <= 0 {
		return Name{}, errors.New(errors.ErrCodeInvalidInput, "font name %q: invalid size %q", s, num)
	}
	return Name{Family: family, Size: size, Weight: weight}, nil
}

func (n Name) String() string {
	return n.Family + "-" + strconv.Itoa(n.Size) + "px-" + n.Weight
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
