// Package rangeset parses compact textual sets of small integers, such as
// "0,2-4,7-", into bitsets.
package rangeset

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// MaxBit is the highest member a Set can hold.
const MaxBit = 31

var (
	// ErrSyntax reports a malformed item or range.
	ErrSyntax = errors.New("invalid range syntax")
	// ErrEmpty reports a set that selects nothing.
	ErrEmpty = errors.New("empty set")
	// ErrOutOfRange reports members outside the permitted mask.
	ErrOutOfRange = errors.New("value out of range")
)

// Set is a bitset of the integers 0..MaxBit.
type Set uint32

// Range returns the set of all integers in [lo, hi]. Bounds are clamped to
// 0..MaxBit and an inverted range yields the empty set.
func Range(lo, hi int) Set {
	if lo < 0 {
		lo = 0
	}
	if hi > MaxBit {
		hi = MaxBit
	}
	var s Set
	for i := lo; i <= hi; i++ {
		s |= 1 << uint(i)
	}
	return s
}

// Has reports whether n is a member of the set.
func (s Set) Has(n int) bool {
	return n >= 0 && n <= MaxBit && s&(1<<uint(n)) != 0
}

// Union returns the members of either set.
func (s Set) Union(other Set) Set {
	return s | other
}

// Empty reports whether the set has no members.
func (s Set) Empty() bool {
	return s == 0
}

// Len returns the number of members.
func (s Set) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Members returns the members in ascending order.
func (s Set) Members() []int {
	members := make([]int, 0, s.Len())
	for rest := uint32(s); rest != 0; rest &= rest - 1 {
		members = append(members, bits.TrailingZeros32(rest))
	}
	return members
}

// String renders the set in canonical form, e.g. "0-2,5".
func (s Set) String() string {
	var parts []string
	members := s.Members()
	for i := 0; i < len(members); {
		j := i
		for j+1 < len(members) && members[j+1] == members[j]+1 {
			j++
		}
		if j == i {
			parts = append(parts, strconv.Itoa(members[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", members[i], members[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}

// highest returns the largest member, or -1 for the empty set.
func (s Set) highest() int {
	return bits.Len32(uint32(s)) - 1
}

// Parse reads a comma-separated list of items. An item is a single value
// "N", a closed range "N-M", a range open to the top of mask "N-", or a
// range starting at zero "-M". The result must be non-empty and contained
// in mask.
func Parse(text string, mask Set) (Set, error) {
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("%q: %w", text, ErrEmpty)
	}
	top := mask.highest()

	var result Set
	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			return 0, fmt.Errorf("%q: empty item: %w", text, ErrSyntax)
		}
		lo, hi, err := parseItem(item, top)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", text, err)
		}
		result |= Range(lo, hi)
	}

	if result.Empty() {
		return 0, fmt.Errorf("%q: %w", text, ErrEmpty)
	}
	if result&^mask != 0 {
		return 0, fmt.Errorf("%q: %w", text, ErrOutOfRange)
	}
	return result, nil
}

func parseItem(item string, top int) (int, int, error) {
	dash := strings.IndexByte(item, '-')
	if dash < 0 {
		n, err := parseMember(item)
		return n, n, err
	}

	loText := strings.TrimSpace(item[:dash])
	hiText := strings.TrimSpace(item[dash+1:])
	if loText == "" && hiText == "" {
		return 0, 0, fmt.Errorf("%q: %w", item, ErrSyntax)
	}

	lo, hi := 0, top
	var err error
	if loText != "" {
		if lo, err = parseMember(loText); err != nil {
			return 0, 0, err
		}
	}
	if hiText != "" {
		if hi, err = parseMember(hiText); err != nil {
			return 0, 0, err
		}
	} else if lo > top {
		return 0, 0, fmt.Errorf("%q: %w", item, ErrOutOfRange)
	}

	if lo > hi {
		return 0, 0, fmt.Errorf("%q: reversed range: %w", item, ErrSyntax)
	}
	return lo, hi, nil
}

func parseMember(text string) (int, error) {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, fmt.Errorf("%q: %w", text, ErrSyntax)
		}
	}
	n, err := strconv.ParseUint(text, 10, 8)
	if err != nil || n > MaxBit {
		return 0, fmt.Errorf("%q: %w", text, ErrOutOfRange)
	}
	return int(n), nil
}
