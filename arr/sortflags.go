package arr

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortFlag selects how values are compared when sorting. The low bits pick a
// comparison mode; [SortFlagCase] may be OR-ed with [SortString] or
// [SortNatural] (and [SortLocaleString]) to ignore case.
type SortFlag int

const (
	// SortRegular compares with [Compare].
	SortRegular SortFlag = 0
	// SortNumeric compares the numeric value of both operands.
	SortNumeric SortFlag = 1
	// SortString compares string forms byte-wise.
	SortString SortFlag = 2
	// SortLocaleString compares string forms with the collation rules of
	// the locale set by [SetLocale].
	SortLocaleString SortFlag = 5
	// SortNatural compares string forms so that embedded numbers order by
	// value ("img2" < "img10").
	SortNatural SortFlag = 6
	// SortFlagCase makes string, natural and locale comparisons
	// case-insensitive.
	SortFlagCase SortFlag = 8
)

var sortLocale = struct {
	mu  sync.RWMutex
	tag language.Tag
}{tag: language.English}

// SetLocale sets the locale used by [SortLocaleString].
func SetLocale(tag language.Tag) {
	sortLocale.mu.Lock()
	defer sortLocale.mu.Unlock()
	sortLocale.tag = tag
}

// Locale returns the locale used by [SortLocaleString].
func Locale() language.Tag {
	sortLocale.mu.RLock()
	defer sortLocale.mu.RUnlock()
	return sortLocale.tag
}

// Comparator returns a three-way comparison function implementing flags.
// The returned function is not safe for concurrent use when flags include
// [SortLocaleString], because collators keep internal buffers; build one
// comparator per sort.
func Comparator(flags SortFlag) func(a, b any) int {
	fold := flags&SortFlagCase != 0
	switch flags &^ SortFlagCase {
	case SortNumeric:
		return func(a, b any) int {
			fa, _ := ToFloat(a)
			fb, _ := ToFloat(b)
			return compareFloat(fa, fb)
		}
	case SortString:
		if fold {
			return func(a, b any) int {
				return sign(strings.Compare(asciiLower(StringOf(a)), asciiLower(StringOf(b))))
			}
		}
		return func(a, b any) int { return sign(strings.Compare(StringOf(a), StringOf(b))) }
	case SortLocaleString:
		opts := []collate.Option{}
		if fold {
			opts = append(opts, collate.IgnoreCase)
		}
		c := collate.New(Locale(), opts...)
		return func(a, b any) int { return c.CompareString(StringOf(a), StringOf(b)) }
	case SortNatural:
		return func(a, b any) int { return NaturalCompare(StringOf(a), StringOf(b), fold) }
	}
	return Compare
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// NaturalCompare orders a and b the way a person would: runs of digits
// compare by numeric value, whitespace is skipped, and runs starting with a
// zero compare digit by digit as fractions. With fold set, ASCII letters
// compare case-insensitively.
func NaturalCompare(a, b string, fold bool) int {
	ai, bi := 0, 0
	// Leading zeros in front of a number are insignificant.
	for ai+1 < len(a) && a[ai] == '0' && isDigit(a[ai+1]) {
		ai++
	}
	for bi+1 < len(b) && b[bi] == '0' && isDigit(b[bi+1]) {
		bi++
	}

	for {
		for ai < len(a) && isSpace(a[ai]) {
			ai++
		}
		for bi < len(b) && isSpace(b[bi]) {
			bi++
		}
		if ai >= len(a) || bi >= len(b) {
			break
		}

		ca, cb := a[ai], b[bi]
		if isDigit(ca) && isDigit(cb) {
			var r, na, nb int
			if ca == '0' || cb == '0' {
				r, na, nb = compareLeft(a[ai:], b[bi:])
			} else {
				r, na, nb = compareRight(a[ai:], b[bi:])
			}
			if r != 0 {
				return r
			}
			ai += na
			bi += nb
			continue
		}

		if fold {
			ca, cb = asciiUpper(ca), asciiUpper(cb)
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		ai++
		bi++
	}

	switch {
	case ai >= len(a) && bi >= len(b):
		return 0
	case ai >= len(a):
		return -1
	}
	return 1
}

// compareRight compares two right-aligned digit runs: the longer run is the
// bigger number, otherwise the first differing digit decides.
func compareRight(a, b string) (int, int, int) {
	bias := 0
	i := 0
	for ; ; i++ {
		da := i < len(a) && isDigit(a[i])
		db := i < len(b) && isDigit(b[i])
		switch {
		case !da && !db:
			return bias, i, i
		case !da:
			return -1, i, i
		case !db:
			return 1, i, i
		}
		if bias == 0 {
			if a[i] < b[i] {
				bias = -1
			} else if a[i] > b[i] {
				bias = 1
			}
		}
	}
}

// compareLeft compares two left-aligned (fractional) digit runs: the first
// differing digit decides, and a shorter run is smaller.
func compareLeft(a, b string) (int, int, int) {
	for i := 0; ; i++ {
		da := i < len(a) && isDigit(a[i])
		db := i < len(b) && isDigit(b[i])
		switch {
		case !da && !db:
			return 0, i, i
		case !da:
			return -1, i, i
		case !db:
			return 1, i, i
		case a[i] < b[i]:
			return -1, i, i
		case a[i] > b[i]:
			return 1, i, i
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func asciiUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
