package isupport

import "strings"

// CaseMap is a case-folding strategy for comparing nicknames and channel
// names. Two names are equal under IRC rules when their normalized forms are
// equal; callers must never compare raw strings.
type CaseMap int

// The four casemapping rules servers advertise.
const (
	// CaseMapASCII lowercases A-Z only.
	CaseMapASCII CaseMap = iota
	// CaseMapRFC1459 lowercases A-Z and additionally folds the extended
	// brackets: '[' to '{', ']' to '}', '\' to '|', and '~' to '^'.
	CaseMapRFC1459
	// CaseMapRFC1459Strict is RFC1459 without the '~' to '^' fold.
	CaseMapRFC1459Strict
	// CaseMapRFC7613 is a full locale-agnostic Unicode lowercase fold.
	// This is the protocol default.
	CaseMapRFC7613
)

// DefaultCaseMap is the casemapping assumed when a server advertises none.
const DefaultCaseMap = CaseMapRFC7613

// String returns the name the casemapping is advertised under.
func (cm CaseMap) String() string {
	switch cm {
	case CaseMapASCII:
		return "ascii"
	case CaseMapRFC1459:
		return "rfc1459"
	case CaseMapRFC1459Strict:
		return "rfc1459-strict"
	default:
		return "rfc7613"
	}
}

// Normalize returns name folded for case-insensitive comparison.
func (cm CaseMap) Normalize(name string) string {
	switch cm {
	case CaseMapASCII:
		return strings.Map(foldASCII, name)
	case CaseMapRFC1459:
		return strings.Map(foldRFC1459, name)
	case CaseMapRFC1459Strict:
		return strings.Map(foldRFC1459Strict, name)
	default:
		return strings.ToLower(name)
	}
}

func foldASCII(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func foldRFC1459Strict(c rune) rune {
	switch c {
	case '[':
		return '{'
	case ']':
		return '}'
	case '\\':
		return '|'
	}
	return foldASCII(c)
}

func foldRFC1459(c rune) rune {
	if c == '~' {
		return '^'
	}
	return foldRFC1459Strict(c)
}
