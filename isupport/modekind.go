package isupport

// ModeKind groups channel mode letters by argument requirement, per the
// CHANMODES classification.
// Reference: https://datatracker.ietf.org/doc/html/draft-hardy-irc-isupport-00#section-4.3
type ModeKind struct {
	Kind  rune // 'A' through 'D'
	Modes string
}

// String describes the argument requirement of the group.
func (m ModeKind) String() string {
	switch m.Kind {
	case 'A':
		return "requires argument to modify & no argument to query"
	case 'B':
		return "requires argument"
	case 'C':
		return "requires argument to set & no argument to clear"
	case 'D':
		return "requires no argument"
	default:
		return "unknown mode type"
	}
}

// Has reports whether the mode letter belongs to this group.
func (m ModeKind) Has(mode rune) bool {
	for _, c := range m.Modes {
		if c == mode {
			return true
		}
	}
	return false
}
