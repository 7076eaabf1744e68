package isupport

import "log"

// Implicit single-letter payloads for keys that may be advertised without a
// value.
const (
	defaultBanExceptionLetter    = 'e'
	defaultCallerIDLetter        = 'g'
	defaultDeafLetter            = 'D'
	defaultInviteExceptionLetter = 'I'
)

// DefaultChanModes is the channel mode classification assumed when the
// server advertises none.
// Reference: https://modern.ircdocs.horse/#channel-modes
var DefaultChanModes = []ModeKind{
	{Kind: 'A', Modes: "beI"},
	{Kind: 'B', Modes: "k"},
	{Kind: 'C', Modes: "l"},
	{Kind: 'D', Modes: "imstn"},
}

// DefaultChanTypes is the channel prefix set assumed when the server
// advertises none.
var DefaultChanTypes = []rune{'#', '&'}

// DefaultPrefix is the membership prefix ranking assumed when the server
// advertises none, in descending privilege order.
// Reference: https://modern.ircdocs.horse/#channel-membership-prefixes
var DefaultPrefix = []PrefixMap{
	{Mode: 'q', Prefix: '~'},
	{Mode: 'a', Prefix: '&'},
	{Mode: 'o', Prefix: '@'},
	{Mode: 'h', Prefix: '%'},
	{Mode: 'v', Prefix: '+'},
}

// corrupt reports a stored value whose type disagrees with its key. The
// entry is treated as absent; nothing here is ever fatal.
func corrupt(kind Kind) {
	log.Printf("isupport: corruption in capability table at %s", kind)
}

// CaseMapOrDefault returns the advertised casemapping, or RFC7613 when none
// (or a corrupted entry) is stored.
func (t Table) CaseMapOrDefault() CaseMap {
	if p, ok := t[KindCaseMapping]; ok {
		if cm, ok := p.(CaseMapping); ok {
			return CaseMap(cm)
		}
		corrupt(KindCaseMapping)
	}
	return DefaultCaseMap
}

// ChanModesOrDefault returns the advertised channel mode classification, or
// the protocol default table.
// Reference: https://modern.ircdocs.horse/#chanmodes-parameter
func (t Table) ChanModesOrDefault() []ModeKind {
	if p, ok := t[KindChanModes]; ok {
		if modes, ok := p.(ChanModes); ok {
			return modes
		}
		corrupt(KindChanModes)
	}
	return DefaultChanModes
}

// ChanTypesOrDefault returns the advertised channel prefixes, or the default
// set {#, &}.
func (t Table) ChanTypesOrDefault() []rune {
	if p, ok := t[KindChanTypes]; ok {
		types, ok := p.(ChanTypes)
		if !ok {
			corrupt(KindChanTypes)
		} else if types != nil {
			return types
		}
	}
	return DefaultChanTypes
}

// ModeLimitOrDefault returns how many mode changes a single MODE command may
// carry. The second return is false when the server declared no limit; the
// protocol default is a limit of 3.
// Reference: https://modern.ircdocs.horse/#modes-parameter
func (t Table) ModeLimitOrDefault() (uint16, bool) {
	if p, ok := t[KindModes]; ok {
		if modes, ok := p.(Modes); ok {
			return modes.Value, modes.Present
		}
		corrupt(KindModes)
	}
	return 3, true
}

// GetPrefix returns the advertised membership prefixes, if any.
func (t Table) GetPrefix() ([]PrefixMap, bool) {
	if p, ok := t[KindPrefix]; ok {
		if prefix, ok := p.(Prefix); ok {
			return prefix, true
		}
		corrupt(KindPrefix)
	}
	return nil, false
}

// PrefixOrDefault returns the advertised membership prefixes, or the default
// founder > protected > operator > half-op > voice ranking.
func (t Table) PrefixOrDefault() []PrefixMap {
	if prefix, ok := t.GetPrefix(); ok {
		return prefix
	}
	return DefaultPrefix
}

// StatusMsgOrDefault returns the prefixes accepted as message targets; the
// default is the empty set.
func (t Table) StatusMsgOrDefault() []rune {
	if p, ok := t[KindStatusMsg]; ok {
		if prefixes, ok := p.(StatusMsg); ok {
			return prefixes
		}
		corrupt(KindStatusMsg)
	}
	return nil
}

// TargetLimit returns the advertised target limit for the command. A false
// result means no limit: "TARGMAX never advertised" and "advertised without
// a limit for this command" are deliberately not distinguished.
func (t Table) TargetLimit(command string) (uint16, bool) {
	if p, ok := t[KindTargMax]; ok {
		if limits, ok := p.(TargMax); ok {
			for _, limit := range limits {
				if limit.Command == command {
					return limit.Limit, limit.HasLimit
				}
			}
		}
	}
	return 0, false
}
