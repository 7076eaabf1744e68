package isupport

import (
	"errors"
	"strconv"
	"strings"
)

// Operation is the result of parsing one ISUPPORT token: either add a
// validated parameter or remove a previously advertised one by name.
// Operations are transient; apply them to a Table immediately.
type Operation interface {
	isOperation()
}

// Add inserts (or overwrites) a parameter. Parameters without a Kind are
// validated but dropped by the table; the caller may still inspect Param
// before applying.
type Add struct {
	Param Param
}

// Remove erases the named capability. Removal of names the table does not
// model is legal and a no-op.
type Remove string

func (Add) isOperation()    {}
func (Remove) isOperation() {}

// Errors shared by several token grammars. Grammar-specific failures carry
// their own descriptive text. Every parse error is token-scoped and
// non-fatal: skip the token and keep processing the line.
var (
	ErrEmptyToken       = errors.New("empty ISUPPORT token not allowed")
	ErrUnknownParameter = errors.New("unknown ISUPPORT parameter")
	ErrValueRequired    = errors.New("value required")
	ErrValuesRequired   = errors.New("value(s) required")
)

// ParseToken parses one whitespace-delimited token from a 005 parameter
// list. A leading '-' always parses as a removal; otherwise the key must be
// a recognized parameter name (case-sensitive) and the value, when present,
// must satisfy that key's grammar.
func ParseToken(token string) (Operation, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	if token[0] == '-' {
		return Remove(token[1:]), nil
	}
	if key, value, found := strings.Cut(token, "="); found {
		return parseWithValue(key, value)
	}
	return parseBare(token)
}

func parseWithValue(key, value string) (Operation, error) {
	switch key {
	case "ACCEPT":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{Accept(n)}, nil
	case "ACCOUNTEXTBAN":
		masks := strings.Split(value, ",")
		if len(masks) == 0 {
			return nil, errors.New("no valid account-based extended ban masks")
		}
		return Add{AccountExtBan(masks)}, nil
	case "AWAYLEN":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{AwayLen(n)}, nil
	case "BOT":
		c, err := parseRequiredLetter(value)
		if err != nil {
			return nil, err
		}
		return Add{Bot(c)}, nil
	case "CALLERID":
		c, err := parseRequiredLetter(value)
		if err != nil {
			return nil, err
		}
		return Add{CallerID(c)}, nil
	case "CASEMAPPING":
		switch strings.ToLower(value) {
		case "ascii":
			return Add{CaseMapping(CaseMapASCII)}, nil
		case "rfc1459":
			return Add{CaseMapping(CaseMapRFC1459)}, nil
		case "rfc1459-strict":
			return Add{CaseMapping(CaseMapRFC1459Strict)}, nil
		case "rfc7613":
			return Add{CaseMapping(CaseMapRFC7613)}, nil
		default:
			return nil, errors.New("unknown casemapping")
		}
	case "CHANLIMIT":
		var limits []ChannelLimit
		for _, entry := range strings.Split(value, ",") {
			prefixes, limit, found := strings.Cut(entry, ":")
			if !found {
				continue
			}
			if limit == "" {
				for _, c := range prefixes {
					limits = append(limits, ChannelLimit{Prefix: c})
				}
			} else if n, err := strconv.ParseUint(limit, 10, 16); err == nil {
				for _, c := range prefixes {
					limits = append(limits, ChannelLimit{Prefix: c, Limit: uint16(n), HasLimit: true})
				}
			}
		}
		if len(limits) == 0 {
			return nil, errors.New("no valid channel limits")
		}
		return Add{ChanLimit(limits)}, nil
	case "CHANMODES":
		var groups []ModeKind
		for i, modes := range strings.Split(value, ",") {
			if i >= 26 {
				break
			}
			if modes != "" && allLetters(modes) {
				groups = append(groups, ModeKind{Kind: rune('A' + i), Modes: modes})
			}
		}
		if len(groups) == 0 {
			return nil, errors.New("no valid channel modes")
		}
		return Add{ChanModes(groups)}, nil
	case "CHANNELLEN":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{ChannelLen(n)}, nil
	case "CHANTYPES":
		if value == "" {
			return Add{ChanTypes(nil)}, nil
		}
		return Add{ChanTypes([]rune(value))}, nil
	case "CHATHISTORY", "draft/CHATHISTORY":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{ChatHistory(n)}, nil
	case "CLIENTTAGDENY":
		var denials []ClientOnlyTag
		for _, entry := range strings.Split(value, ",") {
			switch {
			case strings.HasPrefix(entry, "*"):
				denials = append(denials, ClientOnlyTag{Rule: DenyAllTags})
			case strings.HasPrefix(entry, "-"):
				denials = append(denials, ClientOnlyTag{Rule: AllowTag, Name: entry[1:]})
			default:
				denials = append(denials, ClientOnlyTag{Rule: DenyTag, Name: entry})
			}
		}
		if len(denials) == 0 {
			return nil, errors.New("no valid client tag denials")
		}
		return Add{ClientTagDeny(denials)}, nil
	case "CLIENTVER":
		if major, minor, found := strings.Cut(value, "."); found {
			ma, errMa := strconv.ParseUint(major, 10, 16)
			mi, errMi := strconv.ParseUint(minor, 10, 16)
			if errMa == nil && errMi == nil {
				return Add{ClientVer{Major: uint16(ma), Minor: uint16(mi)}}, nil
			}
		}
		return nil, errors.New("value must be a <major>.<minor> version number")
	case "CNOTICE":
		return Add{CNotice{}}, nil
	case "CPRIVMSG":
		return Add{CPrivMsg{}}, nil
	case "DEAF":
		c, err := parseRequiredLetter(value)
		if err != nil {
			return nil, err
		}
		return Add{Deaf(c)}, nil
	case "ELIST":
		if value == "" {
			return nil, ErrValueRequired
		}
		upper := strings.ToUpper(value)
		for _, c := range upper {
			if !strings.ContainsRune("CMNTU", c) {
				return nil, errors.New("value required to only contain valid search extensions")
			}
		}
		return Add{EList(upper)}, nil
	case "ESILENCE":
		flags, err := parseOptionalLetters(value)
		if err != nil {
			return nil, err
		}
		return Add{ESilence(flags)}, nil
	case "ETRACE":
		return Add{ETrace{}}, nil
	case "EXCEPTS":
		c, err := parseRequiredLetter(value)
		if err != nil {
			return nil, err
		}
		return Add{Excepts(c)}, nil
	case "EXTBAN":
		prefix, types, found := strings.Cut(value, ",")
		if !found {
			return nil, errors.New("no valid extended ban masks")
		}
		if !allLetters(types) {
			return nil, errors.New("invalid extended ban type(s)")
		}
		if prefix == "" {
			return Add{ExtBan{Types: types}}, nil
		}
		if !isASCII(prefix) {
			return nil, errors.New("invalid extended ban prefix(es)")
		}
		return Add{ExtBan{Prefix: rune(prefix[0]), Types: types}}, nil
	case "FNC":
		return Add{FNC{}}, nil
	case "HOSTLEN":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{HostLen(n)}, nil
	case "INVEX":
		c, err := parseRequiredLetter(value)
		if err != nil {
			return nil, err
		}
		return Add{Invex(c)}, nil
	case "KEYLEN":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{KeyLen(n)}, nil
	case "KICKLEN":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{KickLen(n)}, nil
	case "KNOCK":
		return Add{Knock{}}, nil
	case "LINELEN":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{LineLen(n)}, nil
	case "MAP":
		return Add{Map{}}, nil
	case "MAXBANS":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{MaxBans(n)}, nil
	case "MAXCHANNELS":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{MaxChannels(n)}, nil
	case "MAXLIST":
		var limits []ModesLimit
		for _, entry := range strings.Split(value, ",") {
			modes, limit, found := strings.Cut(entry, ":")
			if !found || modes == "" || !allLetters(modes) {
				continue
			}
			if n, err := strconv.ParseUint(limit, 10, 16); err == nil {
				limits = append(limits, ModesLimit{Modes: modes, Limit: uint16(n)})
			}
		}
		if len(limits) == 0 {
			return nil, errors.New("no valid modes limits")
		}
		return Add{MaxList(limits)}, nil
	case "MAXPARA":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{MaxPara(n)}, nil
	case "MAXTARGETS":
		limit, err := parseOptionalPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{MaxTargets(limit)}, nil
	case "METADATA":
		limit, err := parseOptionalPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{Metadata(limit)}, nil
	case "MODES":
		limit, err := parseOptionalPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{Modes(limit)}, nil
	case "MONITOR":
		limit, err := parseOptionalPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{Monitor(limit)}, nil
	case "MSGREFTYPES":
		var types []MessageReferenceType
		for _, entry := range strings.Split(value, ",") {
			// Later entries are inserted at the front: the declared order is
			// least preferred first.
			switch entry {
			case "msgid":
				types = append([]MessageReferenceType{ReferenceMessageID}, types...)
			case "timestamp":
				types = append([]MessageReferenceType{ReferenceTimestamp}, types...)
			}
		}
		return Add{MsgRefTypes(types)}, nil
	case "NAMELEN":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{NameLen(n)}, nil
	case "NAMESX":
		return Add{NamesX{}}, nil
	case "NETWORK":
		return Add{Network(value)}, nil
	case "NICKLEN", "MAXNICKLEN":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{NickLen(n)}, nil
	case "OVERRIDE":
		return Add{Override{}}, nil
	case "PREFIX":
		modes, prefixes, found := strings.Cut(value, ")")
		if !found {
			return nil, errors.New("unrecognized PREFIX format")
		}
		// Strip the leading '(' and zip positionally; order encodes
		// descending privilege rank.
		modeRunes := []rune(modes)
		if len(modeRunes) > 0 {
			modeRunes = modeRunes[1:]
		}
		prefixRunes := []rune(prefixes)
		var maps []PrefixMap
		for i, mode := range modeRunes {
			if i >= len(prefixRunes) {
				break
			}
			maps = append(maps, PrefixMap{Mode: mode, Prefix: prefixRunes[i]})
		}
		return Add{Prefix(maps)}, nil
	case "SAFELIST":
		return Add{SafeList{}}, nil
	case "SECURELIST":
		return Add{SecureList{}}, nil
	case "SILENCE":
		limit, err := parseOptionalPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{Silence(limit)}, nil
	case "STATUSMSG":
		// TODO validate that STATUSMSG is a subset of PREFIX once the whole
		// 005 burst has been applied.
		return Add{StatusMsg([]rune(value))}, nil
	case "TARGMAX":
		var limits []CommandTargetLimit
		for _, entry := range strings.Split(value, ",") {
			command, limit, found := strings.Cut(entry, ":")
			if !found || command == "" || !allLetters(command) {
				continue
			}
			if limit == "" {
				limits = append(limits, CommandTargetLimit{Command: strings.ToUpper(command)})
			} else if n, err := strconv.ParseUint(limit, 10, 16); err == nil {
				limits = append(limits, CommandTargetLimit{
					Command:  strings.ToUpper(command),
					Limit:    uint16(n),
					HasLimit: true,
				})
			}
		}
		if len(limits) == 0 {
			return nil, errors.New("no valid command target limits")
		}
		return Add{TargMax(limits)}, nil
	case "TOPICLEN":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{TopicLen(n)}, nil
	case "UHNAMES":
		return Add{UHNames{}}, nil
	case "USERIP":
		return Add{UserIP{}}, nil
	case "USERLEN":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{UserLen(n)}, nil
	case "UTF8ONLY":
		return Add{UTF8Only{}}, nil
	case "VLIST":
		letters, err := parseRequiredLetters(value)
		if err != nil {
			return nil, err
		}
		return Add{VList(letters)}, nil
	case "WATCH":
		n, err := parseRequiredPositiveInteger(value)
		if err != nil {
			return nil, err
		}
		return Add{Watch(n)}, nil
	case "WHOX":
		return Add{WhoX{}}, nil
	}
	return nil, ErrUnknownParameter
}

// parseBare handles tokens advertised without a value. Boolean-style keys
// succeed with a fixed payload, a few keys have an implicit default letter,
// and keys whose grammar requires a value fail.
func parseBare(key string) (Operation, error) {
	switch key {
	case "ACCEPT", "AWAYLEN", "BOT", "CASEMAPPING", "CHANNELLEN",
		"CHATHISTORY", "CLIENTVER", "ELIST", "EXTBAN", "HOSTLEN", "KEYLEN",
		"KICKLEN", "LINELEN", "MAXBANS", "MAXCHANNELS", "MAXPARA", "NAMELEN",
		"NETWORK", "NICKLEN", "MAXNICKLEN", "STATUSMSG", "TOPICLEN",
		"USERLEN", "VLIST", "WATCH":
		return nil, ErrValueRequired
	case "ACCOUNTEXTBAN", "CHANLIMIT", "CHANMODES", "CLIENTTAGDENY", "MAXLIST":
		return nil, ErrValuesRequired
	case "CALLERID":
		return Add{CallerID(defaultCallerIDLetter)}, nil
	case "CHANTYPES":
		return Add{ChanTypes(nil)}, nil
	case "CNOTICE":
		return Add{CNotice{}}, nil
	case "CPRIVMSG":
		return Add{CPrivMsg{}}, nil
	case "DEAF":
		return Add{Deaf(defaultDeafLetter)}, nil
	case "ESILENCE":
		return Add{ESilence("")}, nil
	case "ETRACE":
		return Add{ETrace{}}, nil
	case "EXCEPTS":
		return Add{Excepts(defaultBanExceptionLetter)}, nil
	case "FNC":
		return Add{FNC{}}, nil
	case "INVEX":
		return Add{Invex(defaultInviteExceptionLetter)}, nil
	case "KNOCK":
		return Add{Knock{}}, nil
	case "MAP":
		return Add{Map{}}, nil
	case "MAXTARGETS":
		return Add{MaxTargets{}}, nil
	case "METADATA":
		return Add{Metadata{}}, nil
	case "MODES":
		return Add{Modes{}}, nil
	case "MONITOR":
		return Add{Monitor{}}, nil
	case "MSGREFTYPES":
		return Add{MsgRefTypes(nil)}, nil
	case "NAMESX":
		return Add{NamesX{}}, nil
	case "OVERRIDE":
		return Add{Override{}}, nil
	case "PREFIX":
		return Add{Prefix(nil)}, nil
	case "SAFELIST":
		return Add{SafeList{}}, nil
	case "SECURELIST":
		return Add{SecureList{}}, nil
	case "SILENCE":
		return Add{Silence{}}, nil
	case "TARGMAX":
		return Add{TargMax(nil)}, nil
	case "UHNAMES":
		return Add{UHNames{}}, nil
	case "USERIP":
		return Add{UserIP{}}, nil
	case "UTF8ONLY":
		return Add{UTF8Only{}}, nil
	case "WHOX":
		return Add{WhoX{}}, nil
	}
	return nil, ErrUnknownParameter
}

func allLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

func parseRequiredPositiveInteger(value string) (uint16, error) {
	n, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return 0, errors.New("value required to be a positive integer")
	}
	return uint16(n), nil
}

func parseOptionalPositiveInteger(value string) (OptionalLimit, error) {
	if value == "" {
		return OptionalLimit{}, nil
	}
	n, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return OptionalLimit{}, errors.New("optional value must be a positive integer if specified")
	}
	return OptionalLimit{Value: uint16(n), Present: true}, nil
}

// parseRequiredLetter returns the first rune of value when it is a letter.
// The implicit defaults of CALLERID, DEAF, EXCEPTS, and INVEX apply only to
// the bare (no '=') form; an explicit empty value is an error.
func parseRequiredLetter(value string) (rune, error) {
	if value != "" {
		c := []rune(value)[0]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return c, nil
		}
	}
	return 0, errors.New("value required to be a letter")
}

func parseRequiredLetters(value string) (string, error) {
	if value == "" {
		return "", ErrValueRequired
	}
	if !allLetters(value) {
		return "", errors.New("value required to be letter(s)")
	}
	return value, nil
}

func parseOptionalLetters(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if !allLetters(value) {
		return "", errors.New("value required to be letter(s) if specified")
	}
	return value, nil
}
