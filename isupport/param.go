package isupport

// Param is one validated ISUPPORT parameter payload. It is a closed set:
// every recognized parameter has exactly one concrete type below, holding
// the value in already-parsed form.
//
// Parameter references:
//   - https://defs.ircdocs.horse/defs/isupport.html
//   - https://modern.ircdocs.horse/#rplisupport-005
//   - https://ircv3.net/specs/extensions/chathistory
//   - https://ircv3.net/specs/extensions/monitor
//   - https://ircv3.net/specs/extensions/utf8-only
//   - https://ircv3.net/specs/extensions/whox
type Param interface {
	isParam()
}

// OptionalLimit is a numeric limit a server may advertise without a value;
// Present is false when the server declared no bound.
type OptionalLimit struct {
	Value   uint16
	Present bool
}

// ChannelLimit is one CHANLIMIT entry: how many channels with the given
// prefix may be joined at once. HasLimit is false when the count is
// unbounded.
type ChannelLimit struct {
	Prefix   rune
	Limit    uint16
	HasLimit bool
}

// ClientTagRule is the policy a CLIENTTAGDENY entry declares for a
// client-only message tag.
type ClientTagRule int

// CLIENTTAGDENY entry policies.
const (
	DenyAllTags ClientTagRule = iota
	AllowTag
	DenyTag
)

// ClientOnlyTag is one CLIENTTAGDENY entry. Name is empty for DenyAllTags.
type ClientOnlyTag struct {
	Rule ClientTagRule
	Name string
}

// CommandTargetLimit is one TARGMAX entry: the maximum number of targets the
// named command accepts. HasLimit is false when the command is unlimited.
type CommandTargetLimit struct {
	Command  string
	Limit    uint16
	HasLimit bool
}

// MessageReferenceType is one MSGREFTYPES entry, naming a message reference
// form the server accepts in CHATHISTORY requests.
type MessageReferenceType int

// Message reference forms, per the chathistory extension.
const (
	ReferenceTimestamp MessageReferenceType = iota
	ReferenceMessageID
)

// ModesLimit is one MAXLIST entry: the combined limit for the listed
// list-mode letters.
type ModesLimit struct {
	Modes string
	Limit uint16
}

// PrefixMap pairs a channel membership mode letter with the prefix symbol
// that marks it in NAMES and WHO replies.
type PrefixMap struct {
	Mode   rune
	Prefix rune
}

// The concrete Param variants, in advertisement-name order.
type (
	// Accept is the maximum ACCEPT list size (server-side ignore lists).
	Accept uint16
	// AccountExtBan lists the server's account-based extended ban masks.
	AccountExtBan []string
	// AwayLen is the maximum away-message length.
	AwayLen uint16
	// Bot is the user mode letter marking bot connections. Not stored.
	Bot rune
	// CallerID is the user mode letter enabling caller-id filtering.
	// Validated only; not stored in the table.
	CallerID rune
	// CaseMapping is the server's declared case-insensitivity rule.
	CaseMapping CaseMap
	// ChanLimit lists per-prefix joined-channel limits.
	ChanLimit []ChannelLimit
	// ChanModes classifies channel mode letters by argument requirement.
	ChanModes []ModeKind
	// ChannelLen is the maximum channel name length.
	ChannelLen uint16
	// ChanTypes lists the channel prefix characters; nil means the server
	// declared none.
	ChanTypes []rune
	// ChatHistory is the maximum number of messages per CHATHISTORY reply.
	ChatHistory uint16
	// ClientTagDeny lists the server's client-only tag policies. Not stored.
	ClientTagDeny []ClientOnlyTag
	// ClientVer is the maximum supported client protocol version. Not stored.
	ClientVer struct{ Major, Minor uint16 }
	// CNotice marks CNOTICE support.
	CNotice struct{}
	// CPrivMsg marks CPRIVMSG support.
	CPrivMsg struct{}
	// Deaf is the user mode letter for ignoring channel messages. Not stored.
	Deaf rune
	// EList holds the supported LIST search extension letters.
	EList string
	// ESilence holds the supported SILENCE flags; empty means unspecified.
	// Not stored.
	ESilence string
	// ETrace marks ETRACE support. Not stored.
	ETrace struct{}
	// Excepts is the ban-exception channel mode letter. Not stored.
	Excepts rune
	// ExtBan describes extended ban syntax; Prefix is zero when any prefix
	// is accepted. Not stored.
	ExtBan struct {
		Prefix rune
		Types  string
	}
	// FNC marks forced nick change support. Not stored.
	FNC struct{}
	// HostLen is the maximum hostname length. Not stored.
	HostLen uint16
	// Invex is the invite-exception channel mode letter. Not stored.
	Invex rune
	// KeyLen is the maximum channel key length.
	KeyLen uint16
	// KickLen is the maximum kick-reason length.
	KickLen uint16
	// Knock marks KNOCK support.
	Knock struct{}
	// LineLen is the maximum line length. Not stored.
	LineLen uint16
	// Map marks MAP support. Not stored.
	Map struct{}
	// MaxBans is the maximum ban list size. Not stored.
	MaxBans uint16
	// MaxChannels is the maximum number of joined channels. Not stored.
	MaxChannels uint16
	// MaxList lists per-mode-group list limits. Not stored.
	MaxList []ModesLimit
	// MaxPara is the maximum number of command parameters. Not stored.
	MaxPara uint16
	// MaxTargets is the maximum number of message targets. Not stored.
	MaxTargets OptionalLimit
	// Metadata is the METADATA key limit. Not stored.
	Metadata OptionalLimit
	// Modes is the number of mode changes accepted per MODE command.
	Modes OptionalLimit
	// Monitor is the MONITOR target limit.
	Monitor OptionalLimit
	// MsgRefTypes lists accepted message reference forms, most preferred
	// first.
	MsgRefTypes []MessageReferenceType
	// NameLen is the maximum realname length.
	NameLen uint16
	// NamesX marks multi-prefix NAMES support. Not stored.
	NamesX struct{}
	// Network is the advertised network name. Not stored.
	Network string
	// NickLen is the maximum nickname length.
	NickLen uint16
	// Override marks operator channel override support. Not stored.
	Override struct{}
	// Prefix lists membership prefixes in descending privilege order.
	Prefix []PrefixMap
	// SafeList marks SAFELIST support.
	SafeList struct{}
	// SecureList marks SECURELIST support. Not stored.
	SecureList struct{}
	// Silence is the SILENCE list limit. Not stored.
	Silence OptionalLimit
	// StatusMsg lists prefixes accepted as message targets.
	StatusMsg []rune
	// TargMax lists per-command target limits.
	TargMax []CommandTargetLimit
	// TopicLen is the maximum topic length.
	TopicLen uint16
	// UHNames marks userhost-in-names support. Not stored.
	UHNames struct{}
	// UserIP marks USERIP support.
	UserIP struct{}
	// UserLen is the maximum username length. Not stored.
	UserLen uint16
	// UTF8Only marks that the server only accepts UTF-8 text.
	UTF8Only struct{}
	// VList holds the supported variable list mode letters. Not stored.
	VList string
	// Watch is the WATCH list limit. Not stored.
	Watch uint16
	// WhoX marks WHOX support.
	WhoX struct{}
)

func (Accept) isParam()        {}
func (AccountExtBan) isParam() {}
func (AwayLen) isParam()       {}
func (Bot) isParam()           {}
func (CallerID) isParam()      {}
func (CaseMapping) isParam()   {}
func (ChanLimit) isParam()     {}
func (ChanModes) isParam()     {}
func (ChannelLen) isParam()    {}
func (ChanTypes) isParam()     {}
func (ChatHistory) isParam()   {}
func (ClientTagDeny) isParam() {}
func (ClientVer) isParam()     {}
func (CNotice) isParam()       {}
func (CPrivMsg) isParam()      {}
func (Deaf) isParam()          {}
func (EList) isParam()         {}
func (ESilence) isParam()      {}
func (ETrace) isParam()        {}
func (Excepts) isParam()       {}
func (ExtBan) isParam()        {}
func (FNC) isParam()           {}
func (HostLen) isParam()       {}
func (Invex) isParam()         {}
func (KeyLen) isParam()        {}
func (KickLen) isParam()       {}
func (Knock) isParam()         {}
func (LineLen) isParam()       {}
func (Map) isParam()           {}
func (MaxBans) isParam()       {}
func (MaxChannels) isParam()   {}
func (MaxList) isParam()       {}
func (MaxPara) isParam()       {}
func (MaxTargets) isParam()    {}
func (Metadata) isParam()      {}
func (Modes) isParam()         {}
func (Monitor) isParam()       {}
func (MsgRefTypes) isParam()   {}
func (NameLen) isParam()       {}
func (NamesX) isParam()        {}
func (Network) isParam()       {}
func (NickLen) isParam()       {}
func (Override) isParam()      {}
func (Prefix) isParam()        {}
func (SafeList) isParam()      {}
func (SecureList) isParam()    {}
func (Silence) isParam()       {}
func (StatusMsg) isParam()     {}
func (TargMax) isParam()       {}
func (TopicLen) isParam()      {}
func (UHNames) isParam()       {}
func (UserIP) isParam()        {}
func (UserLen) isParam()       {}
func (UTF8Only) isParam()      {}
func (VList) isParam()         {}
func (Watch) isParam()         {}
func (WhoX) isParam()          {}

// ParamKind maps a parameter to the table key it is stored under. The
// mapping is total over Param but partial over Kind: parameters that are
// validated for their side information only (BOT, NAMESX, CALLERID, ...)
// return false and are discarded after parsing.
func ParamKind(p Param) (Kind, bool) {
	switch p.(type) {
	case AwayLen:
		return KindAwayLen, true
	case CaseMapping:
		return KindCaseMapping, true
	case ChanLimit:
		return KindChanLimit, true
	case ChanModes:
		return KindChanModes, true
	case ChannelLen:
		return KindChannelLen, true
	case ChanTypes:
		return KindChanTypes, true
	case ChatHistory:
		return KindChatHistory, true
	case CNotice:
		return KindCNotice, true
	case CPrivMsg:
		return KindCPrivMsg, true
	case EList:
		return KindEList, true
	case KeyLen:
		return KindKeyLen, true
	case KickLen:
		return KindKickLen, true
	case Knock:
		return KindKnock, true
	case Modes:
		return KindModes, true
	case Monitor:
		return KindMonitor, true
	case MsgRefTypes:
		return KindMsgRefTypes, true
	case NameLen:
		return KindNameLen, true
	case NickLen:
		return KindNickLen, true
	case Prefix:
		return KindPrefix, true
	case SafeList:
		return KindSafeList, true
	case StatusMsg:
		return KindStatusMsg, true
	case TargMax:
		return KindTargMax, true
	case TopicLen:
		return KindTopicLen, true
	case UserIP:
		return KindUserIP, true
	case UTF8Only:
		return KindUTF8Only, true
	case WhoX:
		return KindWhoX, true
	}
	return 0, false
}
