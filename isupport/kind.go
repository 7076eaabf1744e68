// Package isupport parses RPL_ISUPPORT (numeric 005) advertisement tokens
// into a typed, queryable capability table and exposes the protocol defaults
// and helper algorithms that depend on it: case-insensitive name comparison,
// channel-mode classification, and command target limits.
//
// Tokens arrive one or more per 005 line and may keep arriving across the
// whole connection (servers re-advertise after STARTTLS or CAP changes), so
// the table is built incrementally. Parsing is defensive throughout: a
// malformed or unknown token produces a descriptive error for that token
// only, and the caller is expected to skip it and keep going.
package isupport

// Kind identifies a capability the Table keeps track of. Parameters whose
// value is only useful at parse time (for example BOT or NAMESX) have no
// Kind and are never stored; see ParamKind.
type Kind int

// The capability kinds recognized by the table.
const (
	KindAwayLen Kind = iota
	KindCaseMapping
	KindChanLimit
	KindChanModes
	KindChannelLen
	KindChanTypes
	KindChatHistory
	KindCNotice
	KindCPrivMsg
	KindEList
	KindKeyLen
	KindKickLen
	KindKnock
	KindModes
	KindMonitor
	KindMsgRefTypes
	KindNameLen
	KindNickLen
	KindPrefix
	KindSafeList
	KindStatusMsg
	KindTargMax
	KindTopicLen
	KindUserIP
	KindUTF8Only
	KindWhoX
)

var kindNames = map[Kind]string{
	KindAwayLen:     "AWAYLEN",
	KindCaseMapping: "CASEMAPPING",
	KindChanLimit:   "CHANLIMIT",
	KindChanModes:   "CHANMODES",
	KindChannelLen:  "CHANNELLEN",
	KindChanTypes:   "CHANTYPES",
	KindChatHistory: "CHATHISTORY",
	KindCNotice:     "CNOTICE",
	KindCPrivMsg:    "CPRIVMSG",
	KindEList:       "ELIST",
	KindKeyLen:      "KEYLEN",
	KindKickLen:     "KICKLEN",
	KindKnock:       "KNOCK",
	KindModes:       "MODES",
	KindMonitor:     "MONITOR",
	KindMsgRefTypes: "MSGREFTYPES",
	KindNameLen:     "NAMELEN",
	KindNickLen:     "NICKLEN",
	KindPrefix:      "PREFIX",
	KindSafeList:    "SAFELIST",
	KindStatusMsg:   "STATUSMSG",
	KindTargMax:     "TARGMAX",
	KindTopicLen:    "TOPICLEN",
	KindUserIP:      "USERIP",
	KindUTF8Only:    "UTF8ONLY",
	KindWhoX:        "WHOX",
}

var kindsByName = map[string]Kind{
	"AWAYLEN":     KindAwayLen,
	"CASEMAPPING": KindCaseMapping,
	"CHANLIMIT":   KindChanLimit,
	"CHANMODES":   KindChanModes,
	"CHANNELLEN":  KindChannelLen,
	"CHANTYPES":   KindChanTypes,
	"CHATHISTORY": KindChatHistory,
	"CNOTICE":     KindCNotice,
	"CPRIVMSG":    KindCPrivMsg,
	"ELIST":       KindEList,
	"KEYLEN":      KindKeyLen,
	"KICKLEN":     KindKickLen,
	"KNOCK":       KindKnock,
	"MODES":       KindModes,
	"MONITOR":     KindMonitor,
	"MSGREFTYPES": KindMsgRefTypes,
	"NAMELEN":     KindNameLen,
	"NICKLEN":     KindNickLen,
	"PREFIX":      KindPrefix,
	"SAFELIST":    KindSafeList,
	"STATUSMSG":   KindStatusMsg,
	"TARGMAX":     KindTargMax,
	"TOPICLEN":    KindTopicLen,
	"USERIP":      KindUserIP,
	"UTF8ONLY":    KindUTF8Only,
	"WHOX":        KindWhoX,
}

// String returns the parameter name the kind is advertised under.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// KindByName resolves an advertised parameter name to its Kind. Names the
// table does not model resolve to false; removal of such names is legal and
// a no-op.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}
