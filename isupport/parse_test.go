package isupport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseAdd parses a token that must yield an Add and returns its payload.
func parseAdd(t *testing.T, token string) Param {
	t.Helper()
	op, err := ParseToken(token)
	require.NoError(t, err, "token %q", token)
	add, ok := op.(Add)
	require.True(t, ok, "token %q did not yield an Add", token)
	return add.Param
}

func TestParseEmptyToken(t *testing.T) {
	_, err := ParseToken("")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestParseRemoval(t *testing.T) {
	// Removal is always syntactically valid, recognized name or not.
	for _, token := range []string{"-AWAYLEN", "-WATCH", "-NOSUCHTHING", "-"} {
		op, err := ParseToken(token)
		require.NoError(t, err, "token %q", token)
		remove, ok := op.(Remove)
		require.True(t, ok, "token %q did not yield a Remove", token)
		assert.Equal(t, token[1:], string(remove))
	}
}

func TestParseUnknownParameter(t *testing.T) {
	_, err := ParseToken("NOSUCHTHING=1")
	assert.ErrorIs(t, err, ErrUnknownParameter)

	_, err = ParseToken("NOSUCHTHING")
	assert.ErrorIs(t, err, ErrUnknownParameter)

	// Key matching is case-sensitive.
	_, err = ParseToken("nicklen=9")
	assert.ErrorIs(t, err, ErrUnknownParameter)
}

func TestParseIntegerParameters(t *testing.T) {
	assert.Equal(t, AwayLen(200), parseAdd(t, "AWAYLEN=200"))
	assert.Equal(t, NickLen(31), parseAdd(t, "NICKLEN=31"))
	assert.Equal(t, NickLen(31), parseAdd(t, "MAXNICKLEN=31"), "MAXNICKLEN is an alias for NICKLEN")
	assert.Equal(t, TopicLen(307), parseAdd(t, "TOPICLEN=307"))
	assert.Equal(t, ChatHistory(100), parseAdd(t, "CHATHISTORY=100"))
	assert.Equal(t, ChatHistory(50), parseAdd(t, "draft/CHATHISTORY=50"), "draft prefix is accepted")

	for _, token := range []string{"AWAYLEN", "AWAYLEN=", "AWAYLEN=many", "AWAYLEN=-1", "NICKLEN=999999"} {
		_, err := ParseToken(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestParseOptionalIntegerParameters(t *testing.T) {
	assert.Equal(t, Modes(OptionalLimit{Value: 4, Present: true}), parseAdd(t, "MODES=4"))
	assert.Equal(t, Modes(OptionalLimit{}), parseAdd(t, "MODES="))
	assert.Equal(t, Modes(OptionalLimit{}), parseAdd(t, "MODES"))
	assert.Equal(t, Monitor(OptionalLimit{Value: 100, Present: true}), parseAdd(t, "MONITOR=100"))

	_, err := ParseToken("MODES=lots")
	assert.Error(t, err)
}

func TestParseCaseMapping(t *testing.T) {
	assert.Equal(t, CaseMapping(CaseMapASCII), parseAdd(t, "CASEMAPPING=ascii"))
	assert.Equal(t, CaseMapping(CaseMapRFC1459), parseAdd(t, "CASEMAPPING=rfc1459"))
	assert.Equal(t, CaseMapping(CaseMapRFC1459Strict), parseAdd(t, "CASEMAPPING=rfc1459-strict"))
	assert.Equal(t, CaseMapping(CaseMapRFC7613), parseAdd(t, "CASEMAPPING=rfc7613"))
	// Values are matched case-insensitively.
	assert.Equal(t, CaseMapping(CaseMapASCII), parseAdd(t, "CASEMAPPING=ASCII"))

	_, err := ParseToken("CASEMAPPING=ebcdic")
	assert.EqualError(t, err, "unknown casemapping")
	_, err = ParseToken("CASEMAPPING")
	assert.ErrorIs(t, err, ErrValueRequired)
}

func TestParseChanLimit(t *testing.T) {
	assert.Equal(t,
		ChanLimit([]ChannelLimit{
			{Prefix: '#', Limit: 10, HasLimit: true},
			{Prefix: '&'},
		}),
		parseAdd(t, "CHANLIMIT=#:10,&:"))

	// Multi-character prefix groups expand to one entry per character.
	assert.Equal(t,
		ChanLimit([]ChannelLimit{
			{Prefix: '#', Limit: 25, HasLimit: true},
			{Prefix: '&', Limit: 25, HasLimit: true},
		}),
		parseAdd(t, "CHANLIMIT=#&:25"))

	// Entries with unparsable limits are dropped, not fatal.
	assert.Equal(t,
		ChanLimit([]ChannelLimit{{Prefix: '#', Limit: 10, HasLimit: true}}),
		parseAdd(t, "CHANLIMIT=#:10,&:lots"))

	// ...unless nothing survives.
	_, err := ParseToken("CHANLIMIT=&:lots")
	assert.EqualError(t, err, "no valid channel limits")
	_, err = ParseToken("CHANLIMIT")
	assert.ErrorIs(t, err, ErrValuesRequired)
}

func TestParseChanModes(t *testing.T) {
	assert.Equal(t,
		ChanModes([]ModeKind{
			{Kind: 'A', Modes: "b"},
			{Kind: 'B', Modes: "k"},
			{Kind: 'C', Modes: "l"},
			{Kind: 'D', Modes: "imnpst"},
		}),
		parseAdd(t, "CHANMODES=b,k,l,imnpst"))

	// A group with non-alphabetic characters invalidates only that group;
	// empty groups are dropped but still occupy their letter position.
	assert.Equal(t,
		ChanModes([]ModeKind{
			{Kind: 'A', Modes: "beI"},
			{Kind: 'D', Modes: "imnt"},
		}),
		parseAdd(t, "CHANMODES=beI,k2,,imnt"))

	_, err := ParseToken("CHANMODES=1,2,3")
	assert.EqualError(t, err, "no valid channel modes")
}

func TestParsePrefix(t *testing.T) {
	assert.Equal(t,
		Prefix([]PrefixMap{
			{Mode: 'o', Prefix: '@'},
			{Mode: 'v', Prefix: '+'},
		}),
		parseAdd(t, "PREFIX=(ov)@+"))

	assert.Equal(t,
		Prefix([]PrefixMap{
			{Mode: 'q', Prefix: '~'},
			{Mode: 'a', Prefix: '&'},
			{Mode: 'o', Prefix: '@'},
			{Mode: 'h', Prefix: '%'},
			{Mode: 'v', Prefix: '+'},
		}),
		parseAdd(t, "PREFIX=(qaohv)~&@%+"))

	// Empty prefix advertisements are valid.
	assert.Equal(t, Prefix(nil), parseAdd(t, "PREFIX"))
	assert.Equal(t, Prefix(nil), parseAdd(t, "PREFIX=()"))

	_, err := ParseToken("PREFIX=(ov@+")
	assert.EqualError(t, err, "unrecognized PREFIX format")
	_, err = ParseToken("PREFIX=")
	assert.EqualError(t, err, "unrecognized PREFIX format")
}

func TestParseTargMax(t *testing.T) {
	assert.Equal(t,
		TargMax([]CommandTargetLimit{
			{Command: "PRIVMSG", Limit: 4, HasLimit: true},
			{Command: "JOIN", Limit: 0, HasLimit: false},
		}),
		parseAdd(t, "TARGMAX=privmsg:4,JOIN:"))

	// Unparsable entries are dropped, not fatal.
	assert.Equal(t,
		TargMax([]CommandTargetLimit{{Command: "NOTICE", Limit: 3, HasLimit: true}}),
		parseAdd(t, "TARGMAX=NOTICE:3,KICK:lots,:5"))

	_, err := ParseToken("TARGMAX=:1,123:4")
	assert.EqualError(t, err, "no valid command target limits")

	// Bare TARGMAX means no limits are advertised.
	assert.Equal(t, TargMax(nil), parseAdd(t, "TARGMAX"))
}

func TestParseMaxList(t *testing.T) {
	assert.Equal(t,
		MaxList([]ModesLimit{
			{Modes: "beI", Limit: 60},
			{Modes: "q", Limit: 30},
		}),
		parseAdd(t, "MAXLIST=beI:60,q:30"))

	// Both halves are required; malformed entries are dropped.
	assert.Equal(t,
		MaxList([]ModesLimit{{Modes: "b", Limit: 25}}),
		parseAdd(t, "MAXLIST=b:25,e:,:10,I:lots"))

	_, err := ParseToken("MAXLIST=b:,e:lots")
	assert.EqualError(t, err, "no valid modes limits")
}

func TestParseClientVer(t *testing.T) {
	assert.Equal(t, ClientVer{Major: 3, Minor: 0}, parseAdd(t, "CLIENTVER=3.0"))

	for _, token := range []string{"CLIENTVER=3", "CLIENTVER=3.x", "CLIENTVER=.0", "CLIENTVER"} {
		_, err := ParseToken(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestParseExtBan(t *testing.T) {
	assert.Equal(t, ExtBan{Prefix: '~', Types: "qjncrRa"}, parseAdd(t, "EXTBAN=~,qjncrRa"))
	// Empty prefix means any prefix.
	assert.Equal(t, ExtBan{Prefix: 0, Types: "arxz"}, parseAdd(t, "EXTBAN=,arxz"))

	_, err := ParseToken("EXTBAN=~,q1")
	assert.EqualError(t, err, "invalid extended ban type(s)")
	_, err = ParseToken("EXTBAN=ü,q")
	assert.EqualError(t, err, "invalid extended ban prefix(es)")
	_, err = ParseToken("EXTBAN=noseparator")
	assert.EqualError(t, err, "no valid extended ban masks")
}

func TestParseMsgRefTypes(t *testing.T) {
	// Later entries are inserted at the front, reversing declared precedence.
	assert.Equal(t,
		MsgRefTypes([]MessageReferenceType{ReferenceTimestamp, ReferenceMessageID}),
		parseAdd(t, "MSGREFTYPES=msgid,timestamp"))

	// Unknown entries are ignored.
	assert.Equal(t,
		MsgRefTypes([]MessageReferenceType{ReferenceMessageID}),
		parseAdd(t, "MSGREFTYPES=msgid,counter"))

	// An empty list is valid.
	assert.Equal(t, MsgRefTypes(nil), parseAdd(t, "MSGREFTYPES"))
}

func TestParseClientTagDeny(t *testing.T) {
	assert.Equal(t,
		ClientTagDeny([]ClientOnlyTag{
			{Rule: DenyAllTags},
			{Rule: AllowTag, Name: "typing"},
			{Rule: DenyTag, Name: "react"},
		}),
		parseAdd(t, "CLIENTTAGDENY=*,-typing,react"))
}

func TestParseImplicitLetterDefaults(t *testing.T) {
	assert.Equal(t, CallerID('g'), parseAdd(t, "CALLERID"))
	assert.Equal(t, CallerID('G'), parseAdd(t, "CALLERID=G"))
	assert.Equal(t, Deaf('D'), parseAdd(t, "DEAF"))
	assert.Equal(t, Excepts('e'), parseAdd(t, "EXCEPTS"))
	assert.Equal(t, Invex('I'), parseAdd(t, "INVEX"))

	// An explicit empty value is not the same as no value.
	for _, token := range []string{"CALLERID=", "DEAF=", "EXCEPTS=", "INVEX=", "CALLERID=4"} {
		_, err := ParseToken(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestParseFlagParameters(t *testing.T) {
	assert.Equal(t, Knock{}, parseAdd(t, "KNOCK"))
	assert.Equal(t, SafeList{}, parseAdd(t, "SAFELIST"))
	assert.Equal(t, WhoX{}, parseAdd(t, "WHOX"))
	assert.Equal(t, UTF8Only{}, parseAdd(t, "UTF8ONLY"))
	assert.Equal(t, NamesX{}, parseAdd(t, "NAMESX"))
	// Flag keys accept (and ignore) a value.
	assert.Equal(t, Knock{}, parseAdd(t, "KNOCK=1"))
}

func TestParseELIST(t *testing.T) {
	assert.Equal(t, EList("CMNTU"), parseAdd(t, "ELIST=CMNTU"))
	// Letters are uppercased for storage.
	assert.Equal(t, EList("MT"), parseAdd(t, "ELIST=mt"))

	_, err := ParseToken("ELIST=CQ")
	assert.EqualError(t, err, "value required to only contain valid search extensions")
	_, err = ParseToken("ELIST=")
	assert.ErrorIs(t, err, ErrValueRequired)
}

func TestParseChanTypes(t *testing.T) {
	assert.Equal(t, ChanTypes([]rune{'#', '&'}), parseAdd(t, "CHANTYPES=#&"))
	// Empty means the server supports no channel types.
	assert.Equal(t, ChanTypes(nil), parseAdd(t, "CHANTYPES="))
	assert.Equal(t, ChanTypes(nil), parseAdd(t, "CHANTYPES"))
}

func TestParseStatusMsg(t *testing.T) {
	assert.Equal(t, StatusMsg([]rune{'@', '+'}), parseAdd(t, "STATUSMSG=@+"))

	_, err := ParseToken("STATUSMSG")
	assert.ErrorIs(t, err, ErrValueRequired)
}

func TestParseNetwork(t *testing.T) {
	assert.Equal(t, Network("Libera.Chat"), parseAdd(t, "NETWORK=Libera.Chat"))

	_, err := ParseToken("NETWORK")
	assert.ErrorIs(t, err, ErrValueRequired)
}
