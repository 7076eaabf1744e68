// Package whox builds and correlates WHOX requests, the extended WHO form
// that lets a client choose reply fields and embed a numeric token echoed
// back in every reply line.
//
// Reference: https://ircv3.net/specs/extensions/whox
package whox

import "errors"

// Token is the 1-3 ASCII digit identifier embedded in a WHOX request and
// echoed in its replies for correlation. Unused slots stay zero.
type Token struct {
	digits [3]byte
}

// ErrBadToken reports a token that is not 1-3 ASCII digits.
var ErrBadToken = errors.New("WHO token must be 1-3 ASCII digits")

// ParseToken parses a token echoed in a WHOX reply.
func ParseToken(s string) (Token, error) {
	if len(s) < 1 || len(s) > 3 {
		return Token{}, ErrBadToken
	}
	var t Token
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Token{}, ErrBadToken
		}
		t.digits[i] = s[i]
	}
	return t, nil
}

// String renders the token for a request, trimming unused slots.
func (t Token) String() string {
	n := 0
	for n < len(t.digits) && t.digits[n] != 0 {
		n++
	}
	return string(t.digits[:n])
}

// PollParameters is one of the two canned WHOX polling configurations. The
// two use tokens of different lengths, so the echoed token alone identifies
// which request shape produced an incoming reply line.
type PollParameters int

const (
	// PollDefault requests token, channel, nick, and flags.
	PollDefault PollParameters = iota
	// PollWithAccountName additionally requests the account name.
	PollWithAccountName
)

// Fields returns the WHOX field selector for the configuration.
func (p PollParameters) Fields() string {
	if p == PollWithAccountName {
		return "tcnfa"
	}
	return "tcnf"
}

// Token returns the correlation token for the configuration.
func (p PollParameters) Token() Token {
	if p == PollWithAccountName {
		return Token{digits: [3]byte{'9', '9', 0}}
	}
	return Token{digits: [3]byte{'9', 0, 0}}
}
