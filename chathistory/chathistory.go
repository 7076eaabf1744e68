// Package chathistory models the protocol artifacts of the IRCv3
// chathistory extension: message references, the subcommand shapes used to
// request pages of history, and the timestamp fuzzing that compensates for
// clock skew between client and server.
//
// The package is purely value types and pure functions; deciding when to
// request history (and parsing the replies) belongs to the caller.
//
// Reference: https://ircv3.net/specs/extensions/chathistory
package chathistory

import (
	"fmt"
	"time"
)

// MessageReferenceType discriminates a MessageReference.
type MessageReferenceType int

// Message reference forms.
const (
	// None addresses no message; it formats as "*" and matches nothing.
	None MessageReferenceType = iota
	// Timestamp addresses a message by server time.
	Timestamp
	// MessageID addresses a message by its msgid tag.
	MessageID
)

// MessageReference addresses one point in a target's history. The zero
// value is the None reference.
type MessageReference struct {
	Type MessageReferenceType
	Time time.Time
	ID   string
}

// TimestampReference returns a reference addressing the given server time.
func TimestampReference(t time.Time) MessageReference {
	return MessageReference{Type: Timestamp, Time: t}
}

// MessageIDReference returns a reference addressing the message with the
// given id.
func MessageIDReference(id string) MessageReference {
	return MessageReference{Type: MessageID, ID: id}
}

// String renders the reference in CHATHISTORY wire form:
// "timestamp=<RFC3339 millis, UTC>", "msgid=<id>", or "*" for None.
func (r MessageReference) String() string {
	switch r.Type {
	case Timestamp:
		return fmt.Sprintf("timestamp=%s", r.Time.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
	case MessageID:
		return fmt.Sprintf("msgid=%s", r.ID)
	default:
		return "*"
	}
}

// Matches reports whether the reference addresses a message with the given
// server time and id. Pass an empty id for messages without one. The None
// reference matches nothing.
func (r MessageReference) Matches(serverTime time.Time, id string) bool {
	switch r.Type {
	case Timestamp:
		return r.Time.Equal(serverTime)
	case MessageID:
		return r.ID != "" && r.ID == id
	default:
		return false
	}
}

// FuzzWindow is how far a bounded-range request is widened on each side to
// absorb clock skew between client-observed and server-observed timestamps.
const FuzzWindow = 5 * time.Second

// FuzzStart shifts a timestamp reference FuzzWindow earlier. Non-timestamp
// references pass through unchanged.
func FuzzStart(r MessageReference) MessageReference {
	if r.Type == Timestamp {
		return TimestampReference(r.Time.Add(-FuzzWindow))
	}
	return r
}

// FuzzEnd shifts a timestamp reference FuzzWindow later. Non-timestamp
// references pass through unchanged.
func FuzzEnd(r MessageReference) MessageReference {
	if r.Type == Timestamp {
		return TimestampReference(r.Time.Add(FuzzWindow))
	}
	return r
}

// FuzzRange widens a bounded range outward: whichever of the two timestamp
// references is chronologically earlier is fuzzed earlier and the other
// later, regardless of argument order, so the returned pair is never
// narrowed. If either reference is not a timestamp, both pass through
// unchanged.
func FuzzRange(first, second MessageReference) (MessageReference, MessageReference) {
	if first.Type != Timestamp || second.Type != Timestamp {
		return first, second
	}
	if first.Time.Before(second.Time) {
		return FuzzStart(first), FuzzEnd(second)
	}
	return FuzzEnd(first), FuzzStart(second)
}
