package chathistory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessageReferenceString(t *testing.T) {
	at := time.Date(2024, time.March, 15, 9, 30, 0, 250_000_000, time.UTC)
	assert.Equal(t, "timestamp=2024-03-15T09:30:00.250Z", TimestampReference(at).String())
	assert.Equal(t, "msgid=abc-123", MessageIDReference("abc-123").String())
	assert.Equal(t, "*", MessageReference{}.String())
}

func TestMessageReferenceStringConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	at := time.Date(2024, time.March, 15, 11, 30, 0, 0, zone)
	assert.Equal(t, "timestamp=2024-03-15T09:30:00.000Z", TimestampReference(at).String())
}

func TestMessageReferenceMatches(t *testing.T) {
	at := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

	assert.True(t, TimestampReference(at).Matches(at, "abc"))
	assert.False(t, TimestampReference(at).Matches(at.Add(time.Millisecond), "abc"))

	assert.True(t, MessageIDReference("abc").Matches(at, "abc"))
	assert.False(t, MessageIDReference("abc").Matches(at, "def"))
	// A message without an id never matches an id reference.
	assert.False(t, MessageIDReference("abc").Matches(at, ""))

	// None matches nothing.
	assert.False(t, MessageReference{}.Matches(at, "abc"))
	assert.False(t, MessageReference{}.Matches(at, ""))
}

func TestFuzzStartAndEnd(t *testing.T) {
	at := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, TimestampReference(at.Add(-5*time.Second)), FuzzStart(TimestampReference(at)))
	assert.Equal(t, TimestampReference(at.Add(5*time.Second)), FuzzEnd(TimestampReference(at)))

	// Non-timestamp references pass through unchanged.
	assert.Equal(t, MessageIDReference("abc"), FuzzStart(MessageIDReference("abc")))
	assert.Equal(t, MessageReference{}, FuzzEnd(MessageReference{}))
}

func TestFuzzRangeWidensOutward(t *testing.T) {
	at := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)
	a := TimestampReference(at)
	b := TimestampReference(at.Add(10 * time.Second))

	start, end := FuzzRange(a, b)
	assert.Equal(t, TimestampReference(at.Add(-5*time.Second)), start)
	assert.Equal(t, TimestampReference(at.Add(15*time.Second)), end)
}

func TestFuzzRangeOrderIndependent(t *testing.T) {
	at := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)
	a := TimestampReference(at)
	b := TimestampReference(at.Add(10 * time.Second))

	// Callers do not pre-sort: the earlier reference is always fuzzed
	// earlier, whichever argument position held it.
	x1, y1 := FuzzRange(a, b)
	x2, y2 := FuzzRange(b, a)
	assert.Equal(t, x1, y2)
	assert.Equal(t, y1, x2)
}

func TestFuzzRangePassThrough(t *testing.T) {
	at := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)
	ts := TimestampReference(at)
	id := MessageIDReference("abc")

	x, y := FuzzRange(ts, id)
	assert.Equal(t, ts, x)
	assert.Equal(t, id, y)

	x, y = FuzzRange(MessageReference{}, ts)
	assert.Equal(t, MessageReference{}, x)
	assert.Equal(t, ts, y)
}

func TestSubcommandTarget(t *testing.T) {
	ref := MessageIDReference("abc")

	for _, sub := range []Subcommand{
		Latest{Target: "#chan", Reference: ref, Limit: 100},
		Before{Target: "#chan", Reference: ref, Limit: 100},
		Between{Target: "#chan", Start: ref, End: ref, Limit: 100},
	} {
		target, ok := SubcommandTarget(sub)
		assert.True(t, ok, "%T should address a target", sub)
		assert.Equal(t, "#chan", target)
	}

	_, ok := SubcommandTarget(Targets{Start: ref, End: ref, Limit: 100})
	assert.False(t, ok, "Targets addresses no target")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "exhausted", Exhausted.String())
	assert.Equal(t, "pending-request", PendingRequest.String())
	assert.Equal(t, "ready", Ready.String())
}
