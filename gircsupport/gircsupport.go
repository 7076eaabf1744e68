// Package gircsupport attaches an ISUPPORT capability tracker to a girc
// client. Every RPL_ISUPPORT (005) line the client receives is tokenized,
// parsed, and applied to a capability table; malformed tokens are skipped
// and optionally reported.
package gircsupport

import (
	"sync"

	"github.com/lrstanley/girc"

	"github.com/opalirc/irctk/isupport"
)

// Tracker accumulates a connection's advertised capabilities. Methods are
// safe for concurrent use; girc runs handlers on its read loop while the
// application reads the table from elsewhere.
type Tracker struct {
	// OnError, when set, is called with each token that failed to parse.
	// Set it before Attach.
	OnError func(token string, err error)

	mu    sync.RWMutex
	table isupport.Table
}

// New returns a Tracker with an empty capability table.
func New() *Tracker {
	return &Tracker{table: isupport.NewTable()}
}

// Attach registers the tracker's 005 handler on the client.
func (tr *Tracker) Attach(c *girc.Client) {
	c.Handlers.Add(girc.RPL_ISUPPORT, tr.handle)
}

func (tr *Tracker) handle(_ *girc.Client, e girc.Event) {
	// Params[0] is our nick and the last param is the "are supported by
	// this server" trailer; the tokens sit in between.
	if len(e.Params) < 3 {
		return
	}
	tr.ApplyTokens(e.Params[1 : len(e.Params)-1]...)
}

// ApplyTokens parses each token and applies it to the table in order. One
// bad token never aborts the rest.
func (tr *Tracker) ApplyTokens(tokens ...string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	for _, token := range tokens {
		op, err := isupport.ParseToken(token)
		if err != nil {
			if tr.OnError != nil {
				tr.OnError(token, err)
			}
			continue
		}
		tr.table.Apply(op)
	}
}

// Reset clears the table. Call it on reconnect, before the new 005 burst.
func (tr *Tracker) Reset() {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.table = isupport.NewTable()
}

// Table returns a snapshot copy of the capability table.
func (tr *Tracker) Table() isupport.Table {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	snapshot := isupport.NewTable()
	for kind, param := range tr.table {
		snapshot[kind] = param
	}
	return snapshot
}

// CaseMap returns the connection's current casemapping.
func (tr *Tracker) CaseMap() isupport.CaseMap {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.table.CaseMapOrDefault()
}

// Normalize folds a nick or channel name under the connection's current
// casemapping.
func (tr *Tracker) Normalize(name string) string {
	return tr.CaseMap().Normalize(name)
}
