package isupport

// Table is the capability table: at most one current value per recognized
// capability kind, last write wins. It is the only durable state of the
// negotiation subsystem and is owned by a single connection; share it across
// goroutines only behind external locking.
type Table map[Kind]Param

// NewTable returns an empty capability table.
func NewTable() Table {
	return make(Table)
}

// Apply applies one parsed operation. Adds of parameters without a Kind are
// dropped after validation; removals of unmodeled names are ignored. Each
// operation is atomic: the table is never left partially updated.
func (t Table) Apply(op Operation) {
	switch op := op.(type) {
	case Add:
		if kind, ok := ParamKind(op.Param); ok {
			t[kind] = op.Param
		}
	case Remove:
		if kind, ok := KindByName(string(op)); ok {
			delete(t, kind)
		}
	}
}

// Get returns the stored parameter for the kind, if any. Most callers want
// the *OrDefault accessors instead, which verify the stored value's type and
// fall back to the protocol default.
func (t Table) Get(kind Kind) (Param, bool) {
	p, ok := t[kind]
	return p, ok
}
