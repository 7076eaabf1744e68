// Package isupportprom instruments an ISUPPORT negotiation stream with
// Prometheus metrics: per-outcome token counters and a capability table
// size gauge.
package isupportprom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/opalirc/irctk/isupport"
)

// Token outcomes recorded by TokensTotal.
const (
	OutcomeApplied   = "applied"   // stored in the table
	OutcomeDiscarded = "discarded" // valid, but carries no table kind
	OutcomeRemoved   = "removed"   // removal token
	OutcomeRejected  = "rejected"  // failed its grammar
)

var (
	// Registry is the Prometheus registry used by this package.
	Registry = prometheus.NewRegistry()

	// TokensTotal counts processed ISUPPORT tokens by outcome.
	TokensTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "isupport_tokens_total",
			Help: "Total number of ISUPPORT tokens processed, by outcome",
		},
		[]string{"outcome"},
	)

	// TableEntries tracks the current capability table size.
	TableEntries = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "isupport_table_entries",
			Help: "Number of capabilities currently stored in the table",
		},
	)
)

// Observer applies ISUPPORT tokens to a capability table while recording
// metrics. It adds no locking; confine it to the connection's goroutine as
// you would the table itself.
type Observer struct {
	Table isupport.Table
}

// NewObserver returns an Observer over a fresh table.
func NewObserver() *Observer {
	return &Observer{Table: isupport.NewTable()}
}

// ApplyToken parses and applies one token, recording its outcome. The error
// is the parser's token-scoped reason; callers skip the token and continue.
func (o *Observer) ApplyToken(token string) error {
	op, err := isupport.ParseToken(token)
	if err != nil {
		TokensTotal.WithLabelValues(OutcomeRejected).Inc()
		return err
	}
	switch op := op.(type) {
	case isupport.Remove:
		TokensTotal.WithLabelValues(OutcomeRemoved).Inc()
	case isupport.Add:
		if _, ok := isupport.ParamKind(op.Param); ok {
			TokensTotal.WithLabelValues(OutcomeApplied).Inc()
		} else {
			TokensTotal.WithLabelValues(OutcomeDiscarded).Inc()
		}
	}
	o.Table.Apply(op)
	TableEntries.Set(float64(len(o.Table)))
	return nil
}
