package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpdateTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockpile_update_ticks_total",
		Help: "Reconciliation ticks executed by the registry loop.",
	})

	ReindexRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockpile_reindex_runs_total",
		Help: "Full reindex passes, periodic or requested.",
	})

	Commits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockpile_commits_total",
		Help: "Committed transactions, including single-op sugar.",
	})

	Clamped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockpile_clamped_operations_total",
		Help: "Committed operations that applied less than the working copy promised.",
	})

	Binds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockpile_binds_total",
		Help: "Bind attempts by result.",
	}, []string{"result"})
)
