package ledger

import "github.com/prometheus/client_golang/prometheus"

var expensesRecorded = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "ledger_expenses_recorded_total",
		Help: "How many expenses have been recorded.",
	},
)

var expensesOverspent = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "ledger_expenses_overspent_total",
		Help: "How many recorded expenses exceeded the income of their user.",
	},
)

var budgetsCreated = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "ledger_budgets_created_total",
		Help: "How many budget entries have been created.",
	},
)

// Collectors returns the Prometheus metrics of the ledger.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		expensesRecorded,
		expensesOverspent,
		budgetsCreated,
	}
}
