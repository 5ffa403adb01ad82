package guard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/atomic"
)

// Check names used as the "check" label of guardChecks.
const (
	checkEnumMember  = "enum_member"
	checkNotNil      = "not_nil"
	checkNotNilValue = "not_nil_value"
	checkNotEmpty    = "not_empty"
	checkNotEmptySeq = "not_empty_seq"
	checkNotEmptyMap = "not_empty_map"
	checkNotBlank    = "not_blank"
	checkValid       = "valid"
	checkFileExists  = "file_exists"
	checkNotZero     = "not_zero"
	checkStateNotNil = "state_not_nil"
)

// Outcome label values.
const (
	outcomeOK   = "ok"
	outcomeFail = "fail"
)

// guardChecks counts guard invocations by check name and outcome.
//
// Labels:
//   - check: which guard ran (see the check* constants).
//   - outcome: "ok" if the check passed, "fail" if it returned an error.
//
// Useful queries:
//   - rate(guard_checks_total[5m]) - guard calls per second
//   - sum(rate(guard_checks_total{outcome="fail"}[5m])) by (check) - failure hotspots
//
// Metrics are intentionally global: they are registered once and shared
// across the process lifetime.
var guardChecks = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "guard_checks_total",
	Help: "The total number of guard checks, by check name and outcome",
}, []string{"check", "outcome"})

// metricsEnabled gates metric recording so hot paths can opt out via
// SetMetricsEnabled. Defaults to on.
var metricsEnabled = atomic.NewBool(true) //nolint:gochecknoglobals

// SetMetricsEnabled turns guard metric recording on or off. Recording is
// on by default; disabling it makes every guard a pure in-memory check
// with no counter updates. Safe to call concurrently.
func SetMetricsEnabled(enabled bool) {
	metricsEnabled.Store(enabled)
}

// observe records the outcome of a single guard call.
func observe(check string, err error) {
	if !metricsEnabled.Load() {
		return
	}

	outcome := outcomeOK
	if err != nil {
		outcome = outcomeFail
	}

	guardChecks.WithLabelValues(check, outcome).Inc()
}

// Pre-initialize every label combination so dashboards and rate()
// queries see the full time series from process start.
func init() {
	checks := []string{
		checkEnumMember, checkNotNil, checkNotNilValue, checkNotEmpty,
		checkNotEmptySeq, checkNotEmptyMap, checkNotBlank, checkValid,
		checkFileExists, checkNotZero, checkStateNotNil,
	}

	for _, check := range checks {
		guardChecks.WithLabelValues(check, outcomeOK).Add(0)
		guardChecks.WithLabelValues(check, outcomeFail).Add(0)
	}
}
