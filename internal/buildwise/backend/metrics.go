package backend

import (
	"sync/atomic"
	"time"
)

// Metrics tracks calls made to the estimation service
type Metrics struct {
	EstimateCalls int64   `json:"estimate_calls"`
	PlanCalls     int64   `json:"plan_calls"`
	Errors        int64   `json:"errors"`
	AvgLatencyMs  float64 `json:"avg_latency_ms"`
	ErrorRatePct  float64 `json:"error_rate_pct"`
}

type counters struct {
	estimateCalls int64
	planCalls     int64
	errors        int64
	latency       int64 // Total latency in nanoseconds
}

var globalCounters = &counters{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	m := Metrics{
		EstimateCalls: atomic.LoadInt64(&globalCounters.estimateCalls),
		PlanCalls:     atomic.LoadInt64(&globalCounters.planCalls),
		Errors:        atomic.LoadInt64(&globalCounters.errors),
	}
	latency := atomic.LoadInt64(&globalCounters.latency)

	if total := m.EstimateCalls + m.PlanCalls; total > 0 {
		m.AvgLatencyMs = float64(latency) / float64(total) / 1e6
		m.ErrorRatePct = float64(m.Errors) / float64(total) * 100
	}
	return m
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalCounters.estimateCalls, 0)
	atomic.StoreInt64(&globalCounters.planCalls, 0)
	atomic.StoreInt64(&globalCounters.errors, 0)
	atomic.StoreInt64(&globalCounters.latency, 0)
}

func recordCall(calls *int64, duration time.Duration, err error) {
	atomic.AddInt64(calls, 1)
	atomic.AddInt64(&globalCounters.latency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalCounters.errors, 1)
	}
}
