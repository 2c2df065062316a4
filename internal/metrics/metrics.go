// Package metrics provides the centralized Prometheus metrics registry
// for the challenge tracker.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	RacesProcessedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "challenge_tracker",
		Name:      "races_processed_total",
		Help:      "Total number of race results applied to meetings",
	})
	OddsSnapshotsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "challenge_tracker",
		Name:      "odds_snapshots_total",
		Help:      "Total number of bookmaker odds snapshots applied",
	})
	UnmatchedNamesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "challenge_tracker",
		Name:      "unmatched_names_total",
		Help:      "Total number of scraped names that failed roster matching",
	})
	ValueBetsFoundTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "challenge_tracker",
		Name:      "value_bets_found_total",
		Help:      "Total number of value bets detected",
	})
	SpoolSweepsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "challenge_tracker",
		Name:      "spool_sweeps_total",
		Help:      "Total number of spool directory sweeps",
	})
)

// Gauge metrics
var (
	ActiveMeetings = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "challenge_tracker",
		Name:      "active_meetings",
		Help:      "Number of meetings currently tracked",
	})
	MeetingRacesCompleted = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "challenge_tracker",
		Name:      "meeting_races_completed",
		Help:      "Races completed per tracked meeting",
	}, []string{"meeting"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(RacesProcessedTotal)
		registry.MustRegister(OddsSnapshotsTotal)
		registry.MustRegister(UnmatchedNamesTotal)
		registry.MustRegister(ValueBetsFoundTotal)
		registry.MustRegister(SpoolSweepsTotal)

		registry.MustRegister(ActiveMeetings)
		registry.MustRegister(MeetingRacesCompleted)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordRaceProcessed records a race result application.
func RecordRaceProcessed() {
	RacesProcessedTotal.Inc()
}

// RecordOddsSnapshot records a bookmaker odds snapshot application.
func RecordOddsSnapshot() {
	OddsSnapshotsTotal.Inc()
}

// RecordUnmatchedNames records names that failed roster matching.
func RecordUnmatchedNames(count int) {
	UnmatchedNamesTotal.Add(float64(count))
}

// RecordValueBets records detected value bets.
func RecordValueBets(count int) {
	ValueBetsFoundTotal.Add(float64(count))
}

// RecordSpoolSweep records one spool directory sweep.
func RecordSpoolSweep() {
	SpoolSweepsTotal.Inc()
}

// UpdateActiveMeetings updates the tracked meetings gauge.
func UpdateActiveMeetings(count float64) {
	ActiveMeetings.Set(count)
}

// UpdateMeetingProgress updates the per-meeting races completed gauge.
func UpdateMeetingProgress(meeting string, racesCompleted float64) {
	MeetingRacesCompleted.WithLabelValues(meeting).Set(racesCompleted)
}
