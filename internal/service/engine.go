// Package service hosts the live challenge engine: a registry of meeting
// trackers plus the glue between ingestion, pricing, value detection and
// venue resolution.
package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/challenge-tracker/internal/datasource"
	"github.com/yourusername/challenge-tracker/internal/logger"
	"github.com/yourusername/challenge-tracker/internal/metrics"
	"github.com/yourusername/challenge-tracker/internal/models"
	"github.com/yourusername/challenge-tracker/internal/pricing"
	"github.com/yourusername/challenge-tracker/internal/tracker"
	"github.com/yourusername/challenge-tracker/internal/value"
	"github.com/yourusername/challenge-tracker/internal/venue"
)

// Engine is the in-memory registry of live meeting trackers. All methods
// are safe for concurrent use.
type Engine struct {
	mu       sync.RWMutex
	trackers map[string]*tracker.Tracker

	pricingCfg pricing.Config
	minEdge    float64
	venues     []models.Venue
	venueCache *cache.Cache
	logger     *logrus.Logger
	events     *logger.MeetingLogger
}

// Options configures an Engine. Zero values fall back to model defaults.
type Options struct {
	Pricing        pricing.Config
	MinEdgePercent float64
	Venues         []models.Venue
	VenueCacheTTL  time.Duration
}

// NewEngine creates an empty engine.
func NewEngine(opts Options, log *logrus.Logger) *Engine {
	if opts.MinEdgePercent == 0 {
		opts.MinEdgePercent = value.DefaultMinEdgePercent
	}
	if opts.VenueCacheTTL == 0 {
		opts.VenueCacheTTL = 5 * time.Minute
	}
	if opts.Pricing == (pricing.Config{}) {
		opts.Pricing = pricing.DefaultConfig()
	}
	return &Engine{
		trackers:   make(map[string]*tracker.Tracker),
		pricingCfg: opts.Pricing,
		minEdge:    opts.MinEdgePercent,
		venues:     opts.Venues,
		venueCache: cache.New(opts.VenueCacheTTL, 2*opts.VenueCacheTTL),
		logger:     log,
		events:     logger.NewMeetingLogger(log),
	}
}

// key normalizes meeting names for registry lookup.
func key(meeting string) string {
	return strings.ToUpper(strings.TrimSpace(meeting))
}

// InitMeeting registers a meeting and seeds its roster. Re-initializing an
// existing meeting resets it, mirroring how a late roster correction is
// delivered upstream.
func (e *Engine) InitMeeting(meeting string, kind models.ChallengeKind, entries []models.RosterEntry, totalRaces int) error {
	if totalRaces <= 0 {
		return fmt.Errorf("meeting %s: total races must be positive, got %d", meeting, totalRaces)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	k := key(meeting)
	tr, ok := e.trackers[k]
	if !ok {
		tr = tracker.New(meeting, kind, pricing.NewModel(e.pricingCfg))
		e.trackers[k] = tr
	}
	tr.Initialize(entries, totalRaces)

	metrics.UpdateActiveMeetings(float64(len(e.trackers)))
	e.logger.WithFields(logrus.Fields{
		"meeting":      tr.Name(),
		"kind":         kind,
		"total_races":  totalRaces,
		"participants": len(entries),
	}).Info("Meeting initialized")
	return nil
}

// ApplyResult applies one completed race to a meeting.
func (e *Engine) ApplyResult(meeting string, raceNumber int, results []models.ResultLine) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	tr, ok := e.trackers[key(meeting)]
	if !ok {
		return fmt.Errorf("meeting %s: %w", meeting, models.ErrMeetingNotFound)
	}

	stats := tr.UpdateRaceResult(raceNumber, results)
	metrics.RecordRaceProcessed()
	metrics.RecordUnmatchedNames(stats.Unmatched)
	metrics.UpdateMeetingProgress(tr.Name(), float64(tr.RacesCompleted()))

	e.events.LogRaceApplied(tr.Name(), raceNumber, stats.Matched, stats.Unmatched, string(tr.Status()))
	return nil
}

// ApplyOdds replaces one bookmaker's quote set for a meeting.
func (e *Engine) ApplyOdds(meeting, bookmaker string, entries []models.OddsEntry) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	tr, ok := e.trackers[key(meeting)]
	if !ok {
		return fmt.Errorf("meeting %s: %w", meeting, models.ErrMeetingNotFound)
	}

	stats := tr.AddBookmakerOdds(bookmaker, entries)
	metrics.RecordOddsSnapshot()
	metrics.RecordUnmatchedNames(stats.Unmatched)

	e.events.LogOddsSnapshot(tr.Name(), bookmaker, stats.Matched)
	return nil
}

// Scratch marks a participant as scratched.
func (e *Engine) Scratch(meeting, participant string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	tr, ok := e.trackers[key(meeting)]
	if !ok {
		return fmt.Errorf("meeting %s: %w", meeting, models.ErrMeetingNotFound)
	}
	if !tr.Scratch(participant) {
		return fmt.Errorf("meeting %s: no roster match for %q", tr.Name(), participant)
	}
	e.events.LogScratch(tr.Name(), participant)
	return nil
}

// MeetingView returns the aggregate read-side view of a meeting.
func (e *Engine) MeetingView(meeting string) (models.MeetingView, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	tr, ok := e.trackers[key(meeting)]
	if !ok {
		return models.MeetingView{}, fmt.Errorf("meeting %s: %w", meeting, models.ErrMeetingNotFound)
	}
	return tr.View(), nil
}

// ValueBets runs value detection over a meeting's current prices.
func (e *Engine) ValueBets(meeting string) ([]models.ValueBet, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	tr, ok := e.trackers[key(meeting)]
	if !ok {
		return nil, fmt.Errorf("meeting %s: %w", meeting, models.ErrMeetingNotFound)
	}

	bets := value.Find(tr.Name(), tr.Participants(), tr.BookmakerOrder(), e.minEdge)
	metrics.RecordValueBets(len(bets))
	for _, b := range bets {
		e.events.LogValueBet(b.Meeting, b.Participant, b.Bookmaker, b.BookmakerOdds, b.ModelPrice, b.EdgePercent)
	}
	return bets, nil
}

// ResolveVenue matches a meeting name against the configured venue list.
// Results (hits and misses both) are cached briefly since ingestion asks
// for the same handful of venues on every sweep.
func (e *Engine) ResolveVenue(meetingName string) (models.Venue, bool) {
	if hit, found := e.venueCache.Get(key(meetingName)); found {
		v, ok := hit.(models.Venue)
		return v, ok && v.Name != ""
	}

	v, ok := venue.Resolve(meetingName, e.venues)
	e.venueCache.Set(key(meetingName), v, cache.DefaultExpiration)
	return v, ok
}

// Meetings lists tracked meeting names in registry order.
func (e *Engine) Meetings() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.trackers))
	for _, tr := range e.trackers {
		names = append(names, tr.Name())
	}
	return names
}

// Delete removes a meeting from the registry.
func (e *Engine) Delete(meeting string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	k := key(meeting)
	if _, ok := e.trackers[k]; !ok {
		return fmt.Errorf("meeting %s: %w", meeting, models.ErrMeetingNotFound)
	}
	delete(e.trackers, k)
	metrics.UpdateActiveMeetings(float64(len(e.trackers)))
	return nil
}

// ApplyBatch applies one spool sweep: rosters first, then odds, then
// results. Races at or below a meeting's completed count are skipped so a
// re-delivered spool file cannot double-count points.
func (e *Engine) ApplyBatch(batch *datasource.Batch) {
	if batch.Empty() {
		return
	}

	for _, doc := range batch.Rosters {
		if err := e.InitMeeting(doc.Meeting, doc.Kind, doc.Entries, doc.TotalRaces); err != nil {
			e.logger.WithError(err).WithField("meeting", doc.Meeting).Warn("Skipping roster document")
		}
	}

	for _, doc := range batch.Odds {
		entries, dropped := doc.ParsedEntries()
		if dropped > 0 {
			e.logger.WithFields(logrus.Fields{
				"meeting":   doc.Meeting,
				"bookmaker": doc.Bookmaker,
				"dropped":   dropped,
			}).Warn("Dropped unparseable quote lines")
		}
		if err := e.ApplyOdds(doc.Meeting, doc.Bookmaker, entries); err != nil {
			e.logger.WithError(err).WithField("meeting", doc.Meeting).Warn("Skipping odds document")
		}
	}

	for _, doc := range batch.Results {
		completed := e.racesCompleted(doc.Meeting)
		if completed < 0 {
			e.logger.WithField("meeting", doc.Meeting).Warn("Skipping results for unknown meeting")
			continue
		}
		for _, race := range doc.Races {
			if race.RaceNumber <= completed {
				continue
			}
			if err := e.ApplyResult(doc.Meeting, race.RaceNumber, race.Results); err != nil {
				e.logger.WithError(err).WithFields(logrus.Fields{
					"meeting": doc.Meeting,
					"race":    race.RaceNumber,
				}).Warn("Skipping race result")
				continue
			}
			completed = race.RaceNumber
		}
	}
}

// racesCompleted returns a meeting's completed count, or -1 when untracked.
func (e *Engine) racesCompleted(meeting string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	tr, ok := e.trackers[key(meeting)]
	if !ok {
		return -1
	}
	return tr.RacesCompleted()
}
