// Package tracker owns the per-meeting challenge state machine: it
// accumulates placings and points race by race and drives pricing
// recomputes. A Tracker is not safe for concurrent use; callers serialize
// access per meeting.
package tracker

import (
	"strings"
	"time"

	"github.com/yourusername/challenge-tracker/internal/matching"
	"github.com/yourusername/challenge-tracker/internal/models"
	"github.com/yourusername/challenge-tracker/internal/pricing"
)

// Points for positions 1-3. Any other position scores zero.
var pointsByPosition = map[int]int{1: 3, 2: 2, 3: 1}

// ApplyStats reports how many scraped names resolved against the roster.
type ApplyStats struct {
	Matched   int
	Unmatched int
}

// Tracker tracks one meeting's challenge from initialization to completion.
type Tracker struct {
	name           string
	kind           models.ChallengeKind
	totalRaces     int
	racesCompleted int
	status         models.MeetingStatus
	order          []string
	participants   map[string]*models.Participant
	raceLog        []models.RaceRecord
	bookmakerOrder []string
	bookmakerOdds  map[string]map[string]float64
	model          *pricing.Model
	createdAt      time.Time
	lastUpdated    time.Time
}

// New creates an empty tracker for a meeting. Initialize must be called
// before race results are applied. Meeting names are case-normalized to
// their upper form.
func New(name string, kind models.ChallengeKind, model *pricing.Model) *Tracker {
	now := time.Now()
	return &Tracker{
		name:          strings.ToUpper(strings.TrimSpace(name)),
		kind:          kind,
		status:        models.MeetingStatusUpcoming,
		participants:  make(map[string]*models.Participant),
		bookmakerOdds: make(map[string]map[string]float64),
		model:         model,
		createdAt:     now,
		lastUpdated:   now,
	}
}

// Name returns the canonical upper-cased meeting name.
func (t *Tracker) Name() string { return t.name }

// Kind returns the challenge kind.
func (t *Tracker) Kind() models.ChallengeKind { return t.kind }

// Status returns the current lifecycle state.
func (t *Tracker) Status() models.MeetingStatus { return t.status }

// TotalRaces returns the race count fixed at initialization.
func (t *Tracker) TotalRaces() int { return t.totalRaces }

// RacesCompleted returns the highest race number applied so far.
func (t *Tracker) RacesCompleted() int { return t.racesCompleted }

// Initialize seeds the roster and fixes the total race count. Calling it
// again discards all accumulated state and starts the meeting over; it is a
// reset, not an additive operation.
func (t *Tracker) Initialize(entries []models.RosterEntry, totalRaces int) {
	t.totalRaces = totalRaces
	t.racesCompleted = 0
	t.status = models.MeetingStatusUpcoming
	t.order = t.order[:0]
	t.participants = make(map[string]*models.Participant, len(entries))
	t.raceLog = nil
	t.bookmakerOrder = nil
	t.bookmakerOdds = make(map[string]map[string]float64)

	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		if _, exists := t.participants[e.Name]; exists {
			continue
		}
		t.order = append(t.order, e.Name)
		t.participants[e.Name] = &models.Participant{
			Name:        e.Name,
			Kind:        t.kind,
			RidesLeft:   totalRaces,
			History:     []models.HistoryEntry{},
			InitialOdds: e.Odds,
			CurrentOdds: make(map[string]float64),
		}
	}

	t.model.Recompute(t.active())
	t.lastUpdated = time.Now()
}

// AddBookmakerOdds replaces the full set of quotes held for one bookmaker.
// Names are resolved against the roster; quotes that match no participant
// are dropped without touching the roster. Returns match statistics so the
// caller can log or count the drops.
func (t *Tracker) AddBookmakerOdds(bookmaker string, entries []models.OddsEntry) ApplyStats {
	var stats ApplyStats
	quotes := make(map[string]float64, len(entries))
	for _, e := range entries {
		canonical, ok := matching.Match(e.Name, t.order)
		if !ok {
			stats.Unmatched++
			continue
		}
		stats.Matched++
		quotes[canonical] = e.Odds
	}

	if _, seen := t.bookmakerOdds[bookmaker]; !seen {
		t.bookmakerOrder = append(t.bookmakerOrder, bookmaker)
	}
	t.bookmakerOdds[bookmaker] = quotes

	for name, p := range t.participants {
		if odds, ok := quotes[name]; ok {
			p.CurrentOdds[bookmaker] = odds
		} else {
			delete(p.CurrentOdds, bookmaker)
		}
	}

	t.lastUpdated = time.Now()
	return stats
}

// UpdateRaceResult applies one completed race. Scraped names resolve
// against the roster via the tiered matcher; unmatched lines are skipped.
// Presence in the result set is what counts as a completed ride, whether or
// not the position carries points. Each paying position scores at most
// once: a dead-heat line repeating a claimed position is dropped, keeping a
// race's total award at six points. Absent participants record a zero-gain
// history entry for the race so every history stays index-aligned. Race
// numbers are expected in increasing order; the tracker does not detect
// duplicates or reordering.
func (t *Tracker) UpdateRaceResult(raceNumber int, results []models.ResultLine) ApplyStats {
	var stats ApplyStats

	positions := make(map[string]int, len(results))
	claimed := make(map[int]bool, 3)
	for _, line := range results {
		canonical, ok := matching.Match(line.Participant, t.order)
		if !ok {
			stats.Unmatched++
			continue
		}
		stats.Matched++
		if _, taken := positions[canonical]; taken {
			continue
		}
		if claimed[line.Position] && pointsByPosition[line.Position] > 0 {
			continue
		}
		positions[canonical] = line.Position
		claimed[line.Position] = true
	}

	for _, name := range t.order {
		p := t.participants[name]
		pos, present := positions[name]
		if !present {
			continue
		}
		p.RidesDone++
		p.RidesLeft = t.totalRaces - p.RidesDone
		if p.RidesLeft < 0 {
			p.RidesLeft = 0
		}
		switch pos {
		case 1:
			p.Wins++
		case 2:
			p.Seconds++
		case 3:
			p.Thirds++
		}
		gained := pointsByPosition[pos]
		p.LastRacePoints = gained
		p.Points += gained
		p.History = append(p.History, models.HistoryEntry{
			RaceNumber:       raceNumber,
			PointsGained:     gained,
			CumulativePoints: p.Points,
		})
	}

	if t.anyEverPresent() {
		for _, name := range t.order {
			p := t.participants[name]
			if _, present := positions[name]; present {
				continue
			}
			p.LastRacePoints = 0
			p.History = append(p.History, models.HistoryEntry{
				RaceNumber:       raceNumber,
				PointsGained:     0,
				CumulativePoints: p.Points,
			})
		}
	}

	t.raceLog = append(t.raceLog, models.RaceRecord{
		RaceNumber: raceNumber,
		Results:    results,
		Timestamp:  time.Now(),
	})

	t.recomputeLeaders()
	t.racesCompleted = raceNumber
	if t.racesCompleted >= t.totalRaces {
		t.status = models.MeetingStatusCompleted
	} else {
		t.status = models.MeetingStatusInProgress
	}
	t.model.Recompute(t.active())
	t.lastUpdated = time.Now()
	return stats
}

// Scratch withdraws a participant from the challenge. Scratched entrants
// are excluded from pricing, standings and the leader set; the flag is
// never reversed within a meeting. The name resolves through the matcher so
// scraped spellings work.
func (t *Tracker) Scratch(name string) bool {
	canonical, ok := matching.Match(name, t.order)
	if !ok {
		return false
	}
	t.participants[canonical].IsScratched = true
	t.recomputeLeaders()
	t.model.Recompute(t.active())
	t.lastUpdated = time.Now()
	return true
}

// Participants returns active participants in roster order.
func (t *Tracker) Participants() []*models.Participant {
	return t.active()
}

// BookmakerOrder returns bookmakers in first-report order.
func (t *Tracker) BookmakerOrder() []string {
	out := make([]string, len(t.bookmakerOrder))
	copy(out, t.bookmakerOrder)
	return out
}

func (t *Tracker) active() []*models.Participant {
	out := make([]*models.Participant, 0, len(t.order))
	for _, name := range t.order {
		if p := t.participants[name]; p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}

func (t *Tracker) anyEverPresent() bool {
	for _, p := range t.participants {
		if p.RidesDone > 0 {
			return true
		}
	}
	return false
}

// Leaders are the active participants holding the points maximum. Nobody
// leads while the maximum is still zero.
func (t *Tracker) recomputeLeaders() {
	maxPoints := 0
	for _, name := range t.order {
		p := t.participants[name]
		if p.IsActive() && p.Points > maxPoints {
			maxPoints = p.Points
		}
	}
	for _, name := range t.order {
		p := t.participants[name]
		p.IsLeader = p.IsActive() && maxPoints > 0 && p.Points == maxPoints
	}
}
