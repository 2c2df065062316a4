package models

import "time"

// MeetingStatus represents the lifecycle state of a tracked meeting.
// Transitions are strictly upcoming -> in_progress -> completed.
type MeetingStatus string

const (
	MeetingStatusUpcoming   MeetingStatus = "upcoming"
	MeetingStatusInProgress MeetingStatus = "in_progress"
	MeetingStatusCompleted  MeetingStatus = "completed"
)

// RaceRecord is one entry in a meeting's append-only race result log.
type RaceRecord struct {
	RaceNumber int          `json:"race_number"`
	Results    []ResultLine `json:"results"`
	Timestamp  time.Time    `json:"timestamp"`
}

// StandingsRow is one participant's view in the standings snapshot.
type StandingsRow struct {
	Rank           int                `json:"rank"`
	Name           string             `json:"name"`
	RidesDone      int                `json:"rides_done"`
	RidesLeft      int                `json:"rides_left"`
	Wins           int                `json:"wins"`
	Seconds        int                `json:"seconds"`
	Thirds         int                `json:"thirds"`
	Points         int                `json:"points"`
	LastRacePoints int                `json:"last_race_points"`
	AIWinPct       float64            `json:"ai_win_pct"`
	AIPrice        float64            `json:"ai_price"`
	IsLeader       bool               `json:"is_leader"`
	InitialOdds    float64            `json:"initial_odds"`
	CurrentOdds    map[string]float64 `json:"current_odds"`
	History        []HistoryEntry     `json:"history"`
}

// ProgressionCell describes the points movement for one participant in one race.
type ProgressionCell struct {
	Gained     int    `json:"gained"`
	Cumulative int    `json:"cumulative"`
	Display    string `json:"display"`
}

// ProgressionRow maps race labels (e.g. "R4") to points movement for one participant.
type ProgressionRow struct {
	Name   string                     `json:"name"`
	Points int                        `json:"points"`
	Races  map[string]ProgressionCell `json:"races"`
}

// MeetingView is the aggregate read-side view of a tracked meeting.
type MeetingView struct {
	Name           string           `json:"meeting"`
	Kind           ChallengeKind    `json:"kind"`
	Status         MeetingStatus    `json:"status"`
	TotalRaces     int              `json:"total_races"`
	RacesCompleted int              `json:"races_completed"`
	RacesRemaining int              `json:"races_remaining"`
	LastUpdated    time.Time        `json:"last_updated"`
	Standings      []StandingsRow   `json:"standings"`
	Progression    []ProgressionRow `json:"progression"`
	RaceLog        []RaceRecord     `json:"race_results"`
}
