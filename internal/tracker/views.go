package tracker

import (
	"fmt"
	"sort"

	"github.com/yourusername/challenge-tracker/internal/models"
)

// Standings returns the live leaderboard for active participants, sorted by
// points then wins, both descending. Rank is 1-based; ties keep roster order.
func (t *Tracker) Standings() []models.StandingsRow {
	active := t.active()
	rows := make([]models.StandingsRow, 0, len(active))
	for _, p := range active {
		odds := make(map[string]float64, len(p.CurrentOdds))
		for bk, o := range p.CurrentOdds {
			odds[bk] = o
		}
		history := make([]models.HistoryEntry, len(p.History))
		copy(history, p.History)
		rows = append(rows, models.StandingsRow{
			Name:           p.Name,
			RidesDone:      p.RidesDone,
			RidesLeft:      p.RidesLeft,
			Wins:           p.Wins,
			Seconds:        p.Seconds,
			Thirds:         p.Thirds,
			Points:         p.Points,
			LastRacePoints: p.LastRacePoints,
			AIWinPct:       p.AIWinPct,
			AIPrice:        p.AIPrice,
			IsLeader:       p.IsLeader,
			InitialOdds:    p.InitialOdds,
			CurrentOdds:    odds,
			History:        history,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Wins > rows[j].Wins
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// Progression returns the race-by-race points table, one row per active
// participant sorted by total points descending. Race labels are "R<n>" and
// each cell carries a display string like "+3 (5)".
func (t *Tracker) Progression() []models.ProgressionRow {
	active := t.active()
	rows := make([]models.ProgressionRow, 0, len(active))
	for _, p := range active {
		races := make(map[string]models.ProgressionCell, len(p.History))
		for _, h := range p.History {
			races[fmt.Sprintf("R%d", h.RaceNumber)] = models.ProgressionCell{
				Gained:     h.PointsGained,
				Cumulative: h.CumulativePoints,
				Display:    fmt.Sprintf("+%d (%d)", h.PointsGained, h.CumulativePoints),
			}
		}
		rows = append(rows, models.ProgressionRow{
			Name:   p.Name,
			Points: p.Points,
			Races:  races,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Points > rows[j].Points
	})
	return rows
}

// View bundles status, race counts and the standings and progression tables
// into one aggregate snapshot for presentation collaborators.
func (t *Tracker) View() models.MeetingView {
	raceLog := make([]models.RaceRecord, len(t.raceLog))
	copy(raceLog, t.raceLog)
	return models.MeetingView{
		Name:           t.name,
		Kind:           t.kind,
		Status:         t.status,
		TotalRaces:     t.totalRaces,
		RacesCompleted: t.racesCompleted,
		RacesRemaining: t.totalRaces - t.racesCompleted,
		LastUpdated:    t.lastUpdated,
		Standings:      t.Standings(),
		Progression:    t.Progression(),
		RaceLog:        raceLog,
	}
}
