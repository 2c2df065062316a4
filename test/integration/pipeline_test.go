//go:build integration

package integration

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/challenge-tracker/internal/datasource"
	"github.com/yourusername/challenge-tracker/internal/models"
	"github.com/yourusername/challenge-tracker/internal/scheduler"
	"github.com/yourusername/challenge-tracker/internal/service"
	"github.com/yourusername/challenge-tracker/test/helpers"
)

const skipIntegration = "Skipping integration test in short mode"

// TestSpoolPipeline drives the full path from spool files through the
// engine: roster seeding, race results, bookmaker odds, pricing and value
// detection, across repeated sweeps.
func TestSpoolPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip(skipIntegration)
	}

	dir := t.TempDir()
	log := helpers.QuietLogger()
	engine := service.NewEngine(service.Options{}, log)
	source := datasource.NewFileSource(dir, log)
	sched := scheduler.NewScheduler(source, engine, log)

	// Sweep 1: roster plus the first two races
	helpers.WriteEnvelope(t, dir, 1, datasource.DocumentTypeRoster, helpers.SampleRoster("Randwick", 8))
	helpers.WriteEnvelope(t, dir, 2, datasource.DocumentTypeResults,
		helpers.SampleRace("Randwick", 1,
			models.ResultLine{Position: 1, Participant: "J McDonald"},
			models.ResultLine{Position: 2, Participant: "N Rawiller"},
		))
	helpers.WriteEnvelope(t, dir, 3, datasource.DocumentTypeResults,
		helpers.SampleRace("Randwick", 2,
			models.ResultLine{Position: 1, Participant: "Tom Berry"},
		))
	sched.Sweep()

	view, err := engine.MeetingView("Randwick")
	require.NoError(t, err)
	assert.Equal(t, 2, view.RacesCompleted)
	assert.Equal(t, models.MeetingStatusInProgress, view.Status)
	assert.Equal(t, "James McDonald", view.Standings[0].Name)
	assert.Equal(t, 3, view.Standings[0].Points)

	// Sweep 2: a bookmaker quoting the leader well above the model price,
	// plus a stale re-delivery of race 1 that must not double-count
	leaderPrice := view.Standings[0].AIPrice
	require.Greater(t, leaderPrice, 0.0)
	helpers.WriteEnvelope(t, dir, 4, datasource.DocumentTypeOdds, datasource.OddsDocument{
		Meeting:   "Randwick",
		Bookmaker: "sportsbet",
		Entries:   []datasource.QuoteLine{{Name: "J McDonald", Odds: fmt.Sprintf("%.2f", leaderPrice*2)}},
	})
	helpers.WriteEnvelope(t, dir, 5, datasource.DocumentTypeResults,
		helpers.SampleRace("Randwick", 1,
			models.ResultLine{Position: 1, Participant: "J McDonald"},
		))
	sched.Sweep()

	view, err = engine.MeetingView("Randwick")
	require.NoError(t, err)
	assert.Equal(t, 2, view.RacesCompleted)
	assert.Equal(t, 3, view.Standings[0].Points)

	bets, err := engine.ValueBets("Randwick")
	require.NoError(t, err)
	require.Len(t, bets, 1)
	assert.Equal(t, "James McDonald", bets[0].Participant)
	assert.Greater(t, bets[0].EdgePercent, 95.0)

	// Sweep 3: nothing new spooled
	sched.Sweep()
	view, err = engine.MeetingView("Randwick")
	require.NoError(t, err)
	assert.Equal(t, 2, view.RacesCompleted)
}

// TestSpoolPipelineMultipleMeetings checks that documents route to their
// own meetings within one sweep.
func TestSpoolPipelineMultipleMeetings(t *testing.T) {
	if testing.Short() {
		t.Skip(skipIntegration)
	}

	dir := t.TempDir()
	log := helpers.QuietLogger()
	engine := service.NewEngine(service.Options{}, log)
	source := datasource.NewFileSource(dir, log)
	sched := scheduler.NewScheduler(source, engine, log)

	helpers.WriteEnvelope(t, dir, 1, datasource.DocumentTypeRoster, helpers.SampleRoster("Randwick", 8))
	helpers.WriteEnvelope(t, dir, 2, datasource.DocumentTypeRoster, helpers.SampleRoster("Ascot", 9))
	helpers.WriteEnvelope(t, dir, 3, datasource.DocumentTypeResults,
		helpers.SampleRace("Ascot", 1,
			models.ResultLine{Position: 1, Participant: "Nash Rawiller"},
		))
	sched.Sweep()

	require.ElementsMatch(t, []string{"RANDWICK", "ASCOT"}, engine.Meetings())

	randwick, err := engine.MeetingView("Randwick")
	require.NoError(t, err)
	assert.Equal(t, 0, randwick.RacesCompleted)

	ascot, err := engine.MeetingView("Ascot")
	require.NoError(t, err)
	assert.Equal(t, 1, ascot.RacesCompleted)
	assert.Equal(t, 9, ascot.TotalRaces)
}
