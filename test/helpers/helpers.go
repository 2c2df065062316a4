// Package helpers provides shared fixtures for integration tests.
package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/challenge-tracker/internal/datasource"
	"github.com/yourusername/challenge-tracker/internal/models"
)

// QuietLogger returns a logger that discards all output.
func QuietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// WriteEnvelope writes one spool document envelope into dir. File names are
// zero-padded with seq so sweep order matches write order.
func WriteEnvelope(t *testing.T, dir string, seq int, docType datasource.DocumentType, payload any) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	envelope, err := json.Marshal(map[string]json.RawMessage{
		"type":    json.RawMessage(fmt.Sprintf("%q", docType)),
		"payload": raw,
	})
	require.NoError(t, err)

	name := fmt.Sprintf("%03d-%s.json", seq, docType)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), envelope, 0o644))
}

// SampleRoster returns a three-rider roster document for meeting.
func SampleRoster(meeting string, totalRaces int) datasource.RosterDocument {
	return datasource.RosterDocument{
		Meeting:    meeting,
		Kind:       models.ChallengeKindJockey,
		TotalRaces: totalRaces,
		Entries: []models.RosterEntry{
			{Name: "James McDonald", Odds: 2.5},
			{Name: "Nash Rawiller", Odds: 4.0},
			{Name: "Tom Berry", Odds: 9.0},
		},
	}
}

// SampleRace returns a results document carrying one completed race.
func SampleRace(meeting string, raceNumber int, lines ...models.ResultLine) datasource.ResultsDocument {
	return datasource.ResultsDocument{
		Meeting: meeting,
		Races:   []datasource.RaceSection{{RaceNumber: raceNumber, Results: lines}},
	}
}
