package logger

import (
	"github.com/sirupsen/logrus"
)

// MeetingLogger provides structured logging helpers for meeting lifecycle
// events so ingestion and the CLI log them with the same field names.
type MeetingLogger struct {
	log *logrus.Logger
}

// NewMeetingLogger creates a meeting-scoped logging helper
func NewMeetingLogger(log *logrus.Logger) *MeetingLogger {
	return &MeetingLogger{log: log}
}

// LogRaceApplied logs the application of one race result
func (ml *MeetingLogger) LogRaceApplied(meeting string, raceNumber, matched, unmatched int, status string) {
	ml.log.WithFields(logrus.Fields{
		"event":     "race_applied",
		"meeting":   meeting,
		"race":      raceNumber,
		"matched":   matched,
		"unmatched": unmatched,
		"status":    status,
	}).Info("Race result applied")
}

// LogOddsSnapshot logs a bookmaker quote set replacement
func (ml *MeetingLogger) LogOddsSnapshot(meeting, bookmaker string, quotes int) {
	ml.log.WithFields(logrus.Fields{
		"event":     "odds_snapshot",
		"meeting":   meeting,
		"bookmaker": bookmaker,
		"quotes":    quotes,
	}).Debug("Bookmaker odds applied")
}

// LogValueBet logs a detected value bet
func (ml *MeetingLogger) LogValueBet(meeting, participant, bookmaker string, odds, modelPrice, edgePercent float64) {
	ml.log.WithFields(logrus.Fields{
		"event":        "value_bet",
		"meeting":      meeting,
		"participant":  participant,
		"bookmaker":    bookmaker,
		"odds":         odds,
		"model_price":  modelPrice,
		"edge_percent": edgePercent,
	}).Info("Value bet detected")
}

// LogScratch logs a participant scratching
func (ml *MeetingLogger) LogScratch(meeting, participant string) {
	ml.log.WithFields(logrus.Fields{
		"event":       "scratch",
		"meeting":     meeting,
		"participant": participant,
	}).Info("Participant scratched")
}
