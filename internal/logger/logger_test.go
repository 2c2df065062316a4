package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		return nil
	}
	return logEntry
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		logLevel    string
		environment string
		wantLevel   logrus.Level
	}{
		{
			name:        "debug level development",
			logLevel:    "debug",
			environment: "development",
			wantLevel:   logrus.DebugLevel,
		},
		{
			name:        "warn level production",
			logLevel:    "warn",
			environment: "production",
			wantLevel:   logrus.WarnLevel,
		},
		{
			name:        "invalid level defaults to info",
			logLevel:    "chatty",
			environment: "development",
			wantLevel:   logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := NewLogger(tt.logLevel, tt.environment)
			require.NotNil(t, log)
			assert.Equal(t, tt.wantLevel, log.GetLevel())

			if tt.environment == "production" {
				assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
			} else {
				assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
			}
		})
	}
}

func TestMeetingLoggerRaceApplied(t *testing.T) {
	log, buf := setupTestLogger()
	meetingLogger := NewMeetingLogger(log)

	meetingLogger.LogRaceApplied("RANDWICK", 4, 7, 1, "in_progress")

	entry := parseLogOutput(buf)
	require.NotNil(t, entry)
	assert.Equal(t, "race_applied", entry["event"])
	assert.Equal(t, "RANDWICK", entry["meeting"])
	assert.Equal(t, float64(4), entry["race"])
	assert.Equal(t, float64(1), entry["unmatched"])
}

func TestMeetingLoggerValueBet(t *testing.T) {
	log, buf := setupTestLogger()
	meetingLogger := NewMeetingLogger(log)

	meetingLogger.LogValueBet("RANDWICK", "james mcdonald", "sportsbet", 8.0, 5.0, 60.0)

	entry := parseLogOutput(buf)
	require.NotNil(t, entry)
	assert.Equal(t, "value_bet", entry["event"])
	assert.Equal(t, float64(60), entry["edge_percent"])
}

func TestMeetingLoggerScratch(t *testing.T) {
	log, buf := setupTestLogger()
	meetingLogger := NewMeetingLogger(log)

	meetingLogger.LogScratch("ASCOT", "w pike")

	entry := parseLogOutput(buf)
	require.NotNil(t, entry)
	assert.Equal(t, "scratch", entry["event"])
	assert.Equal(t, "w pike", entry["participant"])
}
