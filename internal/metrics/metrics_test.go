package metrics

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestRecordRaceProcessed(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordRaceProcessed()
	})
}

func TestRecordUnmatchedNames(t *testing.T) {
	InitRegistry()

	tests := []struct {
		name  string
		count int
	}{
		{
			name:  "no unmatched names",
			count: 0,
		},
		{
			name:  "a few unmatched names",
			count: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordUnmatchedNames(tt.count)
			})
		})
	}
}

func TestRecordValueBets(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordValueBets(2)
	})
}

func TestUpdateActiveMeetings(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		UpdateActiveMeetings(4)
	})
}

func TestUpdateMeetingProgress(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		UpdateMeetingProgress("RANDWICK", 5)
	})
}

func TestMetricsHandler(t *testing.T) {
	InitRegistry()

	handler := Handler()
	assert.NotNil(t, handler)
	assert.Implements(t, (*http.Handler)(nil), handler)
}

func BenchmarkRecordRaceProcessed(b *testing.B) {
	InitRegistry()

	for i := 0; i < b.N; i++ {
		RecordRaceProcessed()
	}
}
