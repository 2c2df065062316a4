package venue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/challenge-tracker/internal/models"
)

func TestNormalizeVenue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "sponsor prefix stripped",
			input: "Ladbrokes Cannington",
			want:  "cannington",
		},
		{
			name:  "state suffix stripped",
			input: "Ascot WA",
			want:  "ascot",
		},
		{
			name:  "sponsor and qualifier both stripped",
			input: "TAB Gloucester Park Night",
			want:  "gloucester park",
		},
		{
			name:  "sponsor-named venue survives",
			input: "Ladbrokes",
			want:  "ladbrokes",
		},
		{
			name:  "single state token survives",
			input: "WA",
			want:  "wa",
		},
		{
			name:  "plain name lower-cased",
			input: "Eagle Farm",
			want:  "eagle farm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeVenue(tt.input))
		})
	}
}

func TestResolve(t *testing.T) {
	candidates := []models.Venue{
		{Name: "Gloucester Park", State: "WA"},
		{Name: "Eagle Farm", State: "QLD"},
		{Name: "Randwick", State: "NSW"},
		{Name: "The Meadows", State: "VIC"},
	}

	tests := []struct {
		name    string
		meeting string
		want    string
		wantOK  bool
	}{
		{
			name:    "exact after stripping",
			meeting: "TAB Gloucester Park Night",
			want:    "Gloucester Park",
			wantOK:  true,
		},
		{
			name:    "substring containment",
			meeting: "Royal Randwick",
			want:    "Randwick",
			wantOK:  true,
		},
		{
			name:    "word subset after stopwords",
			meeting: "Meadows Racing Club",
			want:    "The Meadows",
			wantOK:  true,
		},
		{
			name:    "miss",
			meeting: "Happy Valley",
			want:    "",
			wantOK:  false,
		},
		{
			name:    "empty meeting name",
			meeting: "",
			want:    "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.meeting, candidates)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestResolveExactBeatsSubstring(t *testing.T) {
	candidates := []models.Venue{
		{Name: "Ascot Park"},
		{Name: "Ascot"},
	}
	got, ok := Resolve("Ascot WA", candidates)
	require.True(t, ok)
	assert.Equal(t, "Ascot", got.Name)
}

func TestCountry(t *testing.T) {
	tests := []struct {
		track string
		want  string
	}{
		{track: "Randwick", want: "AU"},
		{track: "Ellerslie", want: "NZ"},
		{track: "Te Rapa", want: "NZ"},
		{track: "Matamata NZ", want: "NZ"},
		{track: "Gloucester Park", want: "AU"},
		{track: "", want: "AU"},
	}

	for _, tt := range tests {
		t.Run(tt.track, func(t *testing.T) {
			assert.Equal(t, tt.want, Country(tt.track))
		})
	}
}
