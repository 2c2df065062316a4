package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "trailing apprentice claim stripped",
			raw:  "J McDonald (a3)",
			want: "j mcdonald",
		},
		{
			name: "whitespace collapsed and lowered",
			raw:  "  James   MCDONALD  ",
			want: "james mcdonald",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "parenthetical only",
			raw:  "(a2)",
			want: "",
		},
		{
			name: "internal parenthetical kept",
			raw:  "T (Tom) Berry",
			want: "t (tom) berry",
		},
		{
			name: "stacked trailing annotations stripped together",
			raw:  "J McDonald (a3) (NZ)",
			want: "j mcdonald",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			assert.Equal(t, tt.want, got)
			// Normalizing twice must not change the result
			assert.Equal(t, got, Normalize(got))
		})
	}
}

func TestSurname(t *testing.T) {
	assert.Equal(t, "mcdonald", Surname("james mcdonald"))
	assert.Equal(t, "pike", Surname("pike"))
	assert.Equal(t, "", Surname(""))
}

func TestMatch(t *testing.T) {
	roster := []string{"James McDonald", "Nash Rawiller", "Tom Berry", "Tim Clark"}

	tests := []struct {
		name    string
		scraped string
		want    string
		wantOK  bool
	}{
		{
			name:    "exact after normalization",
			scraped: "  james   mcdonald ",
			want:    "James McDonald",
			wantOK:  true,
		},
		{
			name:    "initialed form resolves by surname",
			scraped: "J McDonald (a3)",
			want:    "James McDonald",
			wantOK:  true,
		},
		{
			name:    "substring containment",
			scraped: "Nash Raw",
			want:    "Nash Rawiller",
			wantOK:  true,
		},
		{
			name:    "no match",
			scraped: "Hugh Bowman",
			want:    "",
			wantOK:  false,
		},
		{
			name:    "empty scraped name",
			scraped: "",
			want:    "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.scraped, roster)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchTierOrder(t *testing.T) {
	// An exact hit must win even when an earlier roster entry would match
	// at the surname tier.
	roster := []string{"A Smith", "B Smith"}
	got, ok := Match("B Smith", roster)
	assert.True(t, ok)
	assert.Equal(t, "B Smith", got)
}

func TestMatchShortSurnameSkipsSurnameTier(t *testing.T) {
	// "Du" is below the surname length floor, so only exact and substring
	// tiers apply.
	roster := []string{"Kerrin Du"}
	_, ok := Match("X Du", roster)
	assert.False(t, ok)
}

func TestMatchEveryRosterNameResolvesToItself(t *testing.T) {
	roster := []string{"James McDonald", "Nash Rawiller", "Tom Berry"}
	for _, name := range roster {
		got, ok := Match(name, roster)
		assert.True(t, ok)
		assert.Equal(t, name, got)
	}
}
