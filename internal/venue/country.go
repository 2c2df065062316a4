package venue

import "strings"

// New Zealand tracks that appear in challenge feeds without a country marker.
var nzTracks = []string{
	"TE AROHA", "TRENTHAM", "ELLERSLIE", "RICCARTON", "OTAKI",
	"HASTINGS", "AWAPUNI", "WANGANUI", "ROTORUA", "TAURANGA",
	"PUKEKOHE", "RUAKAKA", "MATAMATA", "TE RAPA", "WOODVILLE",
	"ADDINGTON", "ALEXANDRA PARK", "CAMBRIDGE", "FORBURY",
	"ASCOT PARK", "MANAWATU", "GREYMOUTH", "WINGATUI", "OAMARU",
	"TIMARU", "ASHBURTON", "RANGIORA", "FORBURY PARK",
}

// Country classifies a track name as AU or NZ. Anything not recognizably
// New Zealand defaults to AU.
func Country(trackName string) string {
	track := strings.ToUpper(strings.TrimSpace(trackName))
	if track == "" {
		return "AU"
	}
	if strings.Contains(track, " NZ") || strings.Contains(track, "-NZ") || strings.HasSuffix(track, "NZ") {
		return "NZ"
	}
	for _, nz := range nzTracks {
		if strings.Contains(track, nz) || strings.Contains(nz, track) {
			return "NZ"
		}
	}
	return "AU"
}
