// Package profile holds the player's identity: avatar, favorite position,
// and the age band that drives content selection.
package profile

// AgeBand is one of five fixed youth age brackets.
type AgeBand string

const (
	AgeBand6To8   AgeBand = "6-8"
	AgeBand9To11  AgeBand = "9-11"
	AgeBand12To13 AgeBand = "12-13"
	AgeBand14To15 AgeBand = "14-15"
	AgeBand16To19 AgeBand = "16-19"
)

// AllAgeBands returns all age bands from youngest to oldest.
func AllAgeBands() []AgeBand {
	return []AgeBand{
		AgeBand6To8,
		AgeBand9To11,
		AgeBand12To13,
		AgeBand14To15,
		AgeBand16To19,
	}
}

// AgeBandFromYears maps an age in years to its band. Ages below 9 fall in
// the youngest band; unknown or very high ages default to the oldest.
func AgeBandFromYears(years int) AgeBand {
	switch {
	case years < 9:
		return AgeBand6To8
	case years <= 11:
		return AgeBand9To11
	case years <= 13:
		return AgeBand12To13
	case years <= 15:
		return AgeBand14To15
	default:
		return AgeBand16To19
	}
}

// Valid reports whether the value is one of the five fixed bands.
func (b AgeBand) Valid() bool {
	switch b {
	case AgeBand6To8, AgeBand9To11, AgeBand12To13, AgeBand14To15, AgeBand16To19:
		return true
	}
	return false
}
