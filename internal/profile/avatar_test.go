package profile

import (
	"testing"
	"time"
)

func TestNewAvatar(t *testing.T) {
	a := NewAvatar("Kim", AgeBand9To11, PositionMidfielder)
	if a.ID.String() == "" {
		t.Error("expected a generated id")
	}
	if a.Name != "Kim" || a.AgeBand != AgeBand9To11 || a.FavoritePosition != PositionMidfielder {
		t.Errorf("unexpected avatar: %+v", a)
	}
}

func TestDerivedAgeBandWithoutBirthDate(t *testing.T) {
	a := NewAvatar("Kim", AgeBand12To13, PositionForward)
	if got := a.DerivedAgeBand(time.Now()); got != AgeBand12To13 {
		t.Errorf("DerivedAgeBand = %v, want stored band", got)
	}
}

func TestDerivedAgeBandFromBirthDate(t *testing.T) {
	birth := time.Date(2014, 6, 1, 0, 0, 0, 0, time.UTC)
	a := NewAvatar("Kim", AgeBand6To8, PositionForward)
	a.BirthDate = &birth

	afterBirthday := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	if got := a.DerivedAgeBand(afterBirthday); got != AgeBand12To13 {
		t.Errorf("after birthday: DerivedAgeBand = %v, want 12-13", got)
	}

	beforeBirthday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := a.DerivedAgeBand(beforeBirthday); got != AgeBand9To11 {
		t.Errorf("before birthday: DerivedAgeBand = %v, want 9-11", got)
	}
}

func TestPositionValid(t *testing.T) {
	for _, p := range AllPositions() {
		if !p.Valid() {
			t.Errorf("%v reported invalid", p)
		}
	}
	if Position("striker").Valid() {
		t.Error("unknown position reported valid")
	}
}
