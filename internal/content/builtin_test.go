package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spelsmart/spelsmart/internal/profile"
)

func TestBuiltinDrillsLookup(t *testing.T) {
	drills := BuiltinDrills()
	require.Greater(t, drills.Len(), 0)

	for _, d := range drills.All() {
		assert.NotEmpty(t, d.ID)
		assert.NotEmpty(t, d.AgeBands)
		assert.Positive(t, d.TimeLimitSeconds)
		got, ok := drills.ByID(d.ID)
		require.True(t, ok)
		assert.Equal(t, d.Title, got.Title)
	}
}

func TestBuiltinDrillsFilterByAgeBand(t *testing.T) {
	drills := BuiltinDrills()
	young := drills.ForAgeBand(profile.AgeBand6To8)
	require.NotEmpty(t, young)
	for _, d := range young {
		assert.Contains(t, d.AgeBands, profile.AgeBand6To8, "drill %s", d.ID)
	}
	assert.Less(t, len(young), drills.Len(), "age filter should exclude the older-only drills")
}

// Every daily challenge archetype tag must resolve to an authored
// scenario so generation never degrades to the stub.
func TestBuiltinScenariosCoverChallengeTags(t *testing.T) {
	scenarios := BuiltinScenarios()
	for _, tag := range []string{"scanning", "tactics", "teamwork", "transition", "defence"} {
		_, ok := scenarios.FirstWithTag(tag)
		assert.True(t, ok, "no scenario tagged %q", tag)
	}
}

func TestScenarioInstantiate(t *testing.T) {
	scenarios := BuiltinScenarios()
	s, ok := scenarios.FirstWithTag("scanning")
	require.True(t, ok)

	inst := s.Instantiate(profile.AgeBand9To11)
	assert.NotEmpty(t, inst.InstanceID)
	assert.Equal(t, []profile.AgeBand{profile.AgeBand9To11}, inst.AgeBands)

	// Authored catalog entry stays untouched.
	orig, _ := scenarios.ByID(s.ID)
	assert.Empty(t, orig.InstanceID)
	assert.NotEqual(t, inst.InstanceID, s.Instantiate(profile.AgeBand9To11).InstanceID)
}
