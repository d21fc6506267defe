package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/rugby-analysis-cli/db"
	"github.com/user/rugby-analysis-cli/session"
)

func TestNewEventFormSeedsEnumDefaults(t *testing.T) {
	target := session.EventForm{}
	NewEventForm(&target)

	assert.Equal(t, db.PhaseTypes[0], target.PhaseType)
	assert.Equal(t, db.MainEvents[0], target.MainEvent)
	assert.Equal(t, db.PossessionOrigins[0], target.PossessionOrigin)
	assert.Equal(t, db.Zones[0], target.Zone)
	assert.Equal(t, db.Outcomes[0], target.Outcome)
	assert.Equal(t, db.GainLines[0], target.GainLine)
	// Optional selects keep their blank first option.
	assert.Equal(t, "", target.RuckSpeed)
	assert.Equal(t, "", target.Penalty)
}

func TestNewEventFormKeepsExistingValues(t *testing.T) {
	target := session.EventForm{
		PhaseType: db.PhaseDefense,
		MainEvent: db.EventScrum,
		Zone:      "50A",
	}
	NewEventForm(&target)

	assert.Equal(t, db.PhaseDefense, target.PhaseType)
	assert.Equal(t, db.EventScrum, target.MainEvent)
	assert.Equal(t, "50A", target.Zone)
}

func TestApplyParsesPhaseCount(t *testing.T) {
	target := session.EventForm{}
	f := NewEventForm(&target)

	f.phaseCount = "4"
	require.NoError(t, f.Apply())
	assert.Equal(t, 4, target.PhaseCount)

	f.phaseCount = ""
	require.NoError(t, f.Apply())
	assert.Equal(t, 0, target.PhaseCount)

	f.phaseCount = "nope"
	assert.Error(t, f.Apply())
}

func TestApplyBuffersExistingPhaseCount(t *testing.T) {
	target := session.EventForm{PhaseCount: 7}
	f := NewEventForm(&target)
	assert.Equal(t, "7", f.phaseCount)
}
