package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockbreak/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub " + s.id }
func (stubGame) Reset(core.RuntimeConfig) {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen) {}
func (stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return stubGame{id: "aa_stub"} })

	assert.True(t, Exists("zz_stub"))
	assert.False(t, Exists("missing"))

	list := List()
	require.GreaterOrEqual(t, len(list), 2)
	assert.Equal(t, GameInfo{ID: "aa_stub", Title: "Stub aa_stub"}, list[0])
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}

	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub", g.ID())

	_, err = Create("missing")
	assert.ErrorContains(t, err, `unknown game "missing"`)

	assert.Panics(t, func() {
		Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })
	})
}
