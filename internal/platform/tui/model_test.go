package tui

import (
	"bytes"
	"maps"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/registry"
)

// stubGame records what the frontend feeds it.
type stubGame struct {
	id      string
	resets  int
	inputs  []core.InputFrame
	state   core.GameState
	events  []core.Event
	lastDim [2]int
}

func (g *stubGame) ID() string    { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Phase: "Playing"}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, copyFrame(in))
	events := g.events
	g.events = nil
	return core.StepResult{State: g.state, Events: events}
}

// copyFrame keeps a frame intact after the model clears its own.
func copyFrame(in core.InputFrame) core.InputFrame {
	out := core.NewInputFrame()
	maps.Copy(out.Actions, in.Actions)
	out.Pointer = in.Pointer
	return out
}

func (g *stubGame) Render(dst *core.Screen) {
	g.lastDim = [2]int{dst.Width(), dst.Height()}
	dst.DrawText(0, 0, "STUB")
}

func (g *stubGame) State() core.GameState { return g.state }

func init() {
	registry.Register("stub_a", func() registry.Game { return &stubGame{id: "stub_a"} })
	registry.Register("stub_b", func() registry.Game { return &stubGame{id: "stub_b"} })
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func startModel(t *testing.T, logger *log.Logger) (Model, *stubGame) {
	t.Helper()
	g := &stubGame{id: "stub_a"}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}, logger)
	require.NotNil(t, m.Init())
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestModelKeysReachNextTick(t *testing.T) {
	m, g := startModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, keyRunes("p"))
	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd, "tick loop continues")

	require.Len(t, g.inputs, 1)
	assert.True(t, g.inputs[0].Has(core.ActionLeft))
	assert.True(t, g.inputs[0].Has(core.ActionPause))

	m, _ = update(t, m, TickMsg{})
	require.Len(t, g.inputs, 2)
	assert.False(t, g.inputs[1].Has(core.ActionLeft), "actions last one tick")
	_ = m
}

func TestModelMousePointer(t *testing.T) {
	m, g := startModel(t, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 39, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.MouseMsg{X: 79, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.MouseMsg{X: 79, Y: 5, Action: tea.MouseActionRelease})
	_, _ = update(t, m, TickMsg{})

	require.Len(t, g.inputs, 3)
	first := g.inputs[0].Pointer
	assert.True(t, first.Valid)
	assert.True(t, first.Pressed)
	assert.InDelta(t, 39.5/80, first.X, 1e-9)

	held := g.inputs[1].Pointer
	assert.False(t, held.Pressed, "edges last one tick")
	assert.InDelta(t, 79.5/80, held.X, 1e-9)

	assert.True(t, g.inputs[2].Pointer.Released)
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, g := startModel(t, nil)
	require.Equal(t, 1, g.resets)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 1, g.resets, "resize must not restart the game")

	view := m.View()
	assert.Equal(t, [2]int{100, 29}, g.lastDim, "one row is kept for the footer")
	assert.Contains(t, view, "STUB")
	assert.Contains(t, view, "quit")
}

func TestModelBackToMenu(t *testing.T) {
	m, g := startModel(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, m.BackToMenu(), "cannot leave mid-game")

	g.state = core.GameState{Phase: "GameOver", GameOver: true}
	m, _ = update(t, m, TickMsg{})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.NotNil(t, cmd, "standalone model quits the program")
}

func TestModelQuit(t *testing.T) {
	m, _ := startModel(t, nil)
	m, cmd := update(t, m, keyRunes("q"))
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	m, g := startModel(t, logger)

	g.events = []core.Event{
		{Name: "extra ball", Fields: []any{"balls", 2}},
		{Name: "board cleared", Fields: []any{"max_combo", 4}},
	}
	_, _ = update(t, m, TickMsg{})

	out := buf.String()
	assert.Contains(t, out, "board cleared")
	assert.Contains(t, out, "max_combo=4")
	assert.Contains(t, out, "variant=stub_a")
	assert.NotContains(t, out, "extra ball", "debug events are below the level")
}

func TestKeyMapBindings(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{keyRunes("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{keyRunes("d"), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRestart},
		{keyRunes("r"), core.ActionRestart},
		{keyRunes("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{keyRunes("x"), core.ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keys.MapKey(tt.msg), "key %q", tt.msg.String())
	}

	assert.Equal(t, MenuActionDown, keys.MapKeyToMenuAction(keyRunes("j")))
	assert.Equal(t, MenuActionSelect, keys.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionQuit, keys.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Len(t, keys.ShortHelp(), 6)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.DrawTextColored(0, 0, "HELLO", core.ColorRed)
	s.DrawText(6, 0, "world")
	s.SetColored(0, 1, '█', core.ColorLime)

	out := RenderScreen(s)
	assert.Contains(t, out, "HELLO")
	assert.Contains(t, out, "world")
	assert.Contains(t, out, "█")
	assert.Equal(t, 1, bytes.Count([]byte(out), []byte("\n")))
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	require.GreaterOrEqual(t, len(m.items), 2)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	require.NotNil(t, m.Selected())
	assert.Equal(t, m.items[1].GameID, m.Selected().GameID)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "B L O C K")
}

func TestSessionModelFlow(t *testing.T) {
	s := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, log.New(&bytes.Buffer{}))

	step := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	require.Equal(t, "stub_a", s.menu.items[0].GameID)
	require.NotNil(t, step(tea.KeyMsg{Type: tea.KeyEnter}), "game tick loop starts")
	require.NotNil(t, s.game)

	stub, ok := s.game.game.(*stubGame)
	require.True(t, ok)
	stub.state = core.GameState{Phase: "Cleared", Cleared: true}
	step(TickMsg{})

	step(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, s.game, "back to the menu")
	assert.Contains(t, s.View(), "Select a variant")

	assert.NotNil(t, step(keyRunes("q")))
	assert.Empty(t, s.View())
}
