package tui

import (
	"maps"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// fakeGame records every frame it is stepped with.
type fakeGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++; g.state = core.GameState{} }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) last() core.InputFrame    { return g.frames[len(g.frames)-1] }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, copyFrame(in))
	if g.state.GameOver && in.Has(core.ActionRestart) {
		g.state = core.GameState{}
	}
	return core.StepResult{State: g.state}
}

// copyFrame detaches a frame from the maps the model keeps reusing.
func copyFrame(f core.InputFrame) core.InputFrame {
	c := core.NewInputFrame()
	maps.Copy(c.Actions, f.Actions)
	maps.Copy(c.Released, f.Released)
	return c
}

func newTestModel(t *testing.T, g *fakeGame) Model {
	t.Helper()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1}, Options{InitialHoldTicks: 3, HoldTicks: 3})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	newTestModel(t, g)

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelReservesHelpFooter(t *testing.T) {
	m := newTestModel(t, &fakeGame{})

	if m.screen.Width() != 40 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 40x19", m.screen.Width(), m.screen.Height())
	}

	m = update(t, m, runeKey('?'))
	if m.screen.Height() != 16 {
		t.Errorf("screen height with full help = %d, expected 16", m.screen.Height())
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	if m.screen.Width() != 60 || m.screen.Height() != 26 {
		t.Errorf("screen = %dx%d after resize, expected 60x26", m.screen.Width(), m.screen.Height())
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})

	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
}

func TestModelKeyPressAndEmulatedRelease(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	m = update(t, m, runeKey('a'))
	for i := 0; i < 4; i++ {
		m = update(t, m, TickMsg{})
	}

	if len(g.frames) != 4 {
		t.Fatalf("got %d steps, expected 4", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionLeft) {
		t.Error("first frame should carry the press")
	}
	if g.frames[1].Has(core.ActionLeft) {
		t.Error("frames are cleared after every tick")
	}
	for i := 0; i < 3; i++ {
		if g.frames[i].WasReleased(core.ActionLeft) {
			t.Errorf("frame %d released too early", i)
		}
	}
	if !g.frames[3].WasReleased(core.ActionLeft) {
		t.Error("expected an emulated release after 3 idle ticks")
	}
}

func TestModelFireAndPassThrough(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	m = update(t, m, runeKey('f'))
	m = update(t, m, runeKey('p'))
	update(t, m, TickMsg{})

	in := g.last()
	if !in.Has(core.ActionFire) || !in.Has(core.ActionPause) {
		t.Errorf("expected fire and pause in frame, got %+v", in.Actions)
	}
}

func TestModelRestartOnlyWhenGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if g.last().Has(core.ActionRestart) {
		t.Error("restart should be ignored while playing")
	}

	g.state.GameOver = true
	m = update(t, m, TickMsg{})
	if !m.GameState().GameOver {
		t.Fatal("model should observe game over")
	}

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if !g.last().Has(core.ActionRestart) {
		t.Error("restart should reach the game after game over")
	}
	if m.GameState().GameOver {
		t.Error("model should observe the restart")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &fakeGame{})

	if out := m.View(); len(out) == 0 {
		t.Error("view should not be empty")
	}
}
