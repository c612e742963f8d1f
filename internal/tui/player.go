package tui

import (
	"fmt"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	litThreshold = 50
)

// TickMsg advances the playback clock.
type TickMsg time.Time

// Player is a bubbletea model replaying a rendered frame sequence on a
// braille canvas.
type Player struct {
	sceneName string
	frames    []*image.RGBA
	times     []float64
	fps       int

	canvas  *Canvas
	cur     int
	playing bool
	looped  int
}

func NewPlayer(sceneName string, frames []*image.RGBA, times []float64, fps int) Player {
	return Player{
		sceneName: sceneName,
		frames:    frames,
		times:     times,
		fps:       fps,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		playing:   true,
	}
}

func (p Player) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (p Player) Init() tea.Cmd { return p.tick() }

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.playing = !p.playing
		case "n", "right":
			p.playing = false
			p.advance(1)
		case "b", "left":
			p.playing = false
			p.advance(-1)
		case "r":
			p.cur = 0
			p.playing = true
		}
	case TickMsg:
		if p.playing {
			p.advance(1)
		}
		return p, p.tick()
	}
	return p, nil
}

func (p *Player) advance(d int) {
	p.cur += d
	if p.cur >= len(p.frames) {
		p.cur = 0
		p.looped++
	}
	if p.cur < 0 {
		p.cur = len(p.frames) - 1
	}
}

func (p Player) View() string {
	if len(p.frames) == 0 {
		return "no frames"
	}
	p.canvas.FromImage(p.frames[p.cur], litThreshold)

	status := headerStyle.Render(p.sceneName)
	if !p.playing {
		status += "  " + pausedStyle.Render("paused")
	}
	meta := fmt.Sprintf("%s %s  %s %s",
		labelStyle.Render("frame"),
		valueStyle.Render(fmt.Sprintf("%d/%d", p.cur+1, len(p.frames))),
		labelStyle.Render("t"),
		valueStyle.Render(fmt.Sprintf("%.2fs", p.times[p.cur])),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		status+"  "+meta,
		frameStyle.Render(p.canvas.String()),
		helpStyle.Render("space pause · n/b step · r restart · q quit"),
	)
}

// Play runs the terminal playback until the user quits.
func Play(sceneName string, frames []*image.RGBA, times []float64, fps int) error {
	prog := tea.NewProgram(NewPlayer(sceneName, frames, times, fps))
	_, err := prog.Run()
	return err
}
