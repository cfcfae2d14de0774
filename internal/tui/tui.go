// Package tui is the interactive front end: a bubbletea program that
// consumes frames from the engine, forwards resizes, and maps keys to the
// quit behavior the typing option selects.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/matrixrain/internal/engine"
	"github.com/san-kum/matrixrain/internal/rain"
)

type frameMsg rain.Frame

type stoppedMsg struct{ err error }

// Model holds the last received frame and the style table it is drawn
// with. The live screen stays inside the engine; the TUI only ever sees
// immutable snapshots.
type Model struct {
	runner *engine.Runner
	styles []lipgloss.Style
	typing bool

	frame rain.Frame
	err   error
}

func New(runner *engine.Runner, styles []lipgloss.Style, typing bool) Model {
	return Model{
		runner: runner,
		styles: styles,
		typing: typing,
	}
}

// Err reports a terminal engine error, if any, once the program has quit.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return m.waitForFrame()
}

func (m Model) waitForFrame() tea.Cmd {
	return func() tea.Msg {
		frame, ok := <-m.runner.Frames()
		if !ok {
			return stoppedMsg{err: m.runner.Err()}
		}
		return frameMsg(frame)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.quitKey(msg) {
			m.runner.Stop()
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Height > 0 {
			if err := m.runner.Resize(msg.Width, msg.Height); err != nil {
				m.err = err
				m.runner.Stop()
				return m, tea.Quit
			}
		}
		return m, nil

	case frameMsg:
		m.frame = rain.Frame(msg)
		return m, m.waitForFrame()

	case stoppedMsg:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

// quitKey decides whether a keypress ends the run. In typing mode only 'q'
// (or ctrl+c) quits; otherwise any key does.
func (m Model) quitKey(msg tea.KeyMsg) bool {
	return m.quitKeyString(msg.String())
}

func (m Model) quitKeyString(key string) bool {
	if key == "ctrl+c" {
		return true
	}
	if m.typing {
		return key == "q"
	}
	return true
}

func (m Model) View() string {
	if m.frame.Width == 0 {
		return ""
	}
	return RenderFrame(m.frame, m.styles)
}

// RenderFrame draws a frame as styled text, batching runs of cells that
// share a color so each row costs a handful of escape sequences instead of
// one per cell.
func RenderFrame(f rain.Frame, styles []lipgloss.Style) string {
	var b strings.Builder
	b.Grow(f.Width*f.Height + f.Height)

	var run strings.Builder
	for y := 0; y < f.Height; y++ {
		runColor := -1
		for x := 0; x < f.Width; x++ {
			cell := f.Cells[y][x]
			ch := cell.Ch
			color := cell.Color
			if ch == 0 {
				ch = ' '
				color = -1
			}
			if color != runColor {
				flushRun(&b, &run, runColor, styles)
				runColor = color
			}
			run.WriteRune(ch)
		}
		flushRun(&b, &run, runColor, styles)
		if y < f.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func flushRun(b *strings.Builder, run *strings.Builder, color int, styles []lipgloss.Style) {
	if run.Len() == 0 {
		return
	}
	if color >= 0 && color < len(styles) {
		b.WriteString(styles[color].Render(run.String()))
	} else {
		b.WriteString(run.String())
	}
	run.Reset()
}
