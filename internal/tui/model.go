// Package tui is the interactive terminal front end: a cursor over the
// facelet net stands in for pointer picks, and the arrow keys rotate.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubelets"
	"github.com/SeamusWaldron/cubelets/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const gridRows, gridCols = 3 * cubelets.Size, 4 * cubelets.Size

// Options configure a Model.
type Options struct {
	Palette     render.Palette
	StickerSize int
	PNGPath     string            // target of the "p" key
	Copy        func(string) error // clipboard writer, defaults to the system clipboard
}

// Model is the bubbletea model.
type Model struct {
	session *cubelets.Session
	opts    Options

	row, col int // cursor in the 12x9 sticker grid
	status   string
	err      error
	quitting bool
}

// New creates a model driving session. The cursor starts on the centre
// of the front face.
func New(session *cubelets.Session, opts Options) *Model {
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.PNGPath == "" {
		opts.PNGPath = "cubelets.png"
	}
	return &Model{
		session: session,
		opts:    opts,
		row:     4,
		col:     4,
	}
}

// Session returns the session the model drives.
func (m *Model) Session() *cubelets.Session {
	return m.session
}

// Cursor returns the facelet under the cursor.
func (m *Model) Cursor() render.Cursor {
	face, index, _ := render.FaceletAt(m.row, m.col)
	return render.Cursor{Face: face, Index: index}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	switch key.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "h", "a":
		m.move(0, -1)
	case "l", "d":
		m.move(0, 1)
	case "k", "w", "up":
		m.move(-1, 0)
	case "j", "s", "down":
		m.move(1, 0)

	case "enter", " ":
		m.pick()

	case "left":
		m.rotate(cubelets.Minus)
	case "right":
		m.rotate(cubelets.Plus)

	case "esc":
		if m.session.Cancel() {
			m.status = "Selection cleared"
		}

	case "r":
		m.session.Reset()
		m.status = "Reset"

	case "y":
		s := m.session.State().Net().FaceletString()
		if err := m.opts.Copy(s); err != nil {
			m.err = fmt.Errorf("failed to copy: %w", err)
		} else {
			m.status = "Copied facelet string"
		}

	case "p":
		err := render.SavePNG(m.opts.PNGPath, m.session.State().Net(), render.PNGOptions{
			StickerSize: m.opts.StickerSize,
			Palette:     m.opts.Palette,
			Highlight:   m.session.Highlighted(),
		})
		if err != nil {
			m.err = err
		} else {
			m.status = "Saved " + m.opts.PNGPath
		}
	}

	return m, nil
}

// move steps the cursor to the next facelet in the given direction,
// skipping the empty corners of the cross. It stays put at the edge.
func (m *Model) move(dr, dc int) {
	row, col := m.row+dr, m.col+dc
	for row >= 0 && row < gridRows && col >= 0 && col < gridCols {
		if _, _, ok := render.FaceletAt(row, col); ok {
			m.row, m.col = row, col
			return
		}
		row, col = row+dr, col+dc
	}
}

func (m *Model) pick() {
	c := m.Cursor()
	fl := m.session.State().Net()[c.Face][c.Index]
	if !m.session.Pick(fl.CubeletID, c.Face.Normal()) {
		m.status = "Nothing to pick"
		return
	}
	sel, _ := m.session.Selection()
	m.status = fmt.Sprintf("Picked %s on %s, selected %s", fl.CubeletID, c.Face, sel)
}

func (m *Model) rotate(dir cubelets.Direction) {
	if !m.session.Rotate(dir) {
		m.status = "Pick a facelet first"
		return
	}
	sel, _ := m.session.Selection()
	m.status = fmt.Sprintf("Rotated %s %s", sel, dir)
}

func (m *Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cubelets"))
	b.WriteString("\n\n")

	cursor := m.Cursor()
	b.WriteString(render.Text(m.session.State().Net(), render.TextOptions{
		Palette:   m.opts.Palette,
		Highlight: m.session.Highlighted(),
		Cursor:    &cursor,
	}))
	b.WriteString("\n")

	fl := m.session.State().Net()[cursor.Face][cursor.Index]
	b.WriteString(statusStyle.Render(fmt.Sprintf("Cursor: %s%d on %s", cursor.Face, cursor.Index, fl.CubeletID)))
	b.WriteString("\n")

	if sel, ok := m.session.Selection(); ok {
		b.WriteString(fmt.Sprintf("Selected: %s (%d cubelets)\n",
			selectionStyle.Render(sel.String()), m.session.Highlighted().Len()))
	} else {
		b.WriteString("Selected: none\n")
	}

	b.WriteString(fmt.Sprintf("Turns: %d", m.session.Turns()))
	if m.session.State().IsSolved() {
		b.WriteString("  " + solvedStyle.Render("SOLVED"))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("hjkl/wasd=move  enter=pick  ←/→=rotate  esc=cancel  r=reset  y=copy  p=png  q=quit"))
	b.WriteString("\n")

	return b.String()
}
