package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msrihanreddy5-code/ship-game/engine"
)

const (
	cyan  = lipgloss.Color("#00FFFF")
	lime  = lipgloss.Color("#00FF00")
	red   = lipgloss.Color("#FF0000")
	white = lipgloss.Color("#FFFFFF")
	gold  = lipgloss.Color("#FFD700")
)

// Renderer draws boards and status lines as styled text. Colors are dropped
// when the output is not a terminal.
type Renderer struct {
	grid   lipgloss.Style
	ship   lipgloss.Style
	hit    lipgloss.Style
	miss   lipgloss.Style
	box    lipgloss.Style
	title  lipgloss.Style
	status lipgloss.Style
}

func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		grid:   r.NewStyle().Foreground(cyan),
		ship:   r.NewStyle().Foreground(lime).Bold(true),
		hit:    r.NewStyle().Foreground(red).Bold(true),
		miss:   r.NewStyle().Foreground(white),
		box:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(cyan).Padding(0, 1),
		title:  r.NewStyle().Bold(true).Align(lipgloss.Center),
		status: r.NewStyle().Foreground(gold).Bold(true),
	}
}

func glyph(v engine.CellView) string {
	switch v {
	case engine.ViewEmpty:
		return "."
	case engine.ViewShip:
		return "#"
	case engine.ViewHit:
		return "X"
	case engine.ViewMiss:
		return "o"
	default:
		panic(fmt.Sprintf("Invalid cell view: %d", int(v)))
	}
}

func (r *Renderer) cell(v engine.CellView) string {
	g := glyph(v)
	switch v {
	case engine.ViewShip:
		return r.ship.Render(g)
	case engine.ViewHit:
		return r.hit.Render(g)
	case engine.ViewMiss:
		return r.miss.Render(g)
	default:
		return r.grid.Render(g)
	}
}

// Board renders one 10x10 board with column and row indices, seen from p.
func (r *Renderer) Board(title string, b *engine.Board, p engine.Perspective) string {
	var sb strings.Builder

	header := make([]string, engine.BoardSize)
	for x := range header {
		header[x] = fmt.Sprint(x)
	}
	sb.WriteString(r.grid.Render("  " + strings.Join(header, " ")))

	for y := 0; y < engine.BoardSize; y++ {
		sb.WriteString("\n")
		sb.WriteString(r.grid.Render(fmt.Sprintf("%d ", y)))
		row := make([]string, engine.BoardSize)
		for x := range row {
			row[x] = r.cell(b.View(engine.Coord{X: x, Y: y}, p))
		}
		sb.WriteString(strings.Join(row, " "))
	}

	return lipgloss.JoinVertical(lipgloss.Center, r.title.Render(title), r.box.Render(sb.String()))
}

// Session renders the player's board next to the computer's, the latter
// with its ships hidden.
func (r *Renderer) Session(s *engine.Session) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		r.Board("Your fleet", &s.PlayerBoard, engine.OwnerView),
		"   ",
		r.Board("Enemy waters", &s.ComputerBoard, engine.OpponentView),
	)
}

func (r *Renderer) Status(msg string) string {
	return r.status.Render(msg)
}
