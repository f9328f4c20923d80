package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/pathviz/pkg/graph"
	"github.com/matzehuels/pathviz/pkg/session"
	"github.com/matzehuels/pathviz/pkg/shortest"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listPathStyle     = lipgloss.NewStyle().Foreground(colorRed)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PathPickerModel - Interactive start/end selection
// =============================================================================

// pickPhase is the step the picker is waiting on.
type pickPhase int

const (
	pickStart pickPhase = iota
	pickEnd
	pickDone
)

// PathPickerModel is the bubbletea model for choosing a start and an end
// node. Every completed pick runs a query on the session.
type PathPickerModel struct {
	Session *session.Session
	Cursor  int
	Height  int
	Offset  int

	phase pickPhase
	start int
	err   error
}

// NewPathPickerModel creates a picker over the session's current model.
func NewPathPickerModel(s *session.Session) PathPickerModel {
	return PathPickerModel{
		Session: s,
		Height:  15,
	}
}

func (m PathPickerModel) Init() tea.Cmd {
	return nil
}

func (m PathPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	size := m.Session.Model().Size()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < size-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "r":
			m.Session.ClearResult()
			m.phase = pickStart
			m.err = nil
		case "enter":
			return m.choose(), nil
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
	}
	return m, nil
}

// choose records the node under the cursor for the current phase.
func (m PathPickerModel) choose() PathPickerModel {
	switch m.phase {
	case pickStart, pickDone:
		m.Session.ClearResult()
		m.start = m.Cursor
		m.phase = pickEnd
		m.err = nil
	case pickEnd:
		if _, err := m.Session.Query(m.start, m.Cursor); err != nil {
			m.err = err
			return m
		}
		m.phase = pickDone
	}
	return m
}

// Result returns the latest query result, or nil.
func (m PathPickerModel) Result() *shortest.Result {
	return m.Session.Result()
}

func (m PathPickerModel) View() string {
	var b strings.Builder
	g := m.Session.Model()
	res := m.Result()

	switch m.phase {
	case pickStart:
		b.WriteString(StyleTitle.Render("Select Start Node"))
	case pickEnd:
		b.WriteString(StyleTitle.Render("Select End Node"))
		b.WriteString(listDimStyle.Render("  from " + graph.Label(m.start)))
	case pickDone:
		b.WriteString(StyleTitle.Render("Shortest Path"))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  r reset  q quit"))
	b.WriteString("\n\n")

	onPath := map[int]bool{}
	if res != nil && res.Reachable() {
		for _, n := range res.Path {
			onPath[n] = true
		}
	}

	end := min(m.Offset+m.Height, g.Size())
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, graph.Label(i), outgoing(g, i)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Edges").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			switch {
			case idx == m.Cursor:
				return listSelectedStyle
			case onPath[idx]:
				return listPathStyle
			case col == 2:
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
	case res != nil && res.Reachable():
		b.WriteString(styleIconSuccess.Render(iconSuccess) + " " +
			formatPath(*res) +
			listDimStyle.Render(fmt.Sprintf("  cost %s, %d hops", res.Cost, res.Hops())))
	case res != nil:
		b.WriteString(styleIconWarning.Render(iconWarning) + " " +
			StyleWarning.Render(fmt.Sprintf("%s is unreachable from %s", graph.Label(res.End), graph.Label(res.Start))))
	default:
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, g.Size())))
	}
	b.WriteString("\n")

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// outgoing lists the edges leaving node i as "U1:4 U2:10".
func outgoing(g *graph.Model, i int) string {
	var parts []string
	for j := range g.Size() {
		if g.HasEdge(i, j) {
			parts = append(parts, fmt.Sprintf("%s:%d", graph.Label(j), g.Weight(i, j)))
		}
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, " ")
}
