package sink

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/pathviz/pkg/render"
)

var (
	textHeaderStyle = lipgloss.NewStyle().Bold(true)
	textPathStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("167"))
	textCostStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
)

// RenderText summarises the plan for a terminal: one table row per drawn
// edge, followed by the path and total cost when the plan carries them.
func RenderText(p render.Plan) string {
	onPath := make(map[[2]int]bool, len(p.Highlights))
	for _, s := range p.Highlights {
		onPath[[2]int{s.From, s.To}] = true
		onPath[[2]int{s.To, s.From}] = true
	}

	rows := make([][]string, 0, len(p.Edges))
	for _, e := range p.Edges {
		mark := ""
		if onPath[[2]int{e.From, e.To}] {
			mark = "●"
		}
		rows = append(rows, []string{
			p.Nodes[e.From].Label,
			p.Nodes[e.To].Label,
			weightCell(e.Forward),
			weightCell(e.Reverse),
			mark,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("From", "To", "→", "←", "Path").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return textHeaderStyle
			}
			if row >= 0 && row < len(rows) && rows[row][4] != "" {
				return textPathStyle
			}
			return lipgloss.NewStyle()
		})

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")

	if len(p.Highlights) > 0 {
		labels := make([]string, 0, len(p.Highlights)+1)
		labels = append(labels, p.Nodes[p.Highlights[0].From].Label)
		for _, s := range p.Highlights {
			labels = append(labels, p.Nodes[s.To].Label)
		}
		b.WriteString("Path: ")
		b.WriteString(textPathStyle.Render(strings.Join(labels, " → ")))
		b.WriteString("\n")
	}
	if p.Cost != nil {
		b.WriteString(textCostStyle.Render(p.Cost.Text))
		b.WriteString("\n")
	}
	return b.String()
}

func weightCell(w int) string {
	if w <= 0 {
		return "·"
	}
	return strconv.Itoa(w)
}
