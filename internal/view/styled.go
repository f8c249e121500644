package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/jot/pkg/core"
)

var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#6B7280")
	border = lipgloss.Color("#2A3850")
)

// Styled draws the collection as a bordered card with previews.
// Colors are only emitted when w is a color-capable terminal.
type Styled struct{}

func (Styled) Render(w io.Writer, notes core.Collection) error {
	r := lipgloss.NewRenderer(w)

	index := r.NewStyle().Foreground(accent).Width(len(fmt.Sprint(len(notes))) + 1).Align(lipgloss.Right)
	stamp := r.NewStyle().Foreground(muted)
	card := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	var b strings.Builder
	if len(notes) == 0 {
		b.WriteString(stamp.Render("No notes found."))
	}
	for i, n := range notes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(index.Render(fmt.Sprintf("%d.", i+1)))
		b.WriteString(" ")
		b.WriteString(stamp.Render(PrettyTimestamp(n.Timestamp)))
		b.WriteString("  ")
		b.WriteString(Preview(n.Text))
	}

	_, err := fmt.Fprintln(w, card.Render(b.String()))
	return err
}
