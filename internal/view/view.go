// Package view renders note collections for the terminal.
package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

const (
	// PreviewLength is the number of characters kept by Preview.
	PreviewLength = 30
	// PrettyLayout is the short timestamp shown by the styled renderer.
	PrettyLayout = "Jan 02, 15:04"
)

// Renderer writes a collection to w.
type Renderer interface {
	Render(w io.Writer, notes core.Collection) error
}

// New returns the styled renderer when styled is set, the plain one otherwise.
func New(styled bool) Renderer {
	if styled {
		return Styled{}
	}
	return Plain{}
}

// Plain prints one "N. [timestamp] text" line per note, numbered from 1.
type Plain struct{}

func (Plain) Render(w io.Writer, notes core.Collection) error {
	for i, n := range notes {
		if _, err := fmt.Fprintf(w, "%d. [%s] %s\n", i+1, n.Timestamp, n.Text); err != nil {
			return err
		}
	}
	return nil
}

// Preview flattens newlines and cuts text to PreviewLength characters,
// marking the cut with "...".
func Preview(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	runes := []rune(flat)
	if len(runes) <= PreviewLength {
		return flat
	}
	return string(runes[:PreviewLength]) + "..."
}

// PrettyTimestamp reformats a stored timestamp as PrettyLayout.
// Anything that does not parse is returned unchanged.
func PrettyTimestamp(ts string) string {
	t, err := time.ParseInLocation(core.TimestampLayout, ts, time.Local)
	if err != nil {
		return ts
	}
	return t.Format(PrettyLayout)
}
