// Package menu implements the interactive numbered menu of the jot CLI.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/aretw0/jot/internal/view"
	"github.com/aretw0/jot/pkg/core"
)

// maxLine bounds a single typed line.
const maxLine = 1 << 20

// errTooLong reports an input line over maxLine. The rest of the line is discarded.
var errTooLong = errors.New("input line too long")

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Menu reads choices from in and writes the dialogue to out.
type Menu struct {
	svc      *core.Service
	in       *bufio.Reader
	out      io.Writer
	renderer view.Renderer
	logger   *slog.Logger
}

// Option configures a Menu.
type Option func(*Menu)

// WithRenderer replaces the plain list renderer.
func WithRenderer(r view.Renderer) Option {
	return func(m *Menu) {
		if r != nil {
			m.renderer = r
		}
	}
}

// WithLogger sets the logger used for failed actions.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a menu over svc. It renders lists with view.Plain unless
// WithRenderer says otherwise.
func New(svc *core.Service, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		svc:      svc,
		in:       bufio.NewReader(in),
		out:      out,
		renderer: view.Plain{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run loops until the user picks Exit or input ends. Store errors are
// printed and the loop goes on; only a failure to read input is returned.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.display()
		choice, err := m.prompt("Choose an option (1-4): ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			m.goodbye()
			return nil
		}
		if errors.Is(err, errTooLong) {
			choice, err = "", nil
		} else if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.view(ctx)
		case "2":
			err = m.add(ctx)
		case "3":
			err = m.remove(ctx)
		case "4":
			m.goodbye()
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter a number from 1 to 4.")
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			m.goodbye()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) display() {
	fmt.Fprintln(m.out)
	headerColor.Fprintln(m.out, "===== Notes App ======")
	fmt.Fprintln(m.out, "1. View notes")
	fmt.Fprintln(m.out, "2. Add note")
	fmt.Fprintln(m.out, "3. Delete note")
	fmt.Fprintln(m.out, "4. Exit")
}

func (m *Menu) goodbye() {
	fmt.Fprintln(m.out, "Goodbye!")
}

// prompt writes label and returns the next input line without its line ending.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

// readLine returns io.EOF only when no data is left. A final line without a
// newline is returned as is.
func (m *Menu) readLine() (string, error) {
	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, err := m.in.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLine {
				tooLong, line = true, nil
			}
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if !tooLong && len(line) == 0 {
				return "", io.EOF
			}
			break
		}
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		break
	}

	if tooLong {
		return "", errTooLong
	}
	text := strings.TrimSuffix(string(line), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// report prints a store failure without leaving the menu.
func (m *Menu) report(action string, err error) {
	m.logger.Error("menu action failed", "action", action, "error", err)
	errorColor.Fprintf(m.out, "Error: %v\n", err)
}

// view lists the notes. It reports whether a store file exists.
func (m *Menu) view(ctx context.Context) error {
	exists, err := m.svc.Exists(ctx)
	if err != nil {
		m.report("view", err)
		return nil
	}
	if !exists {
		warnColor.Fprintln(m.out, "No notes file found. Add a note first.")
		return nil
	}

	notes, err := m.svc.List(ctx)
	if err != nil {
		m.report("view", err)
		return nil
	}
	m.show(notes)
	return nil
}

func (m *Menu) show(notes core.Collection) {
	if len(notes) == 0 {
		fmt.Fprintln(m.out, "No notes found.")
		return
	}
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Your Notes:")
	if err := m.renderer.Render(m.out, notes); err != nil {
		m.report("view", err)
	}
}

func (m *Menu) add(ctx context.Context) error {
	text, err := m.prompt("Enter your note: ")
	if errors.Is(err, errTooLong) {
		warnColor.Fprintln(m.out, "Note too long.")
		return nil
	}
	if err != nil {
		return err
	}

	note, err := m.svc.Add(ctx, text)
	switch {
	case errors.Is(err, core.ErrInput):
		warnColor.Fprintln(m.out, "Note cannot be empty.")
	case err != nil:
		m.report("add", err)
	default:
		m.logger.Debug("note added", "timestamp", note.Timestamp)
		successColor.Fprintln(m.out, "Note added!")
	}
	return nil
}

func (m *Menu) remove(ctx context.Context) error {
	exists, err := m.svc.Exists(ctx)
	if err != nil {
		m.report("delete", err)
		return nil
	}
	if !exists {
		warnColor.Fprintln(m.out, "No notes to delete.")
		return nil
	}

	notes, err := m.svc.List(ctx)
	if err != nil {
		m.report("delete", err)
		return nil
	}
	m.show(notes)

	answer, err := m.prompt("Enter the number of the note to delete: ")
	if errors.Is(err, errTooLong) {
		warnColor.Fprintln(m.out, "Invalid input.")
		return nil
	}
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if errors.Is(err, strconv.ErrRange) {
		// Well-formed but beyond any index.
		warnColor.Fprintln(m.out, "Invalid index.")
		return nil
	}
	if err != nil {
		warnColor.Fprintln(m.out, "Invalid input.")
		return nil
	}

	removed, err := m.svc.Remove(ctx, n-1)
	switch {
	case errors.Is(err, core.ErrIndex):
		warnColor.Fprintln(m.out, "Invalid index.")
	case err != nil:
		m.report("delete", err)
	default:
		m.logger.Debug("note deleted", "index", n)
		successColor.Fprintf(m.out, "Deleted note: %s\n", removed.Text)
	}
	return nil
}
