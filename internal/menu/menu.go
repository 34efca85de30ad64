// Package menu runs the numbered text menu the operator drives the registry
// with. It owns the loop only: reading a choice, dispatching to the option's
// action and reporting failures. The actions themselves live in
// menu/handlers.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aanand-mishra/university-manager/internal/menu/handlers/course"
	"github.com/aanand-mishra/university-manager/internal/menu/handlers/student"
	"github.com/aanand-mishra/university-manager/internal/menu/handlers/teacher"
	"github.com/aanand-mishra/university-manager/internal/menu/prompt"
	"github.com/aanand-mishra/university-manager/internal/storage"
)

// ExitKey ends the loop.
const ExitKey = "0"

// Option is one numbered menu entry.
type Option struct {
	Key    string
	Label  string
	Action prompt.Action
}

// Options returns the full menu wired to reg.
func Options(reg storage.Registry) []Option {
	return []Option{
		{Key: "1", Label: "Add student", Action: student.New(reg)},
		{Key: "2", Label: "Add teacher", Action: teacher.New(reg)},
		{Key: "3", Label: "Create course", Action: course.New(reg)},
		{Key: "4", Label: "Enroll student in course", Action: student.Enroll(reg)},
		{Key: "5", Label: "Assign teacher to course", Action: teacher.Assign(reg)},
		{Key: "6", Label: "List students", Action: student.List(reg)},
		{Key: "7", Label: "List teachers", Action: teacher.List(reg)},
		{Key: "8", Label: "List courses", Action: course.List(reg)},
		{Key: "9", Label: "Show student's courses", Action: student.Courses(reg)},
		{Key: "10", Label: "Show course's students", Action: course.Students(reg)},
		{Key: "11", Label: "Show teacher's courses", Action: teacher.Courses(reg)},
	}
}

// Menu is the interaction loop.
type Menu struct {
	title   string
	prompt  string
	options []Option
	session *prompt.Session
	log     *slog.Logger
}

// New returns a menu over options. A nil logger falls back to slog.Default().
func New(session *prompt.Session, promptText string, options []Option, log *slog.Logger) *Menu {
	if log == nil {
		log = slog.Default()
	}
	return &Menu{
		title:   "University management",
		prompt:  promptText,
		options: options,
		session: session,
		log:     log,
	}
}

// Run shows the menu until the operator picks ExitKey or input ends.
// Errors from an option are printed and the loop continues; Run only
// returns an error when the terminal itself fails.
func (m *Menu) Run() error {
	out := m.session.Out
	for {
		if err := m.render(); err != nil {
			return err
		}

		choice, err := m.session.Line(m.prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, prompt.ErrLineTooLong) {
			if werr := m.session.Theme.WriteError(out, err); werr != nil {
				return werr
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("menu: read choice: %w", err)
		}
		if choice == ExitKey {
			_, err := io.WriteString(out, "Goodbye\n")
			return err
		}

		opt, ok := m.lookup(choice)
		if !ok {
			if err := m.session.Theme.WriteError(out, fmt.Errorf("unknown option %q", choice)); err != nil {
				return err
			}
			continue
		}

		err = opt.Action(m.session)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			m.log.Warn("menu action failed",
				slog.String("option", opt.Label),
				slog.String("error", err.Error()))
			if werr := m.session.Theme.WriteError(out, err); werr != nil {
				return werr
			}
		}
	}
}

func (m *Menu) render() error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.session.Theme.Heading.Render(m.title))
	b.WriteString("\n")
	for _, o := range m.options {
		fmt.Fprintf(&b, "%s. %s\n", o.Key, o.Label)
	}
	fmt.Fprintf(&b, "%s. Exit\n", ExitKey)
	_, err := io.WriteString(m.session.Out, b.String())
	return err
}

func (m *Menu) lookup(key string) (Option, bool) {
	for _, o := range m.options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}
