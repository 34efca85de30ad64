// Package response renders records and errors as the text the operator sees
// in the interactive menu.
//
// Every menu action writes the same few shapes (a contact card, a list of
// courses, a failure message), so they are centralised here. Output is plain
// text; a Theme may add lipgloss styling to headings and messages.
package response

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aanand-mishra/university-manager/internal/types"
)

// Theme styles the lines the menu prints around record output.
// Build one with NewTheme.
type Theme struct {
	Heading lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewTheme returns a colored theme, or a plain one when color is false.
func NewTheme(color bool) Theme {
	if !color {
		plain := lipgloss.NewStyle()
		return Theme{Heading: plain, Success: plain, Error: plain}
	}
	return Theme{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// WriteSuccess prints an operator-facing confirmation.
func (th Theme) WriteSuccess(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, th.Success.Render(msg))
	return err
}

// WriteError prints Describe(err) in the error style.
func (th Theme) WriteError(w io.Writer, err error) error {
	_, werr := fmt.Fprintln(w, th.Error.Render("Error: "+Describe(err)))
	return werr
}

// WriteHeading prints a section title.
func (th Theme) WriteHeading(w io.Writer, title string) error {
	_, err := fmt.Fprintln(w, th.Heading.Render(title))
	return err
}

// Describe converts an error from the registry into a readable sentence.
// Wrapping added by callers is dropped for the known error types.
//
// Example output:
//
//	invalid student: field Age must be at most 120
//	no course found with code: CS999
func Describe(err error) string {
	var (
		verr *types.ValidationError
		nerr *types.NotFoundError
		rerr *types.NullReferenceError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return verr.Error()
	case errors.As(err, &nerr):
		return nerr.Error()
	case errors.As(err, &rerr):
		return "missing " + rerr.What
	default:
		return err.Error()
	}
}

// WritePerson prints the contact card of a student or teacher.
func WritePerson(w io.Writer, p types.Person) error {
	switch v := p.(type) {
	case *types.Student:
		return WriteStudentInfo(w, v)
	case *types.Teacher:
		return WriteTeacherInfo(w, v)
	default:
		return fmt.Errorf("response: unsupported person %T", p)
	}
}

// WriteStudentInfo prints a student's contact card and enrolled course count.
func WriteStudentInfo(w io.Writer, s *types.Student) error {
	info := s.Info()
	var b strings.Builder
	fmt.Fprintf(&b, "Student: %s (ID: %s)\n", info.Name, s.ID())
	writeContact(&b, info)
	fmt.Fprintf(&b, "Enrolled courses: %d\n", len(s.Courses()))
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTeacherInfo prints a teacher's contact card, specialization and
// taught course count.
func WriteTeacherInfo(w io.Writer, t *types.Teacher) error {
	info := t.Info()
	var b strings.Builder
	fmt.Fprintf(&b, "Teacher: %s (ID: %s)\n", info.Name, t.ID())
	fmt.Fprintf(&b, "Specialization: %s\n", t.Specialization())
	writeContact(&b, info)
	fmt.Fprintf(&b, "Teaching courses: %d\n", len(t.Courses()))
	_, err := io.WriteString(w, b.String())
	return err
}

func writeContact(b *strings.Builder, info types.PersonInfo) {
	fmt.Fprintf(b, "Age: %d, Email: %s, Phone: %s\n", info.Age, info.Email, info.Phone)
}

// WriteCourseInfo prints a course summary. An unassigned course shows
// "Instructor: not assigned".
func WriteCourseInfo(w io.Writer, c *types.Course) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Course: %s (%s)\n", c.Name(), c.Code())
	fmt.Fprintf(&b, "Credits: %d\n", c.Credits())
	if c.Description() != "" {
		fmt.Fprintf(&b, "Description: %s\n", c.Description())
	}
	if t := c.Instructor(); t != nil {
		fmt.Fprintf(&b, "Instructor: %s (ID: %s)\n", t.Name(), t.ID())
	} else {
		b.WriteString("Instructor: not assigned\n")
	}
	fmt.Fprintf(&b, "Enrolled students: %d\n", len(c.Students()))
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteStudentCourses lists the courses s is enrolled in.
func WriteStudentCourses(w io.Writer, s *types.Student) error {
	return writeCourseList(w, "Courses of student "+s.Name()+":", "No enrolled courses", s.Courses())
}

// WriteTeacherCourses lists the courses t currently teaches.
func WriteTeacherCourses(w io.Writer, t *types.Teacher) error {
	return writeCourseList(w, "Courses of teacher "+t.Name()+":", "No taught courses", t.Courses())
}

// WriteCourseStudents lists the students enrolled in c.
func WriteCourseStudents(w io.Writer, c *types.Course) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Students of course %s (%s):\n", c.Name(), c.Code())
	students := c.Students()
	if len(students) == 0 {
		b.WriteString("No enrolled students\n")
	}
	for _, s := range students {
		fmt.Fprintf(&b, "- %s (ID: %s)\n", s.Name(), s.ID())
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeCourseList(w io.Writer, title, empty string, courses []*types.Course) error {
	var b strings.Builder
	b.WriteString(title + "\n")
	if len(courses) == 0 {
		b.WriteString(empty + "\n")
	}
	for _, c := range courses {
		fmt.Fprintf(&b, "- %s (%s)\n", c.Name(), c.Code())
	}
	_, err := io.WriteString(w, b.String())
	return err
}
