// Package student contains the menu actions for the Student records.
//
// Each exported function is a factory: it receives the registry once, when
// the menu is built, and returns the prompt.Action run every time the
// operator picks that option.
//
//	menu.Option{Key: "1", Label: "Add student", Action: student.New(reg)}
package student

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/university-manager/internal/menu/prompt"
	"github.com/aanand-mishra/university-manager/internal/storage"
	"github.com/aanand-mishra/university-manager/internal/types"
	"github.com/aanand-mishra/university-manager/internal/utils/response"
)

// New asks for a student's details and registers the student.
func New(reg storage.Registry) prompt.Action {
	return func(s *prompt.Session) error {
		slog.Debug("creating a student")

		info, err := s.PersonInfo()
		if err != nil {
			return err
		}

		st, err := reg.AddStudent(info)
		if err != nil {
			return err
		}
		return s.Theme.WriteSuccess(s.Out, fmt.Sprintf("Student added with ID: %s", st.ID()))
	}
}

// List prints every student's contact card in registration order.
func List(reg storage.Registry) prompt.Action {
	return func(s *prompt.Session) error {
		students := reg.GetAllStudents()
		if err := s.Theme.WriteHeading(s.Out, "Students:"); err != nil {
			return err
		}
		if len(students) == 0 {
			_, err := io.WriteString(s.Out, "No students registered\n")
			return err
		}
		for _, st := range students {
			if err := response.WritePerson(s.Out, st); err != nil {
				return err
			}
			if _, err := io.WriteString(s.Out, "\n"); err != nil {
				return err
			}
		}
		return nil
	}
}

// Enroll asks for a student id and a course code and enrolls the student.
func Enroll(reg storage.Registry) prompt.Action {
	return func(s *prompt.Session) error {
		id, err := s.Int("Student ID: ")
		if err != nil {
			return err
		}
		code, err := s.Line("Course code: ")
		if err != nil {
			return err
		}

		if err := reg.EnrollStudentInCourse(types.StudentID(id), code); err != nil {
			return err
		}
		return s.Theme.WriteSuccess(s.Out, fmt.Sprintf("Student %d enrolled in %s", id, code))
	}
}

// Courses asks for a student id and lists the student's courses.
func Courses(reg storage.Registry) prompt.Action {
	return func(s *prompt.Session) error {
		id, err := s.Int("Student ID: ")
		if err != nil {
			return err
		}
		return reg.DisplayStudentCourses(s.Out, types.StudentID(id))
	}
}
