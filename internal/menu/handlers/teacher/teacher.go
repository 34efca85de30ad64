// Package teacher contains the menu actions for the Teacher records.
package teacher

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/university-manager/internal/menu/prompt"
	"github.com/aanand-mishra/university-manager/internal/storage"
	"github.com/aanand-mishra/university-manager/internal/types"
	"github.com/aanand-mishra/university-manager/internal/utils/response"
)

// New asks for a teacher's details and registers the teacher.
func New(reg storage.Registry) prompt.Action {
	return func(s *prompt.Session) error {
		slog.Debug("creating a teacher")

		person, err := s.PersonInfo()
		if err != nil {
			return err
		}
		spec, err := s.Line("Specialization: ")
		if err != nil {
			return err
		}

		t, err := reg.AddTeacher(types.TeacherInfo{PersonInfo: person, Specialization: spec})
		if err != nil {
			return err
		}
		return s.Theme.WriteSuccess(s.Out, fmt.Sprintf("Teacher added with ID: %s", t.ID()))
	}
}

// List prints every teacher's contact card in registration order.
func List(reg storage.Registry) prompt.Action {
	return func(s *prompt.Session) error {
		teachers := reg.GetAllTeachers()
		if err := s.Theme.WriteHeading(s.Out, "Teachers:"); err != nil {
			return err
		}
		if len(teachers) == 0 {
			_, err := io.WriteString(s.Out, "No teachers registered\n")
			return err
		}
		for _, t := range teachers {
			if err := response.WritePerson(s.Out, t); err != nil {
				return err
			}
			if _, err := io.WriteString(s.Out, "\n"); err != nil {
				return err
			}
		}
		return nil
	}
}

// Assign asks for a teacher id and a course code and makes the teacher the
// course's instructor, replacing whoever taught it before.
func Assign(reg storage.Registry) prompt.Action {
	return func(s *prompt.Session) error {
		id, err := s.Int("Teacher ID: ")
		if err != nil {
			return err
		}
		code, err := s.Line("Course code: ")
		if err != nil {
			return err
		}

		if err := reg.AssignTeacherToCourse(types.TeacherID(id), code); err != nil {
			return err
		}
		return s.Theme.WriteSuccess(s.Out, fmt.Sprintf("Teacher %d assigned to %s", id, code))
	}
}

// Courses asks for a teacher id and lists the courses the teacher teaches.
func Courses(reg storage.Registry) prompt.Action {
	return func(s *prompt.Session) error {
		id, err := s.Int("Teacher ID: ")
		if err != nil {
			return err
		}
		return reg.DisplayTeacherCourses(s.Out, types.TeacherID(id))
	}
}
