// Package course contains the menu actions for the Course records.
package course

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/university-manager/internal/menu/prompt"
	"github.com/aanand-mishra/university-manager/internal/storage"
	"github.com/aanand-mishra/university-manager/internal/types"
	"github.com/aanand-mishra/university-manager/internal/utils/response"
)

// New asks for a course's details and creates it. The description may be
// left empty.
func New(reg storage.Registry) prompt.Action {
	return func(s *prompt.Session) error {
		slog.Debug("creating a course")

		var (
			info types.CourseInfo
			err  error
		)
		if info.Code, err = s.Line("Course code: "); err != nil {
			return err
		}
		if info.Name, err = s.Line("Course name: "); err != nil {
			return err
		}
		if info.Description, err = s.Line("Description: "); err != nil {
			return err
		}
		if info.Credits, err = s.Int("Credits: "); err != nil {
			return err
		}

		c, err := reg.CreateCourse(info)
		if err != nil {
			return err
		}
		return s.Theme.WriteSuccess(s.Out, fmt.Sprintf("Course %s created", c.Code()))
	}
}

// List prints every course summary in creation order.
func List(reg storage.Registry) prompt.Action {
	return func(s *prompt.Session) error {
		courses := reg.GetAllCourses()
		if err := s.Theme.WriteHeading(s.Out, "Courses:"); err != nil {
			return err
		}
		if len(courses) == 0 {
			_, err := io.WriteString(s.Out, "No courses created\n")
			return err
		}
		for _, c := range courses {
			if err := response.WriteCourseInfo(s.Out, c); err != nil {
				return err
			}
			if _, err := io.WriteString(s.Out, "\n"); err != nil {
				return err
			}
		}
		return nil
	}
}

// Students asks for a course code and lists the enrolled students.
func Students(reg storage.Registry) prompt.Action {
	return func(s *prompt.Session) error {
		code, err := s.Line("Course code: ")
		if err != nil {
			return err
		}
		return reg.DisplayCourseStudents(s.Out, code)
	}
}
