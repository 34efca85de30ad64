// Package storage defines the Registry interface: the contract between the
// interactive menu and whatever owns the academic records.
//
// The menu handlers depend only on this interface, so they can be exercised
// against any implementation. The one shipped today is storage/memory,
// which keeps everything for the lifetime of the process.
package storage

import (
	"io"

	"github.com/aanand-mishra/university-manager/internal/types"
)

// Registry owns every student, teacher and course, assigns ids, and is the
// only entry point for operations that span more than one record.
//
// Slices returned by a Registry are copies; callers may modify them freely.
// They are never nil.
type Registry interface {
	// AddStudent validates and stores a new student under the next student
	// id. On *types.ValidationError nothing is stored and the id sequence
	// does not advance.
	AddStudent(info types.PersonInfo) (*types.Student, error)

	// AddTeacher is AddStudent for teachers, with its own id sequence.
	AddTeacher(info types.TeacherInfo) (*types.Teacher, error)

	// CreateCourse validates and stores a course. Codes are not required to
	// be unique; lookups resolve to the first course stored with a code.
	CreateCourse(info types.CourseInfo) (*types.Course, error)

	// EnrollStudentInCourse enrolls a student in a course on both sides.
	// The student is looked up before the course; either lookup failing
	// yields *types.NotFoundError and no change.
	EnrollStudentInCourse(id types.StudentID, courseCode string) error

	// AssignTeacherToCourse makes the teacher the course's instructor.
	AssignTeacherToCourse(id types.TeacherID, courseCode string) error

	GetStudent(id types.StudentID) (*types.Student, error)
	GetTeacher(id types.TeacherID) (*types.Teacher, error)
	GetCourse(code string) (*types.Course, error)

	StudentExists(id types.StudentID) bool
	TeacherExists(id types.TeacherID) bool
	CourseExists(code string) bool

	GetAllStudents() []*types.Student
	GetAllTeachers() []*types.Teacher
	GetAllCourses() []*types.Course

	// The Display operations look the record up and write its relationship
	// listing to w, or return *types.NotFoundError.
	DisplayStudentCourses(w io.Writer, id types.StudentID) error
	DisplayTeacherCourses(w io.Writer, id types.TeacherID) error
	DisplayCourseStudents(w io.Writer, courseCode string) error
}
