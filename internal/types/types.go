// Package types holds the academic records shared across the application:
// students, teachers and courses, the ids that name them, and the errors
// their operations return. Keeping them in one place lets the storage,
// menu and response packages import types without depending on each other.
//
// Records are validated once, in their constructors, and are immutable
// afterwards. The only state that changes after construction is relationship
// membership, and that only through Enroll and Assign (see relations.go),
// which update both sides in one step.
package types

import "strconv"

// StudentID and TeacherID are drawn from independent sequences, so the same
// number may name a student and a teacher. Distinct types keep the two apart
// at compile time.
type (
	StudentID int
	TeacherID int
)

func (id StudentID) String() string { return strconv.Itoa(int(id)) }
func (id TeacherID) String() string { return strconv.Itoa(int(id)) }

// Role tells the variants of Person apart.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// PersonInfo carries the identity and contact attributes shared by students
// and teachers.
//
// The validate:"..." tags are checked by go-playground/validator when a
// Student or Teacher is constructed; see validate.go for the custom
// "notblank" rule.
type PersonInfo struct {
	Name  string `validate:"notblank"`
	Age   int    `validate:"min=1,max=120"`
	Email string `validate:"notblank,contains=@"`
	Phone string `validate:"notblank"`
}

// TeacherInfo is PersonInfo plus the teacher's field of specialization.
type TeacherInfo struct {
	PersonInfo
	Specialization string `validate:"notblank"`
}

// Person is implemented by *Student and *Teacher. The shell uses it where
// both are treated alike, e.g. when printing a contact card.
type Person interface {
	Role() Role
	Info() PersonInfo
	Courses() []*Course
}

// Student is a person enrolled in zero or more courses.
type Student struct {
	id      StudentID
	info    PersonInfo
	courses []*Course
}

// NewStudent validates info and returns a student with the given id.
// On failure it returns a *ValidationError and no student.
func NewStudent(id StudentID, info PersonInfo) (*Student, error) {
	if err := validateRecord("student", info); err != nil {
		return nil, err
	}
	return &Student{id: id, info: info}, nil
}

func (s *Student) ID() StudentID    { return s.id }
func (s *Student) Name() string     { return s.info.Name }
func (s *Student) Role() Role       { return RoleStudent }
func (s *Student) Info() PersonInfo { return s.info }

// Courses returns a copy of the courses the student is enrolled in, in
// enrollment order.
func (s *Student) Courses() []*Course {
	return copyOf(s.courses)
}

// EnrollInCourse enrolls the student in c. Enrolling twice is a no-op.
func (s *Student) EnrollInCourse(c *Course) error {
	return Enroll(s, c)
}

// Teacher is a person assigned to teach zero or more courses.
type Teacher struct {
	id      TeacherID
	info    TeacherInfo
	courses []*Course
}

// NewTeacher validates info and returns a teacher with the given id.
func NewTeacher(id TeacherID, info TeacherInfo) (*Teacher, error) {
	if err := validateRecord("teacher", info); err != nil {
		return nil, err
	}
	return &Teacher{id: id, info: info}, nil
}

func (t *Teacher) ID() TeacherID          { return t.id }
func (t *Teacher) Name() string           { return t.info.Name }
func (t *Teacher) Role() Role             { return RoleTeacher }
func (t *Teacher) Info() PersonInfo       { return t.info.PersonInfo }
func (t *Teacher) Specialization() string { return t.info.Specialization }

// Courses returns a copy of the courses currently taught by the teacher.
func (t *Teacher) Courses() []*Course {
	return copyOf(t.courses)
}

// AssignToCourse makes t the instructor of c, replacing any previous one.
func (t *Teacher) AssignToCourse(c *Course) error {
	return Assign(t, c)
}

func copyOf[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
