// Package memory provides the in-process implementation of
// storage.Registry. Records live in insertion-ordered slices for the
// lifetime of the process; nothing is written anywhere.
//
// The registry is meant for a single control thread. A mutex serializes
// the registry's own operations only; the entities it hands out are not
// synchronized, so their accessors must not race with a registry mutation.
package memory

import (
	"io"
	"log/slog"
	"sync"

	"github.com/aanand-mishra/university-manager/internal/storage"
	"github.com/aanand-mishra/university-manager/internal/types"
	"github.com/aanand-mishra/university-manager/internal/utils/response"
)

var _ storage.Registry = (*Memory)(nil)

// Memory is the UniversityManager: it owns the three collections and the
// two id sequences.
type Memory struct {
	mu sync.Mutex

	students []*types.Student
	teachers []*types.Teacher
	courses  []*types.Course

	nextStudentID types.StudentID
	nextTeacherID types.TeacherID

	log *slog.Logger
}

// New returns an empty registry. Both id sequences start at 1.
// A nil logger falls back to slog.Default().
func New(log *slog.Logger) *Memory {
	if log == nil {
		log = slog.Default()
	}
	return &Memory{
		students:      make([]*types.Student, 0),
		teachers:      make([]*types.Teacher, 0),
		courses:       make([]*types.Course, 0),
		nextStudentID: 1,
		nextTeacherID: 1,
		log:           log,
	}
}

func (m *Memory) AddStudent(info types.PersonInfo) (*types.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// The counter only advances once the student exists.
	s, err := types.NewStudent(m.nextStudentID, info)
	if err != nil {
		m.log.Debug("student rejected", slog.String("error", err.Error()))
		return nil, err
	}
	m.students = append(m.students, s)
	m.nextStudentID++

	m.log.Info("student added",
		slog.String("id", s.ID().String()),
		slog.String("name", s.Name()))
	return s, nil
}

func (m *Memory) AddTeacher(info types.TeacherInfo) (*types.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := types.NewTeacher(m.nextTeacherID, info)
	if err != nil {
		m.log.Debug("teacher rejected", slog.String("error", err.Error()))
		return nil, err
	}
	m.teachers = append(m.teachers, t)
	m.nextTeacherID++

	m.log.Info("teacher added",
		slog.String("id", t.ID().String()),
		slog.String("name", t.Name()),
		slog.String("specialization", t.Specialization()))
	return t, nil
}

func (m *Memory) CreateCourse(info types.CourseInfo) (*types.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := types.NewCourse(info)
	if err != nil {
		m.log.Debug("course rejected", slog.String("error", err.Error()))
		return nil, err
	}
	if m.findCourse(c.Code()) != nil {
		// Allowed, but later lookups will never resolve to this course.
		m.log.Warn("duplicate course code", slog.String("code", c.Code()))
	}
	m.courses = append(m.courses, c)

	m.log.Info("course created",
		slog.String("code", c.Code()),
		slog.Int("credits", c.Credits()))
	return c, nil
}

func (m *Memory) EnrollStudentInCourse(id types.StudentID, courseCode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.student(id)
	if err != nil {
		return err
	}
	c, err := m.course(courseCode)
	if err != nil {
		return err
	}
	if err := types.Enroll(s, c); err != nil {
		return err
	}

	m.log.Info("student enrolled",
		slog.String("student_id", id.String()),
		slog.String("code", courseCode))
	return nil
}

func (m *Memory) AssignTeacherToCourse(id types.TeacherID, courseCode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.teacher(id)
	if err != nil {
		return err
	}
	c, err := m.course(courseCode)
	if err != nil {
		return err
	}
	if err := types.Assign(t, c); err != nil {
		return err
	}

	m.log.Info("teacher assigned",
		slog.String("teacher_id", id.String()),
		slog.String("code", courseCode))
	return nil
}

func (m *Memory) GetStudent(id types.StudentID) (*types.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.student(id)
}

func (m *Memory) GetTeacher(id types.TeacherID) (*types.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.teacher(id)
}

func (m *Memory) GetCourse(code string) (*types.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.course(code)
}

func (m *Memory) StudentExists(id types.StudentID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findStudent(id) != nil
}

func (m *Memory) TeacherExists(id types.TeacherID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findTeacher(id) != nil
}

func (m *Memory) CourseExists(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findCourse(code) != nil
}

func (m *Memory) GetAllStudents() []*types.Student {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append(make([]*types.Student, 0, len(m.students)), m.students...)
}

func (m *Memory) GetAllTeachers() []*types.Teacher {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append(make([]*types.Teacher, 0, len(m.teachers)), m.teachers...)
}

func (m *Memory) GetAllCourses() []*types.Course {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append(make([]*types.Course, 0, len(m.courses)), m.courses...)
}

func (m *Memory) DisplayStudentCourses(w io.Writer, id types.StudentID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.student(id)
	if err != nil {
		return err
	}
	return response.WriteStudentCourses(w, s)
}

func (m *Memory) DisplayTeacherCourses(w io.Writer, id types.TeacherID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.teacher(id)
	if err != nil {
		return err
	}
	return response.WriteTeacherCourses(w, t)
}

func (m *Memory) DisplayCourseStudents(w io.Writer, courseCode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.course(courseCode)
	if err != nil {
		return err
	}
	return response.WriteCourseStudents(w, c)
}

// ── lookups; callers hold m.mu ──────────────────────────────────────────────

func (m *Memory) student(id types.StudentID) (*types.Student, error) {
	if s := m.findStudent(id); s != nil {
		return s, nil
	}
	m.log.Debug("student lookup failed", slog.String("id", id.String()))
	return nil, &types.NotFoundError{Kind: "student", Key: id.String()}
}

func (m *Memory) teacher(id types.TeacherID) (*types.Teacher, error) {
	if t := m.findTeacher(id); t != nil {
		return t, nil
	}
	m.log.Debug("teacher lookup failed", slog.String("id", id.String()))
	return nil, &types.NotFoundError{Kind: "teacher", Key: id.String()}
}

func (m *Memory) course(code string) (*types.Course, error) {
	if c := m.findCourse(code); c != nil {
		return c, nil
	}
	m.log.Debug("course lookup failed", slog.String("code", code))
	return nil, &types.NotFoundError{Kind: "course", Key: code}
}

func (m *Memory) findStudent(id types.StudentID) *types.Student {
	for _, s := range m.students {
		if s.ID() == id {
			return s
		}
	}
	return nil
}

func (m *Memory) findTeacher(id types.TeacherID) *types.Teacher {
	for _, t := range m.teachers {
		if t.ID() == id {
			return t
		}
	}
	return nil
}

// findCourse returns the first course stored with code, matched exactly.
func (m *Memory) findCourse(code string) *types.Course {
	for _, c := range m.courses {
		if c.Code() == code {
			return c
		}
	}
	return nil
}
