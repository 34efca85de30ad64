package memory

import (
	"bytes"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/aanand-mishra/university-manager/internal/types"
)

func newTestRegistry() *Memory {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ana() types.PersonInfo {
	return types.PersonInfo{Name: "Ana", Age: 20, Email: "a@x.com", Phone: "555"}
}

func teacherInfo(name string) types.TeacherInfo {
	return types.TeacherInfo{
		PersonInfo:     types.PersonInfo{Name: name, Age: 45, Email: name + "@uni.edu", Phone: "777"},
		Specialization: "Computer Science",
	}
}

func algorithms() types.CourseInfo {
	return types.CourseInfo{Code: "CS101", Name: "Algorithms", Credits: 4}
}

func TestEndToEnd_Enroll(t *testing.T) {
	reg := newTestRegistry()

	s, err := reg.AddStudent(ana())
	require.NoError(t, err)
	assert.Equal(t, types.StudentID(1), s.ID())

	_, err = reg.CreateCourse(algorithms())
	require.NoError(t, err)

	require.NoError(t, reg.EnrollStudentInCourse(1, "CS101"))

	courses := s.Courses()
	require.Len(t, courses, 1)
	assert.Equal(t, "CS101", courses[0].Code())

	c, err := reg.GetCourse("CS101")
	require.NoError(t, err)
	students := c.Students()
	require.Len(t, students, 1)
	assert.Equal(t, "Ana", students[0].Name())
}

func TestAddStudent_ValidationLeavesCounter(t *testing.T) {
	reg := newTestRegistry()

	info := ana()
	info.Age = 200
	s, err := reg.AddStudent(info)
	require.Nil(t, s)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, reg.GetAllStudents())

	// The failed add must not have consumed id 1.
	s, err = reg.AddStudent(ana())
	require.NoError(t, err)
	assert.Equal(t, types.StudentID(1), s.ID())
}

func TestAddTeacher_ValidationLeavesCounter(t *testing.T) {
	reg := newTestRegistry()

	bad := teacherInfo("Ivanov")
	bad.Specialization = ""
	_, err := reg.AddTeacher(bad)
	require.Error(t, err)
	assert.Empty(t, reg.GetAllTeachers())

	tc, err := reg.AddTeacher(teacherInfo("Ivanov"))
	require.NoError(t, err)
	assert.Equal(t, types.TeacherID(1), tc.ID())
}

func TestCreateCourse_ValidationStoresNothing(t *testing.T) {
	reg := newTestRegistry()

	info := algorithms()
	info.Credits = 11
	_, err := reg.CreateCourse(info)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, reg.GetAllCourses())
	assert.False(t, reg.CourseExists("CS101"))
}

func TestIDSequences_AreIndependent(t *testing.T) {
	reg := newTestRegistry()

	s1, err := reg.AddStudent(ana())
	require.NoError(t, err)
	s2, err := reg.AddStudent(ana())
	require.NoError(t, err)
	t1, err := reg.AddTeacher(teacherInfo("Ivanov"))
	require.NoError(t, err)

	assert.Equal(t, types.StudentID(1), s1.ID())
	assert.Equal(t, types.StudentID(2), s2.ID())
	assert.Equal(t, types.TeacherID(1), t1.ID())

	assert.True(t, reg.StudentExists(2))
	assert.True(t, reg.TeacherExists(1))
	assert.False(t, reg.TeacherExists(2))
}

func TestEnrollStudentInCourse_NotFound(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.CreateCourse(algorithms())
	require.NoError(t, err)

	err = reg.EnrollStudentInCourse(99, "CS101")

	var nerr *types.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "student", nerr.Kind)
	assert.Equal(t, "99", nerr.Key)

	c, err := reg.GetCourse("CS101")
	require.NoError(t, err)
	assert.Empty(t, c.Students())
}

func TestEnrollStudentInCourse_StudentCheckedFirst(t *testing.T) {
	reg := newTestRegistry()

	err := reg.EnrollStudentInCourse(1, "NOPE")

	var nerr *types.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "student", nerr.Kind)
}

func TestEnrollStudentInCourse_CourseNotFound(t *testing.T) {
	reg := newTestRegistry()
	s, err := reg.AddStudent(ana())
	require.NoError(t, err)

	err = reg.EnrollStudentInCourse(1, "cs101")

	var nerr *types.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "course", nerr.Kind)
	assert.Equal(t, "cs101", nerr.Key)
	assert.Empty(t, s.Courses())
}

func TestEnrollStudentInCourse_Idempotent(t *testing.T) {
	reg := newTestRegistry()
	s, err := reg.AddStudent(ana())
	require.NoError(t, err)
	c, err := reg.CreateCourse(algorithms())
	require.NoError(t, err)

	require.NoError(t, reg.EnrollStudentInCourse(1, "CS101"))
	require.NoError(t, reg.EnrollStudentInCourse(1, "CS101"))

	assert.Len(t, s.Courses(), 1)
	assert.Len(t, c.Students(), 1)
}

func TestAssignTeacherToCourse_Overwrite(t *testing.T) {
	reg := newTestRegistry()
	t1, err := reg.AddTeacher(teacherInfo("Ivanov"))
	require.NoError(t, err)
	t2, err := reg.AddTeacher(teacherInfo("Petrova"))
	require.NoError(t, err)
	c, err := reg.CreateCourse(algorithms())
	require.NoError(t, err)

	require.NoError(t, reg.AssignTeacherToCourse(1, "CS101"))
	require.NoError(t, reg.AssignTeacherToCourse(2, "CS101"))

	assert.Same(t, t2, c.Instructor())
	assert.True(t, c.HasInstructor())
	assert.Empty(t, t1.Courses())
	assert.Equal(t, []*types.Course{c}, t2.Courses())
}

func TestAssignTeacherToCourse_NotFound(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.AddTeacher(teacherInfo("Ivanov"))
	require.NoError(t, err)

	var nerr *types.NotFoundError

	require.ErrorAs(t, reg.AssignTeacherToCourse(7, "CS101"), &nerr)
	assert.Equal(t, "teacher", nerr.Kind)

	require.ErrorAs(t, reg.AssignTeacherToCourse(1, "CS101"), &nerr)
	assert.Equal(t, "course", nerr.Kind)
}

func TestDuplicateCourseCodes_FirstWins(t *testing.T) {
	reg := newTestRegistry()
	first, err := reg.CreateCourse(algorithms())
	require.NoError(t, err)
	second, err := reg.CreateCourse(types.CourseInfo{Code: "CS101", Name: "Algorithms II", Credits: 5})
	require.NoError(t, err)
	_, err = reg.AddStudent(ana())
	require.NoError(t, err)

	assert.Len(t, reg.GetAllCourses(), 2)

	got, err := reg.GetCourse("CS101")
	require.NoError(t, err)
	assert.Same(t, first, got)

	require.NoError(t, reg.EnrollStudentInCourse(1, "CS101"))
	assert.Len(t, first.Students(), 1)
	assert.Empty(t, second.Students())
}

func TestBulkAccessors_ReturnCopies(t *testing.T) {
	reg := newTestRegistry()

	assert.NotNil(t, reg.GetAllStudents())
	assert.NotNil(t, reg.GetAllTeachers())
	assert.NotNil(t, reg.GetAllCourses())

	_, err := reg.AddStudent(ana())
	require.NoError(t, err)

	all := reg.GetAllStudents()
	all[0] = nil

	again := reg.GetAllStudents()
	require.Len(t, again, 1)
	assert.NotNil(t, again[0])
}

func TestDisplay(t *testing.T) {
	reg := newTestRegistry()
	_, err := reg.AddStudent(ana())
	require.NoError(t, err)
	_, err = reg.AddTeacher(teacherInfo("Ivanov"))
	require.NoError(t, err)
	_, err = reg.CreateCourse(algorithms())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, reg.DisplayStudentCourses(&buf, 1))
	assert.Equal(t, "Courses of student Ana:\nNo enrolled courses\n", buf.String())

	require.NoError(t, reg.EnrollStudentInCourse(1, "CS101"))
	require.NoError(t, reg.AssignTeacherToCourse(1, "CS101"))

	buf.Reset()
	require.NoError(t, reg.DisplayStudentCourses(&buf, 1))
	assert.Equal(t, "Courses of student Ana:\n- Algorithms (CS101)\n", buf.String())

	buf.Reset()
	require.NoError(t, reg.DisplayCourseStudents(&buf, "CS101"))
	assert.Equal(t, "Students of course Algorithms (CS101):\n- Ana (ID: 1)\n", buf.String())

	buf.Reset()
	require.NoError(t, reg.DisplayTeacherCourses(&buf, 1))
	assert.Equal(t, "Courses of teacher Ivanov:\n- Algorithms (CS101)\n", buf.String())

	buf.Reset()
	var nerr *types.NotFoundError
	require.ErrorAs(t, reg.DisplayStudentCourses(&buf, 2), &nerr)
	require.ErrorAs(t, reg.DisplayTeacherCourses(&buf, 2), &nerr)
	require.ErrorAs(t, reg.DisplayCourseStudents(&buf, "MA201"), &nerr)
	assert.Empty(t, buf.String())
}

// TestRelationshipInvariant is a property-based test: after any sequence of
// enroll and assign operations, every relationship is recorded on both sides.
func TestRelationshipInvariant(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		reg := newTestRegistry()

		codes := []string{"CS101", "CS102", "MA201"}
		numStudents := rapid.IntRange(1, 5).Draw(r, "numStudents")
		numTeachers := rapid.IntRange(1, 3).Draw(r, "numTeachers")
		for i := 0; i < numStudents; i++ {
			if _, err := reg.AddStudent(ana()); err != nil {
				r.Fatalf("add student: %v", err)
			}
		}
		for i := 0; i < numTeachers; i++ {
			if _, err := reg.AddTeacher(teacherInfo("T")); err != nil {
				r.Fatalf("add teacher: %v", err)
			}
		}
		for _, code := range codes {
			if _, err := reg.CreateCourse(types.CourseInfo{Code: code, Name: code, Credits: 3}); err != nil {
				r.Fatalf("create course: %v", err)
			}
		}

		ops := rapid.IntRange(0, 40).Draw(r, "ops")
		for i := 0; i < ops; i++ {
			code := rapid.SampledFrom(append(codes, "XX000")).Draw(r, "code")
			if rapid.Bool().Draw(r, "enroll") {
				// Ids past the last student exercise the not-found path.
				id := types.StudentID(rapid.IntRange(1, numStudents+1).Draw(r, "studentID"))
				_ = reg.EnrollStudentInCourse(id, code)
			} else {
				id := types.TeacherID(rapid.IntRange(1, numTeachers+1).Draw(r, "teacherID"))
				_ = reg.AssignTeacherToCourse(id, code)
			}
		}

		courses := reg.GetAllCourses()
		for _, s := range reg.GetAllStudents() {
			enrolled := s.Courses()
			for _, c := range courses {
				inStudent := slices.Contains(enrolled, c)
				inCourse := slices.Contains(c.Students(), s)
				if inStudent != inCourse {
					r.Fatalf("student %s / course %s: student side %v, course side %v",
						s.ID(), c.Code(), inStudent, inCourse)
				}
			}
			if len(enrolled) != len(uniqueCourses(enrolled)) {
				r.Fatalf("student %s has duplicate enrollments", s.ID())
			}
		}
		for _, tc := range reg.GetAllTeachers() {
			taught := tc.Courses()
			for _, c := range courses {
				if slices.Contains(taught, c) != (c.Instructor() == tc) {
					r.Fatalf("teacher %s / course %s out of sync", tc.ID(), c.Code())
				}
			}
		}
	})
}

func uniqueCourses(in []*types.Course) []*types.Course {
	out := make([]*types.Course, 0, len(in))
	for _, c := range in {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}
