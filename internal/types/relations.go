package types

import "slices"

// Enroll records that s attends c on both sides of the relationship:
// afterwards c is in s.Courses() and s is in c.Students(). Repeating the
// call changes nothing.
func Enroll(s *Student, c *Course) error {
	if s == nil {
		return &NullReferenceError{What: "student"}
	}
	if c == nil {
		return &NullReferenceError{What: "course"}
	}

	if !slices.Contains(s.courses, c) {
		s.courses = append(s.courses, c)
	}
	if !slices.Contains(c.students, s) {
		c.students = append(c.students, s)
	}
	return nil
}

// Assign makes t the instructor of c. The last assignment wins: a previous
// instructor loses c from its taught courses, so c is in t.Courses() exactly
// when c.Instructor() == t.
func Assign(t *Teacher, c *Course) error {
	if t == nil {
		return &NullReferenceError{What: "teacher"}
	}
	if c == nil {
		return &NullReferenceError{What: "course"}
	}

	if prev := c.instructor; prev != nil && prev != t {
		prev.courses = slices.DeleteFunc(prev.courses, func(x *Course) bool { return x == c })
	}
	c.instructor = t
	if !slices.Contains(t.courses, c) {
		t.courses = append(t.courses, c)
	}
	return nil
}
