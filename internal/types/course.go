package types

// CourseInfo holds the descriptive attributes of a course. Code is the
// lookup key used by the registry; it is matched exactly and case-sensitively.
type CourseInfo struct {
	Code        string `validate:"notblank"`
	Name        string `validate:"notblank"`
	Description string
	Credits     int `validate:"min=1,max=10"`
}

// Course owns its enrolled students and at most one instructor.
type Course struct {
	info       CourseInfo
	instructor *Teacher
	students   []*Student
}

// NewCourse validates info and returns a course with no instructor and no
// students.
func NewCourse(info CourseInfo) (*Course, error) {
	if err := validateRecord("course", info); err != nil {
		return nil, err
	}
	return &Course{info: info}, nil
}

func (c *Course) Code() string        { return c.info.Code }
func (c *Course) Name() string        { return c.info.Name }
func (c *Course) Description() string { return c.info.Description }
func (c *Course) Credits() int        { return c.info.Credits }
func (c *Course) Info() CourseInfo    { return c.info }

// Instructor returns the assigned teacher, or nil when unassigned.
func (c *Course) Instructor() *Teacher { return c.instructor }

// HasInstructor reports whether a teacher is assigned.
func (c *Course) HasInstructor() bool { return c.instructor != nil }

// Students returns a copy of the enrolled students in enrollment order.
func (c *Course) Students() []*Student {
	return copyOf(c.students)
}

// EnrollStudent enrolls s in the course. It is the same operation as
// s.EnrollInCourse(c).
func (c *Course) EnrollStudent(s *Student) error {
	return Enroll(s, c)
}
