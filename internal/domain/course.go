package domain

import "fmt"

// CourseSpec describes a tracked course: its state key, label and module count.
type CourseSpec struct {
	Key   string
	Name  string
	Total int
}

// DefaultCourses is the course catalog used when configuration names none.
func DefaultCourses() []CourseSpec {
	return []CourseSpec{
		{Key: "tensorflow", Name: "TensorFlow", Total: 50},
		{Key: "gfg", Name: "GFG DSA", Total: 32},
		{Key: "codingBlocks", Name: "Coding Blocks", Total: 75},
	}
}

type CourseProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// SetCompleted stores n clamped to [0, Total].
func (c *CourseProgress) SetCompleted(n int) {
	switch {
	case n < 0:
		n = 0
	case n > c.Total:
		n = c.Total
	}
	c.Completed = n
}

// Percent returns the completed share in [0, 100].
func (c CourseProgress) Percent() int {
	return percent(c.Completed, c.Total)
}

// FindCourse returns the spec with the given key.
func FindCourse(specs []CourseSpec, key string) (CourseSpec, error) {
	for _, s := range specs {
		if s.Key == key {
			return s, nil
		}
	}
	return CourseSpec{}, fmt.Errorf("unknown course %q", key)
}
