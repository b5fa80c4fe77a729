package inmemdb

import (
	"strings"
	"sync"
	"time"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/contact"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/course"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/enrollment"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/gallery"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/instructor"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/profile"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/testimonial"
)

type (
	// DB keeps every table in memory, in insertion order.
	DB struct {
		mutex sync.RWMutex

		profiles     []*profile.Profile
		courses      []*course.Course
		instructors  []*instructor.Instructor
		testimonials []*testimonial.Testimonial
		gallery      []*gallery.Item
		enrollments  []*enrollment.Enrollment
		messages     []*contact.Message

		approveWrites int
		approveErr    error
	}
)

func Open() *DB {
	return &DB{}
}

// ApproveWrites is the number of enrollments switched to approved so far.
func (db *DB) ApproveWrites() int {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return db.approveWrites
}

// FailApprove makes subsequent enrollment approvals fail with err (nil resets).
func (db *DB) FailApprove(err error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.approveErr = err
}

// orderedLess reports whether a record sorts before another,
// cmp compares both records on a field and returns <0, 0 or >0.
func orderedLess(ordering []core.DBOrdering, cmp func(field string) int) bool {
	for _, ord := range ordering {
		c := cmp(ord.Field)
		if c == 0 {
			continue
		}
		if ord.Ascending {
			return c < 0
		}
		return c > 0
	}
	return false
}

func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
