package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/course"
)

type courseRepository struct {
	db *DB
}

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) CreateCourse(_ context.Context, c course.Course) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	c.ID = uuid.New().String()
	repo.db.courses = append(repo.db.courses, &c)
	return c, nil
}

func (repo *courseRepository) GetCourse(_ context.Context, id string) (course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if _, c := repo.find(id); c != nil {
		return *c, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) QueryCourses(_ context.Context, filter *course.QueryFilter, ordering []core.DBOrdering) ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.courses))
	for _, c := range repo.db.courses {
		if filter != nil && filter.PublishedOnly && !c.IsPublished {
			continue
		}
		courses = append(courses, *c)
	}
	sort.SliceStable(courses, func(i, j int) bool {
		return orderedLess(ordering, func(field string) int {
			switch field {
			case "title":
				return compareStrings(courses[i].Title, courses[j].Title)
			case "price":
				return compareFloats(courses[i].Price, courses[j].Price)
			case "created_at":
				return compareTimes(courses[i].CreatedAt, courses[j].CreatedAt)
			}
			return 0
		})
	})
	return courses, nil
}

func (repo *courseRepository) UpdateCourse(_ context.Context, c course.Course) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, orig := repo.find(c.ID); orig != nil {
		*orig = c
		return c, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) DeleteCourse(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	idx, _ := repo.find(id)
	if idx < 0 {
		return course.ErrNotFound
	}
	repo.db.courses = append(repo.db.courses[:idx], repo.db.courses[idx+1:]...)
	return nil
}

func (repo *courseRepository) CountCourses(_ context.Context) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return len(repo.db.courses), nil
}

func (repo *courseRepository) find(id string) (int, *course.Course) {
	for i, c := range repo.db.courses {
		if c.ID == id {
			return i, c
		}
	}
	return -1, nil
}
