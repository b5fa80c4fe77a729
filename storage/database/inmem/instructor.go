package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/instructor"
)

type instructorRepository struct {
	db *DB
}

func NewInstructorRepository(db *DB) instructor.Repository {
	return &instructorRepository{db: db}
}

func (repo *instructorRepository) CreateInstructor(_ context.Context, ins instructor.Instructor) (instructor.Instructor, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	ins.ID = uuid.New().String()
	if ins.Certifications == nil {
		ins.Certifications = []string{}
	}
	repo.db.instructors = append(repo.db.instructors, &ins)
	return ins, nil
}

func (repo *instructorRepository) GetInstructor(_ context.Context, id string) (instructor.Instructor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if _, ins := repo.find(id); ins != nil {
		return *ins, nil
	}
	return instructor.Instructor{}, instructor.ErrNotFound
}

func (repo *instructorRepository) QueryInstructors(_ context.Context, ordering []core.DBOrdering) ([]instructor.Instructor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	instructors := make([]instructor.Instructor, 0, len(repo.db.instructors))
	for _, ins := range repo.db.instructors {
		instructors = append(instructors, *ins)
	}
	sort.SliceStable(instructors, func(i, j int) bool {
		return orderedLess(ordering, func(field string) int {
			switch field {
			case "name":
				return compareStrings(instructors[i].Name, instructors[j].Name)
			case "created_at":
				return compareTimes(instructors[i].CreatedAt, instructors[j].CreatedAt)
			}
			return 0
		})
	})
	return instructors, nil
}

func (repo *instructorRepository) UpdateInstructor(_ context.Context, ins instructor.Instructor) (instructor.Instructor, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, orig := repo.find(ins.ID); orig != nil {
		if ins.Certifications == nil {
			ins.Certifications = []string{}
		}
		*orig = ins
		return ins, nil
	}
	return instructor.Instructor{}, instructor.ErrNotFound
}

func (repo *instructorRepository) DeleteInstructor(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	idx, _ := repo.find(id)
	if idx < 0 {
		return instructor.ErrNotFound
	}
	repo.db.instructors = append(repo.db.instructors[:idx], repo.db.instructors[idx+1:]...)
	return nil
}

func (repo *instructorRepository) find(id string) (int, *instructor.Instructor) {
	for i, ins := range repo.db.instructors {
		if ins.ID == id {
			return i, ins
		}
	}
	return -1, nil
}
