package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/enrollment"
)

type enrollmentRepository struct {
	db *DB
}

func NewEnrollmentRepository(db *DB) enrollment.Repository {
	return &enrollmentRepository{db: db}
}

func (repo *enrollmentRepository) CreateEnrollment(_ context.Context, e enrollment.Enrollment) (enrollment.Enrollment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	e.ID = uuid.New().String()
	repo.db.enrollments = append(repo.db.enrollments, &e)
	return e, nil
}

func (repo *enrollmentRepository) GetEnrollment(_ context.Context, id string) (enrollment.Enrollment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if e := repo.find(id); e != nil {
		return *e, nil
	}
	return enrollment.Enrollment{}, enrollment.ErrNotFound
}

func (repo *enrollmentRepository) QueryEnrollments(_ context.Context, filter *enrollment.QueryFilter, ordering []core.DBOrdering) ([]enrollment.Enrollment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	es := make([]enrollment.Enrollment, 0, len(repo.db.enrollments))
	for _, e := range repo.db.enrollments {
		if filter != nil && filter.Status != "" && e.Status != filter.Status {
			continue
		}
		es = append(es, *e)
	}
	sort.SliceStable(es, func(i, j int) bool {
		return orderedLess(ordering, func(field string) int {
			switch field {
			case "full_name":
				return compareStrings(es[i].FullName, es[j].FullName)
			case "status":
				return compareStrings(es[i].Status, es[j].Status)
			case "created_at":
				return compareTimes(es[i].CreatedAt, es[j].CreatedAt)
			}
			return 0
		})
	})
	return es, nil
}

func (repo *enrollmentRepository) ApproveEnrollment(_ context.Context, id string) (enrollment.Enrollment, bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if repo.db.approveErr != nil {
		return enrollment.Enrollment{}, false, repo.db.approveErr
	}
	e := repo.find(id)
	if e == nil {
		return enrollment.Enrollment{}, false, enrollment.ErrNotFound
	}
	if e.Status != enrollment.StatusPending {
		return enrollment.Enrollment{}, false, nil
	}
	e.Status = enrollment.StatusApproved
	repo.db.approveWrites++
	return *e, true, nil
}

func (repo *enrollmentRepository) CountEnrollments(_ context.Context, filter *enrollment.QueryFilter) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if filter == nil || filter.Status == "" {
		return len(repo.db.enrollments), nil
	}
	var n int
	for _, e := range repo.db.enrollments {
		if e.Status == filter.Status {
			n++
		}
	}
	return n, nil
}

func (repo *enrollmentRepository) find(id string) *enrollment.Enrollment {
	for _, e := range repo.db.enrollments {
		if e.ID == id {
			return e
		}
	}
	return nil
}
