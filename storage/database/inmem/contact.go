package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/contact"
)

type contactRepository struct {
	db *DB
}

func NewContactRepository(db *DB) contact.Repository {
	return &contactRepository{db: db}
}

func (repo *contactRepository) CreateMessage(_ context.Context, m contact.Message) (contact.Message, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	m.ID = uuid.New().String()
	repo.db.messages = append(repo.db.messages, &m)
	return m, nil
}

func (repo *contactRepository) QueryMessages(_ context.Context, ordering []core.DBOrdering) ([]contact.Message, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	msgs := make([]contact.Message, 0, len(repo.db.messages))
	for _, m := range repo.db.messages {
		msgs = append(msgs, *m)
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return orderedLess(ordering, func(field string) int {
			if field == "created_at" {
				return compareTimes(msgs[i].CreatedAt, msgs[j].CreatedAt)
			}
			return 0
		})
	})
	return msgs, nil
}

func (repo *contactRepository) CountMessages(_ context.Context) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return len(repo.db.messages), nil
}
