package contact

import (
	"context"
	"time"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

type (
	Repository interface {
		CreateMessage(ctx context.Context, m Message) (Message, error)
		QueryMessages(ctx context.Context, ordering []core.DBOrdering) ([]Message, error)
		CountMessages(ctx context.Context) (int, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nm NewMessage) (Message, error) {
	return svc.repo.CreateMessage(ctx, Message{
		Name:      nm.Name,
		Email:     nm.Email,
		Message:   nm.Message,
		CreatedAt: time.Now().UTC(),
	})
}

// Query lists the messages, newest first.
func (svc *Service) Query(ctx context.Context) ([]Message, error) {
	return svc.repo.QueryMessages(ctx, []core.DBOrdering{defaultOrdering})
}

func (svc *Service) Count(ctx context.Context) (int, error) {
	return svc.repo.CountMessages(ctx)
}
