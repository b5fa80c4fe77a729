package emailsvc

import (
	"context"
	"sync"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

// MockService is an EmailService for tests. Messages are rendered and recorded
// synchronously; failures can be injected per subject.
type MockService struct {
	mu       sync.Mutex
	attempts []core.EmailMessage
	sent     []core.EmailMessage
	failAll  error
	failOn   map[string]error
}

var _ core.EmailService = (*MockService)(nil)

func NewMockService() *MockService {
	return &MockService{failOn: make(map[string]error)}
}

// FailAll makes every delivery fail with err; nil restores deliveries.
func (svc *MockService) FailAll(err error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.failAll = err
}

// FailOn makes the delivery of messages with this subject fail with err.
func (svc *MockService) FailOn(subject string, err error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.failOn[subject] = err
}

func (svc *MockService) Send(_ context.Context, msg *core.EmailMessage) error {
	if err := prepare(msg); err != nil {
		return err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.attempts = append(svc.attempts, *msg)
	if svc.failAll != nil {
		return svc.failAll
	}
	if err, ok := svc.failOn[msg.Subject]; ok {
		return err
	}
	svc.sent = append(svc.sent, *msg)
	return nil
}

func (svc *MockService) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		// run synchronously
		_ = svc.Send(context.Background(), msg)
	}
}

// Attempts returns every message a delivery was attempted for, failed ones included.
func (svc *MockService) Attempts() []core.EmailMessage {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return append([]core.EmailMessage(nil), svc.attempts...)
}

// Sent returns the successfully delivered messages.
func (svc *MockService) Sent() []core.EmailMessage {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return append([]core.EmailMessage(nil), svc.sent...)
}

func (svc *MockService) Reset() {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.attempts = nil
	svc.sent = nil
	svc.failAll = nil
	svc.failOn = make(map[string]error)
}
