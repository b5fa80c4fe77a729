package enrollment

import (
	"context"
	"errors"
	"net/mail"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var (
	// errors
	ErrNotFound     = core.NotFoundError("Enrollment not found")
	ErrIDRequired   = errors.New("Enrollment ID is required")
	ErrStatusUpdate = errors.New("Failed to update status")
)

const (
	approvedSubject  = "Enrollment Approved – Trinity Driving College"
	noticeSubject    = "New Enrollment: "
	noticeNoCourse   = "Not specified"
	approvedTemplate = "enrollment_approved"
	receivedTemplate = "enrollment_received"
)

type (
	Repository interface {
		CreateEnrollment(ctx context.Context, e Enrollment) (Enrollment, error)
		GetEnrollment(ctx context.Context, id string) (Enrollment, error)
		QueryEnrollments(ctx context.Context, filter *QueryFilter, ordering []core.DBOrdering) ([]Enrollment, error)
		// ApproveEnrollment sets the status of a pending Enrollment to approved.
		// It reports false, without error, when the Enrollment was not pending anymore.
		ApproveEnrollment(ctx context.Context, id string) (Enrollment, bool, error)
		CountEnrollments(ctx context.Context, filter *QueryFilter) (int, error)
	}

	Service struct {
		repo      Repository
		mailSvc   core.EmailService
		adminAddr mail.Address
		logger    core.Logger
	}

	approvedMailData struct {
		FullName   string
		CourseName string
	}

	receivedMailData struct {
		FullName string
		Email    string
		Phone    string
		Course   string
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config, logger core.Logger) *Service {
	return &Service{
		repo:      repo,
		mailSvc:   mailSvc,
		adminAddr: conf.AdminAddress(),
		logger:    logger,
	}
}

// Submit records a pending Enrollment, then notifies the administration in the background.
// The notification outcome never affects the result.
func (svc *Service) Submit(ctx context.Context, ne NewEnrollment) (Enrollment, error) {
	e, err := svc.repo.CreateEnrollment(ctx, Enrollment{
		FullName:   ne.FullName,
		Email:      ne.Email,
		Phone:      ne.Phone,
		CourseName: CourseName(ne.Category, ne.ClassID),
		Status:     StatusPending,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return Enrollment{}, pkgerrors.Wrap(err, "creating enrollment")
	}

	svc.mailSvc.SendMessages(svc.noticeMessage(Notice{
		FullName: e.FullName,
		Email:    e.Email,
		Phone:    e.Phone,
		Course:   e.CourseName,
	}))
	return e, nil
}

// NotifyAdmin sends the new enrollment notification and reports delivery failures.
func (svc *Service) NotifyAdmin(ctx context.Context, n Notice) error {
	return pkgerrors.Wrap(svc.mailSvc.Send(ctx, svc.noticeMessage(n)), "sending enrollment notice")
}

func (svc *Service) noticeMessage(n Notice) *core.EmailMessage {
	if n.Course == "" {
		n.Course = noticeNoCourse
	}
	msg := &core.EmailMessage{
		To:           []mail.Address{svc.adminAddr},
		Subject:      noticeSubject + n.FullName,
		TemplateName: receivedTemplate,
		TemplateData: receivedMailData(n),
	}
	if _, err := mail.ParseAddress(n.Email); err == nil {
		msg.ReplyTo = &mail.Address{Name: n.FullName, Address: n.Email}
	}
	return msg
}

// Approve moves a pending Enrollment to approved and notifies the applicant.
// Approving an approved Enrollment is a no-op. A notification failure does not undo the approval.
func (svc *Service) Approve(ctx context.Context, id string) (ApprovalResult, error) {
	id = core.CleanString(id)
	if id == "" {
		return ApprovalResult{}, core.NewValidationError(ErrIDRequired)
	}

	e, err := svc.repo.GetEnrollment(ctx, id)
	if err != nil {
		return ApprovalResult{}, err
	}
	if e.IsApproved() {
		return ApprovalResult{Enrollment: e, Outcome: OutcomeAlreadyApproved}, nil
	}

	updated, ok, err := svc.repo.ApproveEnrollment(ctx, id)
	if err != nil {
		svc.logger.Error("updating enrollment status", err, map[string]interface{}{"enrollment": id})
		return ApprovalResult{}, ErrStatusUpdate
	}
	if !ok { // approved concurrently
		if e, err = svc.repo.GetEnrollment(ctx, id); err != nil {
			return ApprovalResult{}, err
		}
		return ApprovalResult{Enrollment: e, Outcome: OutcomeAlreadyApproved}, nil
	}

	msg := &core.EmailMessage{
		To:           []mail.Address{{Name: updated.FullName, Address: updated.Email}},
		Subject:      approvedSubject,
		TemplateName: approvedTemplate,
		TemplateData: approvedMailData{FullName: updated.FullName, CourseName: updated.CourseName},
	}
	if err = svc.mailSvc.Send(ctx, msg); err != nil {
		svc.logger.Warn("sending approval email", err, map[string]interface{}{"enrollment": id})
		return ApprovalResult{Enrollment: updated, Outcome: OutcomeApprovedNotificationFailed, NotificationErr: err}, nil
	}
	return ApprovalResult{Enrollment: updated, Outcome: OutcomeApproved}, nil
}

func (svc *Service) Get(ctx context.Context, id string) (Enrollment, error) {
	return svc.repo.GetEnrollment(ctx, id)
}

// Query lists enrollments, newest first unless ordering says otherwise.
func (svc *Service) Query(ctx context.Context, filter *QueryFilter, ordering []core.DBOrdering) ([]Enrollment, error) {
	ordering = core.FilterOrderings(ordering, OrderingFields, defaultOrdering)
	return svc.repo.QueryEnrollments(ctx, filter, ordering)
}

func (svc *Service) Count(ctx context.Context, filter *QueryFilter) (int, error) {
	return svc.repo.CountEnrollments(ctx, filter)
}
