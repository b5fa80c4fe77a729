package newsletter

import (
	"context"
	"net/mail"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var ErrEmailRequired = errors.New("Email is required")

const (
	welcomeSubject    = "Welcome to Trinity Driving College Newsletter"
	subscriberSubject = "New Newsletter Subscriber"
)

// Subscription is the payload of the newsletter form. Subscriptions are not persisted.
type Subscription struct {
	Email string `json:"email" validate:"omitempty,email"`
}

func (s *Subscription) Validate(validate *validator.Validate) error {
	s.Email = core.CleanString(s.Email, true /* lower */)
	if s.Email == "" {
		return core.NewValidationError(ErrEmailRequired)
	}
	return validate.Struct(s)
}

type (
	Service struct {
		mailSvc   core.EmailService
		adminAddr mail.Address
		logger    core.Logger
	}

	subscriberMailData struct {
		Email string
	}
)

func NewService(mailSvc core.EmailService, conf *core.Config, logger core.Logger) *Service {
	return &Service{
		mailSvc:   mailSvc,
		adminAddr: conf.AdminAddress(),
		logger:    logger,
	}
}

// Subscribe welcomes the subscriber, then tells the administration.
// Only a failure of the welcome email is reported; the administrative one is logged.
func (svc *Service) Subscribe(ctx context.Context, sub Subscription) error {
	welcome := &core.EmailMessage{
		To:           []mail.Address{{Address: sub.Email}},
		Subject:      welcomeSubject,
		TemplateName: "newsletter_welcome",
	}
	if err := svc.mailSvc.Send(ctx, welcome); err != nil {
		return errors.Wrap(err, "sending welcome email")
	}

	notice := &core.EmailMessage{
		To:           []mail.Address{svc.adminAddr},
		ReplyTo:      &mail.Address{Address: sub.Email},
		Subject:      subscriberSubject,
		TemplateName: "newsletter_subscriber",
		TemplateData: subscriberMailData{Email: sub.Email},
	}
	if err := svc.mailSvc.Send(ctx, notice); err != nil {
		svc.logger.Warn("sending subscriber notice", err, map[string]interface{}{"subscriber": sub.Email})
	}
	return nil
}
