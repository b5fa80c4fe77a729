package newsletter_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/newsletter"
	emailsvc "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/services/email"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/testutil"
)

func TestSubscription_Validate(t *testing.T) {
	validate, _ := testutil.NewValidator()

	tests := []struct {
		email     string
		want      string
		wantErr   bool
		wantCause error
	}{
		{email: " Kevin@Test.KE ", want: "kevin@test.ke"},
		{email: "   ", wantErr: true, wantCause: newsletter.ErrEmailRequired},
		{email: "kevin", wantErr: true},
	}
	for _, tt := range tests {
		sub := newsletter.Subscription{Email: tt.email}
		err := sub.Validate(validate)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v; wantErr %v", tt.email, err, tt.wantErr)
			continue
		}
		if tt.wantCause != nil {
			vErr, ok := err.(*core.ValidationError)
			if !ok || vErr.Err != tt.wantCause {
				t.Errorf("Validate(%q) error = %v; want %v", tt.email, err, tt.wantCause)
			}
		}
		if !tt.wantErr && sub.Email != tt.want {
			t.Errorf("Validate(%q) email = %q; want %q", tt.email, sub.Email, tt.want)
		}
	}
}

func TestService_Subscribe(t *testing.T) {
	conf := testutil.NewConfig()
	core.ParseEmailTemplates(conf, nil)
	sub := newsletter.Subscription{Email: "kevin@test.ke"}

	tests := []struct {
		name         string
		failOn       string
		wantErr      bool
		wantAttempts int
		wantSent     int
	}{
		{name: "delivered", wantAttempts: 2, wantSent: 2},
		{name: "welcome failure", failOn: "Welcome to Trinity Driving College Newsletter", wantErr: true, wantAttempts: 1},
		{name: "admin notice failure", failOn: "New Newsletter Subscriber", wantAttempts: 2, wantSent: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mail := emailsvc.NewMockService()
			if tt.failOn != "" {
				mail.FailOn(tt.failOn, errors.New("provider down"))
			}
			svc := newsletter.NewService(mail, conf, testutil.NewLogger())

			err := svc.Subscribe(context.Background(), sub)
			assert.Equal(t, tt.wantErr, err != nil, "error = %v", err)
			assert.Len(t, mail.Attempts(), tt.wantAttempts)
			sent := mail.Sent()
			assert.Len(t, sent, tt.wantSent)
			if len(sent) > 0 {
				assert.Equal(t, "kevin@test.ke", sent[0].To[0].Address)
			}
		})
	}
}
