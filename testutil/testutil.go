package testutil

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/enrollment"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/profile"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/testimonial"
	logsvc "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/services/logger"
)

const AdminEmail = "admin@trinity.test"

// NewConfig returns a Config suited to tests: no request logs, no recovery, JSON errors.
func NewConfig() *core.Config {
	conf := &core.Config{
		AppName:         "Trinity Driving College",
		Build:           "test",
		Env:             "TEST",
		Debug:           false,
		TestMode:        true,
		SecretKey:       "test-secret",
		FrontendBaseURL: "http://localhost:3000",
		AdminEmail:      AdminEmail,
		Server: core.ServerConfig{
			Address:            ":0",
			AllowedOrigins:     []string{"*"},
			JWTExpirationDelta: time.Hour,
			MaxUploadSize:      1 << 20,
		},
		Storage: core.StorageConfig{Driver: "mock"},
	}
	conf.SetDefaultFromEmail("Trinity Driving College <noreply@trinity.test>")
	return conf
}

// NewLogger returns a disabled rollbar logger writing nowhere.
func NewLogger() core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), NewConfig())
	logger.Enable(false)
	return logger
}

// NewValidator returns a validator with every custom validation registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	profile.InitValidators(validate, translator)
	testimonial.InitValidators(validate, translator)
	enrollment.InitValidators(validate, translator)
	return validate, translator
}

func CreateProfile(t *testing.T, repo profile.Repository, email, role, pwd string) profile.Profile {
	now := time.Now().UTC()
	p := profile.Profile{Email: email, Role: role, CreatedAt: now, UpdatedAt: now}
	if pwd != "" {
		if err := p.SetPassword(pwd); err != nil {
			t.Fatalf("CreateProfile() failed: %v", err)
		}
	}
	p, err := repo.CreateProfile(context.Background(), p)
	if err != nil {
		t.Fatalf("CreateProfile() failed: %v", err)
	}
	return p
}

func CreateEnrollment(t *testing.T, repo enrollment.Repository, fullName, email, status string, createdAt ...time.Time) enrollment.Enrollment {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	e, err := repo.CreateEnrollment(context.Background(), enrollment.Enrollment{
		FullName:   fullName,
		Email:      email,
		Phone:      "0712345678",
		CourseName: enrollment.CourseName("B", "B2"),
		Status:     status,
		CreatedAt:  tstamp,
	})
	if err != nil {
		t.Fatalf("CreateEnrollment() failed: %v", err)
	}
	return e
}
