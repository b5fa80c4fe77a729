package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/contact"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/course"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/enrollment"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/gallery"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/instructor"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/newsletter"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/profile"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/testimonial"
)

type (
	ServerDeps struct {
		Conf           *core.Config
		Logger         core.Logger
		ProfileSvc     *profile.Service
		CourseSvc      *course.Service
		InstructorSvc  *instructor.Service
		TestimonialSvc *testimonial.Service
		GallerySvc     *gallery.Service
		EnrollmentSvc  *enrollment.Service
		ContactSvc     *contact.Service
		NewsletterSvc  *newsletter.Service
		Validate       *validator.Validate
		Translator     ut.Translator
	}

	Server struct {
		ServerDeps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		ServerDeps: deps,
		app:        echo.New(),
		errors:     make(chan error, 1),
		shutdown:   make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.Conf

	s.app.HideBanner = true
	s.app.Server.ReadTimeout = conf.Server.ReadTimeout
	s.app.Server.WriteTimeout = conf.Server.WriteTimeout

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: conf.Server.AllowedOrigins}))

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.Logger, s.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	if conf.Storage.Driver == core.StorageLocal {
		s.app.Static("/uploads", conf.Storage.UploadDir)
	}

	s.app.GET("/", home)

	jwt := middleware.JWTWithConfig(newJWTConfig(conf))
	admin := adminMiddleware(s.ProfileSvc)

	v1 := s.app.Group("/v1")
	legacy := s.app.Group("/api") // endpoints called by the public site forms
	registerAuthAPI(v1, jwt, s.ServerDeps)
	registerCourseAPI(v1, jwt, admin, s.CourseSvc, s.Validate)
	registerInstructorAPI(v1, jwt, admin, s.InstructorSvc, s.Validate, conf)
	registerTestimonialAPI(v1, jwt, admin, s.TestimonialSvc, s.Validate)
	registerGalleryAPI(v1, jwt, admin, s.GallerySvc, s.Validate, conf)
	registerContactAPI(v1, jwt, admin, s.ContactSvc, s.Validate)
	registerEnrollmentAPI(v1, legacy, jwt, admin, s.EnrollmentSvc, s.Logger, s.Validate)
	registerNewsletterAPI(legacy, s.NewsletterSvc, s.Logger, s.Validate)
	registerDashboardAPI(v1, jwt, admin, s.ServerDeps)
}

func (s *Server) Start() {
	if err := s.app.Start(s.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

// Errors receives the error that made the server stop listening.
func (s *Server) Errors() <-chan error {
	return s.errors
}

// ShutdownSignal receives interrupts, and the signal sent by a handler that hit a core.shutdown error.
func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already shutting down
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Trinity Driving College API!")
}
