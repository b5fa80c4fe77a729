package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	echoapi "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/apps/api/echo"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/contact"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/course"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/enrollment"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/gallery"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/instructor"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/newsletter"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/profile"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/testimonial"
	emailsvc "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/services/email"
	logsvc "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/services/logger"
	storagesvc "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/services/storage"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/storage/database"
	sqlxrepos "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/storage/database/sqlx"
)

func startManual() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	// set up DB
	db, err := setUpDB(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			dbLogger.Fatal("Failed to close", err)
		}
	}()

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	var store core.ObjectStore
	switch conf.Storage.Driver {
	case core.StorageOSS:
		if store, err = storagesvc.NewOSSStore(conf); err != nil {
			logger.Fatal(fmt.Sprintf("setting up object storage: %v", err), err)
		}
	default:
		store = storagesvc.NewLocalStore(conf)
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	profile.InitValidators(validate, translator)
	testimonial.InitValidators(validate, translator)
	enrollment.InitValidators(validate, translator)

	core.ParseEmailTemplates(conf, logger)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err = http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:           conf,
			Logger:         logger,
			ProfileSvc:     profile.NewService(sqlxrepos.NewProfileRepository(db)),
			CourseSvc:      course.NewService(sqlxrepos.NewCourseRepository(db)),
			InstructorSvc:  instructor.NewService(sqlxrepos.NewInstructorRepository(db), store, logger),
			TestimonialSvc: testimonial.NewService(sqlxrepos.NewTestimonialRepository(db)),
			GallerySvc:     gallery.NewService(sqlxrepos.NewGalleryRepository(db), store, logger),
			EnrollmentSvc:  enrollment.NewService(sqlxrepos.NewEnrollmentRepository(db), mailSvc, conf, logger),
			ContactSvc:     contact.NewService(sqlxrepos.NewContactRepository(db)),
			NewsletterSvc:  newsletter.NewService(mailSvc, conf, logger),
			Validate:       validate,
			Translator:     translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db.DB); err != nil {
		return nil, err
	}
	return db, nil
}
