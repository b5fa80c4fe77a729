package dig_container

import (
	"fmt"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/dig"

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

type (
	DBLoggerParam struct {
		dig.In
		Logger core.Logger `name:"dbLogger"`
	}

	serverParams struct {
		dig.In
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
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDB(conf *core.Config, loggerParam DBLoggerParam) (*sqlx.DB, sqlx.ExtContext) {
	setUp := func() (*sqlx.DB, error) {
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

	db, err := setUp()
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	return db, db
}

func newEmailService(conf *core.Config, logger core.Logger) core.EmailService {
	if conf.Debug {
		return emailsvc.NewConsoleService(conf, logger)
	}
	return emailsvc.NewSendgridService(conf, logger)
}

func newObjectStore(conf *core.Config) (core.ObjectStore, error) {
	if conf.Storage.Driver == core.StorageOSS {
		return storagesvc.NewOSSStore(conf)
	}
	return storagesvc.NewLocalStore(conf), nil
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	profile.InitValidators(validate, translator)
	testimonial.InitValidators(validate, translator)
	enrollment.InitValidators(validate, translator)
	return validate
}

func newServer(p serverParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:           p.Conf,
		Logger:         p.Logger,
		ProfileSvc:     p.ProfileSvc,
		CourseSvc:      p.CourseSvc,
		InstructorSvc:  p.InstructorSvc,
		TestimonialSvc: p.TestimonialSvc,
		GallerySvc:     p.GallerySvc,
		EnrollmentSvc:  p.EnrollmentSvc,
		ContactSvc:     p.ContactSvc,
		NewsletterSvc:  p.NewsletterSvc,
		Validate:       p.Validate,
		Translator:     p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newDB))
	must(c.Provide(newEmailService))
	must(c.Provide(newObjectStore))

	// repositories
	must(c.Provide(sqlxrepos.NewProfileRepository, dig.As(new(profile.Repository))))
	must(c.Provide(sqlxrepos.NewCourseRepository, dig.As(new(course.Repository))))
	must(c.Provide(sqlxrepos.NewInstructorRepository, dig.As(new(instructor.Repository))))
	must(c.Provide(sqlxrepos.NewTestimonialRepository, dig.As(new(testimonial.Repository))))
	must(c.Provide(sqlxrepos.NewGalleryRepository, dig.As(new(gallery.Repository))))
	must(c.Provide(sqlxrepos.NewEnrollmentRepository, dig.As(new(enrollment.Repository))))
	must(c.Provide(sqlxrepos.NewContactRepository, dig.As(new(contact.Repository))))

	// services
	must(c.Provide(profile.NewService))
	must(c.Provide(course.NewService))
	must(c.Provide(instructor.NewService))
	must(c.Provide(testimonial.NewService))
	must(c.Provide(gallery.NewService))
	must(c.Provide(enrollment.NewService))
	must(c.Provide(contact.NewService))
	must(c.Provide(newsletter.NewService))

	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
