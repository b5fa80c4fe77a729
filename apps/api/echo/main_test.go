package echoapi_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

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
	storagesvc "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/services/storage"
	inmemdb "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/storage/database/inmem"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/testutil"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type app struct {
	server *echoapi.Server
	conf   *core.Config
	db     *inmemdb.DB
	mail   *emailsvc.MockService
	store  *storagesvc.MockStore

	profileRepo     profile.Repository
	courseRepo      course.Repository
	instructorRepo  instructor.Repository
	testimonialRepo testimonial.Repository
	galleryRepo     gallery.Repository
	enrollmentRepo  enrollment.Repository
	contactRepo     contact.Repository
}

func setup(t *testing.T) *app {
	t.Helper()

	conf := testutil.NewConfig()
	logger := testutil.NewLogger()
	validate, translator := testutil.NewValidator()
	core.ParseEmailTemplates(conf, logger)

	a := &app{
		conf:  conf,
		db:    inmemdb.Open(),
		mail:  emailsvc.NewMockService(),
		store: storagesvc.NewMockStore(),
	}
	a.profileRepo = inmemdb.NewProfileRepository(a.db)
	a.courseRepo = inmemdb.NewCourseRepository(a.db)
	a.instructorRepo = inmemdb.NewInstructorRepository(a.db)
	a.testimonialRepo = inmemdb.NewTestimonialRepository(a.db)
	a.galleryRepo = inmemdb.NewGalleryRepository(a.db)
	a.enrollmentRepo = inmemdb.NewEnrollmentRepository(a.db)
	a.contactRepo = inmemdb.NewContactRepository(a.db)

	a.server = echoapi.NewServer(echoapi.ServerDeps{
		Conf:           conf,
		Logger:         logger,
		ProfileSvc:     profile.NewService(a.profileRepo),
		CourseSvc:      course.NewService(a.courseRepo),
		InstructorSvc:  instructor.NewService(a.instructorRepo, a.store, logger),
		TestimonialSvc: testimonial.NewService(a.testimonialRepo),
		GallerySvc:     gallery.NewService(a.galleryRepo, a.store, logger),
		EnrollmentSvc:  enrollment.NewService(a.enrollmentRepo, a.mail, conf, logger),
		ContactSvc:     contact.NewService(a.contactRepo),
		NewsletterSvc:  newsletter.NewService(a.mail, conf, logger),
		Validate:       validate,
		Translator:     translator,
	})
	return a
}

func (a *app) serve(req *http.Request, rec *httptest.ResponseRecorder) {
	a.server.ServeHTTP(rec, req)
}

func (a *app) createAdmin(t *testing.T) (profile.Profile, string) {
	p := testutil.CreateProfile(t, a.profileRepo, "admin@test.ke", profile.RoleAdmin, "")
	return p, getToken(t, p, a.conf)
}

func (a *app) createStudent(t *testing.T) (profile.Profile, string) {
	p := testutil.CreateProfile(t, a.profileRepo, "student@test.ke", profile.RoleStudent, "")
	return p, getToken(t, p, a.conf)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// newMultipartRequest builds a multipart form; file is skipped when content is nil.
func newMultipartRequest(
	t *testing.T,
	method, path, token string,
	fields map[string]string,
	fileField, filename string,
	content []byte,
) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField() failed: %v", err)
		}
	}
	if content != nil {
		fw, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("CreateFormFile() failed: %v", err)
		}
		if _, err = fw.Write(content); err != nil {
			t.Fatalf("Write() failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, httptest.NewRecorder()
}

func getToken(t *testing.T, p profile.Profile, conf *core.Config) string {
	token, err := echoapi.GenerateToken(p, conf)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, tt.wantCode, rec.Code, "code; body %s", rec.Body.String())
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, a *app, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			a.serve(req, rec)
			checkCodeAndData(t, tt, rec)
		})
	}
}
