package echoapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/course"
)

func createCourse(t *testing.T, repo course.Repository, title string, price float64, published bool, createdAt time.Time) course.Course {
	c, err := repo.CreateCourse(context.Background(), course.Course{
		Title:       title,
		Price:       price,
		Duration:    "4 weeks",
		IsPublished: published,
		CreatedAt:   createdAt.UTC(),
		UpdatedAt:   createdAt.UTC(),
	})
	if err != nil {
		t.Fatalf("createCourse() failed: %v", err)
	}
	return c
}

func TestPublicCourses(t *testing.T) {
	a := setup(t)
	now := time.Now()
	manual := createCourse(t, a.courseRepo, "Manual Class B", 18000, true, now.Add(-time.Hour))
	auto := createCourse(t, a.courseRepo, "Automatic Class B", 15000, true, now)
	draft := createCourse(t, a.courseRepo, "Truck Class C", 30000, false, now.Add(time.Hour))

	tests := []httpTest{
		{
			name:     "published newest first",
			path:     "/v1/courses",
			wantCode: http.StatusOK,
			wantData: marchallList(t, auto, manual),
		},
		{
			name:     "pricing cheapest first",
			path:     "/v1/pricing",
			wantCode: http.StatusOK,
			wantData: marchallList(t, auto, manual),
		},
		{
			name:     "published course",
			path:     "/v1/courses/" + manual.ID,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, manual),
		},
		{
			name:     "draft course",
			path:     "/v1/courses/" + draft.ID,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "course not found"}),
		},
	}
	runHTTPTests(t, a, tests)
}

func TestAdminCourses(t *testing.T) {
	a := setup(t)
	_, token := a.createAdmin(t)
	_, studentToken := a.createStudent(t)
	existing := createCourse(t, a.courseRepo, "Manual Class B", 18000, false, time.Now())

	tests := []httpTest{
		{
			name:     "no token",
			path:     "/v1/admin/courses",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "student",
			path:     "/v1/admin/courses",
			token:    studentToken,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "list includes drafts",
			path:     "/v1/admin/courses",
			token:    token,
			wantCode: http.StatusOK,
			wantData: marchallList(t, existing),
		},
		{
			name:     "create missing fields",
			method:   http.MethodPost,
			path:     "/v1/admin/courses",
			token:    token,
			body:     []byte(`{"title":"  "}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"title":"this field is required","price":"this field is required","duration":"this field is required"}`),
		},
		{
			name:     "create negative price",
			method:   http.MethodPost,
			path:     "/v1/admin/courses",
			token:    token,
			body:     []byte(`{"title":"Class A","price":-1,"duration":"2 weeks"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "update blank title",
			method:   http.MethodPatch,
			path:     "/v1/admin/courses/" + existing.ID,
			token:    token,
			body:     []byte(`{"title":" "}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"title":"this field cannot be blank"}`),
		},
		{
			name:     "update unknown",
			method:   http.MethodPatch,
			path:     "/v1/admin/courses/" + uuid.NewString(),
			token:    token,
			body:     []byte(`{"is_published":true}`),
			wantCode: http.StatusNotFound,
		},
	}
	runHTTPTests(t, a, tests)

	t.Run("create with required fields only", func(t *testing.T) {
		body := []byte(`{"title":"Light Vehicle B1","price":15000.5,"duration":"6 weeks"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/admin/courses", token, body)
		a.serve(req, rec)
		if !assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String()) {
			return
		}
		var created course.Course
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("Unmarshal() failed: %v", err)
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/admin/courses/"+created.ID, token)
		a.serve(req, rec)
		if !assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String()) {
			return
		}
		var got course.Course
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("Unmarshal() failed: %v", err)
		}
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Light Vehicle B1", got.Title)
		assert.Equal(t, 15000.5, got.Price)
		assert.Equal(t, "6 weeks", got.Duration)
		assert.False(t, got.IsPublished)

		req, rec = newRequest(http.MethodGet, "/v1/courses/"+created.ID)
		a.serve(req, rec)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("markup stripped", func(t *testing.T) {
		body := []byte(`{"title":"<b>Truck</b> C1","description":"<script>alert(1)</script>Heavy loads","price":30000,"duration":"<i>8 weeks</i>"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/admin/courses", token, body)
		a.serve(req, rec)
		if !assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String()) {
			return
		}
		var c course.Course
		if err := json.Unmarshal(rec.Body.Bytes(), &c); err != nil {
			t.Fatalf("Unmarshal() failed: %v", err)
		}
		assert.Equal(t, "Truck C1", c.Title)
		assert.Equal(t, "Heavy loads", c.Description)
		assert.Equal(t, "8 weeks", c.Duration)
	})

	t.Run("create update delete", func(t *testing.T) {
		body := []byte(`{"title":"Motorcycle A2","description":"Learn to ride","price":9000,"duration":"2 weeks","is_published":true}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/admin/courses", token, body)
		a.serve(req, rec)
		if !assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String()) {
			return
		}
		var c course.Course
		if err := json.Unmarshal(rec.Body.Bytes(), &c); err != nil {
			t.Fatalf("Unmarshal() failed: %v", err)
		}
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, 9000.0, c.Price)
		assert.True(t, c.IsPublished)

		req, rec = newAuthRequest(http.MethodPatch, "/v1/admin/courses/"+c.ID, token, []byte(`{"price":9500,"is_published":false}`))
		a.serve(req, rec)
		if !assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String()) {
			return
		}
		var updated course.Course
		if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
			t.Fatalf("Unmarshal() failed: %v", err)
		}
		assert.Equal(t, 9500.0, updated.Price)
		assert.False(t, updated.IsPublished)
		assert.Equal(t, "Motorcycle A2", updated.Title)

		req, rec = newAuthRequest(http.MethodDelete, "/v1/admin/courses/"+c.ID, token)
		a.serve(req, rec)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		req, rec = newAuthRequest(http.MethodGet, "/v1/admin/courses/"+c.ID, token)
		a.serve(req, rec)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
