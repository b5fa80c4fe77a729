package echoapi_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/testimonial"
)

func createTestimonial(t *testing.T, repo testimonial.Repository, name string, rating int, published bool, createdAt time.Time) testimonial.Testimonial {
	tt, err := repo.CreateTestimonial(context.Background(), testimonial.Testimonial{
		Name:        name,
		Content:     "Great instructors!",
		Rating:      rating,
		IsPublished: published,
		CreatedAt:   createdAt.UTC(),
	})
	if err != nil {
		t.Fatalf("createTestimonial() failed: %v", err)
	}
	return tt
}

func TestTestimonials(t *testing.T) {
	a := setup(t)
	_, token := a.createAdmin(t)
	now := time.Now()
	published := createTestimonial(t, a.testimonialRepo, "Grace Akinyi", 5, true, now)
	hidden := createTestimonial(t, a.testimonialRepo, "Peter Mwangi", 3, false, now.Add(time.Hour))

	ratingErr := []byte(`{"rating":"rating must be between 1 and 5"}`)
	tests := []httpTest{
		{
			name:     "public",
			path:     "/v1/testimonials",
			wantCode: http.StatusOK,
			wantData: marchallList(t, published),
		},
		{
			name:     "admin",
			path:     "/v1/admin/testimonials",
			token:    token,
			wantCode: http.StatusOK,
			wantData: marchallList(t, hidden, published),
		},
		{
			name:     "rating too low",
			method:   http.MethodPost,
			path:     "/v1/admin/testimonials",
			token:    token,
			body:     []byte(`{"name":"Ann","content":"Nice","rating":0}`),
			wantCode: http.StatusBadRequest,
			wantData: ratingErr,
		},
		{
			name:     "rating too high",
			method:   http.MethodPost,
			path:     "/v1/admin/testimonials",
			token:    token,
			body:     []byte(`{"name":"Ann","content":"Nice","rating":6}`),
			wantCode: http.StatusBadRequest,
			wantData: ratingErr,
		},
		{
			name:     "update rating too high",
			method:   http.MethodPatch,
			path:     "/v1/admin/testimonials/" + published.ID,
			token:    token,
			body:     []byte(`{"rating":6}`),
			wantCode: http.StatusBadRequest,
			wantData: ratingErr,
		},
		{
			name:     "create",
			method:   http.MethodPost,
			path:     "/v1/admin/testimonials",
			token:    token,
			body:     []byte(`{"name":"Ann","role":"Student","content":"Nice","rating":4,"is_published":true}`),
			wantCode: http.StatusCreated,
		},
	}
	runHTTPTests(t, a, tests)

	t.Run("publish and delete", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPatch, "/v1/admin/testimonials/"+hidden.ID, token, []byte(`{"is_published":true}`))
		a.serve(req, rec)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"is_published":true`)

		req, rec = newAuthRequest(http.MethodDelete, "/v1/admin/testimonials/"+published.ID, token)
		a.serve(req, rec)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		_, err := a.testimonialRepo.GetTestimonial(context.Background(), published.ID)
		assert.Equal(t, testimonial.ErrNotFound, err)
	})
}
