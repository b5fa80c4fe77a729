package echoapi_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/contact"
)

func TestContact(t *testing.T) {
	a := setup(t)
	_, token := a.createAdmin(t)
	_, studentToken := a.createStudent(t)

	req, rec := newRequest(http.MethodPost, "/v1/contact",
		[]byte(`{"name":"Kevin Ouma","email":"Kevin@Example.com","message":"Do you offer weekend classes?"}`))
	a.serve(req, rec)
	if !assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String()) {
		return
	}
	var m contact.Message
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	assert.Equal(t, "kevin@example.com", m.Email)

	tests := []httpTest{
		{
			name:     "invalid",
			method:   http.MethodPost,
			path:     "/v1/contact",
			body:     []byte(`{"name":"Kevin","email":"kevin@example.com","message":"  "}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"message":"this field is required"}`),
		},
		{
			name:     "list no token",
			path:     "/v1/admin/messages",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "list student",
			path:     "/v1/admin/messages",
			token:    studentToken,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "list",
			path:     "/v1/admin/messages",
			token:    token,
			wantCode: http.StatusOK,
			wantData: marchallList(t, m),
		},
	}
	runHTTPTests(t, a, tests)
}
