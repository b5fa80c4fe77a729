package echoapi_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	echoapi "github.com/Ocheing/TRINITY-DRIVING-COLLEGE/apps/api/echo"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/enrollment"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/profile"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/testutil"
)

const approvedSubject = "Enrollment Approved – Trinity Driving College"

func approveBody(t *testing.T, id string) []byte {
	return marchallObj(t, echoapi.ApproveRequest{EnrollmentID: id})
}

func approveResponse(t *testing.T, outcome string) []byte {
	res := enrollment.ApprovalResult{Outcome: outcome}
	return marchallObj(t, echoapi.ApproveResponse{Message: res.Message(), Outcome: outcome})
}

func TestApproveEnrollment(t *testing.T) {
	a := setup(t)
	_, adminToken := a.createAdmin(t)
	_, studentToken := a.createStudent(t)
	ghostToken := getToken(t, profile.Profile{ID: uuid.NewString(), Email: "ghost@test.ke", Role: profile.RoleAdmin}, a.conf)

	pending := testutil.CreateEnrollment(t, a.enrollmentRepo, "Jane Wanjiru", "jane@test.ke", enrollment.StatusPending)
	approved := testutil.CreateEnrollment(t, a.enrollmentRepo, "John Otieno", "john@test.ke", enrollment.StatusApproved)

	tests := []httpTest{
		{
			name:     "no token",
			body:     approveBody(t, pending.ID),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "no token and no body",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "invalid token",
			body:     approveBody(t, pending.ID),
			token:    "abc.def.ghi",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "student",
			body:     approveBody(t, pending.ID),
			token:    studentToken,
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "Forbidden: Admin access required"}),
		},
		{
			name:     "unknown profile",
			body:     approveBody(t, pending.ID),
			token:    ghostToken,
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "Forbidden: Admin access required"}),
		},
		{
			name:     "missing id",
			body:     []byte(`{}`),
			token:    adminToken,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "Enrollment ID is required"}),
		},
		{
			name:     "unknown id",
			body:     approveBody(t, uuid.NewString()),
			token:    adminToken,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "Enrollment not found"}),
		},
		{
			name:     "already approved",
			body:     approveBody(t, approved.ID),
			token:    adminToken,
			wantCode: http.StatusOK,
			wantData: approveResponse(t, enrollment.OutcomeAlreadyApproved),
		},
		{
			name:     "pending",
			body:     approveBody(t, pending.ID),
			token:    adminToken,
			wantCode: http.StatusOK,
			wantData: approveResponse(t, enrollment.OutcomeApproved),
		},
	}
	for i := range tests {
		tests[i].method = http.MethodPost
		tests[i].path = "/api/enrollments/approve"
	}
	runHTTPTests(t, a, tests)

	// only the pending enrollment was written to and mailed
	assert.Equal(t, 1, a.db.ApproveWrites())
	if sent := a.mail.Sent(); assert.Len(t, sent, 1) {
		assert.Equal(t, approvedSubject, sent[0].Subject)
		assert.Equal(t, "jane@test.ke", sent[0].To[0].Address)
		assert.Contains(t, sent[0].TextContent, "Jane Wanjiru")
	}
}

func TestApproveEnrollmentIdempotent(t *testing.T) {
	a := setup(t)
	_, token := a.createAdmin(t)
	e := testutil.CreateEnrollment(t, a.enrollmentRepo, "Jane Wanjiru", "jane@test.ke", enrollment.StatusPending)

	want := []string{enrollment.OutcomeApproved, enrollment.OutcomeAlreadyApproved, enrollment.OutcomeAlreadyApproved}
	for _, outcome := range want {
		req, rec := newAuthRequest(http.MethodPost, "/api/enrollments/approve", token, approveBody(t, e.ID))
		a.serve(req, rec)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: approveResponse(t, outcome)}, rec)
	}
	assert.Equal(t, 1, a.db.ApproveWrites())
	assert.Len(t, a.mail.Attempts(), 1)
}

func TestApproveEnrollmentByParam(t *testing.T) {
	a := setup(t)
	_, token := a.createAdmin(t)
	e := testutil.CreateEnrollment(t, a.enrollmentRepo, "Jane Wanjiru", "jane@test.ke", enrollment.StatusPending)

	req, rec := newAuthRequest(http.MethodPost, "/v1/admin/enrollments/"+e.ID+"/approve", token)
	a.serve(req, rec)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: approveResponse(t, enrollment.OutcomeApproved)}, rec)

	req, rec = newAuthRequest(http.MethodGet, "/v1/admin/enrollments/"+e.ID, token)
	a.serve(req, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"approved"`)
}

func TestApproveEnrollmentEmailFailure(t *testing.T) {
	a := setup(t)
	_, token := a.createAdmin(t)
	e := testutil.CreateEnrollment(t, a.enrollmentRepo, "Jane Wanjiru", "jane@test.ke", enrollment.StatusPending)
	a.mail.FailOn(approvedSubject, errors.New("provider down"))

	req, rec := newAuthRequest(http.MethodPost, "/api/enrollments/approve", token, approveBody(t, e.ID))
	a.serve(req, rec)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: []byte(`{"message":"Enrollment approved, but failed to send email.","outcome":"approved_notification_failed"}`),
	}, rec)

	// the approval stands
	got, err := a.enrollmentRepo.GetEnrollment(req.Context(), e.ID)
	if err != nil {
		t.Fatalf("GetEnrollment() failed: %v", err)
	}
	assert.Equal(t, enrollment.StatusApproved, got.Status)
	assert.Len(t, a.mail.Attempts(), 1)
	assert.Empty(t, a.mail.Sent())
}

func TestApproveEnrollmentWriteFailure(t *testing.T) {
	a := setup(t)
	_, token := a.createAdmin(t)
	e := testutil.CreateEnrollment(t, a.enrollmentRepo, "Jane Wanjiru", "jane@test.ke", enrollment.StatusPending)
	a.db.FailApprove(errors.New("connection reset"))

	req, rec := newAuthRequest(http.MethodPost, "/api/enrollments/approve", token, approveBody(t, e.ID))
	a.serve(req, rec)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusInternalServerError,
		wantData: marchallObj(t, httpErr{Error: "Failed to update status"}),
	}, rec)
	assert.Empty(t, a.mail.Attempts())

	got, err := a.enrollmentRepo.GetEnrollment(req.Context(), e.ID)
	if err != nil {
		t.Fatalf("GetEnrollment() failed: %v", err)
	}
	assert.Equal(t, enrollment.StatusPending, got.Status)
}

func TestSubmitEnrollment(t *testing.T) {
	intake := map[string]string{
		"full_name": "Jane Wanjiru",
		"email":     "jane@example.com",
		"phone":     "0712345678",
		"category":  "B",
		"course_id": "B2",
	}

	t.Run("intake", func(t *testing.T) {
		a := setup(t)
		req, rec := newRequest(http.MethodPost, "/v1/enrollments", marchallObj(t, intake))
		a.serve(req, rec)
		if !assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String()) {
			return
		}

		var res echoapi.SubmitResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("Unmarshal() failed: %v", err)
		}
		assert.True(t, res.Success)
		assert.Equal(t, enrollment.StatusPending, res.Enrollment.Status)
		assert.Contains(t, res.Enrollment.CourseName, "Category B")
		assert.Contains(t, res.Enrollment.CourseName, "B2")

		stored, err := a.enrollmentRepo.GetEnrollment(req.Context(), res.Enrollment.ID)
		if err != nil {
			t.Fatalf("GetEnrollment() failed: %v", err)
		}
		assert.Equal(t, "Jane Wanjiru", stored.FullName)

		if attempts := a.mail.Attempts(); assert.Len(t, attempts, 1) {
			assert.Equal(t, "New Enrollment: Jane Wanjiru", attempts[0].Subject)
			assert.Equal(t, testutil.AdminEmail, attempts[0].To[0].Address)
		}
	})

	t.Run("notification failure", func(t *testing.T) {
		a := setup(t)
		a.mail.FailAll(errors.New("provider down"))
		req, rec := newRequest(http.MethodPost, "/v1/enrollments", marchallObj(t, intake))
		a.serve(req, rec)
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("class outside category", func(t *testing.T) {
		a := setup(t)
		data := map[string]string{}
		for k, v := range intake {
			data[k] = v
		}
		data["course_id"] = "D1"
		req, rec := newRequest(http.MethodPost, "/v1/enrollments", marchallObj(t, data))
		a.serve(req, rec)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"course_id":"this class is not part of the selected category"}`),
		}, rec)

		n, err := a.enrollmentRepo.CountEnrollments(req.Context(), &enrollment.QueryFilter{})
		assert.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, a.mail.Attempts())
	})

	t.Run("missing fields", func(t *testing.T) {
		a := setup(t)
		req, rec := newRequest(http.MethodPost, "/v1/enrollments", []byte(`{"full_name":"Jane Wanjiru"}`))
		a.serve(req, rec)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"this field is required"`)
	})
}

func TestSendEnrollmentNotice(t *testing.T) {
	notice := enrollment.Notice{FullName: "Jane Wanjiru", Email: "jane@example.com", Phone: "0712345678", Course: "B2"}

	t.Run("sent", func(t *testing.T) {
		a := setup(t)
		req, rec := newRequest(http.MethodPost, "/api/send-email", marchallObj(t, notice))
		a.serve(req, rec)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`{"success":true}`)}, rec)
		if sent := a.mail.Sent(); assert.Len(t, sent, 1) {
			assert.Equal(t, "New Enrollment: Jane Wanjiru", sent[0].Subject)
			assert.Equal(t, "jane@example.com", sent[0].ReplyTo.Address)
		}
	})

	t.Run("partial notice", func(t *testing.T) {
		a := setup(t)
		req, rec := newRequest(http.MethodPost, "/api/send-email", []byte(`{"fullName":"Jane","email":"jane@example.com"}`))
		a.serve(req, rec)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`{"success":true}`)}, rec)
		if sent := a.mail.Sent(); assert.Len(t, sent, 1) {
			assert.Equal(t, "New Enrollment: Jane", sent[0].Subject)
			assert.Contains(t, sent[0].TextContent, "Not specified")
		}
	})

	t.Run("empty notice", func(t *testing.T) {
		a := setup(t)
		req, rec := newRequest(http.MethodPost, "/api/send-email", []byte(`{}`))
		a.serve(req, rec)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`{"success":true}`)}, rec)
		if sent := a.mail.Sent(); assert.Len(t, sent, 1) {
			assert.Nil(t, sent[0].ReplyTo)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		a := setup(t)
		a.mail.FailAll(errors.New("provider down"))
		req, rec := newRequest(http.MethodPost, "/api/send-email", marchallObj(t, notice))
		a.serve(req, rec)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusInternalServerError,
			wantData: marchallObj(t, httpErr{Error: "Failed to send email"}),
		}, rec)
	})
}

func TestQueryEnrollments(t *testing.T) {
	a := setup(t)
	_, token := a.createAdmin(t)
	_, studentToken := a.createStudent(t)

	now := time.Now()
	older := testutil.CreateEnrollment(t, a.enrollmentRepo, "Amina Hassan", "amina@test.ke", enrollment.StatusPending, now.Add(-time.Hour))
	newer := testutil.CreateEnrollment(t, a.enrollmentRepo, "Brian Kamau", "brian@test.ke", enrollment.StatusPending, now)
	approved := testutil.CreateEnrollment(t, a.enrollmentRepo, "John Otieno", "john@test.ke", enrollment.StatusApproved, now.Add(-2*time.Hour))

	tests := []httpTest{
		{
			name:     "student",
			path:     "/v1/admin/enrollments",
			token:    studentToken,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "all newest first",
			path:     "/v1/admin/enrollments",
			token:    token,
			wantCode: http.StatusOK,
			wantData: marchallList(t, newer, older, approved),
		},
		{
			name:     "pending",
			path:     "/v1/admin/enrollments?status=pending",
			token:    token,
			wantCode: http.StatusOK,
			wantData: marchallList(t, newer, older),
		},
		{
			name:     "ordered by name",
			path:     "/v1/admin/enrollments?ordering=full_name",
			token:    token,
			wantCode: http.StatusOK,
			wantData: marchallList(t, older, newer, approved),
		},
		{
			name:     "unknown status",
			path:     "/v1/admin/enrollments?status=done",
			token:    token,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown enrollment",
			path:     "/v1/admin/enrollments/" + uuid.NewString(),
			token:    token,
			wantCode: http.StatusNotFound,
		},
	}
	runHTTPTests(t, a, tests)
}
