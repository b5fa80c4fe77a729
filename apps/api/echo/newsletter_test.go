package echoapi_test

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/testutil"
)

const (
	welcomeSubject    = "Welcome to Trinity Driving College Newsletter"
	subscriberSubject = "New Newsletter Subscriber"
)

func TestSubscribe(t *testing.T) {
	subscribed := []byte(`{"success":true,"message":"Subscribed successfully"}`)

	t.Run("subscribed", func(t *testing.T) {
		a := setup(t)
		req, rec := newRequest(http.MethodPost, "/api/subscribe", []byte(`{"email":" Reader@Example.com "}`))
		a.serve(req, rec)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: subscribed}, rec)

		sent := a.mail.Sent()
		if assert.Len(t, sent, 2) {
			assert.Equal(t, welcomeSubject, sent[0].Subject)
			assert.Equal(t, "reader@example.com", sent[0].To[0].Address)
			assert.Equal(t, subscriberSubject, sent[1].Subject)
			assert.Equal(t, testutil.AdminEmail, sent[1].To[0].Address)
		}
	})

	t.Run("email required", func(t *testing.T) {
		a := setup(t)
		req, rec := newRequest(http.MethodPost, "/api/subscribe", []byte(`{"email":""}`))
		a.serve(req, rec)
		checkCodeAndData(t, httpTest{wantCode: http.StatusBadRequest, wantData: []byte(`{"error":"Email is required"}`)}, rec)
		assert.Empty(t, a.mail.Attempts())
	})

	t.Run("invalid email", func(t *testing.T) {
		a := setup(t)
		req, rec := newRequest(http.MethodPost, "/api/subscribe", []byte(`{"email":"not-an-email"}`))
		a.serve(req, rec)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, a.mail.Attempts())
	})

	t.Run("welcome failure", func(t *testing.T) {
		a := setup(t)
		a.mail.FailOn(welcomeSubject, errors.New("provider down"))
		req, rec := newRequest(http.MethodPost, "/api/subscribe", []byte(`{"email":"reader@example.com"}`))
		a.serve(req, rec)
		checkCodeAndData(t, httpTest{wantCode: http.StatusInternalServerError, wantData: []byte(`{"error":"Failed to send email"}`)}, rec)
		assert.Len(t, a.mail.Attempts(), 1)
	})

	t.Run("admin notice failure", func(t *testing.T) {
		a := setup(t)
		a.mail.FailOn(subscriberSubject, errors.New("provider down"))
		req, rec := newRequest(http.MethodPost, "/api/subscribe", []byte(`{"email":"reader@example.com"}`))
		a.serve(req, rec)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: subscribed}, rec)
		assert.Len(t, a.mail.Attempts(), 2)
	})
}
