package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodquote/internal/contact"
)

type captureRecorder struct {
	mu          sync.Mutex
	submissions []contact.Submission
	err         error
	ctxErr      error
}

func (c *captureRecorder) Record(ctx context.Context, s contact.Submission) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submissions = append(c.submissions, s)
	c.ctxErr = ctx.Err()
	return c.err
}

func withCaptureRecorder(t *testing.T, err error) *captureRecorder {
	t.Helper()
	rec := &captureRecorder{err: err}
	Configure(nil, nil, rec)
	t.Cleanup(func() { Configure(nil, nil, nil) })
	return rec
}

const contactSuccess = `{"status":"success","msg":"Message received! Thank you."}`

func TestContactAcceptsJSON(t *testing.T) {
	rec := withCaptureRecorder(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"A","email":"a@b.com","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	Contact(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, contactSuccess, rr.Body.String())
	require.Len(t, rec.submissions, 1)
	got := rec.submissions[0]
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, "hi", got.Message)
}

func TestContactAcceptsFormEncoded(t *testing.T) {
	rec := withCaptureRecorder(t, nil)

	form := url.Values{}
	form.Set("name", "B")
	form.Set("email", "b@c.com")
	form.Set("message", "hello there")
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	Contact(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, rec.submissions, 1)
	assert.Equal(t, "hello there", rec.submissions[0].Message)
}

func TestContactAlwaysSucceeds(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		contentType string
		recordErr   error
	}{
		{"MalformedJSON", `{"name":`, "application/json", nil},
		{"EmptyBody", ``, "", nil},
		{"MissingFields", `{"name":"only"}`, "application/json", nil},
		{"RecorderFails", `{"name":"A","email":"a@b.com","message":"hi"}`, "application/json", errors.New("smtp down")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := withCaptureRecorder(t, tc.recordErr)

			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			rr := httptest.NewRecorder()
			Contact(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, contactSuccess, rr.Body.String())
			assert.Len(t, rec.submissions, 1, "every submission is handed to the recorder")
		})
	}
}

func TestContactRecordsDetachedFromClientCancellation(t *testing.T) {
	rec := withCaptureRecorder(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"A","email":"a@b.com","message":"hi"}`)).WithContext(ctx)
	rr := httptest.NewRecorder()
	Contact(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NoError(t, rec.ctxErr, "recorder context should not inherit client cancellation")
}
