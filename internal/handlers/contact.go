package handlers

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"time"

	"moodquote/internal/contact"
	applog "moodquote/internal/log"
)

const (
	contactThanks      = "Message received! Thank you."
	maxContactBody     = 64 << 10
	contactRecordLimit = 5 * time.Second
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type contactResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

// Contact serves POST /api/contact. Every submission is acknowledged with
// 200, including malformed ones and ones whose recording fails.
func Contact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	req, err := decodeContact(r)
	if err != nil {
		applog.Debug(r.Context(), "unreadable contact submission", "error", err)
	}

	submission := contact.NewSubmission(req.Name, req.Email, req.Message)
	if missing := submission.Missing(); len(missing) > 0 {
		applog.Debug(r.Context(), "contact submission missing fields", "id", submission.ID.String(), "missing", missing)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), contactRecordLimit)
	defer cancel()
	if err := recorder.Record(ctx, submission); err != nil {
		applog.Error(r.Context(), "failed to record contact submission", "id", submission.ID.String(), "error", err)
	}

	writeJSON(w, r, http.StatusOK, contactResponse{Status: "success", Msg: contactThanks})
}

func decodeContact(r *http.Request) (contactRequest, error) {
	var req contactRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxContactBody); err != nil && err != http.ErrNotMultipart {
			return req, err
		}
		req.Name = r.PostFormValue("name")
		req.Email = r.PostFormValue("email")
		req.Message = r.PostFormValue("message")
		return req, nil
	default:
		err := json.NewDecoder(r.Body).Decode(&req)
		if err == io.EOF {
			return req, nil
		}
		return req, err
	}
}
