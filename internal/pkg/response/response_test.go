package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	xerrors "fitlife-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

func TestFromErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{xerrors.ErrNotFound, http.StatusNotFound},
		{xerrors.ErrInvalidInput, http.StatusBadRequest},
		{xerrors.ErrConflict, http.StatusConflict},
		{xerrors.ErrDuplicateEntry, http.StatusConflict},
		{xerrors.ErrUnauthorized, http.StatusUnauthorized},
		{xerrors.ErrForbidden, http.StatusForbidden},
		{xerrors.ErrRateLimited, http.StatusTooManyRequests},
		{fmt.Errorf("wrapped: %w", xerrors.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		FromError(c, tc.err, "boom")

		if w.Code != tc.want {
			t.Errorf("FromError(%v): status = %d, want %d", tc.err, w.Code, tc.want)
		}

		var body Response
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Success {
			t.Errorf("FromError(%v): success = true", tc.err)
		}
		if body.Message != "boom" {
			t.Errorf("FromError(%v): message = %q", tc.err, body.Message)
		}
	}
}

// Internal errors must not leak their detail to the client.
func TestFromErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromError(c, fmt.Errorf("dial tcp 10.0.0.5:5432: connection refused"), "Failed to create payment")

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Error != "" {
		t.Errorf("internal error detail leaked: %q", body.Error)
	}
}

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusCreated, "Created", map[string]int{"id": 1})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !body.Success || body.Message != "Created" || body.Data == nil {
		t.Errorf("body = %+v", body)
	}
}
