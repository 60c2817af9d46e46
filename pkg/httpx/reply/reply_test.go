package reply_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"apartment-journey/pkg/contextx"
	"apartment-journey/pkg/errcodes"
	"apartment-journey/pkg/httpx/reply"
)

type codedError struct {
	code errcodes.ErrorCode
}

func (e codedError) Error() string                 { return "coded: " + e.code.String() }
func (e codedError) ErrorCode() errcodes.ErrorCode { return e.code }

func TestError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		statusCode int
		code       string
	}{
		{"validation", codedError{errcodes.ValidationError}, http.StatusBadRequest, "ValidationError"},
		{"invalid input wrapped", fmt.Errorf("solve: %w", codedError{errcodes.InvalidInput}), http.StatusBadRequest, "InvalidInput"},
		{"session not found", codedError{errcodes.SessionNotFound}, http.StatusNotFound, "SessionNotFound"},
		{"invalid transition", codedError{errcodes.InvalidTransition}, http.StatusConflict, "InvalidTransition"},
		{"rate limited", codedError{errcodes.TooManyRequests}, http.StatusTooManyRequests, "TooManyRequests"},
		{"plain error", errors.New("redis: connection refused"), http.StatusInternalServerError, "InternalServerError"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			ctx := contextx.WithTraceID(context.Background(), "trace-1")
			w := httptest.NewRecorder()

			reply.Error(ctx, w, tc.err)

			rq.Equal(tc.statusCode, w.Code)

			var body map[string]string
			rq.NoError(jsoniter.Unmarshal(w.Body.Bytes(), &body))
			rq.Equal(tc.code, body["code"])
			rq.Equal("trace-1", body["supportId"])
			rq.NotContains(body["message"], "connection refused")
		})
	}
}
