package reply

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"apartment-journey/pkg/contextx"
	"apartment-journey/pkg/errcodes"
	"apartment-journey/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//nolint:gochecknoglobals
var statusByCode = map[errcodes.ErrorCode]int{
	errcodes.ValidationError:     http.StatusBadRequest,
	errcodes.InvalidInput:        http.StatusBadRequest,
	errcodes.UnsupportedTerm:     http.StatusBadRequest,
	errcodes.UnknownSolveMode:    http.StatusBadRequest,
	errcodes.InvalidBracketTable: http.StatusBadRequest,
	errcodes.NotFound:            http.StatusNotFound,
	errcodes.SessionNotFound:     http.StatusNotFound,
	errcodes.InvalidTransition:   http.StatusConflict,
	errcodes.SummaryNotReady:     http.StatusConflict,
	errcodes.TooManyRequests:     http.StatusTooManyRequests,
}

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func Created(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error writes err as a JSON error body. Coded errors keep their code and
// message; anything else is an internal error and its text is not exposed.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	response := errorResponse{
		Code:      errcodes.InternalServerError.String(),
		Message:   http.StatusText(http.StatusInternalServerError),
		SupportID: supportID(ctx),
	}
	status := http.StatusInternalServerError

	var coded errcodes.Coded
	if errors.As(err, &coded) {
		if s, ok := statusByCode[coded.ErrorCode()]; ok {
			status = s
			response.Code = coded.ErrorCode().String()
			response.Message = coded.Error()
		}
	}

	if status >= http.StatusInternalServerError {
		logger(ctx).Error("error", logx.Error(err))
	} else {
		logger(ctx).Info("request rejected", logx.Error(err))
	}

	JSON(ctx, w, status, response)
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
