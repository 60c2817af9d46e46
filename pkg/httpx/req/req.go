package req

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"apartment-journey/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

// Error is returned when the request body cannot be decoded or validated.
type Error struct {
	Description string
	cause       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Description, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) ErrorCode() errcodes.ErrorCode {
	return errcodes.ValidationError
}

func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return &Error{Description: "invalid JSON", cause: fmt.Errorf("json.Decode: %w", err)}
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return &Error{Description: "validation error", cause: err}
	}

	return nil
}
