package errcodes

type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	InternalServerError ErrorCode = "InternalServerError"
	ValidationError     ErrorCode = "ValidationError"
	NotFound            ErrorCode = "NotFound"
	TooManyRequests     ErrorCode = "TooManyRequests"

	InvalidInput        ErrorCode = "InvalidInput"
	UnsupportedTerm     ErrorCode = "UnsupportedTerm"
	UnknownSolveMode    ErrorCode = "UnknownSolveMode"
	InvalidBracketTable ErrorCode = "InvalidBracketTable"
	SessionNotFound     ErrorCode = "SessionNotFound"
	InvalidTransition   ErrorCode = "InvalidTransition"
	SummaryNotReady     ErrorCode = "SummaryNotReady"
)

// Coded is implemented by errors that carry a stable code for clients.
type Coded interface {
	error
	ErrorCode() ErrorCode
}
