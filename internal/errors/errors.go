package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrInstitutionNotFound is returned when a financial institution is not found.
	ErrInstitutionNotFound = errors.New("institution not found")
	// ErrCategoryNotFound is returned when a forum category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrThreadNotFound is returned when a thread is not found.
	ErrThreadNotFound = errors.New("thread not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrVoteNotFound is returned when a helpful vote is not found.
	ErrVoteNotFound = errors.New("helpful vote not found")

	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateReview is returned when the user already reviewed the institution.
	ErrDuplicateReview = errors.New("user already reviewed this institution")
	// ErrDuplicateVote is returned when the user already marked the comment helpful.
	ErrDuplicateVote = errors.New("comment already marked helpful")

	// ErrNotApproved is returned when an unapproved account attempts a gated operation.
	ErrNotApproved = errors.New("account is not approved yet")
	// ErrForbidden is returned when the caller lacks permission for the operation.
	ErrForbidden = errors.New("operation not permitted")
	// ErrAlreadyApproved is returned when approving an account twice.
	ErrAlreadyApproved = errors.New("account is already approved")
	// ErrEvidenceMissing is returned when approving an account without evidence.
	ErrEvidenceMissing = errors.New("no approval evidence submitted")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Internal details never
// reach the response body; unknown errors collapse to a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInstitutionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "INSTITUTION_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrThreadNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "THREAD_NOT_FOUND")
	case errors.Is(err, ErrCommentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	case errors.Is(err, ErrReviewNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REVIEW_NOT_FOUND")
	case errors.Is(err, ErrVoteNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "VOTE_NOT_FOUND")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrDuplicateReview):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_REVIEW")
	case errors.Is(err, ErrDuplicateVote):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_VOTE")
	case errors.Is(err, ErrNotApproved):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_APPROVED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrAlreadyApproved):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_APPROVED")
	case errors.Is(err, ErrEvidenceMissing):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EVIDENCE_MISSING")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
