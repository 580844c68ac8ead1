package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"user not found", ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"institution not found", ErrInstitutionNotFound, http.StatusNotFound, "INSTITUTION_NOT_FOUND"},
		{"duplicate email", ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL"},
		{"duplicate review", ErrDuplicateReview, http.StatusConflict, "DUPLICATE_REVIEW"},
		{"duplicate vote", ErrDuplicateVote, http.StatusConflict, "DUPLICATE_VOTE"},
		{"not approved", ErrNotApproved, http.StatusForbidden, "NOT_APPROVED"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"already approved", ErrAlreadyApproved, http.StatusBadRequest, "ALREADY_APPROVED"},
		{"evidence missing", ErrEvidenceMissing, http.StatusBadRequest, "EVIDENCE_MISSING"},
		{"wrapped domain error", fmt.Errorf("create review: %w", ErrDuplicateReview), http.StatusConflict, "DUPLICATE_REVIEW"},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_UnknownErrorHidesDetails(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dsn user:pass@tcp(db)/reviews"))
	assert.Equal(t, "internal server error", httpErr.Message)
	assert.NotContains(t, httpErr.ToErrorResponse().Error, "pass")
}
