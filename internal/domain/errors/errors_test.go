package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unifiedui/docdb-gateway/internal/domain/errors"
)

func TestNewInvalidRequestError(t *testing.T) {
	cause := stderrors.New("unexpected EOF")
	err := errors.NewInvalidRequestError(cause)

	assert.Equal(t, errors.ErrCodeInvalidRequest, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, "unexpected EOF", err.Details)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INVALID_REQUEST: invalid request shape (unexpected EOF)", err.Error())
}

func TestGetDomainError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", errors.NewNotFoundError("document", "d.c"))

	domainErr, ok := errors.GetDomainError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
	assert.Equal(t, errors.ErrCodeNotFound, domainErr.Code)
}

func TestGetDomainError_PlainError(t *testing.T) {
	_, ok := errors.GetDomainError(stderrors.New("boom"))
	assert.False(t, ok)
}

func TestConstructors_StatusCodes(t *testing.T) {
	cause := stderrors.New("cause")

	assert.Equal(t, http.StatusConflict, errors.NewConflictError("duplicate key", cause).HTTPStatus)
	assert.Equal(t, http.StatusGatewayTimeout, errors.NewTimeoutError("find", cause).HTTPStatus)
	assert.Equal(t, http.StatusServiceUnavailable, errors.NewServiceUnavailableError("document database", cause).HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, errors.NewInternalError("failed", cause).HTTPStatus)
	assert.Equal(t, "TIMEOUT: find timed out", errors.NewTimeoutError("find", cause).Error())
}
