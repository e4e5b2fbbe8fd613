package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadataFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeValidation).HTTPStatus)
	assert.True(t, MetadataFor(CodeValidation).DetailsAllowed)
	assert.Equal(t, http.StatusNotFound, MetadataFor(CodeNotFound).HTTPStatus)
	assert.Equal(t, http.StatusServiceUnavailable, MetadataFor(CodeDependency).HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, MetadataFor(Code("bogus")).HTTPStatus)
}

func TestAsThroughWrapping(t *testing.T) {
	base := NotFound("recipe")
	wrapped := fmt.Errorf("loading: %w", base)

	got := As(wrapped)
	assert.NotNil(t, got)
	assert.Equal(t, CodeNotFound, got.Code())
	assert.Equal(t, "recipe not found", got.Message())
	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
	assert.Nil(t, As(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeDependency, cause, "generator unavailable")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "generator unavailable", err.Message())
}

func TestWithDetails(t *testing.T) {
	err := Validation("invalid ingredient data").WithDetails([]string{"name is required"})
	assert.Equal(t, []string{"name is required"}, err.Details())

	var nilErr *Error
	assert.Nil(t, nilErr.WithDetails("x"))
	assert.Equal(t, CodeInternal, nilErr.Code())
}

func TestResponseFor(t *testing.T) {
	status, body := ResponseFor(NotFound("recipe"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "recipe not found", body.Error)
	assert.Equal(t, CodeNotFound, body.Code)
	assert.Nil(t, body.Details)

	details := []FieldDetail{{Field: "name", Rule: "required", Message: "name is required"}}
	status, body = ResponseFor(Validation("invalid request").WithDetails(details))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, details, body.Details)

	status, body = ResponseFor(Wrap(CodeInternal, errors.New("pq: connection refused"), "failed to list"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body.Error)

	status, body = ResponseFor(errors.New("untyped"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, CodeInternal, body.Code)

	// Details on codes that do not allow them are dropped.
	status, body = ResponseFor(New(CodeDependency, "generation unavailable").WithDetails("secret"))
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Nil(t, body.Details)
}
