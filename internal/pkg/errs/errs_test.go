package errs_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("price")

		assert.Equal(t, "price", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: price", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("must be non-negative")
		err := errs.NewValueIsInvalidErrorWithCause("price", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: price (cause: must be non-negative)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("username")

	assert.Equal(t, "username", err.ParamName)
	require.NoError(t, err.Cause)
	assert.Equal(t, "value is required: username", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValueAlreadyExistsError(t *testing.T) {
	t.Run("NewValueAlreadyExistsError", func(t *testing.T) {
		err := errs.NewValueAlreadyExistsError("username", "bob")

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, "bob", err.Value)
		assert.Equal(t, "value already exists: username is bob", err.Error())
		assert.Equal(t, errs.ErrValueAlreadyExists, err.Unwrap())
	})

	t.Run("NewValueAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint violated")
		err := errs.NewValueAlreadyExistsErrorWithCause("username", "bob", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value already exists: username is bob (cause: unique constraint violated)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("price"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("username"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueAlreadyExistsError("username", "bob"), errs.ErrValueAlreadyExists)
}

func TestSanitize(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("text", errors.New("hello\nworld"))
	assert.Contains(t, err.Error(), "hello world")
	assert.NotContains(t, err.Error(), "\n")
}
