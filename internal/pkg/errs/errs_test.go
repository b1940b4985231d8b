package errs_test

import (
	"errors"
	"testing"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentId", "42")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shipmentId", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: shipmentId, ID is: 42 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("contentRef")

		assert.Equal(t, "contentRef", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: contentRef", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("contentRef", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: contentRef (cause: missing required field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("amount")

		assert.Equal(t, "amount", err.ParamName)
		assert.Equal(t, "value is invalid: amount", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize strips newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("amount\nwith newline")
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "amount with newline")
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := errs.NewAuthorizationError("grant role", "0xabc")

		assert.Equal(t, "grant role", err.Operation)
		assert.Equal(t, "0xabc", err.Address)
		assert.Equal(t, "not authorized: 0xabc cannot grant role", err.Error())
		assert.Equal(t, errs.ErrNotAuthorized, err.Unwrap())
	})

	t.Run("NewAuthorizationErrorWithCause", func(t *testing.T) {
		cause := errors.New("role CARRIER required")
		err := errs.NewAuthorizationErrorWithCause("update milestone", "0xabc", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"not authorized: 0xabc cannot update milestone (cause: role CARRIER required)",
			err.Error())
	})
}

func TestStateError(t *testing.T) {
	t.Run("NewStateError", func(t *testing.T) {
		err := errs.NewStateError("update milestone", "sequential only")

		assert.Equal(t, "update milestone", err.Operation)
		assert.Equal(t, "sequential only", err.Reason)
		assert.Equal(t, "illegal state: cannot update milestone: sequential only", err.Error())
		assert.Equal(t, errs.ErrIllegalState, err.Unwrap())
	})

	t.Run("NewStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("escrow is inactive")
		err := errs.NewStateErrorWithCause("release", "escrow inactive", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: escrow is inactive)")
	})
}

func TestDeadlineError(t *testing.T) {
	deadline := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("NewDeadlineError", func(t *testing.T) {
		err := errs.NewDeadlineError("release", deadline)

		assert.Equal(t, "release", err.Operation)
		assert.Equal(t, deadline, err.Deadline)
		assert.Equal(t, "deadline exceeded: cannot release after 2025-06-01T12:00:00Z", err.Error())
		assert.Equal(t, errs.ErrDeadlineExceeded, err.Unwrap())
	})
}

func TestDuplicateError(t *testing.T) {
	t.Run("NewDuplicateError", func(t *testing.T) {
		err := errs.NewDuplicateError("escrow", uint64(7))

		assert.Equal(t, "escrow", err.ParamName)
		assert.Equal(t, uint64(7), err.ID)
		assert.Equal(t, "already exists: escrow 7", err.Error())
		assert.Equal(t, errs.ErrAlreadyExists, err.Unwrap())
	})
}

func TestInsufficientFundsError(t *testing.T) {
	t.Run("NewInsufficientFundsError", func(t *testing.T) {
		err := errs.NewInsufficientFundsError("0xbuyer", 1000, 250)

		assert.Equal(t, "0xbuyer", err.Address)
		assert.Equal(t, int64(1000), err.Required)
		assert.Equal(t, int64(250), err.Available)
		assert.Equal(t, "insufficient funds: 0xbuyer requires 1000, has 250", err.Error())
		assert.Equal(t, errs.ErrInsufficientFunds, err.Unwrap())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("shipmentId", "42"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsRequiredError("buyer"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewValueIsInvalidError("amount"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewAuthorizationError("mint", "0xabc"), errs.ErrNotAuthorized)
		require.ErrorIs(t, errs.NewStateError("cancel", "terminal state"), errs.ErrIllegalState)
		require.ErrorIs(t, errs.NewDeadlineError("release", time.Now()), errs.ErrDeadlineExceeded)
		require.ErrorIs(t, errs.NewDuplicateError("milestone", 2), errs.ErrAlreadyExists)
		require.ErrorIs(t, errs.NewInsufficientFundsError("0xabc", 10, 0), errs.ErrInsufficientFunds)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "not authorized", errs.ErrNotAuthorized.Error())
		assert.Equal(t, "illegal state", errs.ErrIllegalState.Error())
		assert.Equal(t, "deadline exceeded", errs.ErrDeadlineExceeded.Error())
		assert.Equal(t, "already exists", errs.ErrAlreadyExists.Error())
		assert.Equal(t, "insufficient funds", errs.ErrInsufficientFunds.Error())
	})
}
