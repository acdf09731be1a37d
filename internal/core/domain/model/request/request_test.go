package request_test

import (
	"testing"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/request"
	"winetrade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftRequest(t *testing.T) *request.Request {
	t.Helper()
	r, err := request.NewRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 24, request.DeliveryDetails{
		Street: "Storgatan 1", City: "Stockholm", PostalCode: "111 22", Country: "SE",
	})
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	t.Run("starts in draft", func(t *testing.T) {
		r := newDraftRequest(t)

		assert.Equal(t, request.StatusDraft, r.Status())
		assert.Equal(t, 24, r.QuantityBottles())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := request.NewRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, request.DeliveryDetails{})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var r request.Request
		require.ErrorIs(t, r.Validate(), request.ErrRequestIsNotConstructed)
	})
}

func TestRequest_Lifecycle(t *testing.T) {
	t.Run("draft can be opened then accepted then closed", func(t *testing.T) {
		r := newDraftRequest(t)

		require.NoError(t, r.Open())
		require.NoError(t, r.Accept())
		require.NoError(t, r.Close())
		assert.Equal(t, request.StatusClosed, r.Status())
	})

	t.Run("draft cannot be accepted directly", func(t *testing.T) {
		r := newDraftRequest(t)

		err := r.Accept()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, request.StatusDraft, r.Status())
	})

	t.Run("cancelled request allows nothing further", func(t *testing.T) {
		r := newDraftRequest(t)
		require.NoError(t, r.Cancel())

		require.ErrorIs(t, r.Open(), errs.ErrInvalidTransition)
		require.ErrorIs(t, r.Close(), errs.ErrInvalidTransition)
	})
}

func TestRequestChart(t *testing.T) {
	chart := request.Chart()

	t.Run("terminal states return empty allowed set", func(t *testing.T) {
		assert.Empty(t, request.StatusClosed.AllowedNext())
		assert.Empty(t, request.StatusCancelled.AllowedNext())
		assert.True(t, request.StatusClosed.IsTerminal())
	})

	t.Run("every allowed target stays inside the chart", func(t *testing.T) {
		for _, from := range chart.States() {
			for _, to := range from.AllowedNext() {
				assert.True(t, chart.Contains(to))
			}
		}
	})
}
