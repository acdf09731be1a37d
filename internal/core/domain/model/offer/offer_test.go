package offer_test

import (
	"testing"
	"time"

	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLines() []offer.Line {
	return []offer.Line{
		{WineName: "Barolo DOCG", Producer: "Marchesi di Barolo", Vintage: 2019, Quantity: 12, Unit: "bottle", UnitPrice: 38.5},
		{WineName: "Chianti Classico Riserva", Producer: "Castello di Ama", Vintage: 2020, Quantity: 6, Unit: "bottle", UnitPrice: 21.0},
	}
}

func newDraftOffer(t *testing.T) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"EUR", false, 45.0, nil, testLines(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOffer(t *testing.T) {
	t.Run("starts in draft with validated lines", func(t *testing.T) {
		o := newDraftOffer(t)

		assert.Equal(t, offer.StatusDraft, o.Status())
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("rejects malformed currency", func(t *testing.T) {
		_, err := offer.NewOffer(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"EURO", false, 0, nil, nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a line without quantity", func(t *testing.T) {
		lines := []offer.Line{{WineName: "Barolo DOCG", Quantity: 0, UnitPrice: 10}}
		_, err := offer.NewOffer(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"EUR", false, 0, nil, lines,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOffer_GoodsAmount(t *testing.T) {
	o := newDraftOffer(t)

	assert.InDelta(t, 12*38.5+6*21.0, o.GoodsAmount(), 0.001)
}

func TestOffer_Lifecycle(t *testing.T) {
	t.Run("sent offer can be viewed then accepted", func(t *testing.T) {
		o := newDraftOffer(t)

		require.NoError(t, o.Send())
		require.NoError(t, o.MarkViewed())
		require.NoError(t, o.Accept())
		assert.Equal(t, offer.StatusAccepted, o.Status())
	})

	t.Run("accepted offer is immutable", func(t *testing.T) {
		o := newDraftOffer(t)
		require.NoError(t, o.Send())
		require.NoError(t, o.Accept())

		require.ErrorIs(t, o.Reject(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Expire(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.MarkViewed(), errs.ErrInvalidTransition)
		assert.Equal(t, offer.StatusAccepted, o.Status())
	})

	t.Run("draft cannot be accepted before sending", func(t *testing.T) {
		o := newDraftOffer(t)

		err := o.Accept()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, []string{"SENT"}, transitionErr.Allowed)
	})
}

func TestOffer_IsExpiredAt(t *testing.T) {
	now := time.Now()

	t.Run("no validity window never expires", func(t *testing.T) {
		o := newDraftOffer(t)
		assert.False(t, o.IsExpiredAt(now))
	})

	t.Run("past validity window is expired", func(t *testing.T) {
		past := now.Add(-time.Hour)
		o, err := offer.NewOffer(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"EUR", false, 0, &past, testLines(),
		)
		require.NoError(t, err)
		assert.True(t, o.IsExpiredAt(now))
	})
}

func TestOfferChart(t *testing.T) {
	t.Run("all decision states are terminal", func(t *testing.T) {
		assert.True(t, offer.StatusAccepted.IsTerminal())
		assert.True(t, offer.StatusRejected.IsTerminal())
		assert.True(t, offer.StatusExpired.IsTerminal())
	})

	t.Run("every allowed target stays inside the chart", func(t *testing.T) {
		chart := offer.Chart()
		for _, from := range chart.States() {
			for _, to := range from.AllowedNext() {
				assert.True(t, chart.Contains(to))
			}
		}
	})
}
