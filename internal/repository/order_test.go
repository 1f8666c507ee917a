package repository

import (
	"context"
	"testing"

	"food-delivery-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidOrder(intentID string) *model.Order {
	return &model.Order{
		ID:              uuid.New().String(),
		PaymentIntentID: intentID,
		CustomerEmail:   "jane@example.com",
		Amount:          decimal.NewFromInt(52),
		Currency:        "usd",
		Status:          model.OrderPaid,
	}
}

func TestOrderCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := paidOrder("pi_1")
	require.NoError(t, repo.Create(ctx, order))

	found, err := repo.FindByPaymentIntentID(ctx, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, model.OrderPaid, found.Status)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(52)))
}

func TestOrderCreateDuplicateIntent(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, paidOrder("pi_1")))

	err := repo.Create(ctx, paidOrder("pi_1"))
	assert.ErrorIs(t, err, ErrDuplicateOrder)
}
