package usecase_test

import (
	"context"
	"testing"

	infraRepo "app/internal/infra/repository"
	"app/internal/usecase"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutUsecase(t *testing.T) (*usecase.CheckoutUsecase, *usecase.CartUsecase, *infraRepo.MemoryStore, *logtest.Hook) {
	t.Helper()
	cartUC, store := newCartUsecase(t)
	log, hook := logtest.NewNullLogger()
	return usecase.NewCheckoutUsecase(cartUC, log), cartUC, store, hook
}

func TestCheckoutUsecase_EmptyCart(t *testing.T) {
	uc, _, _, _ := newCheckoutUsecase(t)

	_, err := uc.Checkout(context.Background(), "u", usecase.CheckoutInput{
		CustomerName:  "Awa",
		Address:       "Dakar",
		PaymentMethod: "cash",
	})
	require.Error(t, err)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Equal(t, "cart is empty", he.Message)
}

func TestCheckoutUsecase_InvalidPaymentMethod(t *testing.T) {
	uc, _, _, _ := newCheckoutUsecase(t)

	_, err := uc.Checkout(context.Background(), "u", usecase.CheckoutInput{
		CustomerName:  "Awa",
		Address:       "Dakar",
		PaymentMethod: "carte",
	})
	require.Error(t, err)
}

func TestCheckoutUsecase_LogsAndClearsCart(t *testing.T) {
	ctx := context.Background()
	uc, cartUC, store, hook := newCheckoutUsecase(t)
	p := seedProduct(t, store, "Ballon", 25000, 10)

	_, err := cartUC.AddToCart(ctx, "u", usecase.AddCartInput{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	out, err := uc.Checkout(ctx, "u", usecase.CheckoutInput{
		CustomerName:  "Awa",
		Address:       "Dakar",
		PaymentMethod: "wave",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50000), out.Total)
	assert.Equal(t, 1, out.ItemCount)
	assert.Equal(t, "wave", out.PaymentMethod)

	// 注文がログに残る
	require.NotEmpty(t, hook.Entries)
	last := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, "order confirmed", last.Message)
	assert.Equal(t, int64(50000), last.Data["total"])

	// カートは空になる
	cart, err := cartUC.GetCart(ctx, "u")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
