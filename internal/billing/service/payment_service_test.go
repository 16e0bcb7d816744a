package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodlens/prodlens-core/internal/billing/domain"
)

func validCard() domain.CardDraft {
	return domain.CardDraft{
		CardNumber: "4242 4242 4242 4242",
		CardName:   "Gabriel Johnson",
		ExpiryDate: "12/28",
		CVV:        "123",
	}
}

func TestPaymentService_Plans(t *testing.T) {
	svc := NewPaymentService(0, nil)

	plans := svc.Plans()
	require.Len(t, plans, 3)
	assert.Equal(t, "free", plans[0].ID)
	assert.True(t, plans[0].Current)
	assert.True(t, plans[1].Recommended)
	assert.Equal(t, 99, plans[2].Price)

	t.Run("lookup by id", func(t *testing.T) {
		pro, ok := svc.PlanByID("pro")
		require.True(t, ok)
		assert.Equal(t, 29, pro.Price)

		_, ok = svc.PlanByID("platinum")
		assert.False(t, ok)
	})
}

func TestPaymentService_ValidateCard(t *testing.T) {
	svc := NewPaymentService(0, nil)

	t.Run("empty form", func(t *testing.T) {
		errs := svc.ValidateCard(domain.CardDraft{})
		assert.Equal(t, "Card number is required", errs["cardNumber"])
		assert.Equal(t, "Cardholder name is required", errs["cardName"])
		assert.Equal(t, "Expiry date is required", errs["expiryDate"])
		assert.Equal(t, "CVV is required", errs["cvv"])
	})

	t.Run("short card number", func(t *testing.T) {
		card := validCard()
		card.CardNumber = "4242 4242"
		errs := svc.ValidateCard(card)
		assert.Equal(t, "Please enter a valid 16-digit card number", errs["cardNumber"])
	})

	t.Run("expired card", func(t *testing.T) {
		card := validCard()
		card.ExpiryDate = "01/20"
		errs := svc.ValidateCard(card)
		assert.Equal(t, "Please enter a valid expiry date", errs["expiryDate"])
	})

	t.Run("well-formed card", func(t *testing.T) {
		assert.True(t, svc.ValidateCard(validCard()).Valid())
	})
}

func TestPaymentService_SubmitPayment(t *testing.T) {
	svc := NewPaymentService(0, nil)

	t.Run("pro plan charges", func(t *testing.T) {
		result, errs := svc.SubmitPayment("pro", validCard())
		assert.True(t, errs.Valid())
		assert.True(t, result.Success)
		assert.Equal(t, "pro", result.PlanID)
		assert.NotEmpty(t, result.Reference)
	})

	t.Run("references are unique per charge", func(t *testing.T) {
		first, _ := svc.SubmitPayment("pro", validCard())
		second, _ := svc.SubmitPayment("enterprise", validCard())
		assert.NotEqual(t, first.Reference, second.Reference)
	})

	t.Run("invalid card never reaches the charge", func(t *testing.T) {
		card := validCard()
		card.CVV = "12"
		result, errs := svc.SubmitPayment("pro", card)
		assert.False(t, result.Success)
		assert.Equal(t, "CVV must be 3-4 digits", errs["cvv"])
	})

	t.Run("free plan cannot be purchased", func(t *testing.T) {
		result, errs := svc.SubmitPayment("free", validCard())
		assert.False(t, result.Success)
		assert.Equal(t, "This plan cannot be purchased", result.Error)
		assert.True(t, errs.Valid())
	})

	t.Run("unknown plan", func(t *testing.T) {
		result, _ := svc.SubmitPayment("platinum", validCard())
		assert.False(t, result.Success)
	})
}
