package usecase

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosueLm7/PanaderiaDelicia/src/payment/domain/entity"
)

type declineAll struct{}

func (declineAll) Authorize(decimal.Decimal) (bool, string) {
	return false, "fondos insuficientes"
}

func validCard() entity.CardDetails {
	return entity.CardDetails{
		Number: "4111 1111 1111 1111",
		Expiry: "12/28",
		CVV:    "123",
		Holder: "MARIA LOPEZ",
	}
}

func TestProcessPayment_Approved(t *testing.T) {
	uc := NewProcessPaymentUseCase(AlwaysApprove{})

	result, err := uc.Execute(validCard(), decimal.RequireFromString("28.50"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.TransactionID, "TXN-"))
}

func TestProcessPayment_IncompleteCard(t *testing.T) {
	uc := NewProcessPaymentUseCase(AlwaysApprove{})

	card := validCard()
	card.CVV = ""

	_, err := uc.Execute(card, decimal.RequireFromString("28.50"))
	assert.ErrorIs(t, err, entity.ErrCardDataIncomplete)
}

func TestProcessPayment_InvalidCardNumber(t *testing.T) {
	uc := NewProcessPaymentUseCase(AlwaysApprove{})

	card := validCard()
	card.Number = "1234"

	_, err := uc.Execute(card, decimal.RequireFromString("28.50"))
	assert.ErrorIs(t, err, entity.ErrInvalidCardNumber)

	card.Number = "4111 1111 1111 111a"
	_, err = uc.Execute(card, decimal.RequireFromString("28.50"))
	assert.ErrorIs(t, err, entity.ErrInvalidCardNumber)
}

func TestProcessPayment_Declined(t *testing.T) {
	uc := NewProcessPaymentUseCase(declineAll{})

	_, err := uc.Execute(validCard(), decimal.RequireFromString("28.50"))
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrPaymentDeclined)
	assert.Contains(t, err.Error(), "fondos insuficientes")
}
