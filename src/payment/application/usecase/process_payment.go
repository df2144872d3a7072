package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JosueLm7/PanaderiaDelicia/src/payment/domain/entity"
)

// Authorizer decide si un cargo simulado se aprueba.
// Se inyecta para poder forzar rechazos en los tests.
type Authorizer interface {
	Authorize(amount decimal.Decimal) (approved bool, reason string)
}

// AlwaysApprove aprueba todos los cargos; es el comportamiento de la pasarela simulada
type AlwaysApprove struct{}

// Authorize aprueba el cargo sin condiciones
func (AlwaysApprove) Authorize(decimal.Decimal) (bool, string) {
	return true, ""
}

// ChargeResult representa el resultado de un cargo simulado
type ChargeResult struct {
	TransactionID string `json:"transaction_id"`
}

// ProcessPaymentUseCase caso de uso para el cargo simulado con tarjeta
type ProcessPaymentUseCase struct {
	authorizer Authorizer
}

// NewProcessPaymentUseCase crea una nueva instancia del caso de uso
func NewProcessPaymentUseCase(authorizer Authorizer) *ProcessPaymentUseCase {
	if authorizer == nil {
		authorizer = AlwaysApprove{}
	}
	return &ProcessPaymentUseCase{
		authorizer: authorizer,
	}
}

// Execute valida los datos de la tarjeta y simula el cargo.
// Retorna una referencia TXN-<uuid> cuando el cargo se aprueba.
func (uc *ProcessPaymentUseCase) Execute(card entity.CardDetails, amount decimal.Decimal) (*ChargeResult, error) {
	if err := card.Validate(); err != nil {
		return nil, err
	}

	approved, reason := uc.authorizer.Authorize(amount)
	if !approved {
		if reason != "" {
			return nil, fmt.Errorf("%w: %s", entity.ErrPaymentDeclined, reason)
		}
		return nil, entity.ErrPaymentDeclined
	}

	return &ChargeResult{
		TransactionID: fmt.Sprintf("TXN-%s", uuid.New().String()),
	}, nil
}
