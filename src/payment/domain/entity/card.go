package entity

import (
	"errors"
	"strings"
)

var (
	ErrCardDataIncomplete = errors.New("card number, expiry, cvv and holder are required")
	ErrInvalidCardNumber  = errors.New("card number must have between 13 and 19 digits")
	ErrPaymentDeclined    = errors.New("payment was declined")
)

// CardDetails contiene los datos de la tarjeta para un pago simulado.
// Nunca se persisten ni se pasan al módulo de pedidos.
type CardDetails struct {
	Number string
	Expiry string
	CVV    string
	Holder string
}

// Validate verifica que todos los campos de la tarjeta estén presentes y que el
// número tenga una longitud razonable. El cliente envía el número con espacios.
func (c *CardDetails) Validate() error {
	if c.Number == "" || c.Expiry == "" || c.CVV == "" || c.Holder == "" {
		return ErrCardDataIncomplete
	}

	digits := strings.ReplaceAll(c.Number, " ", "")
	if len(digits) < 13 || len(digits) > 19 {
		return ErrInvalidCardNumber
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return ErrInvalidCardNumber
		}
	}

	return nil
}
