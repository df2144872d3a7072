package entity

import "time"

// CheckoutForm contiene los datos de contacto y entrega recogidos en el checkout.
// Es transitorio: se consume al crear el pedido y no se persiste por sí mismo.
type CheckoutForm struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	DeliveryAddress string `json:"delivery_address"`
	DeliveryDate    string `json:"delivery_date"` // formato YYYY-MM-DD
	DeliveryTime    string `json:"delivery_time"`
	Notes           string `json:"notes"`
}

// Validate verifica que todos los campos obligatorios estén presentes.
// La validación es todo-o-nada: cualquier campo faltante rechaza el formulario completo.
func (f *CheckoutForm) Validate(now time.Time) error {
	if f.CustomerName == "" {
		return ErrCustomerNameRequired
	}
	if f.CustomerPhone == "" {
		return ErrCustomerPhoneRequired
	}
	if f.CustomerEmail == "" {
		return ErrCustomerEmailRequired
	}
	if f.DeliveryAddress == "" {
		return ErrDeliveryAddressRequired
	}
	if f.DeliveryDate == "" {
		return ErrDeliveryDateRequired
	}
	if f.DeliveryTime == "" {
		return ErrDeliveryTimeRequired
	}

	// La fecha de entrega debe ser hoy o posterior
	deliveryDate, err := time.ParseInLocation("2006-01-02", f.DeliveryDate, now.Location())
	if err != nil {
		return ErrInvalidDeliveryDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if deliveryDate.Before(today) {
		return ErrInvalidDeliveryDate
	}

	return nil
}
