package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine representa un producto seleccionado con su cantidad.
// Nombre, precio e imagen son un snapshot tomado al agregar el producto.
type CartLine struct {
	ProductID int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url,omitempty"`
	Quantity  int             `json:"quantity"`
}

// Cart representa el carrito de una sesión (Aggregate).
// Un solo dueño lógico: la sesión que lo creó. Los ids de producto son únicos
// dentro del carrito.
type Cart struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart crea un carrito vacío para una sesión
func NewCart(id string) *Cart {
	now := time.Now()
	return &Cart{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem agrega un producto al carrito. Si el producto ya está presente
// incrementa su cantidad en 1; si no, crea una línea nueva con cantidad 1.
func (c *Cart) AddItem(productID int, name string, price decimal.Decimal, imageURL string) error {
	if productID <= 0 {
		return ErrProductIDRequired
	}
	if name == "" {
		return ErrProductNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return ErrInvalidPrice
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity++
			c.UpdatedAt = time.Now()
			return nil
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID: productID,
		Name:      name,
		Price:     price,
		ImageURL:  imageURL,
		Quantity:  1,
	})
	c.UpdatedAt = time.Now()
	return nil
}

// UpdateQuantity fija la cantidad de una línea. Con cantidad <= 0 la línea se
// elimina. Si el producto no está en el carrito no hace nada.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// RemoveItem elimina la línea del producto si existe
func (c *Cart) RemoveItem(productID int) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// Clear vacía el carrito
func (c *Cart) Clear() {
	c.Lines = nil
	c.UpdatedAt = time.Now()
}

// ItemCount retorna la suma de cantidades de todas las líneas
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Total retorna la suma de precio × cantidad de todas las líneas.
// La aritmética interna conserva la precisión completa; el redondeo a dos
// decimales ocurre solo al presentar el valor.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
