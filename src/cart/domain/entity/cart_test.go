package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddItem_NewLines(t *testing.T) {
	cart := NewCart("s1")

	require.NoError(t, cart.AddItem(1, "Pan Francés", price("0.50"), ""))
	require.NoError(t, cart.AddItem(2, "Torta de Chocolate", price("45.00"), ""))
	require.NoError(t, cart.AddItem(3, "Alfajor", price("2.00"), ""))

	assert.Equal(t, 3, cart.ItemCount())
	assert.True(t, cart.Total().Equal(price("47.50")), "total = %s", cart.Total())
}

func TestAddItem_SameProductIncrementsQuantity(t *testing.T) {
	cart := NewCart("s1")

	require.NoError(t, cart.AddItem(1, "Pan Francés", price("0.50"), ""))
	require.NoError(t, cart.AddItem(1, "Pan Francés", price("0.50"), ""))
	require.NoError(t, cart.AddItem(1, "Pan Francés", price("0.50"), ""))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, 3, cart.ItemCount())
	assert.True(t, cart.Total().Equal(price("1.50")))
}

func TestAddItem_Validation(t *testing.T) {
	cart := NewCart("s1")

	assert.ErrorIs(t, cart.AddItem(0, "Pan", price("1.00"), ""), ErrProductIDRequired)
	assert.ErrorIs(t, cart.AddItem(1, "", price("1.00"), ""), ErrProductNameRequired)
	assert.ErrorIs(t, cart.AddItem(1, "Pan", price("-1.00"), ""), ErrInvalidPrice)
	assert.Empty(t, cart.Lines)
}

func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	cart := NewCart("s1")
	require.NoError(t, cart.AddItem(1, "Pan Francés", price("0.50"), ""))

	cart.UpdateQuantity(1, 10)

	assert.Equal(t, 10, cart.ItemCount())
	assert.True(t, cart.Total().Equal(price("5.00")))
}

func TestUpdateQuantity_ZeroOrNegativeRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		cart := NewCart("s1")
		require.NoError(t, cart.AddItem(1, "Pan Francés", price("0.50"), ""))

		cart.UpdateQuantity(1, quantity)

		assert.Empty(t, cart.Lines)
		assert.Equal(t, 0, cart.ItemCount())
	}
}

func TestUpdateQuantity_AbsentProductIsNoOp(t *testing.T) {
	cart := NewCart("s1")
	require.NoError(t, cart.AddItem(1, "Pan Francés", price("0.50"), ""))

	cart.UpdateQuantity(99, 5)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].ProductID)
	assert.Equal(t, 1, cart.ItemCount())
}

func TestRemoveItem(t *testing.T) {
	cart := NewCart("s1")
	require.NoError(t, cart.AddItem(1, "Pan Francés", price("0.50"), ""))
	require.NoError(t, cart.AddItem(2, "Alfajor", price("2.00"), ""))

	cart.RemoveItem(1)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].ProductID)

	// Quitar un producto ausente no cambia nada
	cart.RemoveItem(99)
	assert.Len(t, cart.Lines, 1)
}

func TestClear(t *testing.T) {
	cart := NewCart("s1")
	require.NoError(t, cart.AddItem(1, "Pan Francés", price("0.50"), ""))
	require.NoError(t, cart.AddItem(2, "Alfajor", price("2.00"), ""))

	cart.Clear()

	assert.Equal(t, 0, cart.ItemCount())
	assert.True(t, cart.Total().Equal(decimal.Zero))
}

func TestTotal_KeepsFullPrecision(t *testing.T) {
	cart := NewCart("s1")
	require.NoError(t, cart.AddItem(1, "Porción", price("3.333"), ""))
	cart.UpdateQuantity(1, 3)

	// La aritmética interna no redondea
	assert.True(t, cart.Total().Equal(price("9.999")), "total = %s", cart.Total())
}
