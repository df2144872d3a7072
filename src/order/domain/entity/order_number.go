package entity

import (
	"fmt"
	"sync"
	"time"
)

var (
	orderNumberMu   sync.Mutex
	lastOrderMillis int64
)

// NewOrderNumber genera un número de pedido con formato PD-<millis>.
// El reloj se ajusta de forma monótona dentro del proceso: dos pedidos creados
// en el mismo milisegundo reciben números distintos. La tabla orders mantiene
// además una restricción UNIQUE sobre order_number.
func NewOrderNumber() string {
	orderNumberMu.Lock()
	defer orderNumberMu.Unlock()

	millis := time.Now().UnixMilli()
	if millis <= lastOrderMillis {
		millis = lastOrderMillis + 1
	}
	lastOrderMillis = millis

	return fmt.Sprintf("PD-%d", millis)
}
