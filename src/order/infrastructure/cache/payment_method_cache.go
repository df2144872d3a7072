package cache

import (
	"database/sql"
	"log"
	"sync"
)

// PaymentMethod representa un método de pago aceptado por la tienda
type PaymentMethod struct {
	Code string
	Name string
}

// PaymentMethodCache cache en memoria de los métodos de pago aceptados.
// Arranca con los métodos por defecto de la tienda y puede refrescarse desde
// la tabla payment_methods si existe.
type PaymentMethodCache struct {
	methods map[string]PaymentMethod
	mu      sync.RWMutex
}

// NewPaymentMethodCache crea el cache con los métodos por defecto
func NewPaymentMethodCache() *PaymentMethodCache {
	c := &PaymentMethodCache{
		methods: make(map[string]PaymentMethod),
	}
	for _, pm := range []PaymentMethod{
		{Code: "tarjeta", Name: "Tarjeta de crédito o débito"},
		{Code: "transferencia", Name: "Transferencia bancaria"},
		{Code: "efectivo", Name: "Efectivo contra entrega"},
	} {
		c.methods[pm.Code] = pm
	}
	return c
}

// LoadFromDB reemplaza los métodos en cache con los activos en la base de datos
func (c *PaymentMethodCache) LoadFromDB(db *sql.DB) error {
	log.Println("🔄 Cargando métodos de pago en cache...")

	query := `
		SELECT code, name
		FROM payment_methods
		WHERE is_active = true
	`

	rows, err := db.Query(query)
	if err != nil {
		log.Printf("⚠️  Advertencia: no se pudieron cargar los métodos de pago: %v", err)
		log.Println("⚠️  Continuando con los métodos por defecto")
		return err
	}
	defer rows.Close()

	loaded := make(map[string]PaymentMethod)
	for rows.Next() {
		var pm PaymentMethod
		if err := rows.Scan(&pm.Code, &pm.Name); err != nil {
			log.Printf("⚠️  Error leyendo método de pago: %v", err)
			continue
		}
		loaded[pm.Code] = pm
	}

	if len(loaded) == 0 {
		log.Println("⚠️  La tabla payment_methods está vacía, se mantienen los métodos por defecto")
		return nil
	}

	c.mu.Lock()
	c.methods = loaded
	c.mu.Unlock()

	log.Printf("✅ %d métodos de pago cargados en cache", len(loaded))
	for _, pm := range loaded {
		log.Printf("   - %s (%s)", pm.Name, pm.Code)
	}

	return nil
}

// IsValid indica si el código corresponde a un método de pago aceptado
func (c *PaymentMethodCache) IsValid(code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.methods[code]
	return ok
}

// GetName obtiene el nombre de un método de pago por su código
func (c *PaymentMethodCache) GetName(code string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pm, ok := c.methods[code]
	if !ok {
		return "Desconocido"
	}
	return pm.Name
}
