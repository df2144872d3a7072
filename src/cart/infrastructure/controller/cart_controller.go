package controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/JosueLm7/PanaderiaDelicia/src/cart/application/request"
	"github.com/JosueLm7/PanaderiaDelicia/src/cart/application/usecase"
	"github.com/JosueLm7/PanaderiaDelicia/src/cart/domain/entity"
)

const (
	sessionName = "panaderia_delicia"
	sessionKey  = "cart_id"
)

// CartController maneja las peticiones HTTP del carrito.
// El carrito pertenece a la sesión: una cookie lleva el cart_id y el estado
// vive del lado del servidor.
type CartController struct {
	sessions         sessions.Store
	getCartUC        *usecase.GetCartUseCase
	addItemUC        *usecase.AddItemUseCase
	updateQuantityUC *usecase.UpdateQuantityUseCase
	removeItemUC     *usecase.RemoveItemUseCase
	clearCartUC      *usecase.ClearCartUseCase
}

// NewCartController crea una nueva instancia del controlador
func NewCartController(
	sessionStore sessions.Store,
	getCartUC *usecase.GetCartUseCase,
	addItemUC *usecase.AddItemUseCase,
	updateQuantityUC *usecase.UpdateQuantityUseCase,
	removeItemUC *usecase.RemoveItemUseCase,
	clearCartUC *usecase.ClearCartUseCase,
) *CartController {
	return &CartController{
		sessions:         sessionStore,
		getCartUC:        getCartUC,
		addItemUC:        addItemUC,
		updateQuantityUC: updateQuantityUC,
		removeItemUC:     removeItemUC,
		clearCartUC:      clearCartUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CartController) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", c.GetCart)
		cart.POST("/items", c.AddItem)
		cart.PUT("/items/:product_id", c.UpdateQuantity)
		cart.DELETE("/items/:product_id", c.RemoveItem)
		cart.DELETE("", c.ClearCart)
	}

	log.Println("Rutas Cart disponibles:")
	log.Println("  GET    /api/v1/cart")
	log.Println("  POST   /api/v1/cart/items")
	log.Println("  PUT    /api/v1/cart/items/:product_id")
	log.Println("  DELETE /api/v1/cart/items/:product_id")
	log.Println("  DELETE /api/v1/cart")
}

// GetCart retorna el carrito de la sesión (vacío si aún no existe)
func (c *CartController) GetCart(ctx *gin.Context) {
	cartID, err := c.cartID(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading session"})
		return
	}

	cart, err := c.getCartUC.Execute(ctx.Request.Context(), cartID)
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching cart"})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// AddItem agrega un producto al carrito de la sesión
func (c *CartController) AddItem(ctx *gin.Context) {
	cartID, err := c.cartID(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading session"})
		return
	}

	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	cart, err := c.addItemUC.Execute(ctx.Request.Context(), cartID, &req)
	if err != nil {
		switch err {
		case entity.ErrProductIDRequired, entity.ErrProductNameRequired, entity.ErrInvalidPrice:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error adding item to cart: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating cart"})
		}
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// UpdateQuantity cambia la cantidad de una línea (<= 0 la elimina)
func (c *CartController) UpdateQuantity(ctx *gin.Context) {
	cartID, err := c.cartID(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading session"})
		return
	}

	productID, err := strconv.Atoi(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req request.UpdateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	cart, err := c.updateQuantityUC.Execute(ctx.Request.Context(), cartID, productID, req.Quantity)
	if err != nil {
		log.Printf("Error updating cart quantity: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating cart"})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// RemoveItem quita una línea del carrito
func (c *CartController) RemoveItem(ctx *gin.Context) {
	cartID, err := c.cartID(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading session"})
		return
	}

	productID, err := strconv.Atoi(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	cart, err := c.removeItemUC.Execute(ctx.Request.Context(), cartID, productID)
	if err != nil {
		log.Printf("Error removing item from cart: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating cart"})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// ClearCart vacía el carrito de la sesión
func (c *CartController) ClearCart(ctx *gin.Context) {
	cartID, err := c.cartID(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading session"})
		return
	}

	cart, err := c.clearCartUC.Execute(ctx.Request.Context(), cartID)
	if err != nil {
		log.Printf("Error clearing cart: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error clearing cart"})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// cartID obtiene el cart_id de la sesión, creando sesión y cart_id si hace falta
func (c *CartController) cartID(ctx *gin.Context) (string, error) {
	session, err := c.sessions.Get(ctx.Request, sessionName)
	if err != nil {
		// Cookie corrupta o clave rotada: se arranca una sesión nueva
		log.Printf("Error decoding session, starting a new one: %v", err)
		session, _ = c.sessions.New(ctx.Request, sessionName)
	}

	if id, ok := session.Values[sessionKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.New().String()
	session.Values[sessionKey] = id
	if err := session.Save(ctx.Request, ctx.Writer); err != nil {
		return "", err
	}

	return id, nil
}
