package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JosueLm7/PanaderiaDelicia/src/catalog/application/usecase"
)

// ProductController maneja las peticiones HTTP del catálogo
type ProductController struct {
	listProductsUC *usecase.ListProductsUseCase
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(listProductsUC *usecase.ListProductsUseCase) *ProductController {
	return &ProductController{
		listProductsUC: listProductsUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/products", c.ListProducts)

	log.Println("Rutas Catalog disponibles:")
	log.Println("  GET    /api/v1/products")
}

// ListProducts retorna el catálogo activo ordenado por id
func (c *ProductController) ListProducts(ctx *gin.Context) {
	if c.listProductsUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	products, err := c.listProductsUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching products"})
		return
	}

	ctx.JSON(http.StatusOK, products)
}
