package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JosueLm7/PanaderiaDelicia/src/profile/application/request"
	"github.com/JosueLm7/PanaderiaDelicia/src/profile/application/usecase"
	"github.com/JosueLm7/PanaderiaDelicia/src/profile/domain/entity"
)

// ProfileController maneja las peticiones HTTP de perfiles
type ProfileController struct {
	getProfileUC  *usecase.GetProfileUseCase
	saveProfileUC *usecase.SaveProfileUseCase
}

// NewProfileController crea una nueva instancia del controlador
func NewProfileController(getProfileUC *usecase.GetProfileUseCase, saveProfileUC *usecase.SaveProfileUseCase) *ProfileController {
	return &ProfileController{
		getProfileUC:  getProfileUC,
		saveProfileUC: saveProfileUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProfileController) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", c.GetProfile)
		profile.PUT("", c.SaveProfile)
	}

	log.Println("Rutas Profile disponibles:")
	log.Println("  GET    /api/v1/profile?user_id=<id>")
	log.Println("  PUT    /api/v1/profile")
}

// GetProfile retorna el perfil de un usuario
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	if c.getProfileUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Profiles not available (database not configured)",
		})
		return
	}

	userID := ctx.Query("user_id")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	profile, err := c.getProfileUC.Execute(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, entity.ErrProfileNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}

		log.Printf("Error fetching profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching profile"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// SaveProfile crea o actualiza el perfil de un usuario
func (c *ProfileController) SaveProfile(ctx *gin.Context) {
	if c.saveProfileUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Profiles not available (database not configured)",
		})
		return
	}

	var req request.SaveProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	profile, err := c.saveProfileUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrUserIDRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Printf("Error saving profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving profile"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
