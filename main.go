package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/shopspring/decimal"

	apiConfig "github.com/JosueLm7/PanaderiaDelicia/src/api/config"
	cartUseCase "github.com/JosueLm7/PanaderiaDelicia/src/cart/application/usecase"
	cartController "github.com/JosueLm7/PanaderiaDelicia/src/cart/infrastructure/controller"
	cartStore "github.com/JosueLm7/PanaderiaDelicia/src/cart/infrastructure/store"
	catalogUseCase "github.com/JosueLm7/PanaderiaDelicia/src/catalog/application/usecase"
	catalogController "github.com/JosueLm7/PanaderiaDelicia/src/catalog/infrastructure/controller"
	catalogPersistence "github.com/JosueLm7/PanaderiaDelicia/src/catalog/infrastructure/persistence"
	orderUseCase "github.com/JosueLm7/PanaderiaDelicia/src/order/application/usecase"
	orderCache "github.com/JosueLm7/PanaderiaDelicia/src/order/infrastructure/cache"
	orderController "github.com/JosueLm7/PanaderiaDelicia/src/order/infrastructure/controller"
	orderPersistence "github.com/JosueLm7/PanaderiaDelicia/src/order/infrastructure/persistence"
	paymentUseCase "github.com/JosueLm7/PanaderiaDelicia/src/payment/application/usecase"
	profileUseCase "github.com/JosueLm7/PanaderiaDelicia/src/profile/application/usecase"
	profileController "github.com/JosueLm7/PanaderiaDelicia/src/profile/infrastructure/controller"
	profilePersistence "github.com/JosueLm7/PanaderiaDelicia/src/profile/infrastructure/persistence"
	sharedConfig "github.com/JosueLm7/PanaderiaDelicia/src/shared/infrastructure/config"
	sharedMetrics "github.com/JosueLm7/PanaderiaDelicia/src/shared/infrastructure/metrics"
	sharedPersistence "github.com/JosueLm7/PanaderiaDelicia/src/shared/infrastructure/persistence"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 Panadería Delicia - Storefront Service - Iniciando...")

	// Cargar .env si existe
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Los montos viajan como números JSON, no como strings
	decimal.MarshalJSONWithoutQuotes = true

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	var serverMetrics *sharedMetrics.ServerMetrics
	if os.Getenv("PROMETHEUS_ENABLED") == "true" {
		log.Println("Registering /metrics endpoint")
		serverMetrics = sharedMetrics.NewServerMetrics("storefront")
		router.GET("/metrics", gin.WrapH(sharedMetrics.Handler()))
		log.Println("/metrics endpoint registered successfully")
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Configurar CORS y middlewares compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		sharedCfg.AllowedOrigins = []string{origins}
	}
	sharedConfig.SetupSharedMiddleware(router, serverMetrics, sharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "panaderia_db")

	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a %s", dbName)

	// Conectar a la base de datos (opcional: sin DB queda carrito + health check)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (solo carrito y health check)")
		db = nil
	} else {
		defer db.Close()
		// Comprobar la conexión
		err = db.Ping()
		if err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (solo carrito y health check)")
			db = nil
		} else {
			log.Printf("✅ Conexión a %s establecida con éxito", dbName)
		}
	}

	// Aplicar migraciones si está habilitado
	if db != nil && os.Getenv("MIGRATIONS_ENABLED") == "true" {
		migrationsPath := getEnv("MIGRATIONS_PATH", "./migrations")
		if err := sharedPersistence.RunMigrations(db, migrationsPath); err != nil {
			log.Printf("⚠️  Advertencia: Error al aplicar migraciones: %v", err)
		} else {
			log.Println("✅ Migraciones aplicadas")
		}
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = getEnv("SERVICE_VERSION", "1.0.0")
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulos de la tienda
	setupCatalogModule(v1, db)
	setupCartModule(v1)
	setupOrderModule(v1, db, serverMetrics)
	setupProfileModule(v1, db)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor Panadería Delicia iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupCatalogModule configura el módulo Catalog
func setupCatalogModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Catalog...")

	var listProductsUC *catalogUseCase.ListProductsUseCase
	if db != nil {
		productRepo := catalogPersistence.NewProductPostgresRepository(db)
		listProductsUC = catalogUseCase.NewListProductsUseCase(productRepo)
	}

	catalogCtrl := catalogController.NewProductController(listProductsUC)
	catalogCtrl.RegisterRoutes(router)

	log.Println("Módulo Catalog configurado exitosamente")
}

// setupCartModule configura el módulo Cart (siempre disponible, no depende de la DB)
func setupCartModule(router *gin.RouterGroup) {
	log.Println("Configurando módulo Cart...")

	sessionStore := sessions.NewCookieStore([]byte(getEnv("SESSION_KEY", "panaderia-delicia-secret")))

	carts := cartStore.NewMemoryCartStore()
	cartCtrl := cartController.NewCartController(
		sessionStore,
		cartUseCase.NewGetCartUseCase(carts),
		cartUseCase.NewAddItemUseCase(carts),
		cartUseCase.NewUpdateQuantityUseCase(carts),
		cartUseCase.NewRemoveItemUseCase(carts),
		cartUseCase.NewClearCartUseCase(carts),
	)
	cartCtrl.RegisterRoutes(router)

	log.Println("Módulo Cart configurado exitosamente")
}

// setupOrderModule configura el módulo Order
func setupOrderModule(router *gin.RouterGroup, db *sql.DB, m *sharedMetrics.ServerMetrics) {
	log.Println("Configurando módulo Order...")

	// Cache de métodos de pago (arranca con los métodos por defecto)
	paymentMethods := orderCache.NewPaymentMethodCache()
	if db != nil {
		if err := paymentMethods.LoadFromDB(db); err != nil {
			log.Printf("⚠️  Warning: Could not load payment methods cache: %v", err)
		}
	}

	var createOrderUC *orderUseCase.CreateOrderUseCase
	var listOrdersUC *orderUseCase.ListOrdersUseCase
	var getOrderUC *orderUseCase.GetOrderUseCase
	if db != nil {
		orderRepo := orderPersistence.NewOrderPostgresRepository(db)
		createOrderUC = orderUseCase.NewCreateOrderUseCase(orderRepo, paymentMethods)
		listOrdersUC = orderUseCase.NewListOrdersUseCase(orderRepo)
		getOrderUC = orderUseCase.NewGetOrderUseCase(orderRepo)
	}

	// Pasarela simulada: aprueba todos los cargos con tarjeta
	processPaymentUC := paymentUseCase.NewProcessPaymentUseCase(paymentUseCase.AlwaysApprove{})

	orderCtrl := orderController.NewOrderController(createOrderUC, listOrdersUC, getOrderUC, processPaymentUC, m)
	orderCtrl.RegisterRoutes(router)

	log.Println("Módulo Order configurado exitosamente")
}

// setupProfileModule configura el módulo Profile
func setupProfileModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Profile...")

	var getProfileUC *profileUseCase.GetProfileUseCase
	var saveProfileUC *profileUseCase.SaveProfileUseCase
	if db != nil {
		profileRepo := profilePersistence.NewProfilePostgresRepository(db)
		getProfileUC = profileUseCase.NewGetProfileUseCase(profileRepo)
		saveProfileUC = profileUseCase.NewSaveProfileUseCase(profileRepo)
	}

	profileCtrl := profileController.NewProfileController(getProfileUC, saveProfileUC)
	profileCtrl.RegisterRoutes(router)

	log.Println("Módulo Profile configurado exitosamente")
}
