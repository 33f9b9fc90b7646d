package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"item-catalog/controllers"
	"item-catalog/infra"
	"item-catalog/middlewares"
	"item-catalog/models"
	"item-catalog/repositories"
	"item-catalog/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg *infra.Config) *gin.Engine {
	categoryRepository := repositories.NewCategoryRepository(db)
	itemRepository := repositories.NewItemRepository(db)
	userRepository := repositories.NewUserRepository(db)

	catalogService := services.NewCatalogService(categoryRepository, itemRepository, userRepository)
	authService := services.NewAuthService(services.NewProviderRegistry(cfg), userRepository)

	pageController := controllers.NewPageController(catalogService)
	categoryController := controllers.NewCategoryController(catalogService)
	itemController := controllers.NewItemController(catalogService)
	apiController := controllers.NewAPIController(catalogService)
	authController := controllers.NewAuthController(authService)

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("itemcatalog", store))

	r.GET("/", pageController.Feed)
	r.GET("/feed", pageController.Feed)
	r.GET("/users/list", pageController.UserList)

	apiRouter := r.Group("/api")
	apiRouter.Use(cors.Default())
	apiRouter.GET("/categories", apiController.ListCategories)
	apiRouter.GET("/categories.json", apiController.ListCategories)
	apiRouter.GET("/category/:id", apiController.GetCategory)
	apiRouter.GET("/item/:id", apiController.GetItem)

	r.GET("/category/:id", categoryController.Show)
	r.GET("/category/:id/:itemId", itemController.Show)

	catalogRouterWithAuth := r.Group("/category", middlewares.RequireLogin())
	catalogRouterWithAuth.GET("/new", categoryController.NewForm)
	catalogRouterWithAuth.POST("/new", categoryController.Create)
	catalogRouterWithAuth.GET("/:id/edit", categoryController.EditForm)
	catalogRouterWithAuth.POST("/:id/edit", categoryController.Update)
	catalogRouterWithAuth.GET("/:id/delete", categoryController.Delete)
	catalogRouterWithAuth.GET("/:id/new", itemController.NewForm)
	catalogRouterWithAuth.POST("/:id/new", itemController.Create)
	catalogRouterWithAuth.GET("/:id/:itemId/edit", itemController.EditForm)
	catalogRouterWithAuth.POST("/:id/:itemId/edit", itemController.Update)
	catalogRouterWithAuth.GET("/:id/:itemId/delete", itemController.Delete)

	r.GET("/login", authController.ShowLogin)
	r.GET("/login/loggedin", authController.LoggedIn)
	r.GET("/login/:provider", authController.BeginLogin)
	r.GET("/login/:provider/authorized", authController.Callback)
	r.GET("/logout", authController.Logout)

	r.NoRoute(pageController.NotFound)

	return r
}

func main() {
	infra.Initialize()

	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db := infra.SetupDB(cfg)
	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Item{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	r := setupRouter(db, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
