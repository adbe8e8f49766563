package main

import (
	"log"
	"net/http"
	"os"

	"foodgram-backend/config"
	"foodgram-backend/handlers"
	"foodgram-backend/helper"
	"foodgram-backend/middleware"
	"foodgram-backend/repositories"
	"foodgram-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Initialize database
	db := config.InitDB()

	// Initialize request validation with translated messages
	validate := validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		logger.Fatal("Failed to register validation translations", zap.Error(err))
	}
	httpHelper := &helper.HTTPHelper{Validate: validate, Translator: translator}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	recipeRepo := repositories.NewRecipeRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	ingredientRepo := repositories.NewIngredientRepository(db)
	relationRepo := repositories.NewRelationRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	recipeService := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo)
	tagService := services.NewTagService(tagRepo)
	ingredientService := services.NewIngredientService(ingredientRepo)
	relationService := services.NewRelationService(relationRepo, recipeRepo, userRepo)
	shoppingListService := services.NewShoppingListService(recipeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	recipeHandler := handlers.NewRecipeHandler(recipeService, relationService, shoppingListService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, httpHelper)
	userHandler := handlers.NewUserHandler(relationService, httpHelper)

	// Setup router
	router := gin.Default()
	router.Use(middleware.RequestLogger(logger))

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Recipes
			recipes := protected.Group("/recipes")
			{
				recipes.POST("", recipeHandler.CreateRecipe)
				recipes.GET("", recipeHandler.GetRecipes)
				recipes.GET("/download_shopping_cart", recipeHandler.DownloadShoppingCart)
				recipes.GET("/:id", recipeHandler.GetRecipe)
				recipes.PUT("/:id", recipeHandler.UpdateRecipe)
				recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
				recipes.POST("/:id/favorite", recipeHandler.AddFavorite)
				recipes.DELETE("/:id/favorite", recipeHandler.RemoveFavorite)
				recipes.POST("/:id/shopping_cart", recipeHandler.AddToCart)
				recipes.DELETE("/:id/shopping_cart", recipeHandler.RemoveFromCart)
			}

			// Subscriptions
			users := protected.Group("/users")
			{
				users.GET("/subscriptions", userHandler.GetSubscriptions)
				users.POST("/:id/subscribe", userHandler.Subscribe)
				users.DELETE("/:id/subscribe", userHandler.Unsubscribe)
			}

			// Tags
			tags := protected.Group("/tags")
			{
				tags.POST("", tagHandler.CreateTag)
				tags.GET("", tagHandler.GetTags)
				tags.GET("/:id", tagHandler.GetTag)
			}

			// Ingredients
			ingredients := protected.Group("/ingredients")
			{
				ingredients.GET("", ingredientHandler.GetIngredients)
				ingredients.GET("/:id", ingredientHandler.GetIngredient)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("Server starting", zap.String("port", port))
	log.Fatal(http.ListenAndServe(":"+port, router))
}
