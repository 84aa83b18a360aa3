package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/configs"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/controllers"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/middlewares"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/repository"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/services"
)

// Register wires the whole component graph: repositories into services,
// services into controllers, controllers onto the three capability tiers
// (anonymous, authenticated user, administrator).
func Register(r *gin.Engine, db *gorm.DB, cfg *configs.Config, cache *middlewares.ResponseCache) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	hoursRepo := repository.NewHoursRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restaurantSvc := services.NewRestaurantService(restaurantRepo, reviewRepo)
	userSvc := services.NewUserService(userRepo, reviewRepo, favoriteRepo, restaurantRepo)
	restaurantAdminSvc := services.NewRestaurantAdminService(db, restaurantRepo, hoursRepo, reviewRepo, favoriteRepo)
	adminSvc := services.NewAdminService(statsRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restaurantCtrl := controllers.NewRestaurantController(restaurantSvc, cache)
	userCtrl := controllers.NewUserController(userSvc, cache)
	restaurantAdminCtrl := controllers.NewRestaurantAdminController(restaurantAdminSvc, cache)
	adminCtrl := controllers.NewAdminController(adminSvc)

	authLimiter := middlewares.NewRateLimiter(cfg.AuthRateLimit, "RATE_LIMIT_AUTH")

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Restaurants API",
			"version": "1.0.0",
			"health":  "/health",
			"endpoints": gin.H{
				"auth":        "/auth",
				"restaurants": "/restaurants",
				"me":          "/me",
				"admin":       "/admin",
			},
		})
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Auth (public, tighter rate budget)
	auth := r.Group("/auth", authLimiter.Middleware())
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}

	// Public reads, cached; the review write shares the path prefix but
	// never passes through the cache (non-GET).
	restaurants := r.Group("/restaurants", cache.Middleware())
	{
		restaurants.GET("", restaurantCtrl.List)
		restaurants.GET("/:id", restaurantCtrl.Detail)
		restaurants.GET("/:id/reviews", restaurantCtrl.ListReviews)
		restaurants.POST("/:id/reviews", middlewares.RequireAuth(cfg.JWTSecret), restaurantCtrl.CreateReview)
	}

	// Self-scoped surface
	me := r.Group("/me", middlewares.RequireAuth(cfg.JWTSecret))
	{
		me.GET("", userCtrl.Profile)
		me.GET("/reviews", userCtrl.ListReviews)
		me.PUT("/reviews/:id", userCtrl.UpdateReview)
		me.DELETE("/reviews/:id", userCtrl.DeleteReview)
		me.GET("/favorites", userCtrl.ListFavorites)
		me.POST("/favorites/:id", userCtrl.AddFavorite)
		me.DELETE("/favorites/:id", userCtrl.RemoveFavorite)
	}

	// Administrator surface
	admin := r.Group("/admin", middlewares.RequireAuth(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.POST("/restaurants", restaurantAdminCtrl.Create)
		admin.PUT("/restaurants/:id", restaurantAdminCtrl.Update)
		admin.DELETE("/restaurants/:id", restaurantAdminCtrl.Delete)
		admin.GET("/stats", adminCtrl.Stats)
	}
}
