package routes

import (
	"github.com/Wezzer42/littlelemon/configs"
	"github.com/Wezzer42/littlelemon/controllers"
	"github.com/Wezzer42/littlelemon/entity"
	"github.com/Wezzer42/littlelemon/middlewares"
	"github.com/Wezzer42/littlelemon/repository"
	"github.com/Wezzer42/littlelemon/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	resolver := services.NewRoleResolver(userRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	groupCtrl := controllers.NewGroupController(userRepo)
	menuCtrl := controllers.NewMenuController(menuRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	rl := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	authed := []gin.HandlerFunc{
		middlewares.AuthMiddleware(cfg.JWTSecret),
		middlewares.ResolveRole(resolver),
	}
	managerOnly := middlewares.RequireRole(entity.RoleManager)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", append(authed, authCtrl.Me)...)

	// Catalog: อ่าน public, เขียน manager
	r.GET("/api/menu-items", menuCtrl.List)
	r.GET("/api/menu-items/:id", menuCtrl.Detail)

	api := r.Group("/api", authed...)
	{
		api.GET("/categories", menuCtrl.Categories)
		api.POST("/categories", managerOnly, menuCtrl.CreateCategory)

		api.POST("/menu-items", managerOnly, menuCtrl.Create)
		api.PUT("/menu-items/:id", managerOnly, menuCtrl.Update)
		api.PATCH("/menu-items/:id", managerOnly, menuCtrl.Update)
		api.DELETE("/menu-items/:id", managerOnly, menuCtrl.Delete)

		// Group management (ป้อนข้อมูลให้ role resolver)
		groups := api.Group("/groups", managerOnly)
		{
			groups.GET("/manager/users", groupCtrl.List(entity.GroupManager))
			groups.POST("/manager/users", groupCtrl.Add(entity.GroupManager))
			groups.DELETE("/manager/users/:userId", groupCtrl.Remove(entity.GroupManager))

			groups.GET("/delivery-crew/users", groupCtrl.List(entity.GroupDeliveryCrew))
			groups.POST("/delivery-crew/users", groupCtrl.Add(entity.GroupDeliveryCrew))
			groups.DELETE("/delivery-crew/users/:userId", groupCtrl.Remove(entity.GroupDeliveryCrew))
		}

		// Cart (scope "cart")
		cart := api.Group("/cart", rl.Scope("cart"))
		{
			cart.GET("/menu-items", cartCtrl.Get)
			cart.POST("/menu-items", cartCtrl.Add)
			cart.DELETE("/menu-items", cartCtrl.Clear)
		}

		// Orders (scope "orders") — สิทธิ์รายบทบาทตัดสินใน service
		orders := api.Group("/orders", rl.Scope("orders"))
		{
			orders.GET("", orderCtrl.List)
			orders.POST("", orderCtrl.Create)
			orders.GET("/:id", orderCtrl.Detail)
			orders.PUT("/:id", orderCtrl.Update)
			orders.PATCH("/:id", orderCtrl.Update)
			orders.DELETE("/:id", orderCtrl.Delete)
		}
	}
}
