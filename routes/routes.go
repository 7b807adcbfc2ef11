package routes

import (
	"lemonapi/configs"
	"lemonapi/controllers"
	"lemonapi/middlewares"
	"lemonapi/repository"
	"lemonapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo)
	groupSvc := services.NewGroupService(groupRepo, userRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(db, authSvc, cfg)
	menuCtrl := controllers.NewMenuController(db)
	catCtrl := controllers.NewCategoryController(db)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	managerGroupCtrl := controllers.NewGroupController(groupSvc, repository.GroupManager)
	crewGroupCtrl := controllers.NewGroupController(groupSvc, repository.GroupDeliveryCrew)

	auth := middlewares.AuthMiddleware(cfg, userRepo, groupSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", auth, authCtrl.Me)

	// Categories (open)
	r.GET("/category", catCtrl.List)
	r.POST("/category", catCtrl.Create)

	// Menu items: read for every authenticated user, mutation manager only
	menu := r.Group("/menu-items", auth)
	{
		menu.GET("", menuCtrl.List)
		menu.GET("/:id", menuCtrl.Get)

		managerOnly := middlewares.RequireRole(services.RoleManager)
		menu.POST("", managerOnly, menuCtrl.Create)
		menu.PUT("/:id", managerOnly, menuCtrl.Update)
		menu.PATCH("/:id", managerOnly, menuCtrl.Patch)
		menu.DELETE("/:id", managerOnly, menuCtrl.Delete)
	}

	// Cart (own lines only)
	cart := r.Group("/cart/menu-items", auth)
	{
		cart.GET("", cartCtrl.List)
		cart.POST("", cartCtrl.Add)
		cart.DELETE("", cartCtrl.Clear)
		cart.DELETE("/:id", cartCtrl.Remove)
	}

	// Orders: visibility and mutation guards live in the service
	orders := r.Group("/orders", auth)
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", orderCtrl.Place)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id", orderCtrl.Update)
		orders.PATCH("/:id", orderCtrl.Patch)
		orders.DELETE("/:id", orderCtrl.Delete)
	}

	// Group membership admin (staff only)
	staff := middlewares.RequireStaff()
	manager := r.Group("/groups/manager/users", auth, staff)
	{
		manager.GET("", managerGroupCtrl.List)
		manager.POST("", managerGroupCtrl.Add)
		manager.PUT("/:id", managerGroupCtrl.Put)
		manager.DELETE("/:id", managerGroupCtrl.Remove)
	}
	crew := r.Group("/groups/delivery-crew/users", auth, staff)
	{
		crew.GET("", crewGroupCtrl.List)
		crew.POST("", crewGroupCtrl.Add)
		crew.PUT("/:id", crewGroupCtrl.Put)
		crew.DELETE("/:id", crewGroupCtrl.Remove)
	}
}
