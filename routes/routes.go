package routes

import (
	"github.com/gin-gonic/gin"

	"tiffin-marketplace-api/handlers"
	"tiffin-marketplace-api/middleware"
	"tiffin-marketplace-api/models"
	"tiffin-marketplace-api/services"
	"tiffin-marketplace-api/store"
)

func SetupRoutes(r *gin.Engine, s *store.Store) {
	adminSvc := services.NewAdminService(s)
	customerSvc := services.NewCustomerService(s)
	driverSvc := services.NewDriverService(s)

	adminH := handlers.NewAdminHandler(adminSvc)
	customerH := handlers.NewCustomerHandler(customerSvc)
	driverH := handlers.NewDriverHandler(driverSvc)
	publicH := handlers.NewPublicHandler(s)

	// ── Public storefront ──────────────────────────────────────────
	public := r.Group("/public")
	{
		public.GET("/tiffins", publicH.Tiffins)
		public.GET("/weekly-menu", publicH.WeeklyMenu)
		public.GET("/plans", publicH.Plans)
		public.GET("/promotions", publicH.Promotions)
		public.GET("/reviews", publicH.Reviews)
		public.GET("/payment-settings", publicH.PaymentSettings)
		public.GET("/integration-settings", publicH.IntegrationSettings)
		public.GET("/state-machine", publicH.StateMachine)
	}

	// ── Admin ──────────────────────────────────────────────────────
	admin := r.Group("/admin")
	{
		admin.POST("/login", adminH.Login)
		admin.POST("/logout", adminH.Logout)
	}
	adminAuth := r.Group("/admin")
	adminAuth.Use(middleware.AuthRequired(s, models.RoleAdmin))
	{
		adminAuth.GET("/users", adminH.ListUsers)
		adminAuth.POST("/users", adminH.CreateUser)
		adminAuth.PATCH("/users/:id", adminH.UpdateUser)
		adminAuth.DELETE("/users/:id", adminH.DeleteUser)

		adminAuth.GET("/tiffins", adminH.ListTiffins)
		adminAuth.POST("/tiffins/upsert", adminH.UpsertTiffin)
		adminAuth.DELETE("/tiffins/:id", adminH.DeleteTiffin)
		adminAuth.GET("/tiffins/weekly/menu", adminH.GetWeeklyMenu)
		adminAuth.POST("/tiffins/weekly/menu", adminH.SetWeeklyMenu)

		adminAuth.GET("/plans", adminH.ListPlans)
		adminAuth.POST("/plans/upsert", adminH.UpsertPlan)
		adminAuth.DELETE("/plans/:id", adminH.DeletePlan)

		adminAuth.GET("/promotions", adminH.ListPromotions)
		adminAuth.POST("/promotions/upsert", adminH.UpsertPromotion)
		adminAuth.DELETE("/promotions/:id", adminH.DeletePromotion)

		adminAuth.GET("/reviews", adminH.ListReviews)
		adminAuth.POST("/reviews/upsert", adminH.UpsertReview)
		adminAuth.DELETE("/reviews/:id", adminH.DeleteReview)

		adminAuth.GET("/orders", adminH.ListOrders)
		adminAuth.POST("/orders/update", adminH.UpdateOrder)
		adminAuth.GET("/orders/deliveries", adminH.ListDeliveries)
		adminAuth.POST("/orders/deliveries/update", adminH.UpdateDelivery)

		adminAuth.GET("/settings/payment", adminH.GetPaymentSettings)
		adminAuth.POST("/settings/payment", adminH.UpdatePaymentSettings)
		adminAuth.GET("/settings/integrations", adminH.GetIntegrationSettings)
		adminAuth.POST("/settings/integrations", adminH.UpdateIntegrationSettings)
	}

	// ── Customer ───────────────────────────────────────────────────
	customer := r.Group("/customer")
	{
		customer.POST("/signup", customerH.SignUp)
		customer.POST("/verify-otp", customerH.VerifyOtp)
		customer.POST("/login", customerH.Login)
		// Order placement works for guests too; a session token upgrades
		// the order to an attributed one.
		customer.POST("/order", customerH.PlaceOrder)
		customer.GET("/public/data", customerH.PublicData)
	}
	customerAuth := r.Group("/customer")
	customerAuth.Use(middleware.AuthRequired(s, models.RoleCustomer))
	{
		customerAuth.GET("/me", customerH.Me)
		customerAuth.GET("/me/orders", customerH.MyOrders)
		customerAuth.POST("/me/address", customerH.AddAddress)
	}

	// ── Driver ─────────────────────────────────────────────────────
	driver := r.Group("/driver")
	{
		driver.POST("/login", driverH.Login)
	}
	driverAuth := r.Group("/driver")
	driverAuth.Use(middleware.AuthRequired(s, models.RoleDriver))
	{
		driverAuth.GET("/assignments", driverH.Assignments)
		driverAuth.PATCH("/assignments/status", driverH.UpdateDeliveryStatus)
	}
}
