// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/m-sowraj/alkarahm-admin/internal/config"
	"github.com/m-sowraj/alkarahm-admin/internal/handlers"
	"github.com/m-sowraj/alkarahm-admin/internal/middleware"
	"github.com/m-sowraj/alkarahm-admin/internal/services"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage service")
	}

	authService := services.NewAuthService(db, cfg)
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	orderService := services.NewOrderService(db)
	userService := services.NewUserService(db)
	blogService := services.NewBlogService(db)
	enquiryService := services.NewEnquiryService(db)
	reviewService := services.NewReviewService(db)
	settingsService := services.NewSettingsService(db)
	exportService := services.NewExportService(db)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService)
	userHandler := handlers.NewUserHandler(userService)
	blogHandler := handlers.NewBlogHandler(blogService)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, storageService)
	exportHandler := handlers.NewExportHandler(exportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
			auth.PUT("/password", middleware.AuthRequired(), authHandler.ChangePassword)
		}

		// Public storefront routes
		v1.GET("/categories/active", categoryHandler.GetActiveCategories)
		v1.GET("/products/featured", productHandler.GetFeaturedProducts)
		v1.GET("/products/:id/reviews", reviewHandler.GetProductReviews)
		v1.GET("/settings", settingsHandler.GetSettings)
		v1.POST("/reviews", reviewHandler.CreateReview)
		v1.POST("/enquiries", middleware.EnquiryRateLimit(), enquiryHandler.CreateEnquiry)
		v1.POST("/orders", middleware.OptionalAuth(), orderHandler.CreateOrder)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			// Dashboard
			admin.GET("/dashboard/stats", dashboardHandler.GetStats)

			// Category management
			categories := admin.Group("/categories")
			{
				categories.GET("", categoryHandler.GetCategories)
				categories.POST("", categoryHandler.CreateCategory)
				categories.GET("/:id", categoryHandler.GetCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.PATCH("/:id/status", categoryHandler.SetCategoryStatus)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			// Product management
			products := admin.Group("/products")
			{
				products.GET("", productHandler.GetProducts)
				products.POST("", productHandler.CreateProduct)
				products.POST("/upload-images", middleware.UploadRateLimit(), productHandler.UploadProductImages)
				products.GET("/:id", productHandler.GetProduct)
				products.PUT("/:id", productHandler.UpdateProduct)
				products.PATCH("/:id/status", productHandler.SetProductStatus)
				products.PATCH("/:id/featured", productHandler.SetProductFeatured)
				products.PATCH("/:id/variants/:variantId/status", productHandler.SetVariantStatus)
				products.DELETE("/:id", productHandler.DeleteProduct)
			}

			// Order management
			orders := admin.Group("/orders")
			{
				orders.GET("", orderHandler.GetOrders)
				orders.GET("/:id", orderHandler.GetOrder)
				orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
			}

			// User management
			users := admin.Group("/users")
			{
				users.GET("", userHandler.GetUsers)
				users.POST("", userHandler.CreateUser)
				users.GET("/:id", userHandler.GetUser)
				users.PUT("/:id", userHandler.UpdateUser)
				users.PATCH("/:id/notifications", userHandler.SetUserNotifications)
				users.DELETE("/:id", middleware.SuperAdminRequired(), userHandler.DeleteUser)
			}

			// Blog management
			blogs := admin.Group("/blogs")
			{
				blogs.GET("", blogHandler.GetBlogPosts)
				blogs.POST("", blogHandler.CreateBlogPost)
				blogs.GET("/:id", blogHandler.GetBlogPost)
				blogs.PUT("/:id", blogHandler.UpdateBlogPost)
				blogs.DELETE("/:id", blogHandler.DeleteBlogPost)
			}

			// Enquiry management
			enquiries := admin.Group("/enquiries")
			{
				enquiries.GET("", enquiryHandler.GetEnquiries)
				enquiries.GET("/:id", enquiryHandler.GetEnquiry)
				enquiries.DELETE("/:id", enquiryHandler.DeleteEnquiry)
			}

			// Review moderation
			reviews := admin.Group("/reviews")
			{
				reviews.GET("", reviewHandler.GetReviews)
				reviews.PATCH("/:id/approval", reviewHandler.SetReviewApproval)
				reviews.DELETE("/:id", reviewHandler.DeleteReview)
			}

			// Store settings
			settings := admin.Group("/settings")
			{
				settings.GET("", settingsHandler.GetSettings)
				settings.PUT("", settingsHandler.UpdateSettings)
				settings.POST("/upload", middleware.UploadRateLimit(), settingsHandler.UploadSettingsImage)
			}

			// Excel exports
			export := admin.Group("/export")
			{
				export.GET("/products", exportHandler.ExportProducts)
				export.GET("/orders", exportHandler.ExportOrders)
				export.GET("/users", exportHandler.ExportUsers)
				export.GET("/categories", exportHandler.ExportCategories)
				export.GET("/blogs", exportHandler.ExportBlogPosts)
			}

			// Generic image upload for category, blog and settings forms
			uploads := admin.Group("/uploads")
			uploads.Use(middleware.UploadRateLimit())
			{
				uploads.POST("/:folder", uploadHandler.UploadImage)
				uploads.DELETE("", uploadHandler.DeleteImage)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
