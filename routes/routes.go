package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"polygen-backend/controllers"
	"polygen-backend/middleware"
	"polygen-backend/token"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
// Rute baca publik tidak melewati guard admin; semua operasi tulis
// berada di bawah /api/admin yang dilindungi RequireAdmin.
func Setup(ctrl *controllers.Controller, maker *token.Maker, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "https://polygen.co"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	api := r.Group("/api")
	{
		// Rute utilitas
		api.GET("/health", ctrl.HealthCheck)

		// Rute otentikasi
		api.POST("/login", ctrl.Login)
		api.POST("/logout", ctrl.Logout)

		// Rute baca publik
		api.GET("/products", ctrl.GetProducts)
		api.GET("/products/:slug", ctrl.GetProduct)
		api.GET("/categories", ctrl.GetCategories)
		api.GET("/categories/tree", ctrl.GetCategoryTree)
		api.GET("/categories/:slug/breadcrumb", ctrl.GetCategoryBreadcrumb)
		api.GET("/blogs", ctrl.GetBlogs)
		api.GET("/blogs/:slug", ctrl.GetBlog)

		// Formulir kontak
		api.POST("/contact", ctrl.SubmitContact)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(maker))
	{
		admin.GET("/me", ctrl.Me)
		admin.GET("/stats", ctrl.GetStats)

		admin.POST("/categories", ctrl.CreateCategory)
		admin.PUT("/categories/:id", ctrl.UpdateCategory)
		admin.DELETE("/categories/:id", ctrl.DeleteCategory)

		admin.POST("/products", ctrl.CreateProduct)
		admin.PUT("/products/:id", ctrl.UpdateProduct)
		admin.DELETE("/products/:id", ctrl.DeleteProduct)
		admin.POST("/products/import", ctrl.ImportProducts)

		admin.GET("/blogs", ctrl.GetAllBlogs)
		admin.POST("/blogs", ctrl.CreateBlog)
		admin.PUT("/blogs/:id", ctrl.UpdateBlog)
		admin.DELETE("/blogs/:id", ctrl.DeleteBlog)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Endpoint not found"})
	})
	return r
}
