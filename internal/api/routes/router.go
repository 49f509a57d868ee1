package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/linskybing/records-go/internal/api/handlers"
	"github.com/linskybing/records-go/internal/api/middleware"
	"github.com/linskybing/records-go/internal/application"
	"github.com/linskybing/records-go/internal/repository"
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos, svc *application.Services) {
	h := handlers.New(svc, repos, r)
	auth := middleware.NewAuth(repos)

	r.GET("/api/hello", handlers.Hello)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/client")
	api.POST("/session", h.Session.Login)

	protected := api.Group("/")
	protected.Use(auth.SessionRequired())
	{
		protected.DELETE("/session", h.Session.Logout)

		records := protected.Group("/records")
		{
			records.POST("", h.Record.Create)
			records.GET("/:recordId", h.Record.Get)
			records.PUT("/:recordId", h.Record.UpdateStatus)
			records.GET("/:recordId/comments", h.Comment.List)
			records.POST("/:recordId/comments", h.Comment.Create)
			records.GET("/:recordId/files/:itemId", h.File.Download)
			records.GET("/:recordId/files/:itemId/thumbnail", h.File.DownloadThumbnail)
		}

		views := protected.Group("/record-views")
		{
			views.GET("/tomeActive", h.RecordView.TomeActive)
			views.GET("/allActive", h.RecordView.AllActive)
			views.GET("/allClosed", h.RecordView.AllClosed)
			views.GET("/mineActive", h.RecordView.MineActive)
		}

		protected.GET("/categories", h.Category.List)
		protected.POST("/files", h.File.Upload)

		audit := protected.Group("/audit/logs")
		{
			audit.GET("", h.Audit.GetAuditLogs)
		}
	}
}
