package api

import (
	"Campus/internal/admin"
	"Campus/internal/api/config"
	"Campus/internal/api/middleware"
	"Campus/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, serverCfg config.ServerConfig, sessionCfg config.SessionConfig) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})
	r.SetHTMLTemplate(admin.Templates())

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware(serverCfg.AllowedOrigins))
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})
		apiGroup.GET("/auth/verify", group.AuthHandler.Verify)

		// 公开读接口
		apiGroup.GET("/blogs", group.BlogHandler.List)
		apiGroup.GET("/blog/:id", group.BlogHandler.Get)
		apiGroup.GET("/notices", group.NoticeHandler.List)
		apiGroup.GET("/notice/:id", group.NoticeHandler.Get)
		apiGroup.GET("/thanks", group.ThanksHandler.List)
		apiGroup.GET("/thanks/:id", group.ThanksHandler.Get)
		apiGroup.GET("/folders", group.FolderHandler.List)
		apiGroup.GET("/folder/:id", group.FolderHandler.Get)

		authGroup := apiGroup.Group("")
		authGroup.Use(middleware.SessionMiddleware(sessionCfg))
		{
			authGroup.POST("/addBlog", group.BlogHandler.Create)
			authGroup.DELETE("/deleteBlog/:id", group.BlogHandler.Delete)
			authGroup.DELETE("/deleteBlog", group.BlogHandler.DeleteByBody)

			authGroup.POST("/addNotice", group.NoticeHandler.Create)
			authGroup.DELETE("/deleteNotice/:id", group.NoticeHandler.Delete)

			authGroup.POST("/addThanks", group.ThanksHandler.Create)
			authGroup.DELETE("/deleteThanks/:id", group.ThanksHandler.Delete)

			authGroup.POST("/addFolder", group.FolderHandler.Create)
			authGroup.DELETE("/deleteFolder/:id", group.FolderHandler.Delete)
			authGroup.POST("/folder/:id/media", group.FolderHandler.AppendMedia)
			authGroup.DELETE("/folder/:id/media/:fileId", group.FolderHandler.RemoveMedia)

			authGroup.POST("/media/upload", group.MediaHandler.Upload)
		}
	}

	group.Console.Register(r, group.Gate.Middleware())

	return r
}
