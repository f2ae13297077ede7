package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ZidiEya/holbertonschool-files-manager/internal/app"
	"github.com/ZidiEya/holbertonschool-files-manager/internal/auth"
	"github.com/ZidiEya/holbertonschool-files-manager/internal/file"
)

// SetupRoutes registers every endpoint on the router. Authentication is
// resolved inside each handler rather than by middleware: every operation
// performs its own identity check, and content delivery accepts anonymous
// callers for public files.
func SetupRoutes(
	router *gin.Engine,
	appHandler *app.Handler,
	authHandler *auth.Handler,
	fileHandler *file.Handler,
) {
	router.GET("/status", appHandler.Status)
	router.GET("/stats", appHandler.Stats)

	router.POST("/users", authHandler.Register)
	router.GET("/users/me", authHandler.Me)
	router.GET("/connect", authHandler.Connect)
	router.GET("/disconnect", authHandler.Disconnect)

	router.POST("/files", fileHandler.Upload)
	router.GET("/files", fileHandler.Index)
	router.GET("/files/:id", fileHandler.Show)
	router.PUT("/files/:id/publish", fileHandler.Publish)
	router.PUT("/files/:id/unpublish", fileHandler.Unpublish)
	router.GET("/files/:id/data", fileHandler.Data)
}
