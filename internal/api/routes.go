package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the JSON API and the health check on r.
func (h *HTTPHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health)

	apiGroup := r.Group("/api")

	// Every method reaches the auth handlers so that non-POST requests get a
	// 405 body instead of the router's 404.
	authGroup := apiGroup.Group("/auth")
	authGroup.Any("/signin", h.SignIn)
	authGroup.Any("/signup", h.SignUp)

	apiGroup.GET("/dashboard", h.GetDashboard)

	apiGroup.GET("/files", h.ListFiles)
	apiGroup.POST("/files", h.UploadFile)
	apiGroup.DELETE("/files/:id", h.DeleteFile)

	apiGroup.GET("/backups", h.ListBackups)
	apiGroup.POST("/backups", h.CreateBackup)

	apiGroup.GET("/notifications", h.ListNotifications)
	apiGroup.PATCH("/notifications/:id/read", h.MarkNotificationRead)
}
