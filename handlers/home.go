package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/gogotex/backend/blog-service/internal/config"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/response"
)

// RegisterHome answers GET / with the welcome envelope.
func RegisterHome(r gin.IRouter, msgs config.Messages) {
	r.GET(config.HomeRoot, func(c *gin.Context) {
		response.JSON(c, http.StatusOK, response.Success(http.StatusOK, msgs.Welcome, nil))
	})
}
