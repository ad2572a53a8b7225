package routes

import (
	"log"
	"net/http"

	"salamatlab/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	PathPing   = "/ping"
	PathHealth = "/health"
)

func addPingRoutes(rg *gin.RouterGroup, store interfaces.IKeyValueStore) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	rg.GET(PathHealth, func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			log.Printf("[health] store ping failed err=%v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
