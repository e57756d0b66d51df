package middlewares

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/davitran/clipshare/config"
)

func CORSMiddleware(cfg *config.EnvConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if cfg.CORS.AllowDomains != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowDomains, ",")
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}

	return cors.New(corsConfig)
}
