// Package router wires the HTTP routes and cross-cutting middleware.
package router

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	stockhandler "watchlist_backend/internal/feature/watchlist/transport/handler"
	"watchlist_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with the watchlist routes and a CORS
// allow-list. Only explicitly allowed origins may call the API; the
// middleware answers preflight OPTIONS itself and rejects everything else.
func NewRouter(stocks *stockhandler.StockHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	r.GET("/healthz", handler.Health)

	r.GET("/stocks", stocks.List)
	r.POST("/stocks", stocks.Add)
	r.DELETE("/stocks/:name", stocks.Remove)

	return r
}

// corsConfig builds the allow-list from ALLOWED_ORIGINS (comma separated).
// Defaults to the local Vite dev origins.
func corsConfig() cors.Config {
	origins := []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
