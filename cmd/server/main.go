package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"watchlist_backend/internal/app/di"
	"watchlist_backend/internal/app/router"
	"watchlist_backend/internal/feature/watchlist/adapters"
	stockhandler "watchlist_backend/internal/feature/watchlist/transport/handler"
	"watchlist_backend/internal/feature/watchlist/usecase"
	"watchlist_backend/internal/platform/cache"
	infradb "watchlist_backend/internal/platform/db"
	infraredis "watchlist_backend/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without quote cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	stockRepo := adapters.NewStockRepository(db)

	// Usecase: the add policy for existing symbols follows the enrichment
	// capability, chosen here and nowhere else.
	var watchlistUC *usecase.WatchlistUsecase
	if os.Getenv("QUOTE_ENRICHMENT") == "true" {
		if os.Getenv("TWELVE_DATA_API_KEY") == "" {
			log.Println("[WARN] TWELVE_DATA_API_KEY is not set. Quote lookups will fail.")
		}
		quotes := di.NewQuotes()
		cachedQuotes := cache.NewCachingQuoteRepository(rdb, quoteCacheTTL(), quotes, "quotes")
		watchlistUC = usecase.NewEnrichedWatchlistUsecase(stockRepo, cachedQuotes)
	} else {
		watchlistUC = usecase.NewWatchlistUsecase(stockRepo)
	}

	// Handler
	stockH := stockhandler.NewStockHandler(watchlistUC)

	router := router.NewRouter(stockH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// quoteCacheTTL reads QUOTE_CACHE_TTL (Go duration, e.g. "30s").
// Zero lets the cache apply its own default.
func quoteCacheTTL() time.Duration {
	ttl, err := time.ParseDuration(os.Getenv("QUOTE_CACHE_TTL"))
	if err != nil {
		return 0
	}
	return ttl
}
