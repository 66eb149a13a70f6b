package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supermarket/pos/internal/cache"
	"supermarket/pos/internal/config"
	"supermarket/pos/internal/console"
	"supermarket/pos/internal/inventory"
	"supermarket/pos/internal/returns"
	"supermarket/pos/internal/sale"
	"supermarket/pos/internal/store/memory"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := memory.NewSeeded()
	log.Println("repository: in-memory")

	closers := make([]func() error, 0, 1)
	searchCache := cache.SearchCache(cache.NoopSearchCache{})
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisSearchCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Printf("redis unavailable (%v), using noop cache", err)
		} else {
			searchCache = redisCache
			closers = append(closers, redisCache.Close)
			log.Println("cache: redis")
		}
		cancel()
	} else {
		log.Println("cache: noop")
	}

	inv := inventory.New(repo, searchCache, time.Duration(cfg.SearchCacheTTLSeconds)*time.Second)
	sales := sale.New(repo, inv, cfg.TaxRatePercent, cfg.DiscountAmount)
	rets := returns.New(repo, inv)

	ui := console.New(inv, sales, rets, cfg.StoreName, os.Stdin, os.Stdout)

	log.Println("starting the supermarket POS system...")
	if err := ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("ui error: %v", err)
	}

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Printf("close error: %v", err)
		}
	}

	log.Println("POS stopped")
}
