package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/sanvicreation/boutique-backend/internal/kv"
	"github.com/sanvicreation/boutique-backend/internal/metrics"
	"github.com/sanvicreation/boutique-backend/internal/modules/cart"
	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
	"github.com/sanvicreation/boutique-backend/internal/modules/dashboard"
	"github.com/sanvicreation/boutique-backend/internal/modules/order"
	"github.com/sanvicreation/boutique-backend/internal/modules/sales"
	"github.com/sanvicreation/boutique-backend/internal/modules/stylist"
	"github.com/sanvicreation/boutique-backend/internal/modules/supplier"
	"github.com/sanvicreation/boutique-backend/internal/seed"
)

type cfg struct {
	Port          string
	StoreDriver   string // file | postgres | memory
	StorePath     string
	DatabaseURL   string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
}

func readCfg() cfg {
	return cfg{
		Port:          getenv("APP_PORT", "8080"),
		StoreDriver:   getenv("STORE_DRIVER", "file"),
		StorePath:     getenv("STORE_PATH", "data/store.json"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openStore(c cfg) (kv.Store, error) {
	switch c.StoreDriver {
	case "postgres":
		if c.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
		db, err := sql.Open("postgres", c.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(); err != nil {
			return nil, err
		}
		return kv.NewPostgres(db)
	case "memory":
		return kv.NewMemory(), nil
	case "file":
		return kv.NewFile(c.StorePath)
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
}

func main() {
	_ = godotenv.Load()
	cfg := readCfg()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("opening %s store: %v", cfg.StoreDriver, err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := seed.Ensure(ctx, store); err != nil {
		cancel()
		log.Fatalf("seeding store: %v", err)
	}
	cancel()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	m := metrics.NewServerMetrics("api")
	router.Use(metrics.Middleware(m))
	router.Handle("/metrics", metrics.Handler())

	// ── Catalog & Orders ────────────────────────────────────
	catalogRepo := catalog.NewKVRepository(store)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	orderRepo := order.NewKVRepository(store)
	orderService := order.NewService(orderRepo)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── Suppliers & Sales ───────────────────────────────────
	supplierRepo := supplier.NewKVRepository(store)
	supplier.NewHandler(supplier.NewService(supplierRepo)).RegisterRoutes(router)

	salesRepo := sales.NewKVRepository(store)
	sales.NewHandler(sales.NewService(salesRepo)).RegisterRoutes(router)

	// ── Dashboard ───────────────────────────────────────────
	dashboardService := dashboard.NewService(catalogRepo, orderRepo, salesRepo)
	dashboard.NewHandler(dashboardService).RegisterRoutes(router)

	// ── Storefront Cart ─────────────────────────────────────
	cartService := cart.NewService(catalogService, orderService)
	cart.NewHandler(cartService).RegisterRoutes(router)

	// ── Style Advisor ───────────────────────────────────────
	var gateway stylist.Gateway
	if cfg.GeminiAPIKey != "" {
		gateway = stylist.NewGeminiGateway(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	} else {
		log.Println("GEMINI_API_KEY not set; style advisor will respond with fallback copy")
	}
	stylistService := stylist.NewService(gateway, catalogService)
	stylist.NewHandler(stylistService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	log.Printf("Boutique API server starting on :%s (store: %s)", cfg.Port, cfg.StoreDriver)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
