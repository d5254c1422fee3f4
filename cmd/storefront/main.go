package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jcuriel/toyshop-storefront/internal/pkg/cache"
	"github.com/jcuriel/toyshop-storefront/internal/pkg/telemetry"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/config"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/ports"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/session"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/infra/adapters/toyapi"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/infra/httpx"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/orderlog"
	orderlogsqlite "github.com/jcuriel/toyshop-storefront/internal/storefront/orderlog/sqlite"
)

const serviceName = "storefront"

func main() {
	app := &cli.App{
		Name:  "storefront",
		Usage: "Toyland storefront gateway",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the storefront gateway",
				Action: serve,
			},
			{
				Name:   "seed",
				Usage:  "populate the remote catalog with sample toys and exit",
				Action: seed,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	telemetry.InitLogger(cfg.LogLevel)

	shutdown, err := telemetry.SetupTracer(c.Context, serviceName)
	if err != nil {
		return err
	}
	defer func() {
		_ = shutdown(context.Background())
	}()

	client := toyapi.NewClient(cfg.ToyshopAPIURL, cfg.HTTPTimeout)
	catalog := toyapi.NewCachedCatalog(client, cache.New(cfg.RedisAddr, serviceName), cfg.CatalogCacheTTL)

	var recorder *orderlog.Recorder
	if cfg.OrderLogPath != "" {
		repo, err := orderlogsqlite.Open(cfg.OrderLogPath)
		if err != nil {
			return err
		}
		defer repo.Close()
		recorder = orderlog.NewRecorder(repo)
	}

	sessions := session.NewManager()
	handler := httpx.NewHandler(catalog, client, recorder)
	router := httpx.NewRouter(handler, sessions)

	slog.Info("storefront gateway running",
		"addr", cfg.ListenAddr,
		"toyshop_api", cfg.ToyshopAPIURL,
		"cache", cfg.RedisAddr != "",
		"order_log", cfg.OrderLogPath != "",
	)

	return http.ListenAndServe(cfg.ListenAddr, otelhttp.NewHandler(router, serviceName))
}

func seed(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	telemetry.InitLogger(cfg.LogLevel)

	client := toyapi.NewClient(cfg.ToyshopAPIURL, cfg.HTTPTimeout)
	if err := client.Seed(c.Context); err != nil {
		return err
	}

	toys, err := client.List(c.Context, ports.Filter{})
	if err != nil {
		return err
	}

	fmt.Printf("seeded catalog: %d toys\n", len(toys))
	return nil
}
