// Package main runs the gymstats MCP server over stdio, for local assistants.
// The backend serves the same tools over HTTP at /mcp.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gymanalytics/internal/config"
	"github.com/2beens/gymanalytics/internal/db"
	"github.com/2beens/gymanalytics/internal/gymstats/analysis"
	gymstatsmcp "github.com/2beens/gymanalytics/internal/gymstats/mcp"
	"github.com/2beens/gymanalytics/internal/gymstats/records"
	"github.com/2beens/gymanalytics/internal/gymstats/workouts"
	"github.com/2beens/gymanalytics/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDB,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	metricsManager := metrics.NewManager("gymstats", "mcp", metrics.SetupPrometheus())

	// read-only tools, the achievements feed is never touched
	workoutsRepo := workouts.NewRepo(dbPool)
	recordsService := records.NewService(records.NewRepo(dbPool), workoutsRepo, nil, metricsManager)
	analysisService := analysis.NewService(
		analysis.NewRepo(dbPool),
		workoutsRepo,
		recordsService,
		cfg.Analytics,
		cfg.AnalysisCacheSizeMB,
		metricsManager,
	)

	server := gymstatsmcp.NewServer(dbPool, analysisService, recordsService)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %s", err)
	}
}
