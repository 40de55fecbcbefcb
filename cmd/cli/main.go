package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/herbalist/internal/buildinfo"
	"github.com/dmitrijs2005/herbalist/internal/client/cli"
	"github.com/dmitrijs2005/herbalist/internal/client/config"
	"github.com/dmitrijs2005/herbalist/internal/logging"
	"github.com/joho/godotenv"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	_ = godotenv.Load() // HERBALIST_* from .env if present

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
