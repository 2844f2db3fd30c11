package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mcoelho/eduterm/internal/buildinfo"
	"github.com/mcoelho/eduterm/internal/cli"
	"github.com/mcoelho/eduterm/internal/config"
	"github.com/mcoelho/eduterm/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewText(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
