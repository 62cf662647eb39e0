package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"relaxan/app/client/bitrix"
	"relaxan/app/config"
	"relaxan/app/server"
	"relaxan/app/service/catalog"
	"relaxan/app/service/classify"
	"relaxan/app/service/dialog"
	"relaxan/app/service/refresh"
	"relaxan/app/service/session"
	"relaxan/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, bitrix.NewClient)
	do.Provide(di, catalog.New)
	do.Provide(di, session.New)
	do.Provide(di, classify.New)
	do.Provide(di, dialog.New)
	do.Provide(di, refresh.New)
	do.Provide(di, server.New)
	do.Provide(di, server.NewMCP)

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	go do.MustInvoke[*refresh.Service](di).Run(appCtx)

	go func() {
		if err := do.MustInvoke[*server.MCPServer](di).Run(appCtx); err != nil {
			slog.Error("MCP server failed", "error", err)
		}
	}()

	go func() {
		if err := do.MustInvoke[*server.Server](di).Run(appCtx); err != nil {
			slog.Error("HTTP server failed", "error", err)
		}

		cancel()
	}()

	<-appCtx.Done()
}
