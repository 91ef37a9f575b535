package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/groph-vps/internal/app"
	"github.com/fsdevblog/groph-vps/internal/config"
	"github.com/fsdevblog/groph-vps/internal/logger"
)

// version выставляется при сборке через -ldflags "-X main.version=...".
var version = "dev"

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l, version).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		l.WithError(err).Fatal("app stopped")
	}
}
