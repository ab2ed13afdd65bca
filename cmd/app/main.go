package main

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/weddingcard/weddingcard-back/internal/backup"
	"github.com/weddingcard/weddingcard-back/internal/config"
	"github.com/weddingcard/weddingcard-back/internal/db"
	"github.com/weddingcard/weddingcard-back/internal/service"
	"github.com/weddingcard/weddingcard-back/internal/transport"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			func() (*zap.SugaredLogger, error) {
				l, err := zap.NewProduction()
				if err != nil {
					return nil, err
				}
				return l.Sugar(), nil
			},
		),
		db.Module,
		backup.Module,
		service.Module,
		transport.Module,
		fx.Invoke(func(server *transport.HTTPServer) {}),
	)

	app.Run()
}
