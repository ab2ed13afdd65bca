package db

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/weddingcard/weddingcard-back/internal/config"
)

func NewMongoClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.SugaredLogger) (*mongo.Client, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, errors.Wrap(err, "build mongo client")
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Connect(ctx); err != nil {
				return errors.Wrap(err, "connect mongo")
			}
			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "ping mongo")
			}
			logger.Infow("connected to mongo", "db", cfg.DBName)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Disconnecting mongo client.")
			return client.Disconnect(ctx)
		},
	})

	return client, nil
}

func NewDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.DBName)
}
