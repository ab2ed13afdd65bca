package test_functional

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	Config struct {
		Host     string `mapstructure:"HOST"`
		Port     string `mapstructure:"PORT"`
		MongoURL string `mapstructure:"MONGO_URL"`
		DBName   string `mapstructure:"DB_NAME"`
	}
)

var (
	AppBaseURL url.URL
	Database   *mongo.Database
)

func TestMain(m *testing.M) {
	viper.SetEnvPrefix("TEST_RUNNER")

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8001")
	viper.SetDefault("MONGO_URL", "mongodb://0.0.0.0:27017")
	viper.SetDefault("DB_NAME", "weddingcard")

	envs := []string{"HOST", "PORT", "MONGO_URL", "DB_NAME"}
	for _, key := range envs {
		if err := viper.BindEnv(key); err != nil {
			panic(err)
		}
	}

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		panic(err)
	}
	fmt.Println(cfg)

	AppBaseURL = url.URL{
		Scheme: "http",
		Host:   cfg.Host + ":" + cfg.Port,
	}

	////////

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), time.Second*10)
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		panic(err)
	}
	cancelConnect()
	Database = client.Database(cfg.DBName)

	////////

	pingCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)

	cl := resty.New()
	pingURL := AppBaseURL
	pingURL.Path = "/api/test"
	pingURLStr := pingURL.String()
	for {
		if pingCtx.Err() != nil {
			panic(pingCtx.Err())
		}
		resp, err := cl.R().Get(pingURLStr)
		if err != nil {
			panic(err)
		}
		if resp.StatusCode() == 200 {
			break
		}
	}
	cancel()

	fmt.Println("pinged successfully")

	///////

	os.Exit(m.Run())
}

func FlushDB() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	for _, name := range []string{"users", "sessions", "weddings", "rsvps", "guestbook"} {
		_ = Database.Collection(name).Drop(ctx)
	}
}
