package main

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gitlab.com/olena.kushnir/contacts-api/internal/config"
	"gitlab.com/olena.kushnir/contacts-api/internal/database"
	"gitlab.com/olena.kushnir/contacts-api/internal/logging"
	"gitlab.com/olena.kushnir/contacts-api/internal/service"
)

// Usage example on the command line:
// > PORT=8080 DBUSER=dirk DBPWD=bullo92 DBHOST=localhost JWT_SECRET=changeme go run main.go
func main() {
	cfg := config.Load()

	if err := logging.Init(cfg.Log.Level, cfg.Server.Env); err != nil {
		panic(err)
	}
	log := logging.GetLogger()
	defer log.Sync()

	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Fatal("could not connect to the database", zap.Error(err))
	}
	defer db.Close()

	server, err := service.NewServer(cfg, db)
	if err != nil {
		log.Fatal("could not initialize the service", zap.Error(err))
	}

	// The rate limiter only runs when a redis address is configured.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		defer rdb.Close()
	}

	router := server.SetupHttpRouter(rdb)
	log.Info("listening", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
