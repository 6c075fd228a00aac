package main

import (
	"fmt"
	"os"

	"github.com/Wezzer42/littlelemon/configs"
	"github.com/Wezzer42/littlelemon/middlewares"
	"github.com/Wezzer42/littlelemon/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	cfg := configs.LoadConfig()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatal().Err(err).Msg("seed lookups failed")
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
