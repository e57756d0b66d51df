package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/davitran/clipshare/config"
	"github.com/davitran/clipshare/http/controller"
	routes "github.com/davitran/clipshare/http/route"
	"github.com/davitran/clipshare/infra"
	"github.com/davitran/clipshare/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	inf := infra.InitInfra(cfg)
	defer inf.Logger.Shutdown(context.Background())

	repo := repository.InitRepository(inf)
	ctrl := controller.NewController(cfg, inf, repo)

	router := routes.SetupRouter(ctrl)
	if err := router.Run(":" + cfg.EnvConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
