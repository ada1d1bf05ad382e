package main

import (
	"github.com/cosmay/forumhub/config"
	"github.com/cosmay/forumhub/models"
	"github.com/cosmay/forumhub/routes"
	"github.com/cosmay/forumhub/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.ForumCategory{},
		&models.Topic{},
		&models.Post{},
		&models.Attachment{},
		&models.Like{},
	)

	r := routes.SetupRouter(db, cfg)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
