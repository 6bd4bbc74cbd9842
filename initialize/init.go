package initialize

import (
	"fmt"
	"net/http"

	"user-registry/app/controllers"
	"user-registry/app/db"
	"user-registry/app/middleware"
	"user-registry/app/models"
	"user-registry/app/services"
	"user-registry/config"
	"user-registry/global"
	"user-registry/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg    config.Config
	DB     *gorm.DB
	Router http.Handler
	Users  *services.UserService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = *cfg

	// Connect DB
	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, Path: cfg.DB.Path, Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate (creating an existing table is a no-op)
	if err := gdb.AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Services
	sessions := db.NewSessionManager(gdb)
	userSvc := services.NewUserService(sessions)

	// Controllers
	userCtrl := controllers.NewUserController(userSvc)

	// Router
	h := router.NewRouter(userCtrl)
	// Wrap with logging middleware
	h = middleware.Logging(h)

	return &App{Cfg: *cfg, DB: gdb, Router: h, Users: userSvc}, nil
}
