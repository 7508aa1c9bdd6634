package app

import (
	"context"
	"sync"

	"petSocial/configs"
	_ "petSocial/docs"
	"petSocial/internal/handlers"
	"petSocial/internal/hub"
	"petSocial/internal/repositories"
	"petSocial/internal/servers/database"
	"petSocial/internal/servers/http"
	"petSocial/internal/services"

	"github.com/redis/go-redis/v9"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

// @title        Pet Social API
// @version      1.0
// @description  Social backend for pets and their owners: accounts, pet profiles and messaging.
// @BasePath     /
func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.configs = configs.GetConfig()
	app.initializeRedis()

	db := database.GetDB(app.configs)
	notificationHub := hub.NewHub(app.ctx, app.redis)

	authRepo := repositories.NewAuthenticationRepository(db)
	authService := services.NewAuthenticationService(authRepo, app.configs)
	messagingRepo := repositories.NewMessagingRepository(db)
	messagingService := services.NewMessagingService(messagingRepo, authRepo, notificationHub)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)

	restHandler := handlers.NewRestHandler(
		authService,
		messagingService,
		fileManagerService,
	)
	socketHandler := handlers.NewSocketHandler(notificationHub)

	http.NewHttpServer(
		app.ctx,
		app.configs,
		notificationHub,
		restHandler,
		socketHandler,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.address"),
	})
}
