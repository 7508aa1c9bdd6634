package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"petSocial/configs"
	"petSocial/internal/handlers"
	"petSocial/internal/hub"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx           context.Context
	config        *configs.Config
	router        *gin.Engine
	hub           *hub.Hub
	restHandler   *handlers.RestHandler
	socketHandler *handlers.SocketHandler
}

func NewHttpServer(
	ctx context.Context,
	config *configs.Config,
	notificationHub *hub.Hub,
	restHandler *handlers.RestHandler,
	socketHandler *handlers.SocketHandler,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:           ctx,
			config:        config,
			hub:           notificationHub,
			restHandler:   restHandler,
			socketHandler: socketHandler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.router = gin.Default()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()

	go hs.hub.Run()

	server := hs.startServer()
	hs.waitForShutdown(server)
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.POST("/register", hs.restHandler.Register)
	hs.router.POST("/login", hs.restHandler.Login)
	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authorized := hs.router.Group("/", handlers.MustAuthenticateMiddleware())
	authorized.GET("/users", hs.restHandler.GetAllUsersWithPagination)
	authorized.GET("/users/:id", hs.restHandler.GetSingleUser)
	authorized.PUT("/users", hs.restHandler.UpdateUser)
	authorized.POST("/users/profile-photo", hs.restHandler.UploadUserProfilePhoto)
	authorized.POST("/upload/media", hs.restHandler.UploadMedia)

	messaging := authorized.Group("/messaging")
	messaging.POST("/conversation", hs.restHandler.CreateConversation)
	messaging.GET("/conversations", hs.restHandler.GetUserConversations)
	messaging.POST("/conversations/:id/messages", hs.restHandler.SendMessage)
	messaging.GET("/conversations/:id/messages", hs.restHandler.GetConversationMessages)
	messaging.POST("/conversations/:id/participants", hs.restHandler.AddParticipant)
	messaging.POST("/messages/mark-read", hs.restHandler.MarkMessageRead)
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/messaging/ws/:userID", hs.socketHandler.HandleSocketRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	address := hs.config.Viper.GetString("server.address")
	server := &http.Server{
		Addr:    address,
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on %s", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	hs.hub.Shutdown()

	log.Println("Server exiting")
}
