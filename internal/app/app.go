package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sahanr/inkpot/internal/config"
	"github.com/sahanr/inkpot/internal/controller"
	"github.com/sahanr/inkpot/internal/middleware"
	"github.com/sahanr/inkpot/internal/repository"
	"github.com/sahanr/inkpot/internal/service"
	"github.com/sahanr/inkpot/internal/storage"
	"github.com/sahanr/inkpot/internal/web"
)

// App wires configuration, stores and controllers into a server. The
// same wiring backs main and the API tests.
type App struct {
	Config *config.Config
	Server *web.Server
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	repo, err := newPostRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	files, err := newFileService(ctx, cfg)
	if err != nil {
		return nil, err
	}

	postService := service.NewPostService(repo)
	authService := service.NewAuthService(cfg.AdminPassword, cfg.JWTSecret)
	authMiddleware := middleware.Auth(authService)

	server := web.New()
	if cfg.LambdaRuntime {
		server.SetRuntime(web.RuntimeLambda)
	}
	server.DefaultCORS()
	server.SetBasePath("/api")

	server.RegisterController("/login", controller.NewAuthController(authService))
	server.RegisterController("/posts", controller.NewPostController(postService, authMiddleware))
	server.RegisterController("/upload", controller.NewUploadController(files, authMiddleware))

	engine := server.Engine()
	if local, ok := files.(*storage.LocalFileService); ok {
		engine.Static("/uploads", local.Dir())
	}
	engine.NoRoute(frontendHandler(cfg.PublicDir))

	return &App{Config: cfg, Server: server}, nil
}

func newPostRepository(ctx context.Context, cfg *config.Config) (repository.PostRepository, error) {
	switch cfg.StoreDriver {
	case "memory":
		return repository.NewMemoryPostRepository(), nil
	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			return nil, fmt.Errorf("pinging MongoDB: %w", err)
		}
		return repository.NewMongoPostRepository(client.Database(cfg.MongoDB)), nil
	case "file":
		return repository.NewFilePostRepository(cfg.DataFile)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func newFileService(ctx context.Context, cfg *config.Config) (storage.FileService, error) {
	switch cfg.StorageDriver {
	case "s3":
		return storage.NewS3FileService(ctx, cfg.S3Bucket, cfg.S3KeyPrefix, cfg.AWSRegion, cfg.AWSAccessKey, cfg.AWSSecretKey)
	case "local":
		return storage.NewLocalFileService(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// frontendHandler serves the static frontend bundle for anything that
// is not an API route; unmatched API paths get a JSON 404.
func frontendHandler(publicDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			web.SendError(c, web.ErrRouteNotFound)
			return
		}

		requested := filepath.Join(publicDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		index := filepath.Join(publicDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
			return
		}
		c.File(index)
	}
}
