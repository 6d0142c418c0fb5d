package app

import (
	"context"
	"net/http"
	"time"

	"magasin/config"
	"magasin/internal/database"
	"magasin/internal/handler"
	"magasin/internal/middleware"
	"magasin/internal/repository"
	"magasin/internal/service"
	"magasin/internal/storage"
)

type Application struct {
	Router    http.Handler
	Config    *config.Config
	DBManager *database.Manager
}

func New(cfg *config.Config) (*Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	dbManager, err := database.NewManager(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		return nil, err
	}

	db := dbManager.Database()
	adherentRepository := repository.NewMongoAdherentRepository(db)
	productRepository := repository.NewMongoProductRepository(db)

	fileStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	adherentService := service.NewAdherentService(adherentRepository)
	productService := service.NewProductService(productRepository)

	adherentHandler := handler.NewAdherentHandler(adherentService)
	productHandler := handler.NewProductHandler(productService, fileStore)

	router := handler.NewRouter(adherentHandler, productHandler, fileStore.Dir())

	app := &Application{
		Router:    middleware.RequestLogger(middleware.CORS(router)),
		Config:    cfg,
		DBManager: dbManager,
	}

	return app, nil
}

func (a *Application) Close(ctx context.Context) error {
	if a.DBManager != nil {
		return a.DBManager.Close(ctx)
	}
	return nil
}
