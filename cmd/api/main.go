package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	appRepo "app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config load failed")
	}

	var (
		productRepo  appRepo.ProductRepository
		cartRepo     appRepo.CartRepository
		cartItemRepo appRepo.CartItemRepository
	)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		// DBなしの簡易モード
		store := infraRepo.NewMemoryStore()
		productRepo = infraRepo.NewProductMemoryRepository(store)
		cartRepo = infraRepo.NewCartMemoryRepository(store)
		cartItemRepo = infraRepo.NewCartItemMemoryRepository(store)
		log.Info("using in-memory store")

	default:
		gormDB, err := db.Connect(cfg)
		if err != nil {
			log.WithError(err).Fatal("db connect failed")
		}
		if err := gormDB.AutoMigrate(
			&model.Product{},
			&model.Cart{},
			&model.CartItem{},
		); err != nil {
			log.WithError(err).Fatal("migrate failed")
		}

		productRepo = infraRepo.NewProductGormRepository(gormDB)
		cartRepo = infraRepo.NewCartGormRepository(gormDB)
		cartItemRepo = infraRepo.NewCartItemGormRepository(gormDB)
	}

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartUC, log)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	cartH := handler.NewCartHandler(cartUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC)

	e := server.New(cfg, log, productH, cartH, checkoutH)

	addr := ":" + cfg.Port
	log.WithField("addr", addr).Info("server starting")
	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
