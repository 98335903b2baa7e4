package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/db"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func ptr(v int64) *int64 { return &v }

// 初期カタログ。価格はFCFA。
var products = []model.Product{
	{
		Name:          "Maillet 24/25 Domicile",
		Price:         59000,
		OriginalPrice: ptr(69000),
		Rating:        4.7,
		Points:        590,
		Category:      model.CategoryMaillets,
		Image:         "images/maillet.jpg",
		IsNew:         true,
		DeliveryFree:  true,
		Stock:         50,
	},
	{
		Name:          "Écharpe Gaindé",
		Price:         12000,
		OriginalPrice: ptr(14000),
		Rating:        4.6,
		Points:        120,
		Category:      model.CategoryAccessoires,
		Image:         "images/echarpe.jpg",
		Discount:      ptr(15),
		Stock:         100,
	},
	{
		Name:          "Ballon Officiel",
		Price:         25000,
		OriginalPrice: ptr(30000),
		Rating:        4.8,
		Points:        250,
		Category:      model.CategoryAccessoires,
		Image:         "images/ballon.jpg",
		IsNew:         true,
		Discount:      ptr(17),
		DeliveryFree:  true,
		Stock:         30,
	},
	{
		Name:          "Maillot Enfant",
		Price:         15000,
		OriginalPrice: ptr(18000),
		Rating:        4.5,
		Points:        150,
		Category:      model.CategoryEnfant,
		Image:         "images/maillot-enfant.jpg",
		Discount:      ptr(10),
		Stock:         75,
	},
}

func main() {
	log := logrus.New()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config load failed")
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("db connect failed")
	}

	if err := gormDB.AutoMigrate(&model.Product{}, &model.Cart{}, &model.CartItem{}); err != nil {
		log.WithError(err).Fatal("migrate failed")
	}

	//既存カタログを消してから投入
	if err := gormDB.Where("1 = 1").Delete(&model.Product{}).Error; err != nil {
		log.WithError(err).Fatal("wipe failed")
	}

	for i := range products {
		if err := gormDB.Create(&products[i]).Error; err != nil {
			log.WithError(err).WithField("name", products[i].Name).Fatal("insert failed")
		}
	}

	log.WithField("count", len(products)).Info("seeded products")
}
