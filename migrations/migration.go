package main

import (
	"log"

	"item-catalog/infra"
	"item-catalog/models"
)

func main() {
	infra.Initialize()

	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db := infra.SetupDB(cfg)
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Item{}); err != nil {
		panic("Failed to migrate database")
	}
}
