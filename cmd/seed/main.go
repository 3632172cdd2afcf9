package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"product-catalog/internal/config"
	"product-catalog/internal/db"
	productrepo "product-catalog/internal/repository/product"
	"product-catalog/internal/seed"
	productsvc "product-catalog/internal/service/product"
)

func main() {
	godotenv.Load()
	cfg := config.FromEnv()
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("cmd", "seed").Logger()

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to mongodb")
	}
	defer client.Disconnect(ctx)

	collection := client.Database("products").Collection("products")
	svc := productsvc.New(productrepo.NewMongo(collection), logger)

	inserted, err := seed.Apply(ctx, svc)
	if err != nil {
		logger.Fatal().Err(err).Msg("seed apply")
	}
	logger.Info().Int("inserted", inserted).Msg("seed applied")
}
