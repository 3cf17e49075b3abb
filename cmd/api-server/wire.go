//go:build wireinject
// +build wireinject

package main

import (
	"sideb/config"
	"sideb/dao"
	"sideb/dao/cache"
	"sideb/handler"
	"sideb/pkg/database"
	"sideb/pkg/oss"
	"sideb/pkg/server"
	"sideb/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		database.NewDB,
		cache.NewRedisClient,
		config.ProvideOssConfig,
		oss.NewClient,
		oss.NewStorage,
		server.NewGinEngine,

		wire.Bind(new(service.ImageLedger), new(*dao.Image)),
		wire.Bind(new(service.BlobStore), new(*oss.Storage)),

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Image), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Author), "*"),
		wire.Struct(new(handler.Page), "*"),
		wire.Struct(new(handler.Setting), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
