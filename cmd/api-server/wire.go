//go:build wireinject
// +build wireinject

package main

import (
	"Globetrek/config"
	"Globetrek/dao"
	"Globetrek/dao/cache"
	"Globetrek/handler"
	"Globetrek/pkg/client"
	"Globetrek/pkg/database"
	"Globetrek/pkg/server"
	"Globetrek/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		cache.NewRelationCache,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Country), "*"),
		wire.Struct(new(handler.Review), "*"),
		wire.Struct(new(handler.Comment), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
