//go:build wireinject
// +build wireinject

package main

import (
	"IdeaHub/config"
	"IdeaHub/dao"
	"IdeaHub/dao/cache"
	"IdeaHub/handler"
	"IdeaHub/pkg/client"
	"IdeaHub/pkg/database"
	"IdeaHub/pkg/mq"
	"IdeaHub/pkg/server"
	"IdeaHub/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideRocketMQConfig,
		mq.InitProducer,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Idea), "*"),
		wire.Struct(new(handler.Reaction), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Department), "*"),
		wire.Struct(new(handler.AcademicYear), "*"),
		wire.Struct(new(handler.Export), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
