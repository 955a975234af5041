package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(IdeaService), "*"),
	wire.Bind(new(IIdeaService), new(*IdeaService)),

	wire.Struct(new(ReactionService), "*"),
	wire.Bind(new(IReactionService), new(*ReactionService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(TaxonomyService), "*"),
	wire.Bind(new(ITaxonomyService), new(*TaxonomyService)),

	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),

	wire.Struct(new(EventService), "*"),
	wire.Bind(new(IEventService), new(*EventService)),

	wire.Struct(new(ExportService), "*"),
	wire.Bind(new(IExportService), new(*ExportService)),

	NewOssService,
)
