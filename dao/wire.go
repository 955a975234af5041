//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewIdeaDAO,
	NewIdeaStatsDAO,
	NewIdeaDocumentDAO,
	NewReactionDAO,
	NewComment,
	NewCategory,
	NewDepartment,
	NewAcademicYear,
	NewReportDAO,
)
