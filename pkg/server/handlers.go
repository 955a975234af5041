package server

import (
	"IdeaHub/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	Idea         *handler.Idea
	Reaction     *handler.Reaction
	Comment      *handler.Comment
	User         *handler.User
	Category     *handler.Category
	Department   *handler.Department
	AcademicYear *handler.AcademicYear
	Export       *handler.Export
}
