package routes

import (
	"Backend-SurveyStudio/src/controllers"
	"Backend-SurveyStudio/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// AuthoringRoutes registers the survey authoring session endpoints. Every
// editing operation of the question editor is one route.
func AuthoringRoutes(app *fiber.App) {
	sessions := app.Group("/teacher/authoring/sessions", middleware.AuthJWT, middleware.RequireTeacher)

	sessions.Post("/", controllers.StartSession)
	sessions.Get("/:id", controllers.GetSession)
	sessions.Delete("/:id", controllers.CancelSession)
	sessions.Put("/:id/metadata", controllers.UpdateMetadata)

	// question editor working state
	sessions.Put("/:id/question/type", controllers.SetQuestionType)
	sessions.Patch("/:id/question", controllers.UpdateQuestionFields)
	sessions.Post("/:id/question/cancel", controllers.CancelQuestion)

	// single-choice options
	sessions.Post("/:id/question/options", controllers.AddOption)
	sessions.Delete("/:id/question/options/:index", controllers.RemoveOption)
	sessions.Put("/:id/question/options/:index", controllers.SetOptionValue)
	sessions.Put("/:id/question/options/:index/correct", controllers.SetCorrectOption)

	// fill-blank answers
	sessions.Post("/:id/question/blanks", controllers.AddBlank)
	sessions.Delete("/:id/question/blanks/:index", controllers.RemoveBlank)
	sessions.Put("/:id/question/blanks/:index", controllers.SetBlank)

	// essay settings
	sessions.Post("/:id/question/files", controllers.UploadAttachment)
	sessions.Delete("/:id/question/files/:index", controllers.RemoveAttachment)
	sessions.Put("/:id/question/min-word-count", controllers.SetMinWordCount)
	sessions.Post("/:id/question/keywords", controllers.AddKeyword)
	sessions.Delete("/:id/question/keywords/:index", controllers.RemoveKeyword)
	sessions.Post("/:id/question/requirements", controllers.AddRequirement)
	sessions.Delete("/:id/question/requirements/:index", controllers.RemoveRequirement)
	sessions.Post("/:id/question/score-items", controllers.AddScoreItem)
	sessions.Delete("/:id/question/score-items/:index", controllers.RemoveScoreItem)
	sessions.Put("/:id/question/score-items/:index", controllers.SetScoreItem)

	// saved questions and submission
	sessions.Post("/:id/questions", controllers.SaveQuestion)
	sessions.Delete("/:id/questions/:index", controllers.RemoveQuestion)
	sessions.Post("/:id/submit", controllers.SubmitSession)
}
