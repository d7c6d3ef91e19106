package routes

import (
	"Backend-SurveyStudio/src/controllers"
	"Backend-SurveyStudio/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// SurveyRoutes registers the thin survey list CRUD.
func SurveyRoutes(app *fiber.App) {
	surveys := app.Group("/teacher/surveys", middleware.AuthJWT, middleware.RequireTeacher)

	surveys.Get("/", controllers.GetSurveys)
	surveys.Post("/:id/publish", controllers.PublishSurvey)
	surveys.Post("/:id/unpublish", controllers.UnpublishSurvey)
	surveys.Delete("/:id", controllers.DeleteSurvey)
}
