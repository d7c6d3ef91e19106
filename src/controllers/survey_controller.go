package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// GetSurveys godoc
// @Summary      List the teacher's surveys
// @Description  Returns the local survey list, newest first
// @Tags         surveys
// @Produce      json
// @Success      200  {array}  models.Survey
// @Failure      500  {object}  models.ErrorResponse
// @Router       /teacher/surveys [get]
func GetSurveys(c *fiber.Ctx) error {
	surveys, err := svc.ListSurveys(c.Context(), teacherID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(surveys)
}

// PublishSurvey godoc
// @Summary      Publish an existing survey
// @Tags         surveys
// @Produce      json
// @Param        id  path  string  true  "Survey ID"
// @Success      200  {object}  models.Survey
// @Failure      404  {object}  models.ErrorResponse
// @Failure      502  {object}  models.ErrorResponse
// @Router       /teacher/surveys/{id}/publish [post]
func PublishSurvey(c *fiber.Ctx) error {
	survey, err := svc.PublishExisting(c.Context(), teacherID(c), bearerToken(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(survey)
}

// UnpublishSurvey godoc
// @Summary      Unpublish a survey back to draft
// @Tags         surveys
// @Produce      json
// @Param        id  path  string  true  "Survey ID"
// @Success      200  {object}  models.Survey
// @Failure      404  {object}  models.ErrorResponse
// @Failure      502  {object}  models.ErrorResponse
// @Router       /teacher/surveys/{id}/unpublish [post]
func UnpublishSurvey(c *fiber.Ctx) error {
	survey, err := svc.UnpublishExisting(c.Context(), teacherID(c), bearerToken(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(survey)
}

// DeleteSurvey godoc
// @Summary      Delete a survey
// @Tags         surveys
// @Param        id  path  string  true  "Survey ID"
// @Success      204
// @Failure      502  {object}  models.ErrorResponse
// @Router       /teacher/surveys/{id} [delete]
func DeleteSurvey(c *fiber.Ctx) error {
	if err := svc.DeleteSurvey(c.Context(), teacherID(c), bearerToken(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
