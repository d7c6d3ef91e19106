package controllers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Backend-SurveyStudio/src/models"
	"Backend-SurveyStudio/src/services/surveys"
	"Backend-SurveyStudio/src/store"
	"Backend-SurveyStudio/src/utils"
)

var (
	svc      *surveys.Service
	validate = validator.New()
)

// Setup wires the shared surveys service into the handler package. Called
// once from main before routes are registered.
func Setup(service *surveys.Service) {
	svc = service
}

func sessionTotalScore(session *models.AuthoringSession) float64 {
	return surveys.TotalScore(session.Questions)
}

func teacherID(c *fiber.Ctx) string {
	id, _ := c.Locals("userId").(string)
	return id
}

func bearerToken(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}

func pathIndex(c *fiber.Ctx) (int, error) {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return 0, errors.New("index must be an integer")
	}
	return index, nil
}

// respondError maps the error taxonomy to HTTP statuses: validation errors
// are the teacher's to fix, not-found means a stale session or survey id,
// and submission/identifier failures surface as bad gateway because the
// upstream call is what broke.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	var identifierErr *models.IdentifierResolutionError
	var submissionErr *models.SubmissionError

	switch {
	case errors.As(err, &validationErr):
		return utils.HandleError(c, fiber.StatusUnprocessableEntity, validationErr.Message)
	case errors.Is(err, store.ErrSessionNotFound), errors.Is(err, store.ErrSurveyNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case errors.As(err, &identifierErr), errors.As(err, &submissionErr):
		return utils.HandleError(c, fiber.StatusBadGateway, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}
