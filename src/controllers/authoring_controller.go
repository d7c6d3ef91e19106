package controllers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Backend-SurveyStudio/src/models"
	"Backend-SurveyStudio/src/services/editor"
	"Backend-SurveyStudio/src/utils"
)

// StartSession godoc
// @Summary      Start an authoring session
// @Description  Opens a fresh survey draft with the question editor at its defaults
// @Tags         authoring
// @Produce      json
// @Success      201  {object}  models.AuthoringSession
// @Failure      500  {object}  models.ErrorResponse
// @Router       /teacher/authoring/sessions [post]
func StartSession(c *fiber.Ctx) error {
	session, err := svc.StartSession(c.Context(), teacherID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSession godoc
// @Summary      Get an authoring session
// @Tags         authoring
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /teacher/authoring/sessions/{id} [get]
func GetSession(c *fiber.Ctx) error {
	session, err := svc.GetSession(c.Context(), teacherID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"session":    session,
		"totalScore": sessionTotalScore(session),
	})
}

// CancelSession godoc
// @Summary      Cancel an authoring session
// @Description  Discards the survey draft and every saved question
// @Tags         authoring
// @Param        id  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  models.ErrorResponse
// @Router       /teacher/authoring/sessions/{id} [delete]
func CancelSession(c *fiber.Ctx) error {
	if err := svc.CancelSession(c.Context(), teacherID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateMetadata godoc
// @Summary      Set survey title and description
// @Tags         authoring
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "Session ID"
// @Param        body  body  models.MetadataRequest  true  "Survey metadata"
// @Success      200  {object}  models.AuthoringSession
// @Failure      404  {object}  models.ErrorResponse
// @Router       /teacher/authoring/sessions/{id}/metadata [put]
func UpdateMetadata(c *fiber.Ctx) error {
	var req models.MetadataRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	session, err := svc.SetMetadata(c.Context(), teacherID(c), c.Params("id"), req.Title, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// editorOp parses nothing itself; it runs one editor operation against the
// session in the path and returns the updated session.
func editorOp(c *fiber.Ctx, op func(*models.EditorState) error) error {
	session, err := svc.UpdateEditor(c.Context(), teacherID(c), c.Params("id"), op)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// SetQuestionType switches the editor's active variant. Fields of the
// previous variant are retained, so switching back restores prior input.
func SetQuestionType(c *fiber.Ctx) error {
	var req models.QuestionTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		return editor.SetType(s, req.QuestionType)
	})
}

// UpdateQuestionFields applies the common field setters: text, score,
// answer explanation. Absent fields are left untouched.
func UpdateQuestionFields(c *fiber.Ctx) error {
	var req models.QuestionFieldsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		if req.QuestionText != nil {
			editor.SetText(s, *req.QuestionText)
		}
		if req.Score != nil {
			editor.SetScore(s, *req.Score)
		}
		if req.AnswerExplanation != nil {
			editor.SetExplanation(s, *req.AnswerExplanation)
		}
		return nil
	})
}

func AddOption(c *fiber.Ctx) error {
	return editorOp(c, func(s *models.EditorState) error {
		editor.AddOption(s)
		return nil
	})
}

func RemoveOption(c *fiber.Ctx) error {
	index, err := pathIndex(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		return editor.RemoveOption(s, index)
	})
}

func SetOptionValue(c *fiber.Ctx) error {
	index, err := pathIndex(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	var req models.ValueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		return editor.SetOptionValue(s, index, req.Value)
	})
}

// SetCorrectOption marks one option correct and clears every other, like a
// radio group.
func SetCorrectOption(c *fiber.Ctx) error {
	index, err := pathIndex(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		return editor.SetCorrectOption(s, index)
	})
}

func AddBlank(c *fiber.Ctx) error {
	return editorOp(c, func(s *models.EditorState) error {
		editor.AddBlank(s)
		return nil
	})
}

func RemoveBlank(c *fiber.Ctx) error {
	index, err := pathIndex(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		return editor.RemoveBlank(s, index)
	})
}

func SetBlank(c *fiber.Ctx) error {
	index, err := pathIndex(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	var req models.ValueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		return editor.SetBlank(s, index, req.Value)
	})
}

// UploadAttachment godoc
// @Summary      Attach an essay reference file
// @Description  Parks the file in the session; it is uploaded to the platform only on submission
// @Tags         authoring
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Session ID"
// @Param        file  formData  file    true  "Reference file"
// @Success      200  {object}  models.AuthoringSession
// @Failure      400  {object}  models.ErrorResponse
// @Router       /teacher/authoring/sessions/{id}/question/files [post]
func UploadAttachment(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing file: "+err.Error())
	}
	file, err := header.Open()
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Unreadable file: "+err.Error())
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Unreadable file: "+err.Error())
	}

	att := models.Attachment{
		ID:          uuid.NewString(),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
	return editorOp(c, func(s *models.EditorState) error {
		editor.AddFile(s, att)
		return nil
	})
}

func RemoveAttachment(c *fiber.Ctx) error {
	index, err := pathIndex(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		return editor.RemoveFile(s, index)
	})
}

func SetMinWordCount(c *fiber.Ctx) error {
	var req struct {
		MinWordCount int `json:"minWordCount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		return editor.SetMinWordCount(s, req.MinWordCount)
	})
}

func AddKeyword(c *fiber.Ctx) error {
	var req models.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		editor.AddKeyword(s, req.Text)
		return nil
	})
}

func RemoveKeyword(c *fiber.Ctx) error {
	index, err := pathIndex(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		return editor.RemoveKeyword(s, index)
	})
}

func AddRequirement(c *fiber.Ctx) error {
	var req models.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		editor.AddRequirement(s, req.Text)
		return nil
	})
}

func RemoveRequirement(c *fiber.Ctx) error {
	index, err := pathIndex(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		return editor.RemoveRequirement(s, index)
	})
}

func AddScoreItem(c *fiber.Ctx) error {
	return editorOp(c, func(s *models.EditorState) error {
		editor.AddScoreItem(s)
		return nil
	})
}

func RemoveScoreItem(c *fiber.Ctx) error {
	index, err := pathIndex(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		return editor.RemoveScoreItem(s, index)
	})
}

func SetScoreItem(c *fiber.Ctx) error {
	index, err := pathIndex(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	var req models.ScoreItemRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return editorOp(c, func(s *models.EditorState) error {
		return editor.SetScoreItem(s, index, req.Field, req.Value)
	})
}

// SaveQuestion godoc
// @Summary      Finalize the current question
// @Description  Validates the working question, appends it to the survey draft, and resets the editor
// @Tags         authoring
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  models.AuthoringSession
// @Failure      422  {object}  models.ErrorResponse
// @Router       /teacher/authoring/sessions/{id}/questions [post]
func SaveQuestion(c *fiber.Ctx) error {
	session, err := svc.SaveQuestion(c.Context(), teacherID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// CancelQuestion discards the working question and resets the editor to its
// defaults. Saved questions are untouched.
func CancelQuestion(c *fiber.Ctx) error {
	session, err := svc.CancelQuestion(c.Context(), teacherID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// RemoveQuestion deletes a saved question by list position.
func RemoveQuestion(c *fiber.Ctx) error {
	index, err := pathIndex(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	session, err := svc.RemoveQuestion(c.Context(), teacherID(c), c.Params("id"), index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// SubmitSession godoc
// @Summary      Submit the survey draft
// @Description  Uploads essay reference files, creates the survey on the platform, publishes it, and clears the session
// @Tags         authoring
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      201  {object}  models.Survey
// @Failure      422  {object}  models.ErrorResponse
// @Failure      502  {object}  models.ErrorResponse
// @Router       /teacher/authoring/sessions/{id}/submit [post]
func SubmitSession(c *fiber.Ctx) error {
	survey, err := svc.Submit(c.Context(), teacherID(c), bearerToken(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(survey)
}
