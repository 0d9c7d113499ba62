package handler

import (
	"wikiquiz/internal/domain"
	"wikiquiz/internal/dto"
	"wikiquiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz handles POST /api/quizzes. Errors propagate to the
// centralized error handler, which owns status mapping.
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be a JSON object with a url field")
	}

	quiz, err := h.service.GenerateQuiz(c.Context(), req.URL)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// ListQuizzes handles GET /api/quizzes
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	history, err := h.service.GetQuizHistory(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(history)
}
