package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/udacitrivia/internal/handler/dto"
	"github.com/yourusername/udacitrivia/internal/service"
)

// QuizHandler обрабатывает запросы игрового режима
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategoryRequest представляет выбранную категорию викторины
type QuizCategoryRequest struct {
	ID dto.FlexUint `json:"id"`
}

// NextQuestionRequest представляет состояние викторины, присланное клиентом
type NextQuestionRequest struct {
	QuizCategory      *QuizCategoryRequest `json:"quiz_category"`
	PreviousQuestions dto.IDList           `json:"previous_questions"`
}

// NextQuestion возвращает следующий случайный незаданный вопрос категории.
// Некорректный payload или категория 0 — 400. Исчерпание вопросов — это
// question: null с кодом 200, а не ошибка.
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}
	if req.QuizCategory == nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(uint(req.QuizCategory.ID), req.PreviousQuestions)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(question))
}
