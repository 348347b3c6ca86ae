package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/udacitrivia/internal/handler/dto"
	"github.com/yourusername/udacitrivia/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// GetCategories возвращает карту всех категорий.
// Пустой набор категорий на границе API считается "не найдено".
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategoryMap()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if len(categories) == 0 {
		respondError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryMapResponse(categories))
}

// GetQuestionsByCategory возвращает страницу вопросов одной категории.
// ID вне диапазона засеянных категорий отдает 405; пустая категория — 200.
func (h *CategoryHandler) GetQuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста
	page, limit := paginationParams(c)

	result, err := h.questionService.QuestionsByCategory(categoryID, page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryQuestionsResponse(result))
}
