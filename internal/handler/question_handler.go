package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/udacitrivia/internal/domain/entity"
	"github.com/yourusername/udacitrivia/internal/handler/dto"
	"github.com/yourusername/udacitrivia/internal/service"
	"github.com/yourusername/udacitrivia/internal/service/trivia"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// paginationParams извлекает page и limit из query-параметров.
// Отсутствующие или некорректные значения заменяются значениями по умолчанию.
func paginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = trivia.DefaultPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = trivia.DefaultLimit
	}
	return page, limit
}

// GetQuestions возвращает страницу вопросов с общим количеством и картой категорий
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	page, limit := paginationParams(c)

	result, err := h.questionService.ListQuestions(page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(result))
}

// CreateQuestionRequest представляет запрос на создание вопроса
type CreateQuestionRequest struct {
	Question   string       `json:"question" binding:"required"`
	Answer     string       `json:"answer" binding:"required"`
	Category   dto.FlexUint `json:"category" binding:"required"`
	Difficulty dto.FlexInt  `json:"difficulty" binding:"required"`
}

// CreateQuestion обрабатывает создание нового вопроса.
// Любое отсутствующее поле — 422, в том числе ошибки привязки JSON.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	question := &entity.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: uint(req.Category),
		Difficulty: int(req.Difficulty),
	}

	id, err := h.questionService.CreateQuestion(question)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCreatedQuestionResponse(id))
}

// DeleteQuestion обрабатывает удаление вопроса по ID
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDeletedQuestionResponse(questionID))
}

// SearchQuestionsRequest представляет запрос поиска по подстроке
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestions возвращает вопросы, содержащие искомую подстроку.
// Пустой терм и отсутствие совпадений неразличимы для клиента — оба 404.
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusNotFound)
		return
	}

	page, limit := paginationParams(c)

	result, err := h.questionService.SearchQuestions(req.SearchTerm, page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSearchResponse(result))
}

// BulkCreateQuestionsRequest представляет запрос на пакетную загрузку вопросов
type BulkCreateQuestionsRequest struct {
	Questions []struct {
		Question   string       `json:"question" binding:"required"`
		Answer     string       `json:"answer" binding:"required"`
		Category   dto.FlexUint `json:"category" binding:"required"`
		Difficulty dto.FlexInt  `json:"difficulty" binding:"required"`
	} `json:"questions" binding:"required,min=1"`
}

// BulkCreateQuestions обрабатывает пакетную загрузку вопросов
func (h *QuestionHandler) BulkCreateQuestions(c *gin.Context) {
	var req BulkCreateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	questions := make([]entity.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, entity.Question{
			Question:   q.Question,
			Answer:     q.Answer,
			CategoryID: uint(q.Category),
			Difficulty: int(q.Difficulty),
		})
	}

	if err := h.questionService.CreateQuestions(questions); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "created": len(questions)})
}

// ExportQuestions экспортирует все вопросы в CSV или Excel формате
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	questions, err := h.questionService.AllQuestions()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

// exportCSV экспортирует вопросы в CSV с правильным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Question", "Answer", "Category", "Difficulty"})

	for _, q := range questions {
		writer.Write([]string{
			strconv.FormatUint(uint64(q.ID), 10),
			sanitizeForExcel(q.Question),
			sanitizeForExcel(q.Answer),
			strconv.FormatUint(uint64(q.CategoryID), 10),
			strconv.Itoa(q.Difficulty),
		})
	}
}

// exportXLSX экспортирует вопросы в Excel через StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuestionHandler] Ошибка создания StreamWriter: %v", err)
		respondError(c, http.StatusInternalServerError)
		return
	}

	headers := []interface{}{"ID", "Question", "Answer", "Category", "Difficulty"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		cell := fmt.Sprintf("A%d", i+2) // Первая строка — заголовки
		row := []interface{}{q.ID, sanitizeForExcel(q.Question), sanitizeForExcel(q.Answer), q.CategoryID, q.Difficulty}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuestionHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
