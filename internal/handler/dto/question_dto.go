package dto

import (
	"github.com/yourusername/udacitrivia/internal/domain/entity"
	"github.com/yourusername/udacitrivia/internal/service"
)

// CategoryMapResponse представляет ответ со списком категорий
type CategoryMapResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// NewCategoryMapResponse создает ответ со списком категорий
func NewCategoryMapResponse(categories map[uint]string) CategoryMapResponse {
	return CategoryMapResponse{Success: true, Categories: categories}
}

// QuestionListResponse представляет страницу вопросов со справочной информацией
type QuestionListResponse struct {
	Questions       []entity.Question `json:"questions"`
	TotalQuestions  int               `json:"totalQuestions"`
	Categories      map[uint]string   `json:"categories"`
	CurrentCategory string            `json:"currentCategory"`
}

// NewQuestionListResponse создает ответ страницы вопросов
func NewQuestionListResponse(page *service.QuestionPage) QuestionListResponse {
	return QuestionListResponse{
		Questions:       page.Questions,
		TotalQuestions:  page.TotalQuestions,
		Categories:      page.Categories,
		CurrentCategory: page.CurrentCategory,
	}
}

// SearchResponse представляет результат поиска вопросов.
// currentCategory в этом ответе всегда пустая строка — контракт клиента.
type SearchResponse struct {
	Questions       []entity.Question `json:"questions"`
	TotalQuestions  int               `json:"totalQuestions"`
	CurrentCategory string            `json:"currentCategory"`
}

// NewSearchResponse создает ответ поиска
func NewSearchResponse(result *service.SearchResult) SearchResponse {
	return SearchResponse{
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
	}
}

// CategoryQuestionsResponse представляет вопросы одной категории
type CategoryQuestionsResponse struct {
	Questions       []entity.Question `json:"questions"`
	TotalQuestions  int               `json:"totalQuestions"`
	CurrentCategory string            `json:"currentCategory"`
}

// NewCategoryQuestionsResponse создает ответ с вопросами категории
func NewCategoryQuestionsResponse(result *service.CategoryQuestions) CategoryQuestionsResponse {
	return CategoryQuestionsResponse{
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	}
}

// CreatedQuestionResponse представляет ответ на создание вопроса
type CreatedQuestionResponse struct {
	Success  bool `json:"success"`
	Question uint `json:"question"`
}

// NewCreatedQuestionResponse создает ответ с ID нового вопроса
func NewCreatedQuestionResponse(id uint) CreatedQuestionResponse {
	return CreatedQuestionResponse{Success: true, Question: id}
}

// DeletedQuestionResponse представляет ответ на удаление вопроса
type DeletedQuestionResponse struct {
	Success         bool `json:"success"`
	DeletedQuestion uint `json:"deleted_question"`
}

// NewDeletedQuestionResponse создает ответ с ID удаленного вопроса
func NewDeletedQuestionResponse(id uint) DeletedQuestionResponse {
	return DeletedQuestionResponse{Success: true, DeletedQuestion: id}
}

// QuizResponse представляет следующий вопрос викторины.
// Question равен null, когда незаданных вопросов не осталось.
type QuizResponse struct {
	Question *entity.Question `json:"question"`
}

// NewQuizResponse создает ответ викторины
func NewQuizResponse(question *entity.Question) QuizResponse {
	return QuizResponse{Question: question}
}

// ErrorResponse представляет единый конверт ошибки
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse создает конверт ошибки с фиксированным сообщением
func NewErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: code, Message: message}
}
