package service

import (
	"fmt"

	"github.com/yourusername/udacitrivia/internal/domain/entity"
	"github.com/yourusername/udacitrivia/internal/domain/repository"
	apperrors "github.com/yourusername/udacitrivia/internal/pkg/errors"
	"github.com/yourusername/udacitrivia/internal/service/trivia"
)

// Категория, отображаемая на главной странице списка вопросов.
// Контракт клиента: страница /questions всегда показывает первую категорию.
const defaultCurrentCategoryID = 1

// QuestionPage представляет страницу списка вопросов
type QuestionPage struct {
	Questions       []entity.Question
	TotalQuestions  int
	Categories      map[uint]string
	CurrentCategory string
}

// SearchResult представляет результат поиска по подстроке
type SearchResult struct {
	Questions      []entity.Question
	TotalQuestions int
}

// CategoryQuestions представляет вопросы одной категории
type CategoryQuestions struct {
	Questions       []entity.Question
	TotalQuestions  int
	CurrentCategory string
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo    repository.QuestionRepository
	categoryService *CategoryService
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, categoryService *CategoryService) *QuestionService {
	return &QuestionService{
		questionRepo:    questionRepo,
		categoryService: categoryService,
	}
}

// ListQuestions возвращает страницу вопросов вместе с картой категорий.
// Пустое окно пагинации — это ErrNotFound: клиент запросил несуществующую страницу.
func (s *QuestionService) ListQuestions(page, limit int) (*QuestionPage, error) {
	all, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	paged := trivia.Paginate(all, page, limit)
	if len(paged) == 0 {
		return nil, fmt.Errorf("%w: page %d is empty", apperrors.ErrNotFound, page)
	}

	categoryMap, err := s.categoryService.GetCategoryMap()
	if err != nil {
		return nil, err
	}

	currentCategory, err := s.categoryService.CurrentCategoryName(defaultCurrentCategoryID)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:       paged,
		TotalQuestions:  len(all),
		Categories:      categoryMap,
		CurrentCategory: currentCategory,
	}, nil
}

// CreateQuestion валидирует и сохраняет новый вопрос, возвращая присвоенный ID.
// Сбой вставки в репозитории считается непригодным входом (422), а не 500:
// единственная причина отказа БД здесь — нарушение ограничений данными клиента.
func (s *QuestionService) CreateQuestion(question *entity.Question) (uint, error) {
	if !question.IsComplete() {
		return 0, fmt.Errorf("%w: question, answer, category and difficulty are required", apperrors.ErrValidation)
	}
	if !question.HasValidDifficulty() {
		return 0, fmt.Errorf("%w: difficulty %d is outside [%d, %d]",
			apperrors.ErrValidation, question.Difficulty, entity.MinDifficulty, entity.MaxDifficulty)
	}

	if err := s.questionRepo.Create(question); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return question.ID, nil
}

// CreateQuestions валидирует и сохраняет пакет вопросов одной транзакцией
func (s *QuestionService) CreateQuestions(questions []entity.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions provided", apperrors.ErrValidation)
	}
	for i := range questions {
		if !questions[i].IsComplete() || !questions[i].HasValidDifficulty() {
			return fmt.Errorf("%w: question #%d is incomplete or has invalid difficulty", apperrors.ErrValidation, i+1)
		}
	}

	if err := s.questionRepo.CreateBatch(questions); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}

// DeleteQuestion удаляет вопрос по ID
func (s *QuestionService) DeleteQuestion(id uint) error {
	existed, err := s.questionRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	if !existed {
		return fmt.Errorf("%w: question %d", apperrors.ErrNotFound, id)
	}
	return nil
}

// SearchQuestions возвращает страницу вопросов, содержащих term как подстроку
// без учета регистра. Пустой term не совпадает ни с чем; пустой результат — ErrNotFound.
// TotalQuestions считается по всем совпадениям, не по странице.
func (s *QuestionService) SearchQuestions(term string, page, limit int) (*SearchResult, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: empty search term", apperrors.ErrNotFound)
	}

	matched, err := s.questionRepo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}

	paged := trivia.Paginate(matched, page, limit)
	if len(paged) == 0 {
		return nil, fmt.Errorf("%w: no questions match %q", apperrors.ErrNotFound, term)
	}

	return &SearchResult{
		Questions:      paged,
		TotalQuestions: len(matched),
	}, nil
}

// QuestionsByCategory возвращает страницу вопросов категории categoryID.
// ID вне диапазона засеянных категорий отклоняется до обращения к вопросам.
// Пустая категория — валидный ответ с пустым списком.
func (s *QuestionService) QuestionsByCategory(categoryID uint, page, limit int) (*CategoryQuestions, error) {
	if err := s.categoryService.ValidateCategoryID(categoryID); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for category %d: %w", categoryID, err)
	}

	paged := trivia.Paginate(questions, page, limit)

	currentCategory, err := s.categoryService.CurrentCategoryName(categoryID)
	if err != nil {
		return nil, err
	}

	return &CategoryQuestions{
		Questions:       paged,
		TotalQuestions:  len(paged),
		CurrentCategory: currentCategory,
	}, nil
}

// AllQuestions возвращает полный список вопросов (для экспорта)
func (s *QuestionService) AllQuestions() ([]entity.Question, error) {
	return s.questionRepo.ListAll()
}
