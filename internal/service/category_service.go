package service

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/udacitrivia/internal/domain/entity"
	"github.com/yourusername/udacitrivia/internal/domain/repository"
	apperrors "github.com/yourusername/udacitrivia/internal/pkg/errors"
	"github.com/yourusername/udacitrivia/internal/service/trivia"
)

// Кеширование карты категорий: категории меняются только сид-процессом,
// поэтому короткого TTL достаточно
const (
	categoryMapCacheKey = "categories:map"
	categoryMapCacheTTL = 5 * time.Minute
)

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository // nil, если Redis не сконфигурирован
}

// NewCategoryService создает новый сервис категорий.
// cacheRepo может быть nil — тогда все запросы идут в БД.
func NewCategoryService(categoryRepo repository.CategoryRepository, cacheRepo repository.CacheRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
	}
}

// ListCategories возвращает все категории
func (s *CategoryService) ListCategories() ([]entity.Category, error) {
	return s.categoryRepo.ListAll()
}

// GetCategoryMap возвращает отображение ID категории в имя.
// Результат кешируется; ошибки кеша деградируют до чтения из БД.
func (s *CategoryService) GetCategoryMap() (map[uint]string, error) {
	if s.cacheRepo != nil {
		var cached map[uint]string
		if err := s.cacheRepo.GetJSON(categoryMapCacheKey, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categoryMap := trivia.BuildCategoryMap(categories)

	if s.cacheRepo != nil && len(categoryMap) > 0 {
		if err := s.cacheRepo.SetJSON(categoryMapCacheKey, categoryMap, categoryMapCacheTTL); err != nil {
			log.Printf("[CategoryService] Не удалось закешировать карту категорий: %v", err)
		}
	}

	return categoryMap, nil
}

// CurrentCategoryName возвращает имя категории с заданным ID.
// Для неизвестного ID (включая висячую ссылку из вопроса) — пустая строка.
func (s *CategoryService) CurrentCategoryName(id uint) (string, error) {
	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return "", fmt.Errorf("failed to list categories: %w", err)
	}
	return trivia.CurrentCategoryName(categories, id), nil
}

// ValidateCategoryID проверяет, что ID попадает в диапазон засеянных категорий.
// Диапазон выводится из живых данных, а не из константы, чтобы не устаревать
// при досеве категорий.
func (s *CategoryService) ValidateCategoryID(id uint) error {
	maxID, err := s.categoryRepo.MaxID()
	if err != nil {
		return fmt.Errorf("failed to resolve category range: %w", err)
	}
	if id < 1 || id > maxID {
		return fmt.Errorf("%w: category id %d is outside [1, %d]", apperrors.ErrMethodNotAllowed, id, maxID)
	}
	return nil
}
