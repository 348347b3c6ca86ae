package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/udacitrivia/internal/domain/entity"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// ListAll возвращает все категории, упорядоченные по ID
func (r *CategoryRepo) ListAll() ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// MaxID возвращает максимальный ID категории (0 при пустой таблице)
func (r *CategoryRepo) MaxID() (uint, error) {
	var maxID uint
	err := r.db.Model(&entity.Category{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	return maxID, nil
}
