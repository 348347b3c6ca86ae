package repository

import (
	"github.com/yourusername/udacitrivia/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями.
// Категории принадлежат внешнему сид-процессу, поэтому интерфейс только читающий.
type CategoryRepository interface {
	ListAll() ([]entity.Category, error)
	// MaxID возвращает максимальный ID среди засеянных категорий (0, если категорий нет).
	MaxID() (uint, error)
}
