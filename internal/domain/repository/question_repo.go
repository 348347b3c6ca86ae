package repository

import (
	"github.com/yourusername/udacitrivia/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами.
// Все выборки возвращают вопросы в порядке возрастания ID, чтобы
// страницы пагинации были стабильны между запросами.
type QuestionRepository interface {
	ListAll() ([]entity.Question, error)
	GetByCategory(categoryID uint) ([]entity.Question, error)
	Search(term string) ([]entity.Question, error)
	Create(question *entity.Question) error
	CreateBatch(questions []entity.Question) error
	// Delete удаляет вопрос и сообщает, существовал ли он.
	Delete(id uint) (bool, error)
}
