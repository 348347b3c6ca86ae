package trivia

import "github.com/yourusername/udacitrivia/internal/domain/entity"

// QuestionsInCategory возвращает вопросы, принадлежащие категории categoryID.
// Валидация диапазона ID — обязанность вызывающей стороны: сюда попадает
// только уже проверенный идентификатор.
func QuestionsInCategory(all []entity.Question, categoryID uint) []entity.Question {
	filtered := make([]entity.Question, 0)
	for _, question := range all {
		if question.CategoryID == categoryID {
			filtered = append(filtered, question)
		}
	}
	return filtered
}
