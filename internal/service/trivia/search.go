package trivia

import (
	"strings"

	"github.com/yourusername/udacitrivia/internal/domain/entity"
)

// SearchQuestions возвращает вопросы, текст которых содержит term как
// подстроку без учета регистра. Пустой term не совпадает ни с чем —
// контракт явный: пустой поиск не означает "все вопросы".
func SearchQuestions(all []entity.Question, term string) []entity.Question {
	if term == "" {
		return []entity.Question{}
	}

	needle := strings.ToLower(term)
	matched := make([]entity.Question, 0)
	for _, question := range all {
		if strings.Contains(strings.ToLower(question.Question), needle) {
			matched = append(matched, question)
		}
	}
	return matched
}
