package trivia

import (
	"math/rand"

	"github.com/yourusername/udacitrivia/internal/domain/entity"
)

// NextQuizQuestion выбирает следующий вопрос викторины: исключает уже заданные
// и равновероятно выбирает один из оставшихся через переданный rng.
// Возвращает nil, когда незаданных вопросов не осталось — это сигнал
// "викторина завершена", а не ошибка. Если остался ровно один вопрос,
// возвращается он: викторина не обрывается с одним вопросом в запасе.
//
// askedIDs может содержать дубликаты — семантически это множество.
// rng инъецируется ради воспроизводимости в тестах; rand.Rand не потокобезопасен,
// синхронизацию обеспечивает вызывающая сторона.
func NextQuizQuestion(candidates []entity.Question, askedIDs []uint, rng *rand.Rand) *entity.Question {
	asked := make(map[uint]struct{}, len(askedIDs))
	for _, id := range askedIDs {
		asked[id] = struct{}{}
	}

	remaining := make([]entity.Question, 0, len(candidates))
	for _, question := range candidates {
		if _, seen := asked[question.ID]; !seen {
			remaining = append(remaining, question)
		}
	}

	if len(remaining) == 0 {
		return nil
	}

	next := remaining[rng.Intn(len(remaining))]
	return &next
}
