package service

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/yourusername/udacitrivia/internal/domain/entity"
	"github.com/yourusername/udacitrivia/internal/domain/repository"
	apperrors "github.com/yourusername/udacitrivia/internal/pkg/errors"
	"github.com/yourusername/udacitrivia/internal/service/trivia"
)

// QuizService выдает следующий вопрос викторины.
// Состояние викторины (список заданных вопросов) принадлежит клиенту и
// восстанавливается из каждого запроса — сервис хранит только источник случайности.
type QuizService struct {
	questionRepo repository.QuestionRepository

	// rand.Rand не потокобезопасен, обращения сериализуются мьютексом
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizService создает новый сервис викторины.
// rng инъецируется, чтобы тесты могли задавать фиксированный seed.
func NewQuizService(questionRepo repository.QuestionRepository, rng *rand.Rand) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		rng:          rng,
	}
}

// NextQuestion возвращает случайный незаданный вопрос категории categoryID.
// Категория 0 отклоняется как некорректный запрос. nil без ошибки означает,
// что незаданных вопросов не осталось — викторина завершена.
func (s *QuizService) NextQuestion(categoryID uint, askedIDs []uint) (*entity.Question, error) {
	if categoryID == 0 {
		return nil, fmt.Errorf("%w: quiz category id is required", apperrors.ErrBadRequest)
	}

	all, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	candidates := trivia.QuestionsInCategory(all, categoryID)

	s.mu.Lock()
	defer s.mu.Unlock()
	return trivia.NextQuizQuestion(candidates, askedIDs, s.rng), nil
}
