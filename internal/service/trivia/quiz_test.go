package trivia

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/udacitrivia/internal/domain/entity"
)

func quizCandidates() []entity.Question {
	return []entity.Question{
		{ID: 1, Question: "q1", Answer: "a1", CategoryID: 4, Difficulty: 1},
		{ID: 2, Question: "q2", Answer: "a2", CategoryID: 4, Difficulty: 2},
		{ID: 3, Question: "q3", Answer: "a3", CategoryID: 4, Difficulty: 3},
	}
}

// TestNextQuizQuestion_Exhausted — все кандидаты уже заданы, викторина завершена
func TestNextQuizQuestion_Exhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	got := NextQuizQuestion(quizCandidates(), []uint{1, 2, 3}, rng)

	assert.Nil(t, got)
}

// TestNextQuizQuestion_NeverRepeats — заданный вопрос никогда не возвращается
func TestNextQuizQuestion_NeverRepeats(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		got := NextQuizQuestion(quizCandidates(), []uint{1}, rng)
		require.NotNil(t, got)
		assert.NotEqual(t, uint(1), got.ID)
		assert.Contains(t, []uint{2, 3}, got.ID)
	}
}

// TestNextQuizQuestion_SingleRemaining — последний незаданный вопрос возвращается,
// викторина не обрывается с вопросом в запасе
func TestNextQuizQuestion_SingleRemaining(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	got := NextQuizQuestion(quizCandidates(), []uint{1, 3}, rng)

	require.NotNil(t, got)
	assert.Equal(t, uint(2), got.ID)
}

// TestNextQuizQuestion_Deterministic — фиксированный seed дает воспроизводимую
// последовательность выборов
func TestNextQuizQuestion_Deterministic(t *testing.T) {
	first := rand.New(rand.NewSource(42))
	second := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		a := NextQuizQuestion(quizCandidates(), nil, first)
		b := NextQuizQuestion(quizCandidates(), nil, second)
		require.NotNil(t, a)
		require.NotNil(t, b)
		assert.Equal(t, a.ID, b.ID)
	}
}

// TestNextQuizQuestion_DuplicateAskedIDs — дубликаты в списке заданных
// эквивалентны множеству
func TestNextQuizQuestion_DuplicateAskedIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	got := NextQuizQuestion(quizCandidates(), []uint{1, 2, 1, 2, 1, 2}, rng)

	require.NotNil(t, got)
	assert.Equal(t, uint(3), got.ID)
}

// TestNextQuizQuestion_EmptyCandidates — нет кандидатов вовсе
func TestNextQuizQuestion_EmptyCandidates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Nil(t, NextQuizQuestion(nil, nil, rng))
}

// TestNextQuizQuestion_UnknownAskedIDs — чужие ID в списке заданных не мешают выбору
func TestNextQuizQuestion_UnknownAskedIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	got := NextQuizQuestion(quizCandidates(), []uint{100, 200}, rng)

	require.NotNil(t, got)
	assert.Contains(t, []uint{1, 2, 3}, got.ID)
}
