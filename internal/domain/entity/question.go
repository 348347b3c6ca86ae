package entity

// Границы допустимой сложности вопроса
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question представляет вопрос викторины.
// Вопросы создаются клиентом и удаляются по ID; обновление не поддерживается.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"size:500;not null" json:"question"`
	Answer     string `gorm:"size:500;not null" json:"answer"`
	CategoryID uint   `gorm:"column:category;index" json:"category"`
	Difficulty int    `gorm:"not null;default:1" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// HasValidDifficulty проверяет, что сложность в допустимых границах
func (q *Question) HasValidDifficulty() bool {
	return q.Difficulty >= MinDifficulty && q.Difficulty <= MaxDifficulty
}

// IsComplete проверяет, что заполнены все обязательные поля вопроса
func (q *Question) IsComplete() bool {
	return q.Question != "" && q.Answer != "" && q.CategoryID != 0 && q.Difficulty != 0
}
