// Package trivia содержит чистую логику викторины: пагинацию, фильтры по
// категории и подстроке и выбор следующего вопроса. Функции пакета не ходят
// в БД и не держат состояние — все данные передаются вызывающей стороной.
package trivia

import "github.com/yourusername/udacitrivia/internal/domain/entity"

// Значения по умолчанию для пагинации
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Paginate возвращает окно [start, end) из items для заданной страницы.
// Неположительные page/limit заменяются значениями по умолчанию.
// Страница за пределами коллекции дает пустой срез, а не ошибку —
// решение о 404 принимает вызывающая сторона.
// items должны быть уже отфильтрованы и упорядочены по ID.
func Paginate(items []entity.Question, page, limit int) []entity.Question {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	// (page-1)*limit переполняется на гигантских page и заворачивается
	// в отрицательное значение; такая страница тоже за пределами коллекции
	start := (page - 1) * limit
	if start < 0 || start >= len(items) {
		return []entity.Question{}
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
