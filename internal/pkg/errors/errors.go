package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись, страница или результат поиска не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных
	// (отсутствующие поля при создании вопроса, сбой вставки в репозитории).
	ErrValidation = errors.New("validation failed")

	// ErrBadRequest используется для некорректного запроса викторины
	// (категория 0 или отсутствующий payload).
	ErrBadRequest = errors.New("bad request")

	// ErrMethodNotAllowed используется, когда ID категории вне допустимого диапазона.
	// Исторический контракт клиента: диапазон категорий отдаёт 405, а не 404.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
