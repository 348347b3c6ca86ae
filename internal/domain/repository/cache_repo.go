package repository

import "time"

// CacheRepository определяет методы для работы с кешем.
// Единственный кешируемый объект — карта категорий, поэтому интерфейс
// сведен к JSON-операциям.
type CacheRepository interface {
	GetJSON(key string, dest interface{}) error
	SetJSON(key string, value interface{}, expiration time.Duration) error
}
