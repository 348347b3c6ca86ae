package trivia

import "github.com/yourusername/udacitrivia/internal/domain/entity"

// BuildCategoryMap строит отображение ID категории в отображаемое имя.
// Пустой вход дает пустую карту — это валидное состояние, не ошибка.
func BuildCategoryMap(categories []entity.Category) map[uint]string {
	categoryMap := make(map[uint]string, len(categories))
	for _, category := range categories {
		categoryMap[category.ID] = category.Type
	}
	return categoryMap
}

// CurrentCategoryName возвращает имя категории с заданным ID.
// Если категория не найдена (в т.ч. висячая ссылка из вопроса),
// возвращается пустая строка.
func CurrentCategoryName(categories []entity.Category, id uint) string {
	for _, category := range categories {
		if category.ID == id {
			return category.Type
		}
	}
	return ""
}
