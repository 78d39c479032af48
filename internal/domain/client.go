package domain

import "strings"

// Client запись справочника клиентов
type Client struct {
	ID    string
	Name  string
	Phone string
}

// Matches проверяет совпадение с поисковой строкой:
// подстрока имени без учёта регистра или подстрока телефона
func (c Client) Matches(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) ||
		strings.Contains(c.Phone, query)
}
