package models

import "github.com/m04kA/SMC-CoachingCalendar/internal/domain"

// ClientResponse клиент из справочника
type ClientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ClientListResponse результат поиска клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// FromDomainClient конвертирует domain.Client в ClientResponse
func FromDomainClient(c domain.Client) ClientResponse {
	return ClientResponse{
		ID:    c.ID,
		Name:  c.Name,
		Phone: c.Phone,
	}
}
