package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	clientRepo "github.com/m04kA/SMC-CoachingCalendar/internal/infra/storage/client"
	"github.com/m04kA/SMC-CoachingCalendar/internal/service/clients/models"
)

// Service сервис справочника клиентов
type Service struct {
	repo   ClientRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(repo ClientRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Search ищет клиентов по подстроке имени или телефона
func (s *Service) Search(ctx context.Context, q string) (*models.ClientListResponse, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) > domain.MaxClientSearchQueryLength {
		s.logger.Warn("Search: query too long (%d chars)", utf8.RuneCountInString(q))
		return nil, fmt.Errorf("%w: query must be at most %d characters", ErrInvalidInput, domain.MaxClientSearchQueryLength)
	}

	s.logger.Info("Search: q=%q", q)

	found, err := s.repo.Search(ctx, q, domain.MaxClientSearchResults)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	items := make([]models.ClientResponse, 0, len(found))
	for _, c := range found {
		if !c.Matches(q) {
			continue
		}
		items = append(items, models.FromDomainClient(c))
	}

	s.logger.Info("Search: found %d clients", len(items))
	return &models.ClientListResponse{Clients: items, Total: len(items)}, nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ClientResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrClientNotFound
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainClient(*c)
	return &resp, nil
}
