package catalog

import (
	"context"
	"fmt"

	"github.com/playgrid/SlotBookingService/internal/domain"
	"github.com/playgrid/SlotBookingService/internal/service/catalog/models"
)

// Service сервис каталога: площадки, виды спорта, даты.
// Только детерминированные чтения без побочных эффектов.
type Service struct {
	venueRepo VenueRepository
	slotRepo  SlotRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(venueRepo VenueRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		venueRepo: venueRepo,
		slotRepo:  slotRepo,
		logger:    logger,
	}
}

// GetVenues возвращает все площадки, отсортированные по имени
func (s *Service) GetVenues(ctx context.Context) ([]models.VenueResponse, error) {
	venues, err := s.venueRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("GetVenues: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetVenues - repository error: %v", ErrInternal, err)
	}

	result := make([]models.VenueResponse, 0, len(venues))
	for _, v := range venues {
		result = append(result, models.VenueResponse{ID: v.ID, Name: v.Name})
	}

	s.logger.Info("GetVenues: fetched %d venues", len(result))
	return result, nil
}

// GetSports возвращает статический список видов спорта
func (s *Service) GetSports(ctx context.Context) ([]models.SportResponse, error) {
	result := make([]models.SportResponse, 0, len(domain.Sports))
	for _, sport := range domain.Sports {
		result = append(result, models.SportResponse{ID: sport.ID, Name: sport.Name})
	}
	return result, nil
}

// GetDates возвращает даты, на которые существуют слоты, по возрастанию,
// с полным названием дня недели
func (s *Service) GetDates(ctx context.Context) ([]models.DateResponse, error) {
	dates, err := s.slotRepo.ListDates(ctx)
	if err != nil {
		s.logger.Error("GetDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetDates - repository error: %v", ErrInternal, err)
	}

	result := make([]models.DateResponse, 0, len(dates))
	for _, d := range dates {
		result = append(result, models.DateResponse{
			Date: d.Date.Format(domain.DateFormat),
			Day:  d.Day(),
		})
	}

	s.logger.Info("GetDates: fetched %d dates", len(result))
	return result, nil
}
