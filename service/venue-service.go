package service

import (
	"errors"
	"sportcal/app_error"
	"sportcal/repository"

	"gorm.io/gorm"
)

type VenueService struct {
	venueRepository *repository.VenueRepository
}

func NewVenueService(db *gorm.DB) *VenueService {
	return &VenueService{
		venueRepository: repository.NewVenueRepository(db),
	}
}

func (e *VenueService) GetAllVenues() ([]*repository.Venue, error) {
	return e.venueRepository.FindAll()
}

func (e *VenueService) GetVenueById(venueId int) (*repository.Venue, error) {
	venue, err := e.venueRepository.GetVenueById(venueId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &app_error.NotFoundError{Resource: "Venue"}
		}
		return nil, err
	}
	return venue, nil
}
