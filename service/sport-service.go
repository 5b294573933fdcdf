package service

import (
	"sportcal/repository"

	"gorm.io/gorm"
)

type SportService struct {
	sportRepository *repository.SportRepository
}

func NewSportService(db *gorm.DB) *SportService {
	return &SportService{
		sportRepository: repository.NewSportRepository(db),
	}
}

func (e *SportService) GetAllSports() ([]*repository.Sport, error) {
	return e.sportRepository.FindAll()
}
