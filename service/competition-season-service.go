package service

import (
	"sportcal/repository"

	"gorm.io/gorm"
)

type CompetitionSeasonService struct {
	seasonRepository *repository.CompetitionSeasonRepository
}

func NewCompetitionSeasonService(db *gorm.DB) *CompetitionSeasonService {
	return &CompetitionSeasonService{
		seasonRepository: repository.NewCompetitionSeasonRepository(db),
	}
}

func (e *CompetitionSeasonService) GetAllCompetitionSeasons() ([]*repository.CompetitionSeason, error) {
	return e.seasonRepository.FindAll()
}
