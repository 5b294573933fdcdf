package service

import (
	"sportcal/repository"

	"gorm.io/gorm"
)

type CompetitionService struct {
	competitionRepository *repository.CompetitionRepository
}

func NewCompetitionService(db *gorm.DB) *CompetitionService {
	return &CompetitionService{
		competitionRepository: repository.NewCompetitionRepository(db),
	}
}

func (e *CompetitionService) GetAllCompetitions() ([]*repository.Competition, error) {
	return e.competitionRepository.FindAll()
}
