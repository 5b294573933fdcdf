package service

import (
	"errors"
	"sportcal/app_error"
	"sportcal/repository"

	"gorm.io/gorm"
)

type TeamService struct {
	teamRepository *repository.TeamRepository
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		teamRepository: repository.NewTeamRepository(db),
	}
}

func (e *TeamService) GetAllTeams() ([]*repository.Team, error) {
	return e.teamRepository.FindAll()
}

func (e *TeamService) GetTeamById(teamId int) (*repository.Team, error) {
	team, err := e.teamRepository.GetTeamById(teamId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &app_error.NotFoundError{Resource: "Team"}
		}
		return nil, err
	}
	return team, nil
}
