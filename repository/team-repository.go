package repository

import (
	"gorm.io/gorm"
)

type Team struct {
	Id           int    `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	OfficialName *string
	Slug         *string
	Abbreviation *string
	LogoUrl      *string
	City         *string
	Country      *string
	FoundedYear  *int
}

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) GetTeamById(teamId int) (*Team, error) {
	var team Team
	result := r.DB.First(&team, teamId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &team, nil
}

func (r *TeamRepository) FindAll() ([]*Team, error) {
	teams := make([]*Team, 0)
	result := r.DB.Order("name asc").Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}
	return teams, nil
}
