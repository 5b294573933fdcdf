package repository

import (
	"gorm.io/gorm"
)

type Competition struct {
	Id          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	SportId     int    `gorm:"not null"`
	Sport       *Sport `gorm:"foreignKey:SportId"`
	Description *string
	ExternalId  *string
}

type CompetitionRepository struct {
	DB *gorm.DB
}

func NewCompetitionRepository(db *gorm.DB) *CompetitionRepository {
	return &CompetitionRepository{DB: db}
}

func (r *CompetitionRepository) GetCompetitionById(competitionId int) (*Competition, error) {
	var competition Competition
	result := r.DB.Preload("Sport").First(&competition, competitionId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &competition, nil
}

func (r *CompetitionRepository) FindAll() ([]*Competition, error) {
	competitions := make([]*Competition, 0)
	result := r.DB.Preload("Sport").Order("name asc").Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}
	return competitions, nil
}
