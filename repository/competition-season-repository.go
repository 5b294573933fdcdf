package repository

import (
	"gorm.io/gorm"
)

// CompetitionSeason is one run of a competition, e.g. a single year's
// edition. SeasonId and RulesetId reference externally managed data and are
// deliberately not foreign keys.
type CompetitionSeason struct {
	Id            int          `gorm:"primaryKey"`
	CompetitionId int          `gorm:"not null"`
	Competition   *Competition `gorm:"foreignKey:CompetitionId"`
	SeasonId      int          `gorm:"not null"`
	Phase         string       `gorm:"not null"`
	StageOrdering *int
	RulesetId     *int
}

type CompetitionSeasonRepository struct {
	DB *gorm.DB
}

func NewCompetitionSeasonRepository(db *gorm.DB) *CompetitionSeasonRepository {
	return &CompetitionSeasonRepository{DB: db}
}

func (r *CompetitionSeasonRepository) GetCompetitionSeasonById(seasonId int) (*CompetitionSeason, error) {
	var season CompetitionSeason
	result := r.DB.Preload("Competition.Sport").First(&season, seasonId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &season, nil
}

func (r *CompetitionSeasonRepository) FindAll() ([]*CompetitionSeason, error) {
	seasons := make([]*CompetitionSeason, 0)
	result := r.DB.Preload("Competition.Sport").Order("season_id asc").Find(&seasons)
	if result.Error != nil {
		return nil, result.Error
	}
	return seasons, nil
}
