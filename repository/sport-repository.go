package repository

import (
	"gorm.io/gorm"
)

type Sport struct {
	Id   int    `gorm:"primaryKey"`
	Name string `gorm:"not null;unique"`
}

type SportRepository struct {
	DB *gorm.DB
}

func NewSportRepository(db *gorm.DB) *SportRepository {
	return &SportRepository{DB: db}
}

func (r *SportRepository) GetSportById(sportId int) (*Sport, error) {
	var sport Sport
	result := r.DB.First(&sport, sportId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &sport, nil
}

func (r *SportRepository) FindAll() ([]*Sport, error) {
	sports := make([]*Sport, 0)
	result := r.DB.Order("name asc").Find(&sports)
	if result.Error != nil {
		return nil, result.Error
	}
	return sports, nil
}
