package repository

import (
	"gorm.io/gorm"
)

type Venue struct {
	Id       int    `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	City     *string
	Country  *string
	Capacity *int
}

type VenueRepository struct {
	DB *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{DB: db}
}

func (r *VenueRepository) GetVenueById(venueId int) (*Venue, error) {
	var venue Venue
	result := r.DB.First(&venue, venueId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &venue, nil
}

func (r *VenueRepository) FindAll() ([]*Venue, error) {
	venues := make([]*Venue, 0)
	result := r.DB.Order("name asc").Find(&venues)
	if result.Error != nil {
		return nil, result.Error
	}
	return venues, nil
}
