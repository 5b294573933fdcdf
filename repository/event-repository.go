package repository

import (
	"time"

	"gorm.io/gorm"
)

const StatusScheduled = "scheduled"

type Event struct {
	Id                  int                `gorm:"primaryKey"`
	CompetitionSeasonId int                `gorm:"not null"`
	CompetitionSeason   *CompetitionSeason `gorm:"foreignKey:CompetitionSeasonId"`
	EventDate           time.Time          `gorm:"type:date;not null"`
	StartTime           *time.Time         `gorm:"type:time"`
	HomeTeamId          int                `gorm:"not null"`
	HomeTeam            *Team              `gorm:"foreignKey:HomeTeamId"`
	AwayTeamId          int                `gorm:"not null;check:chk_events_distinct_teams,home_team_id <> away_team_id"`
	AwayTeam            *Team              `gorm:"foreignKey:AwayTeamId"`
	VenueId             *int
	Venue               *Venue `gorm:"foreignKey:VenueId"`
	Status              string `gorm:"not null;default:scheduled"`
	HomeScore           *int
	AwayScore           *int
}

// EventFilter narrows the event list. Nil fields are ignored.
type EventFilter struct {
	EventDate           *time.Time
	CompetitionSeasonId *int
	TeamId              *int
}

var eventPreloads = []string{
	"HomeTeam",
	"AwayTeam",
	"Venue",
	"CompetitionSeason.Competition.Sport",
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) GetEventById(eventId int) (*Event, error) {
	var event Event
	query := r.DB
	for _, preload := range eventPreloads {
		query = query.Preload(preload)
	}
	result := query.First(&event, eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &event, nil
}

// FindAllOrdered returns events ordered by date, then start time. Untimed
// events sort ahead of timed ones on the same day; postgres defaults to
// NULLS LAST for ascending sorts, so NULLS FIRST is spelled out.
func (r *EventRepository) FindAllOrdered(filter *EventFilter) ([]*Event, error) {
	events := make([]*Event, 0)
	query := r.DB
	for _, preload := range eventPreloads {
		query = query.Preload(preload)
	}
	if filter != nil {
		if filter.EventDate != nil {
			query = query.Where("event_date = ?", *filter.EventDate)
		}
		if filter.CompetitionSeasonId != nil {
			query = query.Where("competition_season_id = ?", *filter.CompetitionSeasonId)
		}
		if filter.TeamId != nil {
			query = query.Where("home_team_id = ? OR away_team_id = ?", *filter.TeamId, *filter.TeamId)
		}
	}
	err := timeQuery("find_events", func() error {
		return query.Order("event_date asc, start_time asc NULLS FIRST").Find(&events).Error
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Create persists the event in its own transaction. A constraint violation
// rolls the transaction back and surfaces the driver error.
func (r *EventRepository) Create(event *Event) (*Event, error) {
	err := timeQuery("create_event", func() error {
		return r.DB.Transaction(func(tx *gorm.DB) error {
			return tx.Create(event).Error
		})
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes the event row. Returns gorm.ErrRecordNotFound when the id
// does not exist, including a repeated delete of the same id.
func (r *EventRepository) Delete(eventId int) error {
	return timeQuery("delete_event", func() error {
		return r.DB.Transaction(func(tx *gorm.DB) error {
			var event Event
			if err := tx.First(&event, eventId).Error; err != nil {
				return err
			}
			return tx.Delete(&event).Error
		})
	})
}
