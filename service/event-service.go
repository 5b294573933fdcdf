package service

import (
	"errors"
	"sportcal/app_error"
	"sportcal/metrics"
	"sportcal/repository"

	"gorm.io/gorm"
)

type EventService struct {
	eventRepository *repository.EventRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		eventRepository: repository.NewEventRepository(db),
	}
}

func (e *EventService) GetAllEvents(filter *repository.EventFilter) ([]*repository.Event, error) {
	return e.eventRepository.FindAllOrdered(filter)
}

func (e *EventService) GetEventById(eventId int) (*repository.Event, error) {
	event, err := e.eventRepository.GetEventById(eventId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &app_error.NotFoundError{Resource: "Event"}
		}
		return nil, err
	}
	return event, nil
}

// CreateEvent persists the event and re-reads it with all joined reference
// data, so the response is exactly what a subsequent GET would return.
func (e *EventService) CreateEvent(event *repository.Event) (*repository.Event, error) {
	created, err := e.eventRepository.Create(event)
	if err != nil {
		return nil, &app_error.PersistenceError{Err: err}
	}
	metrics.EventsCreatedCounter.Inc()
	return e.GetEventById(created.Id)
}

func (e *EventService) DeleteEvent(eventId int) error {
	err := e.eventRepository.Delete(eventId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &app_error.NotFoundError{Resource: "Event"}
		}
		return err
	}
	metrics.EventsDeletedCounter.Inc()
	return nil
}
