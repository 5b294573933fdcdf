package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sportcal/app_error"
	"sportcal/repository"
	"sportcal/service"
	"sportcal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	dateLayout        = "2006-01-02"
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
)

type EventController struct {
	eventService *service.EventService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		eventService: service.NewEventService(db),
	}
}

func setupEventController(db *gorm.DB) []RouteInfo {
	e := NewEventController(db)
	basePath := "/events"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEventsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createEventHandler()},
		{Method: "GET", Path: "/:event_id", HandlerFunc: e.getEventHandler()},
		{Method: "DELETE", Path: "/:event_id", HandlerFunc: e.deleteEventHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Fetches all events with their joined reference data, ordered
// @Description by event date, then start time (untimed events first)
// @Tags event
// @Produce json
// @Param date query string false "Filter by event date (YYYY-MM-DD)"
// @Param competition_season_id query int false "Filter by competition season"
// @Param team_id query int false "Filter by home or away team"
// @Success 200 {array} EventResponse
// @Router /events [get]
func (e *EventController) getEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := eventFilterFromQuery(c)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		events, err := e.eventService.GetAllEvents(filter)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(events, toEventResponse))
	}
}

// @Description Creates an event and returns it as a subsequent fetch would
// @Tags event
// @Accept json
// @Produce json
// @Param event body EventCreate true "Event to create"
// @Success 201 {object} EventResponse
// @Failure 400 {object} map[string]any
// @Router /events [post]
func (e *EventController) createEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var eventCreate EventCreate
		if err := c.BindJSON(&eventCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := eventCreate.toModel()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		dbevent, err := e.eventService.CreateEvent(event)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toEventResponse(dbevent))
	}
}

// @Description Gets an event by id
// @Tags event
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} EventResponse
// @Failure 404 {object} map[string]string
// @Router /events/{event_id} [get]
func (e *EventController) getEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.GetEventById(eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @Description Deletes an event. Repeating the delete yields a 404.
// @Tags event
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{event_id} [delete]
func (e *EventController) deleteEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		err = e.eventService.DeleteEvent(eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"message": "Event deleted"})
	}
}

func eventFilterFromQuery(c *gin.Context) (*repository.EventFilter, error) {
	filter := &repository.EventFilter{}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, app_error.NewValidationError("date must be an ISO-8601 date (YYYY-MM-DD)")
		}
		filter.EventDate = &date
	}
	if raw := c.Query("competition_season_id"); raw != "" {
		seasonId, err := strconv.Atoi(raw)
		if err != nil {
			return nil, app_error.NewValidationError("competition_season_id must be an integer")
		}
		filter.CompetitionSeasonId = &seasonId
	}
	if raw := c.Query("team_id"); raw != "" {
		teamId, err := strconv.Atoi(raw)
		if err != nil {
			return nil, app_error.NewValidationError("team_id must be an integer")
		}
		filter.TeamId = &teamId
	}
	return filter, nil
}

// EventCreate is the creation payload. Required and optional fields are all
// pointers so an absent key is distinguishable from a zero value.
type EventCreate struct {
	CompetitionSeasonId *int    `json:"competition_season_id"`
	EventDate           *string `json:"event_date"`
	StartTime           *string `json:"start_time"`
	HomeTeamId          *int    `json:"home_team_id"`
	AwayTeamId          *int    `json:"away_team_id"`
	VenueId             *int    `json:"venue_id"`
	Status              *string `json:"status"`
	HomeScore           *int    `json:"home_score"`
	AwayScore           *int    `json:"away_score"`
}

func (e *EventCreate) toModel() (*repository.Event, error) {
	missing := make([]string, 0)
	if e.CompetitionSeasonId == nil {
		missing = append(missing, "competition_season_id")
	}
	if e.EventDate == nil {
		missing = append(missing, "event_date")
	}
	if e.HomeTeamId == nil {
		missing = append(missing, "home_team_id")
	}
	if e.AwayTeamId == nil {
		missing = append(missing, "away_team_id")
	}
	if len(missing) > 0 {
		return nil, app_error.NewValidationError("missing required fields", missing...)
	}
	eventDate, err := time.Parse(dateLayout, *e.EventDate)
	if err != nil {
		return nil, app_error.NewValidationError("event_date must be an ISO-8601 date (YYYY-MM-DD)")
	}
	var startTime *time.Time
	if e.StartTime != nil && *e.StartTime != "" {
		parsed, err := parseStartTime(*e.StartTime)
		if err != nil {
			return nil, app_error.NewValidationError("start_time must be an ISO-8601 time (HH:MM or HH:MM:SS)")
		}
		startTime = &parsed
	}
	if *e.HomeTeamId == *e.AwayTeamId {
		return nil, app_error.NewValidationError("home and away team must differ")
	}
	status := repository.StatusScheduled
	if e.Status != nil && *e.Status != "" {
		status = *e.Status
	}
	return &repository.Event{
		CompetitionSeasonId: *e.CompetitionSeasonId,
		EventDate:           eventDate,
		StartTime:           startTime,
		HomeTeamId:          *e.HomeTeamId,
		AwayTeamId:          *e.AwayTeamId,
		VenueId:             e.VenueId,
		Status:              status,
		HomeScore:           e.HomeScore,
		AwayScore:           e.AwayScore,
	}, nil
}

func parseStartTime(raw string) (time.Time, error) {
	parsed, err := time.Parse(timeLayoutSeconds, raw)
	if err != nil {
		parsed, err = time.Parse(timeLayout, raw)
	}
	return parsed, err
}

type EventResponse struct {
	EventId             int                   `json:"event_id"`
	CompetitionSeasonId int                   `json:"competition_season_id"`
	EventDate           string                `json:"event_date"`
	StartTime           *string               `json:"start_time"`
	Status              string                `json:"status"`
	HomeScore           *int                  `json:"home_score"`
	AwayScore           *int                  `json:"away_score"`
	Score               *string               `json:"score"`
	HomeTeam            *TeamReference        `json:"home_team"`
	AwayTeam            *TeamReference        `json:"away_team"`
	Venue               *VenueReference       `json:"venue"`
	Competition         *CompetitionReference `json:"competition"`
	Sport               *SportReference       `json:"sport"`
}

// displayStatus derives the visible status. A stored "played" in any casing
// or a complete pair of scores marks the event as played; everything else is
// scheduled, even when the event date has passed.
func displayStatus(event *repository.Event) string {
	if strings.EqualFold(event.Status, "played") {
		return "played"
	}
	if event.HomeScore != nil && event.AwayScore != nil {
		return "played"
	}
	return repository.StatusScheduled
}

// displayScore renders "home - away" only when both scores are present.
func displayScore(event *repository.Event) *string {
	if event.HomeScore == nil || event.AwayScore == nil {
		return nil
	}
	score := fmt.Sprintf("%d - %d", *event.HomeScore, *event.AwayScore)
	return &score
}

func toEventResponse(event *repository.Event) *EventResponse {
	response := &EventResponse{
		EventId:             event.Id,
		CompetitionSeasonId: event.CompetitionSeasonId,
		EventDate:           event.EventDate.Format(dateLayout),
		Status:              displayStatus(event),
		HomeScore:           event.HomeScore,
		AwayScore:           event.AwayScore,
		Score:               displayScore(event),
		HomeTeam:            toTeamReference(event.HomeTeam),
		AwayTeam:            toTeamReference(event.AwayTeam),
		Venue:               toVenueReference(event.Venue),
	}
	if event.StartTime != nil {
		// minute precision
		startTime := event.StartTime.Format(timeLayout)
		response.StartTime = &startTime
	}
	if season := event.CompetitionSeason; season != nil && season.Competition != nil {
		response.Competition = &CompetitionReference{
			CompetitionId: season.Competition.Id,
			Name:          season.Competition.Name,
			Description:   season.Competition.Description,
			Phase:         season.Phase,
			SeasonId:      season.SeasonId,
		}
		response.Sport = toSportReference(season.Competition.Sport)
	}
	return response
}
