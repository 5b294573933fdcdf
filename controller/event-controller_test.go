package controller

import (
	"testing"
	"time"

	"sportcal/app_error"
	"sportcal/repository"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func validCreate() *EventCreate {
	return &EventCreate{
		CompetitionSeasonId: ptr(1),
		EventDate:           ptr("2024-05-01"),
		HomeTeamId:          ptr(10),
		AwayTeamId:          ptr(20),
	}
}

func TestEventCreateToModel(t *testing.T) {
	event, err := validCreate().toModel()
	assert.NoError(t, err)
	assert.Equal(t, 1, event.CompetitionSeasonId)
	assert.Equal(t, 10, event.HomeTeamId)
	assert.Equal(t, 20, event.AwayTeamId)
	assert.Equal(t, "2024-05-01", event.EventDate.Format("2006-01-02"))
	assert.Nil(t, event.StartTime)
	assert.Nil(t, event.VenueId)
	assert.Equal(t, "scheduled", event.Status)
}

func TestEventCreateReportsAllMissingFields(t *testing.T) {
	_, err := (&EventCreate{}).toModel()
	var validationErr *app_error.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t,
		[]string{"competition_season_id", "event_date", "home_team_id", "away_team_id"},
		validationErr.Details)

	// a partially filled payload still names every missing field
	_, err = (&EventCreate{EventDate: ptr("2024-05-01"), HomeTeamId: ptr(10)}).toModel()
	assert.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []string{"competition_season_id", "away_team_id"}, validationErr.Details)
}

func TestEventCreateRejectsMalformedDate(t *testing.T) {
	create := validCreate()
	create.EventDate = ptr("01.05.2024")
	_, err := create.toModel()
	var validationErr *app_error.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "YYYY-MM-DD")
}

func TestEventCreateStartTime(t *testing.T) {
	create := validCreate()
	create.StartTime = ptr("18:30")
	event, err := create.toModel()
	assert.NoError(t, err)
	assert.Equal(t, "18:30", event.StartTime.Format("15:04"))

	create.StartTime = ptr("18:30:15")
	event, err = create.toModel()
	assert.NoError(t, err)
	assert.Equal(t, "18:30:15", event.StartTime.Format("15:04:05"))

	// empty string means not provided
	create.StartTime = ptr("")
	event, err = create.toModel()
	assert.NoError(t, err)
	assert.Nil(t, event.StartTime)

	create.StartTime = ptr("half past six")
	_, err = create.toModel()
	var validationErr *app_error.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestEventCreateRejectsSameTeams(t *testing.T) {
	create := validCreate()
	create.AwayTeamId = ptr(10)
	_, err := create.toModel()
	var validationErr *app_error.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "home and away team must differ", validationErr.Message)
}

func TestEventCreateOptionalFields(t *testing.T) {
	create := validCreate()
	create.VenueId = ptr(3)
	create.Status = ptr("postponed")
	create.HomeScore = ptr(2)
	create.AwayScore = ptr(1)
	event, err := create.toModel()
	assert.NoError(t, err)
	assert.Equal(t, 3, *event.VenueId)
	assert.Equal(t, "postponed", event.Status)
	assert.Equal(t, 2, *event.HomeScore)
	assert.Equal(t, 1, *event.AwayScore)
}

func TestDisplayStatus(t *testing.T) {
	event := &repository.Event{Status: "scheduled"}
	assert.Equal(t, "scheduled", displayStatus(event))

	// both scores present imply played regardless of the stored status
	event.HomeScore = ptr(2)
	event.AwayScore = ptr(1)
	assert.Equal(t, "played", displayStatus(event))

	// a single score is not enough
	event.AwayScore = nil
	assert.Equal(t, "scheduled", displayStatus(event))

	// stored status wins in any casing, even without scores
	event.HomeScore = nil
	event.Status = "PLAYED"
	assert.Equal(t, "played", displayStatus(event))
	event.Status = "Played"
	assert.Equal(t, "played", displayStatus(event))
}

func TestDisplayStatusIgnoresPastDates(t *testing.T) {
	event := &repository.Event{
		Status:    "scheduled",
		EventDate: time.Now().AddDate(-1, 0, 0),
	}
	assert.Equal(t, "scheduled", displayStatus(event))
}

func TestDisplayScore(t *testing.T) {
	event := &repository.Event{}
	assert.Nil(t, displayScore(event))

	event.HomeScore = ptr(2)
	assert.Nil(t, displayScore(event))

	event.AwayScore = ptr(1)
	assert.Equal(t, "2 - 1", *displayScore(event))
}

func TestToEventResponse(t *testing.T) {
	startTime, err := time.Parse("15:04:05", "18:30:00")
	assert.NoError(t, err)
	eventDate, err := time.Parse("2006-01-02", "2024-05-01")
	assert.NoError(t, err)

	event := &repository.Event{
		Id:                  7,
		CompetitionSeasonId: 1,
		EventDate:           eventDate,
		StartTime:           &startTime,
		HomeTeamId:          10,
		HomeTeam:            &repository.Team{Id: 10, Name: "Arsenal", City: ptr("London")},
		AwayTeamId:          20,
		AwayTeam:            &repository.Team{Id: 20, Name: "Chelsea"},
		Venue:               &repository.Venue{Id: 3, Name: "Emirates Stadium"},
		Status:              "scheduled",
		HomeScore:           ptr(2),
		AwayScore:           ptr(1),
		CompetitionSeason: &repository.CompetitionSeason{
			Id:       1,
			SeasonId: 2024,
			Phase:    "group",
			Competition: &repository.Competition{
				Id:    5,
				Name:  "Premier League",
				Sport: &repository.Sport{Id: 2, Name: "Football"},
			},
		},
	}

	response := toEventResponse(event)
	assert.Equal(t, 7, response.EventId)
	assert.Equal(t, "2024-05-01", response.EventDate)
	// start times render at minute precision
	assert.Equal(t, "18:30", *response.StartTime)
	assert.Equal(t, "played", response.Status)
	assert.Equal(t, "2 - 1", *response.Score)
	assert.Equal(t, "Arsenal", response.HomeTeam.Name)
	assert.Equal(t, "London", *response.HomeTeam.City)
	assert.Equal(t, "Chelsea", response.AwayTeam.Name)
	assert.Equal(t, "Emirates Stadium", response.Venue.Name)
	assert.Equal(t, 5, response.Competition.CompetitionId)
	assert.Equal(t, "group", response.Competition.Phase)
	assert.Equal(t, 2024, response.Competition.SeasonId)
	assert.Equal(t, "Football", response.Sport.Name)
}

func TestToEventResponseMissingReferences(t *testing.T) {
	event := &repository.Event{
		Id:        7,
		EventDate: time.Now(),
		Status:    "scheduled",
	}
	response := toEventResponse(event)
	assert.Nil(t, response.StartTime)
	assert.Nil(t, response.Score)
	assert.Nil(t, response.HomeTeam)
	assert.Nil(t, response.AwayTeam)
	assert.Nil(t, response.Venue)
	assert.Nil(t, response.Competition)
	assert.Nil(t, response.Sport)
}
