package app_error

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	Respond(c, err)
	return recorder
}

func TestRespondValidationError(t *testing.T) {
	recorder := respond(NewValidationError("missing required fields", "event_date", "home_team_id"))
	assert.Equal(t, 400, recorder.Code)
	assert.JSONEq(t, `{"error": "missing required fields", "details": ["event_date", "home_team_id"]}`, recorder.Body.String())

	recorder = respond(NewValidationError("home and away team must differ"))
	assert.Equal(t, 400, recorder.Code)
	assert.JSONEq(t, `{"error": "home and away team must differ"}`, recorder.Body.String())
}

func TestRespondNotFoundError(t *testing.T) {
	recorder := respond(&NotFoundError{Resource: "Event"})
	assert.Equal(t, 404, recorder.Code)
	assert.JSONEq(t, `{"error": "Event not found"}`, recorder.Body.String())
}

func TestRespondPersistenceError(t *testing.T) {
	driverErr := errors.New(`pq: duplicate key value violates unique constraint "sports_name_key"`)
	recorder := respond(&PersistenceError{Err: driverErr})
	assert.Equal(t, 400, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "duplicate key value")
}

func TestRespondUnknownError(t *testing.T) {
	recorder := respond(errors.New("connection reset"))
	assert.Equal(t, 500, recorder.Code)
}
