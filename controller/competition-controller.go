package controller

import (
	"sportcal/repository"
	"sportcal/service"
	"sportcal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CompetitionController struct {
	competitionService *service.CompetitionService
}

func NewCompetitionController(db *gorm.DB) *CompetitionController {
	return &CompetitionController{
		competitionService: service.NewCompetitionService(db),
	}
}

func setupCompetitionController(db *gorm.DB) []RouteInfo {
	e := NewCompetitionController(db)
	return []RouteInfo{
		{Method: "GET", Path: "/competitions", HandlerFunc: e.getCompetitionsHandler()},
	}
}

// CompetitionReference is the competition shape embedded in event
// projections: competition fields plus the phase and season of the
// concrete competition season.
type CompetitionReference struct {
	CompetitionId int     `json:"competition_id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	Phase         string  `json:"phase"`
	SeasonId      int     `json:"season_id"`
}

type CompetitionResponse struct {
	CompetitionId int             `json:"competition_id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	ExternalId    *string         `json:"external_id,omitempty"`
	Sport         *SportReference `json:"sport"`
}

func toCompetitionResponse(competition *repository.Competition) *CompetitionResponse {
	return &CompetitionResponse{
		CompetitionId: competition.Id,
		Name:          competition.Name,
		Description:   competition.Description,
		ExternalId:    competition.ExternalId,
		Sport:         toSportReference(competition.Sport),
	}
}

// @Description Fetches all competitions
// @Tags competition
// @Produce json
// @Success 200 {array} CompetitionResponse
// @Router /competitions [get]
func (e *CompetitionController) getCompetitionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		competitions, err := e.competitionService.GetAllCompetitions()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(competitions, toCompetitionResponse))
	}
}
