package controller

import (
	"sportcal/repository"
	"sportcal/service"
	"sportcal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CompetitionSeasonController struct {
	seasonService *service.CompetitionSeasonService
}

func NewCompetitionSeasonController(db *gorm.DB) *CompetitionSeasonController {
	return &CompetitionSeasonController{
		seasonService: service.NewCompetitionSeasonService(db),
	}
}

func setupCompetitionSeasonController(db *gorm.DB) []RouteInfo {
	e := NewCompetitionSeasonController(db)
	return []RouteInfo{
		{Method: "GET", Path: "/competition-seasons", HandlerFunc: e.getCompetitionSeasonsHandler()},
	}
}

type CompetitionSeasonResponse struct {
	CompetitionSeasonId int                  `json:"competition_season_id"`
	SeasonId            int                  `json:"season_id"`
	Phase               string               `json:"phase"`
	StageOrdering       *int                 `json:"stage_ordering,omitempty"`
	Competition         *CompetitionResponse `json:"competition"`
}

func toCompetitionSeasonResponse(season *repository.CompetitionSeason) *CompetitionSeasonResponse {
	response := &CompetitionSeasonResponse{
		CompetitionSeasonId: season.Id,
		SeasonId:            season.SeasonId,
		Phase:               season.Phase,
		StageOrdering:       season.StageOrdering,
	}
	if season.Competition != nil {
		response.Competition = toCompetitionResponse(season.Competition)
	}
	return response
}

// @Description Fetches all competition seasons
// @Tags competition
// @Produce json
// @Success 200 {array} CompetitionSeasonResponse
// @Router /competition-seasons [get]
func (e *CompetitionSeasonController) getCompetitionSeasonsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		seasons, err := e.seasonService.GetAllCompetitionSeasons()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(seasons, toCompetitionSeasonResponse))
	}
}
