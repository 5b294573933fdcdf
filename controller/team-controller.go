package controller

import (
	"strconv"

	"sportcal/app_error"
	"sportcal/repository"
	"sportcal/service"
	"sportcal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TeamController struct {
	teamService *service.TeamService
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{
		teamService: service.NewTeamService(db),
	}
}

func setupTeamController(db *gorm.DB) []RouteInfo {
	e := NewTeamController(db)
	basePath := "/teams"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getTeamsHandler()},
		{Method: "GET", Path: "/:team_id", HandlerFunc: e.getTeamHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// TeamReference is the team shape embedded in event projections and
// returned by the team endpoints.
type TeamReference struct {
	TeamId       int     `json:"team_id"`
	Name         string  `json:"name"`
	OfficialName *string `json:"official_name,omitempty"`
	Slug         *string `json:"slug,omitempty"`
	Abbreviation *string `json:"abbreviation,omitempty"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
}

func toTeamReference(team *repository.Team) *TeamReference {
	if team == nil {
		return nil
	}
	return &TeamReference{
		TeamId:       team.Id,
		Name:         team.Name,
		OfficialName: team.OfficialName,
		Slug:         team.Slug,
		Abbreviation: team.Abbreviation,
		City:         team.City,
		Country:      team.Country,
	}
}

// @Description Fetches all teams
// @Tags team
// @Produce json
// @Success 200 {array} TeamReference
// @Router /teams [get]
func (e *TeamController) getTeamsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teams, err := e.teamService.GetAllTeams()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(teams, toTeamReference))
	}
}

// @Description Gets a team by id
// @Tags team
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} TeamReference
// @Failure 404 {object} map[string]string
// @Router /teams/{team_id} [get]
func (e *TeamController) getTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team, err := e.teamService.GetTeamById(teamId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toTeamReference(team))
	}
}
