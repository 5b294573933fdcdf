package controller

import (
	"sportcal/repository"
	"sportcal/service"
	"sportcal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SportController struct {
	sportService *service.SportService
}

func NewSportController(db *gorm.DB) *SportController {
	return &SportController{
		sportService: service.NewSportService(db),
	}
}

func setupSportController(db *gorm.DB) []RouteInfo {
	e := NewSportController(db)
	return []RouteInfo{
		{Method: "GET", Path: "/sports", HandlerFunc: e.getSportsHandler()},
	}
}

type SportReference struct {
	SportId int    `json:"sport_id"`
	Name    string `json:"name"`
}

func toSportReference(sport *repository.Sport) *SportReference {
	if sport == nil {
		return nil
	}
	return &SportReference{
		SportId: sport.Id,
		Name:    sport.Name,
	}
}

// @Description Fetches all sports
// @Tags sport
// @Produce json
// @Success 200 {array} SportReference
// @Router /sports [get]
func (e *SportController) getSportsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sports, err := e.sportService.GetAllSports()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(sports, toSportReference))
	}
}
