package controller

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method      string
	Path        string
	HandlerFunc gin.HandlerFunc
}

// SetRoutes registers all JSON routes under basePath.
func SetRoutes(r *gin.Engine, db *gorm.DB, basePath string) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupEventController(db)...)
	routes = append(routes, setupSportController(db)...)
	routes = append(routes, setupCompetitionController(db)...)
	routes = append(routes, setupCompetitionSeasonController(db)...)
	routes = append(routes, setupTeamController(db)...)
	routes = append(routes, setupVenueController(db)...)
	for _, route := range routes {
		r.Handle(route.Method, basePath+route.Path, route.HandlerFunc)
	}
}
