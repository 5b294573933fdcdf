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

type VenueController struct {
	venueService *service.VenueService
}

func NewVenueController(db *gorm.DB) *VenueController {
	return &VenueController{
		venueService: service.NewVenueService(db),
	}
}

func setupVenueController(db *gorm.DB) []RouteInfo {
	e := NewVenueController(db)
	basePath := "/venues"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getVenuesHandler()},
		{Method: "GET", Path: "/:venue_id", HandlerFunc: e.getVenueHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type VenueReference struct {
	VenueId int     `json:"venue_id"`
	Name    string  `json:"name"`
	City    *string `json:"city"`
	Country *string `json:"country"`
}

func toVenueReference(venue *repository.Venue) *VenueReference {
	if venue == nil {
		return nil
	}
	return &VenueReference{
		VenueId: venue.Id,
		Name:    venue.Name,
		City:    venue.City,
		Country: venue.Country,
	}
}

// @Description Fetches all venues
// @Tags venue
// @Produce json
// @Success 200 {array} VenueReference
// @Router /venues [get]
func (e *VenueController) getVenuesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		venues, err := e.venueService.GetAllVenues()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(venues, toVenueReference))
	}
}

// @Description Gets a venue by id
// @Tags venue
// @Produce json
// @Param venue_id path int true "Venue ID"
// @Success 200 {object} VenueReference
// @Failure 404 {object} map[string]string
// @Router /venues/{venue_id} [get]
func (e *VenueController) getVenueHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		venueId, err := strconv.Atoi(c.Param("venue_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		venue, err := e.venueService.GetVenueById(venueId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toVenueReference(venue))
	}
}
