package main

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"sportcal/config"
	"sportcal/controller"
	"sportcal/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// @title           Sportcal Backend API
// @version         1.0
// @description     CRUD API for scheduling sporting events and recording scores.
func main() {
	t := time.Now()

	cfg := config.Env()
	db, err := config.InitDB(
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.DatabaseName,
	)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	err = r.SetTrustedProxies(nil)
	if err != nil {
		fmt.Println("Failed to set trusted proxies:", err)
		return
	}
	addLogger(r, cfg)
	addMetrics(r, cfg)
	addDocs(r, cfg)
	setCors(r, cfg)
	addCalendarPage(r)
	controller.SetRoutes(r, db, cfg.BasePath)
	fmt.Println("Server started in", time.Since(t))
	err = r.Run(":" + cfg.ServerPort)
	if err != nil {
		fmt.Println("Failed to start server:", err)
	}
}

func addLogger(r *gin.Engine, cfg *config.Config) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{cfg.BasePath + "/metrics"},
	}))
}

func addMetrics(r *gin.Engine, cfg *config.Config) {
	p := ginprometheus.NewPrometheus("gin")
	re := regexp.MustCompile(`\d+`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		url = re.ReplaceAllString(url, "?")
		return strings.TrimPrefix(url, cfg.BasePath)
	}
	p.MetricsPath = cfg.BasePath + "/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = cfg.BasePath
	r.GET(cfg.BasePath+"/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

// addCalendarPage serves the calendar landing page and its assets.
func addCalendarPage(r *gin.Engine) {
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")
	r.GET("/", func(c *gin.Context) {
		c.HTML(200, "calendar.html", gin.H{})
	})
}

func setCors(r *gin.Engine, cfg *config.Config) {
	corsConfigGetOptions := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	corsConfigOtherMethods := cors.Config{
		AllowOrigins:     cfg.FrontendOrigins,
		AllowMethods:     []string{"POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			// Check the Access-Control-Request-Method header to determine the actual method being preflighted
			requestedMethod := c.GetHeader("Access-Control-Request-Method")
			if requestedMethod == "GET" || requestedMethod == "OPTIONS" {
				cors.New(corsConfigGetOptions)(c)
			} else {
				cors.New(corsConfigOtherMethods)(c)
			}
			c.AbortWithStatus(204)
			return
		}

		if c.Request.Method == "GET" {
			cors.New(corsConfigGetOptions)(c)
		} else {
			cors.New(corsConfigOtherMethods)(c)
		}
	})
}
