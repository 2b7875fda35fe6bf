package apis

import (
	"net/http"

	"fstt-events-backend/cmd/events-api/model"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthCheckAPI struct {
	db *gorm.DB
}

func NewHealthCheckAPI(db *gorm.DB) *HealthCheckAPI {
	return &HealthCheckAPI{
		db: db,
	}
}

func (a *HealthCheckAPI) Setup(g *echo.Group) {
	g.GET("/", a.root)
	g.GET("/healthz", a.healthCheck)
}

func (a *HealthCheckAPI) root(c echo.Context) error {
	return c.JSON(
		http.StatusOK,
		model.RootResponse{
			Message: "FSTT Events API",
			Status:  "running",
		},
	)
}

func (a *HealthCheckAPI) healthCheck(c echo.Context) error {
	db, err := a.db.DB()
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.ErrorResponse{
				Detail: err.Error(),
			},
		)
	}

	if err := db.Ping(); err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.ErrorResponse{
				Detail: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.MessageResponse{
			Message: "healthy",
		},
	)
}
