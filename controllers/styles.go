package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tryonapi/models"
)

type StylesController struct{}

func (controller *StylesController) StylesRoutes(g *echo.Group) {
	g.GET("/styles", controller.ListStyles)
	g.GET("/healthz", controller.Health)
}

func (controller *StylesController) ListStyles(c echo.Context) error {
	return writeJSON(c, http.StatusOK, models.StylesListResponse{Styles: models.StylePresets})
}

func (controller *StylesController) Health(c echo.Context) error {
	return writeJSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
