package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"tryonapi/config"
	"tryonapi/models"
	"tryonapi/services"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

func SetupServer(cfg *config.Config, generator services.TryOnGeneratorProvider) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = JSONErrorHandler
	e.Pre(CORSMiddleware)

	tryOnController := TryOnController{Config: cfg, Generator: generator}
	tryOnController.TryOnRoutes(e.Group(""))

	stylesController := StylesController{}
	stylesController.StylesRoutes(e.Group(""))

	return e
}

// JSONErrorHandler renders framework errors in the same {"error": ...} shape as the try-on endpoint.
func JSONErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := services.NewTryOnError(services.Unclassified, nil).Message

	var httpErr *echo.HTTPError
	var tryOnErr *services.TryOnError
	switch {
	case errors.As(err, &tryOnErr):
		status, message = tryOnErr.Status, tryOnErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if status < http.StatusInternalServerError {
			message = fmt.Sprint(httpErr.Message)
		}
	default:
		fmt.Println("[Server] Unhandled error:", err)
	}

	if err := writeJSON(c, status, models.TryOnErrorResponse{Error: message}); err != nil {
		c.Logger().Error(err)
	}
}

// writeJSON sets a bare application/json content type, echo's c.JSON appends a charset.
func writeJSON(c echo.Context, status int, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.Blob(status, echo.MIMEApplicationJSON, data)
}
