package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var corsHeaders = map[string]string{
	echo.HeaderAccessControlAllowOrigin:  "*",
	echo.HeaderAccessControlAllowHeaders: "authorization, x-client-info, apikey, content-type",
	echo.HeaderAccessControlAllowMethods: "POST, OPTIONS",
	echo.HeaderAccessControlMaxAge:       "86400",
}

// CORSMiddleware runs before routing so every response carries the headers,
// including errors and unknown routes. Preflight requests end here with an empty 200.
func CORSMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Response().Header()
		for key, value := range corsHeaders {
			header.Set(key, value)
		}
		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}
		return next(c)
	}
}
