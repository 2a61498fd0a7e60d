package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"tryonapi/config"
	"tryonapi/models"
	"tryonapi/services"
)

const (
	tryOnCompletedMessage = "AI换装完成"
	// returned with the original photo when upstream produced no image
	tryOnFallbackMessage = "AI换装处理完成"
)

type TryOnController struct {
	Config    *config.Config
	Generator services.TryOnGeneratorProvider
}

func (controller *TryOnController) TryOnRoutes(g *echo.Group) {
	g.POST("/", controller.TryOn)
	g.POST("/ai-try-on", controller.TryOn)
}

func (controller *TryOnController) TryOn(c echo.Context) error {
	var req models.TryOnRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		fmt.Println("[TryOn] Invalid request body:", err)
		return controller.sendError(c, services.NewTryOnError(services.Unclassified, err))
	}

	if err := c.Validate(req); err != nil {
		return controller.sendError(c, validationError(err))
	}

	if !controller.Config.Configured() {
		return controller.sendError(c, services.NewTryOnError(services.ServiceUnconfigured, errors.New("AI_API_KEY is not set")))
	}

	style := models.ResolveStyle(*req.Style)
	fmt.Printf("[TryOn] Processing AI try-on request for style: %s\n", style.Name)

	prompt := services.BuildTryOnPrompt(style)
	// a client disconnect does not abort the upstream generation
	ctx := context.WithoutCancel(c.Request().Context())
	content, err := controller.Generator.GenerateTryOn(ctx, prompt, req.PersonImage)
	if err != nil {
		return controller.sendError(c, err)
	}

	resultImage, ok, err := services.ExtractImage(content)
	if err != nil {
		return controller.sendError(c, err)
	}
	if !ok {
		fmt.Printf("[TryOn] No image generated for style %s, returning original\n", style.Name)
		return writeJSON(c, http.StatusOK, models.TryOnResult{
			Success:     true,
			ResultImage: req.PersonImage,
			Message:     tryOnFallbackMessage,
			Style:       style.Name,
		})
	}

	fmt.Printf("[TryOn] AI try-on completed successfully for style %s\n", style.Name)
	return writeJSON(c, http.StatusOK, models.TryOnResult{
		Success:     true,
		ResultImage: resultImage,
		Message:     tryOnCompletedMessage,
		Style:       style.Name,
	})
}

func (controller *TryOnController) sendError(c echo.Context, err error) error {
	tryOnErr := services.AsTryOnError(err)
	fmt.Printf("[TryOn] Request failed with %d: %v\n", tryOnErr.Status, tryOnErr)

	if reportsToSentry(tryOnErr.Kind) {
		if hub := sentryecho.GetHubFromContext(c); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("failure_type", string(tryOnErr.Kind))
				hub.CaptureException(tryOnErr)
			})
		} else {
			sentry.CaptureException(tryOnErr)
		}
	}

	return writeJSON(c, tryOnErr.Status, models.TryOnErrorResponse{Error: tryOnErr.Message})
}

// reportsToSentry lists the failure kinds captured by Sentry.
func reportsToSentry(kind services.TryOnErrorKind) bool {
	return kind == services.UpstreamFailure || kind == services.Unclassified
}

// validationError maps validator failures to the error taxonomy.
// The photo is checked before the style.
func validationError(err error) *services.TryOnError {
	var fieldErrors validator.ValidationErrors
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Internal != nil {
		err = httpErr.Internal
	}
	if !errors.As(err, &fieldErrors) {
		return services.NewTryOnError(services.Unclassified, err)
	}

	failed := map[string]bool{}
	for _, fieldErr := range fieldErrors {
		failed[fieldErr.StructField()] = true
	}
	switch {
	case failed["PersonImage"]:
		return services.NewTryOnError(services.MissingImage, nil)
	case failed["Style"]:
		return services.NewTryOnError(services.MissingStyle, nil)
	default:
		return services.NewTryOnError(services.Unclassified, err)
	}
}
