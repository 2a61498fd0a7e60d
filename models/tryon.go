package models

// Style is a clothing look the user picks in the UI.
type Style struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TryOnRequest struct {
	// PersonImage is the uploaded photo, usually a data URL.
	PersonImage string `json:"personImage" validate:"required"`
	Style       *Style `json:"style" validate:"required"`
}

type TryOnResult struct {
	Success     bool   `json:"success"`
	ResultImage string `json:"resultImage"`
	Message     string `json:"message"`
	Style       string `json:"style"`
}

type TryOnErrorResponse struct {
	Error string `json:"error"`
}
