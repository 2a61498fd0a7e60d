package services

import (
	"fmt"

	"tryonapi/models"
)

// BuildTryOnPrompt returns the instruction sent next to the person photo.
// The output only depends on the style name and description.
func BuildTryOnPrompt(style models.Style) string {
	return fmt.Sprintf(`Based on the person in this photo, generate a high-quality fashion image showing the same person wearing %[1]s style clothing.

Style details: %[2]s

Requirements:
- Keep the person's face, body shape, and pose exactly the same
- Only change the clothing to match the %[1]s style
- Maintain realistic lighting and proportions
- The clothing should look natural on the person
- High resolution, professional fashion photography quality`, style.Name, style.Description)
}
