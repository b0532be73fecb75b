package types

// HealthResponse is returned by GET /system/health.
type HealthResponse struct {
	// Service status.
	// example: ok
	Status string `json:"status" example:"ok"`
}

// LanguagesResponse wraps the installed models returned by GET /api/v1/languages.
type LanguagesResponse struct {
	// Installed language/model combinations, sorted by language then model.
	Languages []ModelRecord `json:"languages"`
}

// ImagesResponse is returned by POST /api/v1/images on success.
type ImagesResponse struct {
	// The text extracted from the image.
	// example: The text that was extracted from your image!
	Text string `json:"text" example:"The text that was extracted from your image!"`
}

// ErrorResponse is the JSON payload for all failed requests.
type ErrorResponse struct {
	// Human-readable reason for the failure.
	// example: Model 'unknown' not found for language 'eng'
	Message string `json:"message" example:"Model 'unknown' not found for language 'eng'"`
}
