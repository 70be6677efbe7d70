package dto

// ExternalServicesRequestErr ... Model definition for external services request made with error response
type ExternalServicesRequestErr struct {
	Success    bool              `json:"success"`
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	StatusCode int               `json:"-"`
	Data       map[string]string `json:"data"`
}
