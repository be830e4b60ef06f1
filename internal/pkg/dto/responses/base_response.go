package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// CollaboratorResult is the envelope the collaborator answers submissions with.
type CollaboratorResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
