package dto

// ActivityResponse is the wire representation of one activity
type ActivityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse acknowledges a successful signup or unregistration
type MessageResponse struct {
	Message string `json:"message"`
}
