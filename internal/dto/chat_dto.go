package dto

type ChatRequest struct {
	Message          string `json:"message" validate:"required"`
	SessionId        string `json:"session_id"`
	UserMessageCount int    `json:"user_message_count"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
	Intent string `json:"intent"`
}
