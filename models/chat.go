package models

// ChatRequest is the payload for /api/chat/message.
type ChatRequest struct {
	GuestID string `json:"guest_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ChatResponse is what the chat endpoint returns to the frontend.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// CheckInRequest is the payload for the simulated check-in endpoint.
type CheckInRequest struct {
	Name        string           `json:"name" binding:"required"`
	RoomNumber  string           `json:"room_number" binding:"required"`
	PhoneNumber string           `json:"phone_number"`
	Email       string           `json:"email"`
	Preferences GuestPreferences `json:"preferences"`
}
