package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier for an engine game
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateClientID identifies one WebSocket connection
func GenerateClientID() string {
	return "ws_" + uuid.NewString()
}
