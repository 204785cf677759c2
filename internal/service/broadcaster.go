package service

// Broadcaster interface for WebSocket event delivery (avoids import cycle)
type Broadcaster interface {
	BroadcastToUser(userID string, msgType string, payload interface{})
	DisconnectUser(userID string)
}
