package feedhub

import "cityvoice/backend/internal/models"

// Client is the interface for one connected administrator session. It
// abstracts the underlying transport so the hub can manage connections
// uniformly (WebSocket today, anything else tomorrow).
type Client interface {
	// GetUserID returns the identifier of the administrator behind the client.
	GetUserID() string

	// GetSendChannel returns the channel to which the Manager pushes feed
	// events intended for this client. It is a send-only channel.
	GetSendChannel() chan<- models.ComplaintEvent

	// Run starts the client's read and write pumps.
	Run()
	// Close gracefully shuts down the client's connection and channels.
	Close()
}
