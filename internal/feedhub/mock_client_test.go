package feedhub_test

import (
	"cityvoice/backend/internal/models"
)

// MockClient is an in-memory feedhub.Client for hub tests.
type MockClient struct {
	userID      string
	closed      bool
	RecvChannel chan models.ComplaintEvent
}

func newMockClient(userID string) *MockClient {
	return &MockClient{
		userID:      userID,
		RecvChannel: make(chan models.ComplaintEvent, 10),
	}
}

func (c *MockClient) GetUserID() string {
	return c.userID
}

func (c *MockClient) GetSendChannel() chan<- models.ComplaintEvent {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.closed = true
}
