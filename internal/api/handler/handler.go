package handler

import (
	"cityvoice/backend/internal/complaint"
	"cityvoice/backend/internal/feedhub"
	"cityvoice/backend/internal/storage"
)

// Handler carries the dependencies of the HTTP layer. It holds no state of
// its own; every request is dispatched to exactly one service operation.
type Handler struct {
	Complaints *complaint.Service
	Storage    storage.Storage
	Hub        *feedhub.Manager
	JWTSecret  []byte
}

func NewHandler(complaints *complaint.Service, s storage.Storage, hub *feedhub.Manager, jwtSecret string) *Handler {
	return &Handler{
		Complaints: complaints,
		Storage:    s,
		Hub:        hub,
		JWTSecret:  []byte(jwtSecret),
	}
}
