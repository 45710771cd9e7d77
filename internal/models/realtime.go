package models

// Event types published on the complaint feed.
const (
	EventComplaintCreated       = "created"
	EventComplaintStatusChanged = "status_changed"
	EventComplaintDeleted       = "deleted"
)

// ComplaintEvent is broadcast to connected administrators whenever a
// complaint is mutated. Complaint is nil for deletions.
type ComplaintEvent struct {
	Type        string     `json:"type"` // "created", "status_changed", "deleted"
	ComplaintID string     `json:"complaint_id"`
	Complaint   *Complaint `json:"complaint,omitempty"`
}
