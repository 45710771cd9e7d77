// Package complaint provides the core logic for the complaint lifecycle:
// public creation with attached images, administrative listing, triage
// status updates and deletion.
package complaint

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"cityvoice/backend/internal/config"
	"cityvoice/backend/internal/models"
	"cityvoice/backend/internal/storage"
	"cityvoice/backend/internal/uploads"
)

var (
	ErrMissingFields     = errors.New("title and description are required")
	ErrNoImages          = errors.New("at least one image is required")
	ErrTooManyImages     = errors.New("at most three images are allowed")
	ErrInvalidStatus     = errors.New("status must be one of: open, in progress, closed")
	ErrComplaintNotFound = storage.ErrComplaintNotFound
)

// Alerter is notified after a complaint has been created. Implementations
// must not block the request path for long; failures are only logged.
type Alerter interface {
	ComplaintCreated(complaint *models.Complaint)
}

// Service handles the business logic for complaints.
type Service struct {
	Storage storage.Storage
	Files   *uploads.Store
	Alerter Alerter // optional
}

// NewService creates a new complaint service.
func NewService(s storage.Storage, files *uploads.Store) *Service {
	return &Service{Storage: s, Files: files}
}

// Create validates the submission, persists the images to the file area and
// stores the complaint with default status "open". The returned entity
// carries the store-assigned id and creation timestamp.
//
// An image written before a later store failure is left orphaned on disk;
// there is no compensating cleanup.
func (s *Service) Create(title, description string, files []*multipart.FileHeader) (*models.Complaint, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, ErrMissingFields
	}
	if len(files) == 0 {
		return nil, ErrNoImages
	}
	if len(files) > config.MaxComplaintImages {
		return nil, ErrTooManyImages
	}

	paths, err := s.Files.SaveAll(files)
	if err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		Title:       title,
		Description: description,
		Images:      paths,
	}
	if err := s.Storage.CreateComplaint(complaint); err != nil {
		return nil, err
	}

	s.publish(models.ComplaintEvent{
		Type:        models.EventComplaintCreated,
		ComplaintID: complaint.ID,
		Complaint:   complaint,
	})
	if s.Alerter != nil {
		s.Alerter.ComplaintCreated(complaint)
	}
	return complaint, nil
}

// List returns all complaints, unfiltered and unpaginated. Searching and
// counting happen in the client.
func (s *Service) List() ([]models.Complaint, error) {
	return s.Storage.ListComplaints()
}

// UpdateStatus sets the triage status of an existing complaint. Values
// outside the enumeration are rejected rather than stored as-is.
func (s *Service) UpdateStatus(id, status string) (*models.Complaint, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	complaint, err := s.Storage.UpdateComplaintStatus(id, status)
	if err != nil {
		return nil, err
	}

	s.publish(models.ComplaintEvent{
		Type:        models.EventComplaintStatusChanged,
		ComplaintID: complaint.ID,
		Complaint:   complaint,
	})
	return complaint, nil
}

// Delete removes a complaint. Deleting the same id twice yields
// ErrComplaintNotFound on the second call.
func (s *Service) Delete(id string) error {
	if err := s.Storage.DeleteComplaint(id); err != nil {
		return err
	}

	s.publish(models.ComplaintEvent{
		Type:        models.EventComplaintDeleted,
		ComplaintID: id,
	})
	return nil
}

// publish pushes an event onto the live feed. Best-effort: a failed publish
// never fails the operation that triggered it.
func (s *Service) publish(evt models.ComplaintEvent) {
	if err := s.Storage.PublishComplaintEvent(evt); err != nil {
		log.Printf("ERROR: Failed to publish %s event for complaint %s: %v", evt.Type, evt.ComplaintID, err)
	}
}
