package handler_test

import (
	"time"

	"cityvoice/backend/internal/models"
	"cityvoice/backend/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// fakeStorage is an in-memory storage.Storage so handler tests can run the
// full request path without Postgres or Redis.
type fakeStorage struct {
	users      map[string]*models.User // keyed by email
	complaints map[string]*models.Complaint
	order      []string // insertion order, mirrors the created_at sort
	events     []models.ComplaintEvent
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		users:      make(map[string]*models.User),
		complaints: make(map[string]*models.Complaint),
	}
}

// seedAdmin inserts an administrator with a bcrypt-hashed password, the way
// the startup seed does.
func (f *fakeStorage) seedAdmin(fullName, email, password string) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &models.User{
		ID:       uuid.New().String(),
		FullName: fullName,
		Email:    email,
		Password: string(hash),
	}
	f.users[email] = user
	return user
}

func (f *fakeStorage) EnsureDefaultAdmin() error { return nil }

func (f *fakeStorage) GetUserByEmail(email string) (*models.User, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return nil, storage.ErrUserNotFound
}

func (f *fakeStorage) GetUserByID(id string) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (f *fakeStorage) UpdateUser(user *models.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeStorage) CreateComplaint(complaint *models.Complaint) error {
	if complaint.ID == "" {
		complaint.ID = uuid.New().String()
	}
	if complaint.Status == "" {
		complaint.Status = models.StatusOpen
	}
	complaint.CreatedAt = time.Now()
	f.complaints[complaint.ID] = complaint
	f.order = append(f.order, complaint.ID)
	return nil
}

func (f *fakeStorage) ListComplaints() ([]models.Complaint, error) {
	out := make([]models.Complaint, 0, len(f.order))
	for _, id := range f.order {
		if c, ok := f.complaints[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeStorage) GetComplaintByID(id string) (*models.Complaint, error) {
	if c, ok := f.complaints[id]; ok {
		return c, nil
	}
	return nil, storage.ErrComplaintNotFound
}

func (f *fakeStorage) UpdateComplaintStatus(id, status string) (*models.Complaint, error) {
	c, ok := f.complaints[id]
	if !ok {
		return nil, storage.ErrComplaintNotFound
	}
	c.Status = status
	return c, nil
}

func (f *fakeStorage) DeleteComplaint(id string) error {
	if _, ok := f.complaints[id]; !ok {
		return storage.ErrComplaintNotFound
	}
	delete(f.complaints, id)
	return nil
}

func (f *fakeStorage) PublishComplaintEvent(evt models.ComplaintEvent) error {
	f.events = append(f.events, evt)
	return nil
}
