package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"cityvoice/backend/internal/config"
	"cityvoice/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrComplaintNotFound is returned when an operation targets an id that is
// not present in the store.
var ErrComplaintNotFound = errors.New("complaint not found")

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// FeedChannel is the Redis Pub/Sub channel carrying complaint events.
const FeedChannel = "complaints:feed"

type Storage interface {
	EnsureDefaultAdmin() error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	UpdateUser(user *models.User) error

	CreateComplaint(complaint *models.Complaint) error
	ListComplaints() ([]models.Complaint, error)
	GetComplaintByID(id string) (*models.Complaint, error)
	UpdateComplaintStatus(id, status string) (*models.Complaint, error)
	DeleteComplaint(id string) error

	PublishComplaintEvent(evt models.ComplaintEvent) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// EnsureDefaultAdmin seeds the fixed administrator identity when the users
// table is empty. Runs once per empty-store boot and never again.
func (s *Service) EnsureDefaultAdmin() error {
	var count int64
	if err := s.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(config.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		FullName: config.DefaultAdminName,
		Email:    config.DefaultAdminEmail,
		Password: string(hash),
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("INFO: Default admin user created: %s", admin.Email)
	return nil
}

// GetUserByEmail looks up a user by their login identifier.
func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to look up user %s: %v", email, err)
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser persists changes to an existing user record.
func (s *Service) UpdateUser(user *models.User) error {
	return s.DB.Save(user).Error
}

// CreateComplaint inserts a new complaint. ID, default status and the
// creation timestamp are filled in by GORM and the BeforeCreate hook.
func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	if err := s.DB.Create(complaint).Error; err != nil {
		log.Printf("ERROR: Failed to save complaint %q: %v", complaint.Title, err)
		return err
	}
	return nil
}

// ListComplaints returns every complaint, oldest first. The order is stable
// across repeated calls when nothing is mutated in between.
func (s *Service) ListComplaints() ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.DB.Order("created_at asc").Find(&complaints).Error; err != nil {
		log.Printf("ERROR: Failed to list complaints: %v", err)
		return nil, err
	}
	return complaints, nil
}

func (s *Service) GetComplaintByID(id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.First(&complaint, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrComplaintNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get complaint %s: %v", id, err)
		return nil, err
	}
	return &complaint, nil
}

// UpdateComplaintStatus sets the status of an existing complaint and returns
// the updated record.
func (s *Service) UpdateComplaintStatus(id, status string) (*models.Complaint, error) {
	complaint, err := s.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}

	complaint.Status = status
	if err := s.DB.Save(complaint).Error; err != nil {
		log.Printf("ERROR: Failed to update status of complaint %s: %v", id, err)
		return nil, err
	}
	return complaint, nil
}

// DeleteComplaint removes a complaint. Deleting an unknown id yields
// ErrComplaintNotFound, which makes a second delete report 404.
func (s *Service) DeleteComplaint(id string) error {
	result := s.DB.Delete(&models.Complaint{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("ERROR: Failed to delete complaint %s: %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrComplaintNotFound
	}
	return nil
}

// PublishComplaintEvent publishes an event to the Redis feed channel.
func (s *Service) PublishComplaintEvent(evt models.ComplaintEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, FeedChannel, string(payload)).Err()
}

// SubscribeComplaintEvents subscribes to the feed channel. The caller owns
// the returned PubSub and must close it.
func (s *Service) SubscribeComplaintEvents() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, FeedChannel)
}
