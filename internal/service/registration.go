package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fitclub/gym-registration-api/internal/models"
	"gorm.io/gorm"
)

// RegistrationService implements the membership operations over the record
// store: create, list, get-by-email, update-by-id and delete-by-id.
type RegistrationService struct {
	db *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

// RegisterInput carries the fields accepted by Register. Health is the only
// optional field; Age zero counts as missing.
type RegisterInput struct {
	Name       string
	Email      string
	Phone      string
	Age        int
	Health     string
	Membership string
	Trainer    string
}

func (in RegisterInput) complete() bool {
	return in.Name != "" && in.Email != "" && in.Phone != "" && in.Age != 0 &&
		in.Membership != "" && in.Trainer != ""
}

// Register stores a new enrollment. The email is lowercased before the
// duplicate check and before storage.
func (s *RegistrationService) Register(ctx context.Context, input RegisterInput) error {
	if !input.complete() {
		return ErrMissingFields
	}

	email := strings.ToLower(input.Email)

	// Pre-check so the common duplicate case gets a clean answer. The unique
	// index on email is what actually holds under concurrent registrations.
	var existing models.Registration
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("checking existing registration: %w", err)
	}

	registration := models.Registration{
		Name:       input.Name,
		Email:      email,
		Phone:      input.Phone,
		Age:        input.Age,
		Health:     input.Health,
		Membership: input.Membership,
		Trainer:    input.Trainer,
	}

	if err := s.db.WithContext(ctx).Create(&registration).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("creating registration: %w", err)
	}

	return nil
}

// List returns every registration in creation order. The slice is never nil
// on success so an empty roster serializes as [].
func (s *RegistrationService) List(ctx context.Context) ([]models.Registration, error) {
	registrations := []models.Registration{}
	if err := s.db.WithContext(ctx).Order("id").Find(&registrations).Error; err != nil {
		return nil, fmt.Errorf("listing registrations: %w", err)
	}
	return registrations, nil
}

// GetByEmail looks up a registration case-insensitively.
func (s *RegistrationService) GetByEmail(ctx context.Context, email string) (*models.Registration, error) {
	var registration models.Registration
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&registration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching registration: %w", err)
	}
	return &registration, nil
}

// UpdateInput lists the fields Update may overwrite. Nil fields are left
// untouched; id and email never change.
type UpdateInput struct {
	Name       *string
	Phone      *string
	Age        *int
	Health     *string
	Membership *string
	Trainer    *string
}

// Update overwrites the supplied fields on the registration with the given
// id and returns the updated record.
func (s *RegistrationService) Update(ctx context.Context, id string, input UpdateInput) (*models.Registration, error) {
	recordID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var registration models.Registration
	err = s.db.WithContext(ctx).First(&registration, recordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching registration: %w", err)
	}

	if input.Name != nil {
		registration.Name = *input.Name
	}
	if input.Phone != nil {
		registration.Phone = *input.Phone
	}
	if input.Age != nil {
		registration.Age = *input.Age
	}
	if input.Health != nil {
		registration.Health = *input.Health
	}
	if input.Membership != nil {
		registration.Membership = *input.Membership
	}
	if input.Trainer != nil {
		registration.Trainer = *input.Trainer
	}

	if err := s.db.WithContext(ctx).Save(&registration).Error; err != nil {
		return nil, fmt.Errorf("updating registration: %w", err)
	}

	return &registration, nil
}

// Delete permanently removes the registration with the given id. Deleting an
// absent id reports ErrNotFound, also on repeat deletes.
func (s *RegistrationService) Delete(ctx context.Context, id string) error {
	recordID, err := parseID(id)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Delete(&models.Registration{}, recordID)
	if result.Error != nil {
		return fmt.Errorf("deleting registration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func parseID(id string) (uint, error) {
	recordID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return uint(recordID), nil
}
