package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fitclub/gym-registration-api/internal/models"
	"github.com/fitclub/gym-registration-api/internal/notifier"
	"github.com/fitclub/gym-registration-api/internal/service"
)

type RegistrationHandler struct {
	svc      *service.RegistrationService
	notifier notifier.Notifier
}

func NewRegistrationHandler(svc *service.RegistrationService, notifier notifier.Notifier) *RegistrationHandler {
	return &RegistrationHandler{svc: svc, notifier: notifier}
}

// Required-field presence is checked by the service, not by the schema, so
// incomplete submissions get the 400 with the message the form expects
// instead of a schema validation error. Hence the omitempty on every field.
type RegisterRequest struct {
	Body struct {
		Name       string `json:"name,omitempty" doc:"Member name"`
		Email      string `json:"email,omitempty" doc:"Member email, unique case-insensitively"`
		Phone      string `json:"phone,omitempty" doc:"Contact phone number"`
		Age        int    `json:"age,omitempty" doc:"Member age"`
		Health     string `json:"health,omitempty" doc:"Health notes"`
		Membership string `json:"membership,omitempty" doc:"Membership plan description"`
		Trainer    string `json:"trainer,omitempty" doc:"Assigned trainer"`
	}
}

type MessageResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *RegistrationHandler) HandleRegister(ctx context.Context, input *RegisterRequest) (*MessageResponse, error) {
	err := h.svc.Register(ctx, service.RegisterInput{
		Name:       input.Body.Name,
		Email:      input.Body.Email,
		Phone:      input.Body.Phone,
		Age:        input.Body.Age,
		Health:     input.Body.Health,
		Membership: input.Body.Membership,
		Trainer:    input.Body.Trainer,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return nil, huma.Error400BadRequest("Please fill in all required fields.")
	case errors.Is(err, service.ErrEmailTaken):
		return nil, huma.Error409Conflict("Email already registered.")
	case err != nil:
		log.Printf("Registration error: %v", err)
		return nil, huma.Error500InternalServerError("Server error. Please try again later.")
	}

	if h.notifier != nil {
		registration := models.Registration{
			Name:       input.Body.Name,
			Email:      strings.ToLower(input.Body.Email),
			Membership: input.Body.Membership,
			Trainer:    input.Body.Trainer,
		}
		// Best effort, a registration never fails on a notification error.
		if err := h.notifier.NotifyRegistration(registration); err != nil {
			log.Printf("Failed to notify registration: %v", err)
		}
	}

	res := &MessageResponse{}
	res.Body.Message = "Registration successful!"
	return res, nil
}

type ListUsersResponse struct {
	Body []models.Registration
}

func (h *RegistrationHandler) HandleListUsers(ctx context.Context, input *struct{}) (*ListUsersResponse, error) {
	registrations, err := h.svc.List(ctx)
	if err != nil {
		log.Printf("List error: %v", err)
		return nil, huma.Error500InternalServerError("Failed to fetch users.")
	}
	return &ListUsersResponse{Body: registrations}, nil
}

type GetUserRequest struct {
	Email string `path:"email" doc:"Email to look up, matched case-insensitively"`
}

type GetUserResponse struct {
	Body models.Registration
}

func (h *RegistrationHandler) HandleGetUser(ctx context.Context, input *GetUserRequest) (*GetUserResponse, error) {
	registration, err := h.svc.GetByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, service.ErrNotFound):
		return nil, huma.Error404NotFound("User not found")
	case err != nil:
		log.Printf("Get user error: %v", err)
		return nil, huma.Error500InternalServerError("Error fetching user")
	}
	return &GetUserResponse{Body: *registration}, nil
}

// UpdateUserRequest declares the id as a string so a malformed id reaches
// the service and comes back as the documented 500 rather than a 422 from
// path-parameter parsing.
type UpdateUserRequest struct {
	ID   string `path:"id" doc:"Registration id"`
	Body struct {
		Name       *string `json:"name,omitempty" doc:"Member name"`
		Phone      *string `json:"phone,omitempty" doc:"Contact phone number"`
		Age        *int    `json:"age,omitempty" doc:"Member age"`
		Health     *string `json:"health,omitempty" doc:"Health notes"`
		Membership *string `json:"membership,omitempty" doc:"Membership plan description"`
		Trainer    *string `json:"trainer,omitempty" doc:"Assigned trainer"`
	}
}

type UpdateUserResponse struct {
	Body struct {
		Message string              `json:"message"`
		User    models.Registration `json:"user"`
	}
}

func (h *RegistrationHandler) HandleUpdateUser(ctx context.Context, input *UpdateUserRequest) (*UpdateUserResponse, error) {
	registration, err := h.svc.Update(ctx, input.ID, service.UpdateInput{
		Name:       input.Body.Name,
		Phone:      input.Body.Phone,
		Age:        input.Body.Age,
		Health:     input.Body.Health,
		Membership: input.Body.Membership,
		Trainer:    input.Body.Trainer,
	})
	switch {
	case errors.Is(err, service.ErrNotFound):
		return nil, huma.Error404NotFound("User not found")
	case err != nil:
		// A malformed id lands here on purpose, same as the original
		// service reported it.
		log.Printf("Update error: %v", err)
		return nil, huma.Error500InternalServerError("Error updating user")
	}

	res := &UpdateUserResponse{}
	res.Body.Message = "User updated successfully"
	res.Body.User = *registration
	return res, nil
}

type DeleteUserRequest struct {
	ID string `path:"id" doc:"Registration id"`
}

func (h *RegistrationHandler) HandleDeleteUser(ctx context.Context, input *DeleteUserRequest) (*MessageResponse, error) {
	err := h.svc.Delete(ctx, input.ID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		return nil, huma.Error404NotFound("User not found")
	case err != nil:
		log.Printf("Delete error: %v", err)
		return nil, huma.Error500InternalServerError("Error deleting user")
	}

	res := &MessageResponse{}
	res.Body.Message = "User deleted successfully"
	return res, nil
}
