package handlers

import (
	"github.com/danielgtaylor/huma/v2"
)

// The HTTP contract reports every failure as {"message": "..."} and the
// frontend alerts on that field, so huma's default problem-details error
// model is replaced.
type errorResponse struct {
	status  int
	Message string `json:"message"`
}

func (e *errorResponse) Error() string {
	return e.Message
}

func (e *errorResponse) GetStatus() int {
	return e.status
}

func init() {
	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		return &errorResponse{status: status, Message: message}
	}
}
