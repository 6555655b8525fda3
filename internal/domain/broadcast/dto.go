package broadcast

import (
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/validator"
)

type SendMessageRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r *SendMessageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "body is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MessageResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

func ToResponse(m Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
