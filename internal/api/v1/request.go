package v1

import "github.com/restful-booker/messaging/internal/model"

type CreateMessageRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,phone"`
	Subject     string `json:"subject" validate:"required,min=5,max=100"`
	Description string `json:"description" validate:"required,min=20,max=2000"`
}

func (r CreateMessageRequest) toModel() model.Message {
	return model.Message{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Subject:     r.Subject,
		Description: r.Description,
	}
}
