package service

import (
	"github.com/plasmadinah/cms-backend/internal/models"
	"github.com/plasmadinah/cms-backend/internal/repository"
	"github.com/plasmadinah/cms-backend/internal/validation"
)

type MessageService struct {
	messageRepo repository.MessageRepositoryInterface
}

func NewMessageService(messageRepo repository.MessageRepositoryInterface) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (s *MessageService) SubmitMessage(input ContactInput) (*models.Message, error) {
	input.Name = validation.TrimAndLimit(input.Name, validation.MaxNameLength())
	input.Body = validation.TrimAndLimit(input.Body, validation.MaxMessageLength())
	input.Subject = validation.TrimAndLimit(input.Subject, validation.MaxTitleLength())
	if input.Name == "" || input.Body == "" || !validation.ValidateEmail(input.Email) {
		return nil, ErrInvalidInput
	}

	message := &models.Message{
		Name:    input.Name,
		Email:   validation.NormalizeEmail(input.Email),
		Subject: input.Subject,
		Body:    input.Body,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *MessageService) ListMessages() ([]models.Message, error) {
	return s.messageRepo.FindAll()
}

func (s *MessageService) DeleteMessage(id uint) error {
	return s.messageRepo.Delete(id)
}
