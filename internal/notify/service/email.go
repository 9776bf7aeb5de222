package service

import (
	"context"

	"roombook/internal/notify/validator"
	"roombook/pkg/config"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/model"
)

const emailSender = "noreply@roombook.local"

type EmailService interface {
	Send(ctx context.Context, req *model.EmailRequest) (*model.NotificationResult, error)
}

type emailService struct {
	validator *validator.NotifyValidator
	cfg       *config.Config
}

func NewEmailService(validator *validator.NotifyValidator, cfg *config.Config) EmailService {
	return &emailService{
		validator: validator,
		cfg:       cfg,
	}
}

// Send performs a simulated delivery: the message is validated and the
// full content logged. There is no real SMTP hop behind this service.
func (s *emailService) Send(ctx context.Context, req *model.EmailRequest) (*model.NotificationResult, error) {
	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Email validation failed", "error", err)
		return nil, apperrors.Validation(err.Error())
	}

	s.cfg.Log.Info("Email delivered (simulated)",
		"from", emailSender,
		"to", req.Recipient,
		"subject", req.Subject,
		"body", req.Body,
	)

	return &model.NotificationResult{Sent: true}, nil
}
