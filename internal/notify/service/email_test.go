package service

import (
	"context"
	"testing"

	"roombook/internal/notify/validator"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/model"
)

func TestEmailSend(t *testing.T) {
	cfg := testConfig()
	svc := NewEmailService(validator.NewNotifyValidator(cfg.Log), cfg)

	result, err := svc.Send(context.Background(), &model.EmailRequest{
		Recipient: "joao@example.com",
		Subject:   "Booking Confirmation - Room LAB-01",
		Body:      "Hello Joao,\n\nYour reservation has been confirmed!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Sent {
		t.Error("expected sent=true")
	}
}

func TestEmailSend_RejectsInvalidRecipient(t *testing.T) {
	cfg := testConfig()
	svc := NewEmailService(validator.NewNotifyValidator(cfg.Log), cfg)

	_, err := svc.Send(context.Background(), &model.EmailRequest{
		Recipient: "not-an-address",
		Subject:   "Booking Confirmation",
		Body:      "body",
	})
	if code := apperrors.CodeOf(err); code != apperrors.CodeValidation {
		t.Errorf("expected %s, got %s", apperrors.CodeValidation, code)
	}
}

func TestEmailSend_RejectsEmptyBody(t *testing.T) {
	cfg := testConfig()
	svc := NewEmailService(validator.NewNotifyValidator(cfg.Log), cfg)

	_, err := svc.Send(context.Background(), &model.EmailRequest{
		Recipient: "joao@example.com",
		Subject:   "Booking Confirmation",
	})
	if code := apperrors.CodeOf(err); code != apperrors.CodeValidation {
		t.Errorf("expected %s, got %s", apperrors.CodeValidation, code)
	}
}
