package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "roombook/pkg/errors"
	"roombook/pkg/model"
)

const (
	EmailNotifierName    = "Email Notifier"
	CalendarNotifierName = "Calendar Notifier"
)

type EmailClient struct {
	httpClient *HttpClient
}

func NewEmailClient(baseURL string, timeout time.Duration) *EmailClient {
	return &EmailClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

func (c *EmailClient) Send(ctx context.Context, req model.EmailRequest) (*model.NotificationResult, error) {
	return send(ctx, c.httpClient, EmailNotifierName, "/notify/email", req)
}

type CalendarClient struct {
	httpClient *HttpClient
}

func NewCalendarClient(baseURL string, timeout time.Duration) *CalendarClient {
	return &CalendarClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

func (c *CalendarClient) Send(ctx context.Context, req model.CalendarEventRequest) (*model.NotificationResult, error) {
	return send(ctx, c.httpClient, CalendarNotifierName, "/notify/calendar", req)
}

func send(ctx context.Context, httpClient *HttpClient, service, path string, body any) (*model.NotificationResult, error) {
	resp, err := httpClient.POST(ctx, path, body)
	if err != nil {
		return nil, apperrors.UnavailableWithCause(service, err)
	}
	if !successful(resp.StatusCode) {
		return nil, translateError(service, resp)
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, apperrors.Internal("could not decode notification wrapper", fmt.Errorf("%s: %w", resp.ToString(), err))
	}

	var result model.NotificationResult
	if err := json.Unmarshal(wrapper.Data, &result); err != nil {
		return nil, apperrors.Internal("could not decode notification json", fmt.Errorf("%s: %w", resp.ToString(), err))
	}

	return &result, nil
}
