package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "roombook/pkg/errors"
	"roombook/pkg/model"
)

const AvailabilityCheckerName = "Availability Checker"

type AvailabilityClient struct {
	httpClient *HttpClient
}

func NewAvailabilityClient(baseURL string, timeout time.Duration) *AvailabilityClient {
	return &AvailabilityClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

func (c *AvailabilityClient) Check(ctx context.Context, req model.AvailabilityRequest) (*model.AvailabilityVerdict, error) {
	resp, err := c.httpClient.POST(ctx, "/availability", req)
	if err != nil {
		return nil, apperrors.UnavailableWithCause(AvailabilityCheckerName, err)
	}
	if !successful(resp.StatusCode) {
		return nil, translateError(AvailabilityCheckerName, resp)
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, apperrors.Internal("could not decode verdict wrapper", fmt.Errorf("%s: %w", resp.ToString(), err))
	}

	var verdict model.AvailabilityVerdict
	if err := json.Unmarshal(wrapper.Data, &verdict); err != nil {
		return nil, apperrors.Internal("could not decode verdict json", fmt.Errorf("%s: %w", resp.ToString(), err))
	}

	return &verdict, nil
}
