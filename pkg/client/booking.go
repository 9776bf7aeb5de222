package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	apperrors "roombook/pkg/errors"
	"roombook/pkg/model"
)

const BookingLedgerName = "Booking Ledger"

type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseURL string, timeout time.Duration) *BookingClient {
	return &BookingClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

func (c *BookingClient) Commit(ctx context.Context, req model.ReservationRequest) (*model.BookingRecord, error) {
	resp, err := c.httpClient.POST(ctx, "/bookings", req)
	if err != nil {
		return nil, apperrors.UnavailableWithCause(BookingLedgerName, err)
	}
	if !successful(resp.StatusCode) {
		return nil, translateError(BookingLedgerName, resp)
	}
	return c.decodeBooking(resp)
}

func (c *BookingClient) GetByID(ctx context.Context, id string) (*model.BookingRecord, error) {
	resp, err := c.httpClient.GET(ctx, "/bookings/"+url.PathEscape(id))
	if err != nil {
		return nil, apperrors.UnavailableWithCause(BookingLedgerName, err)
	}
	if !successful(resp.StatusCode) {
		return nil, translateError(BookingLedgerName, resp)
	}
	return c.decodeBooking(resp)
}

func (c *BookingClient) decodeBooking(resp *Response) (*model.BookingRecord, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, apperrors.Internal("could not decode booking wrapper", fmt.Errorf("%s: %w", resp.ToString(), err))
	}

	var booking model.BookingRecord
	if err := json.Unmarshal(wrapper.Data, &booking); err != nil {
		return nil, apperrors.Internal("could not decode booking json", fmt.Errorf("%s: %w", resp.ToString(), err))
	}

	return &booking, nil
}
