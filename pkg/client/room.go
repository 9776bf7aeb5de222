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

const RoomDirectoryName = "Room Directory"

type RoomClient struct {
	httpClient *HttpClient
}

func NewRoomClient(baseURL string, timeout time.Duration) *RoomClient {
	return &RoomClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

func (c *RoomClient) Lookup(ctx context.Context, roomID string) (*model.RoomInfo, error) {
	resp, err := c.httpClient.GET(ctx, "/rooms/"+url.PathEscape(roomID))
	if err != nil {
		return nil, apperrors.UnavailableWithCause(RoomDirectoryName, err)
	}
	if !successful(resp.StatusCode) {
		return nil, translateError(RoomDirectoryName, resp)
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, apperrors.Internal("could not decode room wrapper", fmt.Errorf("%s: %w", resp.ToString(), err))
	}

	var room model.RoomInfo
	if err := json.Unmarshal(wrapper.Data, &room); err != nil {
		return nil, apperrors.Internal("could not decode room json", fmt.Errorf("%s: %w", resp.ToString(), err))
	}

	return &room, nil
}

func (c *RoomClient) List(ctx context.Context) ([]model.RoomInfo, error) {
	resp, err := c.httpClient.GET(ctx, "/rooms")
	if err != nil {
		return nil, apperrors.UnavailableWithCause(RoomDirectoryName, err)
	}
	if !successful(resp.StatusCode) {
		return nil, translateError(RoomDirectoryName, resp)
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, apperrors.Internal("could not decode room list wrapper", fmt.Errorf("%s: %w", resp.ToString(), err))
	}

	var rooms []model.RoomInfo
	if err := json.Unmarshal(wrapper.Data, &rooms); err != nil {
		return nil, apperrors.Internal("could not decode room list json", fmt.Errorf("%s: %w", resp.ToString(), err))
	}

	return rooms, nil
}
