package service

import (
	"context"
	"errors"

	roomserrors "roombook/internal/rooms/errors"
	"roombook/internal/rooms/repository"
	"roombook/pkg/config"
	apperrors "roombook/pkg/errors"
	"roombook/pkg/model"
)

type RoomService interface {
	GetByID(ctx context.Context, id string) (*model.RoomInfo, error)
	GetAll(ctx context.Context, onlyAvailable bool) ([]*model.RoomInfo, error)
	EnsureSeeded(ctx context.Context) error
}

type roomService struct {
	repo repository.RoomRepository
	cfg  *config.Config
}

func NewRoomService(repo repository.RoomRepository, cfg *config.Config) RoomService {
	return &roomService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *roomService) GetByID(ctx context.Context, id string) (*model.RoomInfo, error) {
	if id == "" {
		return nil, apperrors.Validation("Room ID cannot be empty")
	}

	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Room", id)
		}
		return nil, apperrors.Internal("Failed to retrieve room", err)
	}

	return room, nil
}

func (s *roomService) GetAll(ctx context.Context, onlyAvailable bool) ([]*model.RoomInfo, error) {
	rooms, err := s.repo.FindAll(ctx, onlyAvailable)
	if err != nil {
		s.cfg.Log.Error("Failed to list rooms", "error", err)
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}
	return rooms, nil
}

// EnsureSeeded loads the fixture rooms on first start so a fresh
// deployment answers lookups immediately. A non-empty collection is
// left untouched.
func (s *roomService) EnsureSeeded(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return apperrors.Internal("Failed to check room collection", err)
	}
	if count > 0 {
		return nil
	}

	if err := s.repo.InsertMany(ctx, seedRooms()); err != nil {
		return apperrors.Internal("Failed to seed room collection", err)
	}

	s.cfg.Log.Info("Room collection seeded", "count", len(seedRooms()))
	return nil
}

func seedRooms() []*model.RoomInfo {
	return []*model.RoomInfo{
		{ID: "LAB-01", Name: "Laboratory 1", Location: "Building A, Floor 1", Capacity: 30, Available: true},
		{ID: "LAB-02", Name: "Laboratory 2", Location: "Building A, Floor 2", Capacity: 25, Available: false},
		{ID: "SALA-01", Name: "Classroom 1", Location: "Building B, Floor 1", Capacity: 40, Available: true},
	}
}
