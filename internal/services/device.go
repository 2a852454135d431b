package services

import (
	"context"

	"inventory-service/internal/entities"
	"inventory-service/internal/events"
	"inventory-service/internal/repositories"
	apperrors "inventory-service/pkg/errors"

	"go.uber.org/zap"
)

type DeviceServiceInterface interface {
	GetDevices(ctx context.Context) ([]entities.Device, error)
	CreateDevice(ctx context.Context, name string) (*entities.Device, error)
	DeleteDevice(ctx context.Context, id int64) (*entities.Device, error)
}

type DeviceService struct {
	deviceRepository repositories.DeviceRepositoryInterface
	publisher        Publisher
	logger           *zap.Logger
}

func NewDeviceService(deviceRepository repositories.DeviceRepositoryInterface,
	publisher Publisher,
	logger *zap.Logger,
) *DeviceService {
	return &DeviceService{
		deviceRepository: deviceRepository,
		publisher:        publisherOrNoop(publisher),
		logger:           logger,
	}
}

func (s *DeviceService) GetDevices(ctx context.Context) ([]entities.Device, error) {
	return s.deviceRepository.GetDevices(ctx)
}

func (s *DeviceService) CreateDevice(ctx context.Context, name string) (*entities.Device, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	device, err := s.deviceRepository.CreateDevice(ctx, name)
	if err != nil {
		s.logger.Error("failed to create device", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("device created", zap.Int64("id", device.ID), zap.String("name", name))
	s.publisher.Publish(events.RecordCreatedEvent{Resource: events.ResourceDevices, ID: device.ID})
	return device, nil
}

func (s *DeviceService) DeleteDevice(ctx context.Context, id int64) (*entities.Device, error) {
	device, cascaded, err := s.deviceRepository.DeleteDevice(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("device deleted", zap.Int64("id", id), zap.Int("cascaded_assignments", cascaded))
	s.publisher.Publish(events.RecordDeletedEvent{
		Resource:            events.ResourceDevices,
		ID:                  id,
		CascadedAssignments: cascaded,
	})
	return device, nil
}
