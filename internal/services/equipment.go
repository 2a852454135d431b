package services

import (
	"context"

	"inventory-service/internal/entities"
	"inventory-service/internal/events"
	"inventory-service/internal/repositories"
	apperrors "inventory-service/pkg/errors"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, name string) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id int64) (*entities.Equipment, error)
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	publisher           Publisher
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface,
	publisher Publisher,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		publisher:           publisherOrNoop(publisher),
		logger:              logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepository.GetEquipments(ctx)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, name string) (*entities.Equipment, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	equipment, err := s.equipmentRepository.CreateEquipment(ctx, name)
	if err != nil {
		s.logger.Error("failed to create equipment", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment created", zap.Int64("id", equipment.ID), zap.String("name", name))
	s.publisher.Publish(events.RecordCreatedEvent{Resource: events.ResourceEquipment, ID: equipment.ID})
	return equipment, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id int64) (*entities.Equipment, error) {
	equipment, cascaded, err := s.equipmentRepository.DeleteEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipment deleted", zap.Int64("id", id), zap.Int("cascaded_assignments", cascaded))
	s.publisher.Publish(events.RecordDeletedEvent{
		Resource:            events.ResourceEquipment,
		ID:                  id,
		CascadedAssignments: cascaded,
	})
	return equipment, nil
}
