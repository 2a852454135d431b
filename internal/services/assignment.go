package services

import (
	"context"

	"inventory-service/internal/dto"
	"inventory-service/internal/entities"
	"inventory-service/internal/events"
	"inventory-service/internal/repositories"
	apperrors "inventory-service/pkg/errors"
	"inventory-service/pkg/utils"

	"go.uber.org/zap"
)

const defaultQuantity = 1

type AssignmentServiceInterface interface {
	GetAssignments(ctx context.Context) ([]dto.AssignmentDTO, error)
	CreateAssignment(ctx context.Context, payload dto.CreateAssignmentDTO) (*entities.Assignment, error)
	DeleteAssignment(ctx context.Context, id int64) (*entities.Assignment, error)
}

type AssignmentService struct {
	assignmentRepository repositories.AssignmentRepositoryInterface
	publisher            Publisher
	logger               *zap.Logger
}

func NewAssignmentService(assignmentRepository repositories.AssignmentRepositoryInterface,
	publisher Publisher,
	logger *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepository: assignmentRepository,
		publisher:            publisherOrNoop(publisher),
		logger:               logger,
	}
}

func (s *AssignmentService) GetAssignments(ctx context.Context) ([]dto.AssignmentDTO, error) {
	return s.assignmentRepository.GetAssignments(ctx)
}

// CreateAssignment does not check that the equipment or device exist. A
// dangling side lists as repositories.UnknownName.
func (s *AssignmentService) CreateAssignment(ctx context.Context, payload dto.CreateAssignmentDTO) (*entities.Assignment, error) {
	equipmentID, err := utils.ParseNumber(payload.EquipmentID.Number())
	if err != nil || equipmentID == 0 {
		return nil, apperrors.NewValidationError(dto.AssignmentIDsRequired)
	}
	deviceID, err := utils.ParseNumber(payload.DeviceID.Number())
	if err != nil || deviceID == 0 {
		return nil, apperrors.NewValidationError(dto.AssignmentIDsRequired)
	}
	quantity, err := utils.ParseNumber(payload.Quantity.Number())
	if err != nil {
		return nil, apperrors.NewValidationError("quantity must be a number")
	}
	if quantity == 0 {
		quantity = defaultQuantity
	}

	assignment, err := s.assignmentRepository.CreateAssignment(ctx, equipmentID, deviceID, quantity)
	if err != nil {
		s.logger.Error("failed to create assignment",
			zap.Int64("equipment_id", equipmentID),
			zap.Int64("device_id", deviceID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("assignment created",
		zap.Int64("id", assignment.ID),
		zap.Int64("equipment_id", equipmentID),
		zap.Int64("device_id", deviceID),
		zap.Int64("quantity", quantity),
	)
	s.publisher.Publish(events.RecordCreatedEvent{Resource: events.ResourceAssignments, ID: assignment.ID})
	return assignment, nil
}

func (s *AssignmentService) DeleteAssignment(ctx context.Context, id int64) (*entities.Assignment, error) {
	assignment, err := s.assignmentRepository.DeleteAssignment(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("assignment deleted", zap.Int64("id", id))
	s.publisher.Publish(events.RecordDeletedEvent{Resource: events.ResourceAssignments, ID: id})
	return assignment, nil
}
