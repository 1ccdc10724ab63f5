package mappers

import (
	"fmt"

	"gymstack/internal/domain/attendance"
	"gymstack/internal/infrastructure/persistence/models"
)

type AttendanceMapper interface {
	ToEntity(model *models.AttendanceModel) (*attendance.Attendance, error)
	ToModel(entity *attendance.Attendance) (*models.AttendanceModel, error)
	ToEntities(models []*models.AttendanceModel) ([]*attendance.Attendance, error)
}

type attendanceMapperImpl struct{}

func NewAttendanceMapper() AttendanceMapper {
	return &attendanceMapperImpl{}
}

func (m *attendanceMapperImpl) ToEntity(model *models.AttendanceModel) (*attendance.Attendance, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := attendance.ReconstructAttendance(
		model.ID,
		model.OrganizationID,
		model.MemberID,
		model.RecordedBy,
		model.CheckedInAt,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct attendance entity: %w", err)
	}
	return entity, nil
}

func (m *attendanceMapperImpl) ToModel(entity *attendance.Attendance) (*models.AttendanceModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AttendanceModel{
		ID:             entity.ID(),
		OrganizationID: entity.OrganizationID(),
		MemberID:       entity.MemberID(),
		CheckedInAt:    entity.CheckedInAt(),
		RecordedBy:     entity.RecordedBy(),
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

func (m *attendanceMapperImpl) ToEntities(modelList []*models.AttendanceModel) ([]*attendance.Attendance, error) {
	entities := make([]*attendance.Attendance, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
