package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"sanad/internal/domain/supervisor"
	"sanad/internal/infrastructure/persistence/models"
)

// SupervisorMapper converts between supervisor domain entities and
// persistence models.
type SupervisorMapper interface {
	ToModel(s *supervisor.Supervisor) (*models.SupervisorModel, error)
	ToDomain(model *models.SupervisorModel) (*supervisor.Supervisor, error)
}

type supervisorMapperImpl struct{}

func NewSupervisorMapper() SupervisorMapper {
	return &supervisorMapperImpl{}
}

func (m *supervisorMapperImpl) ToModel(s *supervisor.Supervisor) (*models.SupervisorModel, error) {
	p := s.Profile()

	languagesJSON, err := json.Marshal(p.AcquiredLanguages)
	if err != nil {
		return nil, fmt.Errorf("marshal acquired languages: %w", err)
	}

	return &models.SupervisorModel{
		EmployeeID:            s.EmployeeID(),
		FirstName:             p.FirstName,
		LastName:              p.LastName,
		IDNumber:              p.IDNumber,
		Telephone:             p.Telephone,
		OfficialEmail:         p.OfficialEmail,
		Country:               p.Country,
		Region:                p.Region,
		City:                  p.City,
		Address:               p.Address,
		BankName:              p.BankName,
		IBANNumber:            p.IBANNumber,
		GraduationCertificate: p.GraduationCertificate,
		AcquiredLanguages:     datatypes.JSON(languagesJSON),
		Type:                  p.Type,
		DateOfBirth:           p.DateOfBirth.UnixMilli(),
		IDExpiryDate:          p.IDExpiryDate.UnixMilli(),
		StatusID:              int(s.Status()),
		CreatedAt:             s.CreatedAt().UnixMilli(),
		UpdatedAt:             s.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *supervisorMapperImpl) ToDomain(model *models.SupervisorModel) (*supervisor.Supervisor, error) {
	status, err := supervisor.NewStatus(model.StatusID)
	if err != nil {
		return nil, err
	}

	var languages []string
	if len(model.AcquiredLanguages) > 0 {
		if err := json.Unmarshal(model.AcquiredLanguages, &languages); err != nil {
			return nil, fmt.Errorf("unmarshal acquired languages: %w", err)
		}
	}

	profile := supervisor.Profile{
		FirstName:             model.FirstName,
		LastName:              model.LastName,
		IDNumber:              model.IDNumber,
		Telephone:             model.Telephone,
		OfficialEmail:         model.OfficialEmail,
		Country:               model.Country,
		Region:                model.Region,
		City:                  model.City,
		Address:               model.Address,
		BankName:              model.BankName,
		IBANNumber:            model.IBANNumber,
		GraduationCertificate: model.GraduationCertificate,
		AcquiredLanguages:     languages,
		Type:                  model.Type,
		DateOfBirth:           time.UnixMilli(model.DateOfBirth).UTC(),
		IDExpiryDate:          time.UnixMilli(model.IDExpiryDate).UTC(),
	}

	return supervisor.ReconstructSupervisor(
		model.EmployeeID,
		profile,
		status,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
