// Package dto defines the wire shapes the console consumes for
// super-admin records.
package dto

import (
	"sanad/internal/domain/supervisor"
	"sanad/internal/shared/biztime"
)

type SupervisorDTO struct {
	EmployeeID            uint     `json:"employeeId"`
	FirstName             string   `json:"firstName"`
	LastName              string   `json:"lastName"`
	IDNumber              string   `json:"idNumber"`
	Telephone             string   `json:"telephone"`
	OfficialEmail         string   `json:"officialEmail"`
	Country               string   `json:"country"`
	Region                string   `json:"region"`
	City                  string   `json:"city"`
	Address               string   `json:"address"`
	BankName              string   `json:"bankName"`
	IBANNumber            string   `json:"ibanNumber"`
	GraduationCertificate string   `json:"graduationCertificate"`
	AcquiredLanguages     []string `json:"acquiredLanguages"`
	Type                  string   `json:"type"`
	DateOfBirth           string   `json:"dateOfBirth"`
	IDExpiryDate          string   `json:"idExpiryDate"`
	StatusID              int      `json:"statusId"`
	StatusName            string   `json:"statusName"`
}

func ToSupervisorDTO(s *supervisor.Supervisor) SupervisorDTO {
	p := s.Profile()

	return SupervisorDTO{
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
		AcquiredLanguages:     p.AcquiredLanguages,
		Type:                  p.Type,
		DateOfBirth:           biztime.FormatDate(p.DateOfBirth),
		IDExpiryDate:          biztime.FormatDate(p.IDExpiryDate),
		StatusID:              int(s.Status()),
		StatusName:            s.Status().String(),
	}
}
