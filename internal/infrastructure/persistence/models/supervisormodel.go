package models

import "gorm.io/datatypes"

// SupervisorModel is the persistence shape of a super-admin employee.
type SupervisorModel struct {
	EmployeeID            uint           `gorm:"primaryKey;column:employee_id"`
	FirstName             string         `gorm:"size:100;not null"`
	LastName              string         `gorm:"size:100;not null"`
	IDNumber              string         `gorm:"size:50;not null;uniqueIndex"`
	Telephone             string         `gorm:"size:50;not null"`
	OfficialEmail         string         `gorm:"size:255;not null;uniqueIndex"`
	Country               string         `gorm:"size:100;not null"`
	Region                string         `gorm:"size:100;not null"`
	City                  string         `gorm:"size:100;not null"`
	Address               string         `gorm:"size:500;not null"`
	BankName              string         `gorm:"size:200;not null"`
	IBANNumber            string         `gorm:"size:50;not null"`
	GraduationCertificate string         `gorm:"size:255;not null"`
	AcquiredLanguages     datatypes.JSON `gorm:"type:json"`
	Type                  string         `gorm:"size:50;not null;index"`
	DateOfBirth           int64          `gorm:"not null"`
	IDExpiryDate          int64          `gorm:"not null"`
	StatusID              int            `gorm:"not null;index"`
	CreatedAt             int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt             int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (SupervisorModel) TableName() string {
	return "supervisors"
}
