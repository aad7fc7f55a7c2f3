package supervisor

import (
	"strconv"

	"github.com/gin-gonic/gin"

	supervisorUsecases "sanad/internal/application/supervisor/usecases"
	"sanad/internal/domain/supervisor"
	"sanad/internal/shared/biztime"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/utils"
)

// UpsertRequest carries the full wizard payload. Dates use the
// YYYY-MM-DD layout the console submits.
type UpsertRequest struct {
	EmployeeID            uint     `json:"EmployeeId"`
	FirstName             string   `json:"FirstName" binding:"required" validate:"required,min=2"`
	LastName              string   `json:"LastName" binding:"required" validate:"required,min=2"`
	IDNumber              string   `json:"IdNumber" binding:"required" validate:"required"`
	Telephone             string   `json:"Telephone" binding:"required" validate:"required"`
	OfficialEmail         string   `json:"OfficialEmail" binding:"required" validate:"required,email"`
	Country               string   `json:"Country" binding:"required"`
	Region                string   `json:"Region" binding:"required"`
	City                  string   `json:"City" binding:"required"`
	Address               string   `json:"Address" binding:"required"`
	BankName              string   `json:"BankName" binding:"required"`
	IBANNumber            string   `json:"IbanNumber" binding:"required"`
	GraduationCertificate string   `json:"GraduationCertificate"`
	AcquiredLanguages     []string `json:"AcquiredLanguages"`
	Type                  string   `json:"Type" binding:"required"`
	DateOfBirth           string   `json:"DateOfBirth" binding:"required"`
	IDExpiryDate          string   `json:"IdExpiryDate" binding:"required"`
	StatusID              int      `json:"StatusId"`
	Language              string   `json:"Language"`
}

func (r UpsertRequest) toCommand() (supervisorUsecases.UpsertSupervisorCommand, error) {
	dob, err := biztime.ParseDate(r.DateOfBirth)
	if err != nil {
		return supervisorUsecases.UpsertSupervisorCommand{},
			errors.NewValidationError("DateOfBirth must be formatted as YYYY-MM-DD")
	}

	expiry, err := biztime.ParseDate(r.IDExpiryDate)
	if err != nil {
		return supervisorUsecases.UpsertSupervisorCommand{},
			errors.NewValidationError("IdExpiryDate must be formatted as YYYY-MM-DD")
	}

	return supervisorUsecases.UpsertSupervisorCommand{
		EmployeeID: r.EmployeeID,
		Profile: supervisor.Profile{
			FirstName:             r.FirstName,
			LastName:              r.LastName,
			IDNumber:              r.IDNumber,
			Telephone:             r.Telephone,
			OfficialEmail:         r.OfficialEmail,
			Country:               r.Country,
			Region:                r.Region,
			City:                  r.City,
			Address:               r.Address,
			BankName:              r.BankName,
			IBANNumber:            r.IBANNumber,
			GraduationCertificate: r.GraduationCertificate,
			AcquiredLanguages:     r.AcquiredLanguages,
			Type:                  r.Type,
			DateOfBirth:           dob,
			IDExpiryDate:          expiry,
		},
		StatusID: r.StatusID,
		Language: r.Language,
	}, nil
}

type listSupervisorsRequest struct {
	StatusID  *int
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func parseListSupervisorsRequest(c *gin.Context) listSupervisorsRequest {
	pagination := utils.ParsePagination(c)
	sort := utils.ParseSortOrder(c)

	req := listSupervisorsRequest{
		Search:    c.Query("Search"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    sort.Column,
		SortOrder: sort.Direction,
	}

	if raw := c.Query("StatusId"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			req.StatusID = &id
		}
	}

	return req
}

func parseEmployeeIDQuery(c *gin.Context) (uint, error) {
	raw := c.Query("employeeId")
	if raw == "" {
		return 0, errors.NewValidationError("employeeId is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("employeeId must be a positive integer")
	}

	return uint(id), nil
}
