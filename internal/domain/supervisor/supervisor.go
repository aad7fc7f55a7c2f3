package supervisor

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"sanad/internal/shared/biztime"
)

// Status is a supervisor account status.
type Status int

const (
	StatusActive    Status = 1
	StatusInactive  Status = 2
	StatusSuspended Status = 3
)

var statusNames = map[Status]string{
	StatusActive:    "Active",
	StatusInactive:  "Inactive",
	StatusSuspended: "Suspended",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(s))
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func NewStatus(id int) (Status, error) {
	s := Status(id)
	if !s.IsValid() {
		return 0, fmt.Errorf("invalid supervisor status: %d", id)
	}
	return s, nil
}

const minimumAge = 18

var (
	emailPattern    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern    = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	idNumberPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	ibanPattern     = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]+$`)
	nonDigits       = regexp.MustCompile(`\D`)
)

// Profile carries the supervisor's editable attributes. It is validated
// as a whole on construction and update; the same rules the console
// enforces client-side hold here, since client validation is not trusted.
type Profile struct {
	FirstName             string
	LastName              string
	IDNumber              string
	Telephone             string
	OfficialEmail         string
	Country               string
	Region                string
	City                  string
	Address               string
	BankName              string
	IBANNumber            string
	GraduationCertificate string
	AcquiredLanguages     []string
	Type                  string
	DateOfBirth           time.Time
	IDExpiryDate          time.Time
}

// Validate checks every profile invariant and returns the first failure.
func (p *Profile) Validate(now time.Time) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if len(strings.TrimSpace(p.FirstName)) < 2 {
		return fmt.Errorf("first name must be at least 2 characters")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("last name is required")
	}
	if len(strings.TrimSpace(p.LastName)) < 2 {
		return fmt.Errorf("last name must be at least 2 characters")
	}
	if p.IDNumber == "" {
		return fmt.Errorf("ID number is required")
	}
	if !idNumberPattern.MatchString(p.IDNumber) {
		return fmt.Errorf("ID number should contain only letters and numbers")
	}
	if p.Telephone == "" {
		return fmt.Errorf("telephone is required")
	}
	if !phonePattern.MatchString(p.Telephone) {
		return fmt.Errorf("invalid phone number")
	}
	if len(nonDigits.ReplaceAllString(p.Telephone, "")) < 7 {
		return fmt.Errorf("phone number must be at least 7 digits")
	}
	if p.OfficialEmail == "" {
		return fmt.Errorf("official email is required")
	}
	if !emailPattern.MatchString(p.OfficialEmail) {
		return fmt.Errorf("invalid email address")
	}
	if strings.TrimSpace(p.Country) == "" {
		return fmt.Errorf("country is required")
	}
	if strings.TrimSpace(p.Region) == "" {
		return fmt.Errorf("region is required")
	}
	if strings.TrimSpace(p.City) == "" {
		return fmt.Errorf("city is required")
	}
	if strings.TrimSpace(p.Address) == "" {
		return fmt.Errorf("address is required")
	}
	if len(strings.TrimSpace(p.Address)) < 10 {
		return fmt.Errorf("address must be at least 10 characters")
	}
	if strings.TrimSpace(p.BankName) == "" {
		return fmt.Errorf("bank name is required")
	}
	if p.IBANNumber == "" {
		return fmt.Errorf("IBAN number is required")
	}
	if !ibanPattern.MatchString(strings.ReplaceAll(p.IBANNumber, " ", "")) {
		return fmt.Errorf("invalid IBAN number")
	}
	if strings.TrimSpace(p.GraduationCertificate) == "" {
		return fmt.Errorf("graduation certificate is required")
	}
	if len(p.AcquiredLanguages) == 0 {
		return fmt.Errorf("acquired languages are required")
	}
	if strings.TrimSpace(p.Type) == "" {
		return fmt.Errorf("type is required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("date of birth is required")
	}
	if !p.DateOfBirth.Before(now) {
		return fmt.Errorf("date of birth must be in the past")
	}
	if biztime.YearsSince(p.DateOfBirth, now) < minimumAge {
		return fmt.Errorf("must be at least %d years old", minimumAge)
	}
	if p.IDExpiryDate.IsZero() {
		return fmt.Errorf("ID expiry date is required")
	}
	if !p.IDExpiryDate.After(now) {
		return fmt.Errorf("ID expiry date must be in the future")
	}
	return nil
}

// Supervisor is the super-admin employee aggregate.
type Supervisor struct {
	employeeID uint
	profile    Profile
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewSupervisor(profile Profile) (*Supervisor, error) {
	now := biztime.NowUTC()
	if err := profile.Validate(now); err != nil {
		return nil, err
	}

	return &Supervisor{
		profile:   profile,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSupervisor(
	employeeID uint,
	profile Profile,
	status Status,
	createdAt, updatedAt time.Time,
) (*Supervisor, error) {
	if employeeID == 0 {
		return nil, fmt.Errorf("employee ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %d", int(status))
	}

	return &Supervisor{
		employeeID: employeeID,
		profile:    profile,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (s *Supervisor) EmployeeID() uint {
	return s.employeeID
}

func (s *Supervisor) Profile() Profile {
	return s.profile
}

func (s *Supervisor) Status() Status {
	return s.status
}

func (s *Supervisor) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Supervisor) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Supervisor) SetEmployeeID(id uint) error {
	if s.employeeID != 0 {
		return fmt.Errorf("employee ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("employee ID cannot be zero")
	}
	s.employeeID = id
	return nil
}

// UpdateProfile replaces the profile after re-validating it.
func (s *Supervisor) UpdateProfile(profile Profile) error {
	if err := profile.Validate(biztime.NowUTC()); err != nil {
		return err
	}
	s.profile = profile
	s.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeStatus moves the supervisor to newStatus. Setting the current
// status again is a no-op success.
func (s *Supervisor) ChangeStatus(newStatus Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %d", int(newStatus))
	}
	if s.status == newStatus {
		return nil
	}
	s.status = newStatus
	s.updatedAt = biztime.NowUTC()
	return nil
}
