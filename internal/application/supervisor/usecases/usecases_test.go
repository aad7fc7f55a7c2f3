package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sanad/internal/domain/supervisor"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/infrastructure/repository"
	"sanad/internal/shared/db"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type supervisorFixture struct {
	repo  *repository.SupervisorRepository
	txMgr *db.TransactionManager
}

func newSupervisorFixture(t *testing.T) *supervisorFixture {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.SupervisorModel{}))

	return &supervisorFixture{
		repo:  repository.NewSupervisorRepository(gdb),
		txMgr: db.NewTransactionManager(gdb),
	}
}

func validProfile(email string) supervisor.Profile {
	return supervisor.Profile{
		FirstName:             "Nora",
		LastName:              "Alharbi",
		IDNumber:              "AB1234567",
		Telephone:             "+966500000001",
		OfficialEmail:         email,
		Country:               "Saudi Arabia",
		Region:                "Riyadh",
		City:                  "Riyadh",
		Address:               "12 King Fahd Road, Riyadh",
		BankName:              "SNB",
		IBANNumber:            "SA0380000000608010167519",
		GraduationCertificate: "BSc Computer Science",
		AcquiredLanguages:     []string{"EN", "AR"},
		Type:                  "Field",
		DateOfBirth:           time.Date(1990, 3, 12, 0, 0, 0, 0, time.UTC),
		IDExpiryDate:          time.Now().UTC().AddDate(4, 0, 0),
	}
}

func TestUpsertSupervisorUseCase_Create(t *testing.T) {
	f := newSupervisorFixture(t)
	uc := NewUpsertSupervisorUseCase(f.repo, f.txMgr, logger.NewLogger())

	t.Run("creates an active supervisor", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), UpsertSupervisorCommand{
			Profile: validProfile("nora.create@example.gov.sa"),
		})
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.NotZero(t, result.Supervisor.EmployeeID)
		assert.Equal(t, "Active", result.Supervisor.StatusName)
		assert.Equal(t, "Supervisor created successfully", result.Message)
	})

	t.Run("arabic language selects the arabic message", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), UpsertSupervisorCommand{
			Profile:  validProfile("nora.arabic@example.gov.sa"),
			Language: "ar",
		})
		require.NoError(t, err)
		assert.Equal(t, "تم إنشاء المشرف بنجاح", result.Message)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpsertSupervisorCommand{
			Profile: validProfile("nora.dup@example.gov.sa"),
		})
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), UpsertSupervisorCommand{
			Profile: validProfile("nora.dup@example.gov.sa"),
		})
		assert.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("invalid profile fails validation", func(t *testing.T) {
		p := validProfile("nora.invalid@example.gov.sa")
		p.IBANNumber = "not-an-iban"

		_, err := uc.Execute(context.Background(), UpsertSupervisorCommand{Profile: p})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "IBAN")
	})
}

func TestUpsertSupervisorUseCase_Update(t *testing.T) {
	f := newSupervisorFixture(t)
	uc := NewUpsertSupervisorUseCase(f.repo, f.txMgr, logger.NewLogger())

	created, err := uc.Execute(context.Background(), UpsertSupervisorCommand{
		Profile: validProfile("nora.update@example.gov.sa"),
	})
	require.NoError(t, err)
	employeeID := created.Supervisor.EmployeeID

	t.Run("updates the profile in place", func(t *testing.T) {
		p := validProfile("nora.update@example.gov.sa")
		p.City = "Jeddah"

		result, err := uc.Execute(context.Background(), UpsertSupervisorCommand{
			EmployeeID: employeeID,
			Profile:    p,
		})
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, "Jeddah", result.Supervisor.City)
		assert.Equal(t, "Supervisor updated successfully", result.Message)
	})

	t.Run("status id applies when set", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), UpsertSupervisorCommand{
			EmployeeID: employeeID,
			Profile:    validProfile("nora.update@example.gov.sa"),
			StatusID:   int(supervisor.StatusSuspended),
		})
		require.NoError(t, err)
		assert.Equal(t, "Suspended", result.Supervisor.StatusName)
	})

	t.Run("zero status id leaves the status alone", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), UpsertSupervisorCommand{
			EmployeeID: employeeID,
			Profile:    validProfile("nora.update@example.gov.sa"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Suspended", result.Supervisor.StatusName)
	})

	t.Run("unknown employee fails", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpsertSupervisorCommand{
			EmployeeID: 9999,
			Profile:    validProfile("nora.ghost@example.gov.sa"),
		})
		assert.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestUpdateSupervisorStatusUseCase_Execute(t *testing.T) {
	f := newSupervisorFixture(t)
	upsert := NewUpsertSupervisorUseCase(f.repo, f.txMgr, logger.NewLogger())
	uc := NewUpdateSupervisorStatusUseCase(f.repo, logger.NewLogger())

	created, err := upsert.Execute(context.Background(), UpsertSupervisorCommand{
		Profile: validProfile("nora.status@example.gov.sa"),
	})
	require.NoError(t, err)
	employeeID := created.Supervisor.EmployeeID

	t.Run("changes and persists the status", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), UpdateSupervisorStatusCommand{
			EmployeeID: employeeID,
			StatusID:   int(supervisor.StatusInactive),
		})
		require.NoError(t, err)
		assert.Equal(t, "Inactive", result.StatusName)

		found, err := f.repo.FindByEmployeeID(context.Background(), employeeID)
		require.NoError(t, err)
		assert.Equal(t, supervisor.StatusInactive, found.Status())
	})

	t.Run("unknown status id is a validation error", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateSupervisorStatusCommand{
			EmployeeID: employeeID,
			StatusID:   99,
		})
		assert.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown employee is not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateSupervisorStatusCommand{
			EmployeeID: 9999,
			StatusID:   int(supervisor.StatusActive),
		})
		assert.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestListSupervisorsUseCase_Execute(t *testing.T) {
	f := newSupervisorFixture(t)
	upsert := NewUpsertSupervisorUseCase(f.repo, f.txMgr, logger.NewLogger())
	uc := NewListSupervisorsUseCase(f.repo, logger.NewLogger())

	for _, email := range []string{
		"badr.one@example.gov.sa",
		"celine.two@example.gov.sa",
	} {
		_, err := upsert.Execute(context.Background(), UpsertSupervisorCommand{
			Profile: validProfile(email),
		})
		require.NoError(t, err)
	}

	t.Run("lists everyone", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ListSupervisorsQuery{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.TotalCount)
		assert.Len(t, result.Supervisors, 2)
	})

	t.Run("search narrows by email", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ListSupervisorsQuery{
			Search:   "celine.two",
			Page:     1,
			PageSize: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.TotalCount)
	})
}

func TestGetSupervisorUseCase_Execute(t *testing.T) {
	f := newSupervisorFixture(t)
	upsert := NewUpsertSupervisorUseCase(f.repo, f.txMgr, logger.NewLogger())
	uc := NewGetSupervisorUseCase(f.repo, logger.NewLogger())

	created, err := upsert.Execute(context.Background(), UpsertSupervisorCommand{
		Profile: validProfile("nora.get@example.gov.sa"),
	})
	require.NoError(t, err)

	t.Run("returns the supervisor", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetSupervisorQuery{
			EmployeeID: created.Supervisor.EmployeeID,
		})
		require.NoError(t, err)
		assert.Equal(t, "nora.get@example.gov.sa", result.OfficialEmail)
	})

	t.Run("unknown employee is not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetSupervisorQuery{EmployeeID: 9999})
		assert.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
