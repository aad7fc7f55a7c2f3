package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad/internal/domain/supervisor"
	"sanad/internal/shared/errors"
)

func testProfile(suffix string) supervisor.Profile {
	return supervisor.Profile{
		FirstName:             "Nora",
		LastName:              "Hassan",
		IDNumber:              "AB123456" + suffix,
		Telephone:             "+966 50 123 4567",
		OfficialEmail:         fmt.Sprintf("nora.%s@example.gov.sa", suffix),
		Country:               "Saudi Arabia",
		Region:                "Riyadh",
		City:                  "Riyadh",
		Address:               "12 King Fahd Road, Al Olaya District",
		BankName:              "Sanad National Bank",
		IBANNumber:            "SA0380000000608010167519",
		GraduationCertificate: "Bachelor of Public Administration",
		AcquiredLanguages:     []string{"EN", "AR"},
		Type:                  "Supervisor",
		DateOfBirth:           time.Date(1990, 3, 12, 0, 0, 0, 0, time.UTC),
		IDExpiryDate:          time.Now().UTC().AddDate(3, 0, 0),
	}
}

func createTestSupervisor(t *testing.T, suffix string) *supervisor.Supervisor {
	s, err := supervisor.NewSupervisor(testProfile(suffix))
	require.NoError(t, err)
	return s
}

func TestSupervisorRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSupervisorRepository(db)
	ctx := context.Background()

	t.Run("save assigns employee ID", func(t *testing.T) {
		s := createTestSupervisor(t, "a")

		err := repo.Save(ctx, s)
		assert.NoError(t, err)
		assert.NotZero(t, s.EmployeeID())
	})

	t.Run("profile round-trips including languages", func(t *testing.T) {
		s := createTestSupervisor(t, "b")
		require.NoError(t, repo.Save(ctx, s))

		found, err := repo.FindByEmployeeID(ctx, s.EmployeeID())
		assert.NoError(t, err)
		assert.Equal(t, s.Profile().OfficialEmail, found.Profile().OfficialEmail)
		assert.Equal(t, []string{"EN", "AR"}, found.Profile().AcquiredLanguages)
		assert.Equal(t, supervisor.StatusActive, found.Status())
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		first := createTestSupervisor(t, "dup")
		require.NoError(t, repo.Save(ctx, first))

		second, err := supervisor.NewSupervisor(testProfile("dup2"))
		require.NoError(t, err)
		p := second.Profile()
		p.OfficialEmail = first.Profile().OfficialEmail
		require.NoError(t, second.UpdateProfile(p))

		err = repo.Save(ctx, second)
		assert.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestSupervisorRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSupervisorRepository(db)
	ctx := context.Background()

	s := createTestSupervisor(t, "upd")
	require.NoError(t, repo.Save(ctx, s))

	p := s.Profile()
	p.City = "Jeddah"
	require.NoError(t, s.UpdateProfile(p))
	require.NoError(t, s.ChangeStatus(supervisor.StatusSuspended))

	require.NoError(t, repo.Update(ctx, s))

	found, err := repo.FindByEmployeeID(ctx, s.EmployeeID())
	assert.NoError(t, err)
	assert.Equal(t, "Jeddah", found.Profile().City)
	assert.Equal(t, supervisor.StatusSuspended, found.Status())
}

func TestSupervisorRepository_FindByOfficialEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSupervisorRepository(db)
	ctx := context.Background()

	s := createTestSupervisor(t, "mail")
	require.NoError(t, repo.Save(ctx, s))

	found, err := repo.FindByOfficialEmail(ctx, s.Profile().OfficialEmail)
	assert.NoError(t, err)
	assert.Equal(t, s.EmployeeID(), found.EmployeeID())

	_, err = repo.FindByOfficialEmail(ctx, "nobody@example.gov.sa")
	assert.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSupervisorRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSupervisorRepository(db)
	ctx := context.Background()

	names := []struct{ first, suffix string }{
		{"Amal", "one"},
		{"Badr", "two"},
		{"Celine", "three"},
	}
	for _, n := range names {
		p := testProfile(n.suffix)
		p.FirstName = n.first
		s, err := supervisor.NewSupervisor(p)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, s))
	}

	t.Run("list all", func(t *testing.T) {
		supervisors, total, err := repo.List(ctx, supervisor.Filter{Page: 1, PageSize: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, supervisors, 3)
	})

	t.Run("search by name", func(t *testing.T) {
		supervisors, total, err := repo.List(ctx, supervisor.Filter{
			Search: "Badr", Page: 1, PageSize: 10,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, supervisors, 1)
		assert.Equal(t, "Badr", supervisors[0].Profile().FirstName)
	})

	t.Run("search by email", func(t *testing.T) {
		_, total, err := repo.List(ctx, supervisor.Filter{
			Search: "nora.three@", Page: 1, PageSize: 10,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("filter by status", func(t *testing.T) {
		status := supervisor.StatusInactive
		_, total, err := repo.List(ctx, supervisor.Filter{
			Status: &status, Page: 1, PageSize: 10,
		})
		assert.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("sort by first name", func(t *testing.T) {
		supervisors, _, err := repo.List(ctx, supervisor.Filter{
			Page: 1, PageSize: 10,
			SortBy: "firstName", SortOrder: "desc",
		})
		assert.NoError(t, err)
		require.Len(t, supervisors, 3)
		assert.Equal(t, "Celine", supervisors[0].Profile().FirstName)
	})
}
