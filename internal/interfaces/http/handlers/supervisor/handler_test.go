package supervisor

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad/internal/application/supervisor/dto"
	"sanad/internal/application/supervisor/usecases"
	"sanad/internal/interfaces/http/handlers/testutil"
	"sanad/internal/shared/biztime"
	"sanad/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockUpsertUC struct {
	cmd    usecases.UpsertSupervisorCommand
	result *usecases.UpsertSupervisorResult
	err    error
}

func (m *mockUpsertUC) Execute(_ context.Context, cmd usecases.UpsertSupervisorCommand) (*usecases.UpsertSupervisorResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateStatusUC struct {
	cmd    usecases.UpdateSupervisorStatusCommand
	result *dto.SupervisorDTO
	err    error
}

func (m *mockUpdateStatusUC) Execute(_ context.Context, cmd usecases.UpdateSupervisorStatusCommand) (*dto.SupervisorDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetUC struct {
	query  usecases.GetSupervisorQuery
	result *dto.SupervisorDTO
	err    error
}

func (m *mockGetUC) Execute(_ context.Context, query usecases.GetSupervisorQuery) (*dto.SupervisorDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockListUC struct {
	query  usecases.ListSupervisorsQuery
	result *usecases.ListSupervisorsResult
	err    error
}

func (m *mockListUC) Execute(_ context.Context, query usecases.ListSupervisorsQuery) (*usecases.ListSupervisorsResult, error) {
	m.query = query
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	upsertUC       usecases.UpsertSupervisorExecutor
	updateStatusUC usecases.UpdateSupervisorStatusExecutor
	getUC          usecases.GetSupervisorExecutor
	listUC         usecases.ListSupervisorsExecutor
}

func newTestHandler(deps testDeps) *Handler {
	return NewHandler(deps.upsertUC, deps.updateStatusUC, deps.getUC, deps.listUC)
}

func validUpsertRequest() UpsertRequest {
	return UpsertRequest{
		FirstName:             "Nora",
		LastName:              "Hassan",
		IDNumber:              "AB1234567",
		Telephone:             "+966 50 123 4567",
		OfficialEmail:         "nora@example.gov.sa",
		Country:               "Saudi Arabia",
		Region:                "Riyadh",
		City:                  "Riyadh",
		Address:               "12 King Fahd Road, Al Olaya District",
		BankName:              "Sanad National Bank",
		IBANNumber:            "SA0380000000608010167519",
		GraduationCertificate: "Bachelor of Public Administration",
		AcquiredLanguages:     []string{"EN", "AR"},
		Type:                  "Supervisor",
		DateOfBirth:           "1990-03-12",
		IDExpiryDate:          "2030-01-01",
		Language:              "EN",
	}
}

// =====================================================================
// TestHandler_Upsert
// =====================================================================

func TestHandler_Upsert_Create(t *testing.T) {
	mockUC := &mockUpsertUC{
		result: &usecases.UpsertSupervisorResult{
			Supervisor: dto.SupervisorDTO{EmployeeID: 5, FirstName: "Nora"},
			Created:    true,
			Message:    "Supervisor created successfully",
		},
	}
	handler := newTestHandler(testDeps{upsertUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/SuperAdmin/UpsertSuperAdmin", validUpsertRequest())

	handler.Upsert(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Zero(t, mockUC.cmd.EmployeeID)
	assert.Equal(t, "Nora", mockUC.cmd.Profile.FirstName)
	assert.Equal(t, "EN", mockUC.cmd.Language)
	assert.Equal(t, "1990-03-12", biztime.FormatDate(mockUC.cmd.Profile.DateOfBirth))

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Supervisor created successfully", resp.Message)
}

func TestHandler_Upsert_Update(t *testing.T) {
	mockUC := &mockUpsertUC{
		result: &usecases.UpsertSupervisorResult{
			Supervisor: dto.SupervisorDTO{EmployeeID: 5, FirstName: "Nora"},
			Created:    false,
			Message:    "Supervisor updated successfully",
		},
	}
	handler := newTestHandler(testDeps{upsertUC: mockUC})

	req := validUpsertRequest()
	req.EmployeeID = 5
	c, w := testutil.NewTestContext(http.MethodPost, "/SuperAdmin/UpsertSuperAdmin", req)

	handler.Upsert(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), mockUC.cmd.EmployeeID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Supervisor updated successfully", resp.Message)
}

func TestHandler_Upsert_BindError(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/SuperAdmin/UpsertSuperAdmin",
		map[string]string{"FirstName": "Nora"})

	handler.Upsert(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Upsert_MalformedDate(t *testing.T) {
	handler := newTestHandler(testDeps{})

	req := validUpsertRequest()
	req.DateOfBirth = "12/03/1990"
	c, w := testutil.NewTestContext(http.MethodPost, "/SuperAdmin/UpsertSuperAdmin", req)

	handler.Upsert(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "DateOfBirth")
}

func TestHandler_Upsert_Conflict(t *testing.T) {
	mockUC := &mockUpsertUC{
		err: errors.NewConflictError("supervisor with the same ID number or email already exists"),
	}
	handler := newTestHandler(testDeps{upsertUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/SuperAdmin/UpsertSuperAdmin", validUpsertRequest())

	handler.Upsert(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// TestHandler_UpdateStatus
// =====================================================================

func TestHandler_UpdateStatus_Success(t *testing.T) {
	mockUC := &mockUpdateStatusUC{
		result: &dto.SupervisorDTO{EmployeeID: 5, StatusID: 3, StatusName: "Suspended"},
	}
	handler := newTestHandler(testDeps{updateStatusUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/SuperAdmin/UpdateSuperAdminStatus", nil)
	testutil.SetQueryParams(c, map[string]string{"employeeId": "5", "statusId": "3"})

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), mockUC.cmd.EmployeeID)
	assert.Equal(t, 3, mockUC.cmd.StatusID)
}

func TestHandler_UpdateStatus_MissingParams(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPatch, "/SuperAdmin/UpdateSuperAdminStatus", nil)

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestHandler_Get
// =====================================================================

func TestHandler_Get_Success(t *testing.T) {
	mockUC := &mockGetUC{
		result: &dto.SupervisorDTO{EmployeeID: 5, FirstName: "Nora", StatusName: "Active"},
	}
	handler := newTestHandler(testDeps{getUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/SuperAdmin/GetSuperAdminById", nil)
	testutil.SetQueryParams(c, map[string]string{"employeeId": "5"})

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), mockUC.query.EmployeeID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"employeeId":5`)
}

func TestHandler_Get_NotFound(t *testing.T) {
	mockUC := &mockGetUC{err: errors.NewNotFoundError("supervisor not found")}
	handler := newTestHandler(testDeps{getUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/SuperAdmin/GetSuperAdminById", nil)
	testutil.SetQueryParams(c, map[string]string{"employeeId": "77"})

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestHandler_List
// =====================================================================

func TestHandler_List_Success(t *testing.T) {
	mockUC := &mockListUC{
		result: &usecases.ListSupervisorsResult{
			Supervisors: []dto.SupervisorDTO{{EmployeeID: 5}},
			TotalCount:  12,
		},
	}
	handler := newTestHandler(testDeps{listUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/SuperAdmin/GetAllSuperAdmins", nil)
	testutil.SetQueryParams(c, map[string]string{
		"PageNumber":     "1",
		"PageSize":       "10",
		"OrderByColumn":  "firstName",
		"OrderDirection": "asc",
		"StatusId":       "1",
	})

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "firstName", mockUC.query.SortBy)
	require.NotNil(t, mockUC.query.StatusID)
	assert.Equal(t, 1, *mockUC.query.StatusID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.TotalRecords)
	assert.Equal(t, int64(12), *resp.TotalRecords)
}
