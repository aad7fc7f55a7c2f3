package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanad/internal/application/lookup/usecases"
	domain "sanad/internal/domain/lookup"
	"sanad/internal/interfaces/http/handlers/testutil"
	"sanad/internal/shared/errors"
)

type mockQueryUC struct {
	query  usecases.QueryLookupQuery
	result []domain.Entry
	err    error
}

func (m *mockQueryUC) Execute(_ context.Context, query usecases.QueryLookupQuery) ([]domain.Entry, error) {
	m.query = query
	return m.result, m.err
}

type mockUpsertUC struct {
	cmd usecases.UpsertLookupCommand
	err error
}

func (m *mockUpsertUC) Execute(_ context.Context, cmd usecases.UpsertLookupCommand) error {
	m.cmd = cmd
	return m.err
}

func TestHandler_Common_Success(t *testing.T) {
	mockUC := &mockQueryUC{
		result: []domain.Entry{
			{ID: 1, Label: "Pending", Value: "99", SortOrder: 1},
			{ID: 2, Label: "Approved", Value: "100", SortOrder: 2},
		},
	}
	handler := NewHandler(mockUC, &mockUpsertUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/Account/Common",
		CommonRequest{SPName: "GetTicketStatuses", Language: "EN"})

	handler.Common(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GetTicketStatuses", mockUC.query.SPName)
	assert.Equal(t, "EN", mockUC.query.Language)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	// data is a JSON string holding the rows, not a nested array.
	var encoded string
	require.NoError(t, json.Unmarshal(resp.Data, &encoded))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(encoded), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Pending", rows[0]["label"])
	assert.Equal(t, "99", rows[0]["value"])
}

func TestHandler_Common_EmptyResultIsStillAString(t *testing.T) {
	handler := NewHandler(&mockQueryUC{result: []domain.Entry{}}, &mockUpsertUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/Account/Common",
		CommonRequest{SPName: "GetNothing", Language: "EN"})

	handler.Common(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var encoded string
	require.NoError(t, json.Unmarshal(resp.Data, &encoded))
	assert.Equal(t, "[]", encoded)
}

func TestHandler_Common_BindError(t *testing.T) {
	handler := NewHandler(&mockQueryUC{}, &mockUpsertUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/Account/Common",
		map[string]string{"language": "EN"})

	handler.Common(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Common_UseCaseError(t *testing.T) {
	handler := NewHandler(&mockQueryUC{err: errors.NewValidationError("language is required")}, &mockUpsertUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/Account/Common",
		CommonRequest{SPName: "GetTicketStatuses"})

	handler.Common(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Upsert_Success(t *testing.T) {
	mockUC := &mockUpsertUC{}
	handler := NewHandler(&mockQueryUC{}, mockUC)

	c, w := testutil.NewTestContext(http.MethodPost, "/Account/UpsertCommon", UpsertRequest{
		Entries: []EntryPayload{
			{SPName: "GetTicketStatuses", Language: "EN", Label: "Pending", Value: "99", SortOrder: 1},
		},
	})

	handler.Upsert(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mockUC.cmd.Entries, 1)
	assert.Equal(t, "Pending", mockUC.cmd.Entries[0].Label)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Lookup entries saved successfully", resp.Message)
}

func TestHandler_Upsert_BindError(t *testing.T) {
	handler := NewHandler(&mockQueryUC{}, &mockUpsertUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/Account/UpsertCommon",
		map[string]string{})

	handler.Upsert(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
