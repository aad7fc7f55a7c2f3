package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchPage_QuerySpelling(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Write([]byte(`{"success":true,"data":[],"totalCount":0}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithLanguage("AR"))
	status := 99
	_, result := client.FetchPage(context.Background(), "SupportTickets/GetAllSupportTickets", PageQuery{
		Page:          2,
		PageSize:      25,
		SortColumn:    "createdDate",
		SortDirection: SortDesc,
		Search:        "permit",
		StatusID:      &status,
	})
	require.True(t, result.Success, result.Message)

	require.NotNil(t, captured)
	q := captured.URL.Query()
	assert.Equal(t, "2", q.Get("PageNumber"))
	assert.Equal(t, "25", q.Get("PageSize"))
	assert.Equal(t, "createdDate", q.Get("OrderByColumn"))
	assert.Equal(t, "desc", q.Get("OrderDirection"))
	assert.Equal(t, "permit", q.Get("Search"))
	assert.Equal(t, "99", q.Get("StatusId"))
	assert.Equal(t, "AR", captured.Header.Get("Accept-Language"))
}

func TestClient_FetchPage_SortOmittedWhenCleared(t *testing.T) {
	var captured string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, result := client.FetchPage(context.Background(), "SuperAdmin/GetAllSuperAdmins", PageQuery{Page: 1, PageSize: 10})
	require.True(t, result.Success)

	assert.NotContains(t, captured, "OrderByColumn")
	assert.NotContains(t, captured, "OrderDirection")
	assert.NotContains(t, captured, "Search")
	assert.NotContains(t, captured, "StatusId")
}

func TestClient_FetchPage_NonSuccessStatusCarriesGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"invalid pagination parameters"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	page, result := client.FetchPage(context.Background(), "SupportTickets/GetAllSupportTickets", PageQuery{})

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "invalid pagination parameters")
	assert.Empty(t, page.Records)
}

func TestClient_CommonLookup_DecodesEmbeddedJSONString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The legacy backend double-encodes the rows as a JSON string.
		w.Write([]byte(`{"success":true,"data":"[{\"Label\":\"Pending\",\"Value\":\"99\"},{\"Label\":\"Approved\",\"Value\":\"100\"}]"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, result := client.CommonLookup(context.Background(), "GetTicketStatuses", "")
	require.True(t, result.Success, result.Message)

	require.Len(t, records, 2)
	assert.Equal(t, "Pending", records[0]["label"])
	assert.Equal(t, "99", records[0]["value"])
	assert.Equal(t, "Approved", records[1]["label"])
}

func TestClient_CommonLookup_ToleratesDirectArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"Label":"EN"},{"Label":"AR"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, result := client.CommonLookup(context.Background(), "GetLanguages", "")
	require.True(t, result.Success, result.Message)

	require.Len(t, records, 2)
	assert.Equal(t, "EN", records[0]["label"])
}

func TestClient_UpsertSupervisor_AttachesLanguage(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`{"success":true,"data":{"EmployeeId":5}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithLanguage("AR"))
	rec, result := client.UpsertSupervisor(context.Background(), map[string]any{"FirstName": "Nora"})
	require.True(t, result.Success, result.Message)

	assert.Equal(t, "AR", payload["Language"])
	assert.Equal(t, "Nora", payload["FirstName"])
	assert.Equal(t, 5, intField(rec, "employeeId"))
}

func TestClient_UpdateTicketStatus_EnvelopeFailureSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"ticket is locked"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.UpdateTicketStatus(context.Background(), 7, 100)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "ticket is locked")
}

func TestClient_UpdateTicketStatus_ReasonTravelsInPayload(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.UpdateTicketStatus(context.Background(), 7, 101, "missing documents")

	require.True(t, result.Success)
	assert.Equal(t, "missing documents", payload["Reason"])
}

func TestClient_UpdateTicketStatus_ReasonOmittedWhenEmpty(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.True(t, client.UpdateTicketStatus(context.Background(), 7, 100).Success)

	_, present := payload["Reason"]
	assert.False(t, present)
}

func TestClient_UpdateSupervisorStatus_EnvelopeFailureSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"supervisor is suspended"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.UpdateSupervisorStatus(context.Background(), 5, 2)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "supervisor is suspended")
}

func TestClient_UpdateSupervisorStatus_ReasonTravelsInQuery(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.UpdateSupervisorStatus(context.Background(), 5, 3, "policy violation")

	require.True(t, result.Success)
	require.NotNil(t, captured)
	assert.Equal(t, "policy violation", captured.URL.Query().Get("reason"))
}

func TestClient_UpsertSupervisor_EnvelopeFailureSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"email already registered"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, result := client.UpsertSupervisor(context.Background(), map[string]any{"FirstName": "Nora"})

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "email already registered")
}
