// Package console is a Go client for the marketplace admin console
// gateway. It normalizes the gateway's uneven response shapes and field
// casing, and provides the browsing, form-wizard, and conversation
// state machines the console UI is built on.
package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Result reports the outcome of a gateway call. Business and transport
// failures both land here; methods never surface a raw error.
type Result struct {
	Success bool
	Message string
}

func okResult() Result {
	return Result{Success: true}
}

func failResult(format string, args ...any) Result {
	return Result{Success: false, Message: fmt.Sprintf(format, args...)}
}

// PageQuery carries list parameters in the gateway's spelling.
type PageQuery struct {
	Page          int
	PageSize      int
	SortColumn    string
	SortDirection string
	Search        string
	StatusID      *int
}

// Client is the console gateway client.
type Client struct {
	baseURL    string
	language   string
	actorID    uint
	actorName  string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithLanguage sets the language ("EN"/"AR") attached to the payloads
// that carry one. Default is "EN".
func WithLanguage(lang string) Option {
	return func(client *Client) {
		client.language = lang
	}
}

// WithActor sets the identity stamped on comments and reactions.
func WithActor(id uint, name string) Option {
	return func(client *Client) {
		client.actorID = id
		client.actorName = name
	}
}

// NewClient creates a console gateway client.
//
// Parameters:
//   - baseURL: the gateway base URL including the API prefix
//     (e.g., "https://gateway.example.com/api")
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		language: "EN",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Language returns the language the client stamps on localized payloads.
func (c *Client) Language() string {
	return c.language
}

// FetchPage retrieves one page of the named resource.
// Resource is the gateway path segment pair, e.g.
// "SupportTickets/GetAllSupportTickets" or "SuperAdmin/GetAllSuperAdmins".
func (c *Client) FetchPage(ctx context.Context, resource string, q PageQuery) (Page, Result) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("PageNumber", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("PageSize", strconv.Itoa(q.PageSize))
	}
	if q.SortColumn != "" {
		query.Set("OrderByColumn", q.SortColumn)
		query.Set("OrderDirection", q.SortDirection)
	}
	if q.Search != "" {
		query.Set("Search", q.Search)
	}
	if q.StatusID != nil {
		query.Set("StatusId", strconv.Itoa(*q.StatusID))
	}

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, resource, query.Encode())

	body, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Page{Records: []Record{}}, failResult("fetch page: %v", err)
	}

	page := normalizePage(body)
	if page.Degraded {
		return page, failResult("fetch page: unrecognized response shape")
	}
	return page, okResult()
}

// FetchTicket retrieves one ticket with its conversation.
func (c *Client) FetchTicket(ctx context.Context, ticketID uint) (Record, Result) {
	endpoint := fmt.Sprintf("%s/SupportTickets/GetSupportTicketsByTicketId?TicketId=%d", c.baseURL, ticketID)

	body, err := c.doRequest(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, failResult("fetch ticket: %v", err)
	}

	rec, ok := normalizeOne(body)
	if !ok {
		return nil, failResult("fetch ticket: empty or unrecognized response")
	}
	return rec, okResult()
}

// UpdateTicketStatus moves a ticket to a new status. An optional
// reason (used when rejecting) travels with the payload.
func (c *Client) UpdateTicketStatus(ctx context.Context, ticketID uint, statusID int, reason ...string) Result {
	endpoint := c.baseURL + "/SupportTickets/UpdateSupportTicketStatus"
	payload := map[string]any{
		"TicketId": ticketID,
		"StatusId": statusID,
	}
	if len(reason) > 0 && reason[0] != "" {
		payload["Reason"] = reason[0]
	}

	if _, err := c.doRequest(ctx, http.MethodPost, endpoint, payload); err != nil {
		return failResult("update ticket status: %v", err)
	}
	return okResult()
}

// AddComment appends a comment to a ticket's conversation and returns
// the stored record when the gateway echoes it back.
func (c *Client) AddComment(ctx context.Context, ticketID uint, text string) (Record, Result) {
	endpoint := c.baseURL + "/SupportTickets/UpsertSupportTicketsUserComment"
	payload := map[string]any{
		"TicketId":   ticketID,
		"AuthorId":   c.actorID,
		"AuthorName": c.actorName,
		"Comment":    text,
	}

	body, err := c.doRequest(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, failResult("add comment: %v", err)
	}

	rec, _ := normalizeOne(body)
	return rec, okResult()
}

// ToggleReaction flips the actor's emoji reaction on a comment. The
// returned record, when present, carries the comment's updated reaction
// set under "reactions".
func (c *Client) ToggleReaction(ctx context.Context, commentID uint, emojiCode string) (Record, Result) {
	endpoint := c.baseURL + "/SupportTickets/UpsertSupportTicketsUserCommentsReaction"
	payload := map[string]any{
		"id":        c.actorID,
		"commentId": commentID,
		"emojiCode": emojiCode,
	}

	body, err := c.doRequest(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, failResult("toggle reaction: %v", err)
	}

	rec, _ := normalizeOne(body)
	return rec, okResult()
}

// UpsertSupervisor creates or updates a super-admin record. Language is
// attached the way the console attaches it.
func (c *Client) UpsertSupervisor(ctx context.Context, record map[string]any) (Record, Result) {
	endpoint := c.baseURL + "/SuperAdmin/UpsertSuperAdmin"

	payload := make(map[string]any, len(record)+1)
	for k, v := range record {
		payload[k] = v
	}
	payload["Language"] = c.language

	body, err := c.doRequest(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, failResult("upsert supervisor: %v", err)
	}

	rec, _ := normalizeOne(body)
	return rec, okResult()
}

// UpdateSupervisorStatus patches just the status of a super-admin. An
// optional reason travels as a query parameter.
func (c *Client) UpdateSupervisorStatus(ctx context.Context, employeeID uint, statusID int, reason ...string) Result {
	endpoint := fmt.Sprintf("%s/SuperAdmin/UpdateSuperAdminStatus?employeeId=%d&statusId=%d",
		c.baseURL, employeeID, statusID)
	if len(reason) > 0 && reason[0] != "" {
		endpoint += "&reason=" + url.QueryEscape(reason[0])
	}

	if _, err := c.doRequest(ctx, http.MethodPatch, endpoint, nil); err != nil {
		return failResult("update supervisor status: %v", err)
	}
	return okResult()
}

// GetSupervisorByID retrieves one super-admin record.
func (c *Client) GetSupervisorByID(ctx context.Context, employeeID uint) (Record, Result) {
	endpoint := fmt.Sprintf("%s/SuperAdmin/GetSuperAdminById?employeeId=%d", c.baseURL, employeeID)

	body, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, failResult("get supervisor: %v", err)
	}

	rec, ok := normalizeOne(body)
	if !ok {
		return nil, failResult("get supervisor: empty or unrecognized response")
	}
	return rec, okResult()
}

// CommonLookup fetches reference rows (dropdown data) by stored
// procedure name. The gateway returns the rows as a JSON string under
// data; this decodes them back into records.
func (c *Client) CommonLookup(ctx context.Context, spName, parameter string) ([]Record, Result) {
	endpoint := c.baseURL + "/Account/Common"
	payload := map[string]any{
		"spName":    spName,
		"parameter": parameter,
		"language":  c.language,
	}

	body, err := c.doRequest(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, failResult("common lookup: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, failResult("common lookup: unrecognized response shape")
	}

	// data is a string holding JSON, a quirk of the legacy backend.
	var encoded string
	if err := json.Unmarshal(env.Data, &encoded); err != nil {
		// Tolerate a sane gateway that returns the array directly.
		page := normalizePage(body)
		if page.Degraded {
			return nil, failResult("common lookup: unrecognized response shape")
		}
		return page.Records, okResult()
	}

	var rows []map[string]any
	if err := json.Unmarshal([]byte(encoded), &rows); err != nil {
		return nil, failResult("common lookup: malformed embedded payload")
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, CanonicalizeRecord(row))
	}
	return records, okResult()
}

// doRequest performs an HTTP request and returns the raw response body.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", c.language)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		if json.Unmarshal(respBody, &env) == nil {
			if env.Error != "" {
				return nil, fmt.Errorf("status=%d: %s", resp.StatusCode, env.Error)
			}
			if env.Message != "" {
				return nil, fmt.Errorf("status=%d: %s", resp.StatusCode, env.Message)
			}
		}
		return nil, fmt.Errorf("status=%d", resp.StatusCode)
	}

	// The gateway reports business failures inside a 200 envelope.
	var env envelope
	if json.Unmarshal(respBody, &env) == nil && env.Success != nil && !*env.Success {
		if env.Message != "" {
			return nil, fmt.Errorf("%s", env.Message)
		}
		if env.Error != "" {
			return nil, fmt.Errorf("%s", env.Error)
		}
		return nil, fmt.Errorf("gateway reported failure")
	}

	return respBody, nil
}
