package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "sanad/internal/domain/ticket/valueobjects"
)

func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(1, 2, nil, "Permit not issued", "The permit request has been stuck for two weeks", nil, 7)
	require.NoError(t, err)
	return tk
}

func reconstructedTicket(t *testing.T, status vo.Status) *Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ReconstructTicket(
		1, 1, 2, nil,
		"Persisted ticket", "desc",
		nil,
		status,
		7, "Aisha", "Nasser",
		now, now,
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		desc    string
		wantErr string
	}{
		{name: "valid", title: "Broken service", desc: "details"},
		{name: "boundary title length 200", title: strings.Repeat("a", 200), desc: "d"},
		{name: "empty title", title: "   ", desc: "d", wantErr: "issue title is required"},
		{name: "title too long", title: strings.Repeat("a", 201), desc: "d", wantErr: "maximum length"},
		{name: "description too long", title: "t", desc: strings.Repeat("a", 5001), wantErr: "maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(1, 2, nil, tt.title, tt.desc, nil, 7)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusPending, tk.Status())
		})
	}
}

func TestNewTicket_RequiredReferences(t *testing.T) {
	_, err := NewTicket(0, 2, nil, "t", "d", nil, 7)
	assert.ErrorContains(t, err, "category is required")

	_, err = NewTicket(1, 0, nil, "t", "d", nil, 7)
	assert.ErrorContains(t, err, "service is required")

	_, err = NewTicket(1, 2, nil, "t", "d", nil, 0)
	assert.ErrorContains(t, err, "requester ID is required")
}

func TestChangeStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    vo.Status
		to      vo.Status
		allowed bool
	}{
		{"pending to approved", vo.StatusPending, vo.StatusApproved, true},
		{"pending to rejected", vo.StatusPending, vo.StatusRejected, true},
		{"pending to published", vo.StatusPending, vo.StatusPublished, false},
		{"approved to published", vo.StatusApproved, vo.StatusPublished, true},
		{"approved to expired", vo.StatusApproved, vo.StatusExpired, true},
		{"approved to approved by government", vo.StatusApproved, vo.StatusApprovedByGovernment, true},
		{"published to fulfilled", vo.StatusPublished, vo.StatusFulfilled, true},
		{"published to expired", vo.StatusPublished, vo.StatusExpired, true},
		{"published to pending", vo.StatusPublished, vo.StatusPending, false},
		{"rejected resubmission", vo.StatusRejected, vo.StatusPending, true},
		{"expired is terminal", vo.StatusExpired, vo.StatusPending, false},
		{"fulfilled is terminal", vo.StatusFulfilled, vo.StatusPublished, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := reconstructedTicket(t, tt.from)
			err := tk.ChangeStatus(tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, tk.Status())
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.from, tk.Status())
			}
		})
	}
}

func TestChangeStatus_SameStatusIsNoOp(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusApproved)
	before := tk.UpdatedAt()

	err := tk.ChangeStatus(vo.StatusApproved)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusApproved, tk.Status())
	assert.Equal(t, before, tk.UpdatedAt())
}

func TestAddComment(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusPending)

	comment, err := NewComment(tk.ID(), 5, "Support Agent", "Looking into it")
	require.NoError(t, err)

	require.NoError(t, tk.AddComment(comment))
	assert.Len(t, tk.Comments(), 1)
}

func TestAddComment_WrongTicket(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusPending)

	comment, err := NewComment(999, 5, "Support Agent", "Wrong thread")
	require.NoError(t, err)

	assert.Error(t, tk.AddComment(comment))
}

func TestNewComment_Validation(t *testing.T) {
	_, err := NewComment(1, 5, "Agent", "   ")
	assert.ErrorContains(t, err, "comment text cannot be empty")

	_, err = NewComment(1, 5, "Agent", strings.Repeat("a", 5001))
	assert.ErrorContains(t, err, "maximum length")
}

func TestToggleReaction_IsSelfInverse(t *testing.T) {
	comment, err := ReconstructComment(1, 1, 5, "Agent", "text", time.Now().UTC(), nil)
	require.NoError(t, err)

	added, err := comment.ToggleReaction(9, "thumbs_up")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Len(t, comment.Reactions(), 1)

	added, err = comment.ToggleReaction(9, "thumbs_up")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, comment.Reactions())
}

func TestToggleReaction_DistinctUsersAndEmojis(t *testing.T) {
	comment, err := ReconstructComment(1, 1, 5, "Agent", "text", time.Now().UTC(), nil)
	require.NoError(t, err)

	_, err = comment.ToggleReaction(9, "thumbs_up")
	require.NoError(t, err)
	_, err = comment.ToggleReaction(9, "heart")
	require.NoError(t, err)
	_, err = comment.ToggleReaction(10, "thumbs_up")
	require.NoError(t, err)

	assert.Len(t, comment.Reactions(), 3)
}
