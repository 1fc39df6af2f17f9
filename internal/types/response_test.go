package types

import (
	"encoding/json"
	"fmt"
	"testing"

	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponseShape(t *testing.T) {
	resp := NewSuccessResponse(ListData[string]{TotalCount: 2, Items: []string{"a", "b"}}, "Records", "2 records found")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": true,
		"title": "Records",
		"message": "2 records found",
		"detail": null,
		"data": {"totalCount": 2, "items": ["a", "b"]}
	}`, string(raw))
	assert.NoError(t, resp.Err())
}

func TestFailureResponseKeepsStorageMessage(t *testing.T) {
	cause := fmt.Errorf("dial tcp 10.0.0.1:5432: connect: connection refused")
	err := ierr.WithError(cause).WithHint("Failed to list banners").Mark(ierr.ErrDatabase)

	resp := NewFailureResponse[ListData[string]](err)

	assert.False(t, resp.Status)
	assert.Equal(t, "Storage failure", resp.Title)
	assert.Equal(t, "Failed to list banners", resp.Message)
	require.NotNil(t, resp.Detail)
	assert.Contains(t, *resp.Detail, "connection refused")
	assert.Nil(t, resp.Data)
	assert.True(t, ierr.IsDatabase(resp.Err()))
}

func TestFailureResponseTitles(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		title string
	}{
		{"not_found", ierr.NewError("missing").Mark(ierr.ErrNotFound), "Not found"},
		{"invalid_identifier", ierr.NewError("bad").Mark(ierr.ErrInvalidIdentifier), "Invalid identifier"},
		{"unclassified", fmt.Errorf("boom"), "Unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewFailureResponse[string](tt.err)
			assert.False(t, resp.Status)
			assert.Equal(t, tt.title, resp.Title)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
