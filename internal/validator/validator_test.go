package validator

import (
	"testing"

	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

type ratingFilter struct {
	MinRating *int `validate:"omitempty,min=1,max=5"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     ratingFilter
		wantErr bool
	}{
		{name: "unset", req: ratingFilter{}},
		{name: "in range", req: ratingFilter{MinRating: lo.ToPtr(4)}},
		{name: "out of range", req: ratingFilter{MinRating: lo.ToPtr(9)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, ierr.IsValidation(err))
			assert.Equal(t, "Request validation failed", ierr.Hint(err))
		})
	}
}
