package validation_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrors "github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/errors"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/validation"
)

type createItemRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	CategoryID  string  `json:"category_id" validate:"required"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	req := createItemRequest{
		Name:       "Samosa",
		Price:      4.50,
		CategoryID: "cat-1",
	}

	assert.NoError(t, v.Validate(req))
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name       string
		req        createItemRequest
		wantErrMsg string
	}{
		{
			name: "missing required field",
			req: createItemRequest{
				Name:  "Samosa",
				Price: 4.50,
				// CategoryID missing
			},
			wantErrMsg: "category_id",
		},
		{
			name: "negative price",
			req: createItemRequest{
				Name:       "Samosa",
				Price:      -1,
				CategoryID: "cat-1",
			},
			wantErrMsg: "price",
		},
		{
			name: "name too long",
			req: createItemRequest{
				Name:       string(make([]byte, 121)),
				Price:      4.50,
				CategoryID: "cat-1",
			},
			wantErrMsg: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			assert.Error(t, err)

			var domainErr *domainerrors.Error
			if assert.True(t, errors.As(err, &domainErr)) {
				assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
				details, ok := domainErr.Details.(map[string]string)
				if assert.True(t, ok, "details should be a field error map") {
					assert.Contains(t, details, tt.wantErrMsg)
				}
			}
		})
	}
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := validation.New()

	req := createItemRequest{
		Price: 4.50,
		// Name and CategoryID missing
	}

	err := v.Validate(req)
	assert.Error(t, err)

	var domainErr *domainerrors.Error
	assert.True(t, errors.As(err, &domainErr))
	details, ok := domainErr.Details.(map[string]string)
	assert.True(t, ok)

	// Should use JSON tag names, not struct field names.
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "category_id")
	assert.NotContains(t, details, "Name")
	assert.NotContains(t, details, "CategoryID")
}
