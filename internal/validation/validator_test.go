package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryPayload struct {
	Name            string `json:"name" validate:"max=10"`
	Color           string `json:"color" validate:"omitempty,hexcolor_short"`
	TransactionType string `json:"transaction_type" validate:"omitempty,direction"`
	ParentID        string `form:"parent_id" validate:"omitempty,uuid"`
}

func TestValidator_CustomTags(t *testing.T) {
	tests := []struct {
		name    string
		payload categoryPayload
		field   string
		tag     string
	}{
		{name: "valid", payload: categoryPayload{Name: "Pets", Color: "#F97316", TransactionType: "expense"}},
		{name: "short color", payload: categoryPayload{Color: "#abc"}},
		{name: "empty optional fields", payload: categoryPayload{}},
		{name: "named color", payload: categoryPayload{Color: "orange"}, field: "color", tag: "hexcolor_short"},
		{name: "color without hash", payload: categoryPayload{Color: "F97316"}, field: "color", tag: "hexcolor_short"},
		{name: "transfer direction", payload: categoryPayload{TransactionType: "transfer"}, field: "transaction_type", tag: "direction"},
		{name: "bad parent", payload: categoryPayload{ParentID: "x"}, field: "parent_id", tag: "uuid"},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.payload)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErrs validator.ValidationErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.field, fieldErrs[0].Field())
			assert.Equal(t, tt.tag, fieldErrs[0].Tag())
		})
	}
}

func TestGetValidator_Shared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
	assert.NotNil(t, GetValidator().GetValidate())
}
