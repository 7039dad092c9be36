package services

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
		reason  string
	}{
		{name: "comma decimal separator", input: "10,50", want: "10.5"},
		{name: "point decimal separator", input: "10.50", want: "10.5"},
		{name: "integer", input: "42", want: "42"},
		{name: "surrounding spaces", input: "  7,25 ", want: "7.25"},
		{name: "one decimal place", input: "3,5", want: "3.5"},
		{name: "smallest amount", input: "0,01", want: "0.01"},
		{name: "more than two decimals", input: "3,456", wantErr: true, reason: "more than two decimal places"},
		{name: "zero", input: "0", wantErr: true},
		{name: "zero with comma", input: "0,00", wantErr: true},
		{name: "sub-cent amount", input: "0,004", wantErr: true, reason: "more than two decimal places"},
		{name: "negative", input: "-5", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "thousands separator", input: "1.234,56", wantErr: true},
		{name: "trailing garbage", input: "12abc", wantErr: true},
		{name: "not a number", input: "NaN", wantErr: true},
		{name: "exponent", input: "1e5", wantErr: true, reason: "not a number"},
		{name: "huge exponent", input: "1e99999999", wantErr: true, reason: "not a number"},
		{name: "tiny exponent", input: "1e-99999999", wantErr: true, reason: "not a number"},
		{name: "explicit plus sign", input: "+5", wantErr: true},
		{name: "leading point", input: ".5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var amountErr *InvalidAmountError
				assert.True(t, errors.As(err, &amountErr))
				assert.Equal(t, tt.input, amountErr.Input)
				if tt.reason != "" {
					assert.Equal(t, tt.reason, amountErr.Reason)
				}
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseAmount_ExponentReturnsPromptly(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		_, err := ParseAmount("1e99999999")
		done <- err
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("ParseAmount did not return for an exponent amount")
	}
}
