package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentpay/shared/validator"
)

type stayRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
	CheckIn    string `json:"check_in"    validate:"required,day"`
	CheckOut   string `json:"check_out"   validate:"required,day"`
	Guests     int    `json:"guests"      validate:"gte=1,lte=16"`
	Policy     string `json:"policy"      validate:"omitempty,oneof=flexible moderate strict"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		data      stayRequest
		wantErr   bool
		errSubstr string
	}{
		{
			name: "valid request",
			data: stayRequest{PropertyID: "p-1", CheckIn: "2026-06-01", CheckOut: "2026-06-04", Guests: 2},
		},
		{
			name:      "missing property",
			data:      stayRequest{CheckIn: "2026-06-01", CheckOut: "2026-06-04", Guests: 2},
			wantErr:   true,
			errSubstr: "property_id is required",
		},
		{
			name:      "malformed day",
			data:      stayRequest{PropertyID: "p-1", CheckIn: "06/01/2026", CheckOut: "2026-06-04", Guests: 2},
			wantErr:   true,
			errSubstr: "YYYY-MM-DD",
		},
		{
			name:      "too many guests",
			data:      stayRequest{PropertyID: "p-1", CheckIn: "2026-06-01", CheckOut: "2026-06-04", Guests: 20},
			wantErr:   true,
			errSubstr: "guests must be less than or equal to 16",
		},
		{
			name:      "every violation reported",
			data:      stayRequest{CheckIn: "2026-06-01", CheckOut: "bad", Guests: 2},
			wantErr:   true,
			errSubstr: "property_id is required; check_out must be a date formatted as YYYY-MM-DD",
		},
		{
			name:      "unknown policy",
			data:      stayRequest{PropertyID: "p-1", CheckIn: "2026-06-01", CheckOut: "2026-06-04", Guests: 2, Policy: "lenient"},
			wantErr:   true,
			errSubstr: "one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		wantErr  bool
	}{
		{
			name:     "valid body",
			jsonBody: `{"property_id":"p-1","check_in":"2026-06-01","check_out":"2026-06-04","guests":2}`,
		},
		{
			name:     "malformed body",
			jsonBody: `{"property_id":`,
			wantErr:  true,
		},
		{
			name:     "empty body",
			jsonBody: `{}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data stayRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("0xabc", "required"))
	assert.Error(t, validator.ValidateVar("", "required"))
	assert.NoError(t, validator.ValidateVar("2026-02-28", "day"))
	assert.Error(t, validator.ValidateVar("2026-02-30", "day"))
}

type noteRequest struct {
	Reason string `json:"reason" validate:"max=8"`
}

func TestValidateOptional(t *testing.T) {
	var empty noteRequest
	assert.NoError(t, validator.ValidateOptional(strings.NewReader(""), &empty))
	assert.Empty(t, empty.Reason)

	var given noteRequest
	assert.NoError(t, validator.ValidateOptional(strings.NewReader(`{"reason":"plans"}`), &given))
	assert.Equal(t, "plans", given.Reason)

	var long noteRequest
	err := validator.ValidateOptional(strings.NewReader(`{"reason":"changed my plans"}`), &long)
	assert.ErrorContains(t, err, "reason must be at most 8")

	var broken noteRequest
	assert.Error(t, validator.ValidateOptional(strings.NewReader(`{"reason":`), &broken))
}
