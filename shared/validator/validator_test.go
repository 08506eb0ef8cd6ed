package validator_test

import (
	"strings"
	"testing"

	"nest/shared/failure"
	"nest/shared/validator"
)

type contactRequest struct {
	Name    string `validate:"required" json:"name"`
	Email   string `validate:"required,email" json:"email"`
	Phone   string `validate:"required" json:"phone"`
	Message string `validate:"max=2000" json:"message"`
}

func (c *contactRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *contactRequest
		expectError bool
		code        string
	}{
		{
			name: "valid struct",
			data: &contactRequest{
				Name:  "John Doe",
				Email: "john@example.com",
				Phone: "+15550100",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &contactRequest{
				Email: "john@example.com",
				Phone: "+15550100",
			},
			expectError: true,
			code:        "MISSING_NAME",
		},
		{
			name: "invalid email",
			data: &contactRequest{
				Name:  "John Doe",
				Email: "invalid-email",
				Phone: "+15550100",
			},
			expectError: true,
			code:        "INVALID_EMAIL",
		},
		{
			name: "message too long",
			data: &contactRequest{
				Name:    "John Doe",
				Email:   "john@example.com",
				Phone:   "+15550100",
				Message: strings.Repeat("x", 2001),
			},
			expectError: true,
			code:        "INVALID_MESSAGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Fatal("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Fatalf("expected no validation error, got: %v", err)
			}

			if tt.code != "" && failure.GetErrorCode(err) != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, failure.GetErrorCode(err))
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "Pending",
			tag:         "oneof=Pending Confirmed Completed Cancelled",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "Archived",
			tag:         "oneof=Pending Confirmed Completed Cancelled",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"John Doe","email":"john@example.com","phone":"+15550100"}`,
			expectError: false,
		},
		{
			name:        "invalid email",
			jsonBody:    `{"name":"John Doe","email":"invalid-email","phone":"+15550100"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"John Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data contactRequest
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateNormalizes(t *testing.T) {
	reader := strings.NewReader(`{"name":"  John Doe  ","email":" John@Example.COM ","phone":" +15550100 "}`)

	var data contactRequest
	if err := validator.Validate(reader, &data); err != nil {
		t.Fatalf("expected no validation error, got: %v", err)
	}

	if data.Name != "John Doe" {
		t.Errorf("expected trimmed name, got %q", data.Name)
	}
	if data.Email != "john@example.com" {
		t.Errorf("expected lower-cased email, got %q", data.Email)
	}
	if data.Phone != "+15550100" {
		t.Errorf("expected trimmed phone, got %q", data.Phone)
	}
}

func TestValidateNormalizedWhitespaceIsMissing(t *testing.T) {
	reader := strings.NewReader(`{"name":"   ","email":"john@example.com","phone":"+15550100"}`)

	var data contactRequest
	err := validator.Validate(reader, &data)

	if err == nil {
		t.Fatal("expected validation error for whitespace-only name")
	}
	if failure.GetErrorCode(err) != "MISSING_NAME" {
		t.Errorf("expected MISSING_NAME, got %s", failure.GetErrorCode(err))
	}
}

func TestValidationMessages(t *testing.T) {
	data := &contactRequest{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
