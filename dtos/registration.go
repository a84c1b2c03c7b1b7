package dtos

import (
	"fmt"
	"strings"
)

// Field names used in validation error maps.
const (
	FieldEventID           = "eventId"
	FieldFullName          = "fullName"
	FieldRole              = "role"
	FieldCompany           = "company"
	FieldEmail             = "email"
	FieldAdditionalRequest = "additionalRequest"
)

// fieldOrder is the declaration order used to report the first unmet
// requirement.
var fieldOrder = []string{
	FieldEventID,
	FieldFullName,
	FieldRole,
	FieldCompany,
	FieldEmail,
}

// GuestRegistrationDto carries the user-entered registration form. All
// fields except AdditionalRequest are required after trimming.
type GuestRegistrationDto struct {
	EventID           string  `json:"eventId"`
	FullName          string  `json:"fullName"`
	Role              string  `json:"role"`
	Company           string  `json:"company"`
	Email             string  `json:"email"`
	AdditionalRequest *string `json:"additionalRequest"`
}

// Normalize trims whitespace on every field and folds an empty
// AdditionalRequest to absent.
func (dto *GuestRegistrationDto) Normalize() {
	dto.EventID = strings.TrimSpace(dto.EventID)
	dto.FullName = strings.TrimSpace(dto.FullName)
	dto.Role = strings.TrimSpace(dto.Role)
	dto.Company = strings.TrimSpace(dto.Company)
	dto.Email = strings.TrimSpace(dto.Email)

	if dto.AdditionalRequest != nil {
		trimmed := strings.TrimSpace(*dto.AdditionalRequest)
		if trimmed == "" {
			dto.AdditionalRequest = nil
		} else {
			dto.AdditionalRequest = &trimmed
		}
	}
}

func (dto GuestRegistrationDto) Validate() (bool, map[string]string) {
	errs := map[string]string{}

	required := map[string]string{
		FieldEventID:  dto.EventID,
		FieldFullName: dto.FullName,
		FieldRole:     dto.Role,
		FieldCompany:  dto.Company,
		FieldEmail:    dto.Email,
	}

	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = "must be provided"
		}
	}

	return len(errs) == 0, errs
}

// ValidationError reports the first unmet registration requirement. No
// network call is attempted once one is raised.
type ValidationError struct {
	Field   string
	Message string
	Errors  map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FirstValidationError picks the first failed field in declaration order
// out of a Validate error map.
func FirstValidationError(errs map[string]string) *ValidationError {
	for _, field := range fieldOrder {
		if msg, ok := errs[field]; ok {
			return &ValidationError{Field: field, Message: msg, Errors: errs}
		}
	}

	for field, msg := range errs {
		return &ValidationError{Field: field, Message: msg, Errors: errs}
	}

	return nil
}
