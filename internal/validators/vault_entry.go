package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/vaultward/vaultward/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation
// to a subset of fields (field-level scoping).
const (
	// FieldEntryID targets the client-generated unique identifier of a vault entry.
	FieldEntryID = "id"

	// FieldEntryName targets the human-readable label of a vault entry.
	FieldEntryName = "name"
)

// VaultEntryValidator validates vault entries and account credentials
// before they reach the encryption engine or the server.
type VaultEntryValidator struct {
}

func NewVaultEntryValidator() Validator {
	return &VaultEntryValidator{}
}

func (v *VaultEntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.VaultEntry:
		return v.validateEntry(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultEntryValidator) validateEntry(_ context.Context, entry models.VaultEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryID, FieldEntryName}
	}

	for _, field := range fields {
		switch field {
		case FieldEntryID:
			if strings.TrimSpace(entry.ID) == "" {
				return ErrEmptyEntryID
			}
		case FieldEntryName:
			if strings.TrimSpace(entry.Name) == "" {
				return ErrEmptyEntryName
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *VaultEntryValidator) validateCredentials(_ context.Context, creds models.Credentials) error {
	if strings.TrimSpace(creds.Email) == "" {
		return ErrEmptyEmail
	}
	if creds.MasterPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
