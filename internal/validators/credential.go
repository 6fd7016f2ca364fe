package validators

import (
	"context"
	"slices"

	validation "github.com/jellydator/validation"

	"github.com/SaurabViena/heirloom/models"
)

// Field names accepted by [CredentialValidator.Validate].
const (
	FieldName        = "name"
	FieldHandles     = "handles"
	FieldProof       = "proof"
	FieldSubmitter   = "submitter"
	FieldDestination = "destination"
	FieldOwner       = "owner"
	FieldViewer      = "viewer"
	FieldAuthType    = "auth_type"
)

// CredentialValidator validates models.CredentialDraft,
// models.SubmissionRequest and models.AuthorizationRecord values.
type CredentialValidator struct {
	nameMaxLength int
	layout        models.CredentialLayout
}

// NewCredentialValidator returns a validator limiting names to
// nameMaxLength characters. Non-positive values use models.NameMaxLength.
func NewCredentialValidator(nameMaxLength int) Validator {
	if nameMaxLength <= 0 {
		nameMaxLength = models.NameMaxLength
	}
	return &CredentialValidator{nameMaxLength: nameMaxLength, layout: models.DefaultLayout}
}

func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialDraft:
		return v.validateDraft(value, fields...)
	case *models.CredentialDraft:
		return v.validateDraft(*value, fields...)

	case models.SubmissionRequest:
		return v.validateSubmission(value, fields...)
	case *models.SubmissionRequest:
		return v.validateSubmission(*value, fields...)

	case models.AuthorizationRecord:
		return v.validateAuthorization(value, fields...)
	case *models.AuthorizationRecord:
		return v.validateAuthorization(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// Confidential attributes are truncated, never rejected, so a draft only
// has its name checked.
func (v *CredentialValidator) validateDraft(draft models.CredentialDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if err := v.validateName(draft.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *CredentialValidator) validateSubmission(req models.SubmissionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldHandles, FieldProof, FieldSubmitter, FieldDestination}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldName:
			err = v.validateName(req.Name)
		case FieldHandles:
			if len(req.Handles) == 0 {
				err = ErrEmptyHandles
			} else if len(req.Handles) != v.layout.ElementCount() {
				err = ErrInvalidHandles
			}
		case FieldProof:
			err = wrap(ErrEmptyProof, validation.Validate([]byte(req.Proof), validation.Required))
		case FieldSubmitter:
			err = wrap(ErrInvalidAddress, validation.Validate(req.Submitter, notZeroAddress))
		case FieldDestination:
			err = wrap(ErrInvalidAddress, validation.Validate(req.Destination, notZeroAddress))
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *CredentialValidator) validateAuthorization(rec models.AuthorizationRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner, FieldViewer, FieldAuthType}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldOwner:
			err = wrap(ErrInvalidAddress, validation.Validate(rec.Owner, notZeroAddress))
		case FieldViewer:
			err = wrap(ErrInvalidAddress, validation.Validate(rec.Viewer, notZeroAddress))
			if err == nil && rec.Viewer == rec.Owner {
				err = ErrSelfAuthorization
			}
		case FieldAuthType:
			if !slices.Contains([]models.AuthType{models.AuthSingle, models.AuthAll}, rec.Type) {
				err = ErrInvalidAuthType
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *CredentialValidator) validateName(name string) error {
	return wrap(ErrInvalidName, validation.Validate(name,
		validation.Required.Error("name is required"),
		validation.RuneLength(1, v.nameMaxLength).Error("name is too long"),
	))
}
