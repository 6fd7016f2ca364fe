package http

import (
	"fmt"

	validation "github.com/jellydator/validation"

	"github.com/SaurabViena/heirloom/internal/validators"
	"github.com/SaurabViena/heirloom/models"
)

// maxBatch mirrors the largest input batch the engine accepts.
const maxBatch = 255

var noEmptyHandles = validation.By(func(value interface{}) error {
	handles, ok := value.([]models.Handle)
	if !ok {
		return validation.NewError("validation_handles_type", "must be a list of handles")
	}
	for _, h := range handles {
		if h.IsEmpty() {
			return errEmptyHandle
		}
	}
	return nil
})

func validateInputs(req models.InputsRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.Destination, validators.NonZeroAddress),
		validation.Field(&req.Submitter, validators.NonZeroAddress),
		validation.Field(&req.Inputs, validation.Required, validation.Length(1, maxBatch)),
	))
}

func validateVerifyInput(req models.VerifyInputRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.Destination, validators.NonZeroAddress),
		validation.Field(&req.Submitter, validators.NonZeroAddress),
		validation.Field(&req.Handles, validation.Required, validation.Length(1, maxBatch), noEmptyHandles),
		validation.Field(&req.Proof, validation.Required),
	))
}

func validateUserDecrypt(req models.UserDecryptPayload) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Pairs, validation.Required),
		validation.Field(&req.PublicKey, validation.Required),
		validation.Field(&req.Signature, validation.Required),
		validation.Field(&req.Contracts, validation.Required),
		validation.Field(&req.UserAddress, validators.NonZeroAddress),
		validation.Field(&req.StartTimestamp, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.DurationSeconds, validation.Required, validation.Min(int64(1))),
	)
	if err != nil {
		return invalid(err)
	}
	for i, p := range req.Pairs {
		if p.Handle.IsEmpty() {
			return invalid(fmt.Errorf("handle_contract_pairs[%d]: %w", i, errEmptyHandle))
		}
	}
	return nil
}

func validateACL(req models.ACLRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.Handles, validation.Required, noEmptyHandles),
		validation.Field(&req.Account, validators.NonZeroAddress),
	))
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
}
