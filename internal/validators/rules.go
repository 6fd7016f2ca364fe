package validators

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	validation "github.com/jellydator/validation"
)

// notZeroAddress rejects the zero address and non-address values.
var notZeroAddress = validation.By(func(value interface{}) error {
	addr, ok := value.(common.Address)
	if !ok {
		return validation.NewError("validation_address_type", "must be an address")
	}
	if addr == (common.Address{}) {
		return validation.NewError("validation_address_zero", "must not be the zero address")
	}
	return nil
})

// HexAddress validates a textual 0x-prefixed address.
var HexAddress = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok || !common.IsHexAddress(s) {
		return validation.NewError("validation_hex_address", "must be a 20-byte hex address")
	}
	return nil
})

// wrap maps a jellydator error onto a package sentinel.
func wrap(sentinel, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", sentinel, err.Error())
}

// ParseAddress validates and parses s. It is used by CLI flag parsing.
func ParseAddress(s string) (common.Address, error) {
	if err := validation.Validate(s, validation.Required, HexAddress); err != nil {
		return common.Address{}, wrap(ErrInvalidAddress, err)
	}
	addr := common.HexToAddress(s)
	if err := validation.Validate(addr, notZeroAddress); err != nil {
		return common.Address{}, wrap(ErrInvalidAddress, err)
	}
	return addr, nil
}

// NonZeroAddress rejects the zero address. It is shared with request DTO
// validation in the gateway handlers.
var NonZeroAddress = notZeroAddress
