package models

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// GatewayKeys is the public configuration of an encryption gateway.
type GatewayKeys struct {
	NetworkKey hexutil.Bytes  `json:"network_key"`
	ChainID    int64          `json:"chain_id"`
	Verifier   common.Address `json:"verifying_contract"`
	WidthBits  int            `json:"width_bits"`
}

// InputsRequest carries one sealed encryption batch, in append order.
type InputsRequest struct {
	Destination common.Address  `json:"contract_address"`
	Submitter   common.Address  `json:"user_address"`
	Inputs      []hexutil.Bytes `json:"inputs"`
}

// VerifyInputRequest asks the gateway to check a proof for its scope.
type VerifyInputRequest struct {
	Destination common.Address `json:"contract_address"`
	Submitter   common.Address `json:"user_address"`
	Handles     []Handle       `json:"handles"`
	Proof       Proof          `json:"proof"`
}

// HandleContractPair ties a handle to the contract that holds it on the wire.
type HandleContractPair struct {
	Handle   Handle         `json:"handle"`
	Contract common.Address `json:"contract_address"`
}

// UserDecryptPayload is a signed user decryption request.
type UserDecryptPayload struct {
	Pairs           []HandleContractPair `json:"handle_contract_pairs"`
	PublicKey       hexutil.Bytes        `json:"public_key"`
	Signature       hexutil.Bytes        `json:"signature"`
	Contracts       []common.Address     `json:"contract_addresses"`
	UserAddress     common.Address       `json:"user_address"`
	StartTimestamp  int64                `json:"start_timestamp"`
	DurationSeconds int64                `json:"duration_seconds"`
}

// SealedResult is one value re-encrypted to the requester's public key.
type SealedResult struct {
	Handle  Handle        `json:"handle"`
	Payload hexutil.Bytes `json:"payload"`
}

// UserDecryptResponse lists the sealed values of a user decryption.
type UserDecryptResponse struct {
	Results []SealedResult `json:"results"`
}

// ACLRequest extends the access list of Handles with Account.
type ACLRequest struct {
	Handles []Handle       `json:"handles"`
	Account common.Address `json:"account"`
}
