package types

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"
)

// Result is the union of ResponseFormat and ResponseCheckTx.
type Result struct {
	// Code is the response code, is stored back on the chain.
	Code CodeType

	// Codespace is the string referring to the domain of an error
	Codespace CodespaceType

	// Data is any data returned from the app.
	Data []byte

	// Log contains the txs log information. NOTE: nondeterministic.
	Log string

	// Events contains a slice of Event objects that were emitted during some
	// execution.
	Events Events
}

// IsOK reports whether the message was applied.
func (res Result) IsOK() bool {
	return res.Code.IsOK()
}

func (res Result) String() string {
	return fmt.Sprintf("Result{code=%d codespace=%s log=%q events=%d}", res.Code, res.Codespace, res.Log, len(res.Events))
}

// Msg - Transactions messages must fulfill the Msg
type Msg interface {

	// Return the message type.
	// Must be alphanumeric or empty.
	Route() string

	// Returns a human-readable string for the message, intended for utilization
	// within tags
	Type() string

	// ValidateBasic does a simple validation check that
	// doesn't require access to any other information.
	ValidateBasic() Error

	// Get the canonical byte representation of the Msg.
	GetSignBytes() []byte

	// Signers returns the addrs of signers that must sign.
	// CONTRACT: All signatures must be present to be valid.
	// CONTRACT: Returns addrs in some deterministic order.
	GetSigners() []CUAddress
}

// Handler defines the core of the state transition function of an application.
type Handler func(ctx Context, msg Msg) Result

// Querier defines a function type that a module querier must implement to handle
// custom client queries.
type Querier = func(ctx Context, path []string, req abci.RequestQuery) (res []byte, err Error)

// EndBlocker runs code after the transactions in a block and return updates to the validator set
type EndBlocker func(ctx Context, req abci.RequestEndBlock) abci.ResponseEndBlock
