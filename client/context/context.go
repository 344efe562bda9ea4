package context

import (
	"fmt"

	"github.com/pkg/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/daofund/codec"
	sdk "github.com/hbtc-chain/daofund/types"
)

// Node is the in-process application a CLIContext talks to.
type Node interface {
	Query(req abci.RequestQuery) abci.ResponseQuery
	DeliverMsg(msg sdk.Msg) sdk.Result
}

// CLIContext implements a typical CLI context created in SDK modules for
// transaction handling and queries.
type CLIContext struct {
	Codec  *codec.Codec
	Node   Node
	Height int64
	Indent bool
}

// NewCLIContext returns a new initialized CLIContext.
func NewCLIContext() CLIContext {
	return CLIContext{}
}

// WithCodec returns a copy of the context with an updated codec.
func (ctx CLIContext) WithCodec(cdc *codec.Codec) CLIContext {
	ctx.Codec = cdc
	return ctx
}

// WithNode returns a copy of the context with an updated node.
func (ctx CLIContext) WithNode(node Node) CLIContext {
	ctx.Node = node
	return ctx
}

// WithHeight returns a copy of the context with an updated height.
func (ctx CLIContext) WithHeight(height int64) CLIContext {
	ctx.Height = height
	return ctx
}

// WithIndent returns a copy of the context with indented JSON output.
func (ctx CLIContext) WithIndent(indent bool) CLIContext {
	ctx.Indent = indent
	return ctx
}

// GetNode returns the node, or an error if none is attached.
func (ctx CLIContext) GetNode() (Node, error) {
	if ctx.Node == nil {
		return nil, errors.New("no node attached to context")
	}
	return ctx.Node, nil
}

// Query performs a query to the application with the given path.
// It returns the result and height of the query upon success or an error if
// the query fails.
func (ctx CLIContext) Query(path string) ([]byte, int64, error) {
	return ctx.query(path, nil)
}

// QueryWithData performs a query to the application with the given path
// and the data provided.
func (ctx CLIContext) QueryWithData(path string, data []byte) ([]byte, int64, error) {
	return ctx.query(path, data)
}

func (ctx CLIContext) query(path string, data []byte) ([]byte, int64, error) {
	node, err := ctx.GetNode()
	if err != nil {
		return nil, 0, err
	}

	resp := node.Query(abci.RequestQuery{Path: path, Data: data, Height: ctx.Height})
	if !resp.IsOK() {
		return nil, resp.Height, errors.New(resp.Log)
	}
	return resp.Value, resp.Height, nil
}

// BroadcastMsg runs msg through the application and returns its result.
func (ctx CLIContext) BroadcastMsg(msg sdk.Msg) (sdk.Result, error) {
	node, err := ctx.GetNode()
	if err != nil {
		return sdk.Result{}, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return err.Result(), err
	}

	res := node.DeliverMsg(msg)
	if !res.IsOK() {
		return res, fmt.Errorf("%s", res.Log)
	}
	return res, nil
}
