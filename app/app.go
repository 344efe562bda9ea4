package app

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/daofund/codec"
	"github.com/hbtc-chain/daofund/store"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/crisis"
	"github.com/hbtc-chain/daofund/x/delegation"
	"github.com/hbtc-chain/daofund/x/ledger"
	"github.com/hbtc-chain/daofund/x/milestone"
	"github.com/hbtc-chain/daofund/x/refund"
	"github.com/hbtc-chain/daofund/x/vault"
)

const (
	appName = "FundApp"

	// MainStoreKey holds application bookkeeping such as the last block.
	MainStoreKey = "main"
)

var (
	// default home directory for the application daemon
	DefaultNodeHome = os.ExpandEnv("$HOME/.fundd")

	lastBlockKey = []byte("last_block")
)

// custom tx codec
func MakeCodec() *codec.Codec {
	var cdc = codec.New()
	sdk.RegisterCodec(cdc)
	ledger.RegisterCodec(cdc)
	vault.RegisterCodec(cdc)
	delegation.RegisterCodec(cdc)
	refund.RegisterCodec(cdc)
	milestone.RegisterCodec(cdc)
	crisis.RegisterCodec(cdc)
	return cdc
}

// BlockInfo describes the last committed block.
type BlockInfo struct {
	ChainID string    `json:"chain_id" yaml:"chain_id"`
	Height  int64     `json:"height" yaml:"height"`
	Time    time.Time `json:"time" yaml:"time"`
}

type state struct {
	ms  sdk.CacheMultiStore
	ctx sdk.Context
}

// FundApp is the fund state machine. Blocks are delivered through the ABCI
// methods or through ExecuteBlock. Writes of a block stay in a cache until
// Commit, so queries always observe the last committed block.
type FundApp struct {
	abci.BaseApplication

	// guards the committed store and lastBlock against concurrent queries
	mtx sync.RWMutex
	// serializes ExecuteBlock callers
	blockMtx sync.Mutex

	logger log.Logger
	cdc    *codec.Codec
	db     dbm.DB
	cms    *store.RootMultiStore

	// keys to access the substores
	keys map[string]*sdk.KVStoreKey

	router      map[string]sdk.Handler
	queryRouter map[string]sdk.Querier

	deliverState *state
	lastBlock    BlockInfo

	autoExecute    bool
	invCheckPeriod uint

	// keepers
	ledgerKeeper     ledger.Keeper
	vaultKeeper      vault.Keeper
	delegationKeeper delegation.Keeper
	refundKeeper     refund.Keeper
	milestoneKeeper  milestone.Keeper
	crisisKeeper     crisis.Keeper
}

var _ abci.Application = (*FundApp)(nil)

// SetAutoExecute makes the end blocker execute a milestone once its voting
// window has closed.
func SetAutoExecute(autoExecute bool) func(*FundApp) {
	return func(app *FundApp) { app.autoExecute = autoExecute }
}

// SetInvCheckPeriod asserts every registered invariant each period blocks.
// Zero disables the check.
func SetInvCheckPeriod(period uint) func(*FundApp) {
	return func(app *FundApp) { app.invCheckPeriod = period }
}

// NewFundApp returns a reference to an initialized FundApp backed by db. A
// previously committed block is loaded from db.
func NewFundApp(logger log.Logger, db dbm.DB, options ...func(*FundApp)) *FundApp {
	cdc := MakeCodec()

	keys := map[string]*sdk.KVStoreKey{}
	for _, name := range []string{MainStoreKey, ledger.StoreKey, vault.StoreKey,
		delegation.StoreKey, refund.StoreKey, milestone.StoreKey} {
		keys[name] = sdk.NewKVStoreKey(name)
	}

	app := &FundApp{
		logger:      logger,
		cdc:         cdc,
		db:          db,
		cms:         store.NewRootMultiStore(db),
		keys:        keys,
		router:      make(map[string]sdk.Handler),
		queryRouter: make(map[string]sdk.Querier),
	}
	for _, option := range options {
		option(app)
	}

	// add keepers
	app.ledgerKeeper = ledger.NewKeeper(cdc, keys[ledger.StoreKey], ledger.DefaultCodespace)
	app.vaultKeeper = vault.NewKeeper(cdc, keys[vault.StoreKey], vault.DefaultCodespace,
		milestone.ModuleName, refund.ModuleName)
	app.delegationKeeper = delegation.NewKeeper(cdc, keys[delegation.StoreKey], app.ledgerKeeper,
		delegation.DefaultCodespace)
	app.refundKeeper = refund.NewKeeper(cdc, keys[refund.StoreKey], app.ledgerKeeper, app.vaultKeeper,
		refund.DefaultCodespace)
	app.milestoneKeeper = milestone.NewKeeper(cdc, keys[milestone.StoreKey], app.delegationKeeper,
		app.vaultKeeper, app.refundKeeper, milestone.DefaultCodespace)
	app.crisisKeeper = crisis.NewKeeper(app.invCheckPeriod)

	ledger.RegisterInvariants(&app.crisisKeeper, app.ledgerKeeper)
	vault.RegisterInvariants(&app.crisisKeeper, app.vaultKeeper)
	delegation.RegisterInvariants(&app.crisisKeeper, app.delegationKeeper)
	refund.RegisterInvariants(&app.crisisKeeper, app.refundKeeper)
	milestone.RegisterInvariants(&app.crisisKeeper, app.milestoneKeeper)

	app.addRoute(ledger.RouterKey, ledger.NewHandler(app.ledgerKeeper))
	app.addRoute(refund.RouterKey, refund.NewHandler(app.refundKeeper))
	app.addRoute(milestone.RouterKey, milestone.NewHandler(app.milestoneKeeper))
	app.addRoute(crisis.RouterKey, crisis.NewHandler(app.crisisKeeper))

	app.addQueryRoute(ledger.QuerierRoute, ledger.NewQuerier(app.ledgerKeeper))
	app.addQueryRoute(vault.QuerierRoute, vault.NewQuerier(app.vaultKeeper))
	app.addQueryRoute(delegation.QuerierRoute, delegation.NewQuerier(app.delegationKeeper))
	app.addQueryRoute(refund.QuerierRoute, refund.NewQuerier(app.refundKeeper))
	app.addQueryRoute(milestone.QuerierRoute, milestone.NewQuerier(app.milestoneKeeper))

	// initialize stores
	for _, key := range keys {
		app.cms.MountStore(key)
	}

	app.loadLastBlock()
	return app
}

func (app *FundApp) addRoute(path string, h sdk.Handler) {
	if _, ok := app.router[path]; ok {
		panic(fmt.Sprintf("route %s has already been initialized", path))
	}
	app.router[path] = h
}

func (app *FundApp) addQueryRoute(path string, q sdk.Querier) {
	if _, ok := app.queryRouter[path]; ok {
		panic(fmt.Sprintf("query route %s has already been initialized", path))
	}
	app.queryRouter[path] = q
}

// Codec returns the application codec.
func (app *FundApp) Codec() *codec.Codec { return app.cdc }

// Logger returns the application logger.
func (app *FundApp) Logger() log.Logger { return app.logger }

func (app *FundApp) loadLastBlock() {
	bz := app.cms.GetKVStore(app.keys[MainStoreKey]).Get(lastBlockKey)
	if bz == nil {
		return
	}
	app.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &app.lastBlock)
}

func (app *FundApp) setLastBlock(info BlockInfo) {
	app.cms.GetKVStore(app.keys[MainStoreKey]).Set(lastBlockKey, app.cdc.MustMarshalBinaryLengthPrefixed(info))
	app.lastBlock = info
}

// Initialized reports whether genesis has been applied.
func (app *FundApp) Initialized() bool {
	app.mtx.RLock()
	defer app.mtx.RUnlock()
	return app.cms.GetKVStore(app.keys[MainStoreKey]).Has(lastBlockKey)
}

// LastBlock returns the last committed block.
func (app *FundApp) LastBlock() BlockInfo {
	app.mtx.RLock()
	defer app.mtx.RUnlock()
	return app.lastBlock
}

// Info implements the ABCI interface.
func (app *FundApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	last := app.LastBlock()
	return abci.ResponseInfo{
		Data:            appName,
		LastBlockHeight: last.Height,
	}
}

// InitChain implements the ABCI interface. Invalid genesis state halts the
// node.
func (app *FundApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	var genesisState GenesisState
	app.cdc.MustUnmarshalJSON(req.AppStateBytes, &genesisState)
	if err := app.InitChainFromGenesis(req.ChainId, req.Time, genesisState); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

// InitChainFromGenesis validates genesisState and writes it to the store in
// module dependency order. It fails if the chain is already initialized.
func (app *FundApp) InitChainFromGenesis(chainID string, genesisTime time.Time, genesisState GenesisState) error {
	mg, err := genesisState.decode()
	if err != nil {
		return err
	}
	if err := mg.validate(); err != nil {
		return errors.Wrap(err, "invalid genesis state")
	}

	app.mtx.Lock()
	defer app.mtx.Unlock()

	if app.cms.GetKVStore(app.keys[MainStoreKey]).Has(lastBlockKey) {
		return errors.New("chain is already initialized")
	}

	header := abci.Header{ChainID: chainID, Time: genesisTime}
	ctx := sdk.NewContext(app.cms, header, app.logger)
	cacheCtx, writeCache := ctx.CacheContext()

	ledger.InitGenesis(cacheCtx, app.ledgerKeeper, mg.ledger)
	vault.InitGenesis(cacheCtx, app.vaultKeeper, mg.vault)
	delegation.InitGenesis(cacheCtx, app.delegationKeeper, mg.delegation)
	refund.InitGenesis(cacheCtx, app.refundKeeper, mg.refund)
	milestone.InitGenesis(cacheCtx, app.milestoneKeeper, mg.milestone)

	if msg, broken := app.crisisKeeper.CheckInvariants(cacheCtx); broken {
		return fmt.Errorf("genesis breaks an invariant: %s", msg)
	}

	writeCache()
	app.setLastBlock(BlockInfo{ChainID: chainID, Height: 0, Time: genesisTime.UTC()})
	app.logger.Info("chain initialized", "chain_id", chainID, "genesis_time", genesisTime.UTC())
	return nil
}

// BeginBlock implements the ABCI interface.
func (app *FundApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ms := app.cms.CacheMultiStore()
	app.deliverState = &state{
		ms:  ms,
		ctx: sdk.NewContext(ms, req.Header, app.logger),
	}
	return abci.ResponseBeginBlock{}
}

// CheckTx implements the ABCI interface. Only stateless checks are made.
func (app *FundApp) CheckTx(req abci.RequestCheckTx) abci.ResponseCheckTx {
	msg, err := app.decodeTx(req.Tx)
	if err == nil {
		err = msg.ValidateBasic()
	}
	if err != nil {
		return abci.ResponseCheckTx{
			Code:      uint32(err.Code()),
			Codespace: string(err.Codespace()),
			Log:       err.ABCILog(),
		}
	}
	return abci.ResponseCheckTx{}
}

// DeliverTx implements the ABCI interface. A transaction carries a single
// amino encoded message.
func (app *FundApp) DeliverTx(req abci.RequestDeliverTx) abci.ResponseDeliverTx {
	msg, err := app.decodeTx(req.Tx)
	if err != nil {
		return abci.ResponseDeliverTx{
			Code:      uint32(err.Code()),
			Codespace: string(err.Codespace()),
			Log:       err.ABCILog(),
		}
	}

	res := app.deliverMsg(msg)
	return abci.ResponseDeliverTx{
		Code:      uint32(res.Code),
		Codespace: string(res.Codespace),
		Data:      res.Data,
		Log:       res.Log,
		Events:    res.Events.ToABCIEvents(),
	}
}

// EncodeTx encodes msg into the transaction format accepted by DeliverTx.
func (app *FundApp) EncodeTx(msg sdk.Msg) ([]byte, error) {
	return app.cdc.MarshalBinaryLengthPrefixed(msg)
}

func (app *FundApp) decodeTx(tx []byte) (sdk.Msg, sdk.Error) {
	if len(tx) == 0 {
		return nil, sdk.ErrTxDecode("tx bytes are empty")
	}
	var msg sdk.Msg
	if err := app.cdc.UnmarshalBinaryLengthPrefixed(tx, &msg); err != nil {
		return nil, sdk.ErrTxDecode(err.Error())
	}
	return msg, nil
}

// deliverMsg runs msg against the block state. A failed message leaves no
// trace in the state.
func (app *FundApp) deliverMsg(msg sdk.Msg) (result sdk.Result) {
	if app.deliverState == nil {
		return sdk.ErrInternal("no block in progress").Result()
	}
	if err := msg.ValidateBasic(); err != nil {
		return err.Result()
	}

	handler, ok := app.router[msg.Route()]
	if !ok {
		return sdk.ErrUnknownRequest("unrecognized message route: " + msg.Route()).Result()
	}

	ctx := app.deliverState.ctx
	cacheCtx, writeCache := ctx.CacheContext()

	defer func() {
		if r := recover(); r != nil {
			app.logger.Error("panic while handling message", "route", msg.Route(), "type", msg.Type(), "err", r)
			result = sdk.ErrInternal(fmt.Sprintf("recovered: %v", r)).Result()
		}
	}()

	result = handler(cacheCtx, msg)
	if result.IsOK() {
		writeCache()
	}
	return result
}

// EndBlock implements the ABCI interface.
func (app *FundApp) EndBlock(req abci.RequestEndBlock) abci.ResponseEndBlock {
	if app.deliverState == nil {
		return abci.ResponseEndBlock{}
	}
	ctx := app.deliverState.ctx
	ctx = ctx.WithEventManager(sdk.NewEventManager())

	if app.autoExecute {
		milestone.EndBlocker(ctx, app.milestoneKeeper)
	}
	if app.crisisKeeper.ShouldAssert(ctx.BlockHeight()) {
		app.crisisKeeper.AssertInvariants(ctx)
	}

	return abci.ResponseEndBlock{Events: ctx.EventManager().ABCIEvents()}
}

// Commit implements the ABCI interface. It writes the block state to the
// database and makes it visible to queries.
func (app *FundApp) Commit() abci.ResponseCommit {
	if app.deliverState == nil {
		return abci.ResponseCommit{}
	}
	header := app.deliverState.ctx.BlockHeader()

	app.mtx.Lock()
	app.deliverState.ms.Write()
	app.setLastBlock(BlockInfo{ChainID: header.ChainID, Height: header.Height, Time: header.Time})
	app.mtx.Unlock()

	app.deliverState = nil
	return abci.ResponseCommit{}
}

// ExecuteBlock runs a whole block at blockTime containing msgs, one
// transaction per message, and commits it. Block times may not go backwards.
func (app *FundApp) ExecuteBlock(blockTime time.Time, msgs ...sdk.Msg) ([]sdk.Result, error) {
	app.blockMtx.Lock()
	defer app.blockMtx.Unlock()

	if !app.Initialized() {
		return nil, errors.New("chain is not initialized")
	}
	last := app.LastBlock()
	if blockTime.Before(last.Time) {
		return nil, fmt.Errorf("block time %s is before last block time %s",
			blockTime.UTC().Format(time.RFC3339), last.Time.Format(time.RFC3339))
	}

	header := abci.Header{ChainID: last.ChainID, Height: last.Height + 1, Time: blockTime}
	app.BeginBlock(abci.RequestBeginBlock{Header: header})

	results := make([]sdk.Result, len(msgs))
	for i, msg := range msgs {
		results[i] = app.deliverMsg(msg)
	}

	app.EndBlock(abci.RequestEndBlock{Height: header.Height})
	app.Commit()
	return results, nil
}

// committedContext returns a throwaway context on top of the last committed
// block. Callers must hold mtx.
func (app *FundApp) committedContext() sdk.Context {
	header := abci.Header{
		ChainID: app.lastBlock.ChainID,
		Height:  app.lastBlock.Height,
		Time:    app.lastBlock.Time,
	}
	return sdk.NewContext(app.cms.CacheMultiStore(), header, app.logger)
}

// Query implements the ABCI interface. Supported paths are
// "custom/<module>/<query>" and "app/<query>".
func (app *FundApp) Query(req abci.RequestQuery) (res abci.ResponseQuery) {
	app.mtx.RLock()
	defer app.mtx.RUnlock()

	path := splitPath(req.Path)
	if len(path) == 0 {
		return sdk.ErrUnknownRequest("no query path provided").QueryResult()
	}

	switch path[0] {
	case "custom":
		res = app.handleQueryCustom(path, req)
	case "app":
		res = app.handleQueryApp(path)
	default:
		res = sdk.ErrUnknownRequest(fmt.Sprintf("unknown query path %s", req.Path)).QueryResult()
	}
	res.Height = app.lastBlock.Height
	return res
}

func (app *FundApp) handleQueryCustom(path []string, req abci.RequestQuery) abci.ResponseQuery {
	if len(path) < 3 {
		return sdk.ErrUnknownRequest("no route for custom query specified").QueryResult()
	}
	querier, ok := app.queryRouter[path[1]]
	if !ok {
		return sdk.ErrUnknownRequest(fmt.Sprintf("no custom querier found for route %s", path[1])).QueryResult()
	}

	resBytes, err := querier(app.committedContext(), path[2:], req)
	if err != nil {
		return abci.ResponseQuery{
			Code:      uint32(err.Code()),
			Codespace: string(err.Codespace()),
			Log:       err.ABCILog(),
		}
	}
	return abci.ResponseQuery{Value: resBytes}
}

// InvariantsResult is returned by the app/invariants query.
type InvariantsResult struct {
	Broken  bool   `json:"broken"`
	Message string `json:"message,omitempty"`
}

// NodeInfo is returned by the app/info query.
type NodeInfo struct {
	AppName     string `json:"app_name"`
	ChainID     string `json:"chain_id"`
	AutoExecute bool   `json:"auto_execute"`
}

func (app *FundApp) handleQueryApp(path []string) abci.ResponseQuery {
	if len(path) < 2 {
		return sdk.ErrUnknownRequest("expected app query path").QueryResult()
	}

	var v interface{}
	switch path[1] {
	case "block":
		v = app.lastBlock
	case "info":
		v = NodeInfo{AppName: appName, ChainID: app.lastBlock.ChainID, AutoExecute: app.autoExecute}
	case "invariants":
		msg, broken := app.crisisKeeper.CheckInvariants(app.committedContext())
		v = InvariantsResult{Broken: broken, Message: msg}
	default:
		return sdk.ErrUnknownRequest(fmt.Sprintf("unknown app query %s", path[1])).QueryResult()
	}

	bz, err := codec.MarshalJSONIndent(app.cdc, v)
	if err != nil {
		return sdk.ErrInternal(err.Error()).QueryResult()
	}
	return abci.ResponseQuery{Value: bz}
}

// CheckInvariants runs every registered invariant on the committed state.
func (app *FundApp) CheckInvariants() (string, bool) {
	app.mtx.RLock()
	defer app.mtx.RUnlock()
	return app.crisisKeeper.CheckInvariants(app.committedContext())
}

// splitPath splits a string path using the delimiter '/'.
//
// e.g. "this/is/funny" becomes []string{"this", "is", "funny"}
func splitPath(requestPath string) (path []string) {
	path = strings.Split(requestPath, "/")

	// first element is empty string
	if len(path) > 0 && path[0] == "" {
		path = path[1:]
	}

	return path
}
