package server

import (
	"sync"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/hbtc-chain/daofund/app"
	clientcontext "github.com/hbtc-chain/daofund/client/context"
	sdk "github.com/hbtc-chain/daofund/types"
)

// ClockNode produces blocks on the application from a clock. Every
// delivered message gets a block of its own, and Run adds empty blocks so
// that time driven transitions happen without traffic.
type ClockNode struct {
	app *app.FundApp
	now func() time.Time
}

var _ clientcontext.Node = ClockNode{}

// NewClockNode returns a node delivering to fundApp at the times given by now.
func NewClockNode(fundApp *app.FundApp, now func() time.Time) ClockNode {
	return ClockNode{app: fundApp, now: now}
}

// Query implements clientcontext.Node.
func (n ClockNode) Query(req abci.RequestQuery) abci.ResponseQuery {
	return n.app.Query(req)
}

// DeliverMsg implements clientcontext.Node.
func (n ClockNode) DeliverMsg(msg sdk.Msg) sdk.Result {
	results, err := n.app.ExecuteBlock(n.now(), msg)
	if err != nil {
		return sdk.ErrInternal(err.Error()).Result()
	}
	return results[0]
}

// Tick commits an empty block at the current time.
func (n ClockNode) Tick() error {
	_, err := n.app.ExecuteBlock(n.now())
	return err
}

// Run ticks every interval until the returned stop function is called.
func (n ClockNode) Run(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := n.Tick(); err != nil {
					n.app.Logger().Error("failed to produce block", "err", err.Error())
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
			wg.Wait()
		})
	}
}
