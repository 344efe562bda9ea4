package crisis

import (
	"fmt"
	"time"

	"github.com/tendermint/tendermint/libs/log"

	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/crisis/internal/types"
)

// Keeper - crisis keeper
type Keeper struct {
	routes         []types.InvarRoute
	invCheckPeriod uint
}

// NewKeeper creates a new Keeper object
func NewKeeper(invCheckPeriod uint) Keeper {
	return Keeper{
		routes:         []types.InvarRoute{},
		invCheckPeriod: invCheckPeriod,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// register routes for the
func (k *Keeper) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	invarRoute := types.NewInvarRoute(moduleName, route, invar)
	k.routes = append(k.routes, invarRoute)
}

// Routes - return the keeper's invariant routes
func (k Keeper) Routes() []types.InvarRoute {
	return k.routes
}

// Invariants returns all the registered Crisis keeper invariants.
func (k Keeper) Invariants() []sdk.Invariant {
	var invars []sdk.Invariant
	for _, route := range k.routes {
		invars = append(invars, route.Invar)
	}
	return invars
}

// InvCheckPeriod returns the invariant checks period.
func (k Keeper) InvCheckPeriod() uint { return k.invCheckPeriod }

// ShouldAssert reports whether invariants are due at height.
func (k Keeper) ShouldAssert(height int64) bool {
	return k.invCheckPeriod != 0 && height%int64(k.invCheckPeriod) == 0
}

// CheckInvariants runs every registered invariant and returns the message of
// the first broken one.
func (k Keeper) CheckInvariants(ctx sdk.Context) (string, bool) {
	for _, ir := range k.routes {
		if res, stop := ir.Invar(ctx); stop {
			return res, true
		}
	}
	return "", false
}

// AssertInvariants asserts all registered invariants. If any invariant fails,
// the method panics.
func (k Keeper) AssertInvariants(ctx sdk.Context) {
	logger := k.Logger(ctx)

	start := time.Now()
	invarRoutes := k.Routes()

	for _, ir := range invarRoutes {
		if res, stop := ir.Invar(ctx); stop {
			panic(fmt.Errorf("invariant broken: %s\n"+
				"\tCRITICAL the %s/%s invariant no longer holds, halting", res, ir.ModuleName, ir.Route))
		}
	}

	end := time.Now()
	diff := end.Sub(start)

	logger.Info("asserted all invariants", "duration", diff, "height", ctx.BlockHeight())
}
