package server

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/hbtc-chain/daofund/app"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/milestone"
	"github.com/hbtc-chain/daofund/x/vault"
)

func fundState(t *testing.T, fundApp *app.FundApp) milestone.FundState {
	res := fundApp.Query(abciStatusQuery)
	require.True(t, res.IsOK(), res.Log)
	var state milestone.FundState
	require.NoError(t, milestone.ModuleCdc.UnmarshalJSON(res.Value, &state))
	return state
}

func payout(t *testing.T, fundApp *app.FundApp, name string) sdk.Int {
	bz := vault.ModuleCdc.MustMarshalJSON(vault.NewQueryPayoutParams(addressOf(name)))
	res := fundApp.Query(abci.RequestQuery{Path: "custom/vault/payout", Data: bz})
	require.True(t, res.IsOK(), res.Log)
	var amount sdk.Int
	require.NoError(t, vault.ModuleCdc.UnmarshalJSON(res.Value, &amount))
	return amount
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"0s", 0, false},
		{"2w", 14 * 24 * time.Hour, false},
		{"3d", 72 * time.Hour, false},
		{"90m", 90 * time.Minute, false},
		{"-1h", 0, true},
		{"xw", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := parseOffset(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestReplaySuccess(t *testing.T) {
	scenario, err := LoadScenario("testdata/success.yaml")
	require.NoError(t, err)
	require.Len(t, scenario.Milestones, 3)

	var out bytes.Buffer
	fundApp, results, err := scenario.Replay(log.NewNopLogger(), &out, app.SetInvCheckPeriod(1))
	require.NoError(t, err, out.String())
	require.Len(t, results, len(scenario.Steps))
	require.Equal(t, milestone.CodeNotVotingPeriod, results[1].Result.Code)

	state := fundState(t, fundApp)
	require.Equal(t, milestone.StatusFinished, state.Fund.Status)
	require.True(t, state.VaultAmount.IsZero())
	require.True(t, sdk.NewIntWithDecimal(100, 15).Equal(payout(t, fundApp, "team")))
}

func TestReplayFailure(t *testing.T) {
	scenario, err := LoadScenario("testdata/failure.yaml")
	require.NoError(t, err)

	var out bytes.Buffer
	fundApp, _, err := scenario.Replay(log.NewNopLogger(), &out)
	require.NoError(t, err, out.String())

	state := fundState(t, fundApp)
	require.Equal(t, milestone.StatusRefunding, state.Fund.Status)
	require.True(t, state.VaultAmount.IsZero())

	pool := sdk.NewIntWithDecimal(75, 15)
	supply := sdk.NewIntWithDecimal(1000, 18)
	require.True(t, pool.MulDiv(sdk.NewIntWithDecimal(450, 18), supply).Equal(payout(t, fundApp, "alice")))
	require.True(t, pool.MulDiv(sdk.NewIntWithDecimal(300, 18), supply).Equal(payout(t, fundApp, "bob")))
}

func TestReplayStopsOnUnexpectedOutcome(t *testing.T) {
	scenario, err := LoadScenario("testdata/failure.yaml")
	require.NoError(t, err)

	// the early execute is now expected to succeed
	scenario.Steps[4].Expect = "ok"

	var out bytes.Buffer
	_, results, err := scenario.Replay(log.NewNopLogger(), &out)
	require.Error(t, err)
	require.Len(t, results, 5)
}

func TestReplayRejectsUnknownStep(t *testing.T) {
	scenario, err := LoadScenario("testdata/failure.yaml")
	require.NoError(t, err)
	scenario.Steps = append(scenario.Steps, Step{Type: "withdraw", From: "alice"})

	var out bytes.Buffer
	_, _, err = scenario.Replay(log.NewNopLogger(), &out)
	require.Error(t, err)
}
