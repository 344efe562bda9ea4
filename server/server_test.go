package server

import (
	"io/ioutil"
	"net"
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/daofund/app"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/ledger"
	"github.com/hbtc-chain/daofund/x/milestone"
)

func TestConfigRoundTrip(t *testing.T) {
	home, err := ioutil.TempDir("", "fundd")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	cfg, err := LoadConfig(viper.New(), home)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	cfg.ChainID = "other-chain"
	cfg.AutoExecute = false
	cfg.InvCheckPeriod = 10
	cfg.BlockInterval = 5 * time.Second
	require.NoError(t, WriteConfigFile(home, cfg))

	loaded, err := LoadConfig(viper.New(), home)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestDefaultRESTAddressIsLoopback(t *testing.T) {
	addr, err := listenAddress(DefaultConfig().RESTAddress)
	require.NoError(t, err)
	host, _, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	require.True(t, net.ParseIP(host).IsLoopback(), host)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.BlockInterval = 0
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ChainID = ""
	require.Error(t, cfg.Validate())
}

func TestParseBalances(t *testing.T) {
	alice := sdk.CUAddressFromName("alice")
	balances, err := parseBalances([]string{alice.String() + "=450"})
	require.NoError(t, err)
	require.Equal(t, []ledger.Balance{ledger.NewBalance(alice, sdk.NewInt(450))}, balances)

	_, err = parseBalances([]string{"450"})
	require.Error(t, err)
	_, err = parseBalances([]string{alice.String() + "=lots"})
	require.Error(t, err)
}

func TestListenAddress(t *testing.T) {
	addr, err := listenAddress("tcp://127.0.0.1:1317")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:1317", addr)
}

func TestClockNode(t *testing.T) {
	scenario, err := LoadScenario("testdata/success.yaml")
	require.NoError(t, err)

	fundApp := app.NewFundApp(log.NewNopLogger(), dbm.NewMemDB(), app.SetAutoExecute(true))
	require.NoError(t, fundApp.InitChainFromGenesis(scenario.ChainID, scenario.GenesisTime, scenario.genesis()))

	now := scenario.GenesisTime
	node := NewClockNode(fundApp, func() time.Time { return now })

	initMsg, err := scenario.msg(scenario.Steps[0])
	require.NoError(t, err)
	res := node.DeliverMsg(initMsg)
	require.True(t, res.IsOK(), res.Log)

	now = now.Add(2 * 7 * 24 * time.Hour)
	for _, voter := range []string{"alice", "bob"} {
		res = node.DeliverMsg(milestone.NewMsgCastVote(addressOf(voter), true))
		require.True(t, res.IsOK(), res.Log)
	}

	// an empty block after the window closes executes the milestone
	now = now.Add(40 * 7 * 24 * time.Hour)
	require.NoError(t, node.Tick())

	state := fundState(t, fundApp)
	require.Equal(t, uint64(2), state.Fund.Current)
	require.Equal(t, int64(4), fundApp.LastBlock().Height)

	// a clock going backwards is refused
	now = scenario.GenesisTime
	require.Error(t, node.Tick())
	require.False(t, node.DeliverMsg(milestone.NewMsgExecute(addressOf("bob"))).IsOK())
}
