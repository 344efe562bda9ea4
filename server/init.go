package server

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	cmn "github.com/tendermint/tendermint/libs/common"
	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/hbtc-chain/daofund/app"
	"github.com/hbtc-chain/daofund/codec"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/ledger"
	"github.com/hbtc-chain/daofund/x/milestone"
	"github.com/hbtc-chain/daofund/x/vault"
)

const (
	flagChainID     = "chain-id"
	flagAuthority   = "authority"
	flagPool        = "pool"
	flagBalances    = "balances"
	flagGenesisTime = "genesis-time"
	flagOverwrite   = "overwrite"
)

// InitCmd writes the node configuration and a genesis file holding the
// ownership unit balances, the vault pool and the fund authority.
func InitCmd(ctx *Context, cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the node configuration and genesis file",
		Long: `Initialize the node configuration and genesis file.

Balances are given as comma separated address=amount pairs:

  fundd init --authority <addr> --pool 100000000000000000 --balances <addr1>=450,<addr2>=550
`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			home := viper.GetString(cli.HomeFlag)
			genFile := GenesisFilePath(home)
			if !viper.GetBool(flagOverwrite) && cmn.FileExists(genFile) {
				return fmt.Errorf("genesis.json file already exists: %v", genFile)
			}

			genesisState, err := genesisFromFlags()
			if err != nil {
				return err
			}
			if err := app.ValidateGenesis(genesisState); err != nil {
				return errors.Wrap(err, "invalid genesis state")
			}

			genesisTime := time.Now().UTC()
			if s := viper.GetString(flagGenesisTime); s != "" {
				if genesisTime, err = time.Parse(time.RFC3339, s); err != nil {
					return errors.Wrap(err, "invalid genesis time")
				}
			}

			cfg := DefaultConfig()
			cfg.ChainID = viper.GetString(flagChainID)
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := WriteConfigFile(home, cfg); err != nil {
				return err
			}
			if err := os.MkdirAll(dataDirPath(home), 0700); err != nil {
				return err
			}

			appState, err := codec.MarshalJSONIndent(cdc, genesisState)
			if err != nil {
				return err
			}
			genDoc := &tmtypes.GenesisDoc{
				GenesisTime: genesisTime,
				ChainID:     cfg.ChainID,
				AppState:    appState,
			}
			if err := genDoc.ValidateAndComplete(); err != nil {
				return err
			}
			if err := genDoc.SaveAs(genFile); err != nil {
				return err
			}

			ctx.Logger.Info("initialized node", "home", home, "chain_id", cfg.ChainID, "genesis", genFile)
			return nil
		},
	}

	addInitFlags(cmd.Flags())
	return cmd
}

func addInitFlags(fs *pflag.FlagSet) {
	fs.String(flagChainID, DefaultConfig().ChainID, "Chain id of the fund")
	fs.String(flagAuthority, "", "Address allowed to initialize the fund")
	fs.String(flagPool, "0", "Amount deposited in the vault at genesis")
	fs.StringSlice(flagBalances, nil, "Initial ownership units as address=amount pairs")
	fs.String(flagGenesisTime, "", "Genesis time in RFC3339, defaults to now")
	fs.BoolP(flagOverwrite, "o", false, "Overwrite an existing genesis file")
	_ = viper.BindPFlags(fs)
}

func genesisFromFlags() (app.GenesisState, error) {
	authority, err := sdk.CUAddressFromBech32(viper.GetString(flagAuthority))
	if err != nil {
		return nil, errors.Wrap(err, "invalid authority")
	}
	if authority.Empty() {
		return nil, errors.New("authority must be set")
	}

	pool, ok := sdk.NewIntFromString(viper.GetString(flagPool))
	if !ok {
		return nil, fmt.Errorf("invalid pool amount %q", viper.GetString(flagPool))
	}

	balances, err := parseBalances(viper.GetStringSlice(flagBalances))
	if err != nil {
		return nil, err
	}

	genesisState := app.NewDefaultGenesisState()
	genesisState.SetModuleGenesis(ledger.ModuleName, ledger.ModuleCdc, ledger.NewGenesisState(balances))
	genesisState.SetModuleGenesis(vault.ModuleName, vault.ModuleCdc, vault.NewGenesisState(pool, nil))
	genesisState.SetModuleGenesis(milestone.ModuleName, milestone.ModuleCdc,
		milestone.NewGenesisState(milestone.NewFund(authority), milestone.Milestones{}, nil))
	return genesisState, nil
}

func parseBalances(pairs []string) ([]ledger.Balance, error) {
	balances := make([]ledger.Balance, 0, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid balance %q, expected address=amount", pair)
		}
		addr, err := sdk.CUAddressFromBech32(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid balance address %q", parts[0])
		}
		amount, ok := sdk.NewIntFromString(strings.TrimSpace(parts[1]))
		if !ok {
			return nil, fmt.Errorf("invalid balance amount %q", parts[1])
		}
		balances = append(balances, ledger.NewBalance(addr, amount))
	}
	return balances, nil
}
