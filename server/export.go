package server

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/hbtc-chain/daofund/app"
)

const flagOutput = "output"

// ExportCmd dumps the last committed state as a genesis file.
func ExportCmd(ctx *Context, appCreator AppCreator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export state to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := viper.GetString(cli.HomeFlag)
			db, err := openDB(home)
			if err != nil {
				return err
			}
			defer db.Close()

			fundApp := appCreator(ctx.Logger, db, ctx.Config)
			if !fundApp.Initialized() {
				return fmt.Errorf("nothing to export: the chain in %s is not initialized", home)
			}

			bz, err := exportGenesis(fundApp)
			if err != nil {
				return err
			}

			if out := viper.GetString(flagOutput); out != "" {
				return ioutil.WriteFile(out, bz, 0644)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return nil
		},
	}
	cmd.Flags().String(flagOutput, "", "Write the genesis file to this path instead of stdout")
	_ = viper.BindPFlag(flagOutput, cmd.Flags().Lookup(flagOutput))
	return cmd
}

// exportGenesis renders the committed state as a genesis document starting
// at the last block time.
func exportGenesis(fundApp *app.FundApp) ([]byte, error) {
	appState, err := fundApp.ExportAppState()
	if err != nil {
		return nil, err
	}

	last := fundApp.LastBlock()
	genDoc := &tmtypes.GenesisDoc{
		GenesisTime: last.Time,
		ChainID:     last.ChainID,
		AppState:    appState,
	}
	if err := genDoc.ValidateAndComplete(); err != nil {
		return nil, err
	}
	return fundApp.Codec().MarshalJSONIndent(genDoc, "", "  ")
}
