package main

import (
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/cli"

	"github.com/hbtc-chain/daofund/app"
	"github.com/hbtc-chain/daofund/server"
)

func main() {
	cdc := app.MakeCodec()

	ctx := server.NewDefaultContext()
	cobra.EnableCommandSorting = false
	rootCmd := &cobra.Command{
		Use:               "fundd",
		Short:             "Milestone fund daemon",
		PersistentPreRunE: server.PersistentPreRunEFn(ctx),
	}

	rootCmd.AddCommand(server.InitCmd(ctx, cdc))
	rootCmd.AddCommand(server.StartCmd(ctx, server.NewApp))
	rootCmd.AddCommand(server.ExportCmd(ctx, server.NewApp))
	rootCmd.AddCommand(server.ReplayCmd(ctx))

	// prepare and add flags
	executor := cli.PrepareBaseCmd(rootCmd, "FUND", app.DefaultNodeHome)
	err := executor.Execute()
	if err != nil {
		panic(err)
	}
}
