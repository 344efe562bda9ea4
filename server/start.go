package server

// DONTCOVER

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/abci/server"
	"github.com/tendermint/tendermint/libs/cli"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
	tmtypes "github.com/tendermint/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/hbtc-chain/daofund/app"
	"github.com/hbtc-chain/daofund/client"
	clientcontext "github.com/hbtc-chain/daofund/client/context"
)

// start flags
const (
	flagABCI    = "abci"
	flagAddress = "address"
)

// AppCreator builds the application on db.
type AppCreator func(logger log.Logger, db dbm.DB, cfg *Config) *app.FundApp

// NewApp is the default AppCreator.
func NewApp(logger log.Logger, db dbm.DB, cfg *Config) *app.FundApp {
	return app.NewFundApp(logger, db,
		app.SetAutoExecute(cfg.AutoExecute),
		app.SetInvCheckPeriod(cfg.InvCheckPeriod),
	)
}

// StartCmd runs the fund node. By default the node produces its own blocks
// from the wall clock and serves REST. With --abci it serves the ABCI socket
// protocol for an external Tendermint node instead.
func StartCmd(ctx *Context, appCreator AppCreator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the fund node",
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool(flagABCI) {
				ctx.Logger.Info("starting ABCI server")
				return startABCI(ctx, appCreator)
			}

			ctx.Logger.Info("starting standalone node")
			return startStandAlone(ctx, appCreator)
		},
	}

	cmd.Flags().Bool(flagABCI, false, "Serve the ABCI socket protocol instead of producing blocks")
	cmd.Flags().String(flagAddress, "tcp://0.0.0.0:26658", "ABCI listen address")
	_ = viper.BindPFlag(flagABCI, cmd.Flags().Lookup(flagABCI))
	_ = viper.BindPFlag(flagAddress, cmd.Flags().Lookup(flagAddress))
	return cmd
}

func dataDirPath(home string) string {
	return filepath.Join(home, dataDir)
}

func openDB(home string) (dbm.DB, error) {
	db, err := dbm.NewGoLevelDB("application", dataDirPath(home))
	if err != nil {
		return nil, err
	}
	return db, nil
}

func startABCI(ctx *Context, appCreator AppCreator) error {
	home := viper.GetString(cli.HomeFlag)
	db, err := openDB(home)
	if err != nil {
		return err
	}
	fundApp := appCreator(ctx.Logger, db, ctx.Config)

	svr, err := server.NewServer(viper.GetString(flagAddress), "socket", fundApp)
	if err != nil {
		return fmt.Errorf("error creating listener: %v", err)
	}
	svr.SetLogger(ctx.Logger.With("module", "abci-server"))

	if err := svr.Start(); err != nil {
		cmn.Exit(err.Error())
	}

	cmn.TrapSignal(ctx.Logger, func() {
		// cleanup
		if err := svr.Stop(); err != nil {
			cmn.Exit(err.Error())
		}
		db.Close()
	})

	// run forever (the node will not be returned)
	select {}
}

func startStandAlone(ctx *Context, appCreator AppCreator) error {
	home := viper.GetString(cli.HomeFlag)
	db, err := openDB(home)
	if err != nil {
		return err
	}
	fundApp := appCreator(ctx.Logger, db, ctx.Config)

	if !fundApp.Initialized() {
		if err := initFromGenesisFile(fundApp, GenesisFilePath(home)); err != nil {
			return err
		}
	}

	node := NewClockNode(fundApp, time.Now)
	stopClock := node.Run(ctx.Config.BlockInterval)

	cliCtx := clientcontext.NewCLIContext().WithCodec(fundApp.Codec()).WithNode(node)
	r := mux.NewRouter()
	client.RegisterRoutes(cliCtx, r)

	listenAddr, err := listenAddress(ctx.Config.RESTAddress)
	if err != nil {
		return err
	}
	srv := &http.Server{Addr: listenAddr, Handler: r}
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	go func() {
		ctx.Logger.Info("starting REST server", "address", listenAddr)
		if err := srv.Serve(lis); err != nil && err != http.ErrServerClosed {
			ctx.Logger.Error("REST server stopped", "err", err.Error())
		}
	}()

	cmn.TrapSignal(ctx.Logger, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		stopClock()
		db.Close()
		ctx.Logger.Info("exited")
	})

	// run forever (the node will not be returned)
	select {}
}

func initFromGenesisFile(fundApp *app.FundApp, genFile string) error {
	genDoc, err := tmtypes.GenesisDocFromFile(genFile)
	if err != nil {
		return errors.Wrap(err, "failed to read genesis file")
	}

	var genesisState app.GenesisState
	if err := fundApp.Codec().UnmarshalJSON(genDoc.AppState, &genesisState); err != nil {
		return errors.Wrap(err, "failed to decode app state")
	}
	return fundApp.InitChainFromGenesis(genDoc.ChainID, genDoc.GenesisTime, genesisState)
}

// listenAddress turns tcp://host:port into host:port.
func listenAddress(addr string) (string, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return "", errors.Wrapf(err, "invalid listen address %q", addr)
	}
	if u.Host == "" {
		return addr, nil
	}
	return u.Host, nil
}
