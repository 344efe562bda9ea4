package server

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"
)

// server context
type Context struct {
	Config *Config
	Logger log.Logger
}

func NewDefaultContext() *Context {
	return &Context{
		Config: DefaultConfig(),
		Logger: log.NewTMLogger(log.NewSyncWriter(os.Stdout)),
	}
}

// PersistentPreRunEFn returns a PersistentPreRunE function for cobra
// that loads the node config and sets up a filtered logger.
func PersistentPreRunEFn(context *Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}
		config, err := LoadConfig(viper.New(), viper.GetString(cli.HomeFlag))
		if err != nil {
			return err
		}
		logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
		logger, err = tmflags.ParseLogLevel(config.LogLevel, logger, "info")
		if err != nil {
			return err
		}
		if viper.GetBool(cli.TraceFlag) {
			logger = log.NewTracingLogger(logger)
		}
		context.Config = config
		context.Logger = logger.With("module", "main")
		return nil
	}
}
