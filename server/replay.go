package server

import (
	"fmt"
	"io"
	"io/ioutil"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"
	yaml "gopkg.in/yaml.v2"

	"github.com/hbtc-chain/daofund/app"
	sdk "github.com/hbtc-chain/daofund/types"
	"github.com/hbtc-chain/daofund/x/crisis"
	"github.com/hbtc-chain/daofund/x/ledger"
	"github.com/hbtc-chain/daofund/x/milestone"
	"github.com/hbtc-chain/daofund/x/refund"
	"github.com/hbtc-chain/daofund/x/vault"
)

const (
	flagExport         = "export"
	flagAutoExecute    = "auto-execute"
	flagInvCheckPeriod = "inv-check-period"
)

// Step types of a scenario.
const (
	StepInitialize = "initialize"
	StepDelegate   = "delegate"
	StepVote       = "vote"
	StepExecute    = "execute"
	StepClaim      = "claim"
	StepTransfer   = "transfer"
	StepVerify     = "verify"
	StepTick       = "tick"
)

var abciStatusQuery = abci.RequestQuery{Path: "custom/" + milestone.QuerierRoute + "/" + milestone.QueryStatus}

// Offset is a duration from genesis. Besides the units of time.ParseDuration
// it accepts whole days ("3d") and weeks ("2w").
type Offset time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Offset) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	d, err := parseOffset(s)
	if err != nil {
		return err
	}
	*o = Offset(d)
	return nil
}

func parseOffset(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	for suffix, unit := range map[string]time.Duration{"w": 7 * 24 * time.Hour, "d": 24 * time.Hour} {
		if strings.HasSuffix(s, suffix) {
			n, err := strconv.ParseUint(strings.TrimSuffix(s, suffix), 10, 32)
			if err != nil {
				return 0, fmt.Errorf("invalid offset %q", s)
			}
			return time.Duration(n) * unit, nil
		}
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative offset %q", s)
	}
	return d, nil
}

// ScenarioMilestone is a milestone with its voting window given as offsets.
// Milestone 0 has no window.
type ScenarioMilestone struct {
	Tranche   sdk.Int `yaml:"tranche"`
	VoteStart Offset  `yaml:"vote_start"`
	VoteEnd   Offset  `yaml:"vote_end"`
}

// Step is a single message delivered in a block of its own.
type Step struct {
	At      Offset  `yaml:"at"`
	Type    string  `yaml:"type"`
	From    string  `yaml:"from"`
	To      string  `yaml:"to"`
	Approve bool    `yaml:"approve"`
	Amount  sdk.Int `yaml:"amount"`
	Route   string  `yaml:"route"`

	// Expect is "ok" (the default) or "fail". Code optionally pins the
	// error code of a failure.
	Expect string `yaml:"expect"`
	Code   uint32 `yaml:"code"`
}

// Scenario is a replayable fund history. Participants are named and get
// deterministic addresses derived from their names.
type Scenario struct {
	ChainID     string              `yaml:"chain_id"`
	GenesisTime time.Time           `yaml:"genesis_time"`
	Authority   string              `yaml:"authority"`
	Beneficiary string              `yaml:"beneficiary"`
	Pool        sdk.Int             `yaml:"pool"`
	Balances    map[string]sdk.Int  `yaml:"balances"`
	Milestones  []ScenarioMilestone `yaml:"milestones"`
	Steps       []Step              `yaml:"steps"`
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	var s Scenario
	bz, err := ioutil.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.UnmarshalStrict(bz, &s); err != nil {
		return s, errors.Wrapf(err, "failed to decode scenario %s", path)
	}
	if s.ChainID == "" {
		s.ChainID = "fund-replay"
	}
	return s, nil
}

func addressOf(name string) sdk.CUAddress {
	if name == "" {
		return nil
	}
	return sdk.CUAddressFromName(name)
}

func (s Scenario) genesis() app.GenesisState {
	names := make([]string, 0, len(s.Balances))
	for name := range s.Balances {
		names = append(names, name)
	}
	sort.Strings(names)

	balances := make([]ledger.Balance, 0, len(names))
	for _, name := range names {
		balances = append(balances, ledger.NewBalance(addressOf(name), s.Balances[name]))
	}

	genesisState := app.NewDefaultGenesisState()
	genesisState.SetModuleGenesis(ledger.ModuleName, ledger.ModuleCdc, ledger.NewGenesisState(balances))
	genesisState.SetModuleGenesis(vault.ModuleName, vault.ModuleCdc, vault.NewGenesisState(s.Pool, nil))
	genesisState.SetModuleGenesis(milestone.ModuleName, milestone.ModuleCdc,
		milestone.NewGenesisState(milestone.NewFund(addressOf(s.Authority)), milestone.Milestones{}, nil))
	return genesisState
}

func (s Scenario) milestones() milestone.Milestones {
	milestones := make(milestone.Milestones, len(s.Milestones))
	for i, m := range s.Milestones {
		var start, end time.Time
		if i > 0 {
			start = s.GenesisTime.Add(time.Duration(m.VoteStart))
			end = s.GenesisTime.Add(time.Duration(m.VoteEnd))
		}
		milestones[i] = milestone.NewMilestone(uint64(i), m.Tranche, start, end)
	}
	return milestones
}

func (s Scenario) msg(step Step) (sdk.Msg, error) {
	from := addressOf(step.From)
	switch step.Type {
	case StepInitialize:
		return milestone.NewMsgInitialize(from, addressOf(s.Beneficiary), s.milestones()), nil
	case StepDelegate:
		return milestone.NewMsgDelegate(from, addressOf(step.To)), nil
	case StepVote:
		return milestone.NewMsgCastVote(from, step.Approve), nil
	case StepExecute:
		return milestone.NewMsgExecute(from), nil
	case StepClaim:
		return refund.NewMsgClaim(from), nil
	case StepTransfer:
		return ledger.NewMsgTransfer(from, addressOf(step.To), step.Amount), nil
	case StepVerify:
		parts := strings.SplitN(step.Route, "/", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid invariant route %q", step.Route)
		}
		return crisis.NewMsgVerifyInvariant(from, parts[0], parts[1]), nil
	case StepTick:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown step type %q", step.Type)
	}
}

// StepResult is the outcome of a replayed step.
type StepResult struct {
	Step   Step
	Time   time.Time
	Result sdk.Result
}

func (r StepResult) check() error {
	switch r.Step.Expect {
	case "", "ok":
		if !r.Result.IsOK() {
			return fmt.Errorf("expected success, got code %d: %s", r.Result.Code, r.Result.Log)
		}
	case "fail":
		if r.Result.IsOK() {
			return errors.New("expected failure, got success")
		}
		if r.Step.Code != 0 && uint32(r.Result.Code) != r.Step.Code {
			return fmt.Errorf("expected code %d, got %d: %s", r.Step.Code, r.Result.Code, r.Result.Log)
		}
	default:
		return fmt.Errorf("unknown expectation %q", r.Step.Expect)
	}
	return nil
}

// Replay runs s on a fresh in-memory application. It stops at the first
// step whose outcome differs from its expectation.
func (s Scenario) Replay(logger log.Logger, w io.Writer, options ...func(*app.FundApp)) (*app.FundApp, []StepResult, error) {
	fundApp := app.NewFundApp(logger, dbm.NewMemDB(), options...)
	if err := fundApp.InitChainFromGenesis(s.ChainID, s.GenesisTime, s.genesis()); err != nil {
		return nil, nil, err
	}

	results := make([]StepResult, 0, len(s.Steps))
	for i, step := range s.Steps {
		msg, err := s.msg(step)
		if err != nil {
			return fundApp, results, errors.Wrapf(err, "step %d", i)
		}

		blockTime := s.GenesisTime.Add(time.Duration(step.At))
		var res sdk.Result
		if msg == nil {
			_, err = fundApp.ExecuteBlock(blockTime)
		} else {
			var blockResults []sdk.Result
			blockResults, err = fundApp.ExecuteBlock(blockTime, msg)
			if err == nil {
				res = blockResults[0]
			}
		}
		if err != nil {
			return fundApp, results, errors.Wrapf(err, "step %d", i)
		}

		sr := StepResult{Step: step, Time: blockTime, Result: res}
		results = append(results, sr)
		fmt.Fprintf(w, "%3d %s %-10s %-10s code=%d %s\n", i, blockTime.Format(time.RFC3339), step.Type, step.From,
			res.Code, strings.TrimSpace(res.Log))
		if err := sr.check(); err != nil {
			return fundApp, results, errors.Wrapf(err, "step %d (%s)", i, step.Type)
		}
	}

	if msg, broken := fundApp.CheckInvariants(); broken {
		return fundApp, results, fmt.Errorf("invariant broken after replay: %s", msg)
	}
	return fundApp, results, nil
}

// ReplayCmd replays a scenario file and prints every step and the final
// fund state.
func ReplayCmd(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [scenario.yaml]",
		Short: "Replay a fund scenario on an in-memory chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := LoadScenario(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fundApp, _, err := scenario.Replay(ctx.Logger, out,
				app.SetAutoExecute(viper.GetBool(flagAutoExecute)),
				app.SetInvCheckPeriod(uint(viper.GetInt(flagInvCheckPeriod))),
			)
			if fundApp != nil {
				res := fundApp.Query(abciStatusQuery)
				if res.IsOK() {
					fmt.Fprintln(out, string(res.Value))
				}
			}
			if err != nil {
				return err
			}

			if path := viper.GetString(flagExport); path != "" {
				bz, err := exportGenesis(fundApp)
				if err != nil {
					return err
				}
				return ioutil.WriteFile(path, bz, 0644)
			}
			return nil
		},
	}

	cmd.Flags().String(flagExport, "", "Write the final state as a genesis file")
	cmd.Flags().Bool(flagAutoExecute, false, "Execute milestones from the end blocker")
	cmd.Flags().Uint(flagInvCheckPeriod, 1, "Assert invariants every N blocks")
	_ = viper.BindPFlag(flagExport, cmd.Flags().Lookup(flagExport))
	_ = viper.BindPFlag(flagAutoExecute, cmd.Flags().Lookup(flagAutoExecute))
	_ = viper.BindPFlag(flagInvCheckPeriod, cmd.Flags().Lookup(flagInvCheckPeriod))
	return cmd
}
