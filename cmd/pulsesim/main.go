// Command pulsesim runs pulse networks.
//
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/internal/config"
	"github.com/db47h/pulsesim/internal/logging"
	"github.com/db47h/pulsesim/internal/stopwatch"
	"github.com/db47h/pulsesim/netlib"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var version = "0.1.0-dev"

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands.
//
type app struct {
	out    io.Writer
	errOut io.Writer
	cfg    *config.Config
	log    *slog.Logger
	human  bool
}

func run(out, errOut io.Writer, args []string) error {
	a := &app{out: out, errOut: errOut}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.Execute()
}

func (a *app) rootCmd() *cobra.Command {
	var cfgPath, level, format, entry string
	root := &cobra.Command{
		Use:   "pulsesim",
		Short: "Pulse network simulator",
		Long: `pulsesim simulates networks of relays, toggles and gates exchanging
low and high pulses, one module declaration per line:

	broadcaster -> a, b
	%a -> con
	&con -> output`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.Logging.Level = level
			}
			if flags.Changed("log-format") {
				cfg.Logging.Format = format
			}
			if flags.Changed("entry") {
				cfg.Entry = entry
			}
			a.cfg = cfg
			a.log = logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format, a.errOut)
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "YAML configuration file")
	pf.StringVar(&level, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVar(&format, "log-format", "text", "log format: text or json")
	pf.StringVar(&entry, "entry", pulsesim.DefaultEntry, "name of the entry module")
	pf.BoolVar(&a.human, "human", false, "print numbers with digit grouping")

	root.AddCommand(
		a.countCmd(),
		a.firstCmd(),
		a.traceCmd(),
		a.genCmd(),
		a.versionCmd(),
	)
	return root
}

func (a *app) load(name string) (*pulsesim.Network, error) {
	sw := stopwatch.Start(a.log)
	nw, err := pulsesim.ParseFile(name, pulsesim.WithEntry(a.cfg.Entry))
	if err != nil {
		return nil, err
	}
	sw.Stop("network loaded", "file", name, "modules", nw.Len())
	return nw, nil
}

func (a *app) printNum(v int64) {
	if a.human {
		message.NewPrinter(language.English).Fprintf(a.out, "%d\n", v)
		return
	}
	fmt.Fprintln(a.out, v)
}

func (a *app) countCmd() *cobra.Command {
	var presses int
	cmd := &cobra.Command{
		Use:   "count FILE",
		Short: "Print the product of low and high pulse counts after a number of presses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("presses") {
				a.cfg.Presses = presses
			}
			nw, err := a.load(args[0])
			if err != nil {
				return err
			}
			sw := stopwatch.Start(a.log)
			p, err := pulsesim.CountPulses(nw, a.cfg.Presses)
			if err != nil {
				return err
			}
			sw.Stop("pulses counted", "presses", a.cfg.Presses)
			a.printNum(p)
			return nil
		},
	}
	cmd.Flags().IntVarP(&presses, "presses", "n", 1000, "number of button presses")
	return cmd
}

func (a *app) firstCmd() *cobra.Command {
	var target, value string
	var budget int
	cmd := &cobra.Command{
		Use:   "first FILE",
		Short: "Print the number of presses needed for a module to receive a pulse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("target") {
				a.cfg.Target = target
			}
			if flags.Changed("value") {
				a.cfg.Value = value
			}
			if flags.Changed("budget") {
				a.cfg.Budget = budget
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			nw, err := a.load(args[0])
			if err != nil {
				return err
			}
			c := pulsesim.NewCircuit(nw)
			c.SetLogger(a.log)
			n, err := c.FirstActivation(a.cfg.Target, a.cfg.Pulse(), a.cfg.Budget)
			if err != nil {
				return err
			}
			a.printNum(n)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&target, "target", "t", "rx", "target module")
	f.StringVar(&value, "value", "low", "pulse value to wait for: low or high")
	f.IntVar(&budget, "budget", pulsesim.DefaultBudget, "maximum number of presses to simulate")
	return cmd
}

func (a *app) traceCmd() *cobra.Command {
	var presses int
	cmd := &cobra.Command{
		Use:   "trace FILE",
		Short: "Print every signal sent during the first presses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nw, err := a.load(args[0])
			if err != nil {
				return err
			}
			c := pulsesim.NewCircuit(nw)
			c.Probe(func(s pulsesim.Signal) { fmt.Fprintln(a.out, s) })
			for i := 1; i <= presses; i++ {
				if presses > 1 {
					fmt.Fprintln(a.out, "# press", i)
				}
				if _, err := c.Press(); err != nil {
					return err
				}
			}
			t := c.Total()
			fmt.Fprintf(a.out, "# low %d, high %d\n", t.Low, t.High)
			return nil
		},
	}
	cmd.Flags().IntVarP(&presses, "presses", "n", 1, "number of button presses")
	return cmd
}

func (a *app) genCmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "gen PERIOD...",
		Short: "Print a network whose target first receives low after lcm(PERIOD...) presses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps := make([]int64, len(args))
			for i, s := range args {
				p, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return errors.Errorf("invalid period %q", s)
				}
				ps[i] = p
			}
			b, err := netlib.Machine(bits, ps...)
			if err != nil {
				return err
			}
			for _, l := range b.Lines() {
				fmt.Fprintln(a.out, l)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 12, "counter width in bits")
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "pulsesim version %s\n", version)
		},
	}
}
