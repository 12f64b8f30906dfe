package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dynlist/internal/arraylist"
	"github.com/san-kum/dynlist/internal/bench"
	"github.com/san-kum/dynlist/internal/config"
	"github.com/san-kum/dynlist/internal/console"
	"github.com/san-kum/dynlist/internal/log"
	"github.com/san-kum/dynlist/internal/orders"
	"github.com/san-kum/dynlist/internal/sortutil"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	verbose    bool

	order       string
	capacity    int
	seed        uint64
	inputFile   string
	elements    int
	initialCaps []int
	plotHeight  int
)

// main registers the dynlist commands and exits with status 1 when one fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "dynlist",
		Short:         "growable array list and quicksort lab",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.EnableDebugLog = verbose
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	sortCmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "sort integers through an array list",
		RunE:  runSort,
	}
	sortCmd.Flags().StringVar(&order, "order", config.DefaultOrder, "order name")
	sortCmd.Flags().IntVar(&capacity, "capacity", config.DefaultInitialCapacity, "initial list capacity")
	sortCmd.Flags().Uint64Var(&seed, "seed", 0, "pivot seed (0 = random)")
	sortCmd.Flags().StringVar(&inputFile, "file", "", "read whitespace separated integers from file (- for stdin)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark list growth",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&elements, "elements", config.DefaultBenchElements, "elements to append")
	benchCmd.Flags().IntSliceVar(&initialCaps, "caps", []int{0, 5}, "initial capacities")
	benchCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "interactive list console",
		Args:  cobra.NoArgs,
		RunE:  runConsole,
	}
	consoleCmd.Flags().IntVar(&capacity, "capacity", config.DefaultInitialCapacity, "initial list capacity")
	consoleCmd.Flags().Uint64Var(&seed, "seed", 0, "pivot seed (0 = random)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCAPACITY\tORDER\tELEMENTS\tCAPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%v\n", name, p.InitialCapacity, p.Order, p.Bench.Elements, p.Bench.InitialCapacities)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	})

	rootCmd.AddCommand(sortCmd, benchCmd, consoleCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig applies the preset, then the config file, then any flag the
// user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("order") {
		cfg.Order = order
	}
	if flags.Changed("capacity") {
		cfg.InitialCapacity = capacity
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("elements") {
		cfg.Bench.Elements = elements
	}
	if flags.Changed("caps") {
		cfg.Bench.InitialCapacities = initialCaps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		sortutil.DefaultSource = sortutil.NewSeededSource(cfg.Seed)
	}
	log.Debugf("config: capacity=%d order=%s seed=%d", cfg.InitialCapacity, cfg.Order, cfg.Seed)
	return cfg, nil
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	values, err := readValues(args)
	if err != nil {
		return err
	}

	compare, err := orders.NewIntRegistry().Get(cfg.Order)
	if err != nil {
		return err
	}

	list, err := arraylist.WithCapacity[int](cfg.InitialCapacity)
	if err != nil {
		return err
	}
	for _, v := range values {
		list.Add(v)
	}

	start := time.Now()
	if err := list.Sort(compare); err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}
	log.Debugf("sorted %d values in %v (capacity %d)", list.Size(), time.Since(start), list.Cap())

	fmt.Println(list)
	return nil
}

func readValues(args []string) ([]int, error) {
	fields := args
	if inputFile != "" {
		var r io.Reader = os.Stdin
		if inputFile != "-" {
			f, err := os.Open(inputFile)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f
		}
		scanner := bufio.NewScanner(r)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			fields = append(fields, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	values := make([]int, 0, len(fields))
	for _, f := range fields {
		for _, part := range strings.Split(f, ",") {
			if part == "" {
				continue
			}
			v, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", part, err)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("appending %d elements\n\n", cfg.Bench.Elements)

	results, err := bench.Run(context.Background(), cfg.Bench.Elements, cfg.Bench.InitialCapacities)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INITIAL\tFINAL\tGROWTHS\tSLACK\tTIME\tADDS/SEC")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.1f%%\t%v\t%.0f\n",
			r.InitialCapacity, r.FinalCapacity, r.Growths, r.Slack()*100, r.Elapsed, r.PerSecond())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	for _, r := range results {
		series := r.Trace.Series()
		if len(series) < 2 {
			continue
		}
		graph := asciigraph.Plot(series,
			asciigraph.Height(plotHeight),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("capacity per growth (initial %d)", r.InitialCapacity)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	list, err := arraylist.WithCapacity[int](cfg.InitialCapacity)
	if err != nil {
		return err
	}
	return console.Run(list, orders.NewIntRegistry())
}
