package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/matrixrain/internal/capture"
	"github.com/san-kum/matrixrain/internal/config"
	"github.com/san-kum/matrixrain/internal/engine"
	"github.com/san-kum/matrixrain/internal/palette"
	"github.com/san-kum/matrixrain/internal/rain"
	"github.com/san-kum/matrixrain/internal/tui"
)

var (
	dataDir    string
	speed      int
	depth      int
	length     int
	air        int
	typing     bool
	theme      string
	charset    string
	seed       int64
	configFile string
	preset     string
	// Capture/show parameters
	numFrames  int
	capWidth   int
	capHeight  int
	frameIndex int
	// Stats parameters
	numDraws int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "matrixrain",
		Short: "depth-layered matrix rain for the terminal",
		RunE:  runRain,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".matrixrain", "data directory")
	rootCmd.PersistentFlags().IntVar(&speed, "speed", config.DefaultSpeed, "scroll speed (1-10)")
	rootCmd.PersistentFlags().IntVar(&depth, "depth", config.DefaultDepth, "depth of environment (1-10)")
	rootCmd.PersistentFlags().IntVar(&length, "length", config.DefaultLength, "string length ratio (1-10)")
	rootCmd.PersistentFlags().IntVar(&air, "air", config.DefaultAir, "string spacing ratio (1-10)")
	rootCmd.PersistentFlags().BoolVar(&typing, "typing", false, "don't exit on keypress (only 'q' quits)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().StringVar(&charset, "charset", config.DefaultCharset, "symbol set")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "plot the depth distribution and per-depth parameters",
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&numDraws, "draws", 10000, "number of depth draws to sample")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the update loop across screen sizes",
		RunE:  runBench,
	}

	captureCmd := &cobra.Command{
		Use:   "capture",
		Short: "run headless and save frames",
		RunE:  runCapture,
	}
	captureCmd.Flags().IntVar(&numFrames, "frames", 300, "number of frames to capture")
	captureCmd.Flags().IntVar(&capWidth, "width", 80, "screen width")
	captureCmd.Flags().IntVar(&capHeight, "height", 24, "screen height")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved captures",
		RunE:  listCaptures,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "render a captured frame to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  showCapture,
	}
	showCmd.Flags().IntVar(&frameIndex, "frame", -1, "frame index (-1 = last)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-10s speed=%d depth=%d length=%d air=%d theme=%s charset=%s\n",
					name, p.Speed, p.Depth, p.Length, p.Air, p.Theme, p.Charset)
			}
			return nil
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list available themes and charsets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("themes:")
			for _, name := range palette.Names() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("charsets:")
			for _, name := range rain.CharsetNames() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "matrixrain.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(statsCmd, benchCmd, captureCmd, runsCmd, showCmd, presetsCmd, themesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file, and flags (flags win) into a
// validated Config.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

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
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("depth") {
		cfg.Depth = depth
	}
	if flags.Changed("length") {
		cfg.Length = length
	}
	if flags.Changed("air") {
		cfg.Air = air
	}
	if flags.Changed("typing") {
		cfg.Typing = typing
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("charset") {
		cfg.Charset = charset
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRand(cfg *config.Config) *rand.Rand {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func newFactory(cfg *config.Config) (*rain.Factory, error) {
	set, err := rain.Charset(cfg.Charset)
	if err != nil {
		return nil, err
	}
	return rain.NewFactory(newRand(cfg), set, cfg.Depth, cfg.Length, cfg.Air)
}

func runRain(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	factory, err := newFactory(cfg)
	if err != nil {
		return err
	}

	// The real size arrives with the first WindowSizeMsg.
	runner, err := engine.New(factory, 80, 24, engine.Delay(cfg.Speed))
	if err != nil {
		return err
	}

	styles := palette.Styles(palette.Get(cfg.Theme), cfg.Depth+1)
	m := tui.New(runner, styles, cfg.Typing)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runner.Run(ctx)

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	runner.Stop()
	<-runner.Done()
	if err != nil {
		return err
	}

	if fm, ok := final.(tui.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	if rerr := runner.Err(); rerr != nil && rerr != context.Canceled {
		return rerr
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	factory, err := newFactory(cfg)
	if err != nil {
		return err
	}

	maxDepth := factory.MaxDepth()
	counts := make([]int, maxDepth+1)
	for i := 0; i < numDraws; i++ {
		counts[factory.PickDepth()]++
	}

	shares := make([]float64, len(counts))
	for d, n := range counts {
		shares[d] = 100 * float64(n) / float64(numDraws)
	}

	fmt.Printf("depth distribution over %d draws (depth 0..%d)\n\n", numDraws, maxDepth)
	graph := asciigraph.Plot(shares,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("share per depth (%)"),
	)
	fmt.Println(graph)
	fmt.Println()

	// Sampled mean strand length per depth.
	const lengthSamples = 2000
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEPTH\tDRAWS\tSHARE\tMEAN LENGTH")
	for d := 0; d <= maxDepth; d++ {
		sum := 0
		for i := 0; i < lengthSamples; i++ {
			sum += factory.LengthFor(d)
		}
		fmt.Fprintf(w, "%d\t%d\t%.1f%%\t%.1f\n",
			d, counts[d], shares[d], float64(sum)/lengthSamples)
	}
	return w.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sizes := []struct{ w, h int }{
		{80, 24},
		{120, 40},
		{200, 60},
	}
	const ticks = 2000

	fmt.Printf("benchmarking update loop (depth=%d)\n\n", cfg.Depth)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WIDTH\tHEIGHT\tTICKS\tTIME\tTICKS/SEC\tSTRANDS")

	for _, size := range sizes {
		factory, err := newFactory(cfg)
		if err != nil {
			return err
		}
		screen, err := rain.NewScreen(size.w, size.h, factory)
		if err != nil {
			return err
		}

		start := time.Now()
		for i := 0; i < ticks; i++ {
			if err := screen.Update(); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\t%d\n",
			size.w, size.h, ticks, elapsed,
			float64(ticks)/elapsed.Seconds(), screen.Count())
	}
	return w.Flush()
}

func runCapture(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	factory, err := newFactory(cfg)
	if err != nil {
		return err
	}
	screen, err := rain.NewScreen(capWidth, capHeight, factory)
	if err != nil {
		return err
	}

	frames := make([]rain.Frame, 0, numFrames)
	for i := 0; i < numFrames; i++ {
		if err := screen.Update(); err != nil {
			return err
		}
		frames = append(frames, screen.Snapshot())
	}

	st := capture.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(cfg, capWidth, capHeight, frames)
	if err != nil {
		return err
	}

	fmt.Printf("captured %d frames at %dx%d\n", numFrames, capWidth, capHeight)
	fmt.Printf("run id: %s\n", id)
	return nil
}

func listCaptures(cmd *cobra.Command, args []string) error {
	st := capture.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no captures found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tFRAMES\tDEPTH\tTHEME\tCHARSET")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\t%s\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Frames,
			run.Depth,
			run.Theme,
			run.Charset,
		)
	}
	return w.Flush()
}

func showCapture(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := capture.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(id)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("capture %s has no frames", id)
	}

	idx := frameIndex
	if idx < 0 {
		idx = len(frames) - 1
	}
	if idx >= len(frames) {
		return fmt.Errorf("frame %d out of range (capture has %d frames)", idx, len(frames))
	}

	styles := palette.Styles(palette.Get(meta.Theme), meta.Depth+1)
	fmt.Println(tui.RenderFrame(frames[idx], styles))
	return nil
}
