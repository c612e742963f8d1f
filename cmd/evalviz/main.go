package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"evalviz/internal/config"
	"evalviz/internal/encode"
	"evalviz/internal/render"
	"evalviz/internal/scenes"
	"evalviz/internal/stats"
	"evalviz/internal/store"
	"evalviz/internal/tui"
)

var (
	dataDir    string
	fps        int
	width      int
	height     int
	format     string
	outDir     string
	preset     string
	configFile string
	preview    bool
)

// main registers the evalviz commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "evalviz",
		Short: "educational animations of programming-language evaluation",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".evalviz", "data directory")

	renderCmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "render a scene to a video artifact",
		Args:  cobra.ExactArgs(1),
		RunE:  renderScene,
	}
	renderCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	renderCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "frame width in pixels")
	renderCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "frame height in pixels")
	renderCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "output format (gif, png, svg)")
	renderCmd.Flags().StringVar(&outDir, "out", config.DefaultOutDir, "output directory")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().BoolVarP(&preview, "preview", "p", false, "play in the terminal after rendering")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list available scenes",
		RunE:  listScenes,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list past renders",
		RunE:  listRenders,
	}

	infoCmd := &cobra.Command{
		Use:   "info [render_id]",
		Short: "export render metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  infoRender,
	}

	playCmd := &cobra.Command{
		Use:   "play [scene]",
		Short: "render a scene and play it in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  playScene,
	}
	playCmd.Flags().IntVar(&fps, "fps", 15, "frame rate")

	statsCmd := &cobra.Command{
		Use:   "stats [scene]",
		Short: "timeline statistics for a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  statsScene,
	}
	statsCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available render presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %dx%d @ %d fps, %s\n", name, p.Width, p.Height, p.FPS, p.Format)
			}
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, scenesCmd, listCmd, infoCmd, playCmd, statsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// renderConfig resolves defaults, preset, config file, and flags, in
// increasing order of precedence.
func renderConfig(cmd *cobra.Command) (*config.Config, error) {
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

	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = format
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = outDir
	}
	if cmd.Flags().Changed("preview") {
		cfg.Preview = preview
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func renderScene(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := renderConfig(cmd)
	if err != nil {
		return err
	}

	registry := scenes.NewRegistry()
	builder, err := registry.Get(name)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	r := render.New(render.Config{FPS: cfg.FPS, Width: cfg.Width, Height: cfg.Height})

	var svgWriter *encode.SVGWriter

	fmt.Printf("rendering %s...\n", name)
	start := time.Now()

	var result *render.Result
	if cfg.Format == "svg" {
		svgWriter = &encode.SVGWriter{
			Dir:    cfg.OutDir,
			Prefix: strings.ToLower(name),
			Width:  cfg.Width,
			Height: cfg.Height,
		}
		result, err = r.Run(context.Background(), builder, svgWriter)
	} else {
		result, err = r.Run(context.Background(), builder)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	output, err := writeArtifact(cfg, name, result, svgWriter)
	if err != nil {
		return err
	}

	id, err := st.Save(name, cfg.FPS, cfg.Width, cfg.Height, cfg.Format, output, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("render id: %s\n", id)
	fmt.Printf("frames: %d (%.2fs at %d fps)\n", len(result.Times), result.Duration, cfg.FPS)
	fmt.Printf("output: %s\n", output)

	if cfg.Preview {
		return tui.Play(name, result.Frames, result.Times, cfg.FPS)
	}
	return nil
}

// writeArtifact encodes the primary output for the configured format
// and returns its path.
func writeArtifact(cfg *config.Config, name string, result *render.Result, svgWriter *encode.SVGWriter) (string, error) {
	switch cfg.Format {
	case "gif":
		if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
			return "", err
		}
		path := filepath.Join(cfg.OutDir, strings.ToLower(name)+".gif")
		if err := encode.WriteGIF(path, result.Frames, cfg.FPS); err != nil {
			return "", err
		}
		return path, nil
	case "png":
		paths, err := encode.WritePNGFrames(cfg.OutDir, strings.ToLower(name), result.Frames)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s (%d frames)", cfg.OutDir, len(paths)), nil
	case "svg":
		return fmt.Sprintf("%s (%d frames)", cfg.OutDir, len(svgWriter.Paths())), nil
	default:
		return "", fmt.Errorf("unknown format: %s", cfg.Format)
	}
}

func listScenes(cmd *cobra.Command, args []string) error {
	registry := scenes.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tDESCRIPTION")
	for _, name := range registry.List() {
		builder, err := registry.Get(name)
		if err != nil {
			return err
		}
		desc := ""
		if d, ok := builder.(interface{ Description() string }); ok {
			desc = d.Description()
		}
		fmt.Fprintf(w, "%s\t%s\n", name, desc)
	}
	return w.Flush()
}

func listRenders(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no renders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tFRAMES\tDURATION\tFPS\tFORMAT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2fs\t%d\t%s\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Duration,
			run.FPS,
			run.Format,
		)
	}
	return w.Flush()
}

func infoRender(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func playScene(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry := scenes.NewRegistry()
	builder, err := registry.Get(name)
	if err != nil {
		return err
	}

	// Terminal playback resolution; the braille canvas downsamples it.
	r := render.New(render.Config{FPS: fps, Width: 640, Height: 360})
	result, err := r.Run(context.Background(), builder)
	if err != nil {
		return err
	}

	return tui.Play(name, result.Frames, result.Times, fps)
}

func statsScene(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry := scenes.NewRegistry()
	builder, err := registry.Get(name)
	if err != nil {
		return err
	}

	r := render.New(render.Config{FPS: fps, Headless: true})
	result, err := r.Run(context.Background(), builder)
	if err != nil {
		return err
	}

	summary := stats.Summarize(result)
	fmt.Printf("scene: %s\n", name)
	fmt.Printf("steps: %d\n", summary.Steps)
	fmt.Printf("frames: %d (%.2fs at %d fps)\n", summary.Frames, summary.Duration, fps)
	fmt.Printf("draw ops: mean %.1f, peak %.0f\n", summary.MeanOps, summary.PeakOps)
	if summary.PeakContexts > 0 {
		fmt.Printf("peak call contexts: %.0f\n", summary.PeakContexts)
	}
	if summary.PeakBindings > 0 {
		fmt.Printf("peak bindings: %.0f\n", summary.PeakBindings)
	}

	fmt.Println()
	fmt.Println(stats.Plot(stats.OpsSeries(result), "draw ops per frame"))
	if summary.PeakContexts > 0 {
		fmt.Println()
		fmt.Println(stats.Plot(stats.GaugeSeries(result, "contexts"), "call contexts over time"))
	}
	return nil
}
