package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/trackball/internal/config"
	"github.com/san-kum/trackball/internal/export"
	"github.com/san-kum/trackball/internal/gesture"
	"github.com/san-kum/trackball/internal/gui"
	"github.com/san-kum/trackball/internal/storage"
	"github.com/san-kum/trackball/internal/trace"
	"github.com/san-kum/trackball/internal/tui"
	"github.com/san-kum/trackball/internal/viz"
)

var (
	dataDir    string
	configFile string

	gestureName string
	samples     int
	screenW     float64
	screenH     float64
	turns       float64
	radius      float64

	plot    bool
	save    bool
	svgPath string

	winW int32
	winH int32
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trackball",
		Short: "virtual trackball orbiting via the exponential map",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live terminal view when no command given.
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".trackball", "data directory")

	traceCmd := &cobra.Command{
		Use:   "trace [gesture]",
		Short: "replay a scripted pointer gesture through the orbit engine",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&configFile, "config", "", "config file")
	traceCmd.Flags().IntVar(&samples, "samples", 0, "pointer samples")
	traceCmd.Flags().Float64Var(&screenW, "width", config.DefaultWidth, "screen width")
	traceCmd.Flags().Float64Var(&screenH, "height", config.DefaultHeight, "screen height")
	traceCmd.Flags().Float64Var(&turns, "turns", 0, "gesture turns")
	traceCmd.Flags().Float64Var(&radius, "radius", 0, "gesture radius")
	traceCmd.Flags().BoolVar(&plot, "plot", false, "plot step angles")
	traceCmd.Flags().BoolVar(&save, "save", false, "save run to data directory")
	traceCmd.Flags().StringVar(&svgPath, "svg", "", "export pointer path as SVG")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved trace runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "replay the angle series of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	runsCmd.AddCommand(showCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "live terminal trackball",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed trackball demo",
		Run: func(cmd *cobra.Command, args []string) {
			gui.Run(winW, winH)
		},
	}
	guiCmd.Flags().Int32Var(&winW, "width", 800, "window width")
	guiCmd.Flags().Int32Var(&winH, "height", 600, "window height")

	gesturesCmd := &cobra.Command{
		Use:   "gestures",
		Short: "list available gestures",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range gesture.Names() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	rootCmd.AddCommand(traceCmd, runsCmd, tuiCmd, guiCmd, gesturesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override config.
	if len(args) > 0 {
		cfg.Gesture.Name = args[0]
	}
	if cmd.Flags().Changed("samples") {
		cfg.Gesture.Samples = samples
	}
	if cmd.Flags().Changed("width") {
		cfg.Screen.Width = screenW
	}
	if cmd.Flags().Changed("height") {
		cfg.Screen.Height = screenH
	}
	if cmd.Flags().Changed("turns") {
		cfg.Gesture.Turns = turns
	}
	if cmd.Flags().Changed("radius") {
		cfg.Gesture.Radius = radius
	}

	path, err := gesture.Generate(cfg.GestureSpec(), cfg.Screen.Width, cfg.Screen.Height)
	if err != nil {
		return err
	}

	result := trace.Run(cfg.Gesture.Name, path, cfg.Screen.Width, cfg.Screen.Height)

	fmt.Printf("gesture: %s on %.0fx%.0f\n\n", result.Gesture, result.Width, result.Height)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "samples\t%d\n", len(result.Steps))
	fmt.Fprintf(w, "total angle\t%.6f rad\n", result.TotalAngle)
	fmt.Fprintf(w, "max step\t%.6f rad\n", result.MaxStep)
	fmt.Fprintf(w, "norm drift\t%.2e\n", result.NormDrift)
	w.Flush()

	if plot {
		fmt.Println()
		fmt.Println(asciigraph.Plot(result.Angles(),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("step rotation angle (rad)"),
		))
	}

	if svgPath != "" {
		if err := export.WriteSVG(svgPath, pointerCanvas(result), 4); err != nil {
			return fmt.Errorf("failed to export svg: %w", err)
		}
		fmt.Printf("\nsvg written to %s\n", svgPath)
	}

	if save {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(result)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

// pointerCanvas draws the traced pointer path scaled onto a canvas.
func pointerCanvas(result *trace.Result) *viz.Canvas {
	canvas := viz.NewCanvas(100, 38)
	sx := float64(canvas.Width*2-1) / result.Width
	sy := float64(canvas.Height*4-1) / result.Height

	for i := 1; i < len(result.Steps); i++ {
		a, b := result.Steps[i-1], result.Steps[i]
		canvas.Line(
			int(a.X*sx), int(a.Y*sy),
			int(b.X*sx), int(b.Y*sy),
		)
	}
	return canvas
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGESTURE\tSCREEN\tSAMPLES\tTOTAL ANGLE\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.0fx%.0f\t%d\t%.4f\t%s\n",
			run.ID, run.Gesture, run.Width, run.Height,
			run.Samples, run.TotalAngle,
			run.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)

	meta, err := store.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	steps, err := store.LoadSteps(args[0])
	if err != nil {
		return fmt.Errorf("failed to load rotations: %w", err)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("gesture: %s on %.0fx%.0f\n", meta.Gesture, meta.Width, meta.Height)
	fmt.Printf("samples: %d\n\n", len(steps))

	angles := make([]float64, len(steps))
	for i, step := range steps {
		angles[i] = step.Angle
	}

	fmt.Println(asciigraph.Plot(angles,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("step rotation angle (rad)"),
	))
	return nil
}
