package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/avdeyev/bci-swarm/internal/app"
	"github.com/avdeyev/bci-swarm/internal/config"
)

var settings = config.Default()

var rootCmd = &cobra.Command{
	Use:   "bci-swarm",
	Short: "Dot-swarm neurofeedback demo with a calibration protocol",
	Long: `bci-swarm renders a swarm of dots whose coherence tracks sustained
attention on a gaze (or cursor) target, plus an 8-stimulus calibration
protocol with configurable focus/gap timing.

Examples:
  bci-swarm                              # mouse input, light theme
  bci-swarm --input tracker --theme dark # eye tracker, dark theme
  bci-swarm --focus 2s --gap 1s --rounds 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
	SilenceUsage: true,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&settings.DotCount, "dots", settings.DotCount, "number of swarm dots")
	f.DurationVar(&settings.Focus, "focus", settings.Focus, "stimulus focus duration")
	f.DurationVar(&settings.Gap, "gap", settings.Gap, "gap between stimuli")
	f.IntVar(&settings.Rounds, "rounds", settings.Rounds, "calibration rounds")
	f.StringVar(&settings.Theme, "theme", settings.Theme, "color theme (light, dark, colorblind)")
	f.StringVar(&settings.Input, "input", settings.Input, "input source (mouse, tracker)")
	f.StringVar(&settings.LogDir, "log-dir", settings.LogDir, "session log directory, empty disables logging")
	f.BoolVar(&settings.LogGaze, "log-gaze", settings.LogGaze, "log per-tick gaze samples")
	f.IntVar(&settings.TPS, "tps", settings.TPS, "simulation ticks per second")
}

func run() error {
	a := app.New(settings)
	defer a.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("BCI Swarm - Space: neuro trigger, Esc/Q: quit")
	ebiten.SetTPS(settings.TPS)

	start := time.Now()
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	fmt.Printf("session ended after %s\n", time.Since(start).Round(time.Second))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
