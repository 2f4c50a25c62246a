package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Iron-Ham/logview/internal/capture"
	"github.com/Iron-Ham/logview/internal/capture/zapbridge"
	"github.com/Iron-Ham/logview/internal/config"
	"github.com/Iron-Ham/logview/internal/tui"
	"github.com/Iron-Ham/logview/internal/tui/styles"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the console against generated log traffic",
	Long: `Installs the capture sink, spawns goroutines emitting slog and zap
traffic from several sources, and opens the interactive console.
Use it to explore the filters without wiring logview into a program.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.TUI.ThemeFile != "" {
		theme, err := styles.LoadThemeFile(cfg.TUI.ThemeFile)
		if err != nil {
			return fmt.Errorf("loading theme: %w", err)
		}
		theme.Apply()
	}

	if err := capture.Install(capture.Options{
		Capacity: cfg.Capture.Capacity,
		MinLevel: capture.ParseLevel(cfg.Capture.Level),
	}); err != nil {
		return fmt.Errorf("installing capture sink: %w", err)
	}
	for _, src := range cfg.Capture.Sources {
		capture.Track(src)
	}

	sink := capture.Default()
	stop := make(chan struct{})
	defer close(stop)
	startDemoTraffic(sink, stop)

	app := tui.New(sink, tui.Options{
		TickInterval: cfg.TUI.TickInterval(),
		TimeFormat:   cfg.TUI.TimeFormat,
	})
	return app.Run()
}

// startDemoTraffic emits a steady mix of slog and zap events from a
// handful of sources until stop is closed.
func startDemoTraffic(sink *capture.Sink, stop <-chan struct{}) {
	slogSources := []string{"net/conn", "ui::render", "db/pool", "cache"}
	for _, src := range slogSources {
		go func(src string) {
			logger := capture.Logger(src)
			for i := 0; ; i++ {
				select {
				case <-stop:
					return
				case <-time.After(time.Duration(150+rand.Intn(400)) * time.Millisecond):
				}
				switch i % 7 {
				case 0:
					logger.Error("operation failed", "attempt", i)
				case 1, 2:
					logger.Warn("slow response", "ms", 100+rand.Intn(900))
				case 3:
					logger.Debug("state transition", "step", i)
				default:
					logger.Info("tick", "seq", i)
				}
			}
		}(src)
	}

	// A zap-based component feeding the same pipeline.
	go func() {
		logger := zap.New(zapbridge.NewCore(sink, zapcore.DebugLevel)).Named("worker").Named("ingest")
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			case <-time.After(time.Duration(200+rand.Intn(500)) * time.Millisecond):
			}
			if i%5 == 0 {
				logger.Warn("queue depth high", zap.Int("depth", 50+rand.Intn(200)))
			} else {
				logger.Info("batch committed", zap.Int("records", rand.Intn(100)))
			}
		}
	}()
}
