package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/enerva/fuelcore/config"
	"github.com/enerva/fuelcore/core/metrics"
	"github.com/enerva/fuelcore/core/sim"
	"github.com/enerva/fuelcore/infra/logger"
	inframetrics "github.com/enerva/fuelcore/infra/metrics"
	inframqtt "github.com/enerva/fuelcore/infra/mqtt"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "fuelcore",
	Short: "Fuel-to-energy accounting simulator",
	RunE:  runSimulation,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func runSimulation(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Configure(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	logg := logger.New("simulate")
	stations, err := config.BuildStations(cfg.Stations)
	if err != nil {
		return fmt.Errorf("build stations: %w", err)
	}

	var sinks []metrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		promSink, err := inframetrics.NewPromSink(nil)
		if err != nil {
			return fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, promSink)
		go func() {
			if err := inframetrics.StartPromServer(ctx, cfg.Metrics.PrometheusAddr); err != nil {
				logg.Errorf("prom server: %v", err)
			}
		}()
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, inframetrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	if cfg.MQTT.Enabled {
		pub, err := inframqtt.NewPahoPublisher(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("mqtt publisher: %w", err)
		}
		defer pub.Close()
		sinks = append(sinks, inframqtt.SinkAdapter{Pub: pub})
	}
	var sink metrics.Sink = metrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	engine := sim.NewEngine(cfg.Sim, stations, sink, logg)
	report, err := engine.Run(ctx)
	if err != nil {
		return err
	}
	for _, st := range report.Stations {
		logg.Infof("%s (%s): total %d BTU, mean %.1f, stddev %.1f",
			st.Station, st.Fuel, st.TotalBTU, st.MeanBTU, st.StdDevBTU)
	}
	logg.Infof("run %s complete: %d BTU over %d rounds", report.RunID, report.TotalBTU, report.Rounds)
	return nil
}
