package cmd

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/icesim/eventgen/gen"
)

var cascadeScratch bool

// cascadeCmd generates neutrino-induced cascade events from a YAML config.
var cascadeCmd = &cobra.Command{
	Use:   "cascade CONFIG RUN_NUMBER",
	Short: "Generate neutrino-induced cascade events",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runNumber, err := strconv.Atoi(args[1])
		if err != nil {
			logrus.Fatalf("RUN_NUMBER must be an integer: %v", err)
		}
		cfg, err := gen.LoadCascadeConfig(args[0])
		if err != nil {
			logrus.Fatalf("Loading config: %v", err)
		}

		rng := gen.NewPartitionedRNG(gen.MasterSeed(cfg.DatasetNumber, runNumber, cfg.Seed))
		builder, err := gen.NewCascadeBuilder(cfg, rng.ForStage(gen.StageGeneration))
		if err != nil {
			logrus.Fatalf("Configuring cascade builder: %v", err)
		}

		outfile := resolveOutfile(&cfg.RunConfig, runNumber, cascadeScratch)
		logrus.Infof("Run: %d", runNumber)
		logrus.Infof("Outfile: %s", outfile)
		logrus.Infof("Azimuth: [%v,%v]", cfg.AzimuthRange.Min, cfg.AzimuthRange.Max)
		logrus.Infof("Zenith: [%v,%v]", cfg.ZenithRange.Min, cfg.ZenithRange.Max)
		logrus.Infof("Energy: [%v,%v]", cfg.HadronEnergyRange.Min, cfg.HadronEnergyRange.Max)
		logrus.Infof("Vertex x: [%v,%v]", cfg.XRange.Min, cfg.XRange.Max)
		logrus.Infof("Vertex y: [%v,%v]", cfg.YRange.Min, cfg.YRange.Max)
		logrus.Infof("Vertex z: [%v,%v]", cfg.ZRange.Min, cfg.ZRange.Max)

		runPipeline(builder, &cfg.RunConfig, rng, outfile)
	},
}

// runPipeline drives a builder to the configured event count, writing to the
// JSON sink and echoing the split-stream metadata for the downstream router.
func runPipeline(builder gen.Builder, cfg *gen.RunConfig, rng *gen.PartitionedRNG, outfile string) {
	sink, err := newJSONSink(outfile)
	if err != nil {
		logrus.Fatalf("Opening sink: %v", err)
	}
	defer sink.Close()

	driver, err := gen.NewDriver(builder, sink, cfg.NumEvents, rng.ForStageReader(gen.StageFrameID))
	if err != nil {
		logrus.Fatalf("Configuring driver: %v", err)
	}
	if err := driver.Run(); err != nil {
		logrus.Fatalf("Generation failed: %v", err)
	}

	splits, err := cfg.Splits()
	if err != nil {
		logrus.Fatalf("Normalizing split metadata: %v", err)
	}
	if len(splits) > 0 {
		for _, s := range splits {
			logrus.Infof("Output (%s): %s (threshold %gm, %g DOMs, oversize %g)",
				s.Name(), s.TransformFilepath(outfile), s.Threshold, s.DOMLimit, s.OversizeFactor)
		}
	} else {
		logrus.Infof("Output: %s", outfile)
	}
	logrus.Infof("Generated %d events", driver.Produced())
}

func init() {
	cascadeCmd.Flags().BoolVar(&cascadeScratch, "scratch", true, "Write output to the scratch pattern")
	rootCmd.AddCommand(cascadeCmd)
}
