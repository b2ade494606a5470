package cmd

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/icesim/eventgen/gen"
)

var muonScratch bool

// muonCmd generates single-muon resimulation events: one muon is sampled and
// replayed as the primary of every requested event.
var muonCmd = &cobra.Command{
	Use:   "muon CONFIG RUN_NUMBER",
	Short: "Generate single-muon resimulation events",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runNumber, err := strconv.Atoi(args[1])
		if err != nil {
			logrus.Fatalf("RUN_NUMBER must be an integer: %v", err)
		}
		cfg, err := gen.LoadMuonConfig(args[0])
		if err != nil {
			logrus.Fatalf("Loading config: %v", err)
		}

		rng := gen.NewPartitionedRNG(gen.MasterSeed(cfg.DatasetNumber, runNumber, cfg.Seed))
		builder, err := gen.NewMuonBuilder(cfg, rng.ForStage(gen.StageGeneration))
		if err != nil {
			logrus.Fatalf("Configuring muon builder: %v", err)
		}

		outfile := resolveOutfile(&cfg.RunConfig, runNumber, muonScratch)
		muon := builder.Muon()
		logrus.Infof("Run: %d", runNumber)
		logrus.Infof("Outfile: %s", outfile)
		logrus.Infof("Azimuth: [%v,%v]", cfg.AzimuthRange.Min, cfg.AzimuthRange.Max)
		logrus.Infof("Zenith: [%v,%v]", cfg.ZenithRange.Min, cfg.ZenithRange.Max)
		logrus.Infof("Energy: [%v,%v]", cfg.EnergyRange.Min, cfg.EnergyRange.Max)
		logrus.Infof("Muon vertex: (%.1f, %.1f, %.1f) m at %.1f ns",
			muon.Position.X, muon.Position.Y, muon.Position.Z, muon.Time)

		runPipeline(builder, &cfg.RunConfig, rng, outfile)
	},
}

func init() {
	muonCmd.Flags().BoolVar(&muonScratch, "scratch", true, "Write output to the scratch pattern")
	rootCmd.AddCommand(muonCmd)
}
