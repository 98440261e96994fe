package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"keepaway/internal/sim"
	"keepaway/internal/util"
)

var (
	seed     int64
	nActors  int
	maxItems int
	asYAML   bool
	genOut   string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random, valid troop",
	Args:  cobra.NoArgs,
	RunE:  runGen,
}

func init() {
	genCmd.Flags().Int64Var(&seed, "seed", 12345, "random seed")
	genCmd.Flags().IntVarP(&nActors, "actors", "n", 8, "number of actors")
	genCmd.Flags().IntVar(&maxItems, "items", 6, "maximum starting items per actor")
	genCmd.Flags().BoolVar(&asYAML, "yaml", false, "emit a YAML troop instead of notes")
	genCmd.Flags().StringVarP(&genOut, "out", "o", "", "output file (default stdout)")
}

func runGen(cmd *cobra.Command, args []string) error {
	if nActors < 1 {
		return fmt.Errorf("actors must be >= 1, got %d", nActors)
	}
	if maxItems < 0 {
		return fmt.Errorf("items must be >= 0, got %d", maxItems)
	}
	tc := util.RandomTroop(util.New(seed), nActors, maxItems)
	var out []byte
	if asYAML {
		b, err := yaml.Marshal(tc)
		if err != nil {
			return err
		}
		out = b
	} else {
		actors, err := sim.FromTroopConfig(tc)
		if err != nil {
			return err
		}
		out = []byte(sim.Format(actors))
	}
	return writeOut(cmd, genOut, out)
}

func writeOut(cmd *cobra.Command, path string, b []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(b)
		return err
	}
	return os.WriteFile(path, b, 0644)
}
