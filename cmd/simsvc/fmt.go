package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"keepaway/internal/sim"
)

var (
	fmtOut  string
	fmtYAML bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [input]",
	Short: "Rewrite notes (or a YAML troop) as canonical notes or YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().StringVarP(&fmtOut, "out", "o", "", "output file (default stdout)")
	fmtCmd.Flags().BoolVar(&fmtYAML, "yaml", false, "emit a YAML troop instead of notes")
}

func runFmt(cmd *cobra.Command, args []string) error {
	actors, err := loadActors(args[0])
	if err != nil {
		return err
	}
	if fmtYAML {
		b, err := yaml.Marshal(sim.ToTroopConfig(actors))
		if err != nil {
			return err
		}
		return writeOut(cmd, fmtOut, b)
	}
	return writeOut(cmd, fmtOut, []byte(sim.Format(actors)))
}
