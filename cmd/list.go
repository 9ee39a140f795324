package cmd

import (
	"fmt"

	"github.com/jsphweid/automidi/chord"
	"github.com/jsphweid/automidi/duration"
	"github.com/jsphweid/automidi/meter"
	"github.com/jsphweid/automidi/model"
	"github.com/jsphweid/automidi/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:       "list [scales|chords|lengths|meters]",
	Short:     "Lists recognized names",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"scales", "chords", "lengths", "meters"},
	Run: func(cmd *cobra.Command, args []string) {
		sections := map[string][]string{
			"scales":  scale.Names(),
			"chords":  chord.Types(),
			"lengths": append(duration.Names(), model.RandomName),
			"meters":  meter.Names(),
		}
		order := []string{"scales", "chords", "lengths", "meters"}
		if len(args) == 1 {
			if _, ok := sections[args[0]]; !ok {
				exitErr("list", fmt.Errorf("unknown section %q", args[0]))
			}
			order = args
		}
		for _, name := range order {
			fmt.Printf("%v:\n", name)
			for _, v := range sections[name] {
				fmt.Printf("  %v\n", v)
			}
		}
	},
}
