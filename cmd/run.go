package cmd

import (
	"fmt"
	"os"

	"github.com/encodeous/routesim/core"
	"github.com/encodeous/routesim/state"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var scenarioPath string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [strategy] [topologyFile] [messageFile] [changesFile] [outputFile]",
	Short: "Run a simulation",
	Long: `This will run one simulation end to end: forwarding tables and message
deliveries for the initial topology, then one recompute-and-redeliver cycle per
topology change, all appended to the output file.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg state.ScenarioCfg

		if scenarioPath != "" {
			file, err := os.ReadFile(scenarioPath)
			if err != nil {
				panic(err)
			}
			err = yaml.Unmarshal(file, &cfg)
			if err != nil {
				panic(err)
			}
		} else {
			if len(args) != 5 {
				fmt.Println("Usage: routesim run <dv|ls> <topologyFile> <messageFile> <changesFile> <outputFile>")
				os.Exit(1)
			}
			cfg = state.ScenarioCfg{
				Strategy: args[0],
				Topology: args[1],
				Messages: args[2],
				Changes:  args[3],
				Output:   args[4],
			}
		}

		if ok, _ := cmd.Flags().GetBool("verbose"); ok {
			cfg.Verbose = true
		}

		err := core.Bootstrap(cfg)
		if err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "YAML scenario file instead of positional arguments")
	runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
}
