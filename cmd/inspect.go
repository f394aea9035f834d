package cmd

import (
	"fmt"
	"os"

	"github.com/encodeous/routesim/core"
	"github.com/encodeous/routesim/feed"
	"github.com/encodeous/routesim/state"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:     "inspect",
	Aliases: []string{"i"},
	Short:   "Inspect a topology file",
	Long:    `Prints a summary of the topology and the forwarding tables both strategies would compute for it, before any changes are applied.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("Usage: routesim inspect <topologyFile>")
			return
		}

		file, err := os.Open(args[0])
		if err != nil {
			fmt.Println("Error:", err.Error())
			return
		}
		defer file.Close()

		links, err := feed.ParseTopology(file)
		if err != nil {
			fmt.Println("Error:", err.Error())
			return
		}
		graph, err := state.NewGraphFromLinks(links)
		if err != nil {
			fmt.Println("Error:", err.Error())
			return
		}

		fmt.Printf("nodes: %d, links: %d\n", graph.Nodes().Cardinality(), len(links))
		for _, name := range state.Strategies {
			strat, err := core.StrategyByName(name)
			if err != nil {
				fmt.Println("Error:", err.Error())
				return
			}
			fmt.Printf("\nforwarding tables (%s):\n", name)
			e := core.NewEmitter(os.Stdout)
			if err := e.WriteTables(core.BuildTables(graph, strat)); err != nil {
				fmt.Println("Error:", err.Error())
				return
			}
			if err := e.Flush(); err != nil {
				fmt.Println("Error:", err.Error())
				return
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
