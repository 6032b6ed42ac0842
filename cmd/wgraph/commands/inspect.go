package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/dijkstra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print node, edge and degree statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.load(args[0])
			if err != nil {
				return err
			}
			st := alg.Graph().Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes:     %d\n", st.NodeCount)
			fmt.Fprintf(out, "edges:     %d\n", st.EdgeCount)
			fmt.Fprintf(out, "isolated:  %d\n", st.IsolatedNodes)
			fmt.Fprintf(out, "maxdegree: %d\n", st.MaxDegree)
			fmt.Fprintf(out, "weight:    %g\n", st.TotalWeight)
			fmt.Fprintf(out, "connected: %t\n", alg.IsConnected())

			return nil
		},
	}
}

func newConnectedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connected FILE",
		Short: "Report whether every node is reachable from every other",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), alg.IsConnected())

			return nil
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path FILE --from A --to B",
		Short: "Print a shortest path and its distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetInt("from")
			to, _ := cmd.Flags().GetInt("to")
			alg, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			res, err := dijkstra.Search(alg.Graph(), from, to)
			if err != nil {
				fmt.Fprintf(out, "no path from %d to %d\n", from, to)
				return nil
			}
			keys := make([]string, len(res.Path))
			for i, k := range res.Keys() {
				keys[i] = strconv.Itoa(k)
			}
			fmt.Fprintf(out, "distance: %g\n", res.Distance)
			fmt.Fprintf(out, "path:     %s\n", strings.Join(keys, " "))

			return nil
		},
	}
	cmd.Flags().Int("from", 0, "source key")
	cmd.Flags().Int("to", 0, "target key")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Copy a graph between storage formats",
		Long: `Load IN and save it to OUT. Formats are chosen by extension, so
convert g.yaml g.db#backup copies a YAML file into a SQLite snapshot.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err := alg.Save(args[1]); err != nil {
				return err
			}
			g := alg.Graph()
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d nodes, %d edges\n", args[1], g.NodeCount(), g.EdgeCount())

			return nil
		},
	}
}
