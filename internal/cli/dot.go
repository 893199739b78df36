package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakret/gir/converters"
	"github.com/lakret/gir/maze"
	"github.com/lakret/gir/office"
)

func (c *CLI) dotCommand() *cobra.Command {
	var (
		mo     mazeOpts
		so     searchOpts
		source string
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export a graph in Graphviz DOT format",
		Long: `Export one of the built-in graphs as Graphviz DOT on stdout.

Sources:
  maze    open passages of a generated maze (uses the maze settings)
  grid    the full grid graph the maze is carved from
  office  open positions of the office floor plan (uses the search settings)`,
		Example: `  gir dot maze --width 6 --height 4 | dot -Tsvg > maze.svg
  gir dot office --favorite 10 --size 8`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"maze", "grid", "office"},
		RunE: func(cmd *cobra.Command, args []string) error {
			source = "maze"
			if len(args) == 1 {
				source = args[0]
			}
			c.mergeMazeConfig(cmd, &mo)
			c.mergeSearchConfig(cmd, &so)
			return c.runDot(cmd, source, mo, so)
		},
	}

	cmd.Flags().IntVar(&mo.width, "width", 0, "maze width in cells")
	cmd.Flags().IntVar(&mo.height, "height", 0, "maze height in cells")
	cmd.Flags().StringVar(&mo.algorithm, "algorithm", "", "carving algorithm: prim, dfs, kruskal")
	cmd.Flags().Int64Var(&mo.seed, "seed", 0, "random seed")
	cmd.Flags().IntVar(&so.favorite, "favorite", 0, "the office designer's favorite number")
	cmd.Flags().IntVar(&so.size, "size", 0, "side of the office square")

	return cmd
}

func (c *CLI) runDot(cmd *cobra.Command, source string, mo mazeOpts, so searchOpts) error {
	w := cmd.OutOrStdout()
	cellLabels := converters.Labels[maze.Cell, struct{}, maze.Wall]{
		ID:   maze.Cell.String,
		Edge: maze.Wall.String,
	}

	switch source {
	case "maze":
		m, err := c.buildMaze(cmd, mo)
		if err != nil {
			return err
		}
		return converters.WriteDOT[maze.Cell, struct{}, maze.Wall](w, m.Passages(), cellLabels)
	case "grid":
		g, err := maze.Grid(mo.width, mo.height)
		if err != nil {
			return err
		}
		return converters.WriteDOT[maze.Cell, struct{}, maze.Wall](w, g, cellLabels)
	case "office":
		g := office.Graph(so.favorite, so.size)
		loggerFromContext(cmd.Context()).Debug("office graph", "vertices", g.Order(), "edges", g.Size())
		return converters.WriteDOT[uint64, office.Pos, struct{}](w, g, converters.Labels[uint64, office.Pos, struct{}]{
			ID: func(id uint64) string {
				p, _ := g.Vertex(id)
				return p.String()
			},
		})
	}

	return fmt.Errorf("unknown dot source %q: want maze, grid or office", source)
}
