package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakret/gir/maze"
)

type mazeOpts struct {
	width, height int
	algorithm     string
	seed          int64
	solve         bool
}

func (c *CLI) mazeCommand() *cobra.Command {
	var o mazeOpts

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate a random maze",
		Long: `Generate a perfect maze by carving passages along a spanning tree of the grid.

Algorithms:
  prim     minimum spanning tree of random weights (many short dead ends)
  dfs      depth-first spanning tree (long winding corridors)
  kruskal  minimum spanning forest of random weights`,
		Example: `  gir maze --width 20 --height 10
  gir maze --algorithm dfs --seed 42 --solve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.mergeMazeConfig(cmd, &o)
			return c.runMaze(cmd, o)
		},
	}

	cmd.Flags().IntVar(&o.width, "width", 0, "maze width in cells")
	cmd.Flags().IntVar(&o.height, "height", 0, "maze height in cells")
	cmd.Flags().StringVar(&o.algorithm, "algorithm", "", "carving algorithm: prim, dfs, kruskal")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "random seed")
	cmd.Flags().BoolVar(&o.solve, "solve", false, "mark the route from the top-left to the bottom-right cell")

	return cmd
}

// mergeMazeConfig fills every flag the user did not set from the config.
func (c *CLI) mergeMazeConfig(cmd *cobra.Command, o *mazeOpts) {
	cfg := c.Config.Maze
	if !cmd.Flags().Changed("width") {
		o.width = cfg.Width
	}
	if !cmd.Flags().Changed("height") {
		o.height = cfg.Height
	}
	if !cmd.Flags().Changed("algorithm") {
		o.algorithm = cfg.Algorithm
	}
	if !cmd.Flags().Changed("seed") {
		o.seed = cfg.Seed
	}
}

func (c *CLI) buildMaze(cmd *cobra.Command, o mazeOpts) (*maze.Maze, error) {
	logger := loggerFromContext(cmd.Context())

	algo, err := maze.ParseAlgorithm(o.algorithm)
	if err != nil {
		return nil, err
	}

	prog := newProgress(logger)
	m, err := maze.Generate(o.width, o.height,
		maze.WithSeed(o.seed),
		maze.WithAlgorithm(algo),
		maze.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	perfect, err := m.Perfect()
	if err != nil {
		return nil, err
	}
	prog.done("maze ready", "width", o.width, "height", o.height, "perfect", perfect)

	return m, nil
}

func (c *CLI) runMaze(cmd *cobra.Command, o mazeOpts) error {
	m, err := c.buildMaze(cmd, o)
	if err != nil {
		return err
	}

	var path []maze.Cell
	if o.solve {
		path, err = m.Solve(maze.Cell{}, maze.Cell{Row: m.Height - 1, Col: m.Width - 1})
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderMaze(m, path))
	if o.solve {
		fmt.Fprintf(out, "%s %s\n", StyleDim.Render("route length:"), StyleNumber.Render(fmt.Sprint(len(path)-1)))
	}

	return nil
}
