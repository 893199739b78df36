package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lakret/gir/bfs"
	"github.com/lakret/gir/office"
)

type searchOpts struct {
	favorite    int
	start, goal string
	size        int
	animate     bool
	frame       time.Duration
}

func (c *CLI) searchCommand() *cobra.Command {
	var o searchOpts

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Breadth-first search through the AoC 2016 day 13 office",
		Long: `Search the cubicle maze of Advent of Code 2016, day 13 breadth-first.

A position x,y is a wall when x*x + 3*x + 2*x*y + y + y*y + favorite has an
odd number of set bits. The shortest route from start to goal is printed
over the explored area; --animate replays the search generation by
generation.`,
		Example: `  gir search --favorite 10 --start 1,1 --goal 7,4
  gir search --favorite 1352 --goal 31,39 --size 50 --animate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.mergeSearchConfig(cmd, &o)
			return c.runSearch(cmd, o)
		},
	}

	cmd.Flags().IntVar(&o.favorite, "favorite", 0, "the office designer's favorite number")
	cmd.Flags().StringVar(&o.start, "start", "", "start position x,y")
	cmd.Flags().StringVar(&o.goal, "goal", "", "goal position x,y")
	cmd.Flags().IntVar(&o.size, "size", 0, "side of the searched square")
	cmd.Flags().BoolVar(&o.animate, "animate", false, "animate the explored generations")
	cmd.Flags().DurationVar(&o.frame, "frame", 0, "animation frame duration")

	return cmd
}

func (c *CLI) mergeSearchConfig(cmd *cobra.Command, o *searchOpts) {
	cfg := c.Config.Search
	if !cmd.Flags().Changed("favorite") {
		o.favorite = cfg.Favorite
	}
	if !cmd.Flags().Changed("start") {
		o.start = fmt.Sprintf("%d,%d", cfg.Start[0], cfg.Start[1])
	}
	if !cmd.Flags().Changed("goal") {
		o.goal = fmt.Sprintf("%d,%d", cfg.Goal[0], cfg.Goal[1])
	}
	if !cmd.Flags().Changed("size") {
		o.size = cfg.Size
	}
	if !cmd.Flags().Changed("frame") {
		o.frame = time.Duration(cfg.FrameMS) * time.Millisecond
	}
}

// parsePos parses "x,y".
func parsePos(s string) (office.Pos, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return office.Pos{}, fmt.Errorf("invalid position %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return office.Pos{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return office.Pos{}, fmt.Errorf("invalid position %q: %w", s, err)
	}

	return office.Pos{X: x, Y: y}, nil
}

func (c *CLI) runSearch(cmd *cobra.Command, o searchOpts) error {
	logger := loggerFromContext(cmd.Context())

	start, err := parsePos(o.start)
	if err != nil {
		return err
	}
	goal, err := parsePos(o.goal)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	out, err := office.Search(o.favorite, start, goal, o.size,
		bfs.WithContext(cmd.Context()),
		bfs.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	prog.done("search finished", "found", out.Found, "generations", len(out.Explored))

	if o.animate {
		model := newSearchModel(newOfficeFrame(o.favorite, o.size, start, goal), out, o.frame)
		_, err := tea.NewProgram(model,
			tea.WithContext(cmd.Context()),
			tea.WithOutput(cmd.OutOrStdout()),
		).Run()
		return err
	}

	w := cmd.OutOrStdout()
	frame := newOfficeFrame(o.favorite, o.size, start, goal).
		withGenerations(out.Explored, len(out.Explored)).
		withPath(out.Path)
	fmt.Fprintln(w, frame.render())
	fmt.Fprintln(w, summary(out))

	return nil
}

// summary is the one-line result shown under the floor plan.
func summary(out *office.Outcome) string {
	explored := 0
	for _, gen := range out.Explored {
		explored += len(gen)
	}
	if !out.Found {
		return fmt.Sprintf("%s %s",
			StyleDim.Render("goal unreachable; explored"), StyleNumber.Render(strconv.Itoa(explored)))
	}

	return fmt.Sprintf("%s %s %s %s",
		StyleDim.Render("steps:"), StyleNumber.Render(strconv.Itoa(out.Steps())),
		StyleDim.Render("explored:"), StyleNumber.Render(strconv.Itoa(explored)))
}
