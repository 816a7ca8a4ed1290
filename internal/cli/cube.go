package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik"
	"github.com/SeamusWaldron/rubik/internal/analysis"
	"github.com/SeamusWaldron/rubik/internal/notation"
	"github.com/SeamusWaldron/rubik/internal/render"
	"github.com/SeamusWaldron/rubik/internal/session"
)

var (
	newSize      int
	newColors    string
	newNotes     string
	scrambleN    int
	scrambleSeed uint64
	sessionID    string
	showPlain    bool
	historyLong  bool
	historyStats bool
	solvePolicy  string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new session with a solved cube",
	Long: `Create a solved cube and make it the active session.

Colors label the faces Up, Left, Front, Right, Back and Down, in that order.

Examples:
  rubik new
  rubik new --size 5
  rubik new --size 4 --colors U,L,F,R,B,D`,
	RunE: runNew,
}

var rotateCmd = &cobra.Command{
	Use:   "rotate <moves>...",
	Short: "Apply moves to the active cube",
	Long: `Apply a sequence of slice moves to the active cube.

A move is an axis letter, a slice index counted from the Left (X), Back (Y)
or Down (Z) face, and an optional inverse marker. Invalid moves leave the
cube unchanged.

Examples:
  rubik rotate X0
  rubik rotate "X0 Y1i Z2"
  rubik rotate X0 X0 X0 X0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRotate,
}

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble the active cube",
	Long: `Apply random moves to the active cube and clear its move history.

The same count and seed always produce the same cube. Without --seed a seed
is chosen and printed.`,
	RunE: runScramble,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the cube as an unfolded net",
	RunE:  runShow,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the moves applied since the last reset",
	RunE:  runHistory,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the move history (colors are kept)",
	RunE:  runReset,
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the cube (not implemented)",
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().IntVar(&newSize, "size", 0, "Cube size (default from config)")
	newCmd.Flags().StringVar(&newColors, "colors", "", "Comma-separated face colors (default from config)")
	newCmd.Flags().StringVar(&newNotes, "notes", "", "Notes for this session")

	rootCmd.AddCommand(rotateCmd)
	rotateCmd.Flags().StringVar(&sessionID, "id", "", "Session ID (default: active session)")

	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleN, "count", "n", 25, "Number of random moves")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed")
	scrambleCmd.Flags().StringVar(&sessionID, "id", "", "Session ID (default: active session)")

	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Draw with color labels instead of colored blocks")
	showCmd.Flags().StringVar(&sessionID, "id", "", "Session ID (default: active session)")

	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVarP(&historyLong, "long", "l", false, "Describe each move in words")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "Show move statistics and repeated sequences")
	historyCmd.Flags().StringVar(&sessionID, "id", "", "Session ID (default: active session)")

	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().StringVar(&sessionID, "id", "", "Session ID (default: active session)")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solvePolicy, "policy", "default", "Solving policy")
	solveCmd.Flags().StringVar(&sessionID, "id", "", "Session ID (default: active session)")
}

func runNew(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	size := e.cfg.DefaultSize
	if newSize != 0 {
		size = newSize
	}
	colors := e.cfg.Colors
	if newColors != "" {
		colors = splitColors(newColors)
	}

	s, err := e.sessions.Create(size, colors, newNotes)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Started session: %s\n", s.ID())
	fmt.Fprintf(out, "Size: %d  Colors: %s\n", size, strings.Join(colors, " "))
	return nil
}

func runRotate(cmd *cobra.Command, args []string) error {
	return withSession(cmd, sessionID, func(e *env, s *session.Session) error {
		if err := s.Rotate(strings.Join(args, " ")); err != nil {
			return err
		}
		cube := s.Cube()
		fmt.Fprintf(cmd.OutOrStdout(), "Applied: %s (%d moves in history)\n",
			strings.Join(args, " "), len(cube.Moves()))
		if cube.IsSolved() {
			fmt.Fprintln(cmd.OutOrStdout(), "Cube is solved.")
		}
		return nil
	})
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}

	return withSession(cmd, sessionID, func(e *env, s *session.Session) error {
		if err := s.Scramble(scrambleN, seed); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Scrambled with %d moves (seed %d)\n", scrambleN, seed)
		return nil
	})
}

func runShow(cmd *cobra.Command, args []string) error {
	return withSession(cmd, sessionID, func(e *env, s *session.Session) error {
		cube := s.Cube()
		out := cmd.OutOrStdout()

		if showPlain {
			fmt.Fprintln(out, cube.String())
		} else {
			fmt.Fprintln(out, render.StyledNet(cube.FaceletColors()))
		}
		fmt.Fprintln(out)

		state := "scrambled"
		if cube.IsSolved() {
			state = "solved"
		}
		fmt.Fprintln(out, statusStyle.Render(fmt.Sprintf("%dx%d  %s  %d moves in history",
			cube.Size(), cube.Size(), state, len(cube.Moves()))))
		return nil
	})
}

func runHistory(cmd *cobra.Command, args []string) error {
	return withSession(cmd, sessionID, func(e *env, s *session.Session) error {
		moves := s.Cube().Moves()
		out := cmd.OutOrStdout()
		if len(moves) == 0 {
			fmt.Fprintln(out, "No moves in history")
			return nil
		}

		if historyStats {
			printHistoryStats(cmd, moves, s.Cube().Size())
			return nil
		}
		if !historyLong {
			fmt.Fprintln(out, rubik.FormatMoves(moves))
			return nil
		}
		for i, desc := range notation.DescribeSequence(moves, s.Cube().Size()) {
			fmt.Fprintf(out, "%4d  %-6s %s\n", i+1, moves[i].Notation(), desc)
		}
		return nil
	})
}

func printHistoryStats(cmd *cobra.Command, moves []rubik.Move, size int) {
	out := cmd.OutOrStdout()
	sum := analysis.Summarize(moves, size)

	fmt.Fprintln(out, titleStyle.Render("Move statistics"))
	fmt.Fprintf(out, "Total moves:     %d\n", sum.TotalMoves)
	fmt.Fprintf(out, "After cancelling: %d (%d cancelled pairs)\n", sum.SimplifiedMoves, sum.Cancellations)
	fmt.Fprintf(out, "Per axis:        X=%d Y=%d Z=%d (most used: %s)\n",
		sum.AxisCounts["X"], sum.AxisCounts["Y"], sum.AxisCounts["Z"], sum.MostUsedAxis)
	fmt.Fprintf(out, "Inverse moves:   %d\n", sum.InverseMoves)
	fmt.Fprintf(out, "Outer / inner:   %d / %d\n", sum.OuterLayerMoves, sum.InnerSliceMoves)
	fmt.Fprintf(out, "Longest run:     %d\n", sum.LongestRun)

	report := analysis.MineNGrams(moves, 2, 6, 3)
	if len(report.TopNGrams) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Repeated sequences"))
	for n := 2; n <= 6; n++ {
		for _, ng := range report.TopNGrams[n] {
			fmt.Fprintf(out, "  %s x%d\n", moveStyle.Render(strings.Join(ng.Sequence, " ")), ng.Count)
		}
	}
}

func runReset(cmd *cobra.Command, args []string) error {
	return withSession(cmd, sessionID, func(e *env, s *session.Session) error {
		if err := s.ResetHistory(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
		return nil
	})
}

func runSolve(cmd *cobra.Command, args []string) error {
	return withSession(cmd, sessionID, func(e *env, s *session.Session) error {
		err := s.Cube().Solve(solvePolicy)
		if errors.Is(err, rubik.ErrUnsupported) {
			fmt.Fprintln(cmd.OutOrStdout(), "Solving is not supported yet.")
		}
		return err
	})
}

func splitColors(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
