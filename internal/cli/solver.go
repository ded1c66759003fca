package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cube-solver/kociemba/internal/kociemba"
	"github.com/spf13/cobra"
)

// solverCmd is the spec-faithful two-phase driver: a single scramble
// argument, or -c/--continuous to read one scramble per line from
// stdin until EOF or a line reading "QUIT".
var solverCmd = &cobra.Command{
	Use:   "solver [scramble]",
	Short: "Solve a 3x3x3 scramble with the two-phase engine",
	Long: `solver takes a scramble as a sequence of face moves and prints a
solution found by the two-phase (Kociemba) algorithm.

With -c/--continuous, solver reads one scramble per line from stdin
and prints one solution per line, until EOF or a line reading QUIT.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		continuous, _ := cmd.Flags().GetBool("continuous")
		cachePath, _ := cmd.Flags().GetString("cache")

		solver, err := kociemba.LoadOrBuildSolver(cachePath)
		if err != nil {
			return err
		}

		if continuous {
			return runContinuous(cmd, solver)
		}

		if len(args) == 0 {
			return fmt.Errorf("solver: a scramble argument is required unless -c/--continuous is set")
		}
		return solveAndPrint(cmd, solver, args[0])
	},
}

func runContinuous(cmd *cobra.Command, solver *kociemba.Solver) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "QUIT" {
			return nil
		}
		if err := solveAndPrint(cmd, solver, line); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "ERROR: %v\n", err)
		}
	}
	return scanner.Err()
}

func solveAndPrint(cmd *cobra.Command, solver *kociemba.Solver, scramble string) error {
	c, err := kociemba.CubeFromScramble(scramble)
	if err != nil {
		return err
	}
	moves, err := solver.Solve(c)
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "SOLVED")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), kociemba.FormatMoves(moves))
	return nil
}

func init() {
	solverCmd.Flags().BoolP("continuous", "c", false, "Read scrambles from stdin, one per line, until EOF or QUIT")
	solverCmd.Flags().String("cache", "kociemba.tables", "Path to the persisted coordinate/pruning table cache")
	rootCmd.AddCommand(solverCmd)
}
