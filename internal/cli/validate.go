package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetimer/internal/scramble"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scramble...]",
		Short: "Check scrambles against the WCA move rules",
		Long: `Check each scramble: every move must be one of the 18 face turns
(R L U D F B with optional ' or 2), no face may be turned twice in a row and
no three consecutive moves may share an axis.

Each argument is one scramble. With no arguments, each non-blank line of
stdin is one scramble. Exits non-zero if any scramble is invalid.`,
		Example: `  cubetimer validate "R U R' U'"
  cubetimer validate < scrambles.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scrambles, err := inputScrambles(args, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read scrambles: %w", err)
			}

			out := cmd.OutOrStdout()
			failed := 0
			for i, s := range scrambles {
				if err := scramble.Check(s); err != nil {
					failed++
					fmt.Fprintf(out, "%d: invalid: %v\n", i+1, err)
					continue
				}
				fmt.Fprintf(out, "%d: ok: %s\n", i+1, scramble.Format(s))
			}

			if failed > 0 {
				return fmt.Errorf("%w (%d of %d)", errInvalidInput, failed, len(scrambles))
			}
			return nil
		},
	}
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [scramble...]",
		Short: "Normalize whitespace in scrambles",
		Long: `Print each scramble with its moves separated by single spaces.
The moves themselves are not checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scrambles, err := inputScrambles(args, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read scrambles: %w", err)
			}
			for _, s := range scrambles {
				fmt.Fprintln(cmd.OutOrStdout(), scramble.Format(s))
			}
			return nil
		},
	}
}
