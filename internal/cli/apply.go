package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetimer/internal/cube"
	"github.com/SeamusWaldron/cubetimer/internal/notation"
	"github.com/SeamusWaldron/cubetimer/internal/scramble"
)

func newApplyCmd() *cobra.Command {
	var (
		plain   bool
		strict  bool
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "apply <moves...>",
		Short: "Apply moves to a solved cube and show the result",
		Long: `Apply a move sequence to a solved cube (white top, green front) and
print the resulting net.

Face letters are case-insensitive. Tokens that do not start with a face
letter are ignored unless --strict is set, which requires a valid scramble.`,
		Example: `  cubetimer apply "R U R' U'"
  cubetimer apply R U2 F --plain
  cubetimer apply --strict "R L R"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := strings.Join(args, " ")

			if strict {
				if err := scramble.Check(seq); err != nil {
					return err
				}
			}

			c := cube.New()
			if err := c.ApplyScramble(seq); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if explain {
				for _, tok := range notation.Tokenize(seq) {
					m, ok := notation.ParseToken(tok)
					if !ok {
						log.Debug().Str("token", tok).Msg("token has no description")
						fmt.Fprintf(out, "  %-3s (not a standard move)\n", tok)
						continue
					}
					fmt.Fprintf(out, "  %-3s %s\n", tok, notation.Describe(m))
				}
				fmt.Fprintln(out)
			}

			fmt.Fprint(out, renderNet(c, !plain))
			fmt.Fprintln(out)
			if c.IsSolved() {
				fmt.Fprintln(out, "Solved: yes")
			} else {
				fmt.Fprintln(out, "Solved: no")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print letters without colors")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject sequences that are not valid scrambles")
	cmd.Flags().BoolVar(&explain, "explain", false, "Describe each move before the net")

	return cmd
}
