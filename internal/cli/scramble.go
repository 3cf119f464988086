package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetimer/internal/scramble"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
)

func newScrambleCmd(a *app) *cobra.Command {
	var (
		kind     string
		length   int
		count    int
		seed     int64
		saveName string
	)

	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Generate scrambles",
		Long: `Generate WCA-style scrambles: no face is turned twice in a row and no
three consecutive moves share an axis.

Kinds: competition (20 moves), practice (15 moves), long (25 moves).`,
		Example: `  cubetimer scramble
  cubetimer scramble --kind practice --count 5
  cubetimer scramble --length 30 --seed 42
  cubetimer scramble --count 5 --save round-1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg

			k := cfg.Kind()
			if cmd.Flags().Changed("kind") {
				parsed, err := scramble.ParseKind(kind)
				if err != nil {
					return err
				}
				k = parsed
			}

			n := k.Length()
			if cmd.Flags().Changed("length") {
				if length < 0 {
					return fmt.Errorf("length must not be negative: %d", length)
				}
				n = length
			}

			c := cfg.Scramble.Count
			if cmd.Flags().Changed("count") {
				c = count
			}
			if c < 1 {
				return fmt.Errorf("count must be at least 1: %d", c)
			}

			opts := cfg.GeneratorOptions()
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}
			gen := scramble.New(opts)

			log.Debug().Str("kind", string(k)).Int("length", n).Int("count", c).Msg("generating scrambles")

			out := cmd.OutOrStdout()
			scrambles := make([]string, c)
			for i := range scrambles {
				scrambles[i] = gen.Generate(n)
				if c > 1 {
					fmt.Fprintf(out, "%d. %s\n", i+1, scrambles[i])
				} else {
					fmt.Fprintln(out, scrambles[i])
				}
			}

			if saveName == "" {
				return nil
			}

			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			id, err := storage.NewSetRepository(db).Create(saveName, string(k), scrambles)
			if err != nil {
				return fmt.Errorf("failed to save scramble set: %w", err)
			}
			fmt.Fprintf(out, "Saved %d scramble(s) as %q (%s)\n", c, saveName, id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Scramble kind ("+scramble.KindNames()+")")
	cmd.Flags().IntVarP(&length, "length", "n", 0, "Moves per scramble (overrides kind)")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of scrambles")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible output (0 = random)")
	cmd.Flags().StringVar(&saveName, "save", "", "Save the scrambles as a named set")

	return cmd
}
