package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetimer/internal/scramble"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
)

func newSetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "Manage saved scramble sets",
		Long: `Saved scramble sets can be listed, shown, exported one scramble per line
and imported back. Imports are checked scramble by scramble; a file with any
invalid scramble is rejected as a whole.`,
	}

	cmd.AddCommand(
		newSetsListCmd(a),
		newSetsShowCmd(a),
		newSetsExportCmd(a),
		newSetsImportCmd(a),
		newSetsDeleteCmd(a),
	)
	return cmd
}

// withSets opens the database for the duration of fn.
func (a *app) withSets(fn func(*storage.SetRepository) error) error {
	db, err := a.openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(storage.NewSetRepository(db))
}

// findSet looks a set up by name, then by ID.
func findSet(repo *storage.SetRepository, ref string) (*storage.ScrambleSet, error) {
	set, err := repo.GetByName(ref)
	if errors.Is(err, storage.ErrNotFound) {
		return repo.Get(ref)
	}
	return set, err
}

func newSetsListCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved scramble sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSets(func(repo *storage.SetRepository) error {
				sets, err := repo.List(limit)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(sets) == 0 {
					fmt.Fprintln(out, "No scramble sets")
					return nil
				}
				for _, s := range sets {
					fmt.Fprintf(out, "%-20s %-12s %3d  %s  %s\n",
						s.Name, s.Kind, s.Count, s.CreatedAt.Local().Format(time.DateTime), s.SetID)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of sets to list")
	return cmd
}

func newSetsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|id>",
		Short: "Show the scrambles of a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSets(func(repo *storage.SetRepository) error {
				set, err := findSet(repo, args[0])
				if err != nil {
					return err
				}
				scrambles, err := repo.Scrambles(set.SetID)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%s, %d scrambles)\n", set.Name, set.Kind, set.Count)
				for i, s := range scrambles {
					fmt.Fprintf(out, "%d. %s\n", i+1, s)
				}
				return nil
			})
		},
	}
}

func newSetsExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <name|id>",
		Short: "Export a set as one scramble per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSets(func(repo *storage.SetRepository) error {
				set, err := findSet(repo, args[0])
				if err != nil {
					return err
				}
				scrambles, err := repo.Scrambles(set.SetID)
				if err != nil {
					return err
				}

				var w io.Writer = cmd.OutOrStdout()
				if output != "" {
					f, err := os.Create(output)
					if err != nil {
						return fmt.Errorf("failed to create output file: %w", err)
					}
					defer f.Close()
					w = f
				}

				for _, s := range scrambles {
					if _, err := fmt.Fprintln(w, s); err != nil {
						return fmt.Errorf("failed to write scramble: %w", err)
					}
				}
				log.Debug().Str("set", set.Name).Int("scrambles", len(scrambles)).Msg("exported scramble set")
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func newSetsImportCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "import <name> [file]",
		Short: "Import scrambles from a file or stdin",
		Long: `Import one scramble per non-blank line. Every scramble is validated and
the import is rejected if any line is invalid.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := scramble.ParseKind(kind)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if len(args) == 2 && args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("failed to open import file: %w", err)
				}
				defer f.Close()
				r = f
			}

			lines, err := readLines(r)
			if err != nil {
				return fmt.Errorf("failed to read scrambles: %w", err)
			}

			return a.withSets(func(repo *storage.SetRepository) error {
				id, err := repo.Create(args[0], string(k), lines)
				if err != nil {
					log.Debug().Err(err).Str("set", args[0]).Msg("import rejected")
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d scramble(s) as %q (%s)\n", len(lines), args[0], id)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", string(scramble.KindCompetition), "Kind recorded for the set ("+scramble.KindNames()+")")
	return cmd
}

func newSetsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name|id>",
		Short: "Delete a saved set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSets(func(repo *storage.SetRepository) error {
				set, err := findSet(repo, args[0])
				if err != nil {
					return err
				}
				if err := repo.Delete(set.SetID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", set.Name)
				return nil
			})
		},
	}
}
