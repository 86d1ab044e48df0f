package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/conceptswipe/internal/deck"
	"github.com/abhisek/conceptswipe/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>",
	Short: "Extract concept cards from a document and print them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, closer, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		doc, err := env.open(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		ing, err := env.ingester(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Ingesting %s (%d bytes)...\n", doc.Name, doc.Size)
		cards, err := ingest.Run(ctx, ing, doc)
		if err != nil {
			return err
		}
		printCards(cmd.OutOrStdout(), cards)
		return nil
	},
}

// printCards writes a numbered listing of cards.
func printCards(w io.Writer, cards []deck.Card) {
	sep := strings.Repeat("─", 60)
	for i, c := range cards {
		fmt.Fprintf(w, "%d. %s  [%s · %s]\n", i+1, c.Title, c.Kind, c.Difficulty)
		fmt.Fprintln(w, "   "+c.Body)
		if len(c.Tags) > 0 {
			fmt.Fprintln(w, "   "+hashTags(c.Tags))
		}
		if i < len(cards)-1 {
			fmt.Fprintln(w, sep)
		}
	}
	fmt.Fprintf(w, "\n%d cards\n", len(cards))
}

func hashTags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}
