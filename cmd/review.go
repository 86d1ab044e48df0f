package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/conceptswipe/internal/deck"
	"github.com/abhisek/conceptswipe/internal/gesture"
	"github.com/abhisek/conceptswipe/internal/ingest"
	"github.com/abhisek/conceptswipe/internal/session"
	"github.com/abhisek/conceptswipe/internal/share"
)

// errQuit ends a line-mode review before the deck is exhausted.
var errQuit = errors.New("review abandoned")

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Review a deck in line mode (no TUI)",
	Long: `Review cards one line at a time. Without a file the built-in deck is used.

Commands:
  a, accept    keep the card (swipe right)
  r, reject    skip the card (swipe left)
  s, save      save the card as a note (swipe up)
  dx,dy        release a drag at that vector, e.g. "140,-20"
  q            quit without a summary`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().String("export", "text", "Summary format: text, md, json or yaml")
	reviewCmd.Flags().StringP("output", "o", "", "Write the summary to a file instead of stdout")
}

func runReview(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("export")
	output, _ := cmd.Flags().GetString("output")
	exporter, err := share.NewExporter(format)
	if err != nil {
		return err
	}

	env, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cards := ingest.SampleCards()
	if len(args) == 1 {
		doc, err := env.open(args[0])
		if err != nil {
			return err
		}
		ing, err := env.ingester(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Ingesting %s...\n", doc.Name)
		if cards, err = ingest.Run(ctx, ing, doc); err != nil {
			return err
		}
	}

	cl, err := env.classifier()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rec, err := lineReview(ctx, cmd.InOrStdin(), out, cards, cl, env.logger)
	if errors.Is(err, errQuit) {
		fmt.Fprintln(out, "Review abandoned, nothing recorded.")
		return nil
	}
	if err != nil {
		return err
	}

	w := out
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}
	fmt.Fprintln(out)
	if err := exporter.Export(rec, w); err != nil {
		return fmt.Errorf("export summary: %w", err)
	}
	if output != "" {
		fmt.Fprintf(out, "Summary written to %s\n", output)
	}
	return nil
}

// lineReview runs a review over cards, reading one command per line from
// in. Classifications go through an Inbox consumed on its own goroutine.
func lineReview(ctx context.Context, in io.Reader, out io.Writer, cards []deck.Card, cl *gesture.Classifier, logger *slog.Logger) (*session.Record, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d, err := deck.New(cards)
	if err != nil {
		return nil, err
	}
	r, err := session.NewReview(d, session.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	inbox := session.NewInbox(r, d.Len())

	type result struct {
		rec *session.Record
		err error
	}
	done := make(chan result, 1)
	go func() {
		rec, err := inbox.Run(ctx)
		done <- result{rec, err}
	}()

	// The consumer resolves exactly one card per submission, so the
	// reader can track the position without touching the review.
	cards = d.Cards()
	scanner := bufio.NewScanner(in)
	quit := false
	for i := 0; i < len(cards); {
		printCard(out, cards[i], i+1, len(cards))
		fmt.Fprint(out, "\n[a]ccept [r]eject [s]ave, dx,dy or q: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			quit = true
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			quit = true
			break
		}
		c, ok, err := parseCommand(line, cl)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if !ok {
			fmt.Fprintln(out, "↩ Below threshold, card snaps back.")
			continue
		}
		if err := inbox.Submit(ctx, c); err != nil {
			return nil, err
		}
		fmt.Fprintln(out, feedback(c))
		i++
	}
	if quit {
		inbox.Close()
	}

	res := <-done
	if res.err != nil {
		r.Abort()
	}
	if errors.Is(res.err, session.ErrInboxClosed) {
		return nil, errQuit
	}
	return res.rec, res.err
}

// parseCommand turns one input line into a classification. A drag
// below the thresholds reports ok=false.
func parseCommand(line string, cl *gesture.Classifier) (gesture.Classification, bool, error) {
	if dx, dy, found := strings.Cut(line, ","); found {
		x, errX := strconv.ParseFloat(strings.TrimSpace(dx), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(dy), 64)
		if errX != nil || errY != nil {
			return 0, false, fmt.Errorf("invalid drag %q: want dx,dy", line)
		}
		c, ok := cl.OnDragEnd(gesture.DragVector{DX: x, DY: y})
		return c, ok, nil
	}
	c, err := gesture.ParseClassification(line)
	if err != nil {
		return 0, false, err
	}
	c, ok := gesture.Tap(c)
	return c, ok, nil
}

func printCard(w io.Writer, c deck.Card, n, total int) {
	fmt.Fprintf(w, "\n── Card %d/%d · %s · %s ──\n", n, total, c.Kind, c.Difficulty)
	fmt.Fprintln(w, c.Title)
	fmt.Fprintln(w, c.Body)
	if len(c.Tags) > 0 {
		fmt.Fprintln(w, hashTags(c.Tags))
	}
}

func feedback(c gesture.Classification) string {
	switch c {
	case gesture.Accept:
		return "❤️ Concept Grasped!"
	case gesture.Reject:
		return "⏭️ Skipped for later"
	default:
		return "📚 Saved as Note!"
	}
}
