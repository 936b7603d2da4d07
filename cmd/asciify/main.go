// Command asciify converts Unicode text to a pure ASCII representation.
//
// With no arguments it reads stdin and writes the converted text to
// stdout. With file arguments it converts each file concurrently and
// writes <file>.ascii next to the input, or everything to stdout with
// --stdout. The stages subcommand prints the staged breakdown used by
// the conversion explainer.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/asciify/data"
	"github.com/az-ai-labs/asciify/translit"
)

const maxWorkers = 4

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "asciify:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		showStats bool
		toStdout  bool
	)

	cmd := &cobra.Command{
		Use:   "asciify [file ...]",
		Short: "Convert Unicode text to plain ASCII",
		Long: `Convert Unicode text to plain ASCII.

Typographic punctuation, currency signs and similar symbols are replaced
with ASCII equivalents, accents are stripped from letters, and everything
else above U+007F is removed. Whitespace and line endings are normalized.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return convertStream(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), showStats)
			}
			return convertFiles(args, toStdout, showStats, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVar(&showStats, "stats", false, "print character counts to stderr")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write converted files to stdout instead of <file>.ascii")

	cmd.AddCommand(newStagesCmd())
	return cmd
}

func convertStream(in io.Reader, out, errOut io.Writer, showStats bool) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	res := translit.ConvertWithStats(string(raw))
	fmt.Fprintln(out, res.ASCII)
	if showStats {
		printStats(errOut, "stdin", res.Stats)
	}
	return nil
}

func convertFiles(paths []string, toStdout, showStats bool, out, errOut io.Writer) error {
	type converted struct {
		path string
		res  translit.Result
		err  error
	}

	results := make([]converted, len(paths))

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(i int, p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			raw, err := os.ReadFile(filepath.Clean(p))
			if err != nil {
				results[i] = converted{path: p, err: fmt.Errorf("reading %s: %w", p, err)}
				return
			}
			res := translit.ConvertWithStats(string(raw))
			if !toStdout {
				if err := os.WriteFile(p+".ascii", []byte(res.ASCII+"\n"), 0o644); err != nil {
					results[i] = converted{path: p, err: fmt.Errorf("writing %s.ascii: %w", p, err)}
					return
				}
			}
			results[i] = converted{path: p, res: res}
		}(i, path)
	}
	wg.Wait()

	var (
		failed int
		total  translit.Stats
	)
	for _, c := range results {
		if c.err != nil {
			fmt.Fprintln(errOut, "asciify:", c.err)
			failed++
			continue
		}
		if toStdout {
			fmt.Fprintln(out, c.res.ASCII)
		}
		total.InChars += c.res.Stats.InChars
		total.OutChars += c.res.Stats.OutChars
		total.Removed += c.res.Stats.Removed
		if showStats {
			printStats(errOut, c.path, c.res.Stats)
		}
	}

	if showStats && len(paths) > 1 {
		printStats(errOut, "total", total)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

func printStats(w io.Writer, label string, s translit.Stats) {
	fmt.Fprintf(w, "%s: in=%d out=%d removed=%d\n", label, s.InChars, s.OutChars, s.Removed)
}

func newStagesCmd() *cobra.Command {
	var (
		sample string
		stage  int
	)

	cmd := &cobra.Command{
		Use:   "stages",
		Short: "Show each transformation stage for a sample text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sample == "" {
				sample = data.Sample
			}
			out := cmd.OutOrStdout()

			if stage >= 0 {
				res := translit.ApplyStage(stage, sample)
				fmt.Fprintf(out, "%s\n\n%s\n", res.Description, res.Text)
				return nil
			}

			for _, st := range translit.Stages() {
				res := translit.ApplyStage(st.Ordinal, sample)
				fmt.Fprintf(out, "--- %d. %s\n%s\n\n%s\n\n", st.Ordinal, st.Label, res.Description, res.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "", "text to run through the stages (default: built-in sample)")
	cmd.Flags().IntVar(&stage, "stage", -1, "show a single stage (0-6)")
	return cmd
}
