package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-pronomen/pkg/engine"
	"github.com/goliatone/go-pronomen/pkg/session"
)

type renderFlags struct {
	names      []string
	salutation string
	text       string
	pronouns   []string
	mode       string
	markers    string
	output     string
	randomText bool
	reruns     int
}

func newRenderCmd(a *app) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one text and print the HTML fragment",
		Example: `  pronomen render --name "Kim Berg, Alex" --pronoun sie/ihr --pronoun dey/denen
  pronomen render --text letter --salutation Frau --name "Jo Weber" --markers off
  pronomen render --random-text --mode each -o out.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, a, flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.names, "name", "n", nil, "Name entry, may list several names separated by commas (repeatable)")
	cmd.Flags().StringVar(&flags.salutation, "salutation", "", "Salutation used by [Anrede] tokens")
	cmd.Flags().StringVarP(&flags.text, "text", "t", "", "Text key (see pronomen list)")
	cmd.Flags().StringSliceVarP(&flags.pronouns, "pronoun", "p", nil, "Pronoun set label (repeatable; default: one random set)")
	cmd.Flags().StringVarP(&flags.mode, "mode", "m", "", "Randomization mode: single or each")
	cmd.Flags().StringVar(&flags.markers, "markers", "", "Marker mode: interactive, plain or off")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().BoolVar(&flags.randomText, "random-text", false, "Pick a random text instead of --text")
	cmd.Flags().IntVar(&flags.reruns, "rerun", 0, "Rerun the single-mode draw this many times, printing each result")

	return cmd
}

func runRender(cmd *cobra.Command, a *app, flags *renderFlags) error {
	markers, err := engine.ParseMarkerMode(pick(flags.markers, a.cfg.Markers))
	if err != nil {
		return err
	}
	mode, err := engine.ParseMode(pick(flags.mode, a.cfg.Mode))
	if err != nil {
		return err
	}

	s, err := a.session(markers)
	if err != nil {
		return err
	}

	in := session.Input{
		Names:      flags.names,
		Salutation: pick(flags.salutation, a.cfg.Salutation),
		TextKey:    pick(flags.text, a.cfg.Text),
		Pronouns:   flags.pronouns,
		Mode:       mode,
	}
	if flags.randomText {
		key, err := s.RandomText(in.TextKey)
		if err != nil {
			return err
		}
		in.TextKey = key
	}

	out, err := s.Generate(in)
	if err != nil {
		return err
	}
	fragments := []string{out.HTML}
	for i := 0; i < flags.reruns; i++ {
		next, err := s.Rerun(in)
		if err != nil {
			return err
		}
		fragments = append(fragments, next.HTML)
	}

	a.logger.Debug("Rendered",
		zap.String("text", out.Text.Key),
		zap.String("mode", string(out.Mode)),
		zap.Int("fragments", len(fragments)),
	)

	return writeOutput(cmd.OutOrStdout(), flags.output, fragments)
}

func writeOutput(stdout io.Writer, path string, fragments []string) error {
	var w io.Writer = stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		defer f.Close()
		w = f
	}

	for _, fragment := range fragments {
		if _, err := fmt.Fprintln(w, fragment); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if path != "" {
		fmt.Fprintf(stdout, "Output written to %s\n", path)
	}
	return nil
}

func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
