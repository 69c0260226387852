package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pronomen/pkg/engine"
	"github.com/goliatone/go-pronomen/pkg/prompt"
)

func newInteractiveCmd(a *app) *cobra.Command {
	var markers string

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Ask for names, text and pronouns, then render and rerun",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := engine.ParseMarkerMode(pick(markers, a.cfg.Markers))
			if err != nil {
				return err
			}
			s, err := a.session(mode)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err = prompt.Run(cmd.Context(), prompt.NewSurveyDriver(out), s, out)
			if errors.Is(err, prompt.ErrAborted) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&markers, "markers", "", "Marker mode: interactive, plain or off")

	return cmd
}
