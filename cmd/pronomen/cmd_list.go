package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pronomen/pkg/catalog"
	"github.com/goliatone/go-pronomen/pkg/pronouns"
)

func newListCmd(a *app) *cobra.Command {
	var onlyTexts, onlySets bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog texts and pronoun sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !onlySets {
				listTexts(out, cat)
			}
			if !onlyTexts {
				listSets(out, cat)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&onlyTexts, "texts", false, "Only list texts")
	cmd.Flags().BoolVar(&onlySets, "sets", false, "Only list pronoun sets")

	return cmd
}

func listTexts(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(w, "Texte:")
	for _, text := range cat.Texts() {
		note := ""
		if text.IsDeclensions() {
			note = " (Deklinationstabelle)"
		}
		fmt.Fprintf(w, "  %-12s %s%s\n", text.Key, text.Title, note)
	}
}

func listSets(w io.Writer, cat *catalog.Catalog) {
	var groups []string
	byGroup := map[string][]*pronouns.Set{}
	for _, set := range cat.Sets() {
		if _, seen := byGroup[set.Group]; !seen {
			groups = append(groups, set.Group)
		}
		byGroup[set.Group] = append(byGroup[set.Group], set)
	}

	for _, group := range groups {
		fmt.Fprintf(w, "%s:\n", group)
		for _, set := range byGroup[group] {
			fmt.Fprintf(w, "  %s\n", set.Label)
		}
	}
}
