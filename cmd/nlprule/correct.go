package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCorrectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "correct [text...]",
		Short: "Rewrite text by applying the best replacement of every firing rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			rules, err := loadRules(cfg)
			if err != nil {
				return err
			}
			corrected, err := rules.Correct(text)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), corrected)
			return err
		},
	}
}
