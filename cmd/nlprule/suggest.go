package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

type suggestionOut struct {
	Start        int      `json:"start"`
	End          int      `json:"end"`
	Replacements []string `json:"replacements"`
}

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [text...]",
		Short: "Print the suggestions for a text as JSON",
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
			suggestions, err := rules.Suggest(text)
			if err != nil {
				return err
			}

			out := make([]suggestionOut, 0, len(suggestions))
			for _, s := range suggestions {
				out = append(out, suggestionOut{
					Start:        s.Start(),
					End:          s.End(),
					Replacements: s.Replacements(),
				})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
