package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/Qeenon/nlprule"
)

type tokenOut struct {
	Text   string     `json:"text"`
	Start  int        `json:"start"`
	End    int        `json:"end"`
	Lemmas []string   `json:"lemmas"`
	Tags   []string   `json:"tags"`
	Chunks []string   `json:"chunks"`
	Data   [][]string `json:"data"`
}

func newTokenizeCmd() *cobra.Command {
	var perSentence bool

	cmd := &cobra.Command{
		Use:   "tokenize [text...]",
		Short: "Print finalized tokens for a text as JSON",
		Long: "Print finalized tokens for a text as JSON. Token spans are codepoint\n" +
			"offsets into the sentence each token came from; with --sentence the\n" +
			"input is treated as a single pre-split sentence.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			tokenizer, err := loadTokenizer(cfg)
			if err != nil {
				return err
			}

			var tokens []tokenOut
			if perSentence {
				tokens = convertTokens(tokenizer.TokenizeSentence(text))
			} else {
				ts, err := tokenizer.Tokenize(text)
				if err != nil {
					return err
				}
				tokens = convertTokens(ts)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tokens)
		},
	}

	cmd.Flags().BoolVar(&perSentence, "sentence", false, "Treat the input as one sentence (no splitter)")
	return cmd
}

func convertTokens(tokens []nlprule.Token) []tokenOut {
	out := make([]tokenOut, 0, len(tokens))
	for _, t := range tokens {
		start, end := t.Span()
		data := make([][]string, 0, len(t.Data()))
		for _, wd := range t.Data() {
			data = append(data, []string{wd.Lemma, wd.POS})
		}
		out = append(out, tokenOut{
			Text:   t.Text(),
			Start:  start,
			End:    end,
			Lemmas: t.Lemmas(),
			Tags:   t.Tags(),
			Chunks: t.Chunks(),
			Data:   data,
		})
	}
	return out
}
