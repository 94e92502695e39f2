package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Qeenon/nlprule"
	"github.com/Qeenon/nlprule/internal/config"
)

// buildSplitter constructs the sentence splitter from config.
func buildSplitter(cfg config.Config) (nlprule.SentenceSplitter, error) {
	return nlprule.NewSplitOn(cfg.Text.SplitChars)
}

// loadOptions translates the config's cache settings into load options.
func loadOptions(cfg config.Config) []nlprule.LoadOption {
	var opts []nlprule.LoadOption
	if cfg.Paths.CacheDir != "" {
		opts = append(opts, nlprule.WithCacheDir(cfg.Paths.CacheDir))
	}
	return opts
}

// loadTokenizer resolves the tokenizer from a local path when configured,
// otherwise by language code through the artifact cache.
func loadTokenizer(cfg config.Config) (*nlprule.Tokenizer, error) {
	splitter, err := buildSplitter(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Paths.TokenizerPath != "" {
		return nlprule.NewTokenizer(cfg.Paths.TokenizerPath, splitter)
	}
	return nlprule.LoadTokenizer(cfg.Language, splitter, loadOptions(cfg)...)
}

// loadRules resolves the rules artifact and binds it to a freshly loaded
// tokenizer.
func loadRules(cfg config.Config) (*nlprule.Rules, error) {
	tokenizer, err := loadTokenizer(cfg)
	if err != nil {
		return nil, err
	}
	splitter, err := buildSplitter(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Paths.RulesPath != "" {
		return nlprule.NewRules(cfg.Paths.RulesPath, tokenizer, splitter)
	}
	return nlprule.LoadRules(cfg.Language, tokenizer, splitter, loadOptions(cfg)...)
}

func readAll(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
