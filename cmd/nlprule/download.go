package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Qeenon/nlprule"
	"github.com/Qeenon/nlprule/internal/fetch"
)

func newDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Prefetch the tokenizer and rules artifacts into the cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			var opts []fetch.Option
			if cfg.Paths.CacheDir != "" {
				opts = append(opts, fetch.WithCacheDir(cfg.Paths.CacheDir))
			}
			client := fetch.New(nlprule.Version, opts...)
			for _, name := range []string{nlprule.TokenizerName, nlprule.RulesName} {
				data, err := client.Fetch(cfg.Language, name)
				if err != nil {
					return err
				}
				path := client.CachePath(cfg.Language, name)
				if path == "" {
					path = "(caching disabled)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "fetched %s/%s (%d bytes) -> %s\n",
					cfg.Language, name, len(data), path)
			}
			return nil
		},
	}
}
