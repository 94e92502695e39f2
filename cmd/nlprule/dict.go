package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Qeenon/nlprule/internal/customdict"
)

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage the redis-backed personal dictionary",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <word>",
		Short: "Add a word to the personal dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := openDict()
			if err != nil {
				return err
			}
			defer dict.Close()
			return dict.Add(cmd.Context(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <word>",
		Short: "Remove a word from the personal dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := openDict()
			if err != nil {
				return err
			}
			defer dict.Close()
			return dict.Remove(cmd.Context(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the personal dictionary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dict, err := openDict()
			if err != nil {
				return err
			}
			defer dict.Close()
			words, err := dict.All(cmd.Context())
			if err != nil {
				return err
			}
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	})

	return cmd
}

func openDict() (*customdict.Dict, error) {
	cfg, err := requireConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Server.RedisAddr == "" {
		return nil, fmt.Errorf("server.redis_addr must be set to use the personal dictionary")
	}
	return customdict.New(cfg.Server.RedisAddr), nil
}
