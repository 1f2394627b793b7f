package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/freeride/internal/cache"
)

func cacheCmd(g *globalFlags) *cobra.Command {
	var path string

	c := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the solution cache",
	}
	c.PersistentFlags().StringVar(&path, "cache", "", "SQLite solution cache file (defaults to cache_path from config)")

	open := func(cmd *cobra.Command) (*cache.Store, func(), error) {
		cfg, cleanup, err := loadSession(cmd, g)
		if err != nil {
			return nil, nil, err
		}
		if cmd.Flags().Changed("cache") {
			cfg.CachePath = path
		}
		if cfg.CachePath == "" {
			cleanup()
			return nil, nil, fmt.Errorf("no cache configured (set --cache or cache_path)")
		}
		store, err := cache.Open(cfg.CachePath)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		return store, func() { _ = store.Close(); cleanup() }, nil
	}

	c.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Print the number of cached solutions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, done, err := open(cmd)
			if err != nil {
				return err
			}
			defer done()

			n, err := store.Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Remove every cached solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, done, err := open(cmd)
			if err != nil {
				return err
			}
			defer done()

			n, err := store.Purge(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached solution(s)\n", n)
			return nil
		},
	})

	return c
}
