package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newCacheCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the response cache",
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			st := a.Cache.Stats()
			lastSaved := "never"
			if !st.LastSaved.IsZero() {
				lastSaved = st.LastSaved.Format(time.DateTime)
			}
			maxSize := "unbounded"
			if st.MaxSize > 0 {
				maxSize = fmt.Sprintf("%d", st.MaxSize)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Backend:\t%s\n", st.Backend)
			fmt.Fprintf(w, "Entries:\t%d\n", st.Entries)
			fmt.Fprintf(w, "Max size:\t%s\n", maxSize)
			fmt.Fprintf(w, "Expiry:\t%s\n", st.Expiry)
			fmt.Fprintf(w, "Last saved:\t%s\n", lastSaved)
			return w.Flush()
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if err := a.Cache.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All cache entries cleared.")
			return nil
		},
	}

	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove expired cached answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			n := a.Cache.PurgeExpired(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired entries.\n", n)
			return nil
		},
	}

	cmd.AddCommand(statsCmd, clearCmd, purgeCmd)
	return cmd
}
