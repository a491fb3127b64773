package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pattern-gateway/internal/logger"
	"pattern-gateway/proxy"
	"pattern-gateway/proxy/domain"
	"pattern-gateway/proxy/infra"
)

func proxyCmd() *cobra.Command {
	var limit int
	var prefixes []string
	var showStats bool

	c := &cobra.Command{
		Use:   "proxy",
		Short: "Run the web server (path filter) and SMS (rate limit) examples",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats := infra.NewMemoryStatsStore(infra.WithTrackKeys(true))
			out := cmd.OutOrStdout()

			if err := runWebServer(cmd.Context(), out, prefixes, stats); err != nil {
				return err
			}
			if err := runSMS(cmd.Context(), out, limit, stats); err != nil {
				return err
			}
			if showStats {
				t := stats.Total()
				fmt.Fprintf(out, "stats: forwarded=%d denied=%d limited=%d\n", t.Forwarded, t.Denied, t.Limited)
			}
			return nil
		},
	}

	c.Flags().IntVar(&limit, "limit", 3, "messages allowed per user")
	c.Flags().StringSliceVar(&prefixes, "prefix", []string{"/admin/"}, "forbidden path prefixes")
	c.Flags().BoolVar(&showStats, "stats", false, "print decision counters at the end")
	return c
}

func runWebServer(ctx context.Context, out io.Writer, prefixes []string, stats domain.StatsStore) error {
	h, err := proxy.NewPathFilteringHandler(proxy.WebServer{}, prefixes,
		proxy.WithStats(stats), proxy.WithLogger(logger.L()))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "================== Start of Web Server Example ==================")
	for _, path := range []string{"/home", "/admin/sensitive-data"} {
		fmt.Fprintln(out, h.Handle(ctx, domain.Request{Body: path}).Body)
	}
	fmt.Fprintln(out, "================== End of Web Server Example ==================")
	return nil
}

func runSMS(ctx context.Context, out io.Writer, limit int, stats domain.StatsStore) error {
	h, err := proxy.NewRateLimitedHandler(proxy.SMSService{}, limit,
		proxy.WithStats(stats), proxy.WithLogger(logger.L()))
	if err != nil {
		return err
	}

	msgs := []domain.Request{
		{User: "Alice", Body: "Hello, Alice!"},
		{User: "Alice", Body: "Message 2"},
		{User: "Alice", Body: "Message 3"},
		{User: "Alice", Body: "Message 4"},
		{User: "Bob", Body: "Hello, Bob!"},
	}

	fmt.Fprintln(out, "================== Start of SMS Limiter Example ==================")
	for _, m := range msgs {
		fmt.Fprintln(out, h.Handle(ctx, m).Body)
	}
	fmt.Fprintln(out, "================== End of SMS Limiter Example ==================")
	return nil
}
