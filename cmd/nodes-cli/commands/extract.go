package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fuzy112/v2ex-tui/lib/configutil"
	"github.com/fuzy112/v2ex-tui/lib/fetch"
	"github.com/fuzy112/v2ex-tui/lib/restyutil"
	"github.com/fuzy112/v2ex-tui/lib/scrapers/v2ex"

	"github.com/spf13/cobra"
)

type Config struct {
	SourceUrl  string `json:"source_url"`
	Output     string `json:"output"`
	UserAgent  string `json:"user_agent"`
	CurlBinary string `json:"curl_binary"`
	Favorites  int    `json:"favorites"`
}

var defaultConfig = Config{
	SourceUrl: v2ex.PlanesURL,
	Output:    "nodes.json",
	Favorites: 9,
}

var (
	extractOut       *string
	extractDebugHttp *bool
)

func init() {
	extractOut = extractCmd.Flags().String("out", "", "Override the output path from the config.")
	extractDebugHttp = extractCmd.Flags().Bool("debug-http", false, "Dump every HTTP exchange to .dev/resty/nodes.")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract [--out <path/to/nodes.json>]",
	Short: "Scrapes the node list from the planes page and writes nodes.json.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := configutil.ReadConfigOr("nodes.json5", defaultConfig)
		if err != nil {
			fatal("failed to read config", err)
		}
		output := cfg.Output
		if *extractOut != "" {
			output = *extractOut
		}

		var debugOutput restyutil.InstrumentOutput
		if *extractDebugHttp {
			debugOutput = restyutil.NewFilesystemOutput(".dev/resty/nodes")
		}

		httpFetcher, err := fetch.NewHttpFetcher(fetch.HttpOptions{
			UserAgent:   cfg.UserAgent,
			DebugOutput: debugOutput,
		})
		if err != nil {
			fatal("failed to initialize http client", err)
		}
		chain := fetch.Chain{
			httpFetcher,
			fetch.ProcessFetcher{Binary: cfg.CurlBinary},
		}

		t1 := time.Now()
		html, err := chain.Fetch(ctx, cfg.SourceUrl)
		if err != nil {
			fatal("failed to fetch planes page", err)
		}

		nodes, err := v2ex.ExtractNodes(ctx, html)
		if err != nil {
			fatal("failed to extract nodes", err)
		}

		fmt.Printf("Found %d nodes\n", len(nodes))
		fmt.Println()
		fmt.Printf("Favorite nodes (first %d):\n", cfg.Favorites)
		fmt.Println(v2ex.Summarize(nodes, cfg.Favorites))

		if err := v2ex.WriteNodes(output, nodes); err != nil {
			fatal("failed to write node list", err)
		}
		fmt.Printf("\nNode list saved to %s\n", output)

		slog.Info("extraction time", "seconds", time.Since(t1).Seconds())
	},
}
