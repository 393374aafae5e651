// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-tools/internal/tools"
)

type flagKind int

const (
	stringFlag flagKind = iota
	intFlag
	boolFlag
)

// toolFlag maps a CLI flag to a tool argument.
type toolFlag struct {
	name  string
	arg   string
	kind  flagKind
	usage string
}

// toolCommand describes the subcommand for one tool. Positional arguments
// are joined with sep and passed as the primary argument.
type toolCommand struct {
	use     string
	tool    string
	short   string
	primary string
	sep     string
	flags   []toolFlag
}

func limitFlag(def, hi int) toolFlag {
	return toolFlag{"limit", "limit", intFlag, fmt.Sprintf("number of results (default %d, max %d)", def, hi)}
}

var toolCommands = []toolCommand{
	{
		use: "search <query>", tool: "paper_search", primary: "query", sep: " ",
		short: "Search papers by keywords",
		flags: []toolFlag{
			limitFlag(10, 100),
			{"year", "year", stringFlag, "year or range, e.g. 2020 or 2018-2022"},
			{"fields-of-study", "fields_of_study", stringFlag, "comma-separated fields of study"},
			{"open-access-only", "open_access_only", boolFlag, "only papers with a public PDF"},
		},
	},
	{
		use: "title <title>", tool: "paper_title_search", primary: "title", sep: " ",
		short: "Find a paper by title",
		flags: []toolFlag{
			{"year", "year", intFlag, "publication year"},
		},
	},
	{
		use: "paper <paper-id>", tool: "paper_detail", primary: "paper_id", sep: " ",
		short: "Show full details of a paper",
		flags: []toolFlag{
			{"citations", "include_citations", boolFlag, "include up to 10 citing papers"},
			{"references", "include_references", boolFlag, "include up to 10 referenced papers"},
			{"format", "format", stringFlag, "output format: markdown, bibtex or csl"},
		},
	},
	{
		use: "papers <paper-id>...", tool: "papers_detail", primary: "paper_ids", sep: ",",
		short: "Show details for up to 20 papers",
	},
	{
		use: "citations <paper-id>", tool: "paper_citations", primary: "paper_id", sep: " ",
		short: "List papers citing a paper",
		flags: []toolFlag{limitFlag(20, 100)},
	},
	{
		use: "references <paper-id>", tool: "paper_references", primary: "paper_id", sep: " ",
		short: "List papers referenced by a paper",
		flags: []toolFlag{limitFlag(20, 100)},
	},
	{
		use: "recommend <paper-id>", tool: "paper_recommendations", primary: "paper_id", sep: " ",
		short: "Recommend papers similar to a paper",
		flags: []toolFlag{limitFlag(10, 100)},
	},
	{
		use: "author-search <name>", tool: "author_search", primary: "query", sep: " ",
		short: "Search authors by name",
		flags: []toolFlag{limitFlag(5, 20)},
	},
	{
		use: "author <author-id>", tool: "author_detail", primary: "author_id", sep: " ",
		short: "Show an author profile",
	},
	{
		use: "author-papers <author-id>", tool: "author_papers", primary: "author_id", sep: " ",
		short: "List papers by an author",
		flags: []toolFlag{limitFlag(20, 100)},
	},
	{
		use: "bulk <query>...", tool: "bulk_search", primary: "queries", sep: "\n",
		short: "Run up to 10 searches at once",
		flags: []toolFlag{
			{"limit", "limit_per_query", intFlag, "results per query (default 5, max 20)"},
		},
	},
}

func newToolCommand(tc toolCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   tc.use,
		Short: tc.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, tc, args)
		},
	}
	for _, f := range tc.flags {
		switch f.kind {
		case intFlag:
			cmd.Flags().Int(f.name, 0, f.usage)
		case boolFlag:
			cmd.Flags().Bool(f.name, false, f.usage)
		default:
			cmd.Flags().String(f.name, "", f.usage)
		}
	}
	return cmd
}

func runTool(cmd *cobra.Command, tc toolCommand, positional []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tool, ok := a.registry.Lookup(tc.tool)
	if !ok {
		return fmt.Errorf("unknown tool %s", tc.tool)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out, err := a.registry.Invoke(ctx, tool, collectArgs(cmd, tc, positional))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// collectArgs builds tool arguments from positional args and the flags the
// user set. Unset flags are omitted so the tool applies its own defaults.
func collectArgs(cmd *cobra.Command, tc toolCommand, positional []string) tools.Args {
	args := tools.Args{}
	if len(positional) > 0 {
		args[tc.primary] = strings.Join(positional, tc.sep)
	}
	for _, f := range tc.flags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		switch f.kind {
		case intFlag:
			v, _ := cmd.Flags().GetInt(f.name)
			args[f.arg] = v
		case boolFlag:
			v, _ := cmd.Flags().GetBool(f.name)
			args[f.arg] = v
		default:
			v, _ := cmd.Flags().GetString(f.name)
			args[f.arg] = v
		}
	}
	return args
}

func init() {
	for _, tc := range toolCommands {
		rootCmd.AddCommand(newToolCommand(tc))
	}
}
