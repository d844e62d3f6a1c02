package cmd

import (
	"context"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"repolens/code_searcher/models"
	"repolens/utils"
)

// searchCmd: repolens search
var searchCmd = &cobra.Command{
	Use:   "search [url] [pattern]",
	Short: "Search file contents of a GitHub repository with a regular expression.",
	Long: `The 'search' subcommand fetches a bounded set of files from a repository and
scans their contents line by line with a case-insensitive regular expression.
Each match is reported with its file, line number, and surrounding context
lines, together with aggregate statistics.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		handleSearchCommand(rootDependencies, cmd, args[0], args[1])
	},
}

func init() {
	searchCmd.Flags().String("branch", "main", "Branch to search.")
	searchCmd.Flags().String("files", "", "File pattern to limit the search (regex).")
	searchCmd.Flags().Int("max-files", 20, "Maximum files to search.")
	searchCmd.Flags().Int("context", 3, "Context lines around matches.")
	searchCmd.Flags().Bool("pretty", false, "Render a highlighted human-readable report instead of raw JSON.")
	rootCmd.AddCommand(searchCmd)
}

func handleSearchCommand(rootDependencies *RootDependencies, cmd *cobra.Command, url, pattern string) {
	ctx := context.Background()

	branch, _ := cmd.Flags().GetString("branch")
	filePattern, _ := cmd.Flags().GetString("files")
	maxFiles, _ := cmd.Flags().GetInt("max-files")
	contextLines, _ := cmd.Flags().GetInt("context")
	pretty, _ := cmd.Flags().GetBool("pretty")

	request := &models.SearchRequest{
		URL:          url,
		Branch:       branch,
		Pattern:      pattern,
		FilePattern:  filePattern,
		MaxFiles:     maxFiles,
		ContextLines: contextLines,
	}

	var spinner *pterm.SpinnerPrinter
	if pretty {
		spinner, _ = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithRemoveWhenDone(true).Start("Searching repository...")
	}

	result, err := rootDependencies.Searcher.SearchRepository(ctx, request)

	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		failWithJSONError("%v", err)
	}

	if pretty {
		if err := utils.RenderSearchResult(result, rootDependencies.Config.Theme); err != nil {
			failWithJSONError("failed to render result: %v", err)
		}
		return
	}
	printResultJSON(result)
}
