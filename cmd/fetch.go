package cmd

import (
	"context"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"repolens/repo_fetcher/models"
	"repolens/utils"
	"strings"
)

// defaultContextDepth bounds the local project scan used by 'auto' context
// detection.
const defaultContextDepth = 3

// fetchCmd: repolens fetch
var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Fetch the most useful files of a GitHub repository through the API.",
	Long: `The 'fetch' subcommand reads a repository tree over the GitHub API, selects
the most useful files under a fixed budget (key files first, then example files,
then query matches), retrieves their contents, and prints one structured JSON
document. Use --context to bias example selection toward file extensions from
your own project, or --context auto to detect them from a local directory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		handleFetchCommand(rootDependencies, cmd, args[0])
	},
}

func init() {
	fetchCmd.Flags().String("branch", "main", "Branch to fetch.")
	fetchCmd.Flags().StringP("query", "q", "", "Search pattern to find relevant files.")
	fetchCmd.Flags().StringSliceP("files", "f", nil, "Specific files to fetch.")
	fetchCmd.Flags().Int("max-files", 10, "Maximum files to fetch.")
	fetchCmd.Flags().Bool("tree-only", false, "Only fetch the tree structure, no file contents.")
	fetchCmd.Flags().Bool("no-examples", false, "Skip prioritizing example files.")
	fetchCmd.Flags().String("context", "", "File extensions to prioritize (e.g., '.py,.tsx') or 'auto' to detect from a local directory.")
	fetchCmd.Flags().String("context-dir", ".", "Directory to detect context from.")
	fetchCmd.Flags().Bool("pretty", false, "Render a highlighted human-readable report instead of raw JSON.")
	rootCmd.AddCommand(fetchCmd)
}

func handleFetchCommand(rootDependencies *RootDependencies, cmd *cobra.Command, url string) {
	ctx := context.Background()

	branch, _ := cmd.Flags().GetString("branch")
	query, _ := cmd.Flags().GetString("query")
	files, _ := cmd.Flags().GetStringSlice("files")
	maxFiles, _ := cmd.Flags().GetInt("max-files")
	treeOnly, _ := cmd.Flags().GetBool("tree-only")
	noExamples, _ := cmd.Flags().GetBool("no-examples")
	contextValue, _ := cmd.Flags().GetString("context")
	contextDir, _ := cmd.Flags().GetString("context-dir")
	pretty, _ := cmd.Flags().GetBool("pretty")

	request := &models.FetchRequest{
		URL:               url,
		Branch:            branch,
		Query:             query,
		Files:             files,
		MaxFiles:          maxFiles,
		IncludeExamples:   !noExamples,
		ContextExtensions: resolveContextExtensions(rootDependencies, contextValue, contextDir),
	}

	if treeOnly {
		snapshot, err := rootDependencies.Fetcher.FetchTreeOnly(ctx, request)
		if err != nil {
			failWithJSONError("%v", err)
		}
		printResultJSON(snapshot)
		return
	}

	var spinner *pterm.SpinnerPrinter
	if pretty {
		spinner, _ = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithRemoveWhenDone(true).Start("Fetching repository...")
	}

	result, err := rootDependencies.Fetcher.FetchRepo(ctx, request)

	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		failWithJSONError("%v", err)
	}

	if pretty {
		if err := utils.RenderFetchResult(result, rootDependencies.Config.Theme); err != nil {
			failWithJSONError("failed to render result: %v", err)
		}
		return
	}
	printResultJSON(result)
}

// resolveContextExtensions turns the --context flag into an extension list.
// 'auto' scans a local directory; anything else is parsed as a comma-separated
// list with surrounding whitespace stripped.
func resolveContextExtensions(rootDependencies *RootDependencies, contextValue, contextDir string) []string {
	if contextValue == "" {
		return nil
	}

	if strings.EqualFold(contextValue, "auto") {
		projectContext := rootDependencies.Detector.DetectProjectContext(contextDir, defaultContextDepth)
		return projectContext.Extensions
	}

	parts := strings.Split(contextValue, ",")
	extensions := make([]string, 0, len(parts))
	for _, part := range parts {
		extensions = append(extensions, strings.TrimSpace(part))
	}
	return extensions
}
