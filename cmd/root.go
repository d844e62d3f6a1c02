package cmd

import (
	"encoding/json"
	"fmt"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"repolens/code_searcher"
	contracts_searcher "repolens/code_searcher/contracts"
	"repolens/config"
	"repolens/constants/lipgloss"
	"repolens/context_detector"
	contracts_detector "repolens/context_detector/contracts"
	"repolens/logging"
	"repolens/repo_fetcher"
	contracts_fetcher "repolens/repo_fetcher/contracts"
)

// RootDependencies holds the wired collaborators shared by all subcommands.
type RootDependencies struct {
	Cwd      string
	Config   *config.Config
	Logger   *slog.Logger
	Client   contracts_fetcher.IRepoClient
	Fetcher  contracts_fetcher.IRepoFetcher
	Searcher contracts_searcher.ICodeSearcher
	Detector contracts_detector.IContextDetector
}

// rootCmd: repolens
var rootCmd = &cobra.Command{
	Use:   "repolens",
	Short: "Inspect GitHub repositories through the API without cloning them.",
	Long: `repolens reads GitHub repositories over the REST API instead of cloning them.
It can fetch a budgeted selection of the most useful files, search file contents
with a regular expression, and detect the technology stack of a local project so
that fetched examples match the caller's own languages.`,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flag("version").Changed {
			fmt.Println(config.DefaultConfig.Version)
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits on error.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

func init() {
	config.InitFlags(rootCmd)
}

// handleRootCommand loads configuration and wires the dependency graph for a subcommand.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	rootDependencies := &RootDependencies{}

	var err error
	rootDependencies.Cwd, err = os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, lipgloss.Red.Render(fmt.Sprintf("Error getting current working directory: %v", err)))
		os.Exit(1)
	}

	rootDependencies.Config = config.LoadConfigs(cmd.Root(), rootDependencies.Cwd)
	rootDependencies.Logger = logging.New()

	rootDependencies.Client = repo_fetcher.NewGitHubClient(
		rootDependencies.Config.GitHub.APIBaseURL,
		rootDependencies.Config.GitHub.RawBaseURL,
		rootDependencies.Config.GitHub.RequestTimeout(),
	)
	rootDependencies.Fetcher = repo_fetcher.NewFetcher(rootDependencies.Client, rootDependencies.Logger)
	rootDependencies.Searcher = code_searcher.NewCodeSearcher(rootDependencies.Fetcher, rootDependencies.Logger)
	rootDependencies.Detector = context_detector.NewContextDetector()

	return rootDependencies
}

// printResultJSON writes the result payload as indented JSON to stdout.
func printResultJSON(result interface{}) {
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		failWithJSONError("failed to encode result: %v", err)
	}
	fmt.Println(string(payload))
}

// failWithJSONError prints a single structured error payload to stderr and stops
// the process. Failures are always reported as one JSON object so callers never
// see a partial result.
func failWithJSONError(format string, args ...interface{}) {
	payload, _ := json.Marshal(map[string]string{"error": fmt.Sprintf(format, args...)})
	fmt.Fprintln(os.Stderr, string(payload))
	os.Exit(1)
}
