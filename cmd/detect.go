package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"strings"
)

// detectCmd: repolens detect
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the languages and frameworks of a local project directory.",
	Long: `The 'detect' subcommand scans a local project directory for language and
framework indicators (marker files, source extensions, dependency manifests)
and prints the detected context. The extension list it produces is the same
one 'fetch --context auto' uses to bias example selection.`,
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		handleDetectCommand(rootDependencies, cmd)
	},
}

func init() {
	detectCmd.Flags().String("dir", ".", "Project directory to analyze.")
	detectCmd.Flags().Int("max-depth", defaultContextDepth, "Maximum directory depth to scan.")
	detectCmd.Flags().Bool("extensions-only", false, "Output only the comma-separated file extensions.")
	rootCmd.AddCommand(detectCmd)
}

func handleDetectCommand(rootDependencies *RootDependencies, cmd *cobra.Command) {
	dir, _ := cmd.Flags().GetString("dir")
	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	extensionsOnly, _ := cmd.Flags().GetBool("extensions-only")

	projectContext := rootDependencies.Detector.DetectProjectContext(dir, maxDepth)

	if extensionsOnly {
		fmt.Println(strings.Join(projectContext.Extensions, ","))
		return
	}
	printResultJSON(projectContext)
}
