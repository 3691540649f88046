package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/composing"
	"github.com/jonathan/resume-studio/internal/parsing"
	"github.com/jonathan/resume-studio/internal/rendering"
)

var (
	renderOut      string
	renderFullPage bool
)

var renderCmd = &cobra.Command{
	Use:   "render <resume.md>",
	Short: "Render resume markdown to HTML",
	Long: `Render resume markdown to preview HTML.
With --full-page the output is a standalone print document with page styling.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default stdout)")
	renderCmd.Flags().BoolVar(&renderFullPage, "full-page", false, "Emit a standalone print document")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	markdown := composing.Sanitize(string(data))

	if renderFullPage {
		title := parsing.ParseResume(string(data)).Profile.Name
		doc, err := rendering.PrintDocument(markdown, title)
		if err != nil {
			return err
		}
		return writeOutput(renderOut, doc)
	}

	return writeOutput(renderOut, rendering.RenderHTML(markdown))
}
