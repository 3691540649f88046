package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/composing"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

var composeOut string

var composeCmd = &cobra.Command{
	Use:   "compose <resume.json>",
	Short: "Compose canonical resume markdown from a structured JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompose,
}

func init() {
	composeCmd.Flags().StringVarP(&composeOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	if err := schemas.ValidateResumeDocument(string(data)); err != nil {
		return err
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse document JSON: %w", err)
	}

	return writeOutput(composeOut, composing.ComposeMarkdown(doc))
}
