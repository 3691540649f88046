package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/parsing"
	"github.com/jonathan/resume-studio/internal/schemas"
)

var (
	parseOut      string
	parseValidate bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume.md>",
	Short: "Parse resume markdown into a structured JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "Output file (default stdout)")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate the result against the resume document schema")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	doc := parsing.ParseResume(string(data))
	if !doc.HasContent() {
		fmt.Fprintln(os.Stderr, "Warning: no recognizable resume content found")
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if parseValidate {
		if err := schemas.ValidateResumeDocument(string(payload)); err != nil {
			return err
		}
	}

	return writeOutput(parseOut, string(payload))
}
