package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/fetch"
	"github.com/jonathan/resume-studio/internal/generation"
	"github.com/jonathan/resume-studio/internal/llm"
)

var (
	generateJD         string
	generateJDURL      string
	generateUseBrowser bool
	generateConfig     string
	generateOut        string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate resume markdown from a job description",
	Long: `Generate structured resume markdown from a job description.
The job description is read from a file (--jd) or fetched from a posting URL (--jd-url).`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateJD, "jd", "", "Path to job description text file")
	generateCmd.Flags().StringVar(&generateJDURL, "jd-url", "", "URL of the job posting to fetch")
	generateCmd.Flags().BoolVar(&generateUseBrowser, "use-browser", false, "Use a headless browser for JavaScript-rendered postings")
	generateCmd.Flags().StringVar(&generateConfig, "config", "", "Path to JSON config file")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	jdPath := generateJD
	jdURL := generateJDURL
	useBrowser := generateUseBrowser
	apiKey := os.Getenv("GEMINI_API_KEY")

	if generateConfig != "" {
		cfg, err := config.LoadConfig(generateConfig)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		flags := config.Config{Job: jdPath, JobURL: jdURL, APIKey: apiKey}
		merged := flags.MergeWithDefaults(*cfg)
		jdPath = merged.Job
		jdURL = merged.JobURL
		apiKey = merged.APIKey
		if !useBrowser {
			useBrowser = cfg.UseBrowser
		}
	}

	if jdPath == "" && jdURL == "" {
		return fmt.Errorf("one of --jd or --jd-url is required")
	}
	if jdPath != "" && jdURL != "" {
		return fmt.Errorf("--jd and --jd-url are mutually exclusive")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := cmd.Context()

	jobDescription, err := loadJobDescription(ctx, jdPath, jdURL, useBrowser)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	markdown, err := generation.NewService(client).GenerateResume(ctx, jobDescription)
	if err != nil {
		return err
	}

	return writeOutput(generateOut, markdown)
}

// loadJobDescription reads the JD from a file or fetches it from a URL.
func loadJobDescription(ctx context.Context, path, url string, useBrowser bool) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}

	opts := fetch.DefaultOptions()
	opts.AllowBrowser = useBrowser
	result, err := fetch.JobPosting(ctx, url, opts)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// writeOutput writes content to a file, or stdout when path is empty.
func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
