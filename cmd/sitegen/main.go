package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Elementx07/gen-ai-hackathon/internal/config"
	"github.com/Elementx07/gen-ai-hackathon/internal/llm"
	"github.com/Elementx07/gen-ai-hackathon/internal/pipeline"
	"github.com/Elementx07/gen-ai-hackathon/internal/prompt"
	"github.com/Elementx07/gen-ai-hackathon/internal/storage"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "sitegen",
		Short: "AI-powered artisan website generator",
	}
	configPath      string
	descriptionFlag string
	descriptionFile string
	outputDir       string
	dryRun          bool
	runsLimit       int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")

	generateCmd.Flags().StringVarP(&descriptionFlag, "description", "d", "", "Business description text")
	generateCmd.Flags().StringVarP(&descriptionFile, "file", "f", "", "Read the business description from a file")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "generated-site", "Output directory for the site source tree")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Skip the preview hint after generation")

	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 10, "Number of runs to list")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(runsCmd)
}

// progressPrinter reports step completion on stdout.
type progressPrinter struct{}

func (progressPrinter) OnStep(index, total int, label string) {
	fmt.Printf("  [%d/%d] %s\n", index, total, label)
}

func readDescription() (string, error) {
	if descriptionFlag != "" {
		return descriptionFlag, nil
	}
	if descriptionFile != "" {
		data, err := os.ReadFile(descriptionFile)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}
	return "", fmt.Errorf("a business description is required: pass --description or --file")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a static-site source tree from a business description",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		description, err := readDescription()
		if err != nil {
			log.Fatalf("%v", err)
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if cfg.AI.APIKey == "" {
			log.Fatalf("AI API key not configured. Set SITEGEN_API_KEY or ai.api_key in %s.", configPath)
		}

		client, err := llm.NewClient(ctx, llm.ClientOptions{
			Provider: cfg.AI.Provider,
			APIKey:   cfg.AI.APIKey,
			Model:    cfg.AI.Model,
			BaseURL:  cfg.AI.BaseURL,
		})
		if err != nil {
			log.Fatalf("Failed to create completion client: %v", err)
		}

		orch := pipeline.NewOrchestrator(client, prompt.NewRegistry(), pipeline.FSWriter{})
		orch.MaxTokens = cfg.AI.MaxTokens
		orch.Temperature = cfg.AI.Temperature

		fmt.Printf("🚀 Generating website into %s ...\n", outputDir)
		result, err := orch.Run(ctx, description, outputDir, progressPrinter{})
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}

		recordRun(ctx, cfg.Output.DBPath, description, result)

		failed := result.Failed()
		fmt.Printf("📊 %d/%d artifacts generated.\n", result.SucceededCount(), len(result.Steps))
		if len(failed) > 0 {
			fmt.Println("⚠️  Failed artifacts:")
			for _, f := range failed {
				if f.SidecarPath != "" {
					fmt.Printf("  - %s (%s), raw response: %s\n", f.Name, f.Path, f.SidecarPath)
				} else {
					fmt.Printf("  - %s (%s): %v\n", f.Name, f.Path, f.Err)
				}
			}
		} else {
			fmt.Println("✅ All artifacts generated.")
		}
		if !dryRun {
			fmt.Printf("🎉 Website generated at: %s\n", outputDir)
		}
	},
}

// recordRun persists run history; failures here never fail the run.
func recordRun(ctx context.Context, dbPath, description string, result *pipeline.RunResult) {
	store, err := storage.NewStore(dbPath)
	if err != nil {
		log.Printf("warning: run history unavailable: %v", err)
		return
	}
	defer store.Close()

	run := storage.RunRecord{
		ID:          result.RunID,
		Description: description,
		OutputDir:   result.OutputRoot,
		Status:      result.Status(),
		StepCount:   len(result.Steps),
		Succeeded:   result.SucceededCount(),
		Failed:      len(result.Failed()),
	}
	steps := make([]storage.StepRecord, 0, len(result.Steps))
	for _, s := range result.Steps {
		rec := storage.StepRecord{
			RunID:    result.RunID,
			Name:     s.Name,
			Path:     s.Path,
			Status:   "ok",
			Attempts: s.Attempts,
			Sidecar:  s.SidecarPath,
		}
		if !s.Succeeded {
			rec.Status = "error"
			if s.Err != nil {
				rec.Error = s.Err.Error()
			}
		}
		steps = append(steps, rec)
	}
	if err := store.SaveRun(ctx, run, steps); err != nil {
		log.Printf("warning: failed to record run: %v", err)
	}
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent generation runs",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		store, err := storage.NewStore(cfg.Output.DBPath)
		if err != nil {
			log.Fatalf("Failed to open run history: %v", err)
		}
		defer store.Close()

		runs, err := store.ListRuns(ctx, runsLimit)
		if err != nil {
			log.Fatalf("Failed to list runs: %v", err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return
		}
		for _, r := range runs {
			desc := r.Description
			if len(desc) > 60 {
				desc = desc[:60] + "..."
			}
			fmt.Printf("%s  %s  %d/%d ok  %s  %q\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.Status, r.Succeeded, r.StepCount, r.OutputDir, desc)
		}
	},
}
