package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"article_pipeline/internal/domain"
	"article_pipeline/internal/scheduler"
	"article_pipeline/internal/service"
)

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	var paramsPath, outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one article from a parameters file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			params, err := loadParams(paramsPath)
			if err != nil {
				return err
			}

			a, err := loadApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			pipeline, err := a.pipeline(ctx)
			if err != nil {
				return err
			}

			article, err := pipeline.Generate(ctx, params)
			if err != nil {
				stage, _ := domain.FailedStage(err)
				a.logger.Error("generation failed", "stage", stage, "error", err)
				return err
			}

			return writeJSON(cmd.OutOrStdout(), outPath, article)
		},
	}

	cmd.Flags().StringVarP(&paramsPath, "params", "p", "params.yaml", "generation parameters (YAML)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the article JSON to this file instead of stdout")
	return cmd
}

func newBatchCmd(flags *rootFlags) *cobra.Command {
	var (
		paramsPath, outPath string
		count               int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate several articles on one topic, each from a different angle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("--count must not be negative, got %d", count)
			}

			ctx := cmd.Context()

			params, err := loadParams(paramsPath)
			if err != nil {
				return err
			}

			a, err := loadApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			pipeline, err := a.pipeline(ctx)
			if err != nil {
				return err
			}

			batch := service.NewBatch(pipeline, a.batchPolicy(), a.logger)
			articles, err := batch.Run(ctx, params.Topic, params, count, func(completed, total int, percent float64) {
				a.logger.Info("batch progress", "completed", completed, "total", total, "percent", fmt.Sprintf("%.1f", percent))
			})
			if writeErr := writeJSON(cmd.OutOrStdout(), outPath, articles); writeErr != nil {
				return writeErr
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&paramsPath, "params", "p", "params.yaml", "generation parameters (YAML)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the articles JSON to this file instead of stdout")
	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of articles to generate")
	return cmd
}

func newInsightsCmd(flags *rootFlags) *cobra.Command {
	var (
		filePath, outPath string
		maxPages          int
	)

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Analyse collected articles and propose ranked topic insights",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := loadApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			source, err := a.source(filePath)
			if err != nil {
				a.logger.Error("failed to configure source", "error", err)
				return err
			}

			insights, err := a.insights(ctx)
			if err != nil {
				return err
			}

			if maxPages <= 0 {
				maxPages = a.cfg.Source.MaxPages
			}

			report, err := insights.Discover(ctx, source, maxPages)
			if report != nil {
				if writeErr := writeJSON(cmd.OutOrStdout(), outPath, report); writeErr != nil {
					return writeErr
				}
			}
			if err != nil {
				a.logger.Error("insight discovery failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "read articles from a JSON file instead of the configured source")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the report JSON to this file instead of stdout")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "pages to fetch from the feed (default from config)")
	return cmd
}

func newPurgeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Remove expired cache entries once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.Close()

			purged := a.cache.PurgeExpired(cmd.Context())
			a.logger.Info("cache purged", "purged", purged)
			return nil
		},
	}
}

func newJanitorCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "janitor",
		Short: "Purge expired cache entries on an interval until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := loadApp(ctx, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			sched := scheduler.NewScheduler(a.cache, a.cfg.Cache.PurgeInterval, a.logger)

			a.logger.Info("starting cache janitor",
				"backend", a.cfg.Cache.Backend,
				"interval", a.cfg.Cache.PurgeInterval,
			)

			if err := sched.Start(ctx); err != nil && ctx.Err() == nil {
				a.logger.Error("scheduler error", "error", err)
				return err
			}
			return nil
		},
	}
}

func loadParams(path string) (domain.GenerationParameters, error) {
	var params domain.GenerationParameters

	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read params file: %w", err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("parse params file: %w", err)
	}
	if params.Topic.ID == "" {
		return params, fmt.Errorf("params file %s: topic.id is required", path)
	}
	return params, nil
}

func writeJSON(stdout io.Writer, path string, v any) error {
	w := stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
