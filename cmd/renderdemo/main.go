package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Juste120/cvPro/internal/extract"
	"github.com/Juste120/cvPro/resume/i18n"
	"github.com/Juste120/cvPro/resume/model"
	"github.com/Juste120/cvPro/resume/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renderdemo",
		Short: "Render a CV record to PDF",
		Long: `Render a CV record to PDF without the API.

Examples:
  renderdemo --out ./out/sample_cv.pdf
  renderdemo --in ./cv.json --lang en --verify`,
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().String("in", "", "JSON record to render; a built-in sample when empty")
	cmd.Flags().String("out", "./out/sample_cv.pdf", "output path for the generated PDF")
	cmd.Flags().String("lang", "fr", "label language (fr or en)")
	cmd.Flags().Bool("compress", true, "deflate page streams")
	cmd.Flags().Bool("verify", false, "read the PDF back and check the name and labels")
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	lang, _ := cmd.Flags().GetString("lang")
	compress, _ := cmd.Flags().GetBool("compress")
	verify, _ := cmd.Flags().GetBool("verify")

	record := sampleRecord()
	if in != "" {
		loaded, err := loadRecord(in)
		if err != nil {
			return err
		}
		record = loaded
	}

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return err
	}
	composer := render.NewComposer(catalog, render.Options{Compress: compress})
	data, err := composer.Compose(record, i18n.ParseLocale(lang))
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := writeOutputs(out, record, data, in == ""); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	if verify {
		name := ""
		if record.PersonalInfo != nil {
			name = record.PersonalInfo.FullName
		}
		report, err := extract.Verify(context.Background(), data, name)
		if err != nil {
			return fmt.Errorf("render validation failed: %w", err)
		}
		if !report.OK() {
			return fmt.Errorf("render validation failed: name found=%t, leaked labels=%v", report.HasName, report.LeakedKeys)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "verified: %d page(s)\n", report.Pages)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: wrote %s\n", out)
	return nil
}

func loadRecord(path string) (model.ResumeRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.ResumeRecord{}, fmt.Errorf("reading record: %w", err)
	}
	var record model.ResumeRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return model.ResumeRecord{}, fmt.Errorf("decoding record: %w", err)
	}
	return record, nil
}

// writeOutputs writes the PDF and, for the built-in sample, the record it came from.
func writeOutputs(outPath string, record model.ResumeRecord, pdf []byte, withRecord bool) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return err
	}
	if !withRecord {
		return nil
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "sample_cv_record.json"), payload, 0o644)
}

func sampleRecord() model.ResumeRecord {
	end := model.NewDate(2021, time.February, 28)
	stamp := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	return model.ResumeRecord{
		ID:     "sample",
		UserID: "demo",
		Title:  "Senior Backend Engineer",
		PersonalInfo: &model.PersonalInfo{
			FullName: "Jordan Lee",
			JobTitle: "Senior Backend Engineer",
			Email:    "jordan.lee@example.com",
			Phone:    "+1-555-0102",
			Address:  "Austin, TX",
			LinkedIn: "linkedin.com/in/jordanlee",
		},
		Summary: "Backend engineer with 8+ years of experience building resilient APIs and data services.",
		Experiences: []model.Experience{
			{
				Position:    "Senior Backend Engineer",
				Company:     "Northwind",
				Location:    "Austin, TX",
				StartDate:   model.NewDate(2021, time.March, 1),
				IsCurrent:   true,
				Description: "Owns the billing platform.",
				Achievements: []string{
					"Cut p99 latency by 40% with query tuning and caching",
					"Led the migration to managed Postgres",
				},
			},
			{
				Position:  "Backend Engineer",
				Company:   "Contoso",
				StartDate: model.NewDate(2017, time.June, 1),
				EndDate:   &end,
			},
		},
		Education: []model.Education{
			{
				Degree:      "B.S. Computer Science",
				Institution: "University of Texas",
				StartDate:   model.NewDate(2012, time.September, 1),
				EndDate:     &end,
			},
		},
		Skills: []model.Skill{
			{Name: "Go", Category: "Languages", Level: model.SkillExpert},
			{Name: "SQL", Category: "Languages", Level: model.SkillAdvanced},
			{Name: "Kubernetes", Category: "Platforms", Level: model.SkillIntermediate},
		},
		Languages: []model.Language{
			{Name: "English", Level: model.LanguageNative},
			{Name: "Spanish", Level: model.LanguageConversational},
		},
		VolunteerActivities: []model.VolunteerActivity{
			{
				Organization: "Code Club",
				Role:         "Mentor",
				StartDate:    model.NewDate(2019, time.January, 1),
				IsCurrent:    true,
				Description:  "Weekly programming sessions for teenagers.",
			},
		},
		Interests: []string{"Climbing", "Chess"},
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
}
