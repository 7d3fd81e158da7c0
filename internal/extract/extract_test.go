package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Juste120/cvPro/resume/i18n"
	"github.com/Juste120/cvPro/resume/model"
	"github.com/Juste120/cvPro/resume/render"
)

func composeSample(t *testing.T, messages render.MessageResolver) []byte {
	t.Helper()
	record := model.ResumeRecord{
		ID:    "resume-1",
		Title: "Backend CV",
		PersonalInfo: &model.PersonalInfo{
			FullName: "John Doe",
			JobTitle: "Software Developer",
		},
		Summary:   "Builds reliable services.",
		Interests: []string{"Chess"},
		UpdatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	c := render.NewComposer(messages, render.Options{Compress: true})
	out, err := c.Compose(record, i18n.English)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	return out
}

type keysOnly struct{}

func (keysOnly) Resolve(key string, _ i18n.Locale) string { return key }

func TestVerifyExportedCV(t *testing.T) {
	data := composeSample(t, i18n.MustCatalog())

	report, err := Verify(context.Background(), data, "John Doe")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !report.OK() {
		t.Fatalf("expected report to pass: %+v", report)
	}
	if report.Pages != 1 {
		t.Fatalf("expected 1 page, got %d", report.Pages)
	}

	text, err := TextFromPDF(context.Background(), data)
	if err != nil {
		t.Fatalf("TextFromPDF: %v", err)
	}
	if !strings.Contains(text, "PROFESSIONAL SUMMARY") {
		t.Fatalf("expected localized heading in %q", text)
	}
}

func TestVerifyFlagsLeakedKeys(t *testing.T) {
	data := composeSample(t, keysOnly{})

	report, err := Verify(context.Background(), data, "Jane Roe")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if report.OK() || report.HasName {
		t.Fatalf("expected failing report, got %+v", report)
	}
	if len(report.LeakedKeys) != 2 || report.LeakedKeys[0] != "cv.interests" || report.LeakedKeys[1] != "cv.summary" {
		t.Fatalf("unexpected leaked keys %v", report.LeakedKeys)
	}
}

func TestTextFromPDFRejectsOtherPayloads(t *testing.T) {
	if _, err := TextFromPDF(context.Background(), []byte("PK\x03\x04")); !errors.Is(err, ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := TextFromPDF(ctx, []byte("%PDF-1.3")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLeakedKeysIgnoresContactText(t *testing.T) {
	text := "Jane Roe john@cv.com www.cv.fr CV.Present cv.skills"
	got := leakedKeys(text)
	if len(got) != 2 || got[0] != "cv.present" || got[1] != "cv.skills" {
		t.Fatalf("unexpected leaked keys %v", got)
	}
}
