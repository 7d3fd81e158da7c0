package render

import (
	"fmt"

	"github.com/Juste120/cvPro/internal/shared/telemetry"
	"github.com/Juste120/cvPro/resume/i18n"
	"github.com/Juste120/cvPro/resume/model"
)

// Options tune the produced file without changing its content.
type Options struct {
	// Compress deflates page content streams.
	Compress bool
	// Author overrides the author metadata, which defaults to the CV owner's name.
	Author string
}

// Composer turns a ResumeRecord into a finished PDF. It holds no per-export
// state, so one Composer may serve concurrent exports.
type Composer struct {
	Messages    MessageResolver
	Options     Options
	NewDocument DocumentFactory
}

// NewComposer builds a Composer writing PDF documents.
func NewComposer(messages MessageResolver, opts Options) *Composer {
	return &Composer{Messages: messages, Options: opts, NewDocument: NewPDFDocument}
}

// Compose renders record in locale. Any failure is logged with the record id
// and reported as ErrExportFailed; partial output is never returned.
func (c *Composer) Compose(record model.ResumeRecord, locale i18n.Locale) ([]byte, error) {
	out, err := c.compose(record, locale)
	if err != nil {
		telemetry.Error("export.failed", map[string]any{
			"resume_id": record.ID,
			"locale":    locale.String(),
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%w: resume %s", ErrExportFailed, record.ID)
	}
	return out, nil
}

func (c *Composer) compose(record model.ResumeRecord, locale i18n.Locale) (out []byte, err error) {
	factory := c.NewDocument
	if factory == nil {
		factory = NewPDFDocument
	}
	doc, err := factory(c.meta(record, locale))
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("render panic: %v", r)
		}
		if cerr := doc.Close(); cerr != nil && err == nil {
			out, err = nil, fmt.Errorf("close document: %w", cerr)
		}
	}()

	for _, block := range BuildBlocks(record, locale, c.resolver()) {
		if err := doc.Add(block); err != nil {
			return nil, fmt.Errorf("add block: %w", err)
		}
	}
	out, err = doc.Finish()
	if err != nil {
		return nil, fmt.Errorf("finish document: %w", err)
	}
	return out, nil
}

func (c *Composer) resolver() MessageResolver {
	if c.Messages == nil {
		return keyResolver{}
	}
	return c.Messages
}

func (c *Composer) meta(record model.ResumeRecord, locale i18n.Locale) DocumentMeta {
	meta := DocumentMeta{
		Title:    record.Title,
		Author:   c.Options.Author,
		Lang:     locale.String(),
		Created:  record.Timestamp(),
		Compress: c.Options.Compress,
	}
	if info := record.PersonalInfo; info != nil {
		if meta.Title == "" {
			meta.Title = info.FullName
		}
		if meta.Author == "" {
			meta.Author = info.FullName
		}
		meta.Subject = info.JobTitle
	}
	return meta
}

// BuildBlocks lays out every present section of record in drawing order.
func BuildBlocks(record model.ResumeRecord, locale i18n.Locale, messages MessageResolver) []Block {
	styling := record.EffectiveStyling()
	palette := Palette{
		Primary: ResolveColor(styling.PrimaryColor),
		Accent:  ResolveColor(styling.AccentColor),
		Text:    TextColorFor(styling.Theme),
	}
	ctx := newSectionContext(palette, locale, messages)

	var blocks []Block
	for _, s := range sections {
		if s.present(record) {
			blocks = append(blocks, s.render(record, ctx)...)
		}
	}
	return blocks
}

type keyResolver struct{}

func (keyResolver) Resolve(key string, _ i18n.Locale) string { return key }
