// Package content builds social media posts from sales insights. Posts
// are AI-generated when a Generator is available and fall back to fixed
// bilingual templates otherwise; generation failure is never fatal.
package content

import (
	"context"
	"fmt"
	"log/slog"

	"kokoloko/internal/analytics"
	"kokoloko/internal/sales"
)

// Content type keys, also used as output file name suffixes.
const (
	TypeDailySpecial = "daily_special"
	TypeTopSeller    = "top_seller"
	TypeWeekendPromo = "weekend_promo"
)

// Builder produces the individual post types.
type Builder struct {
	gen    Generator
	lang   string
	logger *slog.Logger
}

// NewBuilder creates a post builder. gen may be nil, in which case every
// post comes from the template fallback.
func NewBuilder(gen Generator, lang string, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{gen: gen, lang: lang, logger: logger}
}

// DailySpecial writes a post featuring the given menu item.
func (b *Builder) DailySpecial(ctx context.Context, item string) string {
	description := describe(item)
	prompt := fmt.Sprintf(
		"Write a short, engaging Instagram post (max 150 words) for a restaurant called Koko Loko. "+
			"The post is about today's special: %s. "+
			"Description: %s. "+
			"The restaurant serves traditional Balkan cuisine with modern fusion items. "+
			"Include relevant emojis and hashtags. %s",
		item, description, languageInstruction(b.lang))

	if text, ok := b.tryGenerate(ctx, prompt); ok {
		return text
	}
	return fillTemplate(templatesFor(b.lang).DailySpecial, item, description, "")
}

// TopSellerPost writes a post celebrating the week's best-selling item.
func (b *Builder) TopSellerPost(ctx context.Context, ds sales.Dataset) string {
	item, sold, ok := analytics.TopSellerByQuantity(ds)
	if !ok {
		return "No data available to determine top seller."
	}

	prompt := fmt.Sprintf(
		"Write a short, celebratory Instagram post (max 150 words) for Koko Loko restaurant. "+
			"Highlight that '%s' is the top seller this week with %d sold. "+
			"Description: %s. "+
			"Include relevant emojis and hashtags. %s",
		item, sold, describe(item), languageInstruction(b.lang))

	if text, ok := b.tryGenerate(ctx, prompt); ok {
		return text
	}
	return fillTemplate(templatesFor(b.lang).TopSeller, item, describe(item), fmt.Sprintf("%d", sold))
}

// WeekendPromo writes a post around the weekend best-seller, or the
// overall best-seller when no weekend sales exist.
func (b *Builder) WeekendPromo(ctx context.Context, ds sales.Dataset) string {
	item, ok := analytics.WeekendTopItem(ds)
	if !ok {
		return "No data available for weekend promo."
	}

	prompt := fmt.Sprintf(
		"Write a fun, inviting Instagram post (max 150 words) for Koko Loko restaurant's weekend special. "+
			"Feature the dish: %s. "+
			"Description: %s. "+
			"Make it feel exciting and weekend-appropriate. "+
			"Include relevant emojis and hashtags. %s",
		item, describe(item), languageInstruction(b.lang))

	if text, ok := b.tryGenerate(ctx, prompt); ok {
		return text
	}
	return fillTemplate(templatesFor(b.lang).WeekendPromo, item, describe(item), "")
}

// tryGenerate attempts one AI generation. Any failure logs a warning and
// reports ok=false so the caller uses the template fallback.
func (b *Builder) tryGenerate(ctx context.Context, prompt string) (string, bool) {
	if b.gen == nil {
		return "", false
	}
	text, err := b.gen.Generate(ctx, prompt)
	if err != nil {
		b.logger.Warn("AI content generation failed, using template fallback",
			slog.String("error", err.Error()))
		return "", false
	}
	return text, true
}

func languageInstruction(lang string) string {
	if lang == "sr" {
		return "Write in Serbian language."
	}
	return "Write in English."
}
