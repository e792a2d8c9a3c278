package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kokoloko/internal/sales"
)

func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

func sampleDataset() sales.Dataset {
	return sales.Dataset{
		{Date: d("2025-06-02"), ItemName: "Sarma", Category: "Mains", Quantity: 10, UnitPrice: 5, Revenue: 50},
		{Date: d("2025-06-07"), ItemName: "Cevapi", Category: "Mains", Quantity: 15, UnitPrice: 8, Revenue: 120},
	}
}

func TestBuilder_UsesGeneratorWhenAvailable(t *testing.T) {
	b := NewBuilder(&fakeGenerator{text: "AI wrote this"}, "en", nil)

	post := b.DailySpecial(context.Background(), "Sarma")

	assert.Equal(t, "AI wrote this", post)
}

func TestBuilder_FallsBackOnGeneratorError(t *testing.T) {
	b := NewBuilder(&fakeGenerator{err: errors.New("quota exceeded")}, "en", nil)

	post := b.DailySpecial(context.Background(), "Sarma")

	assert.Contains(t, post, "Sarma")
	assert.Contains(t, post, "#KokoLoko")
	assert.Contains(t, post, "#Sarma")
}

func TestBuilder_NilGeneratorUsesTemplates(t *testing.T) {
	b := NewBuilder(nil, "en", nil)

	post := b.DailySpecial(context.Background(), "Bao Buns")

	assert.Contains(t, post, "Bao Buns")
	// Hashtags never contain spaces.
	assert.Contains(t, post, "#BaoBuns")
	assert.Contains(t, post, itemDescriptions["Bao Buns"])
}

func TestBuilder_UnknownItemGetsGenericDescription(t *testing.T) {
	b := NewBuilder(nil, "en", nil)

	post := b.DailySpecial(context.Background(), "Mystery Dish")

	assert.Contains(t, post, genericDescription)
}

func TestBuilder_TopSellerPost(t *testing.T) {
	b := NewBuilder(nil, "en", nil)

	post := b.TopSellerPost(context.Background(), sampleDataset())

	assert.Contains(t, post, "Cevapi")
	assert.Contains(t, post, "15 sold")
}

func TestBuilder_TopSellerPost_Empty(t *testing.T) {
	b := NewBuilder(nil, "en", nil)

	post := b.TopSellerPost(context.Background(), sales.Dataset{})

	assert.Equal(t, "No data available to determine top seller.", post)
}

func TestBuilder_WeekendPromo(t *testing.T) {
	b := NewBuilder(nil, "en", nil)

	// Cevapi is the only weekend item (2025-06-07 is a Saturday).
	post := b.WeekendPromo(context.Background(), sampleDataset())

	assert.Contains(t, post, "Cevapi")
	assert.Contains(t, post, "#WeekendSpecial")
}

func TestBuilder_SerbianTemplates(t *testing.T) {
	b := NewBuilder(nil, "sr", nil)

	post := b.DailySpecial(context.Background(), "Sarma")

	assert.Contains(t, post, "Danas u Koko Loku")
	assert.Contains(t, post, "#BalkanskaHrana")
}

func TestMakeTag(t *testing.T) {
	assert.Equal(t, "ShopskaSalad", makeTag("Shopska Salad"))
	assert.Equal(t, "Sarma", makeTag("Sarma"))
}
