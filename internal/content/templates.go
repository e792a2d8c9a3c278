package content

import (
	"strings"

	"kokoloko/internal/i18n"
)

// templateSet holds the fallback post templates for one language.
// Placeholders: {item}, {description}, {sold}, {tag}.
type templateSet struct {
	DailySpecial string
	TopSeller    string
	WeekendPromo string
}

var templates = map[string]templateSet{
	i18n.LangEnglish: {
		DailySpecial: "Today's special at Koko Loko: {item}!\n" +
			"{description}\n" +
			"Come taste tradition with a modern twist.\n" +
			"📍 Koko Loko | Order now!\n\n" +
			"#KokoLoko #{tag} #BalkanFood #BelgradeEats",
		TopSeller: "Our {item} is your favorite — and we get why! " +
			"{sold} sold this week alone.\n" +
			"Have you tried it yet?\n" +
			"📍 Koko Loko\n\n" +
			"#KokoLoko #{tag} #TopSeller #BalkanCuisine",
		WeekendPromo: "Weekend vibes at Koko Loko!\n" +
			"This weekend, don't miss our {item}.\n" +
			"{description}\n" +
			"See you there!\n\n" +
			"#KokoLoko #WeekendSpecial #{tag} #FoodLovers",
	},
	i18n.LangSerbian: {
		DailySpecial: "Danas u Koko Loku: {item}!\n" +
			"{description}\n" +
			"Dođite i probajte tradiciju sa modernim zaokretom.\n" +
			"📍 Koko Loko | Naručite odmah!\n\n" +
			"#KokoLoko #{tag} #BalkanskaHrana #BelgradeEats",
		TopSeller: "Naš {item} je vaš omiljeni — i znamo zašto! " +
			"{sold} prodato ove nedelje.\n" +
			"Da li ste probali?\n" +
			"📍 Koko Loko\n\n" +
			"#KokoLoko #{tag} #NajProdavaniji #BalkanskaKuhinja",
		WeekendPromo: "Vikend atmosfera u Koko Loku!\n" +
			"Ovog vikenda, ne propustite naš {item}.\n" +
			"{description}\n" +
			"Vidimo se!\n\n" +
			"#KokoLoko #VikendSpecijal #{tag} #LjubiteljiHrane",
	},
}

// itemDescriptions is the fixed catalog of dish blurbs used in prompts
// and fallback templates.
var itemDescriptions = map[string]string{
	"Roasted Chicken": "Slow-cooked for 3 hours with a secret blend of Balkan herbs and spices. Crispy skin, tender meat, unforgettable flavor.",
	"Sarma":           "Traditional cabbage rolls stuffed with seasoned meat and rice, simmered to perfection in a rich tomato broth.",
	"Cevapi":          "Hand-rolled grilled sausages served with fresh onions, kajmak, and warm somun bread. A Balkan classic.",
	"Bao Buns":        "Our fusion twist — fluffy steamed bao buns filled with Balkan-spiced pulled pork and pickled cabbage.",
	"Caesar Salad":    "Crisp romaine, shaved parmesan, crunchy croutons, and our house-made Caesar dressing.",
	"Shopska Salad":   "Fresh tomatoes, cucumbers, peppers, and onions topped with a generous layer of grated white cheese.",
	"Baklava":         "Layers of flaky phyllo dough, chopped walnuts, and a sweet honey syrup. Pure Balkan indulgence.",
	"Turkish Coffee":  "Rich, strong, and traditionally brewed in a džezva. The perfect end to any meal.",
	"Rakija":          "Serbia's national spirit — smooth, aromatic plum brandy served chilled.",
}

const genericDescription = "A delicious dish from our menu."

// templatesFor falls back to English for unknown language codes.
func templatesFor(lang string) templateSet {
	if t, ok := templates[lang]; ok {
		return t
	}
	return templates[i18n.LangEnglish]
}

// describe returns the catalog blurb for an item, or a generic line.
func describe(item string) string {
	if d, ok := itemDescriptions[item]; ok {
		return d
	}
	return genericDescription
}

// makeTag converts an item name into a hashtag-safe token.
func makeTag(item string) string {
	return strings.ReplaceAll(item, " ", "")
}

func fillTemplate(tmpl, item, description, sold string) string {
	r := strings.NewReplacer(
		"{item}", item,
		"{description}", description,
		"{sold}", sold,
		"{tag}", makeTag(item),
	)
	return r.Replace(tmpl)
}
