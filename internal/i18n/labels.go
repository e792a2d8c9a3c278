// Package i18n holds the bilingual label tables used by report
// formatting and content generation. Tables are immutable lookup data
// keyed by language code; unknown codes fall back to English.
package i18n

// Supported language codes.
const (
	LangEnglish = "en"
	LangSerbian = "sr"
)

// Labels is the set of localized strings for one language.
type Labels struct {
	ReportTitle       string
	MenuTitle         string
	TotalRevenue      string
	TotalItemsSold    string
	AvgDailyRevenue   string
	TopSeller         string
	SlowMover         string
	RisingStar        string
	DailyRevenue      string
	RevenueByCategory string
	TopItems          string
	BestByRevenue     string
	WorstByRevenue    string
	CategoryBreakdown string
	Recommendations   string
	Promote           string
	Discount          string
	Remove            string
	HeatmapTitle      string
	Quantity          string
	Revenue           string
	Date              string
	NoDataWeek        string
	NoDataMenu        string
}

var labels = map[string]Labels{
	LangEnglish: {
		ReportTitle:       "KOKO LOKO — Weekly Sales Report",
		MenuTitle:         "KOKO LOKO — Menu Performance Analysis",
		TotalRevenue:      "Total Revenue",
		TotalItemsSold:    "Total Items Sold",
		AvgDailyRevenue:   "Avg Daily Revenue",
		TopSeller:         "Top Seller",
		SlowMover:         "Slow Mover",
		RisingStar:        "Rising Star",
		DailyRevenue:      "Daily Revenue",
		RevenueByCategory: "Revenue by Category",
		TopItems:          "Top Items by Revenue",
		BestByRevenue:     "Best Performers (Revenue)",
		WorstByRevenue:    "Worst Performers (Revenue)",
		CategoryBreakdown: "Category Revenue Breakdown",
		Recommendations:   "Recommendations",
		Promote:           "PROMOTE",
		Discount:          "CONSIDER DISCOUNTING",
		Remove:            "CONSIDER REMOVING",
		HeatmapTitle:      "Sales Heatmap: Items × Day of Week",
		Quantity:          "Quantity",
		Revenue:           "Revenue (€)",
		Date:              "Date",
		NoDataWeek:        "No data found for the specified week.",
		NoDataMenu:        "No data available for menu analysis.",
	},
	LangSerbian: {
		ReportTitle:       "KOKO LOKO — Nedeljni Izveštaj Prodaje",
		MenuTitle:         "KOKO LOKO — Analiza Performansi Menija",
		TotalRevenue:      "Ukupan Prihod",
		TotalItemsSold:    "Ukupno Prodatih Stavki",
		AvgDailyRevenue:   "Prosečan Dnevni Prihod",
		TopSeller:         "Najprodavaniji",
		SlowMover:         "Najslabiji",
		RisingStar:        "Zvezda u Usponu",
		DailyRevenue:      "Dnevni Prihod",
		RevenueByCategory: "Prihod po Kategoriji",
		TopItems:          "Top Stavke po Prihodu",
		BestByRevenue:     "Najbolji po Prihodu",
		WorstByRevenue:    "Najslabiji po Prihodu",
		CategoryBreakdown: "Prihod po Kategoriji",
		Recommendations:   "Preporuke",
		Promote:           "PROMOVISATI",
		Discount:          "RAZMOTRITI POPUST",
		Remove:            "RAZMOTRITI UKLANJANJE",
		HeatmapTitle:      "Mapa Prodaje: Stavke × Dan u Nedelji",
		Quantity:          "Količina",
		Revenue:           "Prihod (€)",
		Date:              "Datum",
		NoDataWeek:        "Nema podataka za izabranu nedelju.",
		NoDataMenu:        "Nema podataka za analizu menija.",
	},
}

var dayNames = map[string][7]string{
	LangEnglish: {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	LangSerbian: {"Ponedeljak", "Utorak", "Sreda", "Četvrtak", "Petak", "Subota", "Nedelja"},
}

// For returns the label table for the given language code, falling back
// to English for anything unknown.
func For(lang string) Labels {
	if l, ok := labels[lang]; ok {
		return l
	}
	return labels[LangEnglish]
}

// DayNames returns the localized weekday names in ISO order, Monday first.
func DayNames(lang string) [7]string {
	if d, ok := dayNames[lang]; ok {
		return d
	}
	return dayNames[LangEnglish]
}
