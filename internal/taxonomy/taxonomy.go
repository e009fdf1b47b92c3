// Package taxonomy maps the many historical spellings of product categories
// onto one canonical set of slugs.
package taxonomy

// Category is a canonical catalogue category
type Category struct {
	Slug  string `json:"slug" yaml:"slug"`
	Label string `json:"label" yaml:"label"`
}

// Alias maps a free-text category token onto a canonical slug
type Alias struct {
	Alias    string `yaml:"alias"`
	Category string `yaml:"category"`
}

const (
	SlugAutomotive         = "automotive"
	SlugBeautyPersonalCare = "beauty_personal_care"
	SlugBooks              = "books"
	SlugElectronics        = "electronics"
	SlugFashionMen         = "fashion_men"
	SlugFashionWomen       = "fashion_women"
	SlugGroceriesGourmet   = "groceries_gourmet"
	SlugHealth             = "health"
	SlugHomeKitchen        = "home_kitchen"
	SlugPetSupplies        = "pet_supplies"
	SlugSportsOutdoors     = "sports_outdoors"
	SlugToysGames          = "toys_games"
	SlugOther              = "other"
)

// DefaultCategories is the canonical taxonomy in display order
func DefaultCategories() []Category {
	return []Category{
		{Slug: SlugAutomotive, Label: "Automotive"},
		{Slug: SlugBeautyPersonalCare, Label: "Beauty & Personal Care"},
		{Slug: SlugBooks, Label: "Books"},
		{Slug: SlugElectronics, Label: "Electronics"},
		{Slug: SlugFashionMen, Label: "Fashion - Men"},
		{Slug: SlugFashionWomen, Label: "Fashion - Women"},
		{Slug: SlugGroceriesGourmet, Label: "Groceries & Gourmet"},
		{Slug: SlugHealth, Label: "Health"},
		{Slug: SlugHomeKitchen, Label: "Home & Kitchen"},
		{Slug: SlugPetSupplies, Label: "Pet Supplies"},
		{Slug: SlugSportsOutdoors, Label: "Sports & Outdoors"},
		{Slug: SlugToysGames, Label: "Toys & Games"},
		{Slug: SlugOther, Label: "Other"},
	}
}

// LegacyAliases lists spellings found in older catalogue imports and earlier
// taxonomy revisions. hair and others were slugs of a previous revision.
func LegacyAliases() []Alias {
	return []Alias{
		{"auto", SlugAutomotive},
		{"vehicle", SlugAutomotive},
		{"personal care", SlugBeautyPersonalCare},
		{"hair", SlugBeautyPersonalCare},
		{"beauty", SlugBeautyPersonalCare},
		{"literature", SlugBooks},
		{"electronics & gadgets", SlugElectronics},
		{"smart devices", SlugElectronics},
		{"men fashion", SlugFashionMen},
		{"mens fashion", SlugFashionMen},
		{"men's fashion", SlugFashionMen},
		{"women fashion", SlugFashionWomen},
		{"womens fashion", SlugFashionWomen},
		{"women's fashion", SlugFashionWomen},
		{"grocery", SlugGroceriesGourmet},
		{"groceries", SlugGroceriesGourmet},
		{"wellness", SlugHealth},
		{"home appliances", SlugHomeKitchen},
		{"pets", SlugPetSupplies},
		{"toy", SlugToysGames},
		{"toys", SlugToysGames},
		{"others", SlugOther},
	}
}
