package domain

const (
	DefaultRarity      = "Common"
	DefaultRarityColor = "#f2f2f2"
)

// RarityTable maps a rarity label to its display color.
type RarityTable map[string]string

// ColoredRarities is the taxonomy used by the Cats family of titles, where a
// "COLORED" prefix marks the typed variants.
func ColoredRarities() RarityTable {
	return RarityTable{
		"Immortal":          "#ffca28",
		"Legendary":         "#fa6775",
		"Mythical":          "#981f84",
		"Rare":              "#41bdeb",
		"Uncommon":          "#b0b0b0",
		"COLORED Common":    "#d9d9d9",
		"COLORED Legendary": "#fa6775",
		"COLORED Immortal":  "#ffca28",
		"COLORED Mythical":  "#981f84",
		"COLORED Rare":      "#41bdeb",
		"COLORED Uncommon":  "#697176",
		"Incredible":        "#c21e1d",
		"Colored":           "#b38669",
		"Rainbow":           "#d57af6",
		"Money":             "#1caa6e",
		"Black":             "#d3d3d3",
		"Case":              "#fc8b38",
	}
}

// TierRarities is the tier taxonomy used by the remaining titles.
func TierRarities() RarityTable {
	return RarityTable{
		"Promo":       "#E1B07E",
		"Ultra rare":  "#D19C97",
		"Timeless":    "#000080",
		"Exceptional": "#D65076",
		"Mythic":      "#e83f5b",
		"Epic":        "#6e3f3f",
		"Skin":        "#4a90e2",
	}
}

// RaritySortOrder is the client-side sort order for the rarity sort mode.
// Labels outside the list sort before Common.
func RaritySortOrder() []string {
	return []string{
		"Common", "Uncommon", "Rare", "Mythical", "Legendary", "Immortal",
		"Incredible", "Rainbow", "Money", "Black", "Case",
	}
}

// RarityClassifier resolves a description's rarity from its tags against an
// ordered set of tables.
type RarityClassifier struct {
	tables []RarityTable
}

func NewRarityClassifier(tables ...RarityTable) RarityClassifier {
	copied := make([]RarityTable, 0, len(tables))
	for _, table := range tables {
		t := make(RarityTable, len(table))
		for label, color := range table {
			t[label] = color
		}
		copied = append(copied, t)
	}
	return RarityClassifier{tables: copied}
}

// IsRarity reports whether label is a key of any table.
func (c RarityClassifier) IsRarity(label string) bool {
	_, ok := c.Color(label)
	return ok
}

// Color returns the color of label from the first table that knows it.
func (c RarityClassifier) Color(label string) (string, bool) {
	for _, table := range c.tables {
		if color, ok := table[label]; ok {
			return color, true
		}
	}
	return "", false
}

// Classify scans tags in order; the last tag naming a known rarity wins.
// Descriptions without one are DefaultRarity.
func (c RarityClassifier) Classify(tags []Tag) string {
	rarity := DefaultRarity
	for _, tag := range tags {
		if c.IsRarity(tag.LocalizedTagName) {
			rarity = tag.LocalizedTagName
		}
	}
	return rarity
}

// ColorFor returns the display color for a classified rarity.
func (c RarityClassifier) ColorFor(rarity string) string {
	if color, ok := c.Color(rarity); ok {
		return color
	}
	return DefaultRarityColor
}
