package domain

// ItemRecord is the display view of one asset joined to its description.
// It only lives for the duration of a render pass.
type ItemRecord struct {
	AssetID        string
	ClassID        string
	Amount         int64
	Name           string
	NameColor      string
	Type           string
	IconURL        string
	Rarity         string
	RarityColor    string
	Marketable     string
	Tradable       string
	Commodity      string
	Text           string
	MarketHashName string
	Tags           []string
}

// CatalogSection is the rendered content of one catalog tab.
type CatalogSection struct {
	AppID AppID
	Name  string
	Items []ItemRecord
}

// PanelID is the DOM id of the section's tab panel.
func (s CatalogSection) PanelID() string {
	return "game-" + s.AppID.String()
}
