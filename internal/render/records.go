package render

import (
	"regexp"

	"steam/inventory/internal/domain"
)

var hexColor = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// BuildRecords joins assets to their descriptions by class id. Assets with no
// description are dropped; duplicate class ids resolve to the last description.
func (r *Renderer) BuildRecords(inv *domain.Inventory) []domain.ItemRecord {
	if inv == nil {
		return nil
	}

	byClass := make(map[domain.ID]*domain.Description, len(inv.Descriptions))
	for i := range inv.Descriptions {
		byClass[inv.Descriptions[i].ClassID] = &inv.Descriptions[i]
	}

	records := make([]domain.ItemRecord, 0, len(inv.Assets))
	for _, asset := range inv.Assets {
		desc, ok := byClass[asset.ClassID]
		if !ok {
			continue
		}
		records = append(records, r.record(asset, desc))
	}

	return records
}

func (r *Renderer) record(asset domain.Asset, desc *domain.Description) domain.ItemRecord {
	rarity := r.opts.Classifier.Classify(desc.Tags)

	nameColor := ""
	if hexColor.MatchString(desc.NameColor) {
		nameColor = desc.NameColor
	}

	return domain.ItemRecord{
		AssetID:        asset.AssetID.String(),
		ClassID:        desc.ClassID.String(),
		Amount:         int64(asset.Amount),
		Name:           desc.Name,
		NameColor:      nameColor,
		Type:           desc.Type,
		IconURL:        r.IconURL(desc.IconURL),
		Rarity:         rarity,
		RarityColor:    r.opts.Classifier.ColorFor(rarity),
		Marketable:     desc.Marketable.YesNo(),
		Tradable:       desc.Tradable.YesNo(),
		Commodity:      desc.Commodity.YesNo(),
		Text:           desc.Text(),
		MarketHashName: desc.MarketHashName,
		Tags:           desc.TagNames(),
	}
}

// IconURL builds the image URL for an icon path. The path is used verbatim.
func (r *Renderer) IconURL(iconPath string) string {
	if iconPath == "" {
		return ""
	}
	return r.opts.ImageBaseURL + iconPath + r.opts.ImageSuffix
}
