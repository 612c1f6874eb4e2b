package domain

import (
	"encoding/json"
	"html"
	"regexp"
	"strings"
)

var (
	lineBreak  = regexp.MustCompile(`(?i)<br\s*/?>`)
	inlineMark = regexp.MustCompile(`(?i)</?(?:span|font|b|i|u|strong|em|a)(?:\s[^<>]*)?>`)
)

// Asset is one unit (or stack) an owner holds.
type Asset struct {
	AppID      ID     `json:"appid"`
	ContextID  ID     `json:"contextid"`
	AssetID    ID     `json:"assetid"`
	ClassID    ID     `json:"classid"`
	InstanceID ID     `json:"instanceid"`
	Amount     Amount `json:"amount"`
}

// UnmarshalJSON defaults Amount to 1 when the key is absent.
func (a *Asset) UnmarshalJSON(data []byte) error {
	type plain Asset
	p := plain{Amount: 1}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Asset(p)
	return nil
}

type DescriptionLine struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Name  string `json:"name,omitempty"`
}

type Tag struct {
	Category              string `json:"category"`
	InternalName          string `json:"internal_name"`
	LocalizedCategoryName string `json:"localized_category_name"`
	LocalizedTagName      string `json:"localized_tag_name"`
	Color                 string `json:"color,omitempty"`
}

// Description holds the metadata shared by every asset of the same class.
type Description struct {
	AppID          ID                `json:"appid"`
	ClassID        ID                `json:"classid"`
	InstanceID     ID                `json:"instanceid"`
	Name           string            `json:"name"`
	NameColor      string            `json:"name_color"`
	MarketHashName string            `json:"market_hash_name"`
	Type           string            `json:"type"`
	IconURL        string            `json:"icon_url"`
	Marketable     Flag              `json:"marketable"`
	Tradable       Flag              `json:"tradable"`
	Commodity      Flag              `json:"commodity"`
	Descriptions   []DescriptionLine `json:"descriptions"`
	Tags           []Tag             `json:"tags"`
}

// Text joins the description fragments with single spaces, keeping API order.
// Line breaks and inline formatting tags are reduced to plain text; any other
// angle brackets are kept as typed.
func (d *Description) Text() string {
	parts := make([]string, 0, len(d.Descriptions))
	for _, line := range d.Descriptions {
		parts = append(parts, plainText(line.Value))
	}
	return strings.Join(parts, " ")
}

// TagNames returns the localized tag labels in API order.
func (d *Description) TagNames() []string {
	names := make([]string, 0, len(d.Tags))
	for _, tag := range d.Tags {
		names = append(names, tag.LocalizedTagName)
	}
	return names
}

func plainText(value string) string {
	if !strings.ContainsAny(value, "<&") {
		return value
	}

	value = lineBreak.ReplaceAllString(value, " ")
	value = inlineMark.ReplaceAllString(value, "")
	return strings.TrimSpace(html.UnescapeString(value))
}

// Inventory is the raw result of one inventory request.
type Inventory struct {
	Assets       []Asset       `json:"assets"`
	Descriptions []Description `json:"descriptions"`
}

type CatalogInventory struct {
	AppID     AppID
	Inventory *Inventory
}

// Inventories maps catalog ids to their inventories while keeping the order the
// catalogs were requested in.
type Inventories []CatalogInventory

func (inv Inventories) Len() int {
	return len(inv)
}
