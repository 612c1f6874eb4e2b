package domain

import "strconv"

// AppID identifies an application (game) owning items on the inventory service.
type AppID int64

func (a AppID) String() string {
	return strconv.FormatInt(int64(a), 10)
}

const UnknownCatalogName = "Unknown Game"

// Catalog is one registry entry.
type Catalog struct {
	AppID AppID
	Name  string
}

// CatalogRegistry maps app ids to display names and remembers the order the
// entries were registered in. It is read-only after construction.
type CatalogRegistry struct {
	ids   []AppID
	names map[AppID]string
}

// NewCatalogRegistry builds a registry from entries. A repeated app id keeps
// its first position and takes the last name.
func NewCatalogRegistry(entries []Catalog) CatalogRegistry {
	r := CatalogRegistry{
		ids:   make([]AppID, 0, len(entries)),
		names: make(map[AppID]string, len(entries)),
	}
	for _, e := range entries {
		if _, ok := r.names[e.AppID]; !ok {
			r.ids = append(r.ids, e.AppID)
		}
		r.names[e.AppID] = e.Name
	}
	return r
}

// Name returns the display name for appID, or UnknownCatalogName.
func (r CatalogRegistry) Name(appID AppID) string {
	if name, ok := r.names[appID]; ok {
		return name
	}
	return UnknownCatalogName
}

// IDs returns the registered app ids in registration order.
func (r CatalogRegistry) IDs() []AppID {
	ids := make([]AppID, len(r.ids))
	copy(ids, r.ids)
	return ids
}

func (r CatalogRegistry) Len() int {
	return len(r.ids)
}

// DefaultCatalogs is the registry of clicker titles the report was built for.
func DefaultCatalogs() CatalogRegistry {
	return NewCatalogRegistry([]Catalog{
		{2923300, "Banana"},
		{2977660, "Cats"},
		{3046430, "Hamster"},
		{3056600, "Apple Clicker"},
		{3058700, "Banana Cat"},
		{3057390, "Banana Monkeys"},
		{3056550, "Bananamana"},
		{3013470, "Bananametr"},
		{2968430, "Beer Simulator"},
		{2947380, "Clickout"},
		{3059750, "Cock"},
		{3065860, "Coconut"},
		{529240, "Creature Clicker: Capture Train Ascend"},
		{3015610, "Banana & Cucumber"},
		{3069620, "Dog"},
		{3059300, "DOG"},
		{3057940, "Ducks"},
		{3062750, "DUCKS"},
		{2784840, "Egg"},
		{3017120, "Egg Surprise"},
		{3056880, "Emoji Clicker Collector"},
		{2996990, "Flag Clicker"},
		{1587070, "Fruits"},
		{3055390, "Giraffe"},
		{2794860, "Grow a Carrot"},
		{3022740, "Heart Clicker"},
		{2813960, "Lass ich Sliden"},
		{3066830, "Lemon"},
		{3065090, "Meh"},
		{3050630, "Melon"},
		{3061500, "Mob Trader"},
		{3062410, "Pizzeria"},
		{1506810, "Poop"},
		{3048820, "Raspberry"},
		{3054490, "Shrimp"},
		{3047030, "Tapple: Idle Clicker"},
		{3059220, "Watermelon"},
		{2376170, "Hamster Combat"},
		{3056370, "Honey Peach Clicker"},
		{3071740, "Box Clicker"},
		{3057850, "Milk"},
		{3064950, "Crazy Corn"},
		{2373450, "Watermelon"},
	})
}
