package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"steam/inventory/internal/domain"

	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Options is the static data the renderer works from.
type Options struct {
	ImageBaseURL string
	ImageSuffix  string
	Title        string
	Lang         string
	RunID        string
	Catalogs     domain.CatalogRegistry
	Classifier   domain.RarityClassifier
	SortOrder    []string
	Logger       *log.Entry
}

// DefaultOptions returns options with the built-in catalog registry and rarity tables.
func DefaultOptions() Options {
	return Options{
		ImageBaseURL: "https://community.akamai.steamstatic.com/economy/image/",
		ImageSuffix:  "/330x192?allow_animated=1",
		Title:        "Инвентарь Steam",
		Lang:         "ru",
		Catalogs:     domain.DefaultCatalogs(),
		Classifier:   domain.NewRarityClassifier(domain.ColoredRarities(), domain.TierRarities()),
		SortOrder:    domain.RaritySortOrder(),
	}
}

type Renderer struct {
	opts   Options
	now    func() time.Time
	logger *log.Entry
}

func NewRenderer(opts Options) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	return &Renderer{
		opts:   opts,
		now:    time.Now,
		logger: logger,
	}
}

type page struct {
	Title       string
	Lang        string
	RunID       string
	GeneratedAt string
	Items       []domain.ItemRecord
	Sections    []domain.CatalogSection
	SortOrder   []string
}

func (r *Renderer) newPage() page {
	return page{
		Title:       r.opts.Title,
		Lang:        r.opts.Lang,
		RunID:       r.opts.RunID,
		GeneratedAt: r.now().UTC().Format(time.RFC3339),
		SortOrder:   r.opts.SortOrder,
	}
}

// RenderSingle writes the flat single-catalog document.
func (r *Renderer) RenderSingle(w io.Writer, inv *domain.Inventory) error {
	p := r.newPage()
	p.Items = r.BuildRecords(inv)

	if err := templates.ExecuteTemplate(w, "single.html", p); err != nil {
		return fmt.Errorf("failed to render single report: %w", err)
	}

	r.logger.Debugf("Rendered %d items", len(p.Items))
	return nil
}

// RenderTabs writes the multi-catalog document with one tab per catalog.
func (r *Renderer) RenderTabs(w io.Writer, inventories domain.Inventories) error {
	p := r.newPage()
	p.Sections = make([]domain.CatalogSection, 0, inventories.Len())
	for _, entry := range inventories {
		section := domain.CatalogSection{
			AppID: entry.AppID,
			Name:  r.opts.Catalogs.Name(entry.AppID),
			Items: r.BuildRecords(entry.Inventory),
		}
		r.logger.Debugf("Rendered %d items for %s", len(section.Items), section.Name)
		p.Sections = append(p.Sections, section)
	}

	if err := templates.ExecuteTemplate(w, "tabs.html", p); err != nil {
		return fmt.Errorf("failed to render tabbed report: %w", err)
	}

	return nil
}

// WriteFile renders into memory and then replaces the file at path, so a failed
// render leaves the previous report in place. It returns the number of bytes
// written.
func WriteFile(path string, render func(w io.Writer) error) (int, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return 0, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write report: %w", err)
	}

	return buf.Len(), nil
}
