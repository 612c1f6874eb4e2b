package container

import (
	"context"
	"fmt"
	"io"

	"steam/inventory/internal/client"
	"steam/inventory/internal/config"
	"steam/inventory/internal/domain"
	"steam/inventory/internal/proxy"
	"steam/inventory/internal/render"
	"steam/inventory/internal/service"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config   *config.Config
	Client   client.SteamClient
	Service  *service.Service
	Renderer *render.Renderer
	RunID    string

	catalogs domain.CatalogRegistry
	logger   *log.Entry
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	runID := uuid.NewString()
	logger := log.WithField("run_id", runID)

	proxySupplier := proxy.NewSupplier(ctx, cfg.Steam.Proxies, cfg.Steam.BaseURL, nil)
	if len(cfg.Steam.Proxies) > 0 && proxySupplier.Len() == 0 {
		return nil, fmt.Errorf("none of the %d configured proxies is working", len(cfg.Steam.Proxies))
	}

	steamClient := client.NewSteamClient(cfg.Steam, proxySupplier, logger)

	catalogs := domain.DefaultCatalogs()

	svc := service.NewService(steamClient, catalogs, service.Options{
		OwnerID:        cfg.Steam.OwnerID,
		ContextID:      cfg.Steam.ContextID,
		PageSize:       cfg.Steam.PageSize,
		SinglePageSize: cfg.Steam.SinglePageSize,
		RequestDelay:   cfg.Steam.RequestDelay,
		Logger:         logger,
	})

	opts := render.DefaultOptions()
	opts.ImageBaseURL = cfg.Steam.ImageBaseURL
	opts.ImageSuffix = cfg.Steam.ImageSuffix
	opts.Title = cfg.Report.Title
	opts.Lang = cfg.Report.Lang
	opts.RunID = runID
	opts.Catalogs = catalogs
	opts.Logger = logger

	return &Container{
		Config:   cfg,
		Client:   steamClient,
		Service:  svc,
		Renderer: render.NewRenderer(opts),
		RunID:    runID,
		catalogs: catalogs,
		logger:   logger,
	}, nil
}

// Run fetches the configured inventories and writes the report
func (c *Container) Run(ctx context.Context) error {
	appIDs := c.requestedApps()

	c.logger.Infof("🔄 Building %s report for %d apps, owner %s", c.Config.Report.Mode, len(appIDs), c.Config.Steam.OwnerID)
	for _, id := range appIDs {
		c.logger.Infof("%s | %s", id, c.catalogs.Name(id))
	}

	var renderReport func(w io.Writer) error

	switch c.Config.Report.Mode {
	case config.ModeSingle:
		inv, err := c.Service.FetchInventory(ctx, appIDs[0])
		if err != nil {
			return fmt.Errorf("failed to fetch inventory items: %w", err)
		}
		renderReport = func(w io.Writer) error { return c.Renderer.RenderSingle(w, inv) }

	default:
		inventories, err := c.Service.FetchInventories(ctx, appIDs)
		if err != nil {
			return fmt.Errorf("failed to fetch inventory items: %w", err)
		}
		renderReport = func(w io.Writer) error { return c.Renderer.RenderTabs(w, inventories) }
	}

	n, err := render.WriteFile(c.Config.Report.Output, renderReport)
	if err != nil {
		return err
	}

	c.logger.Infof("📝 Report written to %s (%d bytes)", c.Config.Report.Output, n)
	return nil
}

// requestedApps returns the configured app ids, or every registry catalog in
// registry order when none are configured.
func (c *Container) requestedApps() []domain.AppID {
	if len(c.Config.Steam.AppIDs) == 0 {
		c.logger.Infof("No app ids configured, requesting all %d registry catalogs", c.catalogs.Len())
		return c.catalogs.IDs()
	}

	appIDs := make([]domain.AppID, 0, len(c.Config.Steam.AppIDs))
	for _, id := range c.Config.Steam.AppIDs {
		appIDs = append(appIDs, domain.AppID(id))
	}
	return appIDs
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	c.logger.Debug("Shutting down container...")
	return c.Client.Close()
}
