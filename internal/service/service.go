package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"steam/inventory/internal/client"
	"steam/inventory/internal/domain"

	log "github.com/sirupsen/logrus"
)

// ErrAllCatalogsFailed is returned when no requested catalog could be fetched.
var ErrAllCatalogsFailed = errors.New("no inventory could be fetched for any requested app")

type Options struct {
	OwnerID        string
	ContextID      int
	PageSize       int
	SinglePageSize int
	RequestDelay   time.Duration

	// Logger carries run fields; the standard logger is used when nil
	Logger *log.Entry
}

type Service struct {
	client   client.SteamClient
	catalogs domain.CatalogRegistry
	opts     Options
	logger   *log.Entry
}

func NewService(client client.SteamClient, catalogs domain.CatalogRegistry, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	return &Service{
		client:   client,
		catalogs: catalogs,
		opts:     opts,
		logger:   logger,
	}
}

// FetchInventory fetches a single catalog for the single-page report.
func (s *Service) FetchInventory(ctx context.Context, appID domain.AppID) (*domain.Inventory, error) {
	name := s.catalogs.Name(appID)
	s.logger.Infof("🔄 Fetching inventory for %s | app_id %s", name, appID)

	inv, err := s.client.GetInventory(ctx, s.opts.OwnerID, appID, s.opts.ContextID, s.opts.SinglePageSize)
	if err != nil {
		s.logger.Errorf("❌ Failed to fetch inventory for %s | app_id %s: %v", name, appID, err)
		return nil, fmt.Errorf("failed to fetch inventory for app %s: %w", appID, err)
	}

	s.logger.Infof("✅ Fetched %s: %d assets, %d descriptions", name, len(inv.Assets), len(inv.Descriptions))
	return inv, nil
}

// FetchInventories fetches each catalog in order, waiting RequestDelay before
// every request. Failed catalogs are logged and left out of the result; the
// call fails only when every catalog failed.
func (s *Service) FetchInventories(ctx context.Context, appIDs []domain.AppID) (domain.Inventories, error) {
	inventories := make(domain.Inventories, 0, len(appIDs))

	for i, appID := range appIDs {
		name := s.catalogs.Name(appID)

		if err := s.wait(ctx); err != nil {
			return nil, err
		}

		s.logger.Infof("🔄 [%d/%d] Fetching inventory for %s | app_id %s", i+1, len(appIDs), name, appID)

		inv, err := s.client.GetInventory(ctx, s.opts.OwnerID, appID, s.opts.ContextID, s.opts.PageSize)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Errorf("❌ Failed to fetch inventory for %s | app_id %s: %v", name, appID, err)
			continue
		}

		s.logger.Infof("✅ Fetched %s: %d assets, %d descriptions", name, len(inv.Assets), len(inv.Descriptions))
		inventories = append(inventories, domain.CatalogInventory{AppID: appID, Inventory: inv})
	}

	if len(inventories) == 0 {
		return nil, ErrAllCatalogsFailed
	}

	if failed := len(appIDs) - len(inventories); failed > 0 {
		s.logger.Warnf("⚠️ %d of %d apps failed and are left out of the report", failed, len(appIDs))
	}

	return inventories, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.opts.RequestDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.opts.RequestDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
