package collection_refresh

import (
	"context"
	"time"

	"ordertracker/pkg/logger"
)

type Service interface {
	Refresh(ctx context.Context) (int, error)
}

// CollectionRefresh периодически перечитывает коллекцию заказов из хранилища,
// чтобы представления видели изменения, сделанные в обход сервиса.
type CollectionRefresh struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	lastSize int
}

func NewCollectionRefresh(log logger.Logger, service Service, interval time.Duration) *CollectionRefresh {
	return &CollectionRefresh{
		log:      log,
		service:  service,
		interval: interval,
		lastSize: -1,
	}
}

func (c *CollectionRefresh) TTL() time.Duration {
	return c.interval
}

func (c *CollectionRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	size, err := c.service.Refresh(ctxWithTimeout)
	if err != nil {
		return err
	}

	if size != c.lastSize {
		c.log.With(
			logger.NewField("orders", size),
			logger.NewField("previous", c.lastSize),
		).Info("collection refreshed")
		c.lastSize = size
	}

	return nil
}

func (c *CollectionRefresh) Info() string {
	return "collection refresh"
}
