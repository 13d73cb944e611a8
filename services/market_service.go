package services

import (
	"time"

	"github.com/soletrade/soletrade/models"
	"github.com/soletrade/soletrade/types"
)

const (
	marketKeyPrefix   = "soletrade:market:"
	MarketSnapshotTTL = 2 * time.Minute
)

// MarketService serves the cached per-product market view the snapshot
// cron maintains.
type MarketService struct {
	store KeyStore
}

func NewMarketService(store KeyStore) *MarketService {
	return &MarketService{store: store}
}

func (s *MarketService) GetSnapshot(product_id uint64) (*types.MarketSnapshot, error) {
	snapshot := &types.MarketSnapshot{}

	if err := s.store.GetKey(marketKey(product_id), snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (s *MarketService) PutSnapshot(snapshot *types.MarketSnapshot) error {
	return s.store.SetKey(marketKey(snapshot.ProductID), snapshot, MarketSnapshotTTL)
}

func marketKey(product_id uint64) string {
	return marketKeyPrefix + models.FormatID(product_id)
}
