package cron

import (
	"time"

	"gorm.io/gorm"

	"github.com/soletrade/soletrade/config"
	"github.com/soletrade/soletrade/models"
	"github.com/soletrade/soletrade/services"
	"github.com/soletrade/soletrade/types"
)

// MarketSnapshotJob refreshes the cached market view of every product:
// highest open bid, lowest open ask and the price of the latest sale.
type MarketSnapshotJob struct {
	DB      *gorm.DB
	Markets *services.MarketService
}

func NewMarketSnapshotJob(db *gorm.DB, markets *services.MarketService) *MarketSnapshotJob {
	return &MarketSnapshotJob{DB: db, Markets: markets}
}

func (j *MarketSnapshotJob) Process() {
	var product_ids []uint64
	if err := j.DB.Model(&models.Product{}).Pluck("id", &product_ids).Error; err != nil {
		config.Logger.Errorf("market snapshot: %v", err)
		return
	}

	for _, product_id := range product_ids {
		snapshot := &types.MarketSnapshot{
			ProductID:   product_id,
			HighestBid:  j.bestPrice(product_id, types.StateBuy, "MAX"),
			LowestAsk:   j.bestPrice(product_id, types.StateSell, "MIN"),
			LastSale:    j.lastSale(product_id),
			GeneratedAt: time.Now().Unix(),
		}

		if err := j.Markets.PutSnapshot(snapshot); err != nil {
			config.Logger.Errorf("market snapshot for product %d: %v", product_id, err)
		}
	}
}

func (j *MarketSnapshotJob) bestPrice(product_id uint64, state types.TradeState, agg string) *string {
	var price *string

	err := j.DB.Table("trades").
		Select(agg+"(trades.price)").
		Joins("JOIN product_sizes ON product_sizes.id = trades.product_size_id").
		Where("product_sizes.product_id = ? AND trades.state = ?", product_id, state).
		Scan(&price).Error

	if err != nil {
		config.Logger.Errorf("market snapshot price for product %d: %v", product_id, err)
		return nil
	}

	return price
}

func (j *MarketSnapshotJob) lastSale(product_id uint64) *string {
	var price *string

	err := j.DB.Table("trades").
		Select("trades.price").
		Joins("JOIN product_sizes ON product_sizes.id = trades.product_size_id").
		Where("product_sizes.product_id = ? AND trades.state = ?", product_id, types.StateDone).
		Order("trades.updated_at DESC").
		Limit(1).
		Scan(&price).Error

	if err != nil {
		config.Logger.Errorf("market snapshot last sale for product %d: %v", product_id, err)
		return nil
	}

	return price
}
