package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/soletrade/soletrade/config"
	"github.com/soletrade/soletrade/controllers/entities"
	"github.com/soletrade/soletrade/controllers/queries"
	"github.com/soletrade/soletrade/exceptions"
	"github.com/soletrade/soletrade/models"
	"github.com/soletrade/soletrade/types"
)

type TradeService struct {
	db     *gorm.DB
	influx *config.InfluxClient
}

func NewTradeService(db *gorm.DB, influx *config.InfluxClient) *TradeService {
	return &TradeService{db: db, influx: influx}
}

// FindDoneTrades lists completed sales of a product, newest
// modification first, projected to (size, price, time).
func (s *TradeService) FindDoneTrades(product_id uint64, page, limit int) ([]entities.TradeDoneEntity, error) {
	trades := []entities.TradeDoneEntity{}

	err := s.db.Table("trades").
		Select("product_sizes.size AS size, trades.price AS price, trades.updated_at AS traded_at").
		Joins("JOIN product_sizes ON product_sizes.id = trades.product_size_id").
		Where("product_sizes.product_id = ? AND trades.state = ?", product_id, types.StateDone).
		Order("trades.updated_at DESC").
		Offset(page*limit - limit).Limit(limit).
		Scan(&trades).Error

	if err != nil {
		return nil, err
	}

	return trades, nil
}

// FindTransactionTrades renders the depth view for one side of a
// product: open bids or asks grouped by (price, size) with a count.
func (s *TradeService) FindTransactionTrades(product_id uint64, state types.TradeState, page, limit int) ([]entities.TradeTransactionEntity, error) {
	trades := []entities.TradeTransactionEntity{}

	err := s.db.Table("trades").
		Select("product_sizes.size AS size, trades.price AS price, COUNT(trades.price) AS count").
		Joins("JOIN product_sizes ON product_sizes.id = trades.product_size_id").
		Where("trades.state = ? AND product_sizes.product_id = ?", state, product_id).
		Group("trades.price, product_sizes.size").
		Order("trades.price, product_sizes.size").
		Offset(page*limit - limit).Limit(limit).
		Scan(&trades).Error

	if err != nil {
		return nil, err
	}

	return trades, nil
}

// SaveTrade places an open bid or ask on one size of a product.
func (s *TradeService) SaveTrade(member *models.Member, payload *queries.TradeSavePayload) (*models.Trade, error) {
	trade := &models.Trade{
		Price:         payload.Price,
		State:         payload.State,
		ProductSizeID: payload.ProductSizeID,
		MemberID:      member.ID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.ProductSize{}, "id = ?", payload.ProductSizeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.ProductSizeNotFound(payload.ProductSizeID)
			}

			return err
		}

		return tx.Create(trade).Error
	})

	if err != nil {
		return nil, err
	}

	return trade, nil
}

// UpdateTrade changes the price of one of the member's own open trades.
func (s *TradeService) UpdateTrade(member *models.Member, trade_id uint64, payload *queries.TradePricePayload) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var trade models.Trade
		err := tx.Where("id = ? AND member_id = ? AND state IN ?", trade_id, member.ID, []types.TradeState{types.StateBuy, types.StateSell}).
			First(&trade).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.TradeNotFound(trade_id)
			}

			return err
		}

		trade.Price = payload.Price

		return tx.Save(&trade).Error
	})
}

func (s *TradeService) DeleteTrade(member *models.Member, trade_id uint64) error {
	result := s.db.Where("id = ? AND member_id = ? AND state IN ?", trade_id, member.ID, []types.TradeState{types.StateBuy, types.StateSell}).
		Delete(&models.Trade{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return exceptions.TradeNotFound(trade_id)
	}

	return nil
}

// CompleteTrade lets a member accept an open counterparty bid or ask at
// its listed price, which settles that single trade as DONE.
func (s *TradeService) CompleteTrade(member *models.Member, trade_id uint64) error {
	var trade models.Trade
	var size models.ProductSize

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND member_id <> ? AND state IN ?", trade_id, member.ID, []types.TradeState{types.StateBuy, types.StateSell}).
			First(&trade).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.TradeNotFound(trade_id)
			}

			return err
		}

		if err := tx.First(&size, "id = ?", trade.ProductSizeID).Error; err != nil {
			return err
		}

		trade.State = types.StateDone

		return tx.Save(&trade).Error
	})

	if err != nil {
		return err
	}

	tags, fields := trade.InfluxPoint(size.Size, size.ProductID)
	s.influx.NewPoint("trades", tags, fields)

	return nil
}

// FindMemberTrades lists the member's own bids and asks with the
// product name, size and a representative image.
func (s *TradeService) FindMemberTrades(member *models.Member, filters *queries.TradeFilters) ([]entities.TradeEntity, error) {
	trades := []entities.TradeEntity{}

	tx := s.db.Table("trades").
		Select("trades.id AS id, products.kor_name AS kor_name, product_sizes.size AS size, trades.price AS price, "+
			"(SELECT product_images.name FROM product_images WHERE product_images.product_id = products.id ORDER BY product_images.id LIMIT 1) AS image").
		Joins("JOIN product_sizes ON product_sizes.id = trades.product_size_id").
		Joins("JOIN products ON products.id = product_sizes.product_id").
		Where("trades.member_id = ?", member.ID)

	if len(filters.State) > 0 {
		tx = tx.Where("trades.state = ?", filters.State)
	}

	err := tx.Order("trades.id DESC").
		Offset(filters.Page*filters.Limit - filters.Limit).Limit(filters.Limit).
		Scan(&trades).Error

	if err != nil {
		return nil, err
	}

	return trades, nil
}
