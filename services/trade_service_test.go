package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soletrade/soletrade/controllers/queries"
	"github.com/soletrade/soletrade/exceptions"
	"github.com/soletrade/soletrade/types"
)

func TestFindDoneTradesProjection(t *testing.T) {
	db, mock := newServiceDB(t)
	trades := NewTradeService(db, nil)

	newer := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	rows := sqlmock.NewRows([]string{"size", "price", "traded_at"}).
		AddRow(260, "159000", newer).
		AddRow(275, "142000", older)

	mock.ExpectQuery(`SELECT product_sizes\.size AS size, trades\.price AS price, trades\.updated_at AS traded_at FROM "trades" JOIN product_sizes ON product_sizes\.id = trades\.product_size_id WHERE .* ORDER BY trades\.updated_at DESC`).
		WillReturnRows(rows)

	done, err := trades.FindDoneTrades(1, 1, 10)
	require.NoError(t, err)
	require.Len(t, done, 2)

	assert.Equal(t, 260, done[0].Size)
	assert.True(t, done[0].Price.Equal(decimal.NewFromInt(159000)))
	assert.Equal(t, newer, done[0].TradedAt)
	assert.True(t, done[0].TradedAt.After(done[1].TradedAt))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindTransactionTradesGroupsByPriceAndSize(t *testing.T) {
	db, mock := newServiceDB(t)
	trades := NewTradeService(db, nil)

	rows := sqlmock.NewRows([]string{"size", "price", "count"}).
		AddRow(250, "120000", 3).
		AddRow(260, "120000", 1).
		AddRow(250, "125000", 2)

	mock.ExpectQuery(`SELECT product_sizes\.size AS size, trades\.price AS price, COUNT\(trades\.price\) AS count FROM "trades" JOIN product_sizes .* GROUP BY trades\.price, product_sizes\.size ORDER BY trades\.price, product_sizes\.size`).
		WillReturnRows(rows)

	levels, err := trades.FindTransactionTrades(1, types.StateBuy, 1, 10)
	require.NoError(t, err)
	require.Len(t, levels, 3)

	assert.Equal(t, int64(3), levels[0].Count)
	assert.True(t, levels[0].Price.Equal(decimal.NewFromInt(120000)))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTradeUnknownSizeRollsBack(t *testing.T) {
	db, mock := newServiceDB(t)
	trades := NewTradeService(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "product_sizes" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "size", "product_id"}))
	mock.ExpectRollback()

	_, err := trades.SaveTrade(testMember(), &queries.TradeSavePayload{
		Price:         decimal.NewFromInt(150000),
		State:         types.StateBuy,
		ProductSizeID: 999,
	})

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeShared, domain_err.Code)
	assert.Contains(t, domain_err.Message, "999")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTradeOnlyTouchesOwnOpenTrades(t *testing.T) {
	db, mock := newServiceDB(t)
	trades := NewTradeService(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "trades" WHERE id = (.+) AND member_id = (.+) AND state IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price", "state", "product_size_id", "member_id"}))
	mock.ExpectRollback()

	err := trades.UpdateTrade(testMember(), 5, &queries.TradePricePayload{
		Price: decimal.NewFromInt(130000),
	})

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeShared, domain_err.Code)
	assert.Contains(t, domain_err.Message, "5")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTradeNotFound(t *testing.T) {
	db, mock := newServiceDB(t)
	trades := NewTradeService(db, nil)

	mock.ExpectExec(`DELETE FROM "trades"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := trades.DeleteTrade(testMember(), 5)

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeShared, domain_err.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteTradeRejectsOwnListing(t *testing.T) {
	db, mock := newServiceDB(t)
	trades := NewTradeService(db, nil)

	// The member_id <> clause keeps a member from settling their own
	// trade, so the lookup comes back empty.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "trades" WHERE id = (.+) AND member_id <> (.+) AND state IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price", "state", "product_size_id", "member_id"}))
	mock.ExpectRollback()

	err := trades.CompleteTrade(testMember(), 5)

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeShared, domain_err.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}
