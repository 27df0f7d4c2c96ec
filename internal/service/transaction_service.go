package service

import (
	"context"
	"time"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// TransactionFilter narrows completed-sale listings.
type TransactionFilter struct {
	StoreCode     string
	PaymentMethod string
	From          *time.Time
	To            *time.Time
	Page          int
	Limit         int
}

// DailySummary aggregates one day's sales for the end-of-day report.
type DailySummary struct {
	Date     string                     `json:"date"`
	Count    int                        `json:"count"`
	Subtotal decimal.Decimal            `json:"subtotal"`
	Tax      decimal.Decimal            `json:"tax"`
	Total    decimal.Decimal            `json:"total"`
	ByMethod map[string]decimal.Decimal `json:"by_method"`
}

type TransactionService interface {
	GetTransaction(ctx context.Context, id uint) (*model.Transaction, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*model.Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, int64, error)
	DailySummary(ctx context.Context, storeCode string, day time.Time) (*DailySummary, error)
}

type transactionService struct {
	txRepo repository.TransactionRepository
}

func NewTransactionService(txRepo repository.TransactionRepository) TransactionService {
	return &transactionService{txRepo: txRepo}
}

func (s *transactionService) GetTransaction(ctx context.Context, id uint) (*model.Transaction, error) {
	return s.txRepo.FindByID(ctx, id)
}

func (s *transactionService) GetByTransactionID(ctx context.Context, transactionID string) (*model.Transaction, error) {
	return s.txRepo.FindByTransactionID(ctx, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.txRepo.List(ctx, repository.TransactionListFilter{
		StoreCode:     filter.StoreCode,
		PaymentMethod: filter.PaymentMethod,
		From:          filter.From,
		To:            filter.To,
		Page:          filter.Page,
		Limit:         filter.Limit,
	})
}

func (s *transactionService) DailySummary(ctx context.Context, storeCode string, day time.Time) (*DailySummary, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24 * time.Hour)

	summary := &DailySummary{
		Date:     from.Format("2006-01-02"),
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
		ByMethod: map[string]decimal.Decimal{},
	}

	// Page through the day; a shift rarely exceeds a few hundred sales.
	page := 1
	const limit = 200
	for {
		txs, total, err := s.txRepo.List(ctx, repository.TransactionListFilter{
			StoreCode: storeCode,
			From:      &from,
			To:        &to,
			Page:      page,
			Limit:     limit,
		})
		if err != nil {
			return nil, err
		}
		for _, tx := range txs {
			summary.Count++
			summary.Subtotal = summary.Subtotal.Add(tx.Subtotal)
			summary.Tax = summary.Tax.Add(tx.Tax)
			summary.Total = summary.Total.Add(tx.Total)
			method := summary.ByMethod[tx.PaymentMethod]
			summary.ByMethod[tx.PaymentMethod] = method.Add(tx.Total)
		}
		if int64(page*limit) >= total {
			break
		}
		page++
	}

	return summary, nil
}
