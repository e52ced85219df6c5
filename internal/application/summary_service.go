package application

import (
	"context"

	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// lowBalanceThreshold flags accounts whose balance is below this value.
var lowBalanceThreshold = decimal.NewFromInt(1000)

// SummaryService derives the read-only account summary. The account is
// fetched through the same retrieval path as the public read endpoint,
// over a second hop, so upstream failures surface here.
type SummaryService struct {
	fetcher domain.AccountFetcher
	logger  *zap.Logger
}

func NewSummaryService(fetcher domain.AccountFetcher, logger *zap.Logger) *SummaryService {
	return &SummaryService{
		fetcher: fetcher,
		logger:  logger,
	}
}

// GetSummary fetches the account and computes the low-balance flag. An
// absent balance counts as zero before the comparison.
func (s *SummaryService) GetSummary(ctx context.Context, id uuid.UUID) (*domain.AccountSummary, error) {
	account, err := s.fetcher.FetchAccount(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch account for summary",
			zap.String("account_id", id.String()), zap.Error(err))
		return nil, err
	}

	return &domain.AccountSummary{
		ID:             account.ID,
		OwnerName:      account.OwnerName,
		AccountNumber:  account.AccountNumber,
		BranchCode:     account.BranchCode,
		Currency:       account.Currency,
		Balance:        account.Balance,
		Status:         account.Status,
		LowBalanceRisk: account.Balance.LessThan(lowBalanceThreshold),
	}, nil
}
