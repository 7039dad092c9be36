package services

import (
	"context"

	"personal-finance/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FormData is everything the transaction entry form needs to render
type FormData struct {
	FundingTargets    []models.FundingTarget  `json:"funding_targets"`
	Categories        []models.Category       `json:"categories"`
	CategoriesLoading bool                    `json:"categories_loading"`
	Draft             models.TransactionDraft `json:"draft"`
}

// loadFormSources reads accounts, cards and categories concurrently
func loadFormSources(
	ctx context.Context,
	userID uuid.UUID,
	accounts AccountStore,
	cards CreditCardStore,
	categories CategoryStore,
) (targets []models.FundingTarget, cats []models.Category, loading bool, err error) {
	var (
		accountRows []models.Account
		cardRows    []models.CreditCard
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accountRows, err = accounts.Read(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		cardRows, err = cards.Read(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		cats, loading, err = categories.Read(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, false, err
	}

	return UnifyFundingSources(accountRows, cardRows), cats, loading, nil
}
