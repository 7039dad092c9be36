package services

import "personal-finance/internal/models"

const creditCardIcon = "💳"

var accountIcons = map[string]string{
	models.AccountTypeChecking:   "🏦",
	models.AccountTypeSavings:    "🐷",
	models.AccountTypeCreditCard: creditCardIcon,
	models.AccountTypeWallet:     "👛",
	models.AccountTypeInvestment: "📈",
}

// UnifyFundingSources merges accounts and credit cards into one list of funding targets.
// Accounts come first, then credit cards, each in their original order.
func UnifyFundingSources(accounts []models.Account, cards []models.CreditCard) []models.FundingTarget {
	targets := make([]models.FundingTarget, 0, len(accounts)+len(cards))

	for _, account := range accounts {
		icon, ok := accountIcons[account.Type]
		if !ok {
			icon = accountIcons[models.AccountTypeChecking]
		}
		targets = append(targets, models.FundingTarget{
			ID:          account.ID,
			Name:        account.Name,
			Kind:        models.FundingKindAccount,
			DisplayIcon: icon,
			BankName:    account.BankName,
			AccountType: account.Type,
		})
	}

	for _, card := range cards {
		targets = append(targets, models.FundingTarget{
			ID:          card.ID,
			Name:        card.Name,
			Kind:        models.FundingKindCreditCard,
			DisplayIcon: creditCardIcon,
			BankName:    card.BankName,
		})
	}

	return targets
}
