package services

import (
	"testing"

	"personal-finance/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUnifyFundingSources_AccountsThenCards(t *testing.T) {
	accounts := []models.Account{
		{ID: uuid.New(), Name: "Conta Corrente", Type: models.AccountTypeChecking, BankName: "Nubank"},
		{ID: uuid.New(), Name: "Poupança", Type: models.AccountTypeSavings},
		{ID: uuid.New(), Name: "Carteira", Type: models.AccountTypeWallet},
	}
	cards := []models.CreditCard{
		{ID: uuid.New(), Name: "Visa Gold", BankName: "Itaú"},
		{ID: uuid.New(), Name: "Master Black", BankName: "Inter"},
	}

	targets := UnifyFundingSources(accounts, cards)

	assert.Len(t, targets, len(accounts)+len(cards))
	for i, account := range accounts {
		assert.Equal(t, account.ID, targets[i].ID)
		assert.Equal(t, account.Name, targets[i].Name)
		assert.Equal(t, models.FundingKindAccount, targets[i].Kind)
		assert.Equal(t, account.Type, targets[i].AccountType)
	}
	for i, card := range cards {
		target := targets[len(accounts)+i]
		assert.Equal(t, card.ID, target.ID)
		assert.Equal(t, models.FundingKindCreditCard, target.Kind)
		assert.Equal(t, card.BankName, target.BankName)
		assert.Empty(t, target.AccountType)
		assert.Equal(t, "💳", target.DisplayIcon)
	}

	assert.Equal(t, "🏦", targets[0].DisplayIcon)
	assert.Equal(t, "Nubank", targets[0].BankName)
	assert.Equal(t, "🐷", targets[1].DisplayIcon)
	assert.Equal(t, "👛", targets[2].DisplayIcon)
}

func TestUnifyFundingSources_Empty(t *testing.T) {
	targets := UnifyFundingSources(nil, nil)
	assert.NotNil(t, targets)
	assert.Empty(t, targets)
}

func TestUnifyFundingSources_OnlyCards(t *testing.T) {
	cards := make([]models.CreditCard, 4)
	for i := range cards {
		cards[i] = models.CreditCard{ID: uuid.New(), Name: gofakeit.CreditCardType(), BankName: gofakeit.Company()}
	}

	targets := UnifyFundingSources(nil, cards)

	assert.Len(t, targets, 4)
	for i := range cards {
		assert.Equal(t, cards[i].ID, targets[i].ID)
		assert.Equal(t, cards[i].Name, targets[i].Name)
	}
}

func TestUnifyFundingSources_UnknownAccountTypeGetsDefaultIcon(t *testing.T) {
	targets := UnifyFundingSources([]models.Account{{ID: uuid.New(), Name: "Legado", Type: "brokerage"}}, nil)
	assert.Equal(t, "🏦", targets[0].DisplayIcon)
}
