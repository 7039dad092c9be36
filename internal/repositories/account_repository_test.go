package repositories

import (
	"context"
	"testing"

	"personal-finance/internal/database"
	"personal-finance/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// FundingRepositorySuite covers the account and credit card repositories
type FundingRepositorySuite struct {
	suite.Suite
	db       *database.DB
	accounts AccountRepositoryInterface
	cards    CreditCardRepositoryInterface
	ctx      context.Context
	userID   uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *FundingRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.accounts = NewAccountRepository(s.db.DB)
	s.cards = NewCreditCardRepository(s.db.DB)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *FundingRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestFundingRepositorySuite(t *testing.T) {
	suite.Run(t, new(FundingRepositorySuite))
}

func (s *FundingRepositorySuite) TestAccountGetByID() {
	account := database.CreateTestAccount(s.T(), s.db, s.userID, "Conta Corrente", models.AccountTypeChecking)

	found, err := s.accounts.GetByID(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(account.Name, found.Name)
	s.True(found.Balance.Equal(account.Balance))

	_, err = s.accounts.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *FundingRepositorySuite) TestAccountListActiveByUser() {
	checking := database.CreateTestAccount(s.T(), s.db, s.userID, "Conta Corrente", models.AccountTypeChecking)
	closed := database.CreateTestAccount(s.T(), s.db, s.userID, "Poupança antiga", models.AccountTypeSavings)
	wallet := database.CreateTestAccount(s.T(), s.db, s.userID, "Carteira", models.AccountTypeWallet)
	database.CreateTestAccount(s.T(), s.db, uuid.New(), "Alheia", models.AccountTypeChecking)

	s.Require().NoError(s.db.Model(closed).Update("is_active", false).Error)

	accounts, err := s.accounts.ListActiveByUser(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal(checking.ID, accounts[0].ID)
	s.Equal(wallet.ID, accounts[1].ID)
}

func (s *FundingRepositorySuite) TestCreditCardGetByID() {
	card := database.CreateTestCreditCard(s.T(), s.db, s.userID, "Roxinho", "Nubank")

	found, err := s.cards.GetByID(s.ctx, card.ID)
	s.Require().NoError(err)
	s.Equal("Nubank", found.BankName)
	s.Equal(1, found.ClosingDay)
	s.Equal(10, found.DueDay)

	_, err = s.cards.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrCreditCardNotFound)
}

func (s *FundingRepositorySuite) TestCreditCardListActiveByUser() {
	first := database.CreateTestCreditCard(s.T(), s.db, s.userID, "Roxinho", "Nubank")
	second := database.CreateTestCreditCard(s.T(), s.db, s.userID, "Platinum", "Itaú")
	database.CreateTestCreditCard(s.T(), s.db, uuid.New(), "Gold", "Bradesco")

	cards, err := s.cards.ListActiveByUser(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(cards, 2)
	s.Equal(first.ID, cards[0].ID)
	s.Equal(second.ID, cards[1].ID)
}
