package repositories

import (
	"context"
	"testing"
	"time"

	"personal-finance/internal/database"
	"personal-finance/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     TransactionRepositoryInterface
	ctx      context.Context
	userID   uuid.UUID
	account  *models.Account
	category *models.Category
}

// SetupTest runs before each test in the suite
func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
	s.userID = uuid.New()
	s.account = database.CreateTestAccount(s.T(), s.db, s.userID, "Conta Corrente", models.AccountTypeChecking)
	s.category = database.CreateTestCategory(s.T(), s.db, s.userID, "Alimentação", models.DirectionExpense)
}

// TearDownTest runs after each test in the suite
func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) newTransaction(date time.Time) *models.Transaction {
	return &models.Transaction{
		UserID:      s.userID,
		AccountID:   s.account.ID,
		CategoryID:  &s.category.ID,
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromFloat(gofakeit.Float64Range(1, 500)).Round(2),
		Description: gofakeit.Sentence(3),
		Date:        date,
	}
}

func (s *TransactionRepositorySuite) TestCreate_DefaultsAndPreload() {
	transaction := s.newTransaction(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	s.Require().NoError(s.repo.Create(s.ctx, transaction))
	s.NotEqual(uuid.Nil, transaction.ID)
	s.Equal(models.TransactionStatusCompleted, transaction.Status)
	s.Equal(models.FundingKindAccount, transaction.FundingKind)

	found, err := s.repo.GetByID(s.ctx, transaction.ID)
	s.Require().NoError(err)
	s.True(transaction.Amount.Equal(found.Amount))
	s.Require().NotNil(found.Category)
	s.Equal("Alimentação", found.Category.Name)
}

func (s *TransactionRepositorySuite) TestCreate_RejectsNonPositiveAmount() {
	transaction := s.newTransaction(time.Now())
	transaction.Amount = decimal.Zero

	err := s.repo.Create(s.ctx, transaction)
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestListRecentByUser_NewestFirstWithLimit() {
	older := s.newTransaction(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := s.newTransaction(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	newest := s.newTransaction(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	for _, tx := range []*models.Transaction{older, newest, newer} {
		s.Require().NoError(s.repo.Create(s.ctx, tx))
	}

	recent, err := s.repo.ListRecentByUser(s.ctx, s.userID, 2)
	s.Require().NoError(err)
	s.Require().Len(recent, 2)
	s.Equal(newest.ID, recent[0].ID)
	s.Equal(newer.ID, recent[1].ID)

	others, err := s.repo.ListRecentByUser(s.ctx, uuid.New(), 10)
	s.Require().NoError(err)
	s.Empty(others)
}
