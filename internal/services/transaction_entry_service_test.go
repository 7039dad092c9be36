package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"personal-finance/internal/models"
	"personal-finance/internal/repositories/repository_mocks"
	"personal-finance/internal/services"
	"personal-finance/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TransactionEntryServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	accounts     *service_mocks.MockAccountStore
	cards        *service_mocks.MockCreditCardStore
	categories   *service_mocks.MockCategoryStore
	transactions *service_mocks.MockTransactionStore
	history      *repository_mocks.MockTransactionRepositoryInterface
	service      services.TransactionEntryServiceInterface

	userID    uuid.UUID
	accountID uuid.UUID
	groceries models.Category
	salary    models.Category
}

func (s *TransactionEntryServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accounts = service_mocks.NewMockAccountStore(s.ctrl)
	s.cards = service_mocks.NewMockCreditCardStore(s.ctrl)
	s.categories = service_mocks.NewMockCategoryStore(s.ctrl)
	s.transactions = service_mocks.NewMockTransactionStore(s.ctrl)
	s.history = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)

	entryLogger := service_mocks.NewMockEntryLoggerInterface(s.ctrl)
	entryLogger.EXPECT().LogValidationFailed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	entryLogger.EXPECT().LogSubmissionStarted(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	entryLogger.EXPECT().LogSubmissionCompleted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	entryLogger.EXPECT().LogSubmissionFailed(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	today := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	s.service = services.NewTransactionEntryService(
		s.accounts, s.cards, s.categories, s.transactions, s.history,
		entryLogger, metrics, func() time.Time { return today },
	)

	s.userID = uuid.New()
	s.accountID = uuid.New()
	s.groceries = models.Category{ID: uuid.New(), Name: "Alimentação", TransactionType: models.DirectionExpense}
	s.salary = models.Category{ID: uuid.New(), Name: "Salário", TransactionType: models.DirectionIncome}
}

func (s *TransactionEntryServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransactionEntryServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionEntryServiceSuite))
}

func (s *TransactionEntryServiceSuite) TestFundingTargets() {
	s.accounts.EXPECT().Read(gomock.Any(), s.userID).Return([]models.Account{{ID: s.accountID, Name: "Conta", Type: models.AccountTypeChecking}}, nil)
	s.cards.EXPECT().Read(gomock.Any(), s.userID).Return([]models.CreditCard{{ID: uuid.New(), Name: "Visa"}}, nil)

	targets, err := s.service.FundingTargets(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Len(targets, 2)
	s.Equal(models.FundingKindAccount, targets[0].Kind)
	s.Equal(models.FundingKindCreditCard, targets[1].Kind)
}

func (s *TransactionEntryServiceSuite) TestFundingTargets_StoreError() {
	s.accounts.EXPECT().Read(gomock.Any(), s.userID).Return(nil, errors.New("db down"))

	_, err := s.service.FundingTargets(context.Background(), s.userID)
	s.Error(err)
}

func (s *TransactionEntryServiceSuite) TestCategories_FilteredByDirection() {
	s.categories.EXPECT().Read(gomock.Any(), s.userID).Return([]models.Category{s.groceries, s.salary}, false, nil)

	categories, loading, err := s.service.Categories(context.Background(), s.userID, models.DirectionIncome)

	s.NoError(err)
	s.False(loading)
	s.Equal([]models.Category{s.salary}, categories)
}

func (s *TransactionEntryServiceSuite) TestCategories_AllWhenNoDirection() {
	s.categories.EXPECT().Read(gomock.Any(), s.userID).Return([]models.Category{s.groceries, s.salary}, false, nil)

	categories, _, err := s.service.Categories(context.Background(), s.userID, "")

	s.NoError(err)
	s.Len(categories, 2)
}

func (s *TransactionEntryServiceSuite) TestCategories_InvalidDirection() {
	_, _, err := s.service.Categories(context.Background(), s.userID, "transfer")
	s.ErrorIs(err, services.ErrInvalidDirection)
}

func (s *TransactionEntryServiceSuite) TestLoadForm() {
	s.accounts.EXPECT().Read(gomock.Any(), s.userID).Return([]models.Account{{ID: s.accountID, Name: "Conta", Type: models.AccountTypeSavings}}, nil)
	s.cards.EXPECT().Read(gomock.Any(), s.userID).Return(nil, nil)
	s.categories.EXPECT().Read(gomock.Any(), s.userID).Return([]models.Category{s.groceries, s.salary}, false, nil)

	data, err := s.service.LoadForm(context.Background(), s.userID, "")

	s.Require().NoError(err)
	s.Len(data.FundingTargets, 1)
	s.Equal([]models.Category{s.groceries}, data.Categories)
	s.False(data.CategoriesLoading)
	s.Equal(models.DirectionExpense, data.Draft.Type)
	s.Equal("2024-06-01", data.Draft.Date)
	s.Equal(models.TransactionStatusCompleted, data.Draft.Status)
}

func (s *TransactionEntryServiceSuite) TestLoadForm_SourceFailure() {
	s.accounts.EXPECT().Read(gomock.Any(), s.userID).Return(nil, nil).AnyTimes()
	s.cards.EXPECT().Read(gomock.Any(), s.userID).Return(nil, errors.New("cards unavailable")).AnyTimes()
	s.categories.EXPECT().Read(gomock.Any(), s.userID).Return(nil, false, nil).AnyTimes()

	_, err := s.service.LoadForm(context.Background(), s.userID, models.DirectionIncome)
	s.Error(err)
}

func (s *TransactionEntryServiceSuite) TestSubmit_Success() {
	notifier := services.NewCollectingNotifier()
	s.categories.EXPECT().Read(gomock.Any(), s.userID).Return([]models.Category{s.groceries, s.salary}, false, nil)
	s.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Transaction{ID: uuid.New()}, nil).Times(1)

	tx, err := s.service.Submit(context.Background(), s.userID, "form-1", models.TransactionDraft{
		Amount:      "25,90",
		Description: "Padaria",
		AccountID:   s.accountID.String(),
		CategoryID:  s.groceries.ID.String(),
	}, notifier)

	s.Require().NoError(err)
	s.NotNil(tx)
	last, ok := notifier.Last()
	s.True(ok)
	s.Equal(services.MsgExpenseCreated, last.Message)
}

func (s *TransactionEntryServiceSuite) TestSubmit_ValidationFailureNeverReachesStore() {
	notifier := services.NewCollectingNotifier()
	s.categories.EXPECT().Read(gomock.Any(), s.userID).Return([]models.Category{s.groceries}, false, nil)
	s.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Submit(context.Background(), s.userID, "", models.TransactionDraft{
		Type:        models.DirectionExpense,
		Amount:      "10",
		Description: "Padaria",
		AccountID:   s.accountID.String(),
	}, notifier)

	s.True(services.IsValidationError(err))
	s.Len(notifier.Notifications(), 1)
}

func (s *TransactionEntryServiceSuite) TestSubmit_InvalidDirection() {
	_, err := s.service.Submit(context.Background(), s.userID, "", models.TransactionDraft{Type: "transfer"}, nil)
	s.ErrorIs(err, services.ErrInvalidDirection)
}

func (s *TransactionEntryServiceSuite) TestSubmit_SameFormIDInFlight() {
	s.categories.EXPECT().Read(gomock.Any(), s.userID).Return([]models.Category{s.groceries}, false, nil).AnyTimes()

	started := make(chan struct{})
	release := make(chan struct{})
	s.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, services.TransactionInput) (*models.Transaction, error) {
			close(started)
			<-release
			return &models.Transaction{ID: uuid.New()}, nil
		}).Times(1)

	draft := models.TransactionDraft{
		Amount:      "10",
		Description: "Padaria",
		AccountID:   s.accountID.String(),
		CategoryID:  s.groceries.ID.String(),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.service.Submit(context.Background(), s.userID, "form-42", draft, nil)
		s.NoError(err)
	}()

	<-started
	notifier := services.NewCollectingNotifier()
	_, err := s.service.Submit(context.Background(), s.userID, "form-42", draft, notifier)
	s.ErrorIs(err, services.ErrSubmissionInProgress)
	s.Empty(notifier.Notifications())

	close(release)
	wg.Wait()
}

func (s *TransactionEntryServiceSuite) TestListRecent() {
	rows := []models.Transaction{{ID: uuid.New()}, {ID: uuid.New()}}
	s.history.EXPECT().ListRecentByUser(gomock.Any(), s.userID, 20).Return(rows, nil)

	transactions, err := s.service.ListRecent(context.Background(), s.userID, 20)

	s.NoError(err)
	s.Equal(rows, transactions)
}

func (s *TransactionEntryServiceSuite) TestListRecent_Error() {
	s.history.EXPECT().ListRecentByUser(gomock.Any(), s.userID, 5).Return(nil, errors.New("db down"))

	_, err := s.service.ListRecent(context.Background(), s.userID, 5)
	s.Error(err)
}
