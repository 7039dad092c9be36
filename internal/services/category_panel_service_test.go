package services_test

import (
	"context"
	"errors"
	"testing"

	"personal-finance/internal/models"
	"personal-finance/internal/repositories"
	"personal-finance/internal/repositories/repository_mocks"
	"personal-finance/internal/services"
	"personal-finance/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategoryPanelServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	store       *service_mocks.MockCategoryStore
	repo        *repository_mocks.MockCategoryRepositoryInterface
	entryLogger *service_mocks.MockEntryLoggerInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	service     services.CategoryPanelServiceInterface
	userID      uuid.UUID
}

func (s *CategoryPanelServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = service_mocks.NewMockCategoryStore(s.ctrl)
	s.repo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.entryLogger = service_mocks.NewMockEntryLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = services.NewCategoryPanelService(s.store, s.repo, s.entryLogger, s.metrics)
	s.userID = uuid.New()
}

func (s *CategoryPanelServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryPanelServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryPanelServiceSuite))
}

func (s *CategoryPanelServiceSuite) TestPanel() {
	s.store.EXPECT().Read(gomock.Any(), s.userID).Return([]models.Category{
		{Name: "Freelance", TransactionType: models.DirectionIncome},
		{Name: "Transporte", TransactionType: models.DirectionExpense},
	}, false, nil)

	view, err := s.service.Panel(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Len(view.Income, 1)
	s.Len(view.Expense, 1)
	s.Equal("Alimentação", view.Suggestions[0].Name)
	s.Equal("Moradia", view.Suggestions[1].Name)
	s.Len(view.Suggestions, services.MaxCategorySuggestions)
}

func (s *CategoryPanelServiceSuite) TestPanel_Error() {
	s.store.EXPECT().Read(gomock.Any(), s.userID).Return(nil, false, errors.New("db down"))

	_, err := s.service.Panel(context.Background(), s.userID)
	s.Error(err)
}

func (s *CategoryPanelServiceSuite) TestSelectSuggestion() {
	form, err := s.service.SelectSuggestion(context.Background(), s.userID, "Freelance")

	s.Require().NoError(err)
	s.Equal(models.DirectionIncome, form.TransactionType)
	s.True(form.Open)

	_, err = s.service.SelectSuggestion(context.Background(), s.userID, "Cripto")
	s.ErrorIs(err, services.ErrSuggestionNotFound)
}

func (s *CategoryPanelServiceSuite) TestCreateCategory() {
	notifier := services.NewCollectingNotifier()
	categoryID := uuid.New()

	s.store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Category) (*models.Category, error) {
		c.ID = categoryID
		return c, nil
	})
	s.entryLogger.EXPECT().LogCategoryCreated(gomock.Any(), s.userID, categoryID, "Viagens")
	s.metrics.EXPECT().IncrementCounter("category.created", map[string]string{"outcome": "success", "type": models.DirectionExpense})

	category, err := s.service.CreateCategory(context.Background(), s.userID, services.CategoryForm{Name: "Viagens"}, notifier)

	s.Require().NoError(err)
	s.Equal(categoryID, category.ID)
	last, _ := notifier.Last()
	s.Equal(services.MsgCategoryCreated, last.Message)
}

func (s *CategoryPanelServiceSuite) TestCreateCategory_Failure() {
	notifier := services.NewCollectingNotifier()
	s.store.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, &services.StoreError{Message: services.MsgCategoryDuplicate, Err: services.ErrDuplicateCategory})
	s.metrics.EXPECT().IncrementCounter("category.created", map[string]string{"outcome": "failed"})

	_, err := s.service.CreateCategory(context.Background(), s.userID, services.CategoryForm{Name: "Lazer"}, notifier)

	s.ErrorIs(err, services.ErrDuplicateCategory)
	last, _ := notifier.Last()
	s.Equal(services.MsgCategoryDuplicate, last.Message)
}

func (s *CategoryPanelServiceSuite) TestDeactivateCategory() {
	categoryID := uuid.New()
	s.repo.EXPECT().Deactivate(gomock.Any(), s.userID, categoryID).Return(nil)
	s.entryLogger.EXPECT().LogCategoryDeactivated(gomock.Any(), s.userID, categoryID)

	s.NoError(s.service.DeactivateCategory(context.Background(), s.userID, categoryID))
}

func (s *CategoryPanelServiceSuite) TestDeactivateCategory_NotFound() {
	categoryID := uuid.New()
	s.repo.EXPECT().Deactivate(gomock.Any(), s.userID, categoryID).Return(repositories.ErrCategoryNotFound)

	err := s.service.DeactivateCategory(context.Background(), s.userID, categoryID)
	s.ErrorIs(err, repositories.ErrCategoryNotFound)
}
