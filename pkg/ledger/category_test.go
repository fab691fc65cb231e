package ledger_test

import (
	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestResolveOrCreateCategoryCreatesOnce() {
	user := suite.createTestUser("resolve@example.com")

	created, err := suite.ledger.ResolveOrCreateCategory(suite.ctx, user.ID, "Food")
	suite.Require().Nil(err)
	suite.Assert().NotEqual(uuid.Nil, created.ID)
	suite.Assert().Equal(user.ID, created.UserID)

	resolved, err := suite.ledger.ResolveOrCreateCategory(suite.ctx, user.ID, "  Food ")
	suite.Require().Nil(err)
	suite.Assert().Equal(created.ID, resolved.ID, "Existing category must be reused")
	suite.Assert().Equal(int64(1), suite.countRows(&models.Category{}))
}

func (suite *TestSuiteStandard) TestResolveOrCreateCategoryScopedToUser() {
	alice := suite.createTestUser("alice@example.com")
	bob := suite.createTestUser("bob@example.com")

	a, err := suite.ledger.ResolveOrCreateCategory(suite.ctx, alice.ID, "Food")
	suite.Require().Nil(err)

	b, err := suite.ledger.ResolveOrCreateCategory(suite.ctx, bob.ID, "Food")
	suite.Require().Nil(err)

	suite.Assert().NotEqual(a.ID, b.ID, "Categories of different users must be separate")
}

func (suite *TestSuiteStandard) TestResolveOrCreateCategoryEmptyName() {
	user := suite.createTestUser("empty@example.com")

	_, err := suite.ledger.ResolveOrCreateCategory(suite.ctx, user.ID, "   ")

	var validationErr *ledger.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Assert().Equal(map[string]string{"name": "name is required"}, validationErr.Fields())
	suite.Assert().Equal(int64(0), suite.countRows(&models.Category{}))
}

func (suite *TestSuiteStandard) TestResolveOrCreateCategoryDBFail() {
	user := suite.createTestUser("fail@example.com")
	suite.CloseDB()

	_, err := suite.ledger.ResolveOrCreateCategory(suite.ctx, user.ID, "Food")
	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestEnsureDefaultCategoriesIdempotent() {
	user := suite.createTestUser("defaults@example.com")

	suite.Require().Nil(suite.ledger.EnsureDefaultCategories(suite.ctx, user.ID, ledger.DefaultCategories))
	suite.Require().Nil(suite.ledger.EnsureDefaultCategories(suite.ctx, user.ID, ledger.DefaultCategories))

	categories, err := suite.ledger.ListCategories(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, len(ledger.DefaultCategories))
}

func (suite *TestSuiteStandard) TestEnsureDefaultCategoriesKeepsExisting() {
	user := suite.createTestUser("existing@example.com")

	food, err := suite.ledger.ResolveOrCreateCategory(suite.ctx, user.ID, "Food")
	suite.Require().Nil(err)

	suite.Require().Nil(suite.ledger.EnsureDefaultCategories(suite.ctx, user.ID, []string{"Food", "Rent", "Rent", " "}))

	categories, err := suite.ledger.ListCategories(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 2)
	suite.Assert().Equal(food.ID, categories[0].ID)
	suite.Assert().Equal("Rent", categories[1].Name)
}

func (suite *TestSuiteStandard) TestEnsureDefaultCategoriesCustomLedger() {
	user := suite.createTestUser("custom@example.com")
	l := ledger.New(suite.db, ledger.WithDefaultCategories([]string{"Books"}))

	suite.Assert().Equal([]string{"Books"}, l.DefaultCategories())
	suite.Require().Nil(l.EnsureDefaultCategories(suite.ctx, user.ID, nil))

	categories, err := l.ListCategories(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 1)
	suite.Assert().Equal("Books", categories[0].Name)
}

func (suite *TestSuiteStandard) TestListCategoriesSorted() {
	user := suite.createTestUser("sorted@example.com")
	other := suite.createTestUser("other@example.com")

	for _, name := range []string{"Utilities", "Food", "Transport"} {
		_, err := suite.ledger.ResolveOrCreateCategory(suite.ctx, user.ID, name)
		suite.Require().Nil(err)
	}
	_, err := suite.ledger.ResolveOrCreateCategory(suite.ctx, other.ID, "Books")
	suite.Require().Nil(err)

	categories, err := suite.ledger.ListCategories(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 3)
	suite.Assert().Equal("Food", categories[0].Name)
	suite.Assert().Equal("Transport", categories[1].Name)
	suite.Assert().Equal("Utilities", categories[2].Name)
}
