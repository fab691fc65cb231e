package ledger_test

import (
	"errors"

	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestRegisterUser() {
	user, err := suite.ledger.RegisterUser(suite.ctx, ledger.UserFields{Email: " Jane@Example.com ", Password: "hunter2", Confirmation: "hunter2"})
	suite.Require().Nil(err)
	suite.Assert().Equal("jane@example.com", user.Email)
	suite.Assert().NotEqual("hunter2", user.PasswordHash, "Passwords must never be stored in plain text")

	authenticated, err := suite.ledger.Authenticate(suite.ctx, "JANE@example.com", "hunter2")
	suite.Require().Nil(err)
	suite.Assert().Equal(user.ID, authenticated.ID)

	got, err := suite.ledger.GetUser(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(user.Email, got.Email)
}

func (suite *TestSuiteStandard) TestRegisterUserSeedsDefaultCategories() {
	l := ledger.New(suite.db, ledger.WithPasswordCost(bcrypt.MinCost))

	user, err := l.RegisterUser(suite.ctx, ledger.UserFields{Email: "seeded@example.com", Password: "a", Confirmation: "a"})
	suite.Require().Nil(err)

	categories, err := l.ListCategories(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, len(ledger.DefaultCategories))
}

func (suite *TestSuiteStandard) TestRegisterUserRollsBackWhenSeedingFails() {
	l := ledger.New(suite.db, ledger.WithPasswordCost(bcrypt.MinCost))

	err := suite.db.Callback().Create().Before("gorm:create").Register("test:fail_categories", func(db *gorm.DB) {
		if db.Statement.Table == "categories" {
			_ = db.AddError(errors.New("category insert failed"))
		}
	})
	suite.Require().Nil(err)

	_, err = l.RegisterUser(suite.ctx, ledger.UserFields{Email: "rollback@example.com", Password: "a", Confirmation: "a"})
	suite.Assert().NotNil(err)

	suite.Assert().Equal(int64(0), suite.countRows(&models.User{}), "The user must be rolled back")
	suite.Assert().Equal(int64(0), suite.countRows(&models.Category{}))

	_, err = l.GetUserByEmail(suite.ctx, "rollback@example.com")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestRegisterUserExists() {
	suite.createTestUser("taken@example.com")

	_, err := suite.ledger.RegisterUser(suite.ctx, ledger.UserFields{Email: "Taken@example.com", Password: "a", Confirmation: "a"})
	suite.Assert().ErrorIs(err, ledger.ErrUserExists)
}

func (suite *TestSuiteStandard) TestRegisterUserValidation() {
	_, err := suite.ledger.RegisterUser(suite.ctx, ledger.UserFields{Email: "not an address", Password: "a", Confirmation: "b"})

	var validationErr *ledger.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Assert().Equal(map[string]string{
		"email":        "email is not a valid email address",
		"confirmation": "passwords do not match",
	}, validationErr.Fields())

	_, err = suite.ledger.RegisterUser(suite.ctx, ledger.UserFields{})
	suite.Require().ErrorAs(err, &validationErr)
	suite.Assert().Len(validationErr.Errors, 2, "Empty email and password must both be reported")
	suite.Assert().Equal(int64(0), suite.countRows(&models.User{}))
}

func (suite *TestSuiteStandard) TestAuthenticateFails() {
	suite.createTestUser("auth@example.com")

	_, err := suite.ledger.Authenticate(suite.ctx, "auth@example.com", "wrong")
	suite.Assert().ErrorIs(err, ledger.ErrInvalidCredentials)

	_, err = suite.ledger.Authenticate(suite.ctx, "nobody@example.com", "secret")
	suite.Assert().ErrorIs(err, ledger.ErrInvalidCredentials)
}

func (suite *TestSuiteStandard) TestGetUserNotFound() {
	_, err := suite.ledger.GetUser(suite.ctx, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
