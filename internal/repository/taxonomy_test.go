//go:build integration
// +build integration

package repository

import (
	"testing"

	"glass-connect-backend/internal/schema"
	"glass-connect-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TaxonomyRepositoryTestSuite tests the TaxonomyRepository
type TaxonomyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TaxonomyRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TaxonomyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTaxonomyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TaxonomyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TaxonomyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TaxonomyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestOfferOptionsOrdering tests group, sort order and code ordering
func (suite *TaxonomyRepositoryTestSuite) TestOfferOptionsOrdering() {
	late := suite.factories.Taxonomy.OfferOption(schema.GroupOfferFormat, "na")
	late.SortOrder = 900
	options := []interface{}{
		late,
		suite.factories.Taxonomy.OfferOption(schema.GroupOfferFormat, "shell_space"),
		suite.factories.Taxonomy.OfferOption(schema.GroupOfferFormat, "mixed_offer"),
		suite.factories.Taxonomy.OfferOption(schema.GroupApplicationMode, "rolling"),
	}
	for _, o := range options {
		suite.Require().NoError(suite.baseTestSuite.DB.Create(o).Error)
	}

	list, err := suite.repo.ListOfferOptions("", true)
	suite.NoError(err)
	codes := make([]string, 0, len(list))
	for _, o := range list {
		codes = append(codes, o.Code)
	}
	suite.Equal([]string{"rolling", "mixed_offer", "shell_space", "na"}, codes)

	list, err = suite.repo.ListOfferOptions(string(schema.GroupApplicationMode), true)
	suite.NoError(err)
	suite.Len(list, 1)
}

// TestOfferOptionsActiveOnly tests filtering inactive options
func (suite *TaxonomyRepositoryTestSuite) TestOfferOptionsActiveOnly() {
	inactive := suite.factories.Taxonomy.OfferOption(schema.GroupOfferFormat, "legacy")
	inactive.IsActive = false
	suite.Require().NoError(suite.repo.UpsertOfferOption(inactive))

	list, err := suite.repo.ListOfferOptions("", true)
	suite.NoError(err)
	suite.Empty(list)

	list, err = suite.repo.ListOfferOptions("", false)
	suite.NoError(err)
	suite.Len(list, 1)
}

// TestUpsertOfferOption tests that group and code identify an option
func (suite *TaxonomyRepositoryTestSuite) TestUpsertOfferOption() {
	opt := suite.factories.Taxonomy.OfferOption(schema.GroupOfferFormat, "shell_space")
	suite.Require().NoError(suite.repo.UpsertOfferOption(opt))

	again := suite.factories.Taxonomy.OfferOption(schema.GroupOfferFormat, "shell_space")
	again.LabelFr = "Espace nu"
	suite.NoError(suite.repo.UpsertOfferOption(again))

	found, err := suite.repo.GetOfferOption(string(schema.GroupOfferFormat), "shell_space")
	suite.NoError(err)
	suite.Equal("Espace nu", found.LabelFr)

	list, err := suite.repo.ListOfferOptions("", false)
	suite.NoError(err)
	suite.Len(list, 1)

	_, err = suite.repo.GetOfferOption(string(schema.GroupPricingModel), "shell_space")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestErcDisciplines tests panel ordering and upsert
func (suite *TaxonomyRepositoryTestSuite) TestErcDisciplines() {
	for _, code := range []string{"PE10", "LS1", "PE2", "PE1"} {
		suite.Require().NoError(suite.repo.UpsertErcDiscipline(suite.factories.Taxonomy.ErcDiscipline(code, code)))
	}
	suite.NoError(suite.repo.UpsertErcDiscipline(suite.factories.Taxonomy.ErcDiscipline("PE1", "Mathematics")))

	list, err := suite.repo.ListErcDisciplines("")
	suite.NoError(err)
	codes := make([]string, 0, len(list))
	for _, o := range list {
		codes = append(codes, o.Code)
	}
	suite.Equal([]string{"LS1", "PE1", "PE2", "PE10"}, codes)

	found, err := suite.repo.GetErcDiscipline("PE1")
	suite.NoError(err)
	suite.Equal("Mathematics", found.Title)

	list, err = suite.repo.ListErcDisciplines("PE")
	suite.NoError(err)
	suite.Len(list, 3)
}

// TestTaxonomyRepositoryTestSuite runs the test suite
func TestTaxonomyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaxonomyRepositoryTestSuite))
}
