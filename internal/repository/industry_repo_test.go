package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndustryList(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	repo := NewIndustryRepository(db)

	industries, err := repo.List()
	require.NoError(t, err)
	require.Len(t, industries, 2)

	byCode := make(map[string]IndustryWithCompanies)
	for _, ind := range industries {
		byCode[ind.Code] = ind
	}
	assert.Equal(t, "Technology", byCode["tech"].Industry)
	assert.ElementsMatch(t, []string{"apple", "ibm"}, byCode["tech"].Companies)
	assert.ElementsMatch(t, []string{"ibm"}, byCode["finance"].Companies)
}

func TestIndustryListNoAssociations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIndustryRepository(db)

	_, err := repo.Create("health", "Healthcare")
	require.NoError(t, err)

	industries, err := repo.List()
	require.NoError(t, err)
	require.Len(t, industries, 1)
	assert.Nil(t, industries[0].Companies)
}

func TestIndustryCreateDuplicate(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	repo := NewIndustryRepository(db)

	_, err := repo.Create("tech", "Technology again")
	assert.Error(t, err)
}

func TestAssociate(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	repo := NewIndustryRepository(db)

	require.NoError(t, repo.Associate("finance", "apple"))

	industries, err := repo.List()
	require.NoError(t, err)
	for _, ind := range industries {
		if ind.Code == "finance" {
			assert.ElementsMatch(t, []string{"apple", "ibm"}, ind.Companies)
		}
	}
}

func TestAssociateDuplicatePair(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	repo := NewIndustryRepository(db)

	assert.Error(t, repo.Associate("tech", "apple"))
}

func TestAssociateUnknownEndpoints(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	repo := NewIndustryRepository(db)

	assert.Error(t, repo.Associate("tech", "nocorp"))
	assert.Error(t, repo.Associate("noindustry", "apple"))
}
