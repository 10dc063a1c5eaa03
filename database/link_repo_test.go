package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkbio-backend/errs"
	"linkbio-backend/models"
)

func strPtr(s string) *string { return &s }

func newTestLink(profileID int, url string) models.Link {
	return models.Link{
		ProfileID: profileID,
		Type:      models.LinkTypeImage,
		LinkURL:   url,
	}
}

func TestCreateAssignsSequentialOrderIndices(t *testing.T) {
	repo := newTestDatabase(t).LinkRepo()

	for i, url := range []string{"https://a", "https://b", "https://c"} {
		link := newTestLink(1, url)
		require.NoError(t, repo.Create(&link))
		assert.Equal(t, i+1, link.OrderIndex)
		assert.NotZero(t, link.ID)
	}

	links, err := repo.FindAllByProfile(1)
	require.NoError(t, err)
	require.Len(t, links, 3)
	for i, link := range links {
		assert.Equal(t, i+1, link.OrderIndex)
	}
	assert.Equal(t, "https://a", links[0].LinkURL)
	assert.Equal(t, "https://c", links[2].LinkURL)
}

func TestOrderIndicesAreScopedPerProfile(t *testing.T) {
	repo := newTestDatabase(t).LinkRepo()

	first := newTestLink(1, "https://a")
	require.NoError(t, repo.Create(&first))
	second := newTestLink(2, "https://b")
	require.NoError(t, repo.Create(&second))

	assert.Equal(t, 1, first.OrderIndex)
	assert.Equal(t, 1, second.OrderIndex)
}

func TestCreateDefaultsToActive(t *testing.T) {
	repo := newTestDatabase(t).LinkRepo()

	link := newTestLink(1, "https://a")
	link.IsActive = true
	require.NoError(t, repo.Create(&link))

	inactive := newTestLink(1, "https://b")
	inactive.IsActive = false
	require.NoError(t, repo.Create(&inactive))

	active, err := repo.FindActiveByProfile(1)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "https://a", active[0].LinkURL)

	all, err := repo.FindAllByProfile(1)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFindByProfileWithoutLinks(t *testing.T) {
	repo := newTestDatabase(t).LinkRepo()

	// a profile with no links (or no profile at all) is an empty list, not
	// an error
	links, err := repo.FindActiveByProfile(42)
	require.NoError(t, err)
	assert.Empty(t, links)

	links, err = repo.FindAllByProfile(42)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestReorder(t *testing.T) {
	repo := newTestDatabase(t).LinkRepo()

	var ids []int
	for _, url := range []string{"https://1", "https://2", "https://3"} {
		link := newTestLink(1, url)
		require.NoError(t, repo.Create(&link))
		ids = append(ids, link.ID)
	}

	// move the last link to the front
	require.NoError(t, repo.Reorder([]int{ids[2], ids[0], ids[1]}))

	links, err := repo.FindAllByProfile(1)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, "https://3", links[0].LinkURL)
	assert.Equal(t, "https://1", links[1].LinkURL)
	assert.Equal(t, "https://2", links[2].LinkURL)
	for i, link := range links {
		assert.Equal(t, i+1, link.OrderIndex)
	}
}

func TestReplaceOverwritesAllFields(t *testing.T) {
	repo := newTestDatabase(t).LinkRepo()

	link := models.Link{
		ProfileID:       1,
		Type:            models.LinkTypeText,
		TextLink:        strPtr("old caption"),
		LinkURL:         "https://old",
		IsActive:        true,
		BackgroundColor: strPtr("#000000"),
	}
	require.NoError(t, repo.Create(&link))

	replacement := models.Link{
		ID:         link.ID,
		Type:       models.LinkTypeImage,
		ImageURL:   strPtr("https://img"),
		LinkURL:    "https://new",
		OrderIndex: 5,
		IsActive:   false,
	}
	require.NoError(t, repo.Replace(&replacement))

	links, err := repo.FindAllByProfile(1)
	require.NoError(t, err)
	require.Len(t, links, 1)

	stored := links[0]
	assert.Equal(t, models.LinkTypeImage, stored.Type)
	assert.Equal(t, "https://new", stored.LinkURL)
	assert.Equal(t, 5, stored.OrderIndex)
	assert.False(t, stored.IsActive)
	// full replace drops fields the caller did not supply
	assert.Nil(t, stored.TextLink)
	assert.Nil(t, stored.BackgroundColor)
	require.NotNil(t, stored.ImageURL)
	assert.Equal(t, "https://img", *stored.ImageURL)
}

func TestReplaceMissingLink(t *testing.T) {
	repo := newTestDatabase(t).LinkRepo()

	replacement := newTestLink(1, "https://x")
	replacement.ID = 999
	err := repo.Replace(&replacement)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := newTestDatabase(t).LinkRepo()

	link := newTestLink(1, "https://a")
	require.NoError(t, repo.Create(&link))

	require.NoError(t, repo.Delete(link.ID))
	// a second delete of the same id still succeeds
	require.NoError(t, repo.Delete(link.ID))
	// as does deleting an id that never existed
	require.NoError(t, repo.Delete(12345))

	links, err := repo.FindAllByProfile(1)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestLeadDefaults(t *testing.T) {
	repo := newTestDatabase(t).LeadRepo()

	email := "lead@example.com"
	lead := models.Lead{Email: &email}
	require.NoError(t, repo.Add(&lead))

	assert.NotZero(t, lead.ID)
	assert.Equal(t, models.DefaultLeadSource, lead.Source)
	assert.False(t, lead.CreatedAt.IsZero())

	celular := "+55 11 99999-0000"
	second := models.Lead{Celular: &celular, Source: "landing"}
	require.NoError(t, repo.Add(&second))
	assert.Equal(t, "landing", second.Source)
	assert.NotEqual(t, lead.ID, second.ID)
}
