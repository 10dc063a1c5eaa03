package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkbio-backend/errs"
)

func TestRegisterAndResolveBySlug(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	created, err := repo.Register("Maria", "My.Insta!!", "s3cret", "page of maria")
	require.NoError(t, err)
	assert.Equal(t, "myinsta", created.Slug)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.FindBySlug("myinsta")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Maria", found.Name)
	assert.Equal(t, "page of maria", found.Description)

	// lookup normalizes its input the same way registration did
	found, err = repo.FindBySlug("My.Insta!!")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestRegisterSlugCollision(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	_, err := repo.Register("First", "myinsta", "pw", "")
	require.NoError(t, err)

	// "My.Insta!!" normalizes to the same slug
	_, err = repo.Register("Second", "My.Insta!!", "pw", "")
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))

	// underscores survive normalization, so my_insta is a different slug
	_, err = repo.Register("Third", "MY_INSTA", "pw", "")
	require.NoError(t, err)
}

func TestRegisterRejectsShortSlug(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	_, err := repo.Register("Short", "a!", "pw", "")
	require.Error(t, err)
	assert.True(t, errs.IsInvalidFieldError(err))
}

func TestRegisterAssignsDistinctIDs(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	first, err := repo.Register("One", "profile_one", "pw", "")
	require.NoError(t, err)
	second, err := repo.Register("Two", "profile_two", "pw", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestAuthenticate(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	created, err := repo.Register("Maria", "myinsta", "s3cret", "")
	require.NoError(t, err)

	// passwords are hashed at rest
	assert.NotEqual(t, "s3cret", created.Password)

	profile, err := repo.Authenticate("myinsta", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, profile.ID)

	_, err = repo.Authenticate("myinsta", "wrong")
	require.Error(t, err)
	assert.True(t, errs.IsUnauthorized(err))

	_, err = repo.Authenticate("nobody", "s3cret")
	require.Error(t, err)
	assert.True(t, errs.IsUnauthorized(err))

	// the record is unchanged; the right password still works
	_, err = repo.Authenticate("myinsta", "s3cret")
	require.NoError(t, err)
}

func TestFindBySlugNotFound(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	_, err := repo.FindBySlug("ghost")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestUpsertInsertsWithDefaults(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	slug := "fresh_page"
	profile, err := repo.Upsert(ProfilePatch{ID: 7, Slug: &slug})
	require.NoError(t, err)
	assert.Equal(t, 7, profile.ID)
	assert.Equal(t, "fresh_page", profile.Slug)
	assert.Equal(t, "#ffffff", profile.BackgroundColor)

	found, err := repo.FindByID(7)
	require.NoError(t, err)
	assert.Equal(t, "fresh_page", found.Slug)
}

func TestUpsertPartialUpdate(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	created, err := repo.Register("Maria", "myinsta", "pw", "original description")
	require.NoError(t, err)

	name := "Maria Silva"
	slug := "myinsta"
	updated, err := repo.Upsert(ProfilePatch{ID: created.ID, Name: &name, Slug: &slug})
	require.NoError(t, err)

	// only the supplied fields changed
	assert.Equal(t, "Maria Silva", updated.Name)
	assert.Equal(t, "original description", updated.Description)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)

	// the password hash was not touched
	_, err = repo.Authenticate("myinsta", "pw")
	require.NoError(t, err)
}

func TestUpsertSlugCollisionAgainstOtherProfile(t *testing.T) {
	repo := newTestDatabase(t).ProfileRepo()

	_, err := repo.Register("First", "taken_slug", "pw", "")
	require.NoError(t, err)
	second, err := repo.Register("Second", "other_slug", "pw", "")
	require.NoError(t, err)

	taken := "taken_slug"
	_, err = repo.Upsert(ProfilePatch{ID: second.ID, Slug: &taken})
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))

	// keeping your own slug is not a collision
	own := "other_slug"
	_, err = repo.Upsert(ProfilePatch{ID: second.ID, Slug: &own})
	require.NoError(t, err)
}
