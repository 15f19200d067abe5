package storage

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/graphico/brief-api/internal/models"
)

func setupStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&Entry{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewStore(db, nil)
}

func TestRegisterUser_Idempotent(t *testing.T) {
	store := setupStore(t)

	first := store.RegisterUser(models.User{Name: "Sara", Email: "a@x.com", Level: "مستوى 1"})
	require.Equal(t, "Sara", first.Name)

	// A second registration under the same email must return the stored
	// record unchanged; the new name is discarded.
	second := store.RegisterUser(models.User{Name: "Someone Else", Email: "a@x.com"})
	require.Equal(t, first, second)

	users := store.ListRegisteredUsers()
	require.Len(t, users, 1)
	require.Equal(t, "Sara", users[0].Name)
}

func TestFindUserByEmail(t *testing.T) {
	store := setupStore(t)

	store.RegisterUser(models.User{Name: "Sara", Email: "a@x.com"})

	user, ok := store.FindUserByEmail("a@x.com")
	require.True(t, ok)
	require.Equal(t, "Sara", user.Name)

	_, ok = store.FindUserByEmail("missing@x.com")
	require.False(t, ok)
}

func TestSessionSlot(t *testing.T) {
	store := setupStore(t)

	_, ok := store.GetSession()
	require.False(t, ok)

	require.NoError(t, store.SaveSession(models.User{Name: "Sara", Email: "a@x.com"}))

	session, ok := store.GetSession()
	require.True(t, ok)
	require.Equal(t, "a@x.com", session.Email)

	// The slot is global: a second save replaces the first.
	require.NoError(t, store.SaveSession(models.User{Name: "Omar", Email: "b@x.com"}))
	session, ok = store.GetSession()
	require.True(t, ok)
	require.Equal(t, "b@x.com", session.Email)

	require.NoError(t, store.ClearSession())
	_, ok = store.GetSession()
	require.False(t, ok)
}

func TestProjectNamespacing(t *testing.T) {
	store := setupStore(t)

	projectA := models.Project{ID: "p-a", Status: models.ProjectActive, Brief: models.Brief{ID: "b-a"}}
	projectB := models.Project{ID: "p-b", Status: models.ProjectActive, Brief: models.Brief{ID: "b-b"}}

	require.NoError(t, store.SaveProjectsFor("a@x.com", []models.Project{projectA}))
	require.NoError(t, store.SaveProjectsFor("b@x.com", []models.Project{projectB}))

	listA := store.ProjectsFor("a@x.com")
	require.Len(t, listA, 1)
	require.Equal(t, "p-a", listA[0].ID)

	listB := store.ProjectsFor("b@x.com")
	require.Len(t, listB, 1)
	require.Equal(t, "p-b", listB[0].ID)

	require.Empty(t, store.ProjectsFor("c@x.com"))
}

func TestSaveProjectsFor_FullOverwrite(t *testing.T) {
	store := setupStore(t)

	require.NoError(t, store.SaveProjectsFor("a@x.com", []models.Project{
		{ID: "p-1"}, {ID: "p-2"},
	}))
	require.NoError(t, store.SaveProjectsFor("a@x.com", []models.Project{
		{ID: "p-3"},
	}))

	projects := store.ProjectsFor("a@x.com")
	require.Len(t, projects, 1)
	require.Equal(t, "p-3", projects[0].ID)
}

func TestReadsFailSoftOnCorruptData(t *testing.T) {
	store := setupStore(t)

	corrupt := []Entry{
		{Key: KeyUsers, Value: "{not json", UpdatedAt: time.Now()},
		{Key: KeySession, Value: "also broken", UpdatedAt: time.Now()},
		{Key: ProjectsKey("a@x.com"), Value: "[1,2,", UpdatedAt: time.Now()},
	}
	for _, e := range corrupt {
		require.NoError(t, store.db.Create(&e).Error)
	}

	require.Empty(t, store.ListRegisteredUsers())
	_, ok := store.GetSession()
	require.False(t, ok)
	require.Empty(t, store.ProjectsFor("a@x.com"))
}

func TestCorruptRegistryRecoversOnNextRegister(t *testing.T) {
	store := setupStore(t)

	require.NoError(t, store.db.Create(&Entry{Key: KeyUsers, Value: "garbage", UpdatedAt: time.Now()}).Error)

	registered := store.RegisterUser(models.User{Name: "Sara", Email: "a@x.com"})
	require.Equal(t, "Sara", registered.Name)

	users := store.ListRegisteredUsers()
	require.Len(t, users, 1)
}

func TestReadsFailSoftOnDriverError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .* FROM .*entries.*").WillReturnError(gorm.ErrInvalidDB)

	store := NewStore(db, nil)
	require.Empty(t, store.ListRegisteredUsers())
	require.NoError(t, mock.ExpectationsWereMet())
}
