package model

import (
	"context"
	"errors"
	"path/filepath"
	"safetytips/internal/config"
	"safetytips/internal/entity"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()

	cfg := &config.Config{
		DBType: DBTypeSQLite,
		DBPath: filepath.Join(t.TempDir(), "safety.db"),
	}
	repo, err := InitRepository(cfg)
	require.NoError(t, err)

	store, ok := repo.(*GormStore)
	require.True(t, ok)
	t.Cleanup(func() {
		if sqlDB, err := store.DB().DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return store
}

func createUser(t *testing.T, repo Repository, username string, admin bool) *entity.User {
	t.Helper()
	user := &entity.User{Username: username, PasswordHash: "hash-" + username, IsAdmin: admin}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

func TestInitRepositoryRejectsUnknownType(t *testing.T) {
	_, err := InitRepository(&config.Config{DBType: "oracle"})
	require.Error(t, err)

	_, err = InitRepository(nil)
	require.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	require.Equal(t, "a.db?_foreign_keys=on", SQLiteDSN("a.db"))
	require.Equal(t, "a.db?cache=shared&_foreign_keys=on", SQLiteDSN("a.db?cache=shared"))
}

func TestServerDSNsUseDialectPort(t *testing.T) {
	cfg := &config.Config{DBType: DBTypePostgres, DBAddr: "db", DBUser: "u", DBPassword: "p", DBName: "safety"}
	require.Equal(t, "host=db user=u password=p dbname=safety port=5432 sslmode=disable TimeZone=UTC", PostgresDSN(cfg))

	cfg.DBType = DBTypeMySQL
	require.Equal(t, "u:p@tcp(db:3306)/safety?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true", MySQLDSN(cfg))

	cfg.DBType = DBTypePostgres
	cfg.DBPort = "6543"
	require.Contains(t, PostgresDSN(cfg), "port=6543")

	cfg.DSNURL = "postgres://elsewhere"
	require.Equal(t, "postgres://elsewhere", PostgresDSN(cfg))
	require.Equal(t, "postgres://elsewhere", MySQLDSN(cfg))
}

func TestInitRepositoryIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "safety.db")
	cfg := &config.Config{DBType: DBTypeSQLite, DBPath: path}

	first, err := InitRepository(cfg)
	require.NoError(t, err)
	createUser(t, first, "alice", false)

	second, err := InitRepository(cfg)
	require.NoError(t, err)
	count, err := second.CountUsers(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestUsernamesAreUniqueAndCaseSensitive(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	createUser(t, store, "alice", false)

	err := store.CreateUser(ctx, &entity.User{Username: "alice", PasswordHash: "x"})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	createUser(t, store, "Alice", false)

	count, err := store.CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	got, err := store.GetUserByUsername(ctx, "Alice")
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Username)

	_, err = store.GetUserByUsername(ctx, "ALICE")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	alice := createUser(t, store, "alice", false)
	createUser(t, store, "bob", false)

	name := "alicia"
	admin := true
	require.NoError(t, store.UpdateUser(ctx, alice.ID, entity.UserUpdates{Username: &name, IsAdmin: &admin}))

	got, err := store.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alicia", got.Username)
	require.True(t, got.IsAdmin)
	require.Equal(t, "hash-alice", got.PasswordHash)

	// Writing the same values back still counts as a match.
	require.NoError(t, store.UpdateUser(ctx, alice.ID, entity.UserUpdates{Username: &name}))

	taken := "bob"
	err = store.UpdateUser(ctx, alice.ID, entity.UserUpdates{Username: &taken})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	err = store.UpdateUser(ctx, 9999, entity.UserUpdates{Username: &name})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.Error(t, store.UpdateUser(ctx, alice.ID, entity.UserUpdates{}))
}

func TestListUsersNewestFirstWithoutHashes(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	createUser(t, store, "first", false)
	createUser(t, store, "second", true)
	createUser(t, store, "third", false)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "third", users[0].Username)
	require.Equal(t, "first", users[2].Username)
	require.True(t, users[1].IsAdmin)
	for _, u := range users {
		require.Empty(t, u.PasswordHash)
	}
}

func TestDeleteUserCascadesActivities(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	alice := createUser(t, store, "alice", false)
	bob := createUser(t, store, "bob", false)

	for _, a := range []*entity.Activity{
		{UserID: alice.ID, Activity: "User logged in"},
		{UserID: alice.ID, Activity: "User updated password"},
		{UserID: bob.ID, Activity: "User logged in"},
	} {
		require.NoError(t, store.CreateActivity(ctx, a))
	}

	require.NoError(t, store.DeleteUser(ctx, alice.ID))

	entries, err := store.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, bob.ID, entries[0].UserID)

	err = store.DeleteUser(ctx, alice.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestForeignKeyCascadeAtSchemaLevel(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	carol := createUser(t, store, "carol", false)
	require.NoError(t, store.CreateActivity(ctx, &entity.Activity{UserID: carol.ID, Activity: "User logged in"}))

	// Bypass the repository so only the constraint is doing the work.
	require.NoError(t, store.DB().Exec("DELETE FROM users WHERE id = ?", carol.ID).Error)

	var remaining int64
	require.NoError(t, store.DB().Model(&entity.Activity{}).Count(&remaining).Error)
	require.Zero(t, remaining)

	err := store.CreateActivity(ctx, &entity.Activity{UserID: carol.ID, Activity: "orphan"})
	require.Error(t, err)
}

func TestListActivitiesJoinsUsername(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	alice := createUser(t, store, "alice", false)

	require.NoError(t, store.CreateActivity(ctx, &entity.Activity{UserID: alice.ID, Activity: "User logged in"}))
	require.NoError(t, store.CreateActivity(ctx, &entity.Activity{UserID: alice.ID, Activity: "User logged out"}))

	name := "alicia"
	require.NoError(t, store.UpdateUser(ctx, alice.ID, entity.UserUpdates{Username: &name}))

	entries, err := store.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "User logged out", entries[0].Activity)
	for _, e := range entries {
		require.Equal(t, "alicia", e.Username)
		require.False(t, e.Timestamp.IsZero())
	}

	require.Error(t, store.CreateActivity(ctx, &entity.Activity{Activity: "nobody"}))
}

func TestTipLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tip := &entity.Tip{Title: "Fire Safety", Content: "Check alarms."}
	require.NoError(t, store.CreateTip(ctx, tip))
	require.NotZero(t, tip.TipID)
	require.False(t, tip.CreatedAt.IsZero())

	content := "Check alarms monthly."
	require.NoError(t, store.UpdateTip(ctx, tip.TipID, entity.TipUpdates{Content: &content}))

	got, err := store.GetTip(ctx, tip.TipID)
	require.NoError(t, err)
	require.Equal(t, "Fire Safety", got.Title)
	require.Equal(t, content, got.Content)

	err = store.UpdateTip(ctx, tip.TipID+100, entity.TipUpdates{Content: &content})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, store.DeleteTip(ctx, tip.TipID))
	_, err = store.GetTip(ctx, tip.TipID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.ErrorIs(t, store.DeleteTip(ctx, tip.TipID), gorm.ErrRecordNotFound)
}

func TestSearchTipsIsCaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.CreateTips(ctx, []entity.Tip{
		{Title: "Fire Safety", Content: "a"},
		{Title: "Water Safety", Content: "b"},
		{Title: "Home Fire Safety", Content: "c"},
		{Title: "Campfire rules", Content: "d"},
		{Title: "Road Safety", Content: "e"},
	}))

	tips, err := store.SearchTips(ctx, "FIRE")
	require.NoError(t, err)
	titles := make([]string, 0, len(tips))
	for _, tip := range tips {
		titles = append(titles, tip.Title)
	}
	require.ElementsMatch(t, []string{"Fire Safety", "Home Fire Safety", "Campfire rules"}, titles)

	tips, err = store.SearchTips(ctx, "")
	require.NoError(t, err)
	require.Len(t, tips, 5)

	tips, err = store.SearchTips(ctx, "nothing like this")
	require.NoError(t, err)
	require.Empty(t, tips)
}

func TestSearchTipsMatchesNonASCIITitles(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.CreateTips(ctx, []entity.Tip{
		{Title: "École Safety", Content: "a"},
		{Title: "ÖFFENTLICHE Sicherheit", Content: "b"},
		{Title: "Road Safety", Content: "c"},
	}))

	tests := []struct {
		query string
		want  string
	}{
		{query: "École", want: "École Safety"},
		{query: "ÉCOLE", want: "École Safety"},
		{query: "cole saf", want: "École Safety"},
		{query: "ÖFFENTLICHE", want: "ÖFFENTLICHE Sicherheit"},
		{query: "Öffentliche SICHERHEIT", want: "ÖFFENTLICHE Sicherheit"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			tips, err := store.SearchTips(ctx, tt.query)
			require.NoError(t, err)
			require.Len(t, tips, 1)
			require.Equal(t, tt.want, tips[0].Title)
		})
	}
}

func TestSearchTipsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, store.CreateTip(ctx, &entity.Tip{Title: title, Content: title}))
	}

	tips, err := store.SearchTips(ctx, "")
	require.NoError(t, err)
	require.Len(t, tips, 3)
	require.Equal(t, "three", tips[0].Title)
	require.Equal(t, "one", tips[2].Title)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	boom := errors.New("boom")

	err := store.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateTip(ctx, &entity.Tip{Title: "temp", Content: "temp"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := store.CountTips(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	require.NoError(t, store.Transaction(ctx, func(tx Repository) error {
		return tx.CreateTip(ctx, &entity.Tip{Title: "kept", Content: "kept"})
	}))
	count, err = store.CountTips(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestSeedDefaultAdminIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	hasher := fastHasher{}
	cfg := config.Config{AdminUsername: "ADMIN", AdminPassword: "#sbm@86140764"}

	created, err := SeedDefaultAdmin(ctx, store, hasher, cfg)
	require.NoError(t, err)
	require.True(t, created)

	created, err = SeedDefaultAdmin(ctx, store, hasher, cfg)
	require.NoError(t, err)
	require.False(t, created)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "ADMIN", users[0].Username)
	require.True(t, users[0].IsAdmin)

	admin, err := store.GetUserByUsername(ctx, "ADMIN")
	require.NoError(t, err)
	ok, err := hasher.Verify(admin.PasswordHash, "#sbm@86140764")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = SeedDefaultAdmin(ctx, store, hasher, config.Config{AdminUsername: "ADMIN"})
	require.Error(t, err)
}

func TestSeedDefaultAdminKeepsExistingAccount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	createUser(t, store, "ADMIN", false)

	created, err := SeedDefaultAdmin(ctx, store, fastHasher{}, config.Config{AdminUsername: "ADMIN", AdminPassword: "pw"})
	require.NoError(t, err)
	require.False(t, created)

	admin, err := store.GetUserByUsername(ctx, "ADMIN")
	require.NoError(t, err)
	require.False(t, admin.IsAdmin)
	require.Equal(t, "hash-ADMIN", admin.PasswordHash)
}

func TestSeedDefaultTipsOnlyIntoEmptyTable(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	n, err := SeedDefaultTips(ctx, store)
	require.NoError(t, err)
	require.Equal(t, len(DefaultTips()), n)

	n, err = SeedDefaultTips(ctx, store)
	require.NoError(t, err)
	require.Zero(t, n)

	count, err := store.CountTips(ctx)
	require.NoError(t, err)
	require.EqualValues(t, len(DefaultTips()), count)
}

func TestSeededCatalogueFireSearch(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	_, err := SeedDefaultTips(ctx, store)
	require.NoError(t, err)

	tips, err := store.SearchTips(ctx, "Fire")
	require.NoError(t, err)

	want := 0
	for _, tip := range DefaultTips() {
		if strings.Contains(strings.ToLower(tip.Title), "fire") {
			want++
		}
	}
	require.Len(t, tips, want)

	titles := make(map[string]bool)
	for _, tip := range tips {
		require.Contains(t, strings.ToLower(tip.Title), "fire")
		titles[tip.Title] = true
	}
	for _, title := range []string{
		"Fire Safety",
		"Home Fire Safety",
		"Outdoor Fire Safety",
		"Workplace Fire Safety",
		"Fire Exit Awareness",
	} {
		require.True(t, titles[title], "missing %q", title)
	}
	require.False(t, titles["Water Safety"])
}

type fastHasher struct{}

func (fastHasher) Hash(password string) (string, error) {
	return "plain:" + password, nil
}

func (fastHasher) Verify(hash, candidate string) (bool, error) {
	return hash == "plain:"+candidate, nil
}

func (fastHasher) NeedsRehash(string) bool { return false }
