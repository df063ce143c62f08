package service

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/model"
	"DevQuest/internal/pkg/consts"
	"DevQuest/internal/pkg/fetcher"
	"DevQuest/internal/repository"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlatformRepo struct {
	platforms map[string]*model.Platform
	accounts  map[uint64]*model.PlatformAccount
	nextID    uint64
}

func newFakePlatformRepo() *fakePlatformRepo {
	f := &fakePlatformRepo{
		platforms: make(map[string]*model.Platform),
		accounts:  make(map[uint64]*model.PlatformAccount),
	}
	for i, slug := range consts.AllPlatformSlugs {
		f.platforms[slug] = &model.Platform{ID: uint64(i + 1), Name: slug, Slug: slug}
	}
	return f
}

func (f *fakePlatformRepo) ListPlatforms(ctx context.Context) ([]*model.Platform, error) {
	out := make([]*model.Platform, 0)
	for _, p := range f.platforms {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePlatformRepo) GetPlatformBySlug(ctx context.Context, slug string) (*model.Platform, error) {
	return f.platforms[slug], nil
}

func (f *fakePlatformRepo) SeedPlatforms(ctx context.Context, platforms []*model.Platform) error {
	return nil
}

func (f *fakePlatformRepo) GetAccountById(ctx context.Context, id uint64) (*model.PlatformAccount, error) {
	return f.accounts[id], nil
}

func (f *fakePlatformRepo) GetAccountByUserAndSlug(ctx context.Context, userID uint64, slug string) (*model.PlatformAccount, error) {
	for _, acc := range f.accounts {
		if acc.UserID == userID && acc.Platform.Slug == slug {
			return acc, nil
		}
	}
	return nil, nil
}

func (f *fakePlatformRepo) GetAccountsByUser(ctx context.Context, userID uint64) ([]*model.PlatformAccount, error) {
	out := make([]*model.PlatformAccount, 0)
	for _, acc := range f.accounts {
		if acc.UserID == userID {
			out = append(out, acc)
		}
	}
	return out, nil
}

func (f *fakePlatformRepo) GetAllAccounts(ctx context.Context) ([]*model.PlatformAccount, error) {
	out := make([]*model.PlatformAccount, 0)
	for _, acc := range f.accounts {
		out = append(out, acc)
	}
	return out, nil
}

func (f *fakePlatformRepo) CreateAccount(ctx context.Context, account *model.PlatformAccount) error {
	f.nextID++
	account.ID = f.nextID
	for _, p := range f.platforms {
		if p.ID == account.PlatformID {
			account.Platform = *p
		}
	}
	f.accounts[account.ID] = account
	return nil
}

func (f *fakePlatformRepo) UpdateAccount(ctx context.Context, account *model.PlatformAccount) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakePlatformRepo) DeleteAccount(ctx context.Context, id uint64) error {
	delete(f.accounts, id)
	return nil
}

type fakeActivityRepo struct {
	ledger      map[string]*model.DailyActivity
	heatmaps    map[uint64][]*model.UserHeatmap
	accountUser map[uint64]uint64
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{
		ledger:      make(map[string]*model.DailyActivity),
		heatmaps:    make(map[uint64][]*model.UserHeatmap),
		accountUser: make(map[uint64]uint64),
	}
}

func ledgerKey(accountID uint64, date time.Time) string {
	return fmt.Sprintf("%d:%s", accountID, date.Format("2006-01-02"))
}

func (f *fakeActivityRepo) UpsertDailyActivity(ctx context.Context, row *model.DailyActivity) error {
	f.ledger[ledgerKey(row.AccountID, row.Date)] = row
	return nil
}

func (f *fakeActivityRepo) ListByAccount(ctx context.Context, accountID uint64, limit int) ([]*model.DailyActivity, error) {
	out := make([]*model.DailyActivity, 0)
	for _, row := range f.ledger {
		if row.AccountID == accountID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) DeleteByAccount(ctx context.Context, accountID uint64) error {
	for key, row := range f.ledger {
		if row.AccountID == accountID {
			delete(f.ledger, key)
		}
	}
	return nil
}

func (f *fakeActivityRepo) SumByDateForUser(ctx context.Context, userID uint64) ([]*repository.DailyXPSum, error) {
	byDate := make(map[string]*repository.DailyXPSum)
	for _, row := range f.ledger {
		if f.accountUser[row.AccountID] != userID {
			continue
		}
		key := row.Date.Format("2006-01-02")
		if byDate[key] == nil {
			byDate[key] = &repository.DailyXPSum{Date: row.Date}
		}
		byDate[key].Commits += row.Commits
		byDate[key].XP += row.XP
	}
	out := make([]*repository.DailyXPSum, 0, len(byDate))
	for _, sum := range byDate {
		out = append(out, sum)
	}
	return out, nil
}

func (f *fakeActivityRepo) RebuildHeatmap(ctx context.Context, userID uint64, rows []*model.UserHeatmap) error {
	f.heatmaps[userID] = rows
	return nil
}

func (f *fakeActivityRepo) ListHeatmapByUser(ctx context.Context, userID uint64, since time.Time) ([]*model.UserHeatmap, error) {
	return f.heatmaps[userID], nil
}

type fakeStatsRepo struct {
	stats     map[uint64]*model.UserStats
	saveCount int
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{stats: make(map[uint64]*model.UserStats)}
}

func (f *fakeStatsRepo) GetByUser(ctx context.Context, userID uint64) (*model.UserStats, error) {
	return f.stats[userID], nil
}

func (f *fakeStatsRepo) GetOrCreate(ctx context.Context, userID uint64) (*model.UserStats, error) {
	if f.stats[userID] == nil {
		f.stats[userID] = &model.UserStats{UserID: userID, Level: 1}
	}
	return f.stats[userID], nil
}

func (f *fakeStatsRepo) Save(ctx context.Context, stats *model.UserStats) error {
	f.saveCount++
	f.stats[stats.UserID] = stats
	return nil
}

func (f *fakeStatsRepo) ListTopByTotalXP(ctx context.Context, limit int) ([]*model.UserStats, error) {
	out := make([]*model.UserStats, 0)
	for _, s := range f.stats {
		out = append(out, s)
	}
	return out, nil
}

type fakeFetcher struct {
	slug string
	raw  *fetcher.RawActivity
	err  error
}

func (f *fakeFetcher) Slug() string { return f.slug }

func (f *fakeFetcher) Fetch(ctx context.Context, username string) (*fetcher.RawActivity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.raw, nil
}

type syncFixture struct {
	platformRepo *fakePlatformRepo
	activityRepo *fakeActivityRepo
	statsRepo    *fakeStatsRepo
	studyRepo    *fakeStudyRepo
	svc          SyncService
}

func newSyncFixture(fetchers ...fetcher.Fetcher) *syncFixture {
	f := &syncFixture{
		platformRepo: newFakePlatformRepo(),
		activityRepo: newFakeActivityRepo(),
		statsRepo:    newFakeStatsRepo(),
		studyRepo:    newFakeStudyRepo(),
	}
	f.svc = NewSyncService(
		f.platformRepo, f.activityRepo, f.statsRepo, f.studyRepo,
		fetcher.NewRegistry(fetchers...), NoopLocker{}, time.Minute,
	)
	return f
}

func (f *syncFixture) seedAccount(userID uint64, slug, username string) *model.PlatformAccount {
	account := &model.PlatformAccount{
		UserID:     userID,
		PlatformID: f.platformRepo.platforms[slug].ID,
		Username:   username,
	}
	_ = f.platformRepo.CreateAccount(context.Background(), account)
	f.activityRepo.accountUser[account.ID] = userID
	return account
}

func TestSyncGithubBuildsLedgerAndTotals(t *testing.T) {
	fx := newSyncFixture(&fakeFetcher{
		slug: consts.PlatformGithub,
		raw: &fetcher.RawActivity{
			TotalContributions: 5,
			DailyCommits:       map[string]int{"2025-03-01": 3, "2025-03-02": 2},
		},
	})
	account := fx.seedAccount(1, consts.PlatformGithub, "alice")

	stats, err := fx.svc.SyncPlatform(context.Background(), 1, consts.PlatformGithub)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalCommits)
	assert.Equal(t, 50, stats.GithubXP)
	assert.Equal(t, 50, stats.TotalXP)
	assert.Equal(t, 1, stats.Level)

	rows, _ := fx.activityRepo.ListByAccount(context.Background(), account.ID, 0)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, row.Commits*10, row.XP)
	}

	heatmap := fx.activityRepo.heatmaps[1]
	require.Len(t, heatmap, 2)
	for _, cell := range heatmap {
		assert.LessOrEqual(t, cell.ActivityScore, 100)
		assert.Equal(t, cell.TotalXP, cell.ActivityScore, "under the cap score equals xp sum")
	}

	updated := fx.platformRepo.accounts[account.ID]
	assert.NotNil(t, updated.LastSynced)
}

func TestSyncIsIdempotent(t *testing.T) {
	fx := newSyncFixture(&fakeFetcher{
		slug: consts.PlatformGithub,
		raw: &fetcher.RawActivity{
			TotalContributions: 4,
			DailyCommits:       map[string]int{"2025-03-01": 4},
		},
	})
	account := fx.seedAccount(1, consts.PlatformGithub, "alice")

	first, err := fx.svc.SyncPlatform(context.Background(), 1, consts.PlatformGithub)
	require.NoError(t, err)
	second, err := fx.svc.SyncPlatform(context.Background(), 1, consts.PlatformGithub)
	require.NoError(t, err)

	assert.Equal(t, first.TotalXP, second.TotalXP)
	assert.Equal(t, first.TotalCommits, second.TotalCommits)

	rows, _ := fx.activityRepo.ListByAccount(context.Background(), account.ID, 0)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].Commits, "ledger row is overwritten, never accumulated")
}

func TestTotalIsSumOfPlatformSubtotals(t *testing.T) {
	fx := newSyncFixture(
		&fakeFetcher{
			slug: consts.PlatformGithub,
			raw:  &fetcher.RawActivity{TotalContributions: 7},
		},
		&fakeFetcher{
			slug: consts.PlatformLeetcode,
			raw: &fetcher.RawActivity{
				Solved: 16, Easy: 10, Medium: 5, Hard: 1,
				ContestRating: 1500, ContestCount: 3,
			},
		},
	)
	fx.seedAccount(1, consts.PlatformGithub, "alice")
	fx.seedAccount(1, consts.PlatformLeetcode, "alice")

	_, err := fx.svc.SyncPlatform(context.Background(), 1, consts.PlatformGithub)
	require.NoError(t, err)
	stats, err := fx.svc.SyncPlatform(context.Background(), 1, consts.PlatformLeetcode)
	require.NoError(t, err)

	// github 7*10=70; leetcode 50+50+20+4000+150=4270
	assert.Equal(t, 70, stats.GithubXP)
	assert.Equal(t, 4270, stats.LeetcodeXP)
	assert.Equal(t, stats.GithubXP+stats.LeetcodeXP, stats.TotalXP)
	assert.Equal(t, 43, stats.Level)
	assert.Equal(t, 16, stats.TotalProblems)
}

func TestSyncFetchFailureWritesNothing(t *testing.T) {
	fx := newSyncFixture(&fakeFetcher{
		slug: consts.PlatformGithub,
		err:  fetcher.ErrUpstreamUnavailable,
	})
	account := fx.seedAccount(1, consts.PlatformGithub, "alice")

	_, err := fx.svc.SyncPlatform(context.Background(), 1, consts.PlatformGithub)
	assert.ErrorIs(t, err, ErrPlatformUnavailable)

	assert.Zero(t, fx.statsRepo.saveCount, "stats must not be touched on fetch failure")
	rows, _ := fx.activityRepo.ListByAccount(context.Background(), account.ID, 0)
	assert.Empty(t, rows)
	assert.Nil(t, fx.platformRepo.accounts[account.ID].LastSynced)
}

func TestSyncUnknownProfileMapsToNotFound(t *testing.T) {
	fx := newSyncFixture(&fakeFetcher{
		slug: consts.PlatformGithub,
		err:  fetcher.ErrProfileNotFound,
	})
	fx.seedAccount(1, consts.PlatformGithub, "ghost")

	_, err := fx.svc.SyncPlatform(context.Background(), 1, consts.PlatformGithub)
	assert.ErrorIs(t, err, ErrPlatformUserNotFound)
}

func TestConnectRejectsUnknownUsername(t *testing.T) {
	fx := newSyncFixture(&fakeFetcher{
		slug: consts.PlatformGithub,
		err:  fetcher.ErrProfileNotFound,
	})

	_, err := fx.svc.Connect(context.Background(), 1, &dto.ConnectAccountDTO{
		Slug:     consts.PlatformGithub,
		Username: "ghost",
	})
	assert.ErrorIs(t, err, ErrPlatformUserNotFound)
	assert.Empty(t, fx.platformRepo.accounts, "no binding is created for an invalid username")
}

func TestConnectRejectsDuplicateBinding(t *testing.T) {
	fx := newSyncFixture(&fakeFetcher{
		slug: consts.PlatformGithub,
		raw:  &fetcher.RawActivity{TotalContributions: 1},
	})
	fx.seedAccount(1, consts.PlatformGithub, "alice")

	_, err := fx.svc.Connect(context.Background(), 1, &dto.ConnectAccountDTO{
		Slug:     consts.PlatformGithub,
		Username: "alice-two",
	})
	assert.ErrorIs(t, err, ErrAccountExist)
}

func TestDisconnectDropsPlatformContribution(t *testing.T) {
	fx := newSyncFixture(
		&fakeFetcher{
			slug: consts.PlatformGithub,
			raw: &fetcher.RawActivity{
				TotalContributions: 7,
				DailyCommits:       map[string]int{"2025-03-01": 7},
			},
		},
		&fakeFetcher{
			slug: consts.PlatformGfg,
			raw:  &fetcher.RawActivity{Solved: 10, CodingScore: 300},
		},
	)
	ghAccount := fx.seedAccount(1, consts.PlatformGithub, "alice")
	fx.seedAccount(1, consts.PlatformGfg, "alice")

	_, err := fx.svc.SyncPlatform(context.Background(), 1, consts.PlatformGithub)
	require.NoError(t, err)
	stats, err := fx.svc.SyncPlatform(context.Background(), 1, consts.PlatformGfg)
	require.NoError(t, err)
	require.Equal(t, 150, stats.TotalXP) // 70 github + 80 gfg

	err = fx.svc.Disconnect(context.Background(), 1, consts.PlatformGithub)
	require.NoError(t, err)

	saved := fx.statsRepo.stats[1]
	assert.Equal(t, 0, saved.GithubXP)
	assert.Equal(t, 0, saved.TotalCommits)
	assert.Equal(t, 80, saved.TotalXP, "total recomputed from remaining subtotals")

	rows, _ := fx.activityRepo.ListByAccount(context.Background(), ghAccount.ID, 0)
	assert.Empty(t, rows, "ledger rows are removed with the binding")
	assert.Empty(t, fx.activityRepo.heatmaps[1], "heatmap rebuilt without github activity")

	_, found := fx.platformRepo.accounts[ghAccount.ID]
	assert.False(t, found)
}
