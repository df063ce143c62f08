package service

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/model"
	"DevQuest/internal/pkg/consts"
	"DevQuest/internal/pkg/fetcher"
	"DevQuest/internal/pkg/redis"
	"DevQuest/internal/pkg/xp"
	"DevQuest/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

type SyncService interface {
	Connect(ctx context.Context, userID uint64, dto *dto.ConnectAccountDTO) (*dto.AccountDTO, error)
	ListAccounts(ctx context.Context, userID uint64) ([]*dto.AccountDTO, error)
	SyncPlatform(ctx context.Context, userID uint64, slug string) (*dto.StatsDTO, error)
	SyncAll(ctx context.Context, userID uint64) (*dto.StatsDTO, error)
	Disconnect(ctx context.Context, userID uint64, slug string) error
	GetGithubActivity(ctx context.Context, userID uint64, limit int) (*dto.GithubActivityDTO, error)
}

type SyncServiceImpl struct {
	platformRepo repository.PlatformRepo
	activityRepo repository.ActivityRepo
	statsRepo    repository.StatsRepo
	studyRepo    repository.StudyRepo
	registry     *fetcher.Registry
	locker       Locker
	lockTTL      time.Duration
}

func NewSyncService(
	platformRepo repository.PlatformRepo,
	activityRepo repository.ActivityRepo,
	statsRepo repository.StatsRepo,
	studyRepo repository.StudyRepo,
	registry *fetcher.Registry,
	locker Locker,
	lockTTL time.Duration,
) SyncService {
	if lockTTL <= 0 {
		lockTTL = time.Minute * 2
	}
	return &SyncServiceImpl{
		platformRepo: platformRepo,
		activityRepo: activityRepo,
		statsRepo:    statsRepo,
		studyRepo:    studyRepo,
		registry:     registry,
		locker:       locker,
		lockTTL:      lockTTL,
	}
}

// Connect 绑定平台账号。先抓一次确认用户名真实存在，抓取成功才建绑定，
// 随后立即落一轮同步结果。
func (s *SyncServiceImpl) Connect(ctx context.Context, userID uint64, connectDTO *dto.ConnectAccountDTO) (*dto.AccountDTO, error) {
	platformFetcher, ok := s.registry.Get(connectDTO.Slug)
	if !ok {
		return nil, ErrPlatformNotSupported
	}

	platform, err := s.platformRepo.GetPlatformBySlug(ctx, connectDTO.Slug)
	if err != nil {
		return nil, err
	}
	if platform == nil {
		return nil, ErrPlatformNotSupported
	}

	existing, err := s.platformRepo.GetAccountByUserAndSlug(ctx, userID, connectDTO.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExist
	}

	raw, err := platformFetcher.Fetch(ctx, connectDTO.Username)
	if err != nil {
		return nil, mapFetchError(err)
	}

	account := &model.PlatformAccount{
		UserID:      userID,
		PlatformID:  platform.ID,
		Username:    connectDTO.Username,
		AccessToken: connectDTO.AccessToken,
	}
	if err = s.platformRepo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}
	account.Platform = *platform

	if err = s.applyUnderLock(ctx, userID, account, raw); err != nil {
		return nil, err
	}

	account, err = s.platformRepo.GetAccountById(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	return toAccountDTO(account), nil
}

func (s *SyncServiceImpl) ListAccounts(ctx context.Context, userID uint64) ([]*dto.AccountDTO, error) {
	accounts, err := s.platformRepo.GetAccountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	accountDTOs := make([]*dto.AccountDTO, 0, len(accounts))
	for _, account := range accounts {
		accountDTOs = append(accountDTOs, toAccountDTO(account))
	}
	return accountDTOs, nil
}

// SyncPlatform 单平台同步。抓取在锁外，失败时不碰任何存量数据；
// 抓取成功后的落库与重算整体在每用户锁内完成。
func (s *SyncServiceImpl) SyncPlatform(ctx context.Context, userID uint64, slug string) (*dto.StatsDTO, error) {
	account, err := s.platformRepo.GetAccountByUserAndSlug(ctx, userID, slug)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	platformFetcher, ok := s.registry.Get(slug)
	if !ok {
		return nil, ErrPlatformNotSupported
	}

	raw, err := platformFetcher.Fetch(ctx, account.Username)
	if err != nil {
		return nil, mapFetchError(err)
	}

	if err = s.applyUnderLock(ctx, userID, account, raw); err != nil {
		return nil, err
	}
	return s.statsDTO(ctx, userID)
}

// SyncAll 逐平台同步绑定的全部账号，单平台失败不阻断其它平台
func (s *SyncServiceImpl) SyncAll(ctx context.Context, userID uint64) (*dto.StatsDTO, error) {
	accounts, err := s.platformRepo.GetAccountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, account := range accounts {
		if _, err = s.SyncPlatform(ctx, userID, account.Platform.Slug); err != nil {
			log.WarnContext(ctx, "platform sync failed",
				"user_id", userID, "slug", account.Platform.Slug, "err", err)
		}
	}
	return s.statsDTO(ctx, userID)
}

// Disconnect 解绑平台：删除绑定和台账，归零该平台的小计后整体重算
func (s *SyncServiceImpl) Disconnect(ctx context.Context, userID uint64, slug string) error {
	account, err := s.platformRepo.GetAccountByUserAndSlug(ctx, userID, slug)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	release, ok, err := s.lockUser(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSyncInProgress
	}
	defer release()

	if err = s.activityRepo.DeleteByAccount(ctx, account.ID); err != nil {
		return err
	}
	if err = s.platformRepo.DeleteAccount(ctx, account.ID); err != nil {
		return err
	}

	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	zeroPlatform(stats, slug)
	if err = s.finishRecalc(ctx, userID, stats); err != nil {
		return err
	}
	return nil
}

func (s *SyncServiceImpl) GetGithubActivity(ctx context.Context, userID uint64, limit int) (*dto.GithubActivityDTO, error) {
	account, err := s.platformRepo.GetAccountByUserAndSlug(ctx, userID, consts.PlatformGithub)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	rows, err := s.activityRepo.ListByAccount(ctx, account.ID, limit)
	if err != nil {
		return nil, err
	}

	result := &dto.GithubActivityDTO{
		Account: toAccountDTO(account),
		Rows:    make([]*dto.ActivityRowDTO, 0, len(rows)),
	}
	for _, row := range rows {
		result.Rows = append(result.Rows, &dto.ActivityRowDTO{
			Date:    row.Date,
			Commits: row.Commits,
			XP:      row.XP,
		})
		result.TotalCommits += row.Commits
		result.TotalXP += row.XP
	}
	return result, nil
}

// applyUnderLock 落库一轮抓取结果并重算。锁内顺序：台账 -> 平台小计 ->
// 总分与等级 -> 热力图 -> last_synced -> 排行榜。
func (s *SyncServiceImpl) applyUnderLock(ctx context.Context, userID uint64, account *model.PlatformAccount, raw *fetcher.RawActivity) error {
	release, ok, err := s.lockUser(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSyncInProgress
	}
	defer release()

	slug := account.Platform.Slug

	if slug == consts.PlatformGithub {
		for day, commits := range raw.DailyCommits {
			date, err := time.ParseInLocation("2006-01-02", day, time.UTC)
			if err != nil {
				continue
			}
			row := &model.DailyActivity{
				AccountID: account.ID,
				Date:      date,
				Commits:   commits,
				XP:        commits * xp.XPPerCommit,
			}
			if err = s.activityRepo.UpsertDailyActivity(ctx, row); err != nil {
				return err
			}
		}
	}

	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	applyPlatform(stats, slug, raw)

	if err = s.finishRecalc(ctx, userID, stats); err != nil {
		return err
	}

	now := time.Now()
	account.LastSynced = &now
	return s.platformRepo.UpdateAccount(ctx, account)
}

// finishRecalc 总分永远从五个平台小计重算，随后重建热力图并刷排行榜
func (s *SyncServiceImpl) finishRecalc(ctx context.Context, userID uint64, stats *model.UserStats) error {
	stats.TotalXP = xp.Total(stats.GithubXP, stats.LeetcodeXP, stats.GfgXP, stats.CodeforcesXP, stats.HackerrankXP)
	stats.TotalProblems = stats.LeetcodeSolved + stats.GfgSolved + stats.CodeforcesSolved + stats.HackerrankSolved
	stats.Level = xp.Level(stats.TotalXP)

	if streak, err := s.studyRepo.GetStreakByUser(ctx, userID); err == nil && streak != nil {
		stats.CurrentStreak = streak.CurrentStreak
		stats.LongestStreak = streak.LongestStreak
	}

	if err := s.statsRepo.Save(ctx, stats); err != nil {
		return err
	}

	if err := s.rebuildHeatmap(ctx, userID); err != nil {
		return err
	}

	member := strconv.FormatUint(userID, 10)
	if err := redis.ZAdd(ctx, consts.LeaderboardKey, float64(stats.TotalXP), member); err != nil {
		log.WarnContext(ctx, "leaderboard update failed", "user_id", userID, "err", err)
	}
	return nil
}

func (s *SyncServiceImpl) rebuildHeatmap(ctx context.Context, userID uint64) error {
	sums, err := s.activityRepo.SumByDateForUser(ctx, userID)
	if err != nil {
		return err
	}

	rows := make([]*model.UserHeatmap, 0, len(sums))
	for _, sum := range sums {
		rows = append(rows, &model.UserHeatmap{
			UserID:        userID,
			Date:          sum.Date,
			TotalXP:       sum.XP,
			ActivityScore: xp.ActivityScore(sum.XP),
		})
	}
	return s.activityRepo.RebuildHeatmap(ctx, userID, rows)
}

func (s *SyncServiceImpl) lockUser(ctx context.Context, userID uint64) (func(), bool, error) {
	lockKey := consts.StatsSyncLock + strconv.FormatUint(userID, 10)
	return s.locker.Acquire(ctx, lockKey, s.lockTTL)
}

func (s *SyncServiceImpl) statsDTO(ctx context.Context, userID uint64) (*dto.StatsDTO, error) {
	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	statsDTO := &dto.StatsDTO{}
	if err = copier.Copy(statsDTO, stats); err != nil {
		return nil, err
	}
	return statsDTO, nil
}

// applyPlatform 整段覆盖平台小计，绝不做增量叠加
func applyPlatform(stats *model.UserStats, slug string, raw *fetcher.RawActivity) {
	switch slug {
	case consts.PlatformGithub:
		stats.TotalCommits = raw.TotalContributions
		stats.GithubRepos = raw.Repos
		stats.GithubXP = xp.Github(raw.TotalContributions)
	case consts.PlatformLeetcode:
		stats.LeetcodeSolved = raw.Solved
		stats.LeetcodeEasy = raw.Easy
		stats.LeetcodeMedium = raw.Medium
		stats.LeetcodeHard = raw.Hard
		stats.LeetcodeXP = xp.Leetcode(raw.Easy, raw.Medium, raw.Hard, raw.ContestRating, raw.ContestCount)
	case consts.PlatformGfg:
		stats.GfgSolved = raw.Solved
		stats.GfgScore = raw.CodingScore
		stats.GfgXP = xp.Gfg(raw.Solved)
	case consts.PlatformCodeforces:
		stats.CodeforcesSolved = raw.Solved
		stats.CodeforcesXP = xp.Codeforces(raw.Solved)
	case consts.PlatformHackerrank:
		stats.HackerrankSolved = raw.Solved
		stats.HackerrankXP = xp.Hackerrank(raw.Solved)
	}
}

func zeroPlatform(stats *model.UserStats, slug string) {
	switch slug {
	case consts.PlatformGithub:
		stats.TotalCommits = 0
		stats.GithubRepos = 0
		stats.GithubXP = 0
	case consts.PlatformLeetcode:
		stats.LeetcodeSolved = 0
		stats.LeetcodeEasy = 0
		stats.LeetcodeMedium = 0
		stats.LeetcodeHard = 0
		stats.LeetcodeXP = 0
	case consts.PlatformGfg:
		stats.GfgSolved = 0
		stats.GfgScore = 0
		stats.GfgXP = 0
	case consts.PlatformCodeforces:
		stats.CodeforcesSolved = 0
		stats.CodeforcesXP = 0
	case consts.PlatformHackerrank:
		stats.HackerrankSolved = 0
		stats.HackerrankXP = 0
	}
}

func mapFetchError(err error) error {
	switch {
	case errors.Is(err, fetcher.ErrProfileNotFound):
		return ErrPlatformUserNotFound
	case errors.Is(err, fetcher.ErrUpstreamUnavailable):
		return ErrPlatformUnavailable
	case errors.Is(err, fetcher.ErrMalformedResponse):
		return ErrPlatformBadData
	default:
		return err
	}
}

func toAccountDTO(account *model.PlatformAccount) *dto.AccountDTO {
	return &dto.AccountDTO{
		ID:         account.ID,
		Slug:       account.Platform.Slug,
		Platform:   account.Platform.Name,
		Username:   account.Username,
		LastSynced: account.LastSynced,
	}
}
