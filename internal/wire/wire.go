package wire

import (
	"DevQuest/internal/api"
	"DevQuest/internal/api/config"
	"DevQuest/internal/api/handler"
	"DevQuest/internal/job"
	"DevQuest/internal/pkg/cron"
	"DevQuest/internal/pkg/es"
	"DevQuest/internal/pkg/fetcher"
	pkgmongo "DevQuest/internal/pkg/mongo"
	"DevQuest/internal/repository"
	"DevQuest/internal/service"
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, browserCtx context.Context, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	platformRepo := repository.NewPlatformRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	statsRepo := repository.NewStatsRepo(db)
	taskRepo := repository.NewTaskRepo(db)
	noteRepo := repository.NewNoteRepo(db)
	goalRepo := repository.NewGoalRepo(db)
	studyRepo := repository.NewStudyRepo(db)
	curriculumRepo := repository.NewCurriculumRepo(db)

	messageRepo := pkgmongo.NewTaskMessageRepo(mongoDB)
	noteESRepo := es.NewNoteRepo(es.Client)

	registry := fetcher.NewRegistry(
		fetcher.NewGithubFetcher(cfg.Platforms.GithubAPI, cfg.Platforms.GithubToken, cfg.Sync.EventPerPage),
		fetcher.NewLeetcodeFetcher(cfg.Platforms.LeetcodeAPI),
		fetcher.NewGfgFetcher(cfg.Platforms.GfgBaseURL, browserCtx),
		fetcher.NewCodeforcesFetcher(cfg.Platforms.CodeforcesAPI),
		fetcher.NewHackerrankFetcher(cfg.Platforms.HackerrankAPI),
	)

	locker := service.NewRedisLocker(cfg.Sync.LockRetries)
	lockTTL := time.Duration(cfg.Sync.LockTTL) * time.Second

	userService := service.NewUserService(userRepo)
	studyService := service.NewStudyService(studyRepo, locker)
	taskService := service.NewTaskService(taskRepo, messageRepo, studyService)
	noteService := service.NewNoteService(noteRepo, userRepo, noteESRepo)
	goalService := service.NewGoalService(goalRepo)
	syncService := service.NewSyncService(platformRepo, activityRepo, statsRepo, studyRepo, registry, locker, lockTTL)
	leaderboardService := service.NewLeaderboardService(statsRepo, userRepo)
	statsService := service.NewStatsService(statsRepo, taskRepo, studyRepo, userRepo, platformRepo, activityRepo)
	curriculumService := service.NewCurriculumService(curriculumRepo)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		TaskHandler:       handler.NewTaskHandler(taskService),
		NoteHandler:       handler.NewNoteHandler(noteService),
		GoalHandler:       handler.NewGoalHandler(goalService),
		StudyHandler:      handler.NewStudyHandler(studyService),
		PlatformHandler:   handler.NewPlatformHandler(syncService),
		StatsHandler:      handler.NewStatsHandler(statsService, leaderboardService),
		CurriculumHandler: handler.NewCurriculumHandler(curriculumService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewPlatformSyncJob(platformRepo, syncService),
		job.NewLeaderboardJob(leaderboardService),
	)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
