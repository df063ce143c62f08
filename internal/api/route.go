package api

import (
	"DevQuest/internal/api/middleware"
	"DevQuest/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.Me)
			}
		}

		taskGroup := apiGroup.Group("/tasks")
		taskGroup.Use(middleware.AuthMiddleware())
		{
			taskGroup.POST("", group.TaskHandler.Create)
			taskGroup.POST("/upload", group.TaskHandler.CreateFromFile)
			taskGroup.GET("", group.TaskHandler.List)
			taskGroup.PUT("/:task_id", group.TaskHandler.Update)
			taskGroup.POST("/:task_id/toggle", group.TaskHandler.ToggleComplete)
			taskGroup.DELETE("/:task_id", group.TaskHandler.Delete)

			taskGroup.POST("/:task_id/help", group.TaskHandler.AskHelp)
			taskGroup.GET("/:task_id/help", group.TaskHandler.HelpHistory)
		}

		noteGroup := apiGroup.Group("/notes")
		noteGroup.Use(middleware.AuthMiddleware())
		{
			noteGroup.POST("", group.NoteHandler.Create)
			noteGroup.GET("", group.NoteHandler.ListMine)
			noteGroup.PUT("/:note_id", group.NoteHandler.Update)
			noteGroup.DELETE("/:note_id", group.NoteHandler.Delete)
			noteGroup.GET("/library", group.NoteHandler.Library)
		}

		goalGroup := apiGroup.Group("/goals")
		goalGroup.Use(middleware.AuthMiddleware())
		{
			goalGroup.POST("", group.GoalHandler.Create)
			goalGroup.GET("", group.GoalHandler.List)
			goalGroup.POST("/:goal_id/start", group.GoalHandler.StartLearning)
			goalGroup.POST("/:goal_id/complete", group.GoalHandler.Complete)
			goalGroup.POST("/:goal_id/satisfaction", group.GoalHandler.Satisfaction)
			goalGroup.GET("/:goal_id/topics", group.GoalHandler.Topics)
			goalGroup.DELETE("/:goal_id", group.GoalHandler.Delete)
		}

		studyGroup := apiGroup.Group("/study")
		studyGroup.Use(middleware.AuthMiddleware())
		{
			studyGroup.POST("/sessions", group.StudyHandler.LogSession)
			studyGroup.GET("/history", group.StudyHandler.History)
			studyGroup.GET("/streak", group.StudyHandler.Streak)
		}

		platformGroup := apiGroup.Group("/platforms")
		platformGroup.Use(middleware.AuthMiddleware())
		{
			platformGroup.POST("/connect", group.PlatformHandler.Connect)
			platformGroup.GET("/accounts", group.PlatformHandler.ListAccounts)
			platformGroup.POST("/sync", group.PlatformHandler.SyncAll)
			platformGroup.POST("/sync/:slug", group.PlatformHandler.Sync)
			platformGroup.DELETE("/:slug", group.PlatformHandler.Disconnect)
			platformGroup.GET("/github/activity", group.PlatformHandler.GithubActivity)
		}

		statsGroup := apiGroup.Group("/stats")
		{
			statsGroup.GET("/leaderboard", group.StatsHandler.Leaderboard)

			authGroup := statsGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/dashboard", group.StatsHandler.Dashboard)
				authGroup.GET("/profile", group.StatsHandler.Profile)
				authGroup.GET("", group.StatsHandler.Stats)
				authGroup.GET("/heatmap", group.StatsHandler.Heatmap)
			}
		}

		curriculumGroup := apiGroup.Group("/curriculum")
		{
			curriculumGroup.GET("/tracks", group.CurriculumHandler.Tracks)
			curriculumGroup.GET("/tracks/:track_id/subjects", group.CurriculumHandler.Subjects)
			curriculumGroup.GET("/subjects/:subject_id/topics", group.CurriculumHandler.Topics)

			authGroup := curriculumGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/topics/:topic_id", group.CurriculumHandler.TopicDetail)
				authGroup.POST("/progress", group.CurriculumHandler.SaveProgress)
				authGroup.GET("/progress", group.CurriculumHandler.MyProgress)
			}
		}
	}

	return r
}
