package service

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/model"
	"DevQuest/internal/pkg/consts"
	"DevQuest/internal/pkg/util"
	"DevQuest/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

type StudyService interface {
	LogSession(ctx context.Context, userID uint64, dto *dto.LogSessionDTO) (*dto.SessionDTO, error)
	GetHistory(ctx context.Context, userID uint64, limit int) (*dto.StudyHistoryDTO, error)
	GetStreak(ctx context.Context, userID uint64) (*dto.StreakDTO, error)
	TouchStreak(ctx context.Context, userID uint64) (*model.StudyStreak, error)
}

type StudyServiceImpl struct {
	studyRepo repository.StudyRepo
	locker    Locker
}

func NewStudyService(studyRepo repository.StudyRepo, locker Locker) StudyService {
	return &StudyServiceImpl{
		studyRepo: studyRepo,
		locker:    locker,
	}
}

func (s *StudyServiceImpl) LogSession(ctx context.Context, userID uint64, logDTO *dto.LogSessionDTO) (*dto.SessionDTO, error) {
	studyDate := util.Today()
	if logDTO.StudyDate != "" {
		parsed, err := time.ParseInLocation(util.DateLayout, logDTO.StudyDate, time.Local)
		if err != nil {
			return nil, ErrParamInvalid
		}
		studyDate = parsed
	}

	session := &model.StudySession{
		UserID:          userID,
		TopicID:         logDTO.TopicID,
		DurationMinutes: logDTO.DurationMinutes,
		StudyDate:       studyDate,
	}
	if err := s.studyRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	// 只有当天的学习才推动连续天数
	if util.SameDay(studyDate, time.Now()) {
		if _, err := s.TouchStreak(ctx, userID); err != nil {
			return nil, err
		}
	}

	sessionDTO := &dto.SessionDTO{}
	if err := copier.Copy(sessionDTO, session); err != nil {
		return nil, err
	}
	return sessionDTO, nil
}

func (s *StudyServiceImpl) GetHistory(ctx context.Context, userID uint64, limit int) (*dto.StudyHistoryDTO, error) {
	sessions, err := s.studyRepo.ListSessionsByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.studyRepo.SumMinutes(ctx, userID)
	if err != nil {
		return nil, err
	}

	today, err := s.studyRepo.SumMinutesOnDate(ctx, userID, util.Today())
	if err != nil {
		return nil, err
	}

	sessionDTOs := make([]*dto.SessionDTO, 0, len(sessions))
	for _, session := range sessions {
		sessionDTO := &dto.SessionDTO{}
		if err = copier.Copy(sessionDTO, session); err != nil {
			return nil, err
		}
		sessionDTOs = append(sessionDTOs, sessionDTO)
	}

	return &dto.StudyHistoryDTO{
		Sessions:     sessionDTOs,
		TotalMinutes: total,
		TodayMinutes: today,
	}, nil
}

func (s *StudyServiceImpl) GetStreak(ctx context.Context, userID uint64) (*dto.StreakDTO, error) {
	streak, err := s.studyRepo.GetStreakByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if streak == nil {
		return &dto.StreakDTO{}, nil
	}
	return &dto.StreakDTO{
		CurrentStreak: streak.CurrentStreak,
		LongestStreak: streak.LongestStreak,
		LastActive:    streak.LastActive,
	}, nil
}

// TouchStreak 当日首次学习活动的日切换规则：同天不动，昨天 +1，
// 断档回到 1。last_active 永远落在今天，longest 只增不减。
func (s *StudyServiceImpl) TouchStreak(ctx context.Context, userID uint64) (*model.StudyStreak, error) {
	lockKey := consts.StreakLock + strconv.FormatUint(userID, 10)
	release, ok, err := s.locker.Acquire(ctx, lockKey, time.Minute)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, UnExpectedError
	}
	defer release()

	streak, err := s.studyRepo.GetStreakByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if streak == nil {
		streak = &model.StudyStreak{UserID: userID}
	}

	today := util.Today()
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case streak.LastActive != nil && util.SameDay(*streak.LastActive, today):
		// 当天已记过
	case streak.LastActive != nil && util.SameDay(*streak.LastActive, yesterday):
		streak.CurrentStreak++
	default:
		streak.CurrentStreak = 1
	}

	streak.LastActive = &today
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}

	if err = s.studyRepo.SaveStreak(ctx, streak); err != nil {
		return nil, err
	}
	return streak, nil
}
