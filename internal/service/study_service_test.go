package service

import (
	"DevQuest/internal/api/dto"
	"DevQuest/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStudyRepo struct {
	sessions []*model.StudySession
	streaks  map[uint64]*model.StudyStreak
}

func newFakeStudyRepo() *fakeStudyRepo {
	return &fakeStudyRepo{streaks: make(map[uint64]*model.StudyStreak)}
}

func (f *fakeStudyRepo) CreateSession(ctx context.Context, session *model.StudySession) error {
	session.ID = uint64(len(f.sessions) + 1)
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeStudyRepo) ListSessionsByUser(ctx context.Context, userID uint64, limit int) ([]*model.StudySession, error) {
	out := make([]*model.StudySession, 0)
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudyRepo) SumMinutes(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	for _, s := range f.sessions {
		if s.UserID == userID {
			total += int64(s.DurationMinutes)
		}
	}
	return total, nil
}

func (f *fakeStudyRepo) SumMinutesOnDate(ctx context.Context, userID uint64, date time.Time) (int64, error) {
	var total int64
	for _, s := range f.sessions {
		if s.UserID == userID && s.StudyDate.Equal(date) {
			total += int64(s.DurationMinutes)
		}
	}
	return total, nil
}

func (f *fakeStudyRepo) GetStreakByUser(ctx context.Context, userID uint64) (*model.StudyStreak, error) {
	return f.streaks[userID], nil
}

func (f *fakeStudyRepo) SaveStreak(ctx context.Context, streak *model.StudyStreak) error {
	f.streaks[streak.UserID] = streak
	return nil
}

func dayPtr(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return &d
}

func TestTouchStreakFirstActivity(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := NewStudyService(repo, NoopLocker{})

	streak, err := svc.TouchStreak(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)
	require.NotNil(t, streak.LastActive)
	assert.Equal(t, time.Now().YearDay(), streak.LastActive.YearDay())
}

func TestTouchStreakSameDayIsNoop(t *testing.T) {
	repo := newFakeStudyRepo()
	repo.streaks[1] = &model.StudyStreak{
		UserID: 1, CurrentStreak: 4, LongestStreak: 9, LastActive: dayPtr(time.Now()),
	}
	svc := NewStudyService(repo, NoopLocker{})

	streak, err := svc.TouchStreak(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 4, streak.CurrentStreak)
	assert.Equal(t, 9, streak.LongestStreak)
}

func TestTouchStreakYesterdayIncrements(t *testing.T) {
	repo := newFakeStudyRepo()
	repo.streaks[1] = &model.StudyStreak{
		UserID: 1, CurrentStreak: 4, LongestStreak: 4,
		LastActive: dayPtr(time.Now().AddDate(0, 0, -1)),
	}
	svc := NewStudyService(repo, NoopLocker{})

	streak, err := svc.TouchStreak(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 5, streak.CurrentStreak)
	assert.Equal(t, 5, streak.LongestStreak, "longest follows current past the old record")
}

func TestTouchStreakGapResets(t *testing.T) {
	repo := newFakeStudyRepo()
	repo.streaks[1] = &model.StudyStreak{
		UserID: 1, CurrentStreak: 7, LongestStreak: 12,
		LastActive: dayPtr(time.Now().AddDate(0, 0, -3)),
	}
	svc := NewStudyService(repo, NoopLocker{})

	streak, err := svc.TouchStreak(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 12, streak.LongestStreak, "longest never shrinks on reset")
}

func TestLogSessionTodayTouchesStreak(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := NewStudyService(repo, NoopLocker{})

	_, err := svc.LogSession(context.Background(), 1, &dto.LogSessionDTO{DurationMinutes: 45})
	require.NoError(t, err)

	require.NotNil(t, repo.streaks[1])
	assert.Equal(t, 1, repo.streaks[1].CurrentStreak)
}

func TestLogSessionBackdatedLeavesStreakAlone(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := NewStudyService(repo, NoopLocker{})

	logDTO := &dto.LogSessionDTO{
		DurationMinutes: 30,
		StudyDate:       time.Now().AddDate(0, 0, -5).Format("2006-01-02"),
	}
	_, err := svc.LogSession(context.Background(), 1, logDTO)
	require.NoError(t, err)

	assert.Nil(t, repo.streaks[1])
}
