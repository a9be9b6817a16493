package usecase

import (
	"testing"
	"time"

	"statusbar-backend/internal/profile/domain"
	"statusbar-backend/internal/profile/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileUsecase() ProfileUsecase {
	return NewProfileUsecase(repository.NewMemoryProfileRepository())
}

func TestGetProfileCreatesDefault(t *testing.T) {
	uc := newProfileUsecase()

	profile, err := uc.GetProfile("u1")
	require.NoError(t, err)
	assert.Equal(t, "07:00", profile.WakeUpTime)
	assert.Equal(t, "23:00", profile.SleepTime)
	assert.Equal(t, domain.ProductiveMorning, profile.ProductiveHours)
	assert.Equal(t, 0, profile.Aura)
	assert.Equal(t, 0, profile.Streak)
	assert.Equal(t, 25, profile.Pomodoro.WorkDuration)
}

func TestInitProfileIsIdempotent(t *testing.T) {
	uc := newProfileUsecase()

	require.NoError(t, uc.InitProfile("u1", "Neo"))

	name := "Morpheus"
	_, err := uc.UpdateProfile("u1", ProfileUpdateRequest{Name: &name})
	require.NoError(t, err)

	// a second init must not reset the stored profile
	require.NoError(t, uc.InitProfile("u1", "Neo"))
	profile, err := uc.GetProfile("u1")
	require.NoError(t, err)
	assert.Equal(t, "Morpheus", profile.Name)
}

func TestUpdateProfileValidation(t *testing.T) {
	uc := newProfileUsecase()

	bad := "25:99"
	_, err := uc.UpdateProfile("u1", ProfileUpdateRequest{WakeUpTime: &bad})
	assert.Error(t, err)

	badHours := "midnight"
	_, err = uc.UpdateProfile("u1", ProfileUpdateRequest{ProductiveHours: &badHours})
	assert.Error(t, err)

	good := "06:30"
	hours := "night"
	profile, err := uc.UpdateProfile("u1", ProfileUpdateRequest{WakeUpTime: &good, ProductiveHours: &hours})
	require.NoError(t, err)
	assert.Equal(t, "06:30", profile.WakeUpTime)
	assert.Equal(t, domain.ProductiveNight, profile.ProductiveHours)
}

func TestUpdatePomodoroRejectsNonPositiveDurations(t *testing.T) {
	uc := newProfileUsecase()

	_, err := uc.UpdatePomodoro("u1", domain.PomodoroSettings{WorkDuration: 0, ShortBreakDuration: 5, LongBreakDuration: 15})
	assert.Error(t, err)

	profile, err := uc.UpdatePomodoro("u1", domain.PomodoroSettings{WorkDuration: 50, ShortBreakDuration: 10, LongBreakDuration: 20, AutoStartBreaks: true})
	require.NoError(t, err)
	assert.Equal(t, 50, profile.Pomodoro.WorkDuration)
	assert.True(t, profile.Pomodoro.AutoStartBreaks)
}

func TestCompletionDeltaAuraClampedAtZero(t *testing.T) {
	uc := newProfileUsecase()
	now := time.Now()

	profile, err := uc.ApplyCompletionDelta("u1", true, now)
	require.NoError(t, err)
	assert.Equal(t, domain.CompletionXP, profile.Aura)

	profile, err = uc.ApplyCompletionDelta("u1", false, now)
	require.NoError(t, err)
	assert.Equal(t, 0, profile.Aura)

	// un-completing at zero stays at zero
	profile, err = uc.ApplyCompletionDelta("u1", false, now)
	require.NoError(t, err)
	assert.Equal(t, 0, profile.Aura)
}

func TestStreakAdvancesOncePerDay(t *testing.T) {
	uc := newProfileUsecase()
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	profile, err := uc.ApplyCompletionDelta("u1", true, day1)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Streak)

	// second completion the same day does not double-count
	profile, err = uc.ApplyCompletionDelta("u1", true, day1.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Streak)

	// next day continues the streak
	profile, err = uc.ApplyCompletionDelta("u1", true, day1.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, profile.Streak)

	// a gap restarts at 1
	profile, err = uc.ApplyCompletionDelta("u1", true, day1.AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Streak)
}

func TestStreakSurvivesUncomplete(t *testing.T) {
	uc := newProfileUsecase()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := uc.ApplyCompletionDelta("u1", true, now)
	require.NoError(t, err)

	profile, err := uc.ApplyCompletionDelta("u1", false, now)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Streak)
}

func TestLevelAndProgress(t *testing.T) {
	cases := []struct {
		aura     int
		level    int
		progress float64
	}{
		{0, 1, 0},
		{500, 1, 50},
		{999, 1, 99.9},
		{1000, 2, 0},
		{2500, 3, 50},
	}
	for _, c := range cases {
		p := &domain.UserProfile{Aura: c.aura}
		assert.Equal(t, c.level, p.Level(), "aura=%d", c.aura)
		assert.InDelta(t, c.progress, p.ProgressPercent(), 0.001, "aura=%d", c.aura)
	}
}
