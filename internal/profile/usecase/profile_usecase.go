package usecase

import (
	"sync"
	"time"

	"statusbar-backend/internal/profile/domain"
	"statusbar-backend/internal/profile/repository"
)

// profileUsecase implements ProfileUsecase
type profileUsecase struct {
	mu          sync.Mutex
	profileRepo repository.ProfileRepository
}

// NewProfileUsecase creates a new instance of profileUsecase
func NewProfileUsecase(profileRepo repository.ProfileRepository) ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
	}
}

func (u *profileUsecase) InitProfile(userID, name string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	existing, err := u.profileRepo.FindByUserID(userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return u.profileRepo.Save(domain.DefaultProfile(userID, name))
}

func (u *profileUsecase) GetProfile(userID string) (*domain.UserProfile, error) {
	profile, err := u.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = domain.DefaultProfile(userID, "")
		if err := u.profileRepo.Save(profile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func (u *profileUsecase) UpdateProfile(userID string, updates ProfileUpdateRequest) (*domain.UserProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	profile, err := u.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		profile.Name = *updates.Name
	}
	if updates.WakeUpTime != nil {
		if _, err := time.Parse("15:04", *updates.WakeUpTime); err != nil {
			return nil, err
		}
		profile.WakeUpTime = *updates.WakeUpTime
	}
	if updates.SleepTime != nil {
		if _, err := time.Parse("15:04", *updates.SleepTime); err != nil {
			return nil, err
		}
		profile.SleepTime = *updates.SleepTime
	}
	if updates.ProductiveHours != nil {
		hours, err := domain.ParseProductiveHours(*updates.ProductiveHours)
		if err != nil {
			return nil, err
		}
		profile.ProductiveHours = hours
	}
	if updates.Theme != nil {
		// Opaque display identifier, stored as-is
		profile.Theme = *updates.Theme
	}

	if err := u.profileRepo.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) UpdatePomodoro(userID string, settings domain.PomodoroSettings) (*domain.UserProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	profile, err := u.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	profile.Pomodoro = settings
	if err := u.profileRepo.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) ApplyCompletionDelta(userID string, completed bool, at time.Time) (*domain.UserProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	profile, err := u.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if completed {
		profile.Aura += domain.CompletionXP
		u.advanceStreak(profile, at)
	} else {
		profile.Aura -= domain.CompletionXP
		if profile.Aura < 0 {
			profile.Aura = 0
		}
		// Un-completing never unwinds the streak: the day stays productive.
	}

	if err := u.profileRepo.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// advanceStreak increments the consecutive-day counter at most once per
// calendar day: continue from yesterday, restart after a gap.
func (u *profileUsecase) advanceStreak(profile *domain.UserProfile, at time.Time) {
	today := at.Format("2006-01-02")
	yesterday := at.AddDate(0, 0, -1).Format("2006-01-02")

	switch profile.LastActiveDate {
	case today:
		// already counted today
	case yesterday:
		profile.Streak++
	default:
		profile.Streak = 1
	}
	profile.LastActiveDate = today
}
