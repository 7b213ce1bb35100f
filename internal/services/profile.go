package services

import (
	"context"
	"errors"
	"fmt"

	"eventstaffing/internal/domain"
)

type profileService struct {
	userRepo           domain.UserRepository
	studentProfileRepo domain.StudentProfileRepository
	managerProfileRepo domain.ManagerProfileRepository
}

// NewProfileService creates a ProfileService with the given repositories.
func NewProfileService(
	userRepo domain.UserRepository,
	studentProfileRepo domain.StudentProfileRepository,
	managerProfileRepo domain.ManagerProfileRepository,
) domain.ProfileService {
	return &profileService{
		userRepo:           userRepo,
		studentProfileRepo: studentProfileRepo,
		managerProfileRepo: managerProfileRepo,
	}
}

func (s *profileService) GetStudentProfile(ctx context.Context, userID string) (*domain.StudentProfileView, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.studentProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get student profile: %w", err)
		}
		// No profile yet; return an empty one so the UI renders a blank form.
		profile = &domain.StudentProfile{UserID: userID}
	}
	return &domain.StudentProfileView{Name: user.Name, Email: user.Email, Profile: profile}, nil
}

func (s *profileService) SaveStudentProfile(ctx context.Context, profile *domain.StudentProfile, profileCompleted bool) (*domain.StudentProfile, error) {
	if _, err := s.getUser(ctx, profile.UserID); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetProfileCompleted(ctx, profile.UserID, profileCompleted); err != nil {
		return nil, fmt.Errorf("set profile completed: %w", err)
	}
	if err := s.studentProfileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("save student profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetManagerProfile(ctx context.Context, userID string) (*domain.ManagerProfileView, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.managerProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get manager profile: %w", err)
		}
		profile = &domain.ManagerProfile{UserID: userID}
	}
	return &domain.ManagerProfileView{Name: user.Name, Email: user.Email, Profile: profile}, nil
}

func (s *profileService) SaveManagerProfile(ctx context.Context, profile *domain.ManagerProfile, profileCompleted bool) (*domain.ManagerProfile, error) {
	if _, err := s.getUser(ctx, profile.UserID); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetProfileCompleted(ctx, profile.UserID, profileCompleted); err != nil {
		return nil, fmt.Errorf("set profile completed: %w", err)
	}
	if err := s.managerProfileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("save manager profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) getUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
