package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// avatarMaxDim is the longest edge an avatar is downscaled to before upload.
const avatarMaxDim = 512

type userUsecase struct {
	userRepo domain.UserRepository
	jobRepo  domain.JobRepository
	store    storage.ObjectStore
}

func NewUserUsecase(userRepo domain.UserRepository, jobRepo domain.JobRepository, store storage.ObjectStore) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		store:    store,
	}
}

func (u *userUsecase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userID string, upd *domain.ProfileUpdate) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	// Merge only the fields the client sent.
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Location != nil {
		user.Location = upd.Location
	}
	if upd.Bio != nil {
		user.Bio = upd.Bio
	}
	if upd.Skills != nil {
		user.Skills = upd.Skills
	}
	if upd.Social != nil {
		user.Social = *upd.Social
	}
	if upd.Experience != nil {
		user.Experience = upd.Experience
	}
	if upd.Education != nil {
		user.Education = upd.Education
	}
	user.UpdatedAt = time.Now()

	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return apperror.BadRequest("New password must be at least 6 characters")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperror.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}
	return u.userRepo.SetPasswordHash(ctx, userID, string(hash))
}

func (u *userUsecase) UploadResume(ctx context.Context, userID, filename string, data []byte) (string, error) {
	if !u.store.IsConfigured() {
		return "", apperror.ServiceUnavailable("File storage is not configured")
	}

	ext, err := storage.ValidateFile(filename, data, storage.KindResume)
	if err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("User not found")
		}
		return "", err
	}

	// Best effort removal of the previous upload; a leaked object is not
	// worth failing the request over.
	if user.ResumeURL != nil {
		if key := u.store.KeyFromURL(*user.ResumeURL); key != "" {
			if err := u.store.Delete(ctx, key); err != nil {
				logger.Log.Warn("failed to delete old resume", "user_id", userID, "error", err)
			}
		}
	}

	key := fmt.Sprintf("resumes/%s/%s%s", userID, uuid.NewString(), ext)
	url, err := u.store.Put(ctx, key, storage.ContentTypeFor(ext), data)
	if err != nil {
		return "", apperror.Internal(err)
	}

	if err := u.userRepo.SetResumeURL(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (u *userUsecase) UploadAvatar(ctx context.Context, userID, filename string, data []byte) (string, error) {
	if !u.store.IsConfigured() {
		return "", apperror.ServiceUnavailable("File storage is not configured")
	}

	if _, err := storage.ValidateFile(filename, data, storage.KindImage); err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	resized, ext, err := storage.Downscale(data, avatarMaxDim)
	if err != nil {
		return "", apperror.BadRequest("Could not process image")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("User not found")
		}
		return "", err
	}

	if user.AvatarURL != nil {
		if key := u.store.KeyFromURL(*user.AvatarURL); key != "" {
			if err := u.store.Delete(ctx, key); err != nil {
				logger.Log.Warn("failed to delete old avatar", "user_id", userID, "error", err)
			}
		}
	}

	key := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.NewString(), ext)
	url, err := u.store.Put(ctx, key, storage.ContentTypeFor(ext), resized)
	if err != nil {
		return "", apperror.Internal(err)
	}

	if err := u.userRepo.SetAvatarURL(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}

// ToggleSavedJob saves the job if it is not saved and unsaves it otherwise.
// Returns the resulting saved state.
func (u *userUsecase) ToggleSavedJob(ctx context.Context, userID, jobID string) (bool, error) {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, apperror.NotFound("Job not found")
		}
		return false, err
	}

	saved, err := u.userRepo.IsJobSaved(ctx, userID, jobID)
	if err != nil {
		return false, err
	}

	if saved {
		if err := u.userRepo.UnsaveJob(ctx, userID, jobID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := u.userRepo.SaveJob(ctx, userID, jobID); err != nil {
		return false, err
	}
	return true, nil
}

func (u *userUsecase) GetSavedJobs(ctx context.Context, userID string) ([]domain.Job, error) {
	return u.userRepo.ListSavedJobs(ctx, userID)
}
