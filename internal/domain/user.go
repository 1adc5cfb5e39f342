package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleJobseeker = "jobseeker"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// ValidRole reports whether role is one of the recognized roles.
func ValidRole(role string) bool {
	return role == RoleJobseeker || role == RoleEmployer || role == RoleAdmin
}

// Experience is one entry in a user's work history.
type Experience struct {
	ID          string     `json:"id"`
	UserID      string     `json:"-"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    *string    `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description *string    `json:"description,omitempty"`
}

// Education is one entry in a user's education history.
type Education struct {
	ID           string     `json:"id"`
	UserID       string     `json:"-"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  *string    `json:"description,omitempty"`
}

// SocialLinks are optional profile links on users and companies.
type SocialLinks struct {
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	Twitter  *string `json:"twitter,omitempty"`
	Facebook *string `json:"facebook,omitempty"`
	Website  *string `json:"website,omitempty"`
}

type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         string       `json:"role"`
	AvatarURL    *string      `json:"avatar,omitempty"`
	ResumeURL    *string      `json:"resume,omitempty"`
	Skills       []string     `json:"skills"`
	Location     *string      `json:"location,omitempty"`
	Bio          *string      `json:"bio,omitempty"`
	Social       SocialLinks  `json:"social"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ProfileUpdate carries the mutable profile fields. Nil slices mean
// "leave unchanged", matching partial updates from the client.
type ProfileUpdate struct {
	Name       *string
	Location   *string
	Bio        *string
	Skills     []string
	Social     *SocialLinks
	Experience []Experience
	Education  []Education
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, user *User) error
	SetPasswordHash(ctx context.Context, id, hash string) error
	SetResumeURL(ctx context.Context, id, url string) error
	SetAvatarURL(ctx context.Context, id, url string) error
	IsJobSaved(ctx context.Context, userID, jobID string) (bool, error)
	SaveJob(ctx context.Context, userID, jobID string) error
	UnsaveJob(ctx context.Context, userID, jobID string) error
	ListSavedJobs(ctx context.Context, userID string) ([]Job, error)
}

type UserUsecase interface {
	GetUser(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, upd *ProfileUpdate) (*User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	UploadResume(ctx context.Context, userID, filename string, data []byte) (string, error)
	UploadAvatar(ctx context.Context, userID, filename string, data []byte) (string, error)
	ToggleSavedJob(ctx context.Context, userID, jobID string) (bool, error)
	GetSavedJobs(ctx context.Context, userID string) ([]Job, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, name, email, password, role string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
