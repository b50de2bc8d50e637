package store

import (
	"context"

	"github.com/Rajamurugan09/ai-course-builder/internal/models"
)

type CreateCourseInput struct {
	Title       string
	Description string
	Content     string
	OwnerID     int64
}

// UpdateCourseInput carries a partial update: nil fields keep their stored value.
type UpdateCourseInput struct {
	CourseID    int64
	OwnerID     int64
	Title       *string
	Description *string
	Content     *string
}

type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, string, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

type CourseStore interface {
	CreateCourse(ctx context.Context, input CreateCourseInput) (models.Course, error)
	ListCourses(ctx context.Context, ownerID int64, offset, limit int) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID, ownerID int64) (models.Course, error)
	UpdateCourse(ctx context.Context, input UpdateCourseInput) (models.Course, error)
	DeleteCourse(ctx context.Context, courseID, ownerID int64) error
}

type Store interface {
	UserStore
	CourseStore
}
