package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rajamurugan09/ai-course-builder/internal/models"
	"github.com/Rajamurugan09/ai-course-builder/internal/store"
)

const uniqueViolation = "23505"

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	user := models.User{Username: username}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING user_id, created_at
	`, username, passwordHash)
	if err := row.Scan(&user.ID, &user.Created); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.User{}, store.ErrDuplicateUsername
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, string, error) {
	var user models.User
	var passwordHash string
	row := s.pool.QueryRow(ctx, `
		SELECT user_id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`, username)
	if err := row.Scan(&user.ID, &user.Username, &passwordHash, &user.Created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, "", store.ErrUserNotFound
		}
		return models.User{}, "", err
	}
	return user, passwordHash, nil
}

func (s *Store) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	var user models.User
	row := s.pool.QueryRow(ctx, `
		SELECT user_id, username, created_at
		FROM users
		WHERE user_id = $1
	`, userID)
	if err := row.Scan(&user.ID, &user.Username, &user.Created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, store.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *Store) CreateCourse(ctx context.Context, input store.CreateCourseInput) (models.Course, error) {
	course := models.Course{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		OwnerID:     input.OwnerID,
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO courses (title, description, content, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING course_id
	`, input.Title, input.Description, input.Content, input.OwnerID)
	if err := row.Scan(&course.ID); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (s *Store) ListCourses(ctx context.Context, ownerID int64, offset, limit int) ([]models.Course, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT course_id, title, description, content, owner_id
		FROM courses
		WHERE owner_id = $1
		ORDER BY course_id ASC
		OFFSET $2 LIMIT $3
	`, ownerID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Title, &course.Description, &course.Content, &course.OwnerID); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *Store) GetCourse(ctx context.Context, courseID, ownerID int64) (models.Course, error) {
	var course models.Course
	row := s.pool.QueryRow(ctx, `
		SELECT course_id, title, description, content, owner_id
		FROM courses
		WHERE course_id = $1 AND owner_id = $2
	`, courseID, ownerID)
	if err := row.Scan(&course.ID, &course.Title, &course.Description, &course.Content, &course.OwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Course{}, store.ErrCourseNotFound
		}
		return models.Course{}, err
	}
	return course, nil
}

func (s *Store) UpdateCourse(ctx context.Context, input store.UpdateCourseInput) (models.Course, error) {
	var course models.Course
	row := s.pool.QueryRow(ctx, `
		UPDATE courses
		SET title       = COALESCE($1, title),
		    description = COALESCE($2, description),
		    content     = COALESCE($3, content)
		WHERE course_id = $4 AND owner_id = $5
		RETURNING course_id, title, description, content, owner_id
	`, input.Title, input.Description, input.Content, input.CourseID, input.OwnerID)
	if err := row.Scan(&course.ID, &course.Title, &course.Description, &course.Content, &course.OwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Course{}, store.ErrCourseNotFound
		}
		return models.Course{}, err
	}
	return course, nil
}

func (s *Store) DeleteCourse(ctx context.Context, courseID, ownerID int64) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM courses
		WHERE course_id = $1 AND owner_id = $2
	`, courseID, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrCourseNotFound
	}
	return nil
}
