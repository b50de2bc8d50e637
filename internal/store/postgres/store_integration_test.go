package postgres

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rajamurugan09/ai-course-builder/internal/store"
)

func setupTestStore(t *testing.T, ctx context.Context) *Store {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		dsn = os.Getenv("DB_DSN")
	}
	if dsn == "" {
		t.Skip("TEST_DB_DSN or DB_DSN is required for integration tests")
	}

	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := createSchema(ctx, dsn, schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	scopedDSN := withSchema(dsn, schema)

	if err := RunMigrations(ctx, scopedDSN); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	pool, err := pgxpool.New(ctx, scopedDSN)
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(func() {
		pool.Close()
		_ = dropSchema(context.Background(), dsn, schema)
	})

	return NewStore(pool)
}

func createSchema(ctx context.Context, dsn, schema string) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	_, err = conn.Exec(ctx, "CREATE SCHEMA "+schema)
	return err
}

func dropSchema(ctx context.Context, dsn, schema string) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	_, err = conn.Exec(ctx, "DROP SCHEMA "+schema+" CASCADE")
	return err
}

// withSchema pins search_path so each test run gets its own namespace;
// pgx passes unknown URL query parameters through as runtime parameters.
func withSchema(dsn, schema string) string {
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + "search_path=" + schema
}

func TestCreateUserDuplicate(t *testing.T) {
	ctx := context.Background()
	st := setupTestStore(t, ctx)

	first, err := st.CreateUser(ctx, "alice", "hash-1")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected generated user id")
	}

	if _, err := st.CreateUser(ctx, "alice", "hash-2"); err != store.ErrDuplicateUsername {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	user, hash, err := st.GetUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.ID != first.ID || hash != "hash-1" {
		t.Fatalf("first registration was modified: %+v %q", user, hash)
	}
}

func TestGetUserByUsernameCaseSensitive(t *testing.T) {
	ctx := context.Background()
	st := setupTestStore(t, ctx)

	if _, err := st.CreateUser(ctx, "alice", "hash"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, _, err := st.GetUserByUsername(ctx, "Alice"); err != store.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound for different case, got %v", err)
	}
}

func TestCourseOwnershipAndPartialUpdate(t *testing.T) {
	ctx := context.Background()
	st := setupTestStore(t, ctx)

	alice, err := st.CreateUser(ctx, "alice", "hash")
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	bob, err := st.CreateUser(ctx, "bob", "hash")
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}

	course, err := st.CreateCourse(ctx, store.CreateCourseInput{
		Title:       "Go Basics",
		Description: "an introduction",
		OwnerID:     alice.ID,
	})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	// foreign owner and missing id are indistinguishable
	if _, err := st.GetCourse(ctx, course.ID, bob.ID); err != store.ErrCourseNotFound {
		t.Fatalf("expected ErrCourseNotFound for foreign owner, got %v", err)
	}
	if _, err := st.GetCourse(ctx, course.ID+1000, alice.ID); err != store.ErrCourseNotFound {
		t.Fatalf("expected ErrCourseNotFound for missing course, got %v", err)
	}

	title := "Go, Properly"
	updated, err := st.UpdateCourse(ctx, store.UpdateCourseInput{
		CourseID: course.ID,
		OwnerID:  alice.ID,
		Title:    &title,
	})
	if err != nil {
		t.Fatalf("update course: %v", err)
	}
	if updated.Title != "Go, Properly" || updated.Description != "an introduction" {
		t.Fatalf("partial update lost fields: %+v", updated)
	}

	if err := st.DeleteCourse(ctx, course.ID, bob.ID); err != store.ErrCourseNotFound {
		t.Fatalf("expected ErrCourseNotFound deleting foreign course, got %v", err)
	}
	if err := st.DeleteCourse(ctx, course.ID, alice.ID); err != nil {
		t.Fatalf("delete course: %v", err)
	}
	if err := st.DeleteCourse(ctx, course.ID, alice.ID); err != store.ErrCourseNotFound {
		t.Fatalf("expected ErrCourseNotFound on second delete, got %v", err)
	}
}

func TestListCoursesOrderAndPaging(t *testing.T) {
	ctx := context.Background()
	st := setupTestStore(t, ctx)

	alice, err := st.CreateUser(ctx, "alice", "hash")
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}

	for _, title := range []string{"one", "two", "three"} {
		if _, err := st.CreateCourse(ctx, store.CreateCourseInput{Title: title, OwnerID: alice.ID}); err != nil {
			t.Fatalf("create course %s: %v", title, err)
		}
	}

	courses, err := st.ListCourses(ctx, alice.ID, 0, 10)
	if err != nil {
		t.Fatalf("list courses: %v", err)
	}
	if len(courses) != 3 || courses[0].Title != "one" || courses[2].Title != "three" {
		t.Fatalf("expected insertion order, got %+v", courses)
	}

	page, err := st.ListCourses(ctx, alice.ID, 1, 1)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 1 || page[0].Title != "two" {
		t.Fatalf("unexpected page: %+v", page)
	}
}
