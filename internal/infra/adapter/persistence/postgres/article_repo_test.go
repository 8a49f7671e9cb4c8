package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"newsboard/internal/domain/entity"
	pg "newsboard/internal/infra/adapter/persistence/postgres"
	"newsboard/internal/repository"
)

/* ─────────────────────────── ヘルパ ─────────────────────────── */

func artRow(a *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "body", "category",
		"submitted_by_user_id", "created_at",
	}).AddRow(
		a.ID, a.Title, a.Body, a.Category,
		a.SubmittedBy, a.CreatedAt,
	)
}

func strPtr(s string) *string { return &s }

/* ─────────────────────────── 1. Get ─────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	want := &entity.Article{
		ID: 1, Title: "Go 1.25 released", Body: "release notes digest",
		Category: "golang", SubmittedBy: 7, CreatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(artRow(want))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_notFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "body", "category",
			"submitted_by_user_id", "created_at",
		})) // 空集合

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("want nil for missing article, got %+v", got)
	}
}

/* ─────────────────────────── 2. List ─────────────────────────── */

func TestArticleRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM articles").
		WithArgs(10, 20).
		WillReturnRows(artRow(&entity.Article{
			ID: 21, Title: "x", Body: "y", Category: "z",
			SubmittedBy: 1, CreatedAt: now,
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.List(context.Background(), 20, 10)
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
}

/* ─────────────────────────── 3. Owner ─────────────────────────── */

func TestArticleRepo_Owner(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT submitted_by_user_id")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"submitted_by_user_id"}).AddRow(int64(7)))

	repo := pg.NewArticleRepo(db)
	owner, found, err := repo.Owner(context.Background(), 5)
	if err != nil {
		t.Fatalf("Owner err=%v", err)
	}
	if !found || owner != 7 {
		t.Fatalf("want owner=7 found=true, got owner=%d found=%v", owner, found)
	}
}

func TestArticleRepo_Owner_notFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT submitted_by_user_id")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"submitted_by_user_id"}))

	repo := pg.NewArticleRepo(db)
	_, found, err := repo.Owner(context.Background(), 404)
	if err != nil {
		t.Fatalf("Owner err=%v", err)
	}
	if found {
		t.Fatalf("want found=false for missing article")
	}
}

/* ─────────────────────────── 4. Create ─────────────────────────── */

func TestArticleRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WithArgs("title here", "a long enough body", "tech", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	repo := pg.NewArticleRepo(db)
	art := &entity.Article{
		Title: "title here", Body: "a long enough body",
		Category: "tech", SubmittedBy: 7,
	}
	if err := repo.Create(context.Background(), art); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	// RETURNING句でIDと作成日時が埋まること
	if art.ID != 3 || !art.CreatedAt.Equal(now) {
		t.Fatalf("returned columns not applied: %+v", art)
	}
}

/* ─────────────────────────── 5. Update ─────────────────────────── */

func TestArticleRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE articles SET")).
		WithArgs("new title", "new body text here", "tech", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"submitted_by_user_id", "created_at"}).
			AddRow(int64(7), now))

	repo := pg.NewArticleRepo(db)
	art := &entity.Article{ID: 1, Title: "new title", Body: "new body text here", Category: "tech"}
	if err := repo.Update(context.Background(), art); err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if art.SubmittedBy != 7 {
		t.Fatalf("owner not filled from RETURNING: %+v", art)
	}
}

func TestArticleRepo_Update_notFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE articles SET")).
		WithArgs("t", "b", "c", int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"submitted_by_user_id", "created_at"}))

	repo := pg.NewArticleRepo(db)
	err := repo.Update(context.Background(), &entity.Article{ID: 99, Title: "t", Body: "b", Category: "c"})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

/* ─────────────────────────── 6. UpdateFields ─────────────────────────── */

func TestArticleRepo_UpdateFields_titleOnly(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE articles SET title = $1 WHERE id = $2")).
		WithArgs("patched title", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewArticleRepo(db)
	err := repo.UpdateFields(context.Background(), 1, repository.ArticlePatch{Title: strPtr("patched title")})
	if err != nil {
		t.Fatalf("UpdateFields err=%v", err)
	}
}

func TestArticleRepo_UpdateFields_allFields(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE articles SET title = $1, body = $2, category = $3 WHERE id = $4")).
		WithArgs("t2", "b2", "c2", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewArticleRepo(db)
	err := repo.UpdateFields(context.Background(), 1, repository.ArticlePatch{
		Title: strPtr("t2"), Body: strPtr("b2"), Category: strPtr("c2"),
	})
	if err != nil {
		t.Fatalf("UpdateFields err=%v", err)
	}
}

func TestArticleRepo_UpdateFields_empty(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := pg.NewArticleRepo(db)
	err := repo.UpdateFields(context.Background(), 1, repository.ArticlePatch{})
	if !errors.Is(err, entity.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestArticleRepo_UpdateFields_notFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE articles SET")).
		WithArgs("x", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewArticleRepo(db)
	err := repo.UpdateFields(context.Background(), 99, repository.ArticlePatch{Title: strPtr("x")})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

/* ─────────────────────────── 7. Delete ─────────────────────────── */

func TestArticleRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewArticleRepo(db)
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestArticleRepo_Delete_notFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewArticleRepo(db)
	if err := repo.Delete(context.Background(), 99); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
