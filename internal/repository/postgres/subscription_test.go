package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/service/confirmation"
	"github.com/ignite/newsletter/internal/service/enrollment"
)

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return db, mock, func() { db.Close() }
}

func testNewSubscriber(t *testing.T) domain.NewSubscriber {
	t.Helper()
	name, err := domain.ParseSubscriberName("Minh Hoang")
	if err != nil {
		t.Fatalf("ParseSubscriberName: %v", err)
	}
	email, err := domain.ParseSubscriberEmail("user@example.com")
	if err != nil {
		t.Fatalf("ParseSubscriberEmail: %v", err)
	}
	return domain.NewSubscriber{Name: name, Email: email}
}

func TestInsertPendingSubscriber_CommitsBothRows(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO subscriptions").
		WithArgs(sqlmock.AnyArg(), "Minh Hoang", "user@example.com", "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO subscription_tokens").
		WithArgs("tok-25-chars-aaaaaaaaaaaa", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewSubscriptionRepo(db)
	id, err := repo.InsertPendingSubscriber(context.Background(), testNewSubscriber(t), "tok-25-chars-aaaaaaaaaaaa")
	if err != nil {
		t.Fatalf("InsertPendingSubscriber: %v", err)
	}
	if id == "" {
		t.Error("expected a generated subscriber id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestInsertPendingSubscriber_RollsBackWhenTokenInsertFails(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO subscriptions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO subscription_tokens").
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	repo := NewSubscriptionRepo(db)
	_, err := repo.InsertPendingSubscriber(context.Background(), testNewSubscriber(t), "tok")
	if !errors.Is(err, enrollment.ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations (rollback must happen): %v", err)
	}
}

func TestInsertPendingSubscriber_TokenConflict(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO subscriptions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO subscription_tokens").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "subscription_tokens_pkey"})
	mock.ExpectRollback()

	repo := NewSubscriptionRepo(db)
	_, err := repo.InsertPendingSubscriber(context.Background(), testNewSubscriber(t), "tok")
	if !errors.Is(err, enrollment.ErrTokenConflict) {
		t.Fatalf("err = %v, want ErrTokenConflict", err)
	}
}

func TestInsertPendingSubscriber_BeginFailure(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin().WillReturnError(errors.New("dial tcp: connection refused"))

	repo := NewSubscriptionRepo(db)
	_, err := repo.InsertPendingSubscriber(context.Background(), testNewSubscriber(t), "tok")
	if !errors.Is(err, enrollment.ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
}

func TestResolveToken_Found(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT subscriber_id FROM subscription_tokens").
		WithArgs("tok-123").
		WillReturnRows(sqlmock.NewRows([]string{"subscriber_id"}).AddRow("sub-1"))

	repo := NewSubscriptionRepo(db)
	id, err := repo.ResolveToken(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("ResolveToken: %v", err)
	}
	if id != "sub-1" {
		t.Errorf("id = %q, want sub-1", id)
	}
}

func TestResolveToken_Unknown(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT subscriber_id FROM subscription_tokens").
		WithArgs("nonexistent-token").
		WillReturnRows(sqlmock.NewRows([]string{"subscriber_id"}))

	repo := NewSubscriptionRepo(db)
	_, err := repo.ResolveToken(context.Background(), "nonexistent-token")
	if !errors.Is(err, confirmation.ErrUnknownToken) {
		t.Fatalf("err = %v, want ErrUnknownToken", err)
	}
}

func TestMarkConfirmed_Idempotent(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	// Second update matches the already-confirmed row; zero or one rows
	// affected are both success.
	mock.ExpectExec("UPDATE subscriptions SET status").
		WithArgs("confirmed", "sub-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE subscriptions SET status").
		WithArgs("confirmed", "sub-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewSubscriptionRepo(db)
	if err := repo.MarkConfirmed(context.Background(), "sub-1"); err != nil {
		t.Fatalf("first MarkConfirmed: %v", err)
	}
	if err := repo.MarkConfirmed(context.Background(), "sub-1"); err != nil {
		t.Fatalf("second MarkConfirmed: %v", err)
	}
}
