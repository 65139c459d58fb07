package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-keepass-http/internal/logger"
)

func newTestAssociationRepo(t *testing.T) (*associationRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	repo := &associationRepository{
		db: &DB{DB: db, logger: logger.Nop()},
	}
	return repo, mock, db
}

func TestSaveAssociation_InsertsNewBundle(t *testing.T) {
	repo, mock, db := newTestAssociationRepo(t)
	defer db.Close()

	rec := AssociationRecord{
		Host:      "localhost",
		Port:      19455,
		ClientID:  "go-keepass-http",
		SealedKey: "c2VhbGVk",
	}

	mock.ExpectExec("INSERT INTO associations").
		WithArgs(rec.Host, rec.Port, rec.ClientID, rec.SealedKey, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveAssociation_KeepsCreationTimeOnUpsert(t *testing.T) {
	repo, mock, db := newTestAssociationRepo(t)
	defer db.Close()

	created := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	rec := AssociationRecord{
		Host:      "localhost",
		Port:      19455,
		ClientID:  "go-keepass-http",
		SealedKey: "c2VhbGVk",
		CreatedAt: created,
	}

	mock.ExpectExec("INSERT INTO associations").
		WithArgs(rec.Host, rec.Port, rec.ClientID, rec.SealedKey, created, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveAssociation_DBError(t *testing.T) {
	repo, mock, db := newTestAssociationRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO associations").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Save(context.Background(), AssociationRecord{Host: "localhost", Port: 19455})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetAssociation_Success(t *testing.T) {
	repo, mock, db := newTestAssociationRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"host", "port", "client_id", "sealed_key", "created_at", "updated_at"}).
		AddRow("localhost", 19455, "go-keepass-http", "c2VhbGVk", now, now)

	mock.ExpectQuery("SELECT host").
		WithArgs("localhost", 19455).
		WillReturnRows(rows)

	rec, err := repo.Get(context.Background(), "localhost", 19455)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ClientID != "go-keepass-http" {
		t.Errorf("expected client id go-keepass-http, got %s", rec.ClientID)
	}
	if rec.SealedKey != "c2VhbGVk" {
		t.Errorf("expected sealed key c2VhbGVk, got %s", rec.SealedKey)
	}
}

func TestGetAssociation_NotFound(t *testing.T) {
	repo, mock, db := newTestAssociationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT host").
		WithArgs("localhost", 19455).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "localhost", 19455)
	if !errors.Is(err, ErrAssociationNotFound) {
		t.Fatalf("expected ErrAssociationNotFound, got %v", err)
	}
}

func TestGetAssociation_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestAssociationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT host").
		WithArgs("localhost", 19455).
		WillReturnError(errors.New("db failure"))

	_, err := repo.Get(context.Background(), "localhost", 19455)
	if err == nil || errors.Is(err, ErrAssociationNotFound) {
		t.Fatalf("expected wrapped DB error, got %v", err)
	}
}

func TestDeleteAssociation_MissingRowIsNotError(t *testing.T) {
	repo, mock, db := newTestAssociationRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM associations").
		WithArgs("localhost", 19455).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "localhost", 19455); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteAssociation_DBError(t *testing.T) {
	repo, mock, db := newTestAssociationRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM associations").
		WithArgs("localhost", 19455).
		WillReturnError(errors.New("db failure"))

	err := repo.Delete(context.Background(), "localhost", 19455)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
