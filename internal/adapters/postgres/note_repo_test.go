package postgres_test

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/internal/adapters/postgres"
	"gonotes/internal/domain/entities"
	"gonotes/internal/domain/services"
)

const ownerID = "0b7c5b7e-3f0a-4d5e-8a9b-2c1d0e9f8a7b"

var noteColumns = []string{"id", "user_id", "title", "description", "date", "created_at"}

func TestNoteRepository_Create(t *testing.T) {
	ctx := testContext(t)
	stamp := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("with date", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO notes").
			WithArgs(ownerID, "Groceries", "milk, eggs", pgtype.Timestamptz{Time: stamp, Valid: true}).
			WillReturnRows(pgxmock.NewRows(noteColumns).
				AddRow("note-1", ownerID, "Groceries", "milk, eggs", pgtype.Timestamptz{Time: stamp, Valid: true}, stamp))

		note, err := postgres.NewNoteRepository(mock).Create(ctx, entities.NewNote(ownerID, "Groceries", "milk, eggs", &stamp))

		require.NoError(t, err)
		assert.Equal(t, "note-1", note.ID)
		assert.Equal(t, ownerID, note.UserID)
		require.NotNil(t, note.Date)
		assert.True(t, stamp.Equal(*note.Date))
	})

	t.Run("without date", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO notes").
			WithArgs(ownerID, "Groceries", "milk, eggs", pgtype.Timestamptz{}).
			WillReturnRows(pgxmock.NewRows(noteColumns).
				AddRow("note-1", ownerID, "Groceries", "milk, eggs", nil, stamp))

		note, err := postgres.NewNoteRepository(mock).Create(ctx, entities.NewNote(ownerID, "Groceries", "milk, eggs", nil))

		require.NoError(t, err)
		assert.Nil(t, note.Date)
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO notes").
			WithArgs(ownerID, "t", "d", pgtype.Timestamptz{}).
			WillReturnError(errDB)

		note, err := postgres.NewNoteRepository(mock).Create(ctx, entities.NewNote(ownerID, "t", "d", nil))

		assert.Nil(t, note)
		assert.ErrorIs(t, err, services.ErrStoreFault)
	})
}

func TestNoteRepository_ListByUserID(t *testing.T) {
	ctx := testContext(t)
	created := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("notes in creation order", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT id, user_id, title, description, date, created_at").
			WithArgs(ownerID).
			WillReturnRows(pgxmock.NewRows(noteColumns).
				AddRow("note-1", ownerID, "first", "a", pgtype.Timestamptz{Time: created, Valid: true}, created).
				AddRow("note-2", ownerID, "second", "b", nil, created.Add(time.Second)))

		notes, err := postgres.NewNoteRepository(mock).ListByUserID(ctx, ownerID)

		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "first", notes[0].Title)
		assert.Equal(t, "second", notes[1].Title)
		assert.Nil(t, notes[1].Date)
	})

	t.Run("no notes yields empty slice", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT id, user_id, title, description, date, created_at").
			WithArgs(ownerID).
			WillReturnRows(pgxmock.NewRows(noteColumns))

		notes, err := postgres.NewNoteRepository(mock).ListByUserID(ctx, ownerID)

		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("query error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT id, user_id, title, description, date, created_at").
			WithArgs(ownerID).
			WillReturnError(errDB)

		notes, err := postgres.NewNoteRepository(mock).ListByUserID(ctx, ownerID)

		assert.Nil(t, notes)
		assert.ErrorIs(t, err, services.ErrStoreFault)
	})

	t.Run("row iteration error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT id, user_id, title, description, date, created_at").
			WithArgs(ownerID).
			WillReturnRows(pgxmock.NewRows(noteColumns).
				AddRow("note-1", ownerID, "first", "a", nil, created).
				RowError(0, errDB))

		notes, err := postgres.NewNoteRepository(mock).ListByUserID(ctx, ownerID)

		assert.Nil(t, notes)
		assert.ErrorIs(t, err, services.ErrStoreFault)
	})
}

func TestNoteRepository_DeleteAllByUserID(t *testing.T) {
	ctx := testContext(t)

	t.Run("reports deleted count", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("DELETE FROM notes WHERE user_id").
			WithArgs(ownerID).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))

		result, err := postgres.NewNoteRepository(mock).DeleteAllByUserID(ctx, ownerID)

		require.NoError(t, err)
		assert.Equal(t, &entities.DeleteResult{Acknowledged: true, DeletedCount: 3}, result)
	})

	t.Run("nothing to delete", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("DELETE FROM notes WHERE user_id").
			WithArgs(ownerID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		result, err := postgres.NewNoteRepository(mock).DeleteAllByUserID(ctx, ownerID)

		require.NoError(t, err)
		assert.True(t, result.Acknowledged)
		assert.Zero(t, result.DeletedCount)
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("DELETE FROM notes WHERE user_id").
			WithArgs(ownerID).
			WillReturnError(errDB)

		result, err := postgres.NewNoteRepository(mock).DeleteAllByUserID(ctx, ownerID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, services.ErrStoreFault)
	})
}

func TestNoteRepository_DeleteOneByTitle(t *testing.T) {
	ctx := testContext(t)
	created := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("deletes and returns the note", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("DELETE FROM notes").
			WithArgs(ownerID, "Groceries").
			WillReturnRows(pgxmock.NewRows(noteColumns).
				AddRow("note-1", ownerID, "Groceries", "milk", nil, created))

		note, err := postgres.NewNoteRepository(mock).DeleteOneByTitle(ctx, ownerID, "Groceries")

		require.NoError(t, err)
		assert.Equal(t, "note-1", note.ID)
		assert.Equal(t, "Groceries", note.Title)
	})

	t.Run("note not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("DELETE FROM notes").
			WithArgs(ownerID, "missing").
			WillReturnError(pgx.ErrNoRows)

		note, err := postgres.NewNoteRepository(mock).DeleteOneByTitle(ctx, ownerID, "missing")

		assert.Nil(t, note)
		assert.ErrorIs(t, err, services.ErrNoteNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("DELETE FROM notes").
			WithArgs(ownerID, "Groceries").
			WillReturnError(errDB)

		note, err := postgres.NewNoteRepository(mock).DeleteOneByTitle(ctx, ownerID, "Groceries")

		assert.Nil(t, note)
		assert.ErrorIs(t, err, services.ErrStoreFault)
	})
}
