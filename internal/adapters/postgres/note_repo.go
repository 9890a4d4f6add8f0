package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"gonotes/internal/domain/entities"
	"gonotes/internal/domain/services"
	"gonotes/internal/ports/repositories"
	"gonotes/pkg/logger"
)

// Константы для логирования и ошибок.
const (
	errCtxCreateNote     = "error creating note"
	errCtxListNotes      = "error listing notes"
	errCtxScanNote       = "error scanning note"
	errCtxDeleteAllNotes = "error deleting notes"
	errCtxDeleteNote     = "error deleting note"
)

// NoteRepository реализует интерфейс repositories.NoteRepository для работы с Postgres.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый экземпляр репозитория заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// scanNote читает строку id, user_id, title, description, date, created_at.
func scanNote(row pgx.Row) (*entities.Note, error) {
	var (
		note entities.Note
		date pgtype.Timestamptz
	)
	if err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Description, &date, &note.CreatedAt); err != nil {
		return nil, err
	}
	if date.Valid {
		t := date.Time
		note.Date = &t
	}
	return &note, nil
}

func dateParam(date *time.Time) pgtype.Timestamptz {
	if date == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *date, Valid: true}
}

// Create сохраняет заметку.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(
		zap.String("repository", "note"),
		zap.String("method", "Create"),
		zap.String("user_id", note.UserID),
	)

	query := `
        INSERT INTO notes (user_id, title, description, date)
        VALUES ($1, $2, $3, $4)
        RETURNING id, user_id, title, description, date, created_at
    `

	created, err := scanNote(r.pool.QueryRow(ctx, query,
		note.UserID,
		note.Title,
		note.Description,
		dateParam(note.Date),
	))
	if err != nil {
		log.Error(ctx, errCtxCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxCreateNote, services.ErrStoreFault, err)
	}

	log.Debug(ctx, "note created", zap.String("note_id", created.ID))
	return created, nil
}

// ListByUserID возвращает все заметки пользователя в порядке создания.
func (r *NoteRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(
		zap.String("repository", "note"),
		zap.String("method", "ListByUserID"),
		zap.String("user_id", userID),
	)

	query := `
        SELECT id, user_id, title, description, date, created_at
        FROM notes
        WHERE user_id = $1
        ORDER BY created_at, id
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, errCtxListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxListNotes, services.ErrStoreFault, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, errCtxScanNote, zap.Error(err))
			return nil, fmt.Errorf("%s: %w: %w", errCtxScanNote, services.ErrStoreFault, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, errCtxListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxListNotes, services.ErrStoreFault, err)
	}

	log.Debug(ctx, "notes listed", zap.Int("count", len(notes)))
	return notes, nil
}

// DeleteAllByUserID удаляет все заметки пользователя.
func (r *NoteRepository) DeleteAllByUserID(ctx context.Context, userID string) (*entities.DeleteResult, error) {
	log := logger.Log(ctx).With(
		zap.String("repository", "note"),
		zap.String("method", "DeleteAllByUserID"),
		zap.String("user_id", userID),
	)

	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE user_id = $1`, userID)
	if err != nil {
		log.Error(ctx, errCtxDeleteAllNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxDeleteAllNotes, services.ErrStoreFault, err)
	}

	log.Info(ctx, "notes deleted", zap.Int64("count", tag.RowsAffected()))
	return &entities.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}

// DeleteOneByTitle атомарно удаляет самую раннюю заметку пользователя с заголовком title.
func (r *NoteRepository) DeleteOneByTitle(ctx context.Context, userID, title string) (*entities.Note, error) {
	log := logger.Log(ctx).With(
		zap.String("repository", "note"),
		zap.String("method", "DeleteOneByTitle"),
		zap.String("user_id", userID),
	)

	query := `
        DELETE FROM notes
        WHERE id = (
            SELECT id FROM notes
            WHERE user_id = $1 AND title = $2
            ORDER BY created_at, id
            LIMIT 1
        )
        RETURNING id, user_id, title, description, date, created_at
    `

	deleted, err := scanNote(r.pool.QueryRow(ctx, query, userID, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found")
			return nil, services.ErrNoteNotFound
		}
		log.Error(ctx, errCtxDeleteNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxDeleteNote, services.ErrStoreFault, err)
	}

	log.Info(ctx, "note deleted", zap.String("note_id", deleted.ID))
	return deleted, nil
}
