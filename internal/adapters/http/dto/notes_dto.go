package dto

import (
	"time"

	"gonotes/internal/domain/entities"
)

// AddNoteRequest содержит данные для создания заметки.
type AddNoteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DeleteNoteRequest содержит заголовок удаляемой заметки.
type DeleteNoteRequest struct {
	Title string `json:"title"`
}

// Note представляет заметку.
type Note struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	UserID      string     `json:"userId"`
	Date        *time.Time `json:"date,omitempty"`
}

// ListNotesResponse содержит все заметки пользователя.
type ListNotesResponse struct {
	Message string `json:"message"`
	Data    []Note `json:"data"`
}

// AddNoteResponse содержит созданную заметку.
type AddNoteResponse struct {
	Message string `json:"message"`
	Note    Note   `json:"note"`
}

// DeleteResult - итог массового удаления.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// DeleteAllResponse содержит итог удаления всех заметок.
type DeleteAllResponse struct {
	Message string       `json:"message"`
	Data    DeleteResult `json:"data"`
}

// DeleteNoteResponse содержит удаленную заметку.
type DeleteNoteResponse struct {
	Message string `json:"message"`
	Data    Note   `json:"data"`
}

func NewNote(note *entities.Note) Note {
	return Note{
		ID:          note.ID,
		Title:       note.Title,
		Description: note.Description,
		UserID:      note.UserID,
		Date:        note.Date,
	}
}

// NewNotes преобразует список заметок. Результат никогда не равен nil.
func NewNotes(notes []*entities.Note) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, NewNote(n))
	}
	return out
}

func NewDeleteResult(res *entities.DeleteResult) DeleteResult {
	return DeleteResult{
		Acknowledged: res.Acknowledged,
		DeletedCount: res.DeletedCount,
	}
}
