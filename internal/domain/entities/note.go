package entities

import "time"

// Note представляет заметку пользователя.
type Note struct {
	ID          string
	UserID      string
	Title       string
	Description string
	// Date равен nil, если отметка времени при создании отключена.
	Date      *time.Time
	CreatedAt time.Time
}

// NewNote создает заметку владельца userID. Если stamp передан, он становится датой заметки.
func NewNote(userID, title, description string, stamp *time.Time) *Note {
	return &Note{
		UserID:      userID,
		Title:       title,
		Description: description,
		Date:        stamp,
	}
}

// DeleteResult описывает итог массового удаления.
type DeleteResult struct {
	Acknowledged bool
	DeletedCount int64
}
