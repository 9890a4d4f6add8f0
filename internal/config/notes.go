package config

// NotesConfig содержит настройки хранения заметок.
type NotesConfig struct {
	// StampDate включает заполнение поля date текущим временем при создании заметки.
	StampDate bool `env:"NOTES_STAMP_DATE" env-default:"true"`
}
