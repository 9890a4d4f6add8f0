// Package notes содержит HTTP-обработчики заметок текущего пользователя.
package notes

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/adapters/http/dto"
	"gonotes/internal/adapters/http/middleware"
	"gonotes/internal/adapters/http/response"
	"gonotes/internal/ports/api"
	"gonotes/pkg/logger"
)

const (
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerAddNote    = "handling add note request"
	LogHandlerDeleteAll  = "handling delete all notes request"
	LogHandlerDeleteNote = "handling delete note request"
	LogInvalidBody       = "invalid request body"
	LogOperationFailed   = "notes operation failed"

	MsgNotesFetched = "Notes fetched successfully"
	MsgNoteSaved    = "Note saved successfully"
	MsgNotesDeleted = "Notes deleted successfully"
	MsgNoteDeleted  = "Note deleted successfully"
)

// ErrNoUserInContext - обработчик вызван без auth middleware.
var ErrNoUserInContext = errors.New("user is not set in request context")

// Handler обрабатывает запросы к заметкам.
type Handler struct {
	noteUseCase api.NoteUseCase
}

func NewHandler(noteUseCase api.NoteUseCase) *Handler {
	return &Handler{noteUseCase: noteUseCase}
}

// ListNotes обрабатывает GET /notes.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		response.LogError(requestCtx, log, LogOperationFailed, ErrNoUserInContext)
		return response.Error(ctx, ErrNoUserInContext)
	}

	notes, err := h.noteUseCase.ListNotes(requestCtx, user)
	if err != nil {
		response.LogError(requestCtx, log, LogOperationFailed, err)
		return response.Error(ctx, err)
	}

	return response.JSON(ctx, fiber.StatusOK, dto.ListNotesResponse{
		Message: MsgNotesFetched,
		Data:    dto.NewNotes(notes),
	})
}

// AddNote обрабатывает POST /addnote.
func (h *Handler) AddNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.AddNote"))
	log.Debug(requestCtx, LogHandlerAddNote)

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		response.LogError(requestCtx, log, LogOperationFailed, ErrNoUserInContext)
		return response.Error(ctx, ErrNoUserInContext)
	}

	var req dto.AddNoteRequest
	if err := dto.Decode(ctx, &req); err != nil {
		response.LogError(requestCtx, log, LogInvalidBody, err)
		return response.Error(ctx, err)
	}

	note, err := h.noteUseCase.AddNote(requestCtx, user, req.Title, req.Description)
	if err != nil {
		response.LogError(requestCtx, log, LogOperationFailed, err)
		return response.Error(ctx, err)
	}

	return response.JSON(ctx, fiber.StatusOK, dto.AddNoteResponse{
		Message: MsgNoteSaved,
		Note:    dto.NewNote(note),
	})
}

// DeleteAllNotes обрабатывает DELETE /deleteall.
func (h *Handler) DeleteAllNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteAllNotes"))
	log.Debug(requestCtx, LogHandlerDeleteAll)

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		response.LogError(requestCtx, log, LogOperationFailed, ErrNoUserInContext)
		return response.Error(ctx, ErrNoUserInContext)
	}

	result, err := h.noteUseCase.DeleteAllNotes(requestCtx, user)
	if err != nil {
		response.LogError(requestCtx, log, LogOperationFailed, err)
		return response.Error(ctx, err)
	}

	return response.JSON(ctx, fiber.StatusOK, dto.DeleteAllResponse{
		Message: MsgNotesDeleted,
		Data:    dto.NewDeleteResult(result),
	})
}

// DeleteNote обрабатывает POST /deleteone.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		response.LogError(requestCtx, log, LogOperationFailed, ErrNoUserInContext)
		return response.Error(ctx, ErrNoUserInContext)
	}

	var req dto.DeleteNoteRequest
	if err := dto.Decode(ctx, &req); err != nil {
		response.LogError(requestCtx, log, LogInvalidBody, err)
		return response.Error(ctx, err)
	}

	note, err := h.noteUseCase.DeleteNote(requestCtx, user, req.Title)
	if err != nil {
		response.LogError(requestCtx, log, LogOperationFailed, err)
		return response.Error(ctx, err)
	}

	return response.JSON(ctx, fiber.StatusOK, dto.DeleteNoteResponse{
		Message: MsgNoteDeleted,
		Data:    dto.NewNote(note),
	})
}
