// Package http содержит компоненты HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"gonotes/internal/adapters/http/auth"
	"gonotes/internal/adapters/http/dto"
	"gonotes/internal/adapters/http/middleware"
	"gonotes/internal/adapters/http/notes"
	"gonotes/internal/ports/api"
)

const MsgRouteNotFound = "Route not found"

// SetupRouter регистрирует маршруты API.
func SetupRouter(app *fiber.App, authUseCase api.AuthUseCase, noteUseCase api.NoteUseCase) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase)

	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New())

	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)

	// Маршруты заметок требуют токен. В fiber v3 обработчик маршрута передается первым,
	// а промежуточное ПО после него выполняется раньше обработчика.
	requireUser := middleware.NewAuthMiddleware(noteUseCase)
	app.Get("/notes", notesHandler.ListNotes, requireUser)
	app.Post("/addnote", notesHandler.AddNote, requireUser)
	app.Delete("/deleteall", notesHandler.DeleteAllNotes, requireUser)
	app.Post("/deleteone", notesHandler.DeleteNote, requireUser)

	app.Use(func(ctx fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: MsgRouteNotFound})
	})
}
