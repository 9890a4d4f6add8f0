package http_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"gonotes/internal/domain/entities"
	"gonotes/internal/domain/services"
)

// memUserRepository - хранилище пользователей в памяти.
type memUserRepository struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: make(map[string]*entities.User)}
}

func (r *memUserRepository) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return nil, services.ErrEmailAlreadyExists
	}
	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.users[user.Email] = &stored

	out := stored
	return &out, nil
}

func (r *memUserRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, services.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (r *memUserRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// memNoteRepository - хранилище заметок в памяти. Непустой fault возвращается из каждого метода.
type memNoteRepository struct {
	mu    sync.Mutex
	seq   int
	notes []*entities.Note
	fault error
}

func newMemNoteRepository() *memNoteRepository {
	return &memNoteRepository{}
}

func (r *memNoteRepository) Create(_ context.Context, note *entities.Note) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fault != nil {
		return nil, r.fault
	}

	r.seq++
	stored := *note
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Unix(int64(r.seq), 0)
	r.notes = append(r.notes, &stored)

	out := stored
	return &out, nil
}

func (r *memNoteRepository) ListByUserID(_ context.Context, userID string) ([]*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fault != nil {
		return nil, r.fault
	}

	out := make([]*entities.Note, 0)
	for _, n := range r.notes {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memNoteRepository) DeleteAllByUserID(_ context.Context, userID string) (*entities.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fault != nil {
		return nil, r.fault
	}

	kept := r.notes[:0]
	var deleted int64
	for _, n := range r.notes {
		if n.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, n)
	}
	r.notes = kept
	return &entities.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

func (r *memNoteRepository) DeleteOneByTitle(_ context.Context, userID, title string) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fault != nil {
		return nil, r.fault
	}

	for i, n := range r.notes {
		if n.UserID == userID && n.Title == title {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return n, nil
		}
	}
	return nil, services.ErrNoteNotFound
}

func (r *memNoteRepository) titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, n.Title)
	}
	return out
}
