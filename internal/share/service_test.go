package share

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"melodia/internal/kafka"
	"melodia/internal/resource"
	myErr "melodia/internal/types/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// memRepo - ShareRepo в памяти с уникальностью (ресурс, email)
type memRepo struct {
	mu     sync.Mutex
	shares []*Share
	seq    int
}

func (m *memRepo) Create(ctx context.Context, s *Share) (*Share, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.shares {
		if existing.Ref() == s.Ref() && existing.SharedWithEmail == s.SharedWithEmail {
			return nil, myErr.ErrAlreadyShared
		}
	}
	m.seq++
	s.ID = "s" + strconv.Itoa(m.seq)
	s.Status = StatusPending
	cp := *s
	m.shares = append(m.shares, &cp)

	return s, nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*Share, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.shares {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, myErr.ErrNotFoundShare
}

func (m *memRepo) ListByResource(ctx context.Context, ref resource.Ref) ([]Share, error) {
	return m.filter(func(s *Share) bool { return s.Ref() == ref }), nil
}

func (m *memRepo) ListByEmail(ctx context.Context, email string) ([]Share, error) {
	return m.filter(func(s *Share) bool { return s.SharedWithEmail == email }), nil
}

func (m *memRepo) filter(keep func(*Share) bool) []Share {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Share, 0)
	for _, s := range m.shares {
		if keep(s) {
			out = append(out, *s)
		}
	}
	return out
}

func (m *memRepo) Accept(ctx context.Context, id, email string) (*Share, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.shares {
		if s.ID != id || s.SharedWithEmail != email {
			continue
		}
		if s.Status != StatusPending {
			return nil, myErr.ErrInvalidTransition
		}
		s.Status = StatusAccepted
		cp := *s
		return &cp, nil
	}
	return nil, myErr.ErrNotFoundShare
}

func (m *memRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.shares {
		if s.ID == id {
			m.shares = append(m.shares[:i], m.shares[i+1:]...)
			return nil
		}
	}
	return myErr.ErrNotFoundShare
}

func (m *memRepo) FindAccepted(ctx context.Context, ref resource.Ref, email string) (*Share, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.shares {
		if s.Ref() == ref && s.SharedWithEmail == email && s.Status == StatusAccepted {
			cp := *s
			return &cp, nil
		}
	}
	return nil, myErr.ErrNotFoundShare
}

type fakeResources struct {
	owners   map[resource.Ref]string
	titles   map[resource.Ref]string
	titleErr error
}

func (f *fakeResources) OwnerOf(ctx context.Context, ref resource.Ref) (string, error) {
	owner, ok := f.owners[ref]
	if !ok {
		return "", myErr.ErrNotFound
	}
	return owner, nil
}

func (f *fakeResources) Title(ctx context.Context, ref resource.Ref) (string, error) {
	if f.titleErr != nil {
		return "", f.titleErr
	}
	title, ok := f.titles[ref]
	if !ok {
		return "", myErr.ErrNotFound
	}
	return title, nil
}

type fakeEvents struct {
	mu   sync.Mutex
	sent []kafka.Event
}

func (e *fakeEvents) SendEvent(ctx context.Context, event kafka.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sent = append(e.sent, event)
	return nil
}

func (e *fakeEvents) Close() error { return nil }

var (
	note    = resource.Ref{ID: "3c6b8f0e-2d4a-4f1b-9e7c-5a0d1b2c3e41", Type: resource.TypeNote}
	rec     = resource.Ref{ID: "b7e5a9d2-6f3c-4a8e-8d1b-2c4f6e8a0b52", Type: resource.TypeRecording}
	deleted = resource.Ref{ID: "e1f2a3b4-c5d6-4e7f-8a9b-0c1d2e3f4a63", Type: resource.TypeRecording}

	owner     = resource.Actor{UserID: "owner", Email: "owner@melodia.app"}
	recipient = resource.Actor{UserID: "bob", Email: "a@b.com"}
	stranger  = resource.Actor{UserID: "eve", Email: "eve@x.com"}
)

func newTestService(t *testing.T) (*Service, *memRepo, *fakeResources, *fakeEvents) {
	repo := &memRepo{}
	res := &fakeResources{
		owners: map[resource.Ref]string{note: owner.UserID, rec: owner.UserID, deleted: owner.UserID},
		titles: map[resource.Ref]string{note: "Lyrics draft", rec: "Demo take 3"},
	}
	events := &fakeEvents{}

	return NewService(repo, res, events, zaptest.NewLogger(t).Sugar()), repo, res, events
}

func TestService_CreateAndAccept(t *testing.T) {
	ctx := context.Background()
	svc, _, _, events := newTestService(t)

	created, err := svc.Create(ctx, owner, CreateShare{
		ResourceID:      note.ID,
		ResourceType:    "note",
		Email:           " A@B.com ",
		PermissionLevel: "view",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, "a@b.com", created.SharedWithEmail)

	_, err = svc.Create(ctx, owner, CreateShare{ResourceID: note.ID, ResourceType: "note", Email: "a@b.com", PermissionLevel: "edit"})
	assert.Equal(t, myErr.ErrAlreadyShared, err)

	// pending grants nothing
	assert.Equal(t, myErr.ErrForbidden, svc.CheckAccess(ctx, note, recipient, PermissionView))

	accepted, err := svc.Accept(ctx, recipient, created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, accepted.Status)

	_, err = svc.Accept(ctx, recipient, created.ID)
	assert.Equal(t, myErr.ErrInvalidTransition, err)

	_, err = svc.Accept(ctx, stranger, created.ID)
	assert.Equal(t, myErr.ErrNotFoundShare, err)

	require.Len(t, events.sent, 2)
	assert.Equal(t, kafka.ShareCreated, events.sent[0].Type)
	assert.Equal(t, "a@b.com", events.sent[0].RecipientEmail)
	assert.Equal(t, kafka.ShareAccepted, events.sent[1].Type)
	assert.Equal(t, owner.UserID, events.sent[1].RecipientID)
}

func TestService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(t)

	tests := []struct {
		name    string
		actor   resource.Actor
		req     CreateShare
		wantErr error
	}{
		{"bad type", owner, CreateShare{ResourceID: "c1", ResourceType: "composition", Email: "a@b.com", PermissionLevel: "view"}, myErr.ErrBadResourceType},
		{"bad email", owner, CreateShare{ResourceID: note.ID, ResourceType: "note", Email: "not-an-email", PermissionLevel: "view"}, myErr.ErrBadEmail},
		{"display name email", owner, CreateShare{ResourceID: note.ID, ResourceType: "note", Email: "Bob <a@b.com>", PermissionLevel: "view"}, myErr.ErrBadEmail},
		{"bad permission", owner, CreateShare{ResourceID: note.ID, ResourceType: "note", Email: "a@b.com", PermissionLevel: "admin"}, myErr.ErrBadPermission},
		{"not owner", stranger, CreateShare{ResourceID: note.ID, ResourceType: "note", Email: "a@b.com", PermissionLevel: "view"}, myErr.ErrForbidden},
		{"missing resource", owner, CreateShare{ResourceID: "00000000-0000-0000-0000-000000000000", ResourceType: "note", Email: "a@b.com", PermissionLevel: "view"}, myErr.ErrNotFound},
		{"malformed resource id", owner, CreateShare{ResourceID: "abc", ResourceType: "note", Email: "a@b.com", PermissionLevel: "view"}, myErr.ErrBadID},
		{"empty resource id", owner, CreateShare{ResourceID: "", ResourceType: "note", Email: "a@b.com", PermissionLevel: "view"}, myErr.ErrBadID},
		{"self", owner, CreateShare{ResourceID: note.ID, ResourceType: "note", Email: "Owner@Melodia.app", PermissionLevel: "view"}, myErr.ErrShareWithSelf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.actor, tt.req)
			assert.Equal(t, tt.wantErr, err)
		})
	}

	assert.Empty(t, repo.shares)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner revokes accepted share", func(t *testing.T) {
		svc, repo, _, events := newTestService(t)

		s, err := svc.Create(ctx, owner, CreateShare{ResourceID: rec.ID, ResourceType: "recording", Email: "a@b.com", PermissionLevel: "edit"})
		require.NoError(t, err)
		_, err = svc.Accept(ctx, recipient, s.ID)
		require.NoError(t, err)
		require.NoError(t, svc.CheckAccess(ctx, rec, recipient, PermissionEdit))

		require.NoError(t, svc.Delete(ctx, owner, s.ID))
		assert.Empty(t, repo.shares)
		assert.Equal(t, myErr.ErrForbidden, svc.CheckAccess(ctx, rec, recipient, PermissionView))

		last := events.sent[len(events.sent)-1]
		assert.Equal(t, kafka.ShareRevoked, last.Type)
		assert.Equal(t, "a@b.com", last.RecipientEmail)
		assert.Equal(t, "accepted", last.Excerpt)
	})

	t.Run("recipient rejects pending share", func(t *testing.T) {
		svc, _, _, events := newTestService(t)

		s, err := svc.Create(ctx, owner, CreateShare{ResourceID: rec.ID, ResourceType: "recording", Email: "a@b.com", PermissionLevel: "view"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, recipient, s.ID))

		last := events.sent[len(events.sent)-1]
		assert.Equal(t, owner.UserID, last.RecipientID)

		// after rejection the owner can share again
		_, err = svc.Create(ctx, owner, CreateShare{ResourceID: rec.ID, ResourceType: "recording", Email: "a@b.com", PermissionLevel: "view"})
		assert.NoError(t, err)
	})

	t.Run("stranger sees not found", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		s, err := svc.Create(ctx, owner, CreateShare{ResourceID: rec.ID, ResourceType: "recording", Email: "a@b.com", PermissionLevel: "view"})
		require.NoError(t, err)

		assert.Equal(t, myErr.ErrNotFoundShare, svc.Delete(ctx, stranger, s.ID))
		assert.Equal(t, myErr.ErrBadID, svc.Delete(ctx, owner, ""))
	})
}

func TestService_CheckAccess(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	s, err := svc.Create(ctx, owner, CreateShare{ResourceID: note.ID, ResourceType: "note", Email: "a@b.com", PermissionLevel: "view"})
	require.NoError(t, err)
	_, err = svc.Accept(ctx, recipient, s.ID)
	require.NoError(t, err)

	assert.NoError(t, svc.CheckAccess(ctx, note, owner, PermissionEdit))
	assert.NoError(t, svc.CheckAccess(ctx, note, recipient, PermissionView))
	assert.Equal(t, myErr.ErrForbidden, svc.CheckAccess(ctx, note, recipient, PermissionEdit))
	assert.Equal(t, myErr.ErrForbidden, svc.CheckAccess(ctx, rec, recipient, PermissionView))
	assert.Equal(t, myErr.ErrForbidden, svc.CheckAccess(ctx, note, resource.Actor{UserID: "anon"}, PermissionView))
	assert.Equal(t, myErr.ErrNotFound, svc.CheckAccess(ctx, resource.Ref{ID: "x", Type: resource.TypeNote}, owner, PermissionView))
}

func TestService_ListForRecipient(t *testing.T) {
	ctx := context.Background()
	svc, _, res, _ := newTestService(t)

	for _, ref := range []resource.Ref{note, rec, deleted} {
		_, err := svc.Create(ctx, owner, CreateShare{ResourceID: ref.ID, ResourceType: string(ref.Type), Email: "a@b.com", PermissionLevel: "view"})
		require.NoError(t, err)
	}
	_, err := svc.Accept(ctx, recipient, "s2")
	require.NoError(t, err)

	got, err := svc.ListForRecipient(ctx, recipient, "", "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Lyrics draft", got[0].ResourceTitle)
	assert.Equal(t, "Demo take 3", got[1].ResourceTitle)
	assert.Equal(t, "Untitled", got[2].ResourceTitle)

	got, err = svc.ListForRecipient(ctx, recipient, StatusAccepted, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s2", got[0].ID)

	got, err = svc.ListForRecipient(ctx, recipient, "", resource.TypeNote)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, note.ID, got[0].ResourceID)

	got, err = svc.ListForRecipient(ctx, stranger, "", "")
	require.NoError(t, err)
	assert.Empty(t, got)

	res.titleErr = errors.New("db down")
	_, err = svc.ListForRecipient(ctx, recipient, "", "")
	assert.Error(t, err)
}

func TestService_ListByResource(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	_, err := svc.Create(ctx, owner, CreateShare{ResourceID: note.ID, ResourceType: "note", Email: "a@b.com", PermissionLevel: "view"})
	require.NoError(t, err)

	got, err := svc.ListByResource(ctx, owner, note)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListByResource(ctx, recipient, note)
	assert.Equal(t, myErr.ErrForbidden, err)
}

func TestPermission_Satisfies(t *testing.T) {
	assert.True(t, PermissionView.Satisfies(PermissionView))
	assert.True(t, PermissionEdit.Satisfies(PermissionView))
	assert.True(t, PermissionEdit.Satisfies(PermissionEdit))
	assert.False(t, PermissionView.Satisfies(PermissionEdit))
}
