package auth

import (
	"context"
	"testing"
	"time"

	"bahikhata/internal/domain"
	sessionrepo "bahikhata/internal/repository/session"
)

type stubOwnerRepo struct {
	owners map[string]domain.StoreOwner
}

func (s *stubOwnerRepo) UpsertByEmail(_ context.Context, o domain.StoreOwner) (*domain.StoreOwner, error) {
	if s.owners == nil {
		s.owners = map[string]domain.StoreOwner{}
	}
	existing, ok := s.owners[o.Email]
	if ok {
		existing.Phone = o.Phone
		s.owners[o.Email] = existing
		return &existing, nil
	}
	o.ID = "owner-" + o.Email
	o.CreatedAt = time.Now()
	s.owners[o.Email] = o
	return &o, nil
}

func (s *stubOwnerRepo) GetByID(_ context.Context, id string) (*domain.StoreOwner, error) {
	for _, o := range s.owners {
		if o.ID == id {
			out := o
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubSessionRepo struct {
	sessions map[string]sessionrepo.Session
	deleted  []string
}

func (s *stubSessionRepo) Create(_ context.Context, sess sessionrepo.Session) error {
	if s.sessions == nil {
		s.sessions = map[string]sessionrepo.Session{}
	}
	if _, ok := s.sessions[sess.Token]; ok {
		return domain.ErrAlreadyExists
	}
	s.sessions[sess.Token] = sess
	return nil
}

func (s *stubSessionRepo) Get(_ context.Context, token string) (*sessionrepo.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &sess, nil
}

func (s *stubSessionRepo) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	s.deleted = append(s.deleted, token)
	return nil
}

func TestSignInRequiresPhone(t *testing.T) {
	svc := New(&stubOwnerRepo{}, &stubSessionRepo{})
	_, _, err := svc.SignIn(context.Background(), SignInInput{Phone: "   "})
	if err != ErrPhoneRequired {
		t.Fatalf("expected ErrPhoneRequired, got %v", err)
	}
}

func TestSignInUpsertsOwnerAndIssuesToken(t *testing.T) {
	owners := &stubOwnerRepo{}
	sessions := &stubSessionRepo{}
	svc := New(owners, sessions)

	o, token, err := svc.SignIn(context.Background(), SignInInput{Phone: "+919876543210"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Email != "+919876543210@phone.local" {
		t.Fatalf("unexpected email: %s", o.Email)
	}
	if o.OwnerName != "Store Owner" || o.StoreName != "My Store" {
		t.Fatalf("expected default names, got %q / %q", o.OwnerName, o.StoreName)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected 1 stored session, got %d", len(sessions.sessions))
	}
}

func TestSignInTwiceReturnsSameOwner(t *testing.T) {
	svc := New(&stubOwnerRepo{}, &stubSessionRepo{})

	first, _, err := svc.SignIn(context.Background(), SignInInput{Phone: "+911111111111"})
	if err != nil {
		t.Fatalf("first sign-in: %v", err)
	}
	second, _, err := svc.SignIn(context.Background(), SignInInput{Phone: "+911111111111"})
	if err != nil {
		t.Fatalf("second sign-in: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same owner id, got %s and %s", first.ID, second.ID)
	}
}

func TestResolveValidToken(t *testing.T) {
	owners := &stubOwnerRepo{}
	sessions := &stubSessionRepo{}
	svc := New(owners, sessions)

	o, token, err := svc.SignIn(context.Background(), SignInInput{Phone: "+919876543210"})
	if err != nil {
		t.Fatalf("sign-in: %v", err)
	}

	resolved, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ID != o.ID {
		t.Fatalf("expected owner %s, got %s", o.ID, resolved.ID)
	}
}

func TestResolveUnknownToken(t *testing.T) {
	svc := New(&stubOwnerRepo{}, &stubSessionRepo{})
	if _, err := svc.Resolve(context.Background(), "nope"); err != ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestResolveExpiredTokenDeleted(t *testing.T) {
	sessions := &stubSessionRepo{sessions: map[string]sessionrepo.Session{
		"old": {Token: "old", StoreOwnerID: "o1", ExpiresAt: time.Now().Add(-time.Hour)},
	}}
	svc := New(&stubOwnerRepo{}, sessions)

	if _, err := svc.Resolve(context.Background(), "old"); err != ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if len(sessions.deleted) != 1 || sessions.deleted[0] != "old" {
		t.Fatalf("expected expired token to be deleted, got %v", sessions.deleted)
	}
}
