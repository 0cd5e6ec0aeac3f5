package usecase

import (
	"context"
	"errors"
	"testing"

	"chromaprint/internal/domain/entities"
	mock_interfaces "chromaprint/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthSession_Login(t *testing.T) {
	t.Run("blank credentials fail without a network call", func(t *testing.T) {
		s := NewAuthSession(nil)
		if err := s.Login(context.Background(), "   ", "pw"); !errors.Is(err, ErrLoginFailed) {
			t.Fatalf("expected ErrLoginFailed, got %v", err)
		}
		if err := s.Login(context.Background(), "a@b.com", ""); !errors.Is(err, ErrLoginFailed) {
			t.Fatalf("expected ErrLoginFailed, got %v", err)
		}
		if s.Token() != "" {
			t.Fatalf("token must stay empty after failed login")
		}
	})

	t.Run("any gateway rejection is one generic failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAuthGateway(ctrl)
		s := NewAuthSession(gw)

		gw.EXPECT().Login(gomock.Any(), "a@b.com", "wrong").
			Return("", entities.User{}, errors.New("401 from backend"))

		err := s.Login(context.Background(), "a@b.com", "wrong")
		if !errors.Is(err, ErrLoginFailed) {
			t.Fatalf("expected ErrLoginFailed, got %v", err)
		}
		// The failure reason never distinguishes which field was wrong.
		if err.Error() != "login failed" {
			t.Fatalf("expected a generic message, got %q", err.Error())
		}
		if s.Token() != "" {
			t.Fatalf("token must stay empty after failed login")
		}
		if _, ok := s.User(); ok {
			t.Fatalf("no identity expected after failed login")
		}
	})

	t.Run("success populates token and identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAuthGateway(ctrl)
		s := NewAuthSession(gw)

		gw.EXPECT().Login(gomock.Any(), "a@b.com", "pw").
			Return("t1", entities.User{Email: "a@b.com", Name: "A"}, nil)

		if err := s.Login(context.Background(), " a@b.com ", "pw"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Token() != "t1" || !s.Authenticated() {
			t.Fatalf("expected token t1, got %q", s.Token())
		}
		user, ok := s.User()
		if !ok || user.Email != "a@b.com" {
			t.Fatalf("unexpected identity: %+v", user)
		}
	})

	t.Run("later login overwrites, no merge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAuthGateway(ctrl)
		s := NewAuthSession(gw)

		gw.EXPECT().Login(gomock.Any(), "a@b.com", "pw").
			Return("t1", entities.User{Email: "a@b.com", Name: "A"}, nil)
		gw.EXPECT().Login(gomock.Any(), "c@d.com", "pw").
			Return("t2", entities.User{Email: "c@d.com", Name: "C"}, nil)

		_ = s.Login(context.Background(), "a@b.com", "pw")
		_ = s.Login(context.Background(), "c@d.com", "pw")

		token, user, ok := s.Credentials()
		if !ok || token != "t2" || user.Email != "c@d.com" {
			t.Fatalf("expected the later session, got token=%q user=%+v", token, user)
		}
	})
}

func TestAuthSession_SubscribersAndLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIAuthGateway(ctrl)
	s := NewAuthSession(gw)

	var seen []*entities.User
	s.Subscribe(func(u *entities.User) { seen = append(seen, u) })

	gw.EXPECT().Login(gomock.Any(), "a@b.com", "pw").
		Return("t1", entities.User{Email: "a@b.com", Name: "A"}, nil)
	if err := s.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 1 || seen[0] == nil || seen[0].Email != "a@b.com" {
		t.Fatalf("expected one identity notification, got %+v", seen)
	}

	s.Logout()
	if len(seen) != 2 || seen[1] != nil {
		t.Fatalf("expected a nil notification on logout, got %+v", seen)
	}
	if s.Authenticated() {
		t.Fatalf("session must be empty after logout")
	}
}
