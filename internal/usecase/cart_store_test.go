package usecase

import (
	"context"
	"errors"
	"testing"

	"chromaprint/internal/domain/entities"
	mock_interfaces "chromaprint/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCartStore_OrderAndDuplicates(t *testing.T) {
	cart := NewCartStore()
	a := entities.Product{Title: "Chroma One"}
	b := entities.Product{Title: "Chroma Studio XL"}

	cart.Add(a)
	cart.Add(b)
	cart.Add(a)

	items := cart.Items()
	if cart.Len() != 3 || len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", cart.Len())
	}
	if items[0].Title != "Chroma One" || items[1].Title != "Chroma Studio XL" || items[2].Title != "Chroma One" {
		t.Fatalf("insertion order not preserved: %+v", items)
	}
}

func TestGatedCart_Add(t *testing.T) {
	t.Run("without a session", func(t *testing.T) {
		session := NewAuthSession(nil)
		prompts := 0
		gate := NewAuthGate(session, LoginPromptFunc(func() { prompts++ }))
		cart := NewCartStore()
		gated := NewGatedCart(cart, gate)

		err := gated.Add(entities.Product{Title: "Chroma One"})
		if !errors.Is(err, ErrAuthRequired) {
			t.Fatalf("expected ErrAuthRequired, got %v", err)
		}
		if cart.Len() != 0 {
			t.Fatalf("cart must be untouched, got %d items", cart.Len())
		}
		if prompts != 1 {
			t.Fatalf("expected exactly one login prompt, got %d", prompts)
		}
	})

	t.Run("with a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAuthGateway(ctrl)
		session := NewAuthSession(gw)
		gw.EXPECT().Login(gomock.Any(), "a@b.com", "pw").
			Return("t1", entities.User{Email: "a@b.com", Name: "A"}, nil)
		if err := session.Login(context.Background(), "a@b.com", "pw"); err != nil {
			t.Fatalf("unexpected login error: %v", err)
		}

		prompts := 0
		gate := NewAuthGate(session, LoginPromptFunc(func() { prompts++ }))
		cart := NewCartStore()
		gated := NewGatedCart(cart, gate)

		if err := gated.Add(entities.Product{Title: "Chroma One"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.Len() != 1 {
			t.Fatalf("expected exactly one item, got %d", cart.Len())
		}
		if prompts != 0 {
			t.Fatalf("no prompt expected, got %d", prompts)
		}
	})
}
