package backend_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"chromaprint/internal/adapter/http/routes"
	"chromaprint/internal/domain/entities"
	"chromaprint/internal/infrastructure/backend"
	"chromaprint/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// TestStorefrontJourney drives the whole client core against the stub
// backend: browse, blocked cart add, estimate, blocked quote, login, quote,
// history.
func TestStorefrontJourney(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("DEMO_EMAIL", "demo@chromaprint.in")
	t.Setenv("DEMO_PASSWORD", "printer123")

	srv := httptest.NewServer(routes.NewRouter())
	defer srv.Close()

	ctx := context.Background()
	client := backend.New(srv.URL, srv.Client())

	session := usecase.NewAuthSession(client)
	prompts := 0
	gate := usecase.NewAuthGate(session, usecase.LoginPromptFunc(func() { prompts++ }))
	workflow := usecase.NewEstimateWorkflow(client, client, session, gate)
	cart := usecase.NewCartStore()
	gated := usecase.NewGatedCart(cart, gate)
	orders := usecase.NewAccountOrders(client)
	orders.FollowSession(session)

	// Browse the catalog.
	printers, err := client.ListPrinters(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, printers)

	// Cart add before login is dropped after one prompt.
	require.ErrorIs(t, gated.Add(printers[0]), usecase.ErrAuthRequired)
	require.Zero(t, cart.Len())
	require.Equal(t, 1, prompts)

	// Estimate with the default job parameters.
	require.NoError(t, workflow.RequestEstimate(ctx))
	snap := workflow.Snapshot()
	require.Equal(t, entities.PhaseReady, snap.Phase)
	require.NotNil(t, snap.Result)
	require.NotNil(t, snap.Result.Breakdown)
	require.Equal(t, 192.0, *snap.Result.Breakdown.VolumeCM3)
	require.Equal(t, 1.2, *snap.Result.Breakdown.MaterialRateINRPerCM3)
	require.Equal(t, 1.5, *snap.Result.Breakdown.MachineTimeHours)
	require.Equal(t, 1.0, *snap.Result.Breakdown.FinishMultiplier)
	estimatedCost := snap.Result.EstimatedCost
	require.Positive(t, estimatedCost)

	workflow.SetNotes("Matte finish preferred.")

	// Quote before login is a control signal, not a state change.
	require.ErrorIs(t, workflow.RequestQuote(ctx), usecase.ErrAuthRequired)
	require.Equal(t, 2, prompts)
	require.Equal(t, entities.PhaseReady, workflow.Snapshot().Phase)

	// Wrong credentials never say which field failed.
	err = session.Login(ctx, "demo@chromaprint.in", "wrong")
	require.ErrorIs(t, err, usecase.ErrLoginFailed)
	require.Empty(t, session.Token())

	require.NoError(t, session.Login(ctx, "demo@chromaprint.in", "printer123"))
	require.True(t, session.Authenticated())

	// Quote now goes through; the outcome sits beside the breakdown.
	require.NoError(t, workflow.RequestQuote(ctx))
	snap = workflow.Snapshot()
	require.Equal(t, entities.SubmissionSubmitted, snap.Submission)
	require.NotNil(t, snap.Result.Submission)
	require.True(t, snap.Result.Submission.OK)
	require.Equal(t, estimatedCost, snap.Result.EstimatedCost)
	require.NotNil(t, snap.Result.Breakdown)

	// The submission shows up in the account history.
	user, ok := session.User()
	require.True(t, ok)
	orders.Load(ctx, user.Email)
	history := orders.Orders()
	require.Len(t, history, 1)
	require.Equal(t, estimatedCost, history[0].Estimate.EstimatedCost)
	require.False(t, history[0].CreatedAt.IsZero())

	// Cart works after login.
	require.NoError(t, gated.Add(printers[0]))
	require.Equal(t, 1, cart.Len())
	require.Equal(t, 2, prompts)
}
