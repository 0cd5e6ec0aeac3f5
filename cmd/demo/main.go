package main

import (
	"context"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"chromaprint/internal/infrastructure/backend"
	"chromaprint/internal/usecase"
)

// The demo walks the full storefront journey against a running backend
// (cmd/stubserver by default): browse, estimate, hit the auth gate, log in,
// submit the quote, read back the order history.
//
// Supported env vars: BACKEND_URL, DEMO_EMAIL, DEMO_PASSWORD.
func main() {
	ctx := context.Background()
	client := backend.NewFromEnv()

	session := usecase.NewAuthSession(client)
	gate := usecase.NewAuthGate(session, usecase.LoginPromptFunc(func() {
		log.Printf("[demo] login required, opening the auth prompt")
	}))
	workflow := usecase.NewEstimateWorkflow(client, client, session, gate)
	cart := usecase.NewGatedCart(usecase.NewCartStore(), gate)
	orders := usecase.NewAccountOrders(client)
	orders.FollowSession(session)

	printers, err := client.ListPrinters(ctx)
	if err != nil {
		log.Printf("[demo] catalog unavailable err=%v", err)
	}
	for _, p := range printers {
		log.Printf("[demo] printer title=%q brand=%s price_inr=%v", p.Title, p.Brand, p.PriceINR)
	}

	// Cart add before login is dropped after raising the prompt.
	if len(printers) > 0 {
		if err := cart.Add(printers[0]); err != nil {
			log.Printf("[demo] cart add blocked err=%v", err)
		}
	}

	if err := workflow.RequestEstimate(ctx); err != nil {
		log.Fatalf("[demo] estimate rejected: %v", err)
	}
	snap := workflow.Snapshot()
	log.Printf("[demo] estimate phase=%s", snap.Phase)
	if snap.Result != nil {
		log.Printf("[demo] estimated_cost=%v", snap.Result.EstimatedCost)
	}

	workflow.SetNotes("Matte finish preferred, Honey 30 tone reference.")

	// First submission attempt hits the auth gate.
	if err := workflow.RequestQuote(ctx); err != nil {
		log.Printf("[demo] quote blocked err=%v", err)
	}

	email := getenv("DEMO_EMAIL", "demo@chromaprint.in")
	password := getenv("DEMO_PASSWORD", "printer123")
	if err := session.Login(ctx, email, password); err != nil {
		log.Fatalf("[demo] login failed: %v", err)
	}

	if err := workflow.RequestQuote(ctx); err != nil {
		log.Fatalf("[demo] quote failed: %v", err)
	}
	snap = workflow.Snapshot()
	log.Printf("[demo] submission phase=%s", snap.Submission)
	if snap.Result != nil && snap.Result.Submission != nil {
		log.Printf("[demo] submission ok=%v message=%q", snap.Result.Submission.OK, snap.Result.Submission.Message)
	}

	// Orders were re-fetched on login; fetch once more to include the quote
	// submitted just now.
	if user, ok := session.User(); ok {
		orders.Load(ctx, user.Email)
	}
	for _, o := range orders.Orders() {
		log.Printf("[demo] order created_at=%s estimated_cost=%v", o.CreatedAt, o.Estimate.EstimatedCost)
	}

	if len(printers) > 0 {
		if err := cart.Add(printers[0]); err != nil {
			log.Fatalf("[demo] cart add failed after login: %v", err)
		}
		log.Printf("[demo] cart add ok")
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
