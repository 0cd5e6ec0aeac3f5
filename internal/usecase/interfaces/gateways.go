package interfaces

import (
	"context"

	"chromaprint/internal/domain/entities"
)

//go:generate mockgen -source=gateways.go -destination=mocks/mock_gateways.go -package=mock_interfaces

// ICatalogGateway fetches the printer catalog.
type ICatalogGateway interface {
	ListPrinters(ctx context.Context) ([]entities.Product, error)
}

// IEstimateGateway prices one custom print job.
//
// The pricing computation itself lives behind the backing service; the client
// only owns the request/response contract.
type IEstimateGateway interface {
	RequestEstimate(ctx context.Context, input entities.EstimateInput) (entities.EstimateResult, error)
}

// IQuoteGateway submits a held estimate as a formal quote request. The token
// is the session credential for the privileged call.
type IQuoteGateway interface {
	SubmitQuote(ctx context.Context, token string, submission entities.QuoteSubmission) (entities.QuoteOutcome, error)
}

// IAuthGateway exchanges credentials for a session token and identity.
type IAuthGateway interface {
	Login(ctx context.Context, email, password string) (string, entities.User, error)
}

// IAccountGateway fetches the order history for one account.
type IAccountGateway interface {
	ListOrders(ctx context.Context, email string) ([]entities.Order, error)
}
