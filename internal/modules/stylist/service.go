package stylist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
)

// ErrNoOccasion is returned when advice is requested without an occasion.
var ErrNoOccasion = errors.New("stylist: occasion is required")

// The advisor degrades to friendly copy instead of failing the request: a
// missing key or a provider hiccup must never take the storefront down.
const (
	unavailableMessage = "The AI Style Advisor is currently unavailable. Please ensure the API key is configured."
	errorMessage       = "I'm sorry, I encountered an issue while generating advice. Please try again later."
)

// Service produces outfit advice for an occasion using the current catalog.
type Service interface {
	Advise(ctx context.Context, occasion string) (string, error)
}

type service struct {
	gateway  Gateway // nil when no API key is configured
	products catalog.Service
}

func NewService(gateway Gateway, products catalog.Service) Service {
	return &service{gateway: gateway, products: products}
}

func (s *service) Advise(ctx context.Context, occasion string) (string, error) {
	if strings.TrimSpace(occasion) == "" {
		return "", ErrNoOccasion
	}
	if s.gateway == nil {
		return unavailableMessage, nil
	}

	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return "", err
	}

	advice, err := s.gateway.Generate(ctx, buildPrompt(occasion, products))
	if err != nil {
		log.Printf("stylist: generating advice: %v", err)
		return errorMessage, nil
	}
	return advice, nil
}

func buildPrompt(occasion string, products []catalog.Product) string {
	var list strings.Builder
	for _, p := range products {
		fmt.Fprintf(&list, "- %s: %s (Price: $%.2f)\n", p.Name, p.Description, p.Price)
	}

	return fmt.Sprintf(`You are an expert fashion stylist for a clothing brand named 'Sanvi Creation'.
A customer is looking for an outfit for the following occasion: %q.

Based on the following available products, please recommend a complete outfit (e.g., top, bottom, outerwear).
Describe why the chosen items work well together for the occasion.
Be enthusiastic, helpful, and make sure to mention the product names exactly as they appear in the list.
If no suitable products are available, politely inform the customer.

Available Products:
%s
Your recommendation:`, occasion, list.String())
}
