package stylist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanvicreation/boutique-backend/internal/kv"
	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
)

type fakeGateway struct {
	prompt string
	reply  string
	err    error
}

func (f *fakeGateway) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func newCatalog(t *testing.T) catalog.Service {
	t.Helper()
	svc := catalog.NewService(catalog.NewKVRepository(kv.NewMemory()))
	_, err := svc.CreateProduct(context.Background(), catalog.ProductRequest{
		Name:        "Leather Biker Jacket",
		Description: "A timeless piece.",
		Price:       250.00,
		Stock:       15,
	})
	require.NoError(t, err)
	return svc
}

func TestAdvisePromptIncludesOccasionAndCatalog(t *testing.T) {
	gw := &fakeGateway{reply: "Wear the jacket."}
	svc := NewService(gw, newCatalog(t))

	advice, err := svc.Advise(context.Background(), "a rock concert")
	require.NoError(t, err)
	assert.Equal(t, "Wear the jacket.", advice)

	assert.Contains(t, gw.prompt, "a rock concert")
	assert.Contains(t, gw.prompt, "Leather Biker Jacket")
	assert.Contains(t, gw.prompt, "$250.00")
	assert.Contains(t, gw.prompt, "Sanvi Creation")
}

func TestAdviseWithoutGateway(t *testing.T) {
	svc := NewService(nil, newCatalog(t))
	advice, err := svc.Advise(context.Background(), "a wedding")
	require.NoError(t, err)
	assert.Equal(t, unavailableMessage, advice)
}

func TestAdviseGatewayFailureDegrades(t *testing.T) {
	gw := &fakeGateway{err: errors.New("provider down")}
	svc := NewService(gw, newCatalog(t))

	advice, err := svc.Advise(context.Background(), "a wedding")
	require.NoError(t, err)
	assert.Equal(t, errorMessage, advice)
}

func TestAdviseRequiresOccasion(t *testing.T) {
	svc := NewService(&fakeGateway{}, newCatalog(t))
	_, err := svc.Advise(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNoOccasion)
}
