package seed

import (
	"context"
	"errors"
	"fmt"

	"product-catalog/internal/domain"
	productsvc "product-catalog/internal/service/product"
)

var products = []productsvc.CreateInput{
	{
		Name:        "Demo T-Shirt",
		Description: "Soft cotton tee for demo purposes",
		Price:       19.99,
		Category:    "apparel",
		Inventory:   25,
		SKU:         "SKU-DEMO-TSHIRT",
	},
	{
		Name:        "Demo Mug",
		Description: "Ceramic mug with demo logo",
		Price:       12.99,
		Category:    "kitchen",
		Inventory:   40,
		SKU:         "SKU-DEMO-MUG",
	},
	{
		Name:        "Demo Widget",
		Description: "A general-purpose widget",
		Price:       9.99,
		Category:    "tools",
		Inventory:   5,
		SKU:         "SKU-DEMO-WIDGET",
	},
}

// Apply inserts basic demo data for manual testing. It is idempotent: SKUs
// that already exist are skipped.
func Apply(ctx context.Context, svc *productsvc.Service) (int, error) {
	inserted := 0
	for _, p := range products {
		_, err := svc.Create(ctx, p)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("seed product %s: %w", p.SKU, err)
		}
		inserted++
	}
	return inserted, nil
}
