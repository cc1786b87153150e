package billing

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/albrtaraya/facturas-api/internal/domain/entity"
	"github.com/albrtaraya/facturas-api/internal/domain/repository"
)

// fetchMerged trae las facturas de cada cliente en paralelo (un fetch por
// cliente) y las une en el orden de selección. El motor de filtrado solo
// debe recibir colecciones ya materializadas y fusionadas; este es el
// único punto donde eso ocurre.
func fetchMerged(ctx context.Context, repo repository.InvoiceRepository, customerIDs []string) ([]*entity.Invoice, error) {
	results := make([][]*entity.Invoice, len(customerIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range customerIDs {
		i, id := i, id
		g.Go(func() error {
			list, err := repo.ListByCustomer(gctx, id)
			if err != nil {
				return err
			}
			results[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]*entity.Invoice, 0)
	for _, list := range results {
		merged = append(merged, list...)
	}
	return merged, nil
}

// dedupIDs elimina ids repetidos conservando la primera aparición. La URL
// puede traer duplicados (el códec no deduplica); la selección sí es única.
func dedupIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
