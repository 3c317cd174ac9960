package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/stackslice/stackslice/internal/models"
)

// SiteStats returns the current row count of every entity type for one
// site. Entity types with no rows (including never-imported ones) report
// zero.
func (s *ImportStore) SiteStats(ctx context.Context, site string) (map[string]int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	stats := make(map[string]int64, len(models.Entities))

	for _, spec := range models.Entities {
		var n int64
		if err := s.DB.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM "+spec.Table+" WHERE site = $1", site,
		).Scan(&n); err != nil {
			return nil, fmt.Errorf("counting %s rows for site %q: %w", spec.Entity, site, err)
		}

		stats[spec.Entity] = n
	}

	return stats, nil
}

// ListSites returns the distinct site identifiers present in any entity
// table, ordered. A site that was imported with only one dump file still
// appears.
func (s *ImportStore) ListSites(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	selects := make([]string, 0, len(models.Entities))
	for _, spec := range models.Entities {
		selects = append(selects, "SELECT site FROM "+spec.Table)
	}

	// UNION deduplicates across the per-table selects.
	query := strings.Join(selects, " UNION ") + " ORDER BY site"

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}
	defer rows.Close()

	var sites []string

	for rows.Next() {
		var site string
		if err := rows.Scan(&site); err != nil {
			return nil, fmt.Errorf("scanning site: %w", err)
		}

		sites = append(sites, site)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sites: %w", err)
	}

	return sites, nil
}
