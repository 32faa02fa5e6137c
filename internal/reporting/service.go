package reporting

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Summary is the admin dashboard view of recent quote volume.
type Summary struct {
	Quotes      int   `json:"quotes"`
	Approved    int   `json:"approved"`
	AvgTotal    int64 `json:"avg_total_minor"`
	MedianTotal int64 `json:"median_total_minor"`
}

type Service struct {
	db *pgxpool.Pool
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

// Compute aggregates totals across all persisted quotes. Medians
// come from the stored total_minor column, not a re-run of the
// engine, so historical quotes keep the price they were given.
func (s *Service) Compute(ctx context.Context) (*Summary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT total_minor, status
		FROM quotes
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []int64
	approved := 0

	for rows.Next() {
		var total int64
		var status string
		if err := rows.Scan(&total, &status); err != nil {
			return nil, err
		}
		totals = append(totals, total)
		if status == "APPROVED" {
			approved++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summary := &Summary{Quotes: len(totals), Approved: approved}
	if len(totals) == 0 {
		return summary, nil
	}

	sort.Slice(totals, func(i, j int) bool { return totals[i] < totals[j] })

	var sum int64
	for _, t := range totals {
		sum += t
	}

	summary.AvgTotal = sum / int64(len(totals))
	summary.MedianTotal = totals[len(totals)/2]

	return summary, nil
}
