// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/library/pkg/parallel"
)

// Count is one figure of the home page summary.
//
// A count that could not be fetched keeps its label and carries Err instead
// of a value.
type Count struct {
	Label string
	Value int64
	Err   error
}

// Summary lists the record counts shown on the home page.
type Summary struct {
	Counts []Count
}

// HasErrors reports whether any count failed.
func (summary Summary) HasErrors() bool {
	for _, count := range summary.Counts {
		if count.Err != nil {
			return true
		}
	}
	return false
}

/*
Summary counts the holdings of the catalog concurrently.

Description: Each count is independent. A failing count does not cancel the
others and is reported in place so the page still renders.
*/
func (service *Service) Summary(ctx context.Context) Summary {
	labels := []string{"Books", "Copies", "Copies available", "Authors", "Genres"}

	values, errs := parallel.Settle(ctx,
		service.repo.CountBooks,
		func(ctx context.Context) (int64, error) { return service.repo.CountBookInstances(ctx, "") },
		func(ctx context.Context) (int64, error) { return service.repo.CountBookInstances(ctx, StatusAvailable) },
		service.repo.CountAuthors,
		service.repo.CountGenres,
	)

	summary := Summary{Counts: make([]Count, len(labels))}
	for index, label := range labels {
		summary.Counts[index] = Count{Label: label, Value: values[index], Err: errs[index]}
		if errs[index] != nil {
			service.logger.Warn("catalog_count_failed",
				slog.String("count", label),
				slog.Any("error", errs[index]),
			)
		}
	}

	return summary
}
