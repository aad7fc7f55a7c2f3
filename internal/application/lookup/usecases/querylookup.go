package usecases

import (
	"context"
	"strings"

	"sanad/internal/domain/lookup"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/locale"
	"sanad/internal/shared/logger"
)

type QueryLookupQuery struct {
	SPName    string
	Parameter string
	Language  string
}

type QueryLookupExecutor interface {
	Execute(ctx context.Context, query QueryLookupQuery) ([]lookup.Entry, error)
}

// Cache is the read-through cache in front of the lookup table. A miss
// must be reported with an error the implementation documents; any other
// error is treated as a degraded cache and the database is queried.
type Cache interface {
	Get(ctx context.Context, q lookup.Query) ([]lookup.Entry, error)
	Set(ctx context.Context, q lookup.Query, entries []lookup.Entry) error
}

type QueryLookupUseCase struct {
	lookupRepo lookup.Repository
	cache      Cache
	logger     logger.Interface
}

func NewQueryLookupUseCase(
	lookupRepo lookup.Repository,
	cache Cache,
	logger logger.Interface,
) *QueryLookupUseCase {
	return &QueryLookupUseCase{
		lookupRepo: lookupRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *QueryLookupUseCase) Execute(
	ctx context.Context,
	query QueryLookupQuery,
) ([]lookup.Entry, error) {
	q := lookup.Query{
		SPName:    strings.TrimSpace(query.SPName),
		Parameter: strings.TrimSpace(query.Parameter),
		Language:  locale.Normalize(query.Language),
	}

	if err := q.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if uc.cache != nil {
		entries, err := uc.cache.Get(ctx, q)
		if err == nil {
			return entries, nil
		}
		// Cache failures never fail the request.
	}

	entries, err := uc.lookupRepo.Find(ctx, q)
	if err != nil {
		uc.logger.Errorw("failed to query lookup entries",
			"sp_name", q.SPName,
			"error", err)
		return nil, errors.NewInternalError("failed to query lookup entries")
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, q, entries); err != nil {
			uc.logger.Warnw("failed to cache lookup entries",
				"sp_name", q.SPName,
				"error", err)
		}
	}

	return entries, nil
}
