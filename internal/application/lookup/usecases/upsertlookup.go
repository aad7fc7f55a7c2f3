package usecases

import (
	"context"

	"sanad/internal/domain/lookup"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/locale"
	"sanad/internal/shared/logger"
)

type UpsertLookupCommand struct {
	Entries []lookup.Entry
}

type UpsertLookupExecutor interface {
	Execute(ctx context.Context, cmd UpsertLookupCommand) error
}

// CacheInvalidator drops stale cached result sets after reference data
// changes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, spName string) error
}

type UpsertLookupUseCase struct {
	lookupRepo lookup.Repository
	cache      CacheInvalidator
	logger     logger.Interface
}

func NewUpsertLookupUseCase(
	lookupRepo lookup.Repository,
	cache CacheInvalidator,
	logger logger.Interface,
) *UpsertLookupUseCase {
	return &UpsertLookupUseCase{
		lookupRepo: lookupRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *UpsertLookupUseCase) Execute(ctx context.Context, cmd UpsertLookupCommand) error {
	if len(cmd.Entries) == 0 {
		return errors.NewValidationError("at least one lookup entry is required")
	}

	spNames := make(map[string]struct{})
	for i := range cmd.Entries {
		e := &cmd.Entries[i]
		if e.SPName == "" || e.Label == "" {
			return errors.NewValidationError("spName and label are required for every entry")
		}
		e.Language = locale.Normalize(e.Language)
		spNames[e.SPName] = struct{}{}
	}

	if err := uc.lookupRepo.Upsert(ctx, cmd.Entries); err != nil {
		uc.logger.Errorw("failed to upsert lookup entries", "error", err)
		return err
	}

	if uc.cache != nil {
		for spName := range spNames {
			if err := uc.cache.Invalidate(ctx, spName); err != nil {
				uc.logger.Warnw("failed to invalidate lookup cache",
					"sp_name", spName,
					"error", err)
			}
		}
	}

	return nil
}
