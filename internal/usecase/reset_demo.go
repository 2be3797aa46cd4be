package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

type ResetDemoOutput struct {
	CollectionsCleared int             `json:"collections_cleared"`
	RecordsRemoved     int64           `json:"records_removed"`
	Seed               *SeedDemoOutput `json:"seed"`
	Timestamp          time.Time       `json:"timestamp"`
}

// ResetDemoUseCase wipes every known collection and seeds again. Only one reset
// runs at a time per process.
type ResetDemoUseCase struct {
	Store       SeedStore
	Seeder      *SeedDemoUseCase
	Logger      logger.Logger
	Collections []string

	mu sync.Mutex
}

func NewResetDemoUseCase(store SeedStore, seeder *SeedDemoUseCase, log logger.Logger) *ResetDemoUseCase {
	return &ResetDemoUseCase{
		Store:       store,
		Seeder:      seeder,
		Logger:      log,
		Collections: entity.DemoCollections,
	}
}

func (uc *ResetDemoUseCase) Execute(ctx context.Context, input SeedDemoInput) (*ResetDemoOutput, error) {
	if input.BatchSize == 0 {
		input.BatchSize = DefaultBatchSize
	}
	// reject bad configuration before anything is deleted
	if errs := ValidateSeedInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: CodeInvalidSeedConfig, Message: ValidationErrors(errs).Error()}
	}
	input = normalizeSeedInput(input)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	cleared, removed, err := uc.Clear(ctx)
	if err != nil {
		return nil, err
	}

	seeded, err := uc.Seeder.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	return &ResetDemoOutput{
		CollectionsCleared: cleared,
		RecordsRemoved:     removed,
		Seed:               seeded,
		Timestamp:          time.Now().UTC(),
	}, nil
}

// Clear deletes all documents of every known collection. A missing collection is
// skipped; any other failure stops the clear.
func (uc *ResetDemoUseCase) Clear(ctx context.Context) (int, int64, error) {
	cleared := 0
	var removed int64

	for _, collection := range uc.Collections {
		n, err := uc.Store.DeleteAll(ctx, collection)
		if errors.Is(err, entity.ErrCollectionNotFound) {
			uc.Logger.WithField("collection", collection).Warn("collection not found, skipping")
			continue
		}
		if err != nil {
			return cleared, removed, &TechnicalError{
				Code:    CodeClearFailed,
				Message: fmt.Sprintf("failed to clear %s", collection),
				Err:     err,
			}
		}
		cleared++
		removed += n
		uc.Logger.WithFields(map[string]interface{}{
			"collection": collection,
			"removed":    n,
		}).Debug("collection cleared")
	}

	uc.Logger.WithFields(map[string]interface{}{
		"collections": cleared,
		"removed":     removed,
	}).Info("demo data cleared")
	return cleared, removed, nil
}
