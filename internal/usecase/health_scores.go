package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/factory"
)

type HealthScoreUseCase struct {
	Store   DocumentStore
	Factory *factory.Factory
	Now     func() time.Time
}

func NewHealthScoreUseCase(store DocumentStore, f *factory.Factory) *HealthScoreUseCase {
	return &HealthScoreUseCase{Store: store, Factory: f, Now: time.Now}
}

func (uc *HealthScoreUseCase) List(ctx context.Context) ([]entity.HealthScore, error) {
	scores, err := findAll[entity.HealthScore](ctx, uc.Store, entity.CollectionHealthScores, entity.ByClient(uc.Factory.ClientID()))
	if err != nil {
		return nil, storageFailure("failed to list health scores", err)
	}
	return scores, nil
}

func (uc *HealthScoreUseCase) GetByConvert(ctx context.Context, convertID string) (*entity.HealthScore, error) {
	score, err := findOne[entity.HealthScore](ctx, uc.Store, entity.CollectionHealthScores,
		entity.ByClient(uc.Factory.ClientID(), entity.Eq("convert_id", convertID)))
	if errors.Is(err, entity.ErrRecordNotFound) {
		return nil, NewNotFound("health score")
	}
	if err != nil {
		return nil, storageFailure("failed to load health score", err)
	}
	return score, nil
}

// Recalculate replaces the convert's snapshot and copies the new score onto the
// convert. The snapshot keeps its id so the convert has exactly one.
func (uc *HealthScoreUseCase) Recalculate(ctx context.Context, convertID string) (*entity.HealthScore, error) {
	convert, err := findOne[entity.Convert](ctx, uc.Store, entity.CollectionConverts,
		entity.ByClient(uc.Factory.ClientID(), entity.Eq("id", convertID)))
	if errors.Is(err, entity.ErrRecordNotFound) {
		return nil, NewNotFound("convert")
	}
	if err != nil {
		return nil, storageFailure("failed to load convert", err)
	}

	score := uc.Factory.RecalculatedHealthScore(convertID)
	previous, err := uc.GetByConvert(ctx, convertID)
	switch {
	case err == nil:
		score.ID = previous.ID
		score.CreatedAt = previous.CreatedAt
		score.IsDemo = previous.IsDemo
	case !IsDomainError(err):
		return nil, err
	}

	if err := uc.Store.Upsert(ctx, entity.CollectionHealthScores, score); err != nil {
		return nil, storageFailure("failed to save health score", err)
	}

	convert.HealthScore = entity.IntPtr(score.Score)
	convert.Touch(uc.now())
	if err := uc.Store.Upsert(ctx, entity.CollectionConverts, convert); err != nil {
		return nil, storageFailure("failed to update convert", err)
	}
	return &score, nil
}

func (uc *HealthScoreUseCase) now() time.Time {
	if uc.Now == nil {
		return time.Now()
	}
	return uc.Now()
}
