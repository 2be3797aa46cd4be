package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/factory"
	"github.com/xavierca1/evangelism-crm/internal/random"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

const DefaultBatchSize = 100

type SeedDemoInput struct {
	ClientID      string
	ChurchName    string
	AdminEmail    string
	AdminPassword string
	Converts      int
	Workers       int
	Services      int
	BatchSize     int
	// Seed 0 gives a different dataset every run.
	Seed int64
}

type SeedDemoOutput struct {
	ClientID string         `json:"client_id"`
	Stages   []string       `json:"stages"`
	Counts   map[string]int `json:"counts"`
	Duration time.Duration  `json:"duration_ns"`
}

// Total is the number of records written.
func (o *SeedDemoOutput) Total() int {
	n := 0
	for _, c := range o.Counts {
		n += c
	}
	return n
}

type SeedDemoUseCase struct {
	Store  SeedStore
	Hasher PasswordHasher
	Logger logger.Logger
	Now    func() time.Time
}

func NewSeedDemoUseCase(store SeedStore, hasher PasswordHasher, log logger.Logger) *SeedDemoUseCase {
	return &SeedDemoUseCase{
		Store:  store,
		Hasher: hasher,
		Logger: log,
		Now:    time.Now,
	}
}

// seedRun carries identifiers from one stage to the next.
type seedRun struct {
	input    SeedDemoInput
	factory  *factory.Factory
	users    []entity.User
	converts []entity.Convert
	services []entity.ServiceInstance
	agentID  string
	counts   map[string]int
}

// Execute seeds one tenant from scratch. An already seeded tenant is rejected;
// callers wanting fresh data go through the reset use case.
func (uc *SeedDemoUseCase) Execute(ctx context.Context, input SeedDemoInput) (*SeedDemoOutput, error) {
	if input.BatchSize == 0 {
		input.BatchSize = DefaultBatchSize
	}
	if errs := ValidateSeedInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: CodeInvalidSeedConfig, Message: ValidationErrors(errs).Error()}
	}
	input = normalizeSeedInput(input)

	existing, err := uc.Store.Count(ctx, entity.CollectionClients, entity.Where(entity.Eq("id", input.ClientID)))
	if err != nil && !errors.Is(err, entity.ErrCollectionNotFound) {
		return nil, storageFailure("failed to check existing demo data", err)
	}
	if existing > 0 {
		return nil, &DomainError{
			Code:    CodeAlreadySeeded,
			Message: fmt.Sprintf("client %s already has demo data; reset instead", input.ClientID),
		}
	}

	start := uc.now()
	run := &seedRun{
		input:   input,
		factory: factory.New(random.NewSource(input.Seed), input.ClientID, uc.now),
		counts:  make(map[string]int),
	}

	log := uc.Logger.WithField("client_id", input.ClientID)
	log.WithFields(map[string]interface{}{
		"converts": input.Converts,
		"workers":  input.Workers,
		"services": input.Services,
	}).Info("seeding demo data")

	p := NewPipeline(log)
	p.AddStage("create_client", uc.createClient(run))
	p.AddStage("create_users", uc.createUsers(run))
	p.AddStage("create_converts", uc.createConverts(run))
	p.AddStage("create_services", uc.createServices(run))
	p.AddStage("create_convert_lists", uc.insertStage(run, entity.CollectionConvertLists, func() ([]entity.Record, error) {
		return entity.Records(run.factory.ConvertLists(run.services)), nil
	}))
	p.AddStage("create_classes", uc.insertStage(run, entity.CollectionMembershipClasses, func() ([]entity.Record, error) {
		return entity.Records(run.factory.MembershipClasses()), nil
	}))
	p.AddStage("create_fellowships", uc.insertStage(run, entity.CollectionHouseFellowships, func() ([]entity.Record, error) {
		fellowships, err := run.factory.HouseFellowships()
		return entity.Records(fellowships), err
	}))
	p.AddStage("create_followups", uc.insertStage(run, entity.CollectionFollowupRecords, func() ([]entity.Record, error) {
		return entity.Records(run.factory.Followups(run.converts, run.users)), nil
	}))
	p.AddStage("create_health_scores", uc.insertStage(run, entity.CollectionHealthScores, func() ([]entity.Record, error) {
		return entity.Records(run.factory.HealthScores(run.converts)), nil
	}))
	p.AddStage("create_alerts", uc.createAlerts(run))
	p.AddStage("create_workflows", uc.insertStage(run, entity.CollectionWorkflowDefinitions, func() ([]entity.Record, error) {
		return entity.Records(run.factory.Workflows()), nil
	}))
	p.AddStage("create_sequences", uc.insertStage(run, entity.CollectionSequenceDefinitions, func() ([]entity.Record, error) {
		return entity.Records(run.factory.Sequences()), nil
	}))
	p.AddStage("create_playbooks", uc.insertStage(run, entity.CollectionPlaybooks, func() ([]entity.Record, error) {
		return entity.Records(run.factory.Playbooks()), nil
	}))
	p.AddStage("create_voice_agent", uc.insertStage(run, entity.CollectionVoiceAgents, func() ([]entity.Record, error) {
		agent := run.factory.VoiceAgent()
		run.agentID = agent.ID
		return []entity.Record{agent}, nil
	}))
	p.AddStage("create_call_scripts", uc.insertStage(run, entity.CollectionCallScripts, func() ([]entity.Record, error) {
		return entity.Records(run.factory.CallScripts()), nil
	}))
	p.AddStage("create_voice_calls", uc.createVoiceCalls(run))
	p.AddStage("write_metadata", uc.insertStage(run, entity.CollectionDemoMetadata, func() ([]entity.Record, error) {
		return []entity.Record{run.factory.Metadata(map[string]int{
			"users_count":    len(run.users),
			"converts_count": len(run.converts),
			"services_count": len(run.services),
		})}, nil
	}))

	stages, err := p.Execute(ctx)
	if err != nil {
		return nil, err
	}

	out := &SeedDemoOutput{
		ClientID: input.ClientID,
		Stages:   stages,
		Counts:   run.counts,
		Duration: uc.now().Sub(start),
	}
	log.WithFields(map[string]interface{}{
		"records":     out.Total(),
		"duration_ms": out.Duration.Milliseconds(),
	}).Info("demo data seeded")
	return out, nil
}

func (uc *SeedDemoUseCase) now() time.Time {
	if uc.Now == nil {
		return time.Now()
	}
	return uc.Now()
}

// insertBatches writes records in chunks of size.
func (uc *SeedDemoUseCase) insertBatches(ctx context.Context, run *seedRun, collection string, records []entity.Record) error {
	size := run.input.BatchSize
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		if err := uc.Store.InsertMany(ctx, collection, records[start:end]); err != nil {
			return fmt.Errorf("failed to insert %s: %w", collection, err)
		}
	}
	run.counts[collection] += len(records)
	uc.Logger.WithFields(map[string]interface{}{
		"collection": collection,
		"count":      len(records),
	}).Debug("records inserted")
	return nil
}

func (uc *SeedDemoUseCase) insertStage(run *seedRun, collection string, build func() ([]entity.Record, error)) func(context.Context) error {
	return func(ctx context.Context) error {
		records, err := build()
		if err != nil {
			return err
		}
		return uc.insertBatches(ctx, run, collection, records)
	}
}

func (uc *SeedDemoUseCase) createClient(run *seedRun) func(context.Context) error {
	return func(ctx context.Context) error {
		client := run.factory.Client(run.input.ChurchName)
		return uc.insertBatches(ctx, run, entity.CollectionClients, []entity.Record{client})
	}
}

func (uc *SeedDemoUseCase) createUsers(run *seedRun) func(context.Context) error {
	return func(ctx context.Context) error {
		hash, err := uc.Hasher.Hash(run.input.AdminPassword)
		if err != nil {
			return &TechnicalError{Code: CodeHashing, Message: "failed to hash demo password", Err: err}
		}

		users := append([]entity.User{run.factory.Admin(run.input.AdminEmail, hash)},
			run.factory.Workers(run.input.Workers, hash)...)
		if err := uc.insertBatches(ctx, run, entity.CollectionUsers, entity.Records(users)); err != nil {
			return err
		}
		run.users = users
		return nil
	}
}

// createConverts reads the converts back so later stages work from stored data.
func (uc *SeedDemoUseCase) createConverts(run *seedRun) func(context.Context) error {
	return func(ctx context.Context) error {
		converts := run.factory.Converts(run.input.Converts, run.users)
		if err := uc.insertBatches(ctx, run, entity.CollectionConverts, entity.Records(converts)); err != nil {
			return err
		}

		stored, err := findAll[entity.Convert](ctx, uc.Store, entity.CollectionConverts, entity.ByClient(run.input.ClientID))
		if err != nil {
			return fmt.Errorf("failed to read back converts: %w", err)
		}
		run.converts = stored
		return nil
	}
}

func (uc *SeedDemoUseCase) createServices(run *seedRun) func(context.Context) error {
	return func(ctx context.Context) error {
		services := run.factory.Services(run.input.Services, run.users)
		if err := uc.insertBatches(ctx, run, entity.CollectionServiceInstances, entity.Records(services)); err != nil {
			return err
		}
		run.services = services
		return nil
	}
}

// createAlerts queries the stored health scores, so it needs the previous stage's
// writes to be visible.
func (uc *SeedDemoUseCase) createAlerts(run *seedRun) func(context.Context) error {
	return func(ctx context.Context) error {
		filter := entity.ByClient(run.input.ClientID, entity.Lt("score", entity.AtRiskThreshold))
		low, err := findAll[entity.HealthScore](ctx, uc.Store, entity.CollectionHealthScores, filter)
		if err != nil {
			return fmt.Errorf("failed to read health scores: %w", err)
		}
		return uc.insertBatches(ctx, run, entity.CollectionAlerts, entity.Records(run.factory.Alerts(low, run.users)))
	}
}

func (uc *SeedDemoUseCase) createVoiceCalls(run *seedRun) func(context.Context) error {
	return func(ctx context.Context) error {
		calls, messages := run.factory.VoiceCalls(run.converts, run.agentID)
		if err := uc.insertBatches(ctx, run, entity.CollectionVoiceCalls, entity.Records(calls)); err != nil {
			return err
		}
		return uc.insertBatches(ctx, run, entity.CollectionConversations, entity.Records(messages))
	}
}
