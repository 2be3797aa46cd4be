package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/factory"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

type VoiceAgentInput struct {
	Name             string `json:"name" validate:"required,max=100"`
	Language         string `json:"language" validate:"required"`
	VoiceType        string `json:"voice_type" validate:"required,oneof=male female"`
	GreetingTemplate string `json:"greeting_template" validate:"required"`
	ScriptTemplate   string `json:"script_template" validate:"required"`
	IsActive         bool   `json:"is_active"`
}

type CallScriptInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Content  string `json:"content" validate:"required"`
	Purpose  string `json:"purpose" validate:"required"`
	IsActive bool   `json:"is_active"`
}

type CallFilter struct {
	Status    string
	ConvertID string
}

type ScheduleCallInput struct {
	ConvertID     string     `json:"convert_id" validate:"required"`
	ScriptID      string     `json:"script_id"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	Notes         string     `json:"notes"`
}

type CompleteCallInput struct {
	Outcome         string `json:"outcome" validate:"required"`
	Notes           string `json:"notes"`
	Transcript      string `json:"transcript"`
	DurationSeconds int    `json:"duration_seconds" validate:"gte=0"`
}

type CallView struct {
	entity.VoiceCall
	ConvertName  string `json:"convert_name"`
	ConvertPhone string `json:"convert_phone"`
}

type CallDetail struct {
	entity.VoiceCall
	Conversation []entity.ConversationMessage `json:"conversation"`
}

type CallSummary struct {
	DurationMinutes float64 `json:"duration_minutes"`
	Outcome         string  `json:"outcome"`
	Sentiment       string  `json:"sentiment"`
}

type SimulationResult struct {
	Call         entity.VoiceCall             `json:"call"`
	Conversation []entity.ConversationMessage `json:"conversation"`
	Summary      CallSummary                  `json:"summary"`
}

// VoiceAgentUseCase drives the simulated calling agent. No real telephony is
// involved: calls are played from scripts.
type VoiceAgentUseCase struct {
	Store      DocumentStore
	Factory    *factory.Factory
	Dispatcher CallDispatcher
	Logger     logger.Logger
	Now        func() time.Time
}

func NewVoiceAgentUseCase(store DocumentStore, f *factory.Factory, dispatcher CallDispatcher, log logger.Logger) *VoiceAgentUseCase {
	return &VoiceAgentUseCase{Store: store, Factory: f, Dispatcher: dispatcher, Logger: log, Now: time.Now}
}

func (uc *VoiceAgentUseCase) clientID() string { return uc.Factory.ClientID() }

func (uc *VoiceAgentUseCase) now() time.Time {
	if uc.Now == nil {
		return time.Now().UTC()
	}
	return uc.Now().UTC()
}

// Config returns the stored agent, or the default one when none was saved yet.
func (uc *VoiceAgentUseCase) Config(ctx context.Context) (*entity.VoiceAgentConfig, error) {
	agent, err := findOne[entity.VoiceAgentConfig](ctx, uc.Store, entity.CollectionVoiceAgents, entity.ByClient(uc.clientID()))
	if errors.Is(err, entity.ErrRecordNotFound) {
		def := factory.DefaultVoiceAgent(uc.clientID(), uc.now())
		return &def, nil
	}
	if err != nil {
		return nil, storageFailure("failed to load voice agent", err)
	}
	return agent, nil
}

func (uc *VoiceAgentUseCase) UpdateConfig(ctx context.Context, input VoiceAgentInput) (*entity.VoiceAgentConfig, error) {
	if errs := ValidateStruct(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	agent, err := uc.Config(ctx)
	if err != nil {
		return nil, err
	}
	agent.Name = input.Name
	agent.Language = input.Language
	agent.VoiceType = input.VoiceType
	agent.GreetingTemplate = input.GreetingTemplate
	agent.ScriptTemplate = input.ScriptTemplate
	agent.IsActive = input.IsActive
	agent.Touch(uc.now())

	if err := uc.Store.Upsert(ctx, entity.CollectionVoiceAgents, agent); err != nil {
		return nil, storageFailure("failed to save voice agent", err)
	}
	return agent, nil
}

func (uc *VoiceAgentUseCase) ListScripts(ctx context.Context) ([]entity.CallScript, error) {
	scripts, err := findAll[entity.CallScript](ctx, uc.Store, entity.CollectionCallScripts, entity.ByClient(uc.clientID()))
	if err != nil {
		return nil, storageFailure("failed to list call scripts", err)
	}
	return scripts, nil
}

func (uc *VoiceAgentUseCase) CreateScript(ctx context.Context, input CallScriptInput) (*entity.CallScript, error) {
	if errs := ValidateStruct(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	script := &entity.CallScript{
		Base:     entity.NewBase(uc.clientID(), uc.now()),
		Name:     input.Name,
		Content:  input.Content,
		Purpose:  input.Purpose,
		IsActive: input.IsActive,
	}
	if err := uc.Store.InsertMany(ctx, entity.CollectionCallScripts, []entity.Record{script}); err != nil {
		return nil, storageFailure("failed to save call script", err)
	}
	return script, nil
}

func (uc *VoiceAgentUseCase) UpdateScript(ctx context.Context, id string, input CallScriptInput) (*entity.CallScript, error) {
	if errs := ValidateStruct(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	script, err := findOne[entity.CallScript](ctx, uc.Store, entity.CollectionCallScripts, entity.ByClient(uc.clientID(), entity.Eq("id", id)))
	if errors.Is(err, entity.ErrRecordNotFound) {
		return nil, NewNotFound("call script")
	}
	if err != nil {
		return nil, storageFailure("failed to load call script", err)
	}
	script.Name = input.Name
	script.Content = input.Content
	script.Purpose = input.Purpose
	script.IsActive = input.IsActive
	script.Touch(uc.now())

	if err := uc.Store.Upsert(ctx, entity.CollectionCallScripts, script); err != nil {
		return nil, storageFailure("failed to update call script", err)
	}
	return script, nil
}

func (uc *VoiceAgentUseCase) DeleteScript(ctx context.Context, id string) error {
	err := uc.Store.DeleteOne(ctx, entity.CollectionCallScripts, id)
	if errors.Is(err, entity.ErrRecordNotFound) {
		return NewNotFound("call script")
	}
	if err != nil {
		return storageFailure("failed to delete call script", err)
	}
	return nil
}

func (uc *VoiceAgentUseCase) ListCalls(ctx context.Context, f CallFilter) ([]CallView, error) {
	filter := entity.ByClient(uc.clientID())
	if f.Status != "" {
		filter = append(filter, entity.Eq("status", f.Status))
	}
	if f.ConvertID != "" {
		filter = append(filter, entity.Eq("convert_id", f.ConvertID))
	}
	calls, err := findAll[entity.VoiceCall](ctx, uc.Store, entity.CollectionVoiceCalls, filter)
	if err != nil {
		return nil, storageFailure("failed to list voice calls", err)
	}
	converts, err := convertIndex(ctx, uc.Store, uc.clientID())
	if err != nil {
		return nil, err
	}

	out := make([]CallView, len(calls))
	for i, call := range calls {
		out[i] = CallView{VoiceCall: call, ConvertName: "Unknown"}
		if c, ok := converts[call.ConvertID]; ok {
			out[i].ConvertName = c.FullName()
			out[i].ConvertPhone = c.Phone
		}
	}
	return out, nil
}

// GetCall returns the call with its conversation in speaking order.
func (uc *VoiceAgentUseCase) GetCall(ctx context.Context, id string) (*CallDetail, error) {
	call, err := uc.loadCall(ctx, id)
	if err != nil {
		return nil, err
	}
	messages, err := findAll[entity.ConversationMessage](ctx, uc.Store, entity.CollectionConversations,
		entity.ByClient(uc.clientID(), entity.Eq("call_id", id)))
	if err != nil {
		return nil, storageFailure("failed to load conversation", err)
	}
	sort.SliceStable(messages, func(i, j int) bool { return messages[i].Timestamp.Before(messages[j].Timestamp) })
	return &CallDetail{VoiceCall: *call, Conversation: messages}, nil
}

func (uc *VoiceAgentUseCase) ScheduleCall(ctx context.Context, input ScheduleCallInput) (*entity.VoiceCall, error) {
	if errs := ValidateStruct(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	if _, err := uc.loadConvert(ctx, input.ConvertID); err != nil {
		return nil, err
	}
	agent, err := uc.Config(ctx)
	if err != nil {
		return nil, err
	}

	scheduled := uc.now()
	if input.ScheduledTime != nil {
		scheduled = input.ScheduledTime.UTC()
	}
	call := &entity.VoiceCall{
		Base:          entity.NewBase(uc.clientID(), uc.now()),
		ConvertID:     input.ConvertID,
		AgentID:       entity.StringPtr(agent.ID),
		ScriptID:      entity.StringPtr(input.ScriptID),
		Status:        entity.CallScheduled,
		ScheduledTime: entity.TimePtr(scheduled),
		Notes:         entity.StringPtr(input.Notes),
	}
	if err := uc.Store.InsertMany(ctx, entity.CollectionVoiceCalls, []entity.Record{call}); err != nil {
		return nil, storageFailure("failed to save voice call", err)
	}
	return call, nil
}

func (uc *VoiceAgentUseCase) StartCall(ctx context.Context, id string) (*entity.VoiceCall, error) {
	call, err := uc.loadCall(ctx, id)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	call.Status = entity.CallInProgress
	call.StartedAt = entity.TimePtr(now)
	call.Touch(now)
	if err := uc.Store.Upsert(ctx, entity.CollectionVoiceCalls, call); err != nil {
		return nil, storageFailure("failed to update voice call", err)
	}
	return call, nil
}

// CompleteCall closes a call. An interested convert moves into follow-up.
func (uc *VoiceAgentUseCase) CompleteCall(ctx context.Context, id string, input CompleteCallInput) (*entity.VoiceCall, error) {
	if errs := ValidateStruct(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	call, err := uc.loadCall(ctx, id)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	call.Status = entity.CallCompleted
	call.EndedAt = entity.TimePtr(now)
	call.Outcome = entity.StringPtr(input.Outcome)
	if input.Notes != "" {
		call.Notes = entity.StringPtr(input.Notes)
	}
	if input.Transcript != "" {
		call.Transcript = entity.StringPtr(input.Transcript)
	}
	if input.DurationSeconds > 0 {
		call.DurationSeconds = entity.IntPtr(input.DurationSeconds)
	} else if call.StartedAt != nil {
		call.DurationSeconds = entity.IntPtr(int(now.Sub(*call.StartedAt).Seconds()))
	}
	call.Touch(now)

	if err := uc.Store.Upsert(ctx, entity.CollectionVoiceCalls, call); err != nil {
		return nil, storageFailure("failed to update voice call", err)
	}
	if input.Outcome == entity.OutcomeInterested {
		if err := uc.moveToFollowup(ctx, call.ConvertID); err != nil {
			return nil, err
		}
	}
	return call, nil
}

// Simulate plays the full scripted conversation on an existing call.
func (uc *VoiceAgentUseCase) Simulate(ctx context.Context, id string) (*SimulationResult, error) {
	call, err := uc.loadCall(ctx, id)
	if err != nil {
		return nil, err
	}

	firstName := ""
	if c, err := uc.loadConvert(ctx, call.ConvertID); err == nil {
		firstName = c.FirstName
	} else if !IsDomainError(err) {
		return nil, err
	}

	sim := uc.Factory.SimulateCall(call.ID, firstName)
	uc.applySimulation(call, sim, entity.OutcomeInterested)

	if err := uc.Store.Upsert(ctx, entity.CollectionVoiceCalls, call); err != nil {
		return nil, storageFailure("failed to update voice call", err)
	}
	if err := uc.Store.InsertMany(ctx, entity.CollectionConversations, entity.Records(sim.Messages)); err != nil {
		return nil, storageFailure("failed to save conversation", err)
	}

	return &SimulationResult{
		Call:         *call,
		Conversation: sim.Messages,
		Summary: CallSummary{
			DurationMinutes: round1(float64(sim.DurationSeconds) / 60),
			Outcome:         entity.OutcomeInterested,
			Sentiment:       "positive",
		},
	}, nil
}

// MakeCall schedules a call now and hands it to the dispatcher.
func (uc *VoiceAgentUseCase) MakeCall(ctx context.Context, convertID string) (*entity.VoiceCall, error) {
	call, err := uc.ScheduleCall(ctx, ScheduleCallInput{ConvertID: convertID})
	if err != nil {
		return nil, err
	}
	job := CallJob{CallID: call.ID, ConvertID: convertID, ClientID: uc.clientID()}
	if err := uc.Dispatcher.DispatchCall(ctx, job); err != nil {
		return nil, &TechnicalError{Code: CodeStorage, Message: "failed to dispatch voice call", Err: err}
	}
	uc.Logger.WithFields(map[string]interface{}{
		"call_id":    call.ID,
		"convert_id": convertID,
	}).Info("voice call dispatched")
	return call, nil
}

// RunCallJob places a dispatched call. It is what the queue worker runs.
func (uc *VoiceAgentUseCase) RunCallJob(ctx context.Context, job CallJob) error {
	call, err := uc.loadCall(ctx, job.CallID)
	if err != nil {
		return err
	}
	if call.Status == entity.CallCompleted {
		return nil
	}

	firstName := ""
	if c, err := uc.loadConvert(ctx, job.ConvertID); err == nil {
		firstName = c.FirstName
	} else if !IsDomainError(err) {
		return err
	}

	uc.applySimulation(call, uc.Factory.QuickCall(firstName), entity.OutcomeInterested)
	if err := uc.Store.Upsert(ctx, entity.CollectionVoiceCalls, call); err != nil {
		return storageFailure("failed to update voice call", err)
	}
	uc.Logger.WithField("call_id", call.ID).Info("voice call completed")
	return nil
}

func (uc *VoiceAgentUseCase) applySimulation(call *entity.VoiceCall, sim factory.Simulation, outcome string) {
	call.Status = entity.CallCompleted
	call.StartedAt = entity.TimePtr(sim.StartedAt)
	call.EndedAt = entity.TimePtr(sim.EndedAt)
	call.DurationSeconds = entity.IntPtr(sim.DurationSeconds)
	call.Transcript = entity.StringPtr(sim.Transcript)
	call.Outcome = entity.StringPtr(outcome)
	call.Touch(uc.now())
}

func (uc *VoiceAgentUseCase) moveToFollowup(ctx context.Context, convertID string) error {
	c, err := uc.loadConvert(ctx, convertID)
	if IsDomainError(err) {
		uc.Logger.WithField("convert_id", convertID).Warn("interested call for unknown convert")
		return nil
	}
	if err != nil {
		return err
	}
	now := uc.now()
	c.MoveTo(entity.StageInFollowup, now)
	c.Touch(now)
	if err := uc.Store.Upsert(ctx, entity.CollectionConverts, c); err != nil {
		return storageFailure("failed to update convert", err)
	}
	return nil
}

func (uc *VoiceAgentUseCase) loadCall(ctx context.Context, id string) (*entity.VoiceCall, error) {
	call, err := findOne[entity.VoiceCall](ctx, uc.Store, entity.CollectionVoiceCalls, entity.ByClient(uc.clientID(), entity.Eq("id", id)))
	if errors.Is(err, entity.ErrRecordNotFound) {
		return nil, NewNotFound("voice call")
	}
	if err != nil {
		return nil, storageFailure("failed to load voice call", err)
	}
	return call, nil
}

func (uc *VoiceAgentUseCase) loadConvert(ctx context.Context, id string) (*entity.Convert, error) {
	c, err := findOne[entity.Convert](ctx, uc.Store, entity.CollectionConverts, entity.ByClient(uc.clientID(), entity.Eq("id", id)))
	if errors.Is(err, entity.ErrRecordNotFound) {
		return nil, NewNotFound("convert")
	}
	if err != nil {
		return nil, storageFailure("failed to load convert", err)
	}
	return c, nil
}
