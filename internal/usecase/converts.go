package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/factory"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

type ConvertFilter struct {
	Stage      string
	Search     string
	AssignedTo string
}

type CreateConvertInput struct {
	FirstName        string   `json:"first_name" validate:"required,max=100"`
	LastName         string   `json:"last_name" validate:"required,max=100"`
	Phone            string   `json:"phone" validate:"required,numeric,len=11"`
	Email            string   `json:"email" validate:"omitempty,email"`
	Gender           string   `json:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth      string   `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address          string   `json:"address"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	Occupation       string   `json:"occupation"`
	Source           string   `json:"source" validate:"omitempty,oneof=service outreach programme partner referral walk_in phone_inquiry other"`
	Stage            string   `json:"stage" validate:"omitempty,oneof=new in_followup in_classes in_house_fellowship established handed_over inactive"`
	AssignedWorkerID string   `json:"assigned_worker_id"`
	Notes            string   `json:"notes"`
	Tags             []string `json:"tags"`
}

// UpdateConvertInput is a partial update: nil fields are left alone.
type UpdateConvertInput struct {
	FirstName        *string   `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName         *string   `json:"last_name" validate:"omitempty,min=1,max=100"`
	Phone            *string   `json:"phone" validate:"omitempty,numeric,len=11"`
	Email            *string   `json:"email" validate:"omitempty,email"`
	Address          *string   `json:"address"`
	City             *string   `json:"city"`
	State            *string   `json:"state"`
	Occupation       *string   `json:"occupation"`
	Stage            *string   `json:"stage" validate:"omitempty,oneof=new in_followup in_classes in_house_fellowship established handed_over inactive"`
	AssignedWorkerID *string   `json:"assigned_worker_id"`
	Notes            *string   `json:"notes"`
	Tags             *[]string `json:"tags"`
}

type ConvertUseCase struct {
	Store      DocumentStore
	Factory    *factory.Factory
	Email      EmailService
	Messages   MessageSender
	ChurchName string
	Logger     logger.Logger
	Now        func() time.Time
}

// NewConvertUseCase leaves Email and Messages unset; callers attach the channels
// that are configured.
func NewConvertUseCase(store DocumentStore, f *factory.Factory, churchName string, log logger.Logger) *ConvertUseCase {
	return &ConvertUseCase{Store: store, Factory: f, ChurchName: churchName, Logger: log, Now: time.Now}
}

func (uc *ConvertUseCase) clientID() string { return uc.Factory.ClientID() }

func (uc *ConvertUseCase) now() time.Time {
	if uc.Now == nil {
		return time.Now()
	}
	return uc.Now()
}

func (uc *ConvertUseCase) List(ctx context.Context, f ConvertFilter) ([]entity.Convert, error) {
	filter := entity.ByClient(uc.clientID())
	if f.Stage != "" {
		filter = append(filter, entity.Eq("stage", f.Stage))
	}
	if f.AssignedTo != "" {
		filter = append(filter, entity.Eq("assigned_worker_id", f.AssignedTo))
	}

	converts, err := findAll[entity.Convert](ctx, uc.Store, entity.CollectionConverts, filter)
	if err != nil {
		return nil, storageFailure("failed to list converts", err)
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	if search == "" {
		return converts, nil
	}
	out := make([]entity.Convert, 0, len(converts))
	for _, c := range converts {
		if strings.Contains(strings.ToLower(c.FirstName), search) ||
			strings.Contains(strings.ToLower(c.LastName), search) ||
			strings.Contains(c.Phone, search) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (uc *ConvertUseCase) Get(ctx context.Context, id string) (*entity.Convert, error) {
	c, err := findOne[entity.Convert](ctx, uc.Store, entity.CollectionConverts, entity.ByClient(uc.clientID(), entity.Eq("id", id)))
	if errors.Is(err, entity.ErrRecordNotFound) {
		return nil, NewNotFound("convert")
	}
	if err != nil {
		return nil, storageFailure("failed to load convert", err)
	}
	return c, nil
}

// Create stores a hand-entered convert with its first health snapshot, then sends
// the welcome email and the day-1 message when those channels are configured.
func (uc *ConvertUseCase) Create(ctx context.Context, input CreateConvertInput, createdBy string) (*entity.Convert, error) {
	if errs := ValidateStruct(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	now := uc.now()
	c, err := entity.NewConvert(uc.clientID(), strings.TrimSpace(input.FirstName), strings.TrimSpace(input.LastName),
		entity.ConvertSource(input.Source), entity.ConvertStage(input.Stage), now)
	if err != nil {
		return nil, &DomainError{Code: CodeInvalidInput, Message: err.Error()}
	}
	c.Phone = input.Phone
	c.Email = entity.StringPtr(strings.ToLower(input.Email))
	c.Gender = input.Gender
	c.DateOfBirth = entity.StringPtr(input.DateOfBirth)
	c.Address = input.Address
	c.City = input.City
	c.State = input.State
	c.Occupation = input.Occupation
	c.SourceDate = entity.StringPtr(now.UTC().Format("2006-01-02"))
	c.AssignedWorkerID = entity.StringPtr(input.AssignedWorkerID)
	c.Notes = entity.StringPtr(input.Notes)
	if input.Tags != nil {
		c.Tags = input.Tags
	}
	c.CreatedBy = entity.StringPtr(createdBy)

	score := uc.Factory.InitialHealthScore(c.ID)
	c.HealthScore = entity.IntPtr(score.Score)

	if err := uc.Store.InsertMany(ctx, entity.CollectionConverts, []entity.Record{c}); err != nil {
		return nil, storageFailure("failed to save convert", err)
	}
	if err := uc.Store.InsertMany(ctx, entity.CollectionHealthScores, []entity.Record{score}); err != nil {
		return nil, storageFailure("failed to save health score", err)
	}

	uc.welcome(ctx, c)
	return c, nil
}

// welcome never fails the request: the convert is already stored.
func (uc *ConvertUseCase) welcome(ctx context.Context, c *entity.Convert) {
	log := uc.Logger.WithField("convert_id", c.ID)

	if uc.Email != nil && c.Email != nil {
		if err := uc.Email.SendWelcome(*c.Email, c.FullName(), uc.ChurchName); err != nil {
			log.WithField("error", err.Error()).Warn("failed to send welcome email")
		}
	}

	if uc.Messages != nil && c.Phone != "" {
		body, err := uc.dayOneMessage(ctx)
		if err != nil {
			log.WithField("error", err.Error()).Warn("failed to load welcome sequence")
			return
		}
		if body == "" {
			return
		}
		if err := uc.Messages.SendText(ctx, c.Phone, body); err != nil {
			log.WithField("error", err.Error()).Warn("failed to send welcome message")
		}
	}
}

func (uc *ConvertUseCase) dayOneMessage(ctx context.Context) (string, error) {
	seq, err := findOne[entity.Sequence](ctx, uc.Store, entity.CollectionSequenceDefinitions,
		entity.ByClient(uc.clientID(), entity.Eq("name", factory.WelcomeSequenceName)))
	if errors.Is(err, entity.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !seq.IsActive {
		return "", nil
	}
	for _, m := range seq.Messages {
		if m.Day == 1 && m.Channel == "sms" {
			return m.Content, nil
		}
	}
	return "", nil
}

func (uc *ConvertUseCase) Update(ctx context.Context, id string, input UpdateConvertInput) (*entity.Convert, error) {
	if errs := ValidateStruct(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	c, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	setString(&c.FirstName, input.FirstName)
	setString(&c.LastName, input.LastName)
	setString(&c.Phone, input.Phone)
	setString(&c.Address, input.Address)
	setString(&c.City, input.City)
	setString(&c.State, input.State)
	setString(&c.Occupation, input.Occupation)
	if input.Email != nil {
		c.Email = entity.StringPtr(strings.ToLower(*input.Email))
	}
	if input.AssignedWorkerID != nil {
		c.AssignedWorkerID = entity.StringPtr(*input.AssignedWorkerID)
	}
	if input.Notes != nil {
		c.Notes = entity.StringPtr(*input.Notes)
	}
	if input.Tags != nil {
		c.Tags = *input.Tags
	}
	if input.Stage != nil {
		c.MoveTo(entity.ConvertStage(*input.Stage), now)
	}
	c.Touch(now)

	if err := c.Validate(); err != nil {
		return nil, &DomainError{Code: CodeInvalidInput, Message: err.Error()}
	}
	if err := uc.Store.Upsert(ctx, entity.CollectionConverts, c); err != nil {
		return nil, storageFailure("failed to update convert", err)
	}
	return c, nil
}

// Delete is idempotent: deleting an unknown convert succeeds.
func (uc *ConvertUseCase) Delete(ctx context.Context, id string) error {
	err := uc.Store.DeleteOne(ctx, entity.CollectionConverts, id)
	if err != nil && !errors.Is(err, entity.ErrRecordNotFound) {
		return storageFailure("failed to delete convert", err)
	}
	return nil
}

func (uc *ConvertUseCase) ListServices(ctx context.Context) ([]entity.ServiceInstance, error) {
	services, err := findAll[entity.ServiceInstance](ctx, uc.Store, entity.CollectionServiceInstances, entity.ByClient(uc.clientID()))
	if err != nil {
		return nil, storageFailure("failed to list services", err)
	}
	return services, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
