package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
)

type AlertFilter struct {
	Status   string
	Severity string
}

// AlertView is an alert with the convert's contact details attached.
type AlertView struct {
	entity.Alert
	ConvertName  string `json:"convert_name"`
	ConvertPhone string `json:"convert_phone"`
}

type AlertDetail struct {
	entity.Alert
	Convert *entity.Convert `json:"convert"`
}

type UpdateAlertInput struct {
	Status     *string `json:"status" validate:"omitempty,oneof=open acknowledged in_progress resolved"`
	AssignedTo *string `json:"assigned_to"`
	Notes      *string `json:"notes"`
}

type AlertUseCase struct {
	Store    DocumentStore
	ClientID string
	Now      func() time.Time
}

func NewAlertUseCase(store DocumentStore, clientID string) *AlertUseCase {
	return &AlertUseCase{Store: store, ClientID: clientID, Now: time.Now}
}

func (uc *AlertUseCase) List(ctx context.Context, f AlertFilter) ([]AlertView, error) {
	filter := entity.ByClient(uc.ClientID)
	if f.Status != "" {
		filter = append(filter, entity.Eq("status", f.Status))
	}
	if f.Severity != "" {
		filter = append(filter, entity.Eq("severity", f.Severity))
	}
	alerts, err := findAll[entity.Alert](ctx, uc.Store, entity.CollectionAlerts, filter)
	if err != nil {
		return nil, storageFailure("failed to list alerts", err)
	}

	converts, err := convertIndex(ctx, uc.Store, uc.ClientID)
	if err != nil {
		return nil, err
	}

	out := make([]AlertView, len(alerts))
	for i, a := range alerts {
		out[i] = AlertView{Alert: a, ConvertName: "Unknown"}
		if c, ok := converts[a.ConvertID]; ok {
			out[i].ConvertName = c.FullName()
			out[i].ConvertPhone = c.Phone
		}
	}
	return out, nil
}

func (uc *AlertUseCase) Get(ctx context.Context, id string) (*AlertDetail, error) {
	alert, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &AlertDetail{Alert: *alert}
	convert, err := findOne[entity.Convert](ctx, uc.Store, entity.CollectionConverts,
		entity.ByClient(uc.ClientID, entity.Eq("id", alert.ConvertID)))
	switch {
	case err == nil:
		detail.Convert = convert
	case !errors.Is(err, entity.ErrRecordNotFound):
		return nil, storageFailure("failed to load convert", err)
	}
	return detail, nil
}

func (uc *AlertUseCase) Update(ctx context.Context, id string, input UpdateAlertInput) (*entity.Alert, error) {
	if errs := ValidateStruct(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	alert, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Status != nil {
		alert.Status = entity.AlertStatus(*input.Status)
	}
	if input.AssignedTo != nil {
		alert.AssignedTo = entity.StringPtr(*input.AssignedTo)
	}
	if input.Notes != nil {
		alert.Notes = entity.StringPtr(*input.Notes)
	}
	alert.Touch(uc.now())

	if err := uc.Store.Upsert(ctx, entity.CollectionAlerts, alert); err != nil {
		return nil, storageFailure("failed to update alert", err)
	}
	return alert, nil
}

func (uc *AlertUseCase) load(ctx context.Context, id string) (*entity.Alert, error) {
	alert, err := findOne[entity.Alert](ctx, uc.Store, entity.CollectionAlerts, entity.ByClient(uc.ClientID, entity.Eq("id", id)))
	if errors.Is(err, entity.ErrRecordNotFound) {
		return nil, NewNotFound("alert")
	}
	if err != nil {
		return nil, storageFailure("failed to load alert", err)
	}
	return alert, nil
}

func (uc *AlertUseCase) now() time.Time {
	if uc.Now == nil {
		return time.Now()
	}
	return uc.Now()
}

// convertIndex loads the tenant's converts keyed by id, for enriching lists.
func convertIndex(ctx context.Context, store SeedStore, clientID string) (map[string]entity.Convert, error) {
	converts, err := findAll[entity.Convert](ctx, store, entity.CollectionConverts, entity.ByClient(clientID))
	if err != nil {
		return nil, storageFailure("failed to load converts", err)
	}
	index := make(map[string]entity.Convert, len(converts))
	for _, c := range converts {
		index[c.ID] = c
	}
	return index, nil
}
