package usecase

import (
	"context"
	"time"

	"writingbuddy/internal/modules/manuscript/domain"
	"writingbuddy/internal/modules/manuscript/dto"
	manuscriptin "writingbuddy/internal/modules/manuscript/port/in"
	"writingbuddy/internal/modules/manuscript/service"
)

type Interactor struct {
	svc *service.ManuscriptService
}

func NewInteractor(svc *service.ManuscriptService) manuscriptin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Destination(_ context.Context, input dto.DestinationInput) (string, error) {
	return i.svc.Destination(input.StartedAt)
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error) {
	record, n, err := i.svc.Save(ctx, domain.Entry{Title: input.Title, Body: input.Body}, domain.Record{
		StartedAt:     input.StartedAt,
		FinishedAt:    input.FinishedAt,
		Words:         input.Words,
		Active:        time.Duration(input.ActiveSeconds) * time.Second,
		WordGoal:      input.WordGoal,
		TimeGoal:      time.Duration(input.TimeGoalSeconds) * time.Second,
		GoalsAchieved: input.GoalsAchieved,
		Resets:        input.Resets,
	})
	if err != nil {
		return dto.SaveOutput{}, err
	}
	return dto.SaveOutput{Path: record.Path, Bytes: n, HistoryID: record.ID}, nil
}

func (i *Interactor) History(ctx context.Context, input dto.HistoryInput) ([]dto.HistoryOutput, error) {
	records, err := i.svc.History(ctx, input.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryOutput, 0, len(records))
	for _, r := range records {
		out = append(out, dto.HistoryOutput{
			ID:              r.ID,
			Title:           r.Title,
			Path:            r.Path,
			StartedAt:       r.StartedAt,
			FinishedAt:      r.FinishedAt,
			Words:           r.Words,
			ActiveSeconds:   int(r.Active / time.Second),
			WordGoal:        r.WordGoal,
			TimeGoalSeconds: int(r.TimeGoal / time.Second),
			GoalsAchieved:   r.GoalsAchieved,
			Resets:          r.Resets,
		})
	}
	return out, nil
}
