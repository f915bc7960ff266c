package out

import (
	"context"
	"time"

	manuscriptdto "writingbuddy/internal/modules/manuscript/dto"
	manuscriptin "writingbuddy/internal/modules/manuscript/port/in"
	"writingbuddy/internal/modules/session/domain"
	sessionout "writingbuddy/internal/modules/session/port/out"
)

type ManuscriptAdapter struct {
	manuscript manuscriptin.Usecase
}

func NewManuscriptAdapter(manuscript manuscriptin.Usecase) sessionout.ManuscriptStore {
	return &ManuscriptAdapter{manuscript: manuscript}
}

func (a *ManuscriptAdapter) Destination(ctx context.Context, startedAt time.Time) (string, error) {
	return a.manuscript.Destination(ctx, manuscriptdto.DestinationInput{StartedAt: startedAt})
}

func (a *ManuscriptAdapter) Store(ctx context.Context, summary domain.Summary) (string, error) {
	out, err := a.manuscript.Save(ctx, manuscriptdto.SaveInput{
		Title:           summary.Title,
		Body:            summary.Body,
		StartedAt:       summary.StartedAt,
		FinishedAt:      summary.FinishedAt,
		Words:           summary.Words,
		ActiveSeconds:   int(summary.Active / time.Second),
		WordGoal:        summary.WordGoal,
		TimeGoalSeconds: int(summary.TimeGoal / time.Second),
		GoalsAchieved:   summary.GoalsAchieved,
		Resets:          summary.Resets,
	})
	if err != nil {
		return "", err
	}
	return out.Path, nil
}
