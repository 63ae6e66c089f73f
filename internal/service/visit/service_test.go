package visit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

type assignment struct{ visit, nurse int64 }

type stubVisits struct {
	repository.VisitRepository
	reports map[assignment]string
	failure error
}

func (r *stubVisits) AddNurse(_ context.Context, id, nurseID int64) error {
	if r.failure != nil {
		return r.failure
	}
	r.reports[assignment{id, nurseID}] = ""
	return nil
}

func (r *stubVisits) RemoveNurse(_ context.Context, id, nurseID int64) error {
	key := assignment{id, nurseID}
	if _, ok := r.reports[key]; !ok {
		return apperrors.NewNotFound("visit nurse", nil)
	}
	delete(r.reports, key)
	return nil
}

func (r *stubVisits) UpdateReport(_ context.Context, id, nurseID int64, report string) error {
	key := assignment{id, nurseID}
	if _, ok := r.reports[key]; !ok {
		return apperrors.NewNotFound("visit assignment", nil)
	}
	r.reports[key] = report
	return nil
}

func TestUpdateReport(t *testing.T) {
	repo := &stubVisits{reports: map[assignment]string{{visit: 3, nurse: 5}: ""}}
	svc := NewService(repo)
	nurse := &auth.Claims{SubjectID: 5, Role: auth.RoleNurse, CenterID: 1}
	text := "all good"

	require.NoError(t, svc.UpdateReport(context.Background(), nurse, 3, &model.UpdateReport{Report: &text}))
	assert.Equal(t, "all good", repo.reports[assignment{3, 5}])

	err := svc.UpdateReport(context.Background(), nurse, 4, &model.UpdateReport{Report: &text})
	assert.ErrorIs(t, err, apperrors.NotFoundError)

	manager := &auth.Claims{SubjectID: 5, Role: auth.RoleManager, CenterID: 1}
	err = svc.UpdateReport(context.Background(), manager, 3, &model.UpdateReport{Report: &text})
	assert.ErrorIs(t, err, apperrors.ForbiddenError)
}

func TestUpdateReportUsesCallerAsNurse(t *testing.T) {
	repo := &stubVisits{reports: map[assignment]string{{visit: 3, nurse: 5}: "", {visit: 3, nurse: 6}: ""}}
	svc := NewService(repo)
	text := "wound dressed"

	other := &auth.Claims{SubjectID: 6, Role: auth.RoleNurse, CenterID: 1}
	require.NoError(t, svc.UpdateReport(context.Background(), other, 3, &model.UpdateReport{Report: &text}))

	assert.Equal(t, "wound dressed", repo.reports[assignment{3, 6}])
	assert.Empty(t, repo.reports[assignment{3, 5}])

	err := svc.UpdateReport(context.Background(), nil, 3, &model.UpdateReport{Report: &text})
	assert.ErrorIs(t, err, apperrors.TokenNotProvidedError)
}

func TestAssignNurse(t *testing.T) {
	repo := &stubVisits{reports: map[assignment]string{}}
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.AddNurse(ctx, 3, 5))
	assert.Contains(t, repo.reports, assignment{3, 5})

	require.NoError(t, svc.RemoveNurse(ctx, 3, 5))
	assert.NotContains(t, repo.reports, assignment{3, 5})

	err := svc.RemoveNurse(ctx, 3, 5)
	require.ErrorIs(t, err, apperrors.NotFoundError)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "visit nurse not found", appErr.Message)

	repo.failure = apperrors.NewBadRequest("nurse already assigned", nil)
	assert.ErrorIs(t, svc.AddNurse(ctx, 3, 5), apperrors.BadRequestError)
}
