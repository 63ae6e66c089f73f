package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/cache"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

type stubUsers struct {
	repository.UserRepository
	nurses map[int64]model.User
}

func (r *stubUsers) GetBySubject(_ context.Context, role auth.Role, id int64) (*model.User, error) {
	u, ok := r.nurses[id]
	if !ok || role != auth.RoleNurse {
		return nil, apperrors.NewNotFound("user", nil)
	}
	return &u, nil
}

type stubVisits struct {
	repository.VisitRepository
	visits []model.Visit
	calls  int
}

func (r *stubVisits) EachForNurse(_ context.Context, _ int64, fn func(*model.Visit) error) error {
	r.calls++
	for i := range r.visits {
		if err := fn(&r.visits[i]); err != nil {
			return err
		}
	}
	return nil
}

func newTestService() (*Service, *stubVisits) {
	desc := "Morning insulin"
	number := int32(12)
	start := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)

	users := &stubUsers{nurses: map[int64]model.User{
		5: {ID: 50, UserInfo: model.UserInfo{FirstName: "Nina", LastName: "Dupont"}},
	}}
	visits := &stubVisits{visits: []model.Visit{{
		VisitRecord: model.VisitRecord{ID: 42, Start: start, End: start.Add(30 * time.Minute)},
		Mission: model.Mission{
			MissionRecord: model.MissionRecord{Desc: &desc},
			MissionType:   model.MissionType{Name: "Injection"},
			Patient: model.Patient{
				UserInfo: model.UserInfo{FirstName: "Paul", LastName: "Martin"},
				Address:  model.Address{Number: &number, StreetName: "rue Haute", Postcode: "75001", CityName: "Paris"},
			},
		},
	}}}

	return NewService(users, visits, cache.NewMemory(time.Minute, time.Minute, nil), time.Minute), visits
}

func TestExportNurse(t *testing.T) {
	svc, _ := newTestService()

	doc, err := svc.ExportNurse(context.Background(), 5)
	require.NoError(t, err)

	out := string(doc)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "Planning de Nina DUPONT")
	assert.Contains(t, out, "UID:42")
	assert.Contains(t, out, "SUMMARY:Injection")
	assert.Contains(t, out, "DESCRIPTION:Patient: Paul MARTIN")
	assert.Contains(t, out, "DTSTART:20240502T080000Z")
	assert.Contains(t, out, "DTEND:20240502T083000Z")
	assert.Contains(t, out, "LOCATION:12 rue Haute")
}

func TestExportNurseIsCached(t *testing.T) {
	svc, visits := newTestService()

	first, err := svc.ExportNurse(context.Background(), 5)
	require.NoError(t, err)
	second, err := svc.ExportNurse(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, visits.calls)
}

func TestExportUnknownNurse(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ExportNurse(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.NotFoundError)
}

func TestDescriptionWithoutMissionDesc(t *testing.T) {
	m := &model.Mission{Patient: model.Patient{UserInfo: model.UserInfo{FirstName: "Paul", LastName: "Martin"}}}
	assert.Equal(t, "Patient: Paul MARTIN\n\nDescription: \n\n", description(m))
}
