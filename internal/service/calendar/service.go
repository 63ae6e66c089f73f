// Package calendar exports the planning of a nurse as an iCalendar
// document.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/cache"
)

const productID = "-//homecare-api//planning//FR"

type CalendarServicer interface {
	ExportNurse(ctx context.Context, nurseID int64) ([]byte, error)
}

type Service struct {
	users  repository.UserRepository
	visits repository.VisitRepository
	cache  cache.Cache
	ttl    time.Duration
	now    func() time.Time
}

func NewService(users repository.UserRepository, visits repository.VisitRepository, c cache.Cache, ttl time.Duration) *Service {
	return &Service{
		users:  users,
		visits: visits,
		cache:  c,
		ttl:    ttl,
		now:    time.Now,
	}
}

func cacheKey(nurseID int64) string {
	return "ical:nurse:" + strconv.FormatInt(nurseID, 10)
}

// ExportNurse renders every visit assigned to the nurse. Rendered
// documents are served from the cache until the TTL elapses.
func (s *Service) ExportNurse(ctx context.Context, nurseID int64) ([]byte, error) {
	key := cacheKey(nurseID)
	if s.cache != nil {
		doc, err := s.cache.Get(ctx, key)
		if err == nil {
			return doc, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			log.Warn().Err(err).Str("key", key).Msg("calendar cache read failed")
		}
	}

	doc, err := s.render(ctx, nurseID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, doc, s.ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("calendar cache write failed")
		}
	}
	return doc, nil
}

func (s *Service) render(ctx context.Context, nurseID int64) ([]byte, error) {
	nurse, err := s.users.GetBySubject(ctx, auth.RoleNurse, nurseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get nurse: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	name := fmt.Sprintf("Planning de %s", fullName(nurse.UserInfo))
	cal.SetName(name)
	cal.SetXWRCalName(name)

	stamp := s.now().UTC()
	err = s.visits.EachForNurse(ctx, nurseID, func(v *model.Visit) error {
		event := cal.AddEvent(strconv.FormatInt(v.ID, 10))
		event.SetDtStampTime(stamp)
		event.SetStartAt(v.Start)
		event.SetEndAt(v.End)
		event.SetSummary(v.Mission.MissionType.Name)
		event.SetDescription(description(&v.Mission))
		event.SetLocation(v.Mission.Patient.Address.String())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	return []byte(cal.Serialize()), nil
}

func fullName(u model.UserInfo) string {
	return u.FirstName + " " + strings.ToUpper(u.LastName)
}

func description(m *model.Mission) string {
	desc := ""
	if m.Desc != nil {
		desc = *m.Desc
	}
	return fmt.Sprintf("Patient: %s\n\nDescription: %s\n\n", fullName(m.Patient.UserInfo), desc)
}
