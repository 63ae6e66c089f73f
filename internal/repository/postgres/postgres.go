package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/metrics"
)

// Repositories bundles every repository over one pool.
type Repositories struct {
	Tx           repository.Transactor
	Users        repository.UserRepository
	Addresses    repository.AddressRepository
	Skills       repository.SkillRepository
	Centers      repository.CenterRepository
	Zones        repository.ZoneRepository
	MissionTypes repository.MissionTypeRepository
	Missions     repository.MissionRepository
	Visits       repository.VisitRepository
	Nurses       repository.NurseRepository
	Managers     repository.ManagerRepository
	Patients     repository.PatientRepository
}

func NewRepositories(db *sqlx.DB, m *metrics.Metrics) *Repositories {
	base := NewBaseRepository(db, m)
	return &Repositories{
		Tx:           &base,
		Users:        NewUserRepository(base),
		Addresses:    NewAddressRepository(base),
		Skills:       NewSkillRepository(base),
		Centers:      NewCenterRepository(base),
		Zones:        NewZoneRepository(base),
		MissionTypes: NewMissionTypeRepository(base),
		Missions:     NewMissionRepository(base),
		Visits:       NewVisitRepository(base),
		Nurses:       NewNurseRepository(base),
		Managers:     NewManagerRepository(base),
		Patients:     NewPatientRepository(base),
	}
}
