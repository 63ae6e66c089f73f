package repository

import (
	"context"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

// All repository interfaces in one file
type (
	// Transactor runs fn inside one transaction. Repository calls made
	// with the context passed to fn join that transaction.
	Transactor interface {
		WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	}

	UserRepository interface {
		Create(ctx context.Context, user *model.NewUser, passwordHash *string) (int64, error)
		Update(ctx context.Context, id int64, update *model.UpdateUser) error
		Delete(ctx context.Context, id int64) error
		// Authenticate returns the user whose mail matches and whose stored
		// password hash verifies against password.
		Authenticate(ctx context.Context, mail, password string) (*model.User, error)
		// Identity resolves the nurse or manager attached to a user.
		Identity(ctx context.Context, userID int64) (*model.Identity, error)
		GetBySubject(ctx context.Context, role auth.Role, subjectID int64) (*model.User, error)
	}

	AddressRepository interface {
		Create(ctx context.Context, address *model.NewAddress) (int64, error)
		Update(ctx context.Context, id int64, update *model.UpdateAddress) error
		Delete(ctx context.Context, id int64) error
	}

	SkillRepository interface {
		List(ctx context.Context, q params.List) ([]model.Skill, uint64, error)
		Get(ctx context.Context, id int64) (*model.Skill, error)
		Create(ctx context.Context, skill *model.NewSkill) (int64, error)
		Update(ctx context.Context, id int64, update *model.UpdateSkill) error
		Delete(ctx context.Context, id int64) error
	}

	CenterRepository interface {
		List(ctx context.Context, q params.List) ([]model.Center, uint64, error)
		Get(ctx context.Context, id int64) (*model.Center, error)
		ListZones(ctx context.Context, id int64, p params.Pagination) ([]model.Zone, uint64, error)
	}

	ZoneRepository interface {
		Get(ctx context.Context, id int64) (*model.Zone, error)
		Create(ctx context.Context, centerID int64, zone *model.NewZone) (int64, error)
		Update(ctx context.Context, id int64, update *model.UpdateZone) error
		Delete(ctx context.Context, id int64) error
	}

	MissionTypeRepository interface {
		List(ctx context.Context, q params.List) ([]model.MissionType, uint64, error)
		Get(ctx context.Context, id int64) (*model.MissionType, error)
		Create(ctx context.Context, missionType *model.NewMissionType) (int64, error)
		Update(ctx context.Context, id int64, update *model.UpdateMissionType) error
		Delete(ctx context.Context, id int64) error
		AddSkill(ctx context.Context, id, skillID int64) error
		RemoveSkill(ctx context.Context, id, skillID int64) error
	}

	MissionRepository interface {
		List(ctx context.Context, q params.List) ([]model.Mission, uint64, error)
		Get(ctx context.Context, id int64) (*model.Mission, error)
		Create(ctx context.Context, mission *model.NewMission) (int64, error)
		Update(ctx context.Context, id int64, update *model.UpdateMission) error
		Delete(ctx context.Context, id int64) error
	}

	VisitRepository interface {
		List(ctx context.Context, q params.List) ([]model.Visit, uint64, error)
		Get(ctx context.Context, id int64) (*model.Visit, error)
		Create(ctx context.Context, visit *model.NewVisit) (int64, error)
		Update(ctx context.Context, id int64, update *model.UpdateVisit) error
		Delete(ctx context.Context, id int64) error
		ListNurses(ctx context.Context, id int64, p params.Pagination) ([]model.Nurse, uint64, error)
		ListReports(ctx context.Context, id int64, p params.Pagination) ([]model.Report, uint64, error)
		AddNurse(ctx context.Context, id, nurseID int64) error
		RemoveNurse(ctx context.Context, id, nurseID int64) error
		UpdateReport(ctx context.Context, id, nurseID int64, report string) error
		// EachForNurse streams the visits assigned to a nurse through a
		// forward-only cursor.
		EachForNurse(ctx context.Context, nurseID int64, fn func(*model.Visit) error) error
	}

	NurseRepository interface {
		List(ctx context.Context, q params.List) ([]model.Nurse, uint64, error)
		Get(ctx context.Context, id int64) (*model.Nurse, error)
		// Skills returns the skills of each given nurse, keyed by nurse id.
		Skills(ctx context.Context, ids ...int64) (map[int64][]model.Skill, error)
		Create(ctx context.Context, minutesPerWeek int32, userID, addressID int64) (int64, error)
		Update(ctx context.Context, id int64, minutesPerWeek int32) error
		// Delete removes the nurse and returns the rows it owned.
		Delete(ctx context.Context, id int64) (*model.Owned, error)
		Owned(ctx context.Context, id int64) (*model.Owned, error)
		AddSkill(ctx context.Context, id, skillID int64) error
		RemoveSkill(ctx context.Context, id, skillID int64) error
		ListAvailabilities(ctx context.Context, id int64, p params.Pagination) ([]model.Availability, uint64, error)
		ListReports(ctx context.Context, id int64, p params.Pagination) ([]model.Report, uint64, error)
	}

	ManagerRepository interface {
		List(ctx context.Context, q params.List) ([]model.Manager, uint64, error)
		Get(ctx context.Context, id int64) (*model.Manager, error)
		Create(ctx context.Context, userID, centerID int64) (int64, error)
		// Delete removes the manager and returns the rows it owned.
		Delete(ctx context.Context, id int64) (*model.Owned, error)
	}

	PatientRepository interface {
		List(ctx context.Context, q params.List) ([]model.Patient, uint64, error)
		Get(ctx context.Context, id int64) (*model.Patient, error)
		Create(ctx context.Context, userID, addressID int64) (int64, error)
		Delete(ctx context.Context, id int64) (*model.Owned, error)
		Owned(ctx context.Context, id int64) (*model.Owned, error)
	}
)
