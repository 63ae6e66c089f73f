package postgres

import (
	"context"
	"time"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type missionRepository struct {
	BaseRepository
}

func NewMissionRepository(base BaseRepository) repository.MissionRepository {
	return &missionRepository{base}
}

var missionSource = source{"missions", "m"}

func missionColumns(prefix string) string {
	return projection(
		pick(missionSource, prefix, visible("missions")...),
		pick(missionTypeSource, nested(prefix, "mission_type"), visible("mission_types")...),
		patientColumns(nested(prefix, "patient")),
	)
}

// missionJoins joins the type and the patient of m.
var missionJoins = `JOIN mission_types mt ON mt."id" = m."id_mission_type"
		JOIN patients p ON p."id" = m."id_patient"
		` + personJoins(patientSource)

var missionFrom = `missions m ` + missionJoins

var missionList = listSpec{
	resource: "missions",
	columns:  missionColumns(""),
	from:     missionFrom,
	search:   []string{missionSource.column("desc"), missionTypeSource.column("name")},
	sort:     newSortColumns(missionSource, missionTypeSource, userSource, addressSource),
}

func (r *missionRepository) List(ctx context.Context, q params.List) (_ []model.Mission, _ uint64, err error) {
	defer r.observe("mission.list", time.Now(), &err)
	return selectPage[model.Mission](ctx, &r.BaseRepository, missionList, q)
}

func (r *missionRepository) Get(ctx context.Context, id int64) (_ *model.Mission, err error) {
	defer r.observe("mission.get", time.Now(), &err)

	query := `SELECT ` + missionColumns("") + ` FROM ` + missionFrom + ` WHERE m."id" = $1`
	var mission model.Mission
	if err := r.get(ctx, "mission", &mission, query, id); err != nil {
		return nil, err
	}
	return &mission, nil
}

func (r *missionRepository) Create(ctx context.Context, mission *model.NewMission) (id int64, err error) {
	defer r.observe("mission.create", time.Now(), &err)

	peopleRequired := int16(1)
	if mission.PeopleRequired != nil {
		peopleRequired = *mission.PeopleRequired
	}

	query := `
		INSERT INTO missions ("desc", "start", "end", "recurrence_days", "people_required", "id_mission_type", "id_patient")
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING "id"
	`
	return r.insert(ctx, "mission", query,
		mission.Desc,
		mission.Start,
		mission.End,
		mission.RecurrenceDays,
		peopleRequired,
		mission.IDMissionType,
		mission.IDPatient,
	)
}

func (r *missionRepository) Update(ctx context.Context, id int64, update *model.UpdateMission) (err error) {
	defer r.observe("mission.update", time.Now(), &err)

	set := &setList{}
	setNullable(set, "desc", update.Desc)
	setIf(set, "start", update.Start)
	setIf(set, "end", update.End)
	setNullable(set, "recurrence_days", update.RecurrenceDays)
	setIf(set, "people_required", update.PeopleRequired)
	setIf(set, "id_mission_type", update.IDMissionType)
	return r.update(ctx, "missions", "mission", id, set)
}

func (r *missionRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.observe("mission.delete", time.Now(), &err)
	return r.deleteByID(ctx, "missions", "mission", id)
}
