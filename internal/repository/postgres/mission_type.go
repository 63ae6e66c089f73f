package postgres

import (
	"context"
	"time"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type missionTypeRepository struct {
	BaseRepository
}

func NewMissionTypeRepository(base BaseRepository) repository.MissionTypeRepository {
	return &missionTypeRepository{base}
}

var missionTypeSource = source{"mission_types", "mt"}

var missionTypeColumns = pick(missionTypeSource, "", visible("mission_types")...)

var missionTypeList = listSpec{
	resource: "mission types",
	columns:  missionTypeColumns,
	from:     `mission_types mt`,
	search:   []string{missionTypeSource.column("name")},
	sort:     newSortColumns(missionTypeSource),
}

func (r *missionTypeRepository) List(ctx context.Context, q params.List) (_ []model.MissionType, _ uint64, err error) {
	defer r.observe("mission_type.list", time.Now(), &err)
	return selectPage[model.MissionType](ctx, &r.BaseRepository, missionTypeList, q)
}

func (r *missionTypeRepository) Get(ctx context.Context, id int64) (_ *model.MissionType, err error) {
	defer r.observe("mission_type.get", time.Now(), &err)

	query := `SELECT ` + missionTypeColumns + ` FROM mission_types mt WHERE mt."id" = $1`
	var missionType model.MissionType
	if err := r.get(ctx, "mission type", &missionType, query, id); err != nil {
		return nil, err
	}
	return &missionType, nil
}

func (r *missionTypeRepository) Create(ctx context.Context, missionType *model.NewMissionType) (id int64, err error) {
	defer r.observe("mission_type.create", time.Now(), &err)

	peopleRequired := int16(1)
	if missionType.PeopleRequired != nil {
		peopleRequired = *missionType.PeopleRequired
	}

	query := `
		INSERT INTO mission_types ("name", "people_required", "minutes_duration")
		VALUES ($1, $2, $3)
		RETURNING "id"
	`
	return r.insert(ctx, "mission type", query, missionType.Name, peopleRequired, missionType.MinutesDuration)
}

func (r *missionTypeRepository) Update(ctx context.Context, id int64, update *model.UpdateMissionType) (err error) {
	defer r.observe("mission_type.update", time.Now(), &err)

	set := &setList{}
	setIf(set, "name", update.Name)
	setIf(set, "people_required", update.PeopleRequired)
	setIf(set, "minutes_duration", update.MinutesDuration)
	return r.update(ctx, "mission_types", "mission type", id, set)
}

func (r *missionTypeRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.observe("mission_type.delete", time.Now(), &err)
	return r.deleteByID(ctx, "mission_types", "mission type", id)
}

func (r *missionTypeRepository) AddSkill(ctx context.Context, id, skillID int64) (err error) {
	defer r.observe("mission_type.add_skill", time.Now(), &err)

	query := `INSERT INTO l_missions_skills ("id_mission_type", "id_skill") VALUES ($1, $2)`
	return r.exec(ctx, "mission type skill", query, id, skillID)
}

func (r *missionTypeRepository) RemoveSkill(ctx context.Context, id, skillID int64) (err error) {
	defer r.observe("mission_type.remove_skill", time.Now(), &err)

	query := `DELETE FROM l_missions_skills WHERE "id_mission_type" = $1 AND "id_skill" = $2`
	return r.exec(ctx, "mission type skill", query, id, skillID)
}
