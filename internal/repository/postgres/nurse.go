package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type nurseRepository struct {
	BaseRepository
}

func NewNurseRepository(base BaseRepository) repository.NurseRepository {
	return &nurseRepository{base}
}

var nurseSource = source{"nurses", "n"}

var nurseColumns = personColumns(nurseSource, "", visible("nurses")...)

var nurseFrom = `nurses n ` + personJoins(nurseSource)

var nurseList = listSpec{
	resource: "nurses",
	columns:  nurseColumns,
	from:     nurseFrom,
	search:   []string{userSource.column("fname"), userSource.column("lname"), userSource.column("mail")},
	sort:     newSortColumns(nurseSource, userSource, addressSource),
}

var availabilitySource = source{"availabilities", "av"}

var availabilityList = listSpec{
	resource: "availabilities",
	columns:  pick(availabilitySource, "", visible("availabilities")...),
	from:     `availabilities av`,
	sort:     newSortColumns(availabilitySource),
}

func (r *nurseRepository) List(ctx context.Context, q params.List) (_ []model.Nurse, _ uint64, err error) {
	defer r.observe("nurse.list", time.Now(), &err)
	return selectPage[model.Nurse](ctx, &r.BaseRepository, nurseList, q)
}

func (r *nurseRepository) Get(ctx context.Context, id int64) (_ *model.Nurse, err error) {
	defer r.observe("nurse.get", time.Now(), &err)

	query := `SELECT ` + nurseColumns + ` FROM ` + nurseFrom + ` WHERE n."id" = $1`
	var nurse model.Nurse
	if err := r.get(ctx, "nurse", &nurse, query, id); err != nil {
		return nil, err
	}
	return &nurse, nil
}

type nurseSkillRow struct {
	IDNurse int64 `db:"id_nurse"`
	model.Skill
}

func (r *nurseRepository) Skills(ctx context.Context, ids ...int64) (_ map[int64][]model.Skill, err error) {
	defer r.observe("nurse.skills", time.Now(), &err)

	skills := make(map[int64][]model.Skill, len(ids))
	if len(ids) == 0 {
		return skills, nil
	}

	query, args, err := sqlx.In(`
		SELECT ns."id_nurse", s."id", s."name"
		FROM l_nurses_skills ns
		JOIN skills s ON s."id" = ns."id_skill"
		WHERE ns."id_nurse" IN (?)
		ORDER BY s."id"`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build skills query: %w", err)
	}

	var rows []nurseSkillRow
	if err := sqlx.SelectContext(ctx, r.conn(ctx), &rows, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		return nil, fmt.Errorf("failed to list nurse skills: %w", err)
	}
	for _, row := range rows {
		skills[row.IDNurse] = append(skills[row.IDNurse], row.Skill)
	}
	return skills, nil
}

func (r *nurseRepository) Create(ctx context.Context, minutesPerWeek int32, userID, addressID int64) (id int64, err error) {
	defer r.observe("nurse.create", time.Now(), &err)

	query := `
		INSERT INTO nurses ("minutes_per_week", "id_user", "id_address")
		VALUES ($1, $2, $3)
		RETURNING "id"
	`
	return r.insert(ctx, "nurse", query, minutesPerWeek, userID, addressID)
}

func (r *nurseRepository) Update(ctx context.Context, id int64, minutesPerWeek int32) (err error) {
	defer r.observe("nurse.update", time.Now(), &err)

	set := &setList{}
	set.add("minutes_per_week", minutesPerWeek)
	return r.update(ctx, "nurses", "nurse", id, set)
}

func (r *nurseRepository) Owned(ctx context.Context, id int64) (_ *model.Owned, err error) {
	defer r.observe("nurse.owned", time.Now(), &err)

	query := `
		SELECT n."id_user", n."id_address", z."id_center"
		FROM nurses n
		JOIN addresses a ON a."id" = n."id_address"
		JOIN zones z ON z."id" = a."id_zone"
		WHERE n."id" = $1
	`
	var owned model.Owned
	if err := r.get(ctx, "nurse", &owned, query, id); err != nil {
		return nil, err
	}
	return &owned, nil
}

func (r *nurseRepository) Delete(ctx context.Context, id int64) (_ *model.Owned, err error) {
	defer r.observe("nurse.delete", time.Now(), &err)

	query := `DELETE FROM nurses WHERE "id" = $1 RETURNING "id_user", "id_address"`
	var owned model.Owned
	if err := r.get(ctx, "nurse", &owned, query, id); err != nil {
		return nil, err
	}
	return &owned, nil
}

func (r *nurseRepository) AddSkill(ctx context.Context, id, skillID int64) (err error) {
	defer r.observe("nurse.add_skill", time.Now(), &err)

	query := `INSERT INTO l_nurses_skills ("id_nurse", "id_skill") VALUES ($1, $2)`
	return r.exec(ctx, "nurse skill", query, id, skillID)
}

func (r *nurseRepository) RemoveSkill(ctx context.Context, id, skillID int64) (err error) {
	defer r.observe("nurse.remove_skill", time.Now(), &err)

	query := `DELETE FROM l_nurses_skills WHERE "id_nurse" = $1 AND "id_skill" = $2`
	return r.exec(ctx, "nurse skill", query, id, skillID)
}

func (r *nurseRepository) ListAvailabilities(ctx context.Context, id int64, p params.Pagination) (_ []model.Availability, _ uint64, err error) {
	defer r.observe("nurse.list_availabilities", time.Now(), &err)

	spec := availabilityList
	spec.where = []string{`av."id_nurse" = ?`}
	spec.args = []interface{}{id}
	return selectPage[model.Availability](ctx, &r.BaseRepository, spec, pageOnly(p))
}

func (r *nurseRepository) ListReports(ctx context.Context, id int64, p params.Pagination) (_ []model.Report, _ uint64, err error) {
	defer r.observe("nurse.list_reports", time.Now(), &err)

	spec := reportList
	spec.where = append([]string{`vn."id_nurse" = ?`}, reportList.where...)
	spec.args = []interface{}{id}
	return selectPage[model.Report](ctx, &r.BaseRepository, spec, pageOnly(p))
}
