package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type visitRepository struct {
	BaseRepository
}

func NewVisitRepository(base BaseRepository) repository.VisitRepository {
	return &visitRepository{base}
}

var visitSource = source{"visits", "v"}

var visitColumns = projection(
	pick(visitSource, "", visible("visits")...),
	missionColumns("mission"),
)

var visitFrom = `visits v
		JOIN missions m ON m."id" = v."id_mission"
		` + missionJoins

var visitList = listSpec{
	resource: "visits",
	columns:  visitColumns,
	from:     visitFrom,
	sort:     newSortColumns(visitSource, missionSource, missionTypeSource, userSource, addressSource),
}

var reportSource = source{"l_visits_nurses", "vn"}

// reportList only keeps written reports.
var reportList = listSpec{
	resource: "reports",
	columns:  pick(reportSource, "", visible("l_visits_nurses")...),
	from:     `l_visits_nurses vn`,
	where:    []string{`vn."report" IS NOT NULL`, `vn."report" <> ''`},
	sort: sortColumns{
		pk:      reportSource.column("id_visit") + ", " + reportSource.column("id_nurse"),
		columns: map[string]string{},
	},
}

func (r *visitRepository) List(ctx context.Context, q params.List) (_ []model.Visit, _ uint64, err error) {
	defer r.observe("visit.list", time.Now(), &err)
	return selectPage[model.Visit](ctx, &r.BaseRepository, visitList, q)
}

func (r *visitRepository) Get(ctx context.Context, id int64) (_ *model.Visit, err error) {
	defer r.observe("visit.get", time.Now(), &err)

	query := `SELECT ` + visitColumns + ` FROM ` + visitFrom + ` WHERE v."id" = $1`
	var visit model.Visit
	if err := r.get(ctx, "visit", &visit, query, id); err != nil {
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) Create(ctx context.Context, visit *model.NewVisit) (id int64, err error) {
	defer r.observe("visit.create", time.Now(), &err)

	query := `INSERT INTO visits ("start", "end", "id_mission") VALUES ($1, $2, $3) RETURNING "id"`
	return r.insert(ctx, "visit", query, visit.Start, visit.End, visit.IDMission)
}

func (r *visitRepository) Update(ctx context.Context, id int64, update *model.UpdateVisit) (err error) {
	defer r.observe("visit.update", time.Now(), &err)

	set := &setList{}
	setIf(set, "start", update.Start)
	setIf(set, "end", update.End)
	return r.update(ctx, "visits", "visit", id, set)
}

func (r *visitRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.observe("visit.delete", time.Now(), &err)
	return r.deleteByID(ctx, "visits", "visit", id)
}

func (r *visitRepository) ListNurses(ctx context.Context, id int64, p params.Pagination) (_ []model.Nurse, _ uint64, err error) {
	defer r.observe("visit.list_nurses", time.Now(), &err)

	spec := nurseList
	spec.from = nurseFrom + ` JOIN l_visits_nurses vn ON vn."id_nurse" = n."id"`
	spec.where = []string{`vn."id_visit" = ?`}
	spec.args = []interface{}{id}
	return selectPage[model.Nurse](ctx, &r.BaseRepository, spec, pageOnly(p))
}

func (r *visitRepository) ListReports(ctx context.Context, id int64, p params.Pagination) (_ []model.Report, _ uint64, err error) {
	defer r.observe("visit.list_reports", time.Now(), &err)

	spec := reportList
	spec.where = append([]string{`vn."id_visit" = ?`}, reportList.where...)
	spec.args = []interface{}{id}
	return selectPage[model.Report](ctx, &r.BaseRepository, spec, pageOnly(p))
}

func (r *visitRepository) AddNurse(ctx context.Context, id, nurseID int64) (err error) {
	defer r.observe("visit.add_nurse", time.Now(), &err)

	query := `INSERT INTO l_visits_nurses ("id_visit", "id_nurse") VALUES ($1, $2)`
	return r.exec(ctx, "visit nurse", query, id, nurseID)
}

func (r *visitRepository) RemoveNurse(ctx context.Context, id, nurseID int64) (err error) {
	defer r.observe("visit.remove_nurse", time.Now(), &err)

	query := `DELETE FROM l_visits_nurses WHERE "id_visit" = $1 AND "id_nurse" = $2`
	return r.exec(ctx, "visit nurse", query, id, nurseID)
}

// UpdateReport writes the report of one nurse on one visit. The pair must
// already be assigned.
func (r *visitRepository) UpdateReport(ctx context.Context, id, nurseID int64, report string) (err error) {
	defer r.observe("visit.update_report", time.Now(), &err)

	query := `UPDATE l_visits_nurses SET "report" = $1 WHERE "id_visit" = $2 AND "id_nurse" = $3`
	return r.exec(ctx, "visit assignment", query, report, id, nurseID)
}

func (r *visitRepository) EachForNurse(ctx context.Context, nurseID int64, fn func(*model.Visit) error) (err error) {
	defer r.observe("visit.each_for_nurse", time.Now(), &err)

	query := `SELECT ` + visitColumns + ` FROM ` + visitFrom + `
		JOIN l_visits_nurses vn ON vn."id_visit" = v."id"
		WHERE vn."id_nurse" = $1
		ORDER BY v."start", v."id"`

	rows, err := r.conn(ctx).QueryxContext(ctx, query, nurseID)
	if err != nil {
		return fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var visit model.Visit
		if err := rows.StructScan(&visit); err != nil {
			return fmt.Errorf("failed to scan visit: %w", err)
		}
		if err := fn(&visit); err != nil {
			return err
		}
	}
	return rows.Err()
}
