package postgres

import (
	"context"
	"time"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type centerRepository struct {
	BaseRepository
}

func NewCenterRepository(base BaseRepository) repository.CenterRepository {
	return &centerRepository{base}
}

var centerSource = source{"centers", "c"}

// Workday bounds are time columns, read back as HH:MM:SS text.
var centerColumns = projection(
	pick(centerSource, "", "id", "name", "desc"),
	`c."workday_start"::text AS "workday_start"`,
	`c."workday_end"::text AS "workday_end"`,
	pick(centerSource, "", "range_km", "id_address"),
)

var centerList = listSpec{
	resource: "centers",
	columns:  centerColumns,
	from:     `centers c`,
	search:   []string{centerSource.column("name"), centerSource.column("desc")},
	sort:     newSortColumns(centerSource),
}

var zoneSource = source{"zones", "z"}

var zoneList = listSpec{
	resource: "zones",
	columns:  pick(zoneSource, "", visible("zones")...),
	from:     `zones z`,
	sort:     newSortColumns(zoneSource),
}

func (r *centerRepository) List(ctx context.Context, q params.List) (_ []model.Center, _ uint64, err error) {
	defer r.observe("center.list", time.Now(), &err)
	return selectPage[model.Center](ctx, &r.BaseRepository, centerList, q)
}

func (r *centerRepository) Get(ctx context.Context, id int64) (_ *model.Center, err error) {
	defer r.observe("center.get", time.Now(), &err)

	query := `SELECT ` + centerColumns + ` FROM centers c WHERE c."id" = $1`
	var center model.Center
	if err := r.get(ctx, "center", &center, query, id); err != nil {
		return nil, err
	}
	return &center, nil
}

func (r *centerRepository) ListZones(ctx context.Context, id int64, p params.Pagination) (_ []model.Zone, _ uint64, err error) {
	defer r.observe("center.list_zones", time.Now(), &err)

	spec := zoneList
	spec.where = []string{`z."id_center" = ?`}
	spec.args = []interface{}{id}
	return selectPage[model.Zone](ctx, &r.BaseRepository, spec, pageOnly(p))
}
