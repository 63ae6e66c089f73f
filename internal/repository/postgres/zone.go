package postgres

import (
	"context"
	"time"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
)

type zoneRepository struct {
	BaseRepository
}

func NewZoneRepository(base BaseRepository) repository.ZoneRepository {
	return &zoneRepository{base}
}

func (r *zoneRepository) Get(ctx context.Context, id int64) (_ *model.Zone, err error) {
	defer r.observe("zone.get", time.Now(), &err)

	var zone model.Zone
	query := `SELECT "id", "name", "id_center" FROM zones WHERE "id" = $1`
	if err := r.get(ctx, "zone", &zone, query, id); err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *zoneRepository) Create(ctx context.Context, centerID int64, zone *model.NewZone) (id int64, err error) {
	defer r.observe("zone.create", time.Now(), &err)

	query := `INSERT INTO zones ("name", "id_center") VALUES ($1, $2) RETURNING "id"`
	return r.insert(ctx, "zone", query, zone.Name, centerID)
}

func (r *zoneRepository) Update(ctx context.Context, id int64, update *model.UpdateZone) (err error) {
	defer r.observe("zone.update", time.Now(), &err)

	set := &setList{}
	setIf(set, "name", update.Name)
	return r.update(ctx, "zones", "zone", id, set)
}

func (r *zoneRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.observe("zone.delete", time.Now(), &err)
	return r.deleteByID(ctx, "zones", "zone", id)
}
