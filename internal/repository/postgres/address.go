package postgres

import (
	"context"
	"time"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
)

type addressRepository struct {
	BaseRepository
}

func NewAddressRepository(base BaseRepository) repository.AddressRepository {
	return &addressRepository{base}
}

func (r *addressRepository) Create(ctx context.Context, address *model.NewAddress) (id int64, err error) {
	defer r.observe("address.create", time.Now(), &err)

	query := `
		INSERT INTO addresses ("number", "street_name", "postcode", "city_name", "complement", "id_zone")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING "id"
	`
	return r.insert(ctx, "address", query,
		address.Number,
		address.StreetName,
		address.Postcode,
		address.CityName,
		address.Complement,
		address.IDZone,
	)
}

func (r *addressRepository) Update(ctx context.Context, id int64, update *model.UpdateAddress) (err error) {
	defer r.observe("address.update", time.Now(), &err)

	set := &setList{}
	setNullable(set, "number", update.Number)
	setIf(set, "street_name", update.StreetName)
	setIf(set, "postcode", update.Postcode)
	setIf(set, "city_name", update.CityName)
	setNullable(set, "complement", update.Complement)
	setIf(set, "id_zone", update.IDZone)
	return r.update(ctx, "addresses", "address", id, set)
}

func (r *addressRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.observe("address.delete", time.Now(), &err)
	return r.deleteByID(ctx, "addresses", "address", id)
}
