package postgres

import (
	"context"
	"time"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(base BaseRepository) repository.PatientRepository {
	return &patientRepository{base}
}

var patientSource = source{"patients", "p"}

func patientColumns(prefix string) string {
	return personColumns(patientSource, prefix, visible("patients")...)
}

var patientFrom = `patients p ` + personJoins(patientSource)

var patientList = listSpec{
	resource: "patients",
	columns:  patientColumns(""),
	from:     patientFrom,
	search:   []string{userSource.column("fname"), userSource.column("lname"), userSource.column("mail")},
	sort:     newSortColumns(patientSource, userSource, addressSource),
}

func (r *patientRepository) List(ctx context.Context, q params.List) (_ []model.Patient, _ uint64, err error) {
	defer r.observe("patient.list", time.Now(), &err)
	return selectPage[model.Patient](ctx, &r.BaseRepository, patientList, q)
}

func (r *patientRepository) Get(ctx context.Context, id int64) (_ *model.Patient, err error) {
	defer r.observe("patient.get", time.Now(), &err)

	query := `SELECT ` + patientColumns("") + ` FROM ` + patientFrom + ` WHERE p."id" = $1`
	var patient model.Patient
	if err := r.get(ctx, "patient", &patient, query, id); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Create(ctx context.Context, userID, addressID int64) (id int64, err error) {
	defer r.observe("patient.create", time.Now(), &err)

	query := `INSERT INTO patients ("id_user", "id_address") VALUES ($1, $2) RETURNING "id"`
	return r.insert(ctx, "patient", query, userID, addressID)
}

func (r *patientRepository) Owned(ctx context.Context, id int64) (_ *model.Owned, err error) {
	defer r.observe("patient.owned", time.Now(), &err)

	query := `
		SELECT p."id_user", p."id_address", z."id_center"
		FROM patients p
		JOIN addresses a ON a."id" = p."id_address"
		JOIN zones z ON z."id" = a."id_zone"
		WHERE p."id" = $1
	`
	var owned model.Owned
	if err := r.get(ctx, "patient", &owned, query, id); err != nil {
		return nil, err
	}
	return &owned, nil
}

func (r *patientRepository) Delete(ctx context.Context, id int64) (_ *model.Owned, err error) {
	defer r.observe("patient.delete", time.Now(), &err)

	query := `DELETE FROM patients WHERE "id" = $1 RETURNING "id_user", "id_address"`
	var owned model.Owned
	if err := r.get(ctx, "patient", &owned, query, id); err != nil {
		return nil, err
	}
	return &owned, nil
}
