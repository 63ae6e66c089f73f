package postgres

import (
	"context"
	"time"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type managerRepository struct {
	BaseRepository
}

func NewManagerRepository(base BaseRepository) repository.ManagerRepository {
	return &managerRepository{base}
}

var managerSource = source{"managers", "m"}

var managerColumns = projection(
	pick(managerSource, "", visible("managers")...),
	pick(userSource, "", "fname", "lname", "mail", "phone"),
)

var managerFrom = `managers m JOIN users u ON u."id" = m."id_user"`

var managerList = listSpec{
	resource: "managers",
	columns:  managerColumns,
	from:     managerFrom,
	search:   []string{userSource.column("fname"), userSource.column("lname"), userSource.column("mail")},
	sort:     newSortColumns(managerSource, userSource),
}

func (r *managerRepository) List(ctx context.Context, q params.List) (_ []model.Manager, _ uint64, err error) {
	defer r.observe("manager.list", time.Now(), &err)
	return selectPage[model.Manager](ctx, &r.BaseRepository, managerList, q)
}

func (r *managerRepository) Get(ctx context.Context, id int64) (_ *model.Manager, err error) {
	defer r.observe("manager.get", time.Now(), &err)

	query := `SELECT ` + managerColumns + ` FROM ` + managerFrom + ` WHERE m."id" = $1`
	var manager model.Manager
	if err := r.get(ctx, "manager", &manager, query, id); err != nil {
		return nil, err
	}
	return &manager, nil
}

func (r *managerRepository) Create(ctx context.Context, userID, centerID int64) (id int64, err error) {
	defer r.observe("manager.create", time.Now(), &err)

	query := `INSERT INTO managers ("id_user", "id_center") VALUES ($1, $2) RETURNING "id"`
	return r.insert(ctx, "manager", query, userID, centerID)
}

// Delete removes the manager. A manager owns its user but no address.
func (r *managerRepository) Delete(ctx context.Context, id int64) (_ *model.Owned, err error) {
	defer r.observe("manager.delete", time.Now(), &err)

	query := `DELETE FROM managers WHERE "id" = $1 RETURNING "id_user", "id_center"`
	var owned model.Owned
	if err := r.get(ctx, "manager", &owned, query, id); err != nil {
		return nil, err
	}
	return &owned, nil
}
