package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

type userRepository struct {
	BaseRepository
}

func NewUserRepository(base BaseRepository) repository.UserRepository {
	return &userRepository{base}
}

var userColumns = pick(source{"users", "u"}, "", "id", "fname", "lname", "mail", "phone", "id_center")

// subjectTables maps a role to the table its subject ids live in.
var subjectTables = map[auth.Role]string{
	auth.RoleNurse:   "nurses",
	auth.RoleManager: "managers",
}

func (r *userRepository) Create(ctx context.Context, user *model.NewUser, passwordHash *string) (id int64, err error) {
	defer r.observe("user.create", time.Now(), &err)

	query := `
		INSERT INTO users ("fname", "lname", "mail", "phone", "password", "id_center")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING "id"
	`
	return r.insert(ctx, "user", query,
		user.FirstName,
		user.LastName,
		user.Mail,
		user.Phone,
		passwordHash,
		user.IDCenter,
	)
}

func (r *userRepository) Update(ctx context.Context, id int64, update *model.UpdateUser) (err error) {
	defer r.observe("user.update", time.Now(), &err)

	set := &setList{}
	setIf(set, "fname", update.FirstName)
	setIf(set, "lname", update.LastName)
	setIf(set, "mail", update.Mail)
	setIf(set, "phone", update.Phone)
	return r.update(ctx, "users", "user", id, set)
}

func (r *userRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.observe("user.delete", time.Now(), &err)
	return r.deleteByID(ctx, "users", "user", id)
}

// Authenticate lets the database verify the password against the stored
// crypt() hash. Users without a password can never log in.
func (r *userRepository) Authenticate(ctx context.Context, mail, password string) (_ *model.User, err error) {
	defer r.observe("user.authenticate", time.Now(), &err)

	query := `SELECT ` + userColumns + `
		FROM users u
		WHERE u."mail" = $1
			AND u."password" IS NOT NULL
			AND u."password" = crypt($2, u."password")
	`
	var user model.User
	if err := r.get(ctx, "user", &user, query, mail, password); err != nil {
		return nil, err
	}
	return &user, nil
}

type identityRow struct {
	SubjectID int64         `db:"subject_id"`
	IDCenter  int64         `db:"id_center"`
	IDZone    sql.NullInt64 `db:"id_zone"`
}

// Identity prefers the nurse attached to the user and falls back to the
// manager.
func (r *userRepository) Identity(ctx context.Context, userID int64) (_ *model.Identity, err error) {
	defer r.observe("user.identity", time.Now(), &err)

	nurseQuery := `
		SELECT n."id" AS subject_id, z."id_center", a."id_zone"
		FROM nurses n
		JOIN addresses a ON a."id" = n."id_address"
		JOIN zones z ON z."id" = a."id_zone"
		WHERE n."id_user" = $1
	`
	var row identityRow
	err = r.get(ctx, "nurse", &row, nurseQuery, userID)
	if err == nil {
		zone := row.IDZone.Int64
		return &model.Identity{SubjectID: row.SubjectID, Role: auth.RoleNurse, IDCenter: row.IDCenter, IDZone: &zone}, nil
	}
	if !errors.Is(err, apperrors.NotFoundError) {
		return nil, err
	}

	managerQuery := `
		SELECT m."id" AS subject_id, m."id_center", NULL::bigint AS id_zone
		FROM managers m
		WHERE m."id_user" = $1
	`
	if err := r.get(ctx, "manager", &row, managerQuery, userID); err != nil {
		return nil, err
	}
	return &model.Identity{SubjectID: row.SubjectID, Role: auth.RoleManager, IDCenter: row.IDCenter}, nil
}

func (r *userRepository) GetBySubject(ctx context.Context, role auth.Role, subjectID int64) (_ *model.User, err error) {
	defer r.observe("user.get_by_subject", time.Now(), &err)

	table, ok := subjectTables[role]
	if !ok {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	query := fmt.Sprintf(`SELECT %s
		FROM users u
		JOIN %s s ON s."id_user" = u."id"
		WHERE s."id" = $1
	`, userColumns, quote(table))

	var user model.User
	if err := r.get(ctx, "user", &user, query, subjectID); err != nil {
		return nil, err
	}
	return &user, nil
}
