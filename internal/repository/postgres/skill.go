package postgres

import (
	"context"
	"time"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type skillRepository struct {
	BaseRepository
}

func NewSkillRepository(base BaseRepository) repository.SkillRepository {
	return &skillRepository{base}
}

var skillSource = source{"skills", "s"}

var skillList = listSpec{
	resource: "skills",
	columns:  pick(skillSource, "", visible("skills")...),
	from:     `skills s`,
	search:   []string{skillSource.column("name")},
	sort:     newSortColumns(skillSource),
}

func (r *skillRepository) List(ctx context.Context, q params.List) (_ []model.Skill, _ uint64, err error) {
	defer r.observe("skill.list", time.Now(), &err)
	return selectPage[model.Skill](ctx, &r.BaseRepository, skillList, q)
}

func (r *skillRepository) Get(ctx context.Context, id int64) (_ *model.Skill, err error) {
	defer r.observe("skill.get", time.Now(), &err)

	var skill model.Skill
	if err := r.get(ctx, "skill", &skill, `SELECT "id", "name" FROM skills WHERE "id" = $1`, id); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) Create(ctx context.Context, skill *model.NewSkill) (id int64, err error) {
	defer r.observe("skill.create", time.Now(), &err)
	return r.insert(ctx, "skill", `INSERT INTO skills ("name") VALUES ($1) RETURNING "id"`, skill.Name)
}

func (r *skillRepository) Update(ctx context.Context, id int64, update *model.UpdateSkill) (err error) {
	defer r.observe("skill.update", time.Now(), &err)

	set := &setList{}
	set.add("name", update.Name)
	return r.update(ctx, "skills", "skill", id, set)
}

func (r *skillRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.observe("skill.delete", time.Now(), &err)
	return r.deleteByID(ctx, "skills", "skill", id)
}
