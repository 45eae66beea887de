package repository

import (
	"context"

	"portfolio/internal/database"
	"portfolio/internal/domain/portfolio"
)

const skillColumns = `id, name, proficiency, experience, sort_order`

func (s *Store) GetSkills(ctx context.Context) ([]portfolio.Skill, error) {
	rows, err := s.db.Query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.Skill, 0)
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSkill inserts in. Without an explicit order the skill goes after the
// current last one.
func (s *Store) CreateSkill(ctx context.Context, in portfolio.SkillInput) (portfolio.Skill, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO skills (name, proficiency, experience, sort_order)
		 VALUES ($1, $2, $3, COALESCE(CAST($4 AS INTEGER), (SELECT COALESCE(MAX(sort_order) + 1, 0) FROM skills)))
		 RETURNING `+skillColumns,
		in.Name, in.Proficiency, in.Experience, in.Order,
	)
	return scanSkill(row)
}

// UpdateSkill applies the present patch fields. A missing id is ErrNotFound.
func (s *Store) UpdateSkill(ctx context.Context, id int64, patch portfolio.SkillPatch) (portfolio.Skill, error) {
	var set setClause
	setIf(&set, "name", patch.Name)
	setIf(&set, "proficiency", patch.Proficiency)
	setIf(&set, "experience", patch.Experience)
	setIf(&set, "sort_order", patch.Order)

	if set.empty() {
		row := s.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
		sk, err := scanSkill(row)
		return sk, notFound(err)
	}

	q, args := set.update("skills", id, skillColumns)
	sk, err := scanSkill(s.db.QueryRow(ctx, q, args...))
	return sk, notFound(err)
}

// DeleteSkill is idempotent.
func (s *Store) DeleteSkill(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	return err
}

func (s *Store) ClearSkills(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DELETE FROM skills`)
	return err
}

func scanSkill(row database.Row) (portfolio.Skill, error) {
	var sk portfolio.Skill
	if err := row.Scan(&sk.ID, &sk.Name, &sk.Proficiency, &sk.Experience, &sk.Order); err != nil {
		return portfolio.Skill{}, err
	}
	return sk, nil
}
