package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-devconnect-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, user_id, COALESCE(company, ''), COALESCE(website, ''),
	COALESCE(location, ''), COALESCE(bio, ''), COALESCE(status, ''),
	COALESCE(github_username, ''), skills, social, experience, education, created_at`

func (r *profileRepo) GetByOwner(ctx context.Context, userID string) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE user_id = $1`, profileColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE id = $1`, profileColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *profileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles ORDER BY created_at DESC`, profileColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// Upsert applies a normalized field set atomically: one statement, with
// COALESCE keeping every stored column whose input field is absent. This is
// what makes repeated partial updates safe under concurrency.
func (r *profileRepo) Upsert(ctx context.Context, fields *domain.ProfileFields) (*domain.Profile, error) {
	// jsonb parameters travel as text so they coerce cleanly on the wire
	var socialJSON *string
	if fields.Social != nil {
		b, err := json.Marshal(fields.Social)
		if err != nil {
			return nil, err
		}
		s := string(b)
		socialJSON = &s
	}

	var skills interface{}
	if fields.Skills != nil {
		skills = pq.Array(fields.Skills)
	}

	query := fmt.Sprintf(`
		INSERT INTO profiles (
			id, user_id, company, website, location, bio, status,
			github_username, skills, social, experience, education, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, '{}'::text[]), COALESCE($10, '{}'::jsonb), '[]'::jsonb, '[]'::jsonb, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			company         = COALESCE(EXCLUDED.company, profiles.company),
			website         = COALESCE(EXCLUDED.website, profiles.website),
			location        = COALESCE(EXCLUDED.location, profiles.location),
			bio             = COALESCE(EXCLUDED.bio, profiles.bio),
			status          = COALESCE(EXCLUDED.status, profiles.status),
			github_username = COALESCE(EXCLUDED.github_username, profiles.github_username),
			skills          = COALESCE($9, profiles.skills),
			social          = COALESCE($10, profiles.social)
		RETURNING %s`, profileColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.NewString(), fields.UserID,
		fields.Company, fields.Website, fields.Location, fields.Bio,
		fields.Status, fields.GithubUsername,
		skills, socialJSON,
	)
	return r.scanOne(row)
}

func (r *profileRepo) ReplaceExperience(ctx context.Context, userID string, entries []domain.Experience) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `UPDATE profiles SET experience = $2::jsonb WHERE user_id = $1`, userID, string(payload))
	return err
}

func (r *profileRepo) ReplaceEducation(ctx context.Context, userID string, entries []domain.Education) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `UPDATE profiles SET education = $2::jsonb WHERE user_id = $1`, userID, string(payload))
	return err
}

func (r *profileRepo) DeleteByOwner(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}

func (r *profileRepo) scanOne(row pgx.Row) (*domain.Profile, error) {
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var skills []string
	var socialJSON, experienceJSON, educationJSON []byte

	err := row.Scan(
		&p.ID, &p.UserID, &p.Company, &p.Website,
		&p.Location, &p.Bio, &p.Status,
		&p.GithubUsername, pq.Array(&skills), &socialJSON,
		&experienceJSON, &educationJSON, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Skills = skills
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if len(socialJSON) > 0 {
		if err := json.Unmarshal(socialJSON, &p.Social); err != nil {
			return nil, fmt.Errorf("decode social links: %w", err)
		}
	}
	p.Experience = []domain.Experience{}
	if len(experienceJSON) > 0 {
		if err := json.Unmarshal(experienceJSON, &p.Experience); err != nil {
			return nil, fmt.Errorf("decode experience: %w", err)
		}
	}
	p.Education = []domain.Education{}
	if len(educationJSON) > 0 {
		if err := json.Unmarshal(educationJSON, &p.Education); err != nil {
			return nil, fmt.Errorf("decode education: %w", err)
		}
	}
	return &p, nil
}
