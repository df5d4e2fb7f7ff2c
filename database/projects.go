package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"vantage/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, title, slug, description, client, industry,
	challenge, solution, metric, image_url, challenge_image, solution_image,
	logo, summary, overview, problem_detail, approach, outcome,
	testimonial_quote, testimonial_author, testimonial_role, tags,
	live_link, repo_link, featured, created_at, updated_at`

func (db *DB) CreateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	query := fmt.Sprintf(`
		INSERT INTO projects (title, slug, description, client, industry,
			challenge, solution, metric, image_url, challenge_image,
			solution_image, logo, summary, overview, problem_detail,
			approach, outcome, testimonial_quote, testimonial_author,
			testimonial_role, tags, live_link, repo_link, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING %s
	`, projectColumns)

	created, err := scanProject(db.Pool.QueryRow(ctx, query,
		p.Title, p.Slug, p.Description, p.Client, p.Industry,
		p.Challenge, p.Solution, p.Metric, p.ImageURL, p.ChallengeImage,
		p.SolutionImage, p.Logo, p.Summary, p.Overview, p.ProblemDetail,
		p.Approach, p.Outcome, p.Testimonial.Quote, p.Testimonial.Author,
		p.Testimonial.Role, p.Tags, p.LiveLink, p.RepoLink, p.Featured,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("slug %q: %w", p.Slug, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Printf("Created project: %s (ID: %s)", created.Title, created.ID)
	return created, nil
}

func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM projects ORDER BY created_at DESC
	`, projectColumns)

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (db *DB) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)
	return db.getProject(ctx, query, projectID)
}

func (db *DB) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE slug = $1`, projectColumns)
	return db.getProject(ctx, query, slug)
}

func (db *DB) getProject(ctx context.Context, query string, key interface{}) (*models.Project, error) {
	project, err := scanProject(db.Pool.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// UpdateProject merges the allow-listed fields onto the stored record.
// Concurrent updates are last-write-wins; there is no version check.
func (db *DB) UpdateProject(ctx context.Context, projectID uuid.UUID, upd models.UpdateProjectRequest) (*models.Project, error) {
	ub := NewUpdateBuilder()
	setIf(ub, "title", upd.Title)
	setIf(ub, "slug", upd.Slug)
	setIf(ub, "description", upd.Description)
	setIf(ub, "client", upd.Client)
	setIf(ub, "industry", upd.Industry)
	setIf(ub, "challenge", upd.Challenge)
	setIf(ub, "solution", upd.Solution)
	setIf(ub, "metric", upd.Metric)
	setIf(ub, "image_url", upd.ImageURL)
	setIf(ub, "challenge_image", upd.ChallengeImage)
	setIf(ub, "solution_image", upd.SolutionImage)
	setIf(ub, "logo", upd.Logo)
	setIf(ub, "summary", upd.Summary)
	setIf(ub, "overview", upd.Overview)
	setIf(ub, "problem_detail", upd.ProblemDetail)
	setIf(ub, "approach", upd.Approach)
	setIf(ub, "outcome", upd.Outcome)
	setIf(ub, "live_link", upd.LiveLink)
	setIf(ub, "repo_link", upd.RepoLink)
	setIf(ub, "featured", upd.Featured)
	setIf(ub, "tags", upd.Tags)
	if upd.Testimonial != nil {
		ub.Set("testimonial_quote", upd.Testimonial.Quote)
		ub.Set("testimonial_author", upd.Testimonial.Author)
		ub.Set("testimonial_role", upd.Testimonial.Role)
	}

	if ub.Empty() {
		return db.GetProject(ctx, projectID)
	}

	query := fmt.Sprintf(`
		UPDATE projects %s WHERE id = $%d RETURNING %s
	`, ub.SetClause(), ub.NextArgNum(), projectColumns)
	args := append(ub.Args(), projectID)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("project slug: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

func (db *DB) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`

	result, err := db.Pool.Exec(ctx, query, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	log.Printf("Deleted project: %s", projectID)
	return nil
}

func scanProject(row rowScanner) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Description,
		&p.Client,
		&p.Industry,
		&p.Challenge,
		&p.Solution,
		&p.Metric,
		&p.ImageURL,
		&p.ChallengeImage,
		&p.SolutionImage,
		&p.Logo,
		&p.Summary,
		&p.Overview,
		&p.ProblemDetail,
		&p.Approach,
		&p.Outcome,
		&p.Testimonial.Quote,
		&p.Testimonial.Author,
		&p.Testimonial.Role,
		&p.Tags,
		&p.LiveLink,
		&p.RepoLink,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProjects(rows pgx.Rows) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}
