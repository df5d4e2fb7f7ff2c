package models

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a client quote attached to a project case study.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// Project is a portfolio case study. Slug is unique and, when not supplied
// at creation, derived from Title. Field names follow the JSON contract of
// the deployed frontend.
type Project struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	Slug           string      `json:"slug"`
	Description    string      `json:"description"`
	Client         string      `json:"client"`
	Industry       string      `json:"industry"`
	Challenge      string      `json:"challenge"`
	Solution       string      `json:"solution"`
	Metric         string      `json:"metric"`
	ImageURL       string      `json:"imageUrl"`
	ChallengeImage string      `json:"challengeImage"`
	SolutionImage  string      `json:"solutionImage"`
	Logo           string      `json:"logo"`
	Summary        string      `json:"summary"`
	Overview       string      `json:"overview"`
	ProblemDetail  string      `json:"problemDetail"`
	Approach       string      `json:"approach"`
	Outcome        string      `json:"outcome"`
	Testimonial    Testimonial `json:"testimonial"`
	Tags           []string    `json:"tags"`
	LiveLink       string      `json:"liveLink"`
	RepoLink       string      `json:"repoLink"`
	Featured       bool        `json:"featured"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// CreateProjectRequest is the admin payload for a new project.
// Slug is optional; it is derived from Title when absent.
type CreateProjectRequest struct {
	Title          string      `json:"title" binding:"required"`
	Slug           string      `json:"slug"`
	Description    string      `json:"description"`
	Client         string      `json:"client"`
	Industry       string      `json:"industry"`
	Challenge      string      `json:"challenge"`
	Solution       string      `json:"solution"`
	Metric         string      `json:"metric"`
	ImageURL       string      `json:"imageUrl"`
	ChallengeImage string      `json:"challengeImage"`
	SolutionImage  string      `json:"solutionImage"`
	Logo           string      `json:"logo"`
	Summary        string      `json:"summary"`
	Overview       string      `json:"overview"`
	ProblemDetail  string      `json:"problemDetail"`
	Approach       string      `json:"approach"`
	Outcome        string      `json:"outcome"`
	Testimonial    Testimonial `json:"testimonial"`
	Tags           []string    `json:"tags"`
	LiveLink       string      `json:"liveLink"`
	RepoLink       string      `json:"repoLink"`
	Featured       bool        `json:"featured"`
}

// UpdateProjectRequest is the allow-list of mutable project fields.
// Nil pointers mean "leave unchanged"; fields outside this struct are
// dropped at bind time and never reach the store.
type UpdateProjectRequest struct {
	Title          *string      `json:"title"`
	Slug           *string      `json:"slug"`
	Description    *string      `json:"description"`
	Client         *string      `json:"client"`
	Industry       *string      `json:"industry"`
	Challenge      *string      `json:"challenge"`
	Solution       *string      `json:"solution"`
	Metric         *string      `json:"metric"`
	ImageURL       *string      `json:"imageUrl"`
	ChallengeImage *string      `json:"challengeImage"`
	SolutionImage  *string      `json:"solutionImage"`
	Logo           *string      `json:"logo"`
	Summary        *string      `json:"summary"`
	Overview       *string      `json:"overview"`
	ProblemDetail  *string      `json:"problemDetail"`
	Approach       *string      `json:"approach"`
	Outcome        *string      `json:"outcome"`
	Testimonial    *Testimonial `json:"testimonial"`
	Tags           *[]string    `json:"tags"`
	LiveLink       *string      `json:"liveLink"`
	RepoLink       *string      `json:"repoLink"`
	Featured       *bool        `json:"featured"`
}

// Project builds the full record from a create request, deriving the slug
// when one was not supplied.
func (r CreateProjectRequest) Project() Project {
	slug := r.Slug
	if slug == "" {
		slug = Slugify(r.Title)
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return Project{
		Title:          r.Title,
		Slug:           slug,
		Description:    r.Description,
		Client:         r.Client,
		Industry:       r.Industry,
		Challenge:      r.Challenge,
		Solution:       r.Solution,
		Metric:         r.Metric,
		ImageURL:       r.ImageURL,
		ChallengeImage: r.ChallengeImage,
		SolutionImage:  r.SolutionImage,
		Logo:           r.Logo,
		Summary:        r.Summary,
		Overview:       r.Overview,
		ProblemDetail:  r.ProblemDetail,
		Approach:       r.Approach,
		Outcome:        r.Outcome,
		Testimonial:    r.Testimonial,
		Tags:           tags,
		LiveLink:       r.LiveLink,
		RepoLink:       r.RepoLink,
		Featured:       r.Featured,
	}
}
