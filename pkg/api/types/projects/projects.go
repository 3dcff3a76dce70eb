package projects

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/docstokg/docstokg-web/pkg/domain"
)

type Project struct {
	ProjectName string    `json:"projectName"`
	Description string    `json:"description"`
	IsFavorite  bool      `json:"isFavorite"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	Percentage  int       `json:"percentage"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ComposeProject(p domain.Project) Project {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return Project{
		ProjectName: p.Name,
		Description: p.Description,
		IsFavorite:  p.IsFavorite,
		Status:      string(p.Status),
		Tags:        tags,
		Percentage:  p.Percentage,
		CreatedAt:   p.CreatedAt,
	}
}

// ListResponse is the body of "GET /projects".
type ListResponse struct {
	Projects []Project `json:"projects"`
}

func ComposeList(ps []domain.Project) ListResponse {
	ret := make([]Project, len(ps))
	for i := range ps {
		ret[i] = ComposeProject(ps[i])
	}
	return ListResponse{Projects: ret}
}

// maximum length of project names, in characters.
const MaxNameLength = 255

var ErrInvalidName = errors.New("invalid project name")

// Create is the body of "POST /projects".
type Create struct {
	ProjectName string   `json:"projectName"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Validate checks the name. Surrounding spaces are not counted.
func (c Create) Validate() error {
	name := strings.TrimSpace(c.ProjectName)
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if n := utf8.RuneCountInString(name); MaxNameLength < n {
		return fmt.Errorf("%w: too long (%d characters)", ErrInvalidName, n)
	}
	return nil
}

func (c Create) ToDomain(userId int64) domain.NewProject {
	return domain.NewProject{
		Name:        strings.TrimSpace(c.ProjectName),
		UserId:      userId,
		Description: c.Description,
		Tags:        c.Tags,
	}
}
