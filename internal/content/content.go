// Package content loads the site's data (hero copy, projects, skills,
// resume entries, UI strings) from YAML files and serves it to the
// handlers. Content is read-mostly: a snapshot is swapped in atomically on
// reload so in-flight requests never see a half-loaded site.
package content

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Project is one entry in the portfolio grid.
type Project struct {
	Slug    string   `yaml:"slug"`
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
	RepoURL string   `yaml:"repo_url"`
	DemoURL string   `yaml:"demo_url"`
	Image   string   `yaml:"image"`
}

// Skill is one entry in the skills/features section.
type Skill struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
	Icon  string `yaml:"icon"`
}

// Experience is one job in the work history.
type Experience struct {
	Title   string   `yaml:"title"`
	Company string   `yaml:"company"`
	Start   string   `yaml:"start"`
	End     string   `yaml:"end"`
	Logo    string   `yaml:"logo"`
	Bullets []string `yaml:"bullets"`
}

// Education is one degree or program.
type Education struct {
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	Start       string   `yaml:"start"`
	End         string   `yaml:"end"`
	Logo        string   `yaml:"logo"`
	Bullets     []string `yaml:"bullets"`
}

// Certification is one professional certification.
type Certification struct {
	Name         string `yaml:"name"`
	Issuer       string `yaml:"issuer"`
	Issued       string `yaml:"issued"`
	Verification string `yaml:"verification"`
	Logo         string `yaml:"logo"`
}

// Hero is the headline block at the top of the page. Phrases feed the
// typewriter animation.
type Hero struct {
	Name    string   `yaml:"name"`
	Tagline string   `yaml:"tagline"`
	About   string   `yaml:"about"`
	Phrases []string `yaml:"phrases"`
}

// Site is one immutable snapshot of everything the templates render.
type Site struct {
	Hero           Hero              `yaml:"hero"`
	Strings        map[string]string `yaml:"strings"`
	Projects       []Project         `yaml:"projects"`
	Skills         []Skill           `yaml:"skills"`
	Experience     []Experience      `yaml:"experience"`
	Education      []Education       `yaml:"education"`
	Certifications []Certification   `yaml:"certifications"`
}

// files lists the YAML files merged into a Site snapshot, in load order.
// Missing files are allowed; malformed ones fail the load.
var files = []string{"site.yaml", "projects.yaml", "skills.yaml", "resume.yaml"}

// Load reads the content directory into a fresh Site snapshot.
func Load(dir string) (*Site, error) {
	site := &Site{Strings: map[string]string{}}

	for _, name := range files {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if err := yaml.Unmarshal(data, site); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	}

	if err := validate(site); err != nil {
		return nil, err
	}
	return site, nil
}

func validate(site *Site) error {
	seen := map[string]bool{}
	for _, p := range site.Projects {
		if p.Slug == "" {
			return fmt.Errorf("project %q has no slug", p.Title)
		}
		if seen[p.Slug] {
			return fmt.Errorf("duplicate project slug %q", p.Slug)
		}
		seen[p.Slug] = true
	}
	return nil
}
