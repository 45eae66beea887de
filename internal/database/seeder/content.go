package seeder

import (
	"bytes"
	"fmt"
	"os"

	"portfolio/internal/domain/portfolio"

	"gopkg.in/yaml.v3"
)

// Content is the seed document. Sections left out of a YAML file are not
// seeded.
type Content struct {
	Profile  *ProfileContent  `yaml:"profile"`
	Skills   []SkillContent   `yaml:"skills"`
	Projects []ProjectContent `yaml:"projects"`
}

type ProfileContent struct {
	Name             string `yaml:"name"`
	Role             string `yaml:"role"`
	MonthlyListeners string `yaml:"monthlyListeners"`
	Bio              string `yaml:"bio"`
	Education        string `yaml:"education"`
	GithubURL        string `yaml:"githubUrl"`
	LinkedinURL      string `yaml:"linkedinUrl"`
	AvatarURL        string `yaml:"avatarUrl"`
}

type SkillContent struct {
	Name        string `yaml:"name"`
	Proficiency string `yaml:"proficiency"`
	Experience  string `yaml:"experience"`
	Order       *int   `yaml:"order"`
}

type ProjectContent struct {
	Title    string  `yaml:"title"`
	Subtitle string  `yaml:"subtitle"`
	Gradient string  `yaml:"gradient"`
	ImageURL *string `yaml:"imageUrl"`
	Link     *string `yaml:"link"`
	Order    *int    `yaml:"order"`
}

func (p ProfileContent) Input() portfolio.ProfileInput {
	return portfolio.ProfileInput{
		Name:             p.Name,
		Role:             p.Role,
		MonthlyListeners: p.MonthlyListeners,
		Bio:              p.Bio,
		Education:        p.Education,
		GithubURL:        p.GithubURL,
		LinkedinURL:      p.LinkedinURL,
		AvatarURL:        p.AvatarURL,
	}
}

func (s SkillContent) Input() portfolio.SkillInput {
	return portfolio.SkillInput{Name: s.Name, Proficiency: s.Proficiency, Experience: s.Experience, Order: s.Order}
}

func (p ProjectContent) Input() portfolio.ProjectInput {
	return portfolio.ProjectInput{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Gradient: p.Gradient,
		ImageURL: p.ImageURL,
		Link:     p.Link,
		Order:    p.Order,
	}
}

// LoadContent reads a YAML seed document. Unknown keys are rejected so typos
// do not silently drop data.
func LoadContent(path string) (Content, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("read seed file: %w", err)
	}
	return ParseContent(b)
}

func ParseContent(b []byte) (Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		return Content{}, fmt.Errorf("parse seed file: %w", err)
	}
	return c, nil
}

func order(n int) *int { return &n }

func DefaultContent() Content {
	github := "https://github.com"
	return Content{
		Profile: &ProfileContent{
			Name:             "Alex Developer",
			Role:             "Full-Stack Developer",
			MonthlyListeners: "3,245,678",
			Bio:              "Passionate full-stack developer with 5+ years of experience building scalable web applications. Specialized in React, Node.js, and cloud architecture. Always learning, always coding.",
			Education:        "B.S. Computer Science, Stanford University",
			GithubURL:        "https://github.com",
			LinkedinURL:      "https://linkedin.com",
			AvatarURL:        "https://api.dicebear.com/7.x/avataaars/svg?seed=developer",
		},
		Skills: []SkillContent{
			{Name: "React.js", Proficiency: "Expert", Experience: "5 yrs", Order: order(0)},
			{Name: "TypeScript", Proficiency: "Expert", Experience: "4 yrs", Order: order(1)},
			{Name: "Node.js", Proficiency: "Advanced", Experience: "5 yrs", Order: order(2)},
			{Name: "Python", Proficiency: "Advanced", Experience: "4 yrs", Order: order(3)},
			{Name: "PostgreSQL", Proficiency: "Advanced", Experience: "3 yrs", Order: order(4)},
			{Name: "AWS/Cloud", Proficiency: "Intermediate", Experience: "3 yrs", Order: order(5)},
			{Name: "Docker/K8s", Proficiency: "Intermediate", Experience: "2 yrs", Order: order(6)},
			{Name: "GraphQL", Proficiency: "Advanced", Experience: "3 yrs", Order: order(7)},
		},
		Projects: []ProjectContent{
			{Title: "E-Commerce Platform", Subtitle: "React · Node.js · PostgreSQL · 2024", Gradient: "from-blue-600 to-blue-800", Link: &github, Order: order(0)},
			{Title: "Real-time Analytics Dashboard", Subtitle: "Next.js · WebSockets · Redis · 2024", Gradient: "from-purple-600 to-purple-800", Link: &github, Order: order(1)},
			{Title: "AI Content Generator", Subtitle: "Python · OpenAI · FastAPI · 2023", Gradient: "from-green-600 to-green-800", Link: &github, Order: order(2)},
			{Title: "Mobile Fitness Tracker", Subtitle: "React Native · Firebase · 2023", Gradient: "from-red-600 to-red-800", Link: &github, Order: order(3)},
			{Title: "SaaS Starter Kit", Subtitle: "Next.js · Stripe · Prisma · 2023", Gradient: "from-yellow-600 to-yellow-800", Link: &github, Order: order(4)},
			{Title: "DevOps Automation Tool", Subtitle: "Go · Docker · Kubernetes · 2022", Gradient: "from-indigo-600 to-indigo-800", Link: &github, Order: order(5)},
		},
	}
}
