package portfolio

import "time"

// ProfileID is the fixed key of the singleton profile row.
const ProfileID int64 = 1

type Profile struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	MonthlyListeners string    `json:"monthlyListeners"`
	Bio              string    `json:"bio"`
	Education        string    `json:"education"`
	GithubURL        string    `json:"githubUrl"`
	LinkedinURL      string    `json:"linkedinUrl"`
	AvatarURL        string    `json:"avatarUrl"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type Skill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
	Experience  string `json:"experience"`
	Order       int    `json:"order"`
}

type Project struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Gradient string  `json:"gradient"`
	ImageURL *string `json:"imageUrl"`
	Link     *string `json:"link"`
	Order    int     `json:"order"`
}

type BlogPost struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Subtitle      string    `json:"subtitle"`
	Content       string    `json:"content"`
	CoverGradient string    `json:"coverGradient"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ContactSubmission struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type PageView struct {
	ID        int64     `json:"id"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// PageViewFilter bounds a page view query. Zero values are open ends.
type PageViewFilter struct {
	From time.Time
	To   time.Time
}

type PathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

type PageViewStats struct {
	Total int64       `json:"total"`
	Paths []PathCount `json:"paths"`
}

// Insert shapes. Server-generated fields (id, timestamps) are absent.

type ProfileInput struct {
	Name             string
	Role             string
	MonthlyListeners string
	Bio              string
	Education        string
	GithubURL        string
	LinkedinURL      string
	AvatarURL        string
}

type SkillInput struct {
	Name        string
	Proficiency string
	Experience  string
	// Order nil appends the skill after the current last one.
	Order *int
}

type ProjectInput struct {
	Title    string
	Subtitle string
	Gradient string
	ImageURL *string
	Link     *string
	// Order nil appends the project after the current last one.
	Order *int
}

type BlogPostInput struct {
	Title         string
	Subtitle      string
	Content       string
	CoverGradient string
	Published     bool
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

type PageViewInput struct {
	Path string
}

// Patch shapes. A nil field is left untouched.

type SkillPatch struct {
	Name        *string
	Proficiency *string
	Experience  *string
	Order       *int
}

func (p SkillPatch) Empty() bool {
	return p.Name == nil && p.Proficiency == nil && p.Experience == nil && p.Order == nil
}

// ProjectPatch uses Nullable for the optional columns so a patch can clear them.
type ProjectPatch struct {
	Title    *string
	Subtitle *string
	Gradient *string
	ImageURL Nullable[string]
	Link     Nullable[string]
	Order    *int
}

func (p ProjectPatch) Empty() bool {
	return p.Title == nil && p.Subtitle == nil && p.Gradient == nil &&
		!p.ImageURL.Set && !p.Link.Set && p.Order == nil
}

type BlogPostPatch struct {
	Title         *string
	Subtitle      *string
	Content       *string
	CoverGradient *string
	Published     *bool
}

func (p BlogPostPatch) Empty() bool {
	return p.Title == nil && p.Subtitle == nil && p.Content == nil &&
		p.CoverGradient == nil && p.Published == nil
}

// Nullable distinguishes an absent field (Set false) from an explicit null
// (Set true, Value nil).
type Nullable[T any] struct {
	Set   bool
	Value *T
}
