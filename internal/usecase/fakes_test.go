package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"sync"
	"time"

	"portfolio/internal/domain/portfolio"
	"portfolio/internal/domain/user"
)

var errStorage = errors.New("storage unavailable")

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = b
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if ok, _ := path.Match(pattern, k); ok {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

type fakeSkillRepo struct {
	skills    []portfolio.Skill
	listCalls int
	created   int
	err       error
}

func (f *fakeSkillRepo) GetSkills(context.Context) ([]portfolio.Skill, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]portfolio.Skill(nil), f.skills...), nil
}

func (f *fakeSkillRepo) CreateSkill(_ context.Context, in portfolio.SkillInput) (portfolio.Skill, error) {
	if f.err != nil {
		return portfolio.Skill{}, f.err
	}
	f.created++
	order := len(f.skills)
	if in.Order != nil {
		order = *in.Order
	}
	sk := portfolio.Skill{ID: int64(len(f.skills) + 1), Name: in.Name, Proficiency: in.Proficiency, Experience: in.Experience, Order: order}
	f.skills = append(f.skills, sk)
	return sk, nil
}

func (f *fakeSkillRepo) UpdateSkill(_ context.Context, id int64, patch portfolio.SkillPatch) (portfolio.Skill, error) {
	if f.err != nil {
		return portfolio.Skill{}, f.err
	}
	for i := range f.skills {
		if f.skills[i].ID == id {
			if patch.Name != nil {
				f.skills[i].Name = *patch.Name
			}
			return f.skills[i], nil
		}
	}
	return portfolio.Skill{}, portfolio.ErrNotFound
}

func (f *fakeSkillRepo) DeleteSkill(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	out := f.skills[:0]
	for _, s := range f.skills {
		if s.ID != id {
			out = append(out, s)
		}
	}
	f.skills = out
	return nil
}

func (f *fakeSkillRepo) ClearSkills(context.Context) error {
	f.skills = nil
	return nil
}

type fakeBlogRepo struct {
	posts         map[int64]portfolio.BlogPost
	lastPublished *bool
	getCalls      int
	err           error
}

func (f *fakeBlogRepo) GetBlogPosts(_ context.Context, publishedOnly bool) ([]portfolio.BlogPost, error) {
	f.lastPublished = &publishedOnly
	if f.err != nil {
		return nil, f.err
	}
	out := make([]portfolio.BlogPost, 0, len(f.posts))
	for _, p := range f.posts {
		if publishedOnly && !p.Published {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeBlogRepo) GetBlogPost(_ context.Context, id int64) (portfolio.BlogPost, error) {
	f.getCalls++
	if f.err != nil {
		return portfolio.BlogPost{}, f.err
	}
	p, ok := f.posts[id]
	if !ok {
		return portfolio.BlogPost{}, portfolio.ErrNotFound
	}
	return p, nil
}

func (f *fakeBlogRepo) CreateBlogPost(_ context.Context, in portfolio.BlogPostInput) (portfolio.BlogPost, error) {
	if f.err != nil {
		return portfolio.BlogPost{}, f.err
	}
	id := int64(len(f.posts) + 1)
	p := portfolio.BlogPost{ID: id, Title: in.Title, Subtitle: in.Subtitle, Content: in.Content, CoverGradient: in.CoverGradient, Published: in.Published}
	f.posts[id] = p
	return p, nil
}

func (f *fakeBlogRepo) UpdateBlogPost(_ context.Context, id int64, patch portfolio.BlogPostPatch) (portfolio.BlogPost, error) {
	p, ok := f.posts[id]
	if !ok {
		return portfolio.BlogPost{}, portfolio.ErrNotFound
	}
	if patch.Published != nil {
		p.Published = *patch.Published
	}
	f.posts[id] = p
	return p, nil
}

func (f *fakeBlogRepo) DeleteBlogPost(_ context.Context, id int64) error {
	delete(f.posts, id)
	return nil
}

type fakePageViewRepo struct {
	views []portfolio.PageView
	calls int
}

func (f *fakePageViewRepo) CreatePageView(_ context.Context, in portfolio.PageViewInput) (portfolio.PageView, error) {
	v := portfolio.PageView{ID: int64(len(f.views) + 1), Path: in.Path, Timestamp: time.Now().UTC()}
	f.views = append(f.views, v)
	return v, nil
}

func (f *fakePageViewRepo) GetPageViews(context.Context, portfolio.PageViewFilter) ([]portfolio.PageView, error) {
	f.calls++
	return f.views, nil
}

func (f *fakePageViewRepo) GetPageViewStats(context.Context, portfolio.PageViewFilter) (portfolio.PageViewStats, error) {
	f.calls++
	return portfolio.PageViewStats{Total: int64(len(f.views))}, nil
}

type fakeContactRepo struct {
	subs []portfolio.ContactSubmission
	err  error
}

func (f *fakeContactRepo) CreateContactSubmission(_ context.Context, in portfolio.ContactInput) (portfolio.ContactSubmission, error) {
	if f.err != nil {
		return portfolio.ContactSubmission{}, f.err
	}
	s := portfolio.ContactSubmission{ID: int64(len(f.subs) + 1), Name: in.Name, Email: in.Email, Message: in.Message, SubmittedAt: time.Now().UTC()}
	f.subs = append([]portfolio.ContactSubmission{s}, f.subs...)
	return s, nil
}

func (f *fakeContactRepo) GetContactSubmissions(context.Context) ([]portfolio.ContactSubmission, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.subs, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]user.User{}}
}

func (f *fakeUserRepo) GetUser(_ context.Context, id int64) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (user.User, error) {
	u, ok := f.users[username]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, in user.CreateInput) (user.User, error) {
	if _, ok := f.users[in.Username]; ok {
		return user.User{}, user.ErrUsernameTaken
	}
	u := user.User{ID: int64(len(f.users) + 1), Username: in.Username, PasswordHash: in.PasswordHash}
	f.users[in.Username] = u
	return u, nil
}
