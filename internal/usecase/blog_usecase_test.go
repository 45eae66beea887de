package usecase

import (
	"context"
	"errors"
	"testing"

	"portfolio/internal/domain/portfolio"
)

func TestBlogUsecase_ListPosts_PublishedFilter(t *testing.T) {
	repo := &fakeBlogRepo{posts: map[int64]portfolio.BlogPost{
		1: {ID: 1, Title: "a", Published: true},
		2: {ID: 2, Title: "b", Published: false},
	}}
	uc := NewBlogUsecase(repo, nil, nil)

	posts, err := uc.ListPosts(context.Background(), true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastPublished == nil || !*repo.lastPublished {
		t.Fatalf("expected publishedOnly to reach storage")
	}
	if len(posts) != 1 || !posts[0].Published {
		t.Fatalf("unexpected posts %+v", posts)
	}
}

func TestBlogUsecase_GetPost(t *testing.T) {
	repo := &fakeBlogRepo{posts: map[int64]portfolio.BlogPost{1: {ID: 1, Title: "a"}}}
	cache := newMemoryCache()
	uc := NewBlogUsecase(repo, cache, nil)
	ctx := context.Background()

	if _, err := uc.GetPost(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if cache.has(blogPostCacheKey(42)) {
		t.Fatalf("missing post must not be cached")
	}

	for i := 0; i < 2; i++ {
		p, err := uc.GetPost(ctx, 1)
		if err != nil || p.Title != "a" {
			t.Fatalf("get: %+v err=%v", p, err)
		}
	}
	if repo.getCalls != 2 {
		t.Fatalf("expected one storage read for id 1 plus the miss, got %d", repo.getCalls)
	}

	published := true
	if _, err := uc.UpdatePost(ctx, 1, portfolio.BlogPostPatch{Published: &published}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if cache.has(blogPostCacheKey(1)) {
		t.Fatalf("expected update to invalidate cached post")
	}
}

func TestBlogUsecase_CreatePost_InvalidatesLists(t *testing.T) {
	repo := &fakeBlogRepo{posts: map[int64]portfolio.BlogPost{}}
	cache := newMemoryCache()
	uc := NewBlogUsecase(repo, cache, nil)
	ctx := context.Background()

	if _, err := uc.ListPosts(ctx, false); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !cache.has(blogListCacheKey(false)) {
		t.Fatalf("expected list to be cached")
	}

	_, err := uc.CreatePost(ctx, portfolio.BlogPostInput{Title: "t", Subtitle: "s", Content: "c", CoverGradient: "g"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cache.has(blogListCacheKey(false)) {
		t.Fatalf("expected create to invalidate cached lists")
	}

	if _, err := uc.CreatePost(ctx, portfolio.BlogPostInput{Title: "t"}); !portfolio.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBlogUsecase_StorageFailure(t *testing.T) {
	uc := NewBlogUsecase(&fakeBlogRepo{err: errStorage}, nil, nil)
	if _, err := uc.ListPosts(context.Background(), false); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if _, err := uc.GetPost(context.Background(), 1); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
