package ownership

import (
	"context"
	"errors"
	"sort"
	"testing"

	"weblog/internal/core/apperr"
	commentEntity "weblog/internal/core/comment"
	postEntity "weblog/internal/core/post"

	"github.com/gofrs/uuid"
)

type memPostRepo struct {
	posts map[string]*postEntity.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[string]*postEntity.Post{}}
}

func (m *memPostRepo) Create(_ context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	m.posts[p.ID.String()] = p
	return p, nil
}

func (m *memPostRepo) FindByID(_ context.Context, id string) (*postEntity.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, apperr.NotFound("post", id)
	}
	return p, nil
}

func (m *memPostRepo) ListAll(_ context.Context) ([]*postEntity.Post, error) {
	var out []*postEntity.Post
	for _, p := range m.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memPostRepo) Update(_ context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	m.posts[p.ID.String()] = p
	return p, nil
}

func (m *memPostRepo) Delete(_ context.Context, id string) error {
	delete(m.posts, id)
	return nil
}

type memCommentRepo struct {
	comments map[string]*commentEntity.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[string]*commentEntity.Comment{}}
}

func (m *memCommentRepo) Create(_ context.Context, c *commentEntity.Comment) (*commentEntity.Comment, error) {
	m.comments[c.ID.String()] = c
	return c, nil
}

func (m *memCommentRepo) FindByID(_ context.Context, id string) (*commentEntity.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, apperr.NotFound("comment", id)
	}
	return c, nil
}

func (m *memCommentRepo) FindByPostID(_ context.Context, postID string) ([]*commentEntity.Comment, error) {
	var out []*commentEntity.Comment
	for _, c := range m.comments {
		if c.PostID.String() == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCommentRepo) Update(_ context.Context, c *commentEntity.Comment) (*commentEntity.Comment, error) {
	m.comments[c.ID.String()] = c
	return c, nil
}

func (m *memCommentRepo) Delete(_ context.Context, id string) error {
	delete(m.comments, id)
	return nil
}

func TestResolvePostNotFound(t *testing.T) {
	g := NewGuard(newMemPostRepo(), newMemCommentRepo())

	_, err := g.ResolvePost(context.Background(), "missing", "anyone", true)
	if !apperr.IsNotFound(err) {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestResolvePostOwnership(t *testing.T) {
	posts := newMemPostRepo()
	owner := uuid.Must(uuid.NewV4())
	p := &postEntity.Post{ID: uuid.Must(uuid.NewV4()), Title: "Hello", AuthorID: owner}
	posts.Create(context.Background(), p)

	g := NewGuard(posts, newMemCommentRepo())

	// stranger with enforcement on
	_, err := g.ResolvePost(context.Background(), p.ID.String(), uuid.Must(uuid.NewV4()).String(), true)
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}

	// stranger on the read path
	got, err := g.ResolvePost(context.Background(), p.ID.String(), "", false)
	if err != nil {
		t.Fatalf("read path: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("resolved wrong post")
	}

	// owner with enforcement on
	if _, err := g.ResolvePost(context.Background(), p.ID.String(), owner.String(), true); err != nil {
		t.Errorf("owner rejected: %v", err)
	}
}

func TestResolveComment(t *testing.T) {
	comments := newMemCommentRepo()
	commenter := uuid.Must(uuid.NewV4())
	c := &commentEntity.Comment{ID: uuid.Must(uuid.NewV4()), UserID: commenter, Body: "hi"}
	comments.Create(context.Background(), c)

	g := NewGuard(newMemPostRepo(), comments)

	if _, err := g.ResolveComment(context.Background(), "missing", commenter.String(), true); !apperr.IsNotFound(err) {
		t.Errorf("got %v, want NotFound", err)
	}
	if _, err := g.ResolveComment(context.Background(), c.ID.String(), uuid.Must(uuid.NewV4()).String(), true); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden", err)
	}
	if _, err := g.ResolveComment(context.Background(), c.ID.String(), commenter.String(), true); err != nil {
		t.Errorf("commenter rejected: %v", err)
	}
}
