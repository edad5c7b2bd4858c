package commentapp

import (
	"context"
	"errors"
	"sort"
	"testing"

	"weblog/internal/core/apperr"
	commentEntity "weblog/internal/core/comment"
	"weblog/internal/core/ownership"
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
	order    []string
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[string]*commentEntity.Comment{}}
}

func (m *memCommentRepo) Create(_ context.Context, c *commentEntity.Comment) (*commentEntity.Comment, error) {
	m.comments[c.ID.String()] = c
	m.order = append(m.order, c.ID.String())
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
	for _, id := range m.order {
		c, ok := m.comments[id]
		if ok && c.PostID.String() == postID {
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

type commentFixture struct {
	svc      *CommentService
	posts    *memPostRepo
	comments *memCommentRepo
}

func newCommentFixture() *commentFixture {
	posts := newMemPostRepo()
	comments := newMemCommentRepo()
	svc := NewCommentService(comments, ownership.NewGuard(posts, comments))
	return &commentFixture{svc: svc, posts: posts, comments: comments}
}

func (f *commentFixture) addPost(t *testing.T, author uuid.UUID) *postEntity.Post {
	t.Helper()
	p := &postEntity.Post{ID: uuid.Must(uuid.NewV4()), Title: "post", AuthorID: author}
	if _, err := f.posts.Create(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestAddCommentRequiresExistingPost(t *testing.T) {
	f := newCommentFixture()

	_, err := f.svc.AddComment(context.Background(), uuid.Must(uuid.NewV4()).String(), uuid.Must(uuid.NewV4()).String(), "hi")
	if !apperr.IsNotFound(err) {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestAddCommentByNonAuthor(t *testing.T) {
	f := newCommentFixture()
	p := f.addPost(t, uuid.Must(uuid.NewV4()))
	stranger := uuid.Must(uuid.NewV4()).String()

	// any authenticated user may comment; ownership is not enforced here
	cm, err := f.svc.AddComment(context.Background(), stranger, p.ID.String(), "nice post")
	if err != nil {
		t.Fatal(err)
	}
	if cm.PostID != p.ID.String() || cm.UserID != stranger {
		t.Errorf("comment mis-attributed: %+v", cm)
	}
}

func TestAddCommentAllowsEmptyBody(t *testing.T) {
	f := newCommentFixture()
	p := f.addPost(t, uuid.Must(uuid.NewV4()))

	// unlike post titles, comment bodies are not validated
	if _, err := f.svc.AddComment(context.Background(), uuid.Must(uuid.NewV4()).String(), p.ID.String(), ""); err != nil {
		t.Fatalf("empty body rejected: %v", err)
	}
}

func TestCommentsOfPostKeepsStorageOrder(t *testing.T) {
	f := newCommentFixture()
	p := f.addPost(t, uuid.Must(uuid.NewV4()))
	u := uuid.Must(uuid.NewV4()).String()

	for _, body := range []string{"first", "second", "third"} {
		if _, err := f.svc.AddComment(context.Background(), u, p.ID.String(), body); err != nil {
			t.Fatal(err)
		}
	}

	got, err := f.svc.CommentsOfPost(context.Background(), p.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0].Body != "first" || got[2].Body != "third" {
		t.Errorf("order broken: %+v", got)
	}
}

func TestUpdateCommentOwnership(t *testing.T) {
	f := newCommentFixture()
	p := f.addPost(t, uuid.Must(uuid.NewV4()))
	commenter := uuid.Must(uuid.NewV4()).String()

	cm, err := f.svc.AddComment(context.Background(), commenter, p.ID.String(), "draft")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.UpdateComment(context.Background(), cm.ID, uuid.Must(uuid.NewV4()).String(), "edit"); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}

	updated, err := f.svc.UpdateComment(context.Background(), cm.ID, commenter, "final")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Body != "final" {
		t.Errorf("body = %q", updated.Body)
	}
}

func TestDeleteCommentReturnsPostID(t *testing.T) {
	f := newCommentFixture()
	p := f.addPost(t, uuid.Must(uuid.NewV4()))
	commenter := uuid.Must(uuid.NewV4()).String()

	cm, err := f.svc.AddComment(context.Background(), commenter, p.ID.String(), "bye")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.DeleteComment(context.Background(), cm.ID, uuid.Must(uuid.NewV4()).String()); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}

	postID, err := f.svc.DeleteComment(context.Background(), cm.ID, commenter)
	if err != nil {
		t.Fatal(err)
	}
	if postID != p.ID.String() {
		t.Errorf("returned post id %q, want %q", postID, p.ID)
	}
	if _, err := f.svc.UpdateComment(context.Background(), cm.ID, commenter, "x"); !apperr.IsNotFound(err) {
		t.Errorf("deleted comment still resolvable: %v", err)
	}
}
