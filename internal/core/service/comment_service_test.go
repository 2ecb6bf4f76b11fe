package service

import (
	"context"
	"testing"

	"github.com/longrunpc/calmato-be/internal/core/domain"
)

type stubCommentRepo struct {
	comments map[int64]*domain.Comment
	nextID   int64
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[int64]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	clone := *c
	clone.ID = r.nextID
	r.comments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) FindByPost(_ context.Context, postID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range r.comments {
		if c.PostID == postID && c.Status == domain.CommentActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id int64) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) Update(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	if _, ok := r.comments[c.ID]; !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	r.comments[c.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *stubCommentRepo) CountActiveReplies(_ context.Context, parentID int64) (int64, error) {
	var n int64
	for _, c := range r.comments {
		if c.ParentCommentID == parentID && c.Status == domain.CommentActive {
			n++
		}
	}
	return n, nil
}

func (r *stubCommentRepo) FindByUser(_ context.Context, userID int64, page, limit int) ([]domain.Comment, int64, error) {
	var out []domain.Comment
	for _, c := range r.comments {
		if c.UserID == userID && c.Status == domain.CommentActive {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func newCommentFixture(t *testing.T) (*CommentService, *stubCommentRepo, *domain.Post) {
	t.Helper()
	boards := newStubBoardRepo()
	post, err := boards.Create(context.Background(), &domain.Post{
		BoardType: domain.BoardFree,
		Title:     "t",
		Content:   "c",
		UserID:    1,
		Status:    domain.PostActive,
	})
	if err != nil {
		t.Fatalf("fixture post: %v", err)
	}
	repo := newStubCommentRepo()
	return NewCommentService(repo, boards), repo, post
}

func TestCommentService_Create(t *testing.T) {
	svc, _, post := newCommentFixture(t)

	c, err := svc.Create(context.Background(), post.ID, 2, "nice track", 0)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if c.Status != domain.CommentActive {
		t.Fatalf("unexpected status: %s", c.Status)
	}

	if _, err := svc.Create(context.Background(), 9999, 2, "orphan", 0); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_Create_ReplyValidation(t *testing.T) {
	svc, _, post := newCommentFixture(t)
	parent, _ := svc.Create(context.Background(), post.ID, 2, "parent", 0)

	reply, err := svc.Create(context.Background(), post.ID, 3, "reply", parent.ID)
	if err != nil {
		t.Fatalf("reply failed: %v", err)
	}
	if reply.ParentCommentID != parent.ID {
		t.Fatalf("parent not linked: %d", reply.ParentCommentID)
	}

	// Parent must exist.
	if _, err := svc.Create(context.Background(), post.ID, 3, "reply", 9999); err != domain.ErrCommentNotFound {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestCommentService_Update_OwnerOnly(t *testing.T) {
	svc, _, post := newCommentFixture(t)
	c, _ := svc.Create(context.Background(), post.ID, 2, "original", 0)

	if _, err := svc.Update(context.Background(), c.ID, 3, "hijack"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), c.ID, 2, "edited")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("content not updated: %s", updated.Content)
	}
}

func TestCommentService_Delete_HardWithoutReplies(t *testing.T) {
	svc, repo, post := newCommentFixture(t)
	c, _ := svc.Create(context.Background(), post.ID, 2, "lonely", 0)

	if err := svc.Delete(context.Background(), c.ID, 2); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := repo.comments[c.ID]; ok {
		t.Fatalf("expected hard delete")
	}
}

func TestCommentService_Delete_TombstoneWithReplies(t *testing.T) {
	svc, repo, post := newCommentFixture(t)
	parent, _ := svc.Create(context.Background(), post.ID, 2, "parent", 0)
	_, _ = svc.Create(context.Background(), post.ID, 3, "reply", parent.ID)

	if err := svc.Delete(context.Background(), parent.ID, 2); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	stored, ok := repo.comments[parent.ID]
	if !ok {
		t.Fatalf("expected tombstone, row gone")
	}
	if stored.Status != domain.CommentDeleted {
		t.Fatalf("expected DELETED status, got %s", stored.Status)
	}
	if stored.Content != domain.DeletedCommentBody {
		t.Fatalf("expected tombstone body, got %q", stored.Content)
	}
}

func TestCommentService_Create_ReplyToDeletedParent(t *testing.T) {
	svc, _, post := newCommentFixture(t)
	parent, _ := svc.Create(context.Background(), post.ID, 2, "parent", 0)
	_, _ = svc.Create(context.Background(), post.ID, 3, "reply", parent.ID)

	// Tombstone the parent, then try to reply to it.
	if err := svc.Delete(context.Background(), parent.ID, 2); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.Create(context.Background(), post.ID, 4, "late reply", parent.ID); err != domain.ErrCommentNotFound {
		t.Fatalf("expected ErrCommentNotFound for deleted parent, got %v", err)
	}
}

func TestCommentService_Update_DeletedComment(t *testing.T) {
	svc, repo, post := newCommentFixture(t)
	parent, _ := svc.Create(context.Background(), post.ID, 2, "parent", 0)
	_, _ = svc.Create(context.Background(), post.ID, 3, "reply", parent.ID)
	_ = svc.Delete(context.Background(), parent.ID, 2)

	if _, err := svc.Update(context.Background(), parent.ID, 2, "resurrected"); err != domain.ErrCommentNotFound {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
	if repo.comments[parent.ID].Content != domain.DeletedCommentBody {
		t.Fatalf("tombstone body overwritten: %q", repo.comments[parent.ID].Content)
	}

	if err := svc.Delete(context.Background(), parent.ID, 2); err != domain.ErrCommentNotFound {
		t.Fatalf("expected ErrCommentNotFound on second delete, got %v", err)
	}
}

func TestCommentService_ListByPost_ActiveOnly(t *testing.T) {
	svc, _, post := newCommentFixture(t)
	parent, _ := svc.Create(context.Background(), post.ID, 2, "parent", 0)
	reply, _ := svc.Create(context.Background(), post.ID, 3, "reply", parent.ID)
	_ = svc.Delete(context.Background(), parent.ID, 2)

	comments, err := svc.ListByPost(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(comments) != 1 || comments[0].ID != reply.ID {
		t.Fatalf("expected only the active reply, got %+v", comments)
	}
}

func TestCommentService_Delete_OwnerOnly(t *testing.T) {
	svc, _, post := newCommentFixture(t)
	c, _ := svc.Create(context.Background(), post.ID, 2, "mine", 0)

	if err := svc.Delete(context.Background(), c.ID, 3); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCommentService_ListMine_Normalisation(t *testing.T) {
	svc, _, post := newCommentFixture(t)
	_, _ = svc.Create(context.Background(), post.ID, 2, "one", 0)

	page, err := svc.ListMine(context.Background(), 2, -5, 500)
	if err != nil {
		t.Fatalf("list mine failed: %v", err)
	}
	if page.Page != 1 || page.Limit != 20 {
		t.Fatalf("expected normalised page/limit, got %d/%d", page.Page, page.Limit)
	}
	if page.Total != 1 || page.TotalPages != 1 {
		t.Fatalf("unexpected totals: %+v", page)
	}
}
