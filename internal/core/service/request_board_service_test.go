package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

func newRequestBoard(repo *stubBoardRepo) *RequestBoardService {
	return NewRequestBoardService(repo, newStubViewMarker(), nil, zerolog.Nop())
}

func TestRequestBoardService_Create_StartsPending(t *testing.T) {
	repo := newStubBoardRepo()
	svc := newRequestBoard(repo)

	post, err := svc.Create(context.Background(), 1, ports.CreateRequestPostInput{
		Title:       "please add",
		Content:     "rain sounds",
		RequestType: domain.RequestTypeAsmr,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.BoardType != domain.BoardRequest {
		t.Fatalf("unexpected board type: %s", post.BoardType)
	}
	if post.RequestStatus != domain.RequestPending {
		t.Fatalf("expected PENDING, got %s", post.RequestStatus)
	}
}

func TestRequestBoardService_UpdateStatus(t *testing.T) {
	repo := newStubBoardRepo()
	svc := newRequestBoard(repo)
	post, _ := svc.Create(context.Background(), 1, ports.CreateRequestPostInput{
		Title: "t", Content: "c", RequestType: domain.RequestTypeMusic,
	})

	updated, err := svc.UpdateStatus(context.Background(), post.ID, domain.RequestInProgress)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.RequestStatus != domain.RequestInProgress {
		t.Fatalf("status not updated: %s", updated.RequestStatus)
	}

	if _, err := svc.UpdateStatus(context.Background(), post.ID, "SHIPPED"); err != domain.ErrInvalidRequestStatus {
		t.Fatalf("expected ErrInvalidRequestStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), 9999, domain.RequestCompleted); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestRequestBoardService_BoardsAreIsolated(t *testing.T) {
	repo := newStubBoardRepo()
	freeSvc := newFreeBoard(repo, nil)
	requestSvc := newRequestBoard(repo)

	freePost, _ := freeSvc.Create(context.Background(), 1, ports.CreateFreePostInput{
		Title: "free", Content: "c", Category: domain.CategoryTip,
	})

	// A free-board post must not be reachable through the request board.
	if _, err := requestSvc.Get(context.Background(), freePost.ID, 2); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound across boards, got %v", err)
	}
}
