package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/studyzap/studyzap-backend/internal/model"
	"github.com/studyzap/studyzap-backend/internal/quiz"
)

type fakePaperGetter struct {
	paper *model.Paper
	err   error
}

func (f *fakePaperGetter) GetPaper(ctx context.Context, paperID string) (*model.Paper, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.paper, nil
}

type fakeResultStore struct {
	created []*model.PaperResult
	err     error
}

func (f *fakeResultStore) Create(ctx context.Context, res *model.PaperResult) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, res)
	return nil
}

func testPaper() *model.Paper {
	return &model.Paper{
		ID:         "algebra-1",
		Name:       "Linear Equations I",
		ModuleID:   "algebra",
		ModuleName: "Algebra",
		TimeLimit:  "10 min",
		Questions: []model.Question{
			{ID: 0, Prompt: "Solve x + 2 = 5", Options: []string{"2", "3", "5", "7"}, CorrectAnswer: 1},
			{ID: 1, Prompt: "Solve 2x = 8", Options: []string{"2", "4", "8", "16"}, CorrectAnswer: 1},
			{ID: 2, Prompt: "Solve x - 1 = 0", Options: []string{"1", "0", "-1", "2"}, CorrectAnswer: 0},
		},
	}
}

func newTestService(store *fakeResultStore) *SessionService {
	return NewSessionService(&fakePaperGetter{paper: testPaper()}, store, zerolog.Nop())
}

func TestSessionServiceOpen(t *testing.T) {
	svc := newTestService(&fakeResultStore{})

	snap, err := svc.Open(context.Background(), "algebra-1")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if snap.SessionID == uuid.Nil {
		t.Error("missing session ID")
	}
	if snap.CurrentIndex != 0 || snap.TotalQuestions != 3 || snap.AnsweredCount != 0 {
		t.Errorf("fresh snapshot = %+v", snap)
	}
	if snap.PaperName != "Linear Equations I" || snap.ModuleName != "Algebra" {
		t.Errorf("paper metadata not carried: %+v", snap)
	}
	if snap.CurrentQuestion.Prompt != "Solve x + 2 = 5" {
		t.Errorf("current question = %q", snap.CurrentQuestion.Prompt)
	}
}

func TestSessionServiceOpenPaperError(t *testing.T) {
	svc := NewSessionService(&fakePaperGetter{err: ErrPaperNotFound}, &fakeResultStore{}, zerolog.Nop())

	if _, err := svc.Open(context.Background(), "missing"); !errors.Is(err, ErrPaperNotFound) {
		t.Errorf("err = %v, want ErrPaperNotFound", err)
	}
}

func TestSessionServiceOpenCancelledContext(t *testing.T) {
	svc := newTestService(&fakeResultStore{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Open(ctx, "algebra-1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	// Nothing may linger after a cancelled open.
	svc.mu.RLock()
	n := len(svc.sessions)
	svc.mu.RUnlock()
	if n != 0 {
		t.Errorf("%d sessions left behind", n)
	}
}

func TestSessionServiceUnknownSession(t *testing.T) {
	svc := newTestService(&fakeResultStore{})

	if _, err := svc.Get(uuid.New()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get err = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.SelectAnswer(uuid.New(), 0); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("SelectAnswer err = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.Submit(context.Background(), uuid.New()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Submit err = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionServiceAnswerAndNavigate(t *testing.T) {
	svc := newTestService(&fakeResultStore{})
	snap, err := svc.Open(context.Background(), "algebra-1")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	id := snap.SessionID

	snap, err = svc.SelectAnswer(id, 1)
	if err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	if snap.AnsweredCount != 1 || snap.Answers[0] != 1 {
		t.Errorf("after answer: %+v", snap)
	}

	snap, err = svc.Next(id)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if snap.CurrentIndex != 1 {
		t.Errorf("index = %d after Next", snap.CurrentIndex)
	}

	snap, err = svc.GoTo(id, 99)
	if err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if snap.CurrentIndex != 2 {
		t.Errorf("index = %d, want clamp to 2", snap.CurrentIndex)
	}

	snap, err = svc.Previous(id)
	if err != nil {
		t.Fatalf("Previous: %v", err)
	}
	if snap.CurrentIndex != 1 {
		t.Errorf("index = %d after Previous", snap.CurrentIndex)
	}

	if _, err := svc.SelectAnswer(id, 7); !errors.Is(err, quiz.ErrOptionOutOfRange) {
		t.Errorf("out-of-range option err = %v", err)
	}
}

func TestSessionServiceSubmitPersistsResult(t *testing.T) {
	store := &fakeResultStore{}
	svc := newTestService(store)
	snap, err := svc.Open(context.Background(), "algebra-1")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	id := snap.SessionID

	// Answer 1, 1, 1: two correct out of three.
	for i := 0; i < 3; i++ {
		if _, err := svc.GoTo(id, i); err != nil {
			t.Fatalf("GoTo(%d): %v", i, err)
		}
		if _, err := svc.SelectAnswer(id, 1); err != nil {
			t.Fatalf("SelectAnswer: %v", err)
		}
	}

	result, err := svc.Submit(context.Background(), id)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Score != 2 || result.TotalQuestions != 3 || result.Percentage != 67 {
		t.Errorf("result = %+v", result)
	}

	if len(store.created) != 1 {
		t.Fatalf("%d results persisted, want 1", len(store.created))
	}
	rec := store.created[0]
	if rec.PaperID != "algebra-1" || rec.ModuleID != "algebra" || rec.Score != 2 || rec.Percentage != 67 {
		t.Errorf("persisted = %+v", rec)
	}

	// Mutations after submit are rejected; the result stays readable.
	if _, err := svc.SelectAnswer(id, 0); !errors.Is(err, quiz.ErrSessionSubmitted) {
		t.Errorf("post-submit answer err = %v", err)
	}
	again, err := svc.Result(id)
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if again.Score != result.Score {
		t.Errorf("re-read score = %d, want %d", again.Score, result.Score)
	}
}

func TestSessionServiceSubmitEmptyRejected(t *testing.T) {
	store := &fakeResultStore{}
	svc := newTestService(store)
	snap, _ := svc.Open(context.Background(), "algebra-1")

	if _, err := svc.Submit(context.Background(), snap.SessionID); !errors.Is(err, quiz.ErrNoAnswers) {
		t.Errorf("err = %v, want ErrNoAnswers", err)
	}
	if len(store.created) != 0 {
		t.Errorf("rejected submit persisted %d results", len(store.created))
	}
}

func TestSessionServiceSubmitSurvivesStoreFailure(t *testing.T) {
	store := &fakeResultStore{err: errors.New("db down")}
	svc := newTestService(store)
	snap, _ := svc.Open(context.Background(), "algebra-1")

	if _, err := svc.SelectAnswer(snap.SessionID, 1); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}

	result, err := svc.Submit(context.Background(), snap.SessionID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Score != 1 {
		t.Errorf("score = %d, want 1", result.Score)
	}
}

func TestSessionServiceResultBeforeSubmit(t *testing.T) {
	svc := newTestService(&fakeResultStore{})
	snap, _ := svc.Open(context.Background(), "algebra-1")

	if _, err := svc.Result(snap.SessionID); !errors.Is(err, quiz.ErrNotSubmitted) {
		t.Errorf("err = %v, want ErrNotSubmitted", err)
	}
}

func TestSessionServiceReset(t *testing.T) {
	svc := newTestService(&fakeResultStore{})
	snap, _ := svc.Open(context.Background(), "algebra-1")
	id := snap.SessionID

	svc.SelectAnswer(id, 1)
	svc.Submit(context.Background(), id)

	snap, err := svc.Reset(id)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if snap.Submitted || snap.AnsweredCount != 0 || snap.CurrentIndex != 0 {
		t.Errorf("after reset: %+v", snap)
	}
}

func TestSessionServiceClose(t *testing.T) {
	svc := newTestService(&fakeResultStore{})
	snap, _ := svc.Open(context.Background(), "algebra-1")
	id := snap.SessionID

	svc.Close(id)
	if _, err := svc.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v after close", err)
	}

	// Closing twice is harmless.
	svc.Close(id)
}

func TestSessionServiceIndependentSessions(t *testing.T) {
	svc := newTestService(&fakeResultStore{})
	a, _ := svc.Open(context.Background(), "algebra-1")
	b, _ := svc.Open(context.Background(), "algebra-1")

	if a.SessionID == b.SessionID {
		t.Fatal("two opens shared a session ID")
	}

	svc.SelectAnswer(a.SessionID, 1)
	snapB, err := svc.Get(b.SessionID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snapB.AnsweredCount != 0 {
		t.Error("answer leaked across sessions")
	}
}
