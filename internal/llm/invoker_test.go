package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/YanguiHadil/unihelp/internal/log"
)

// stubCompleter answers per model name.
type stubCompleter struct {
	answers map[string]string
	errs    map[string]error
	calls   []string
}

func (s *stubCompleter) Complete(_ context.Context, req Request) (string, error) {
	s.calls = append(s.calls, req.Model)
	if err, ok := s.errs[req.Model]; ok {
		return "", err
	}
	return s.answers[req.Model], nil
}

func TestInvokeFirstCandidateWins(t *testing.T) {
	t.Parallel()

	stub := &stubCompleter{answers: map[string]string{"fast": "réponse"}}
	inv := NewInvoker(stub, log.NewNop(), WithModels([]string{"fast", "big"}))

	answer, err := inv.Invoke(context.Background(), []Message{User("q")}, 0.2)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if answer != "réponse" {
		t.Errorf("answer = %q", answer)
	}
	if len(stub.calls) != 1 || stub.calls[0] != "fast" {
		t.Errorf("expected one call to fast, got %v", stub.calls)
	}
}

func TestInvokeFallsBackOnError(t *testing.T) {
	t.Parallel()

	stub := &stubCompleter{
		errs:    map[string]error{"fast": errors.New("503")},
		answers: map[string]string{"big": "ok"},
	}
	inv := NewInvoker(stub, log.NewNop(), WithModels([]string{"fast", "big"}))

	answer, err := inv.Invoke(context.Background(), []Message{User("q")}, 0.2)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if answer != "ok" {
		t.Errorf("answer = %q", answer)
	}
	if len(stub.calls) != 2 {
		t.Errorf("expected fallback to second candidate, calls = %v", stub.calls)
	}
}

func TestInvokeTreatsEmptyAnswerAsFailure(t *testing.T) {
	t.Parallel()

	stub := &stubCompleter{answers: map[string]string{"fast": "  \n", "big": "ok"}}
	inv := NewInvoker(stub, log.NewNop(), WithModels([]string{"fast", "big"}))

	answer, err := inv.Invoke(context.Background(), []Message{User("q")}, 0.2)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if answer != "ok" {
		t.Errorf("blank completion should fall through, got %q", answer)
	}
}

func TestInvokeExhaustsCandidates(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	stub := &stubCompleter{errs: map[string]error{"fast": errors.New("first"), "big": boom}}
	inv := NewInvoker(stub, log.NewNop(), WithModels([]string{"fast", "big"}))

	_, err := inv.Invoke(context.Background(), []Message{User("q")}, 0.2)
	if !errors.Is(err, ErrModelsExhausted) {
		t.Fatalf("err = %v, want ErrModelsExhausted", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("exhaustion error should wrap the last failure, got %v", err)
	}
	if len(stub.calls) != 2 {
		t.Errorf("every candidate gets exactly one attempt, calls = %v", stub.calls)
	}
}

func TestInvokeNoCandidates(t *testing.T) {
	t.Parallel()

	inv := NewInvoker(&stubCompleter{}, log.NewNop(), WithModels(nil))
	_, err := inv.Invoke(context.Background(), []Message{User("q")}, 0.2)
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("err = %v, want ErrNoCandidates", err)
	}
}

func TestInvokeStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	stub := &stubCompleter{errs: map[string]error{"fast": context.Canceled}}
	inv := NewInvoker(stub, log.NewNop(), WithModels([]string{"fast", "big"}))

	cancel()
	_, err := inv.Invoke(ctx, []Message{User("q")}, 0.2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(stub.calls) > 1 {
		t.Errorf("cancellation must stop the fallback chain, calls = %v", stub.calls)
	}
}

func TestDefaultModelsOrder(t *testing.T) {
	t.Parallel()

	inv := NewInvoker(&stubCompleter{}, log.NewNop())
	models := inv.Models()
	if len(models) != 2 || models[0] != "llama-3.1-8b-instant" || models[1] != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected default candidates: %v", models)
	}
}
