package loop

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/todo-go/internal/todo"
	"github.com/nibzard/todo-go/internal/ui"
)

var errScriptDone = errors.New("script exhausted")

// reply is one scripted dialog answer.
type reply struct {
	kind  string // select, input, confirm
	value string
	ok    bool
	err   error
}

func sel(value string) reply { return reply{kind: "select", value: value, ok: true} }
func selCancel() reply { return reply{kind: "select"} }
func input(value string) reply { return reply{kind: "input", value: value, ok: true} }
func inputCancel() reply { return reply{kind: "input"} }
func confirm(yes bool) reply { return reply{kind: "confirm", ok: yes} }
func failWith(kind string, err error) reply { return reply{kind: kind, err: err} }

// dialogCall records what a dialog was shown with.
type dialogCall struct {
	kind    string
	title   string
	text    string
	options []ui.Option
}

// scriptedPrompter answers dialogs from a fixed script.
type scriptedPrompter struct {
	t       *testing.T
	replies []reply
	calls   []dialogCall
}

func (p *scriptedPrompter) next(call dialogCall) (reply, error) {
	p.t.Helper()
	p.calls = append(p.calls, call)
	if len(p.replies) == 0 {
		return reply{}, errScriptDone
	}
	r := p.replies[0]
	p.replies = p.replies[1:]
	if r.kind != call.kind {
		p.t.Fatalf("dialog %d: got %s dialog %q, script expected %s", len(p.calls), call.kind, call.title, r.kind)
	}
	return r, r.err
}

func (p *scriptedPrompter) Select(ctx context.Context, title, text string, options []ui.Option) (string, bool, error) {
	r, err := p.next(dialogCall{kind: "select", title: title, text: text, options: options})
	return r.value, r.ok, err
}

func (p *scriptedPrompter) Input(ctx context.Context, title, text string) (string, bool, error) {
	r, err := p.next(dialogCall{kind: "input", title: title, text: text})
	return r.value, r.ok, err
}

func (p *scriptedPrompter) Confirm(ctx context.Context, title, text string) (bool, error) {
	r, err := p.next(dialogCall{kind: "confirm", title: title, text: text})
	return r.ok, err
}

type harness struct {
	loop     *Loop
	prompter *scriptedPrompter
	out      *bytes.Buffer
	path     string
}

func newHarness(t *testing.T, fileContent string, replies ...reply) *harness {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ToDo_Tasks.txt")
	if fileContent != "" {
		if err := os.WriteFile(path, []byte(fileContent), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	theme, err := ui.NewTheme("matrix", lipgloss.NewRenderer(io.Discard))
	if err != nil {
		t.Fatalf("NewTheme: %v", err)
	}

	p := &scriptedPrompter{t: t, replies: replies}
	out := &bytes.Buffer{}
	l := New(p, theme, path,
		WithOutput(out),
		WithWidth(func() int { return 30 }),
	)
	return &harness{loop: l, prompter: p, out: out, path: path}
}

func (h *harness) fileContent(t *testing.T) (string, bool) {
	t.Helper()
	data, err := os.ReadFile(h.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false
	}
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data), true
}

func TestEndToEndScenario(t *testing.T) {
	h := newHarness(t, "",
		sel("add"), input("walk dog"),
		sel("add"), input("buy milk"),
		sel("toggle"), sel("1"),
		sel("quit"),
	)

	if err := h.loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, ok := h.fileContent(t)
	if !ok {
		t.Fatal("task file was not written")
	}
	if want := "✔ Walk dog\n✖ Buy milk\n"; got != want {
		t.Errorf("file contents:\ngot  %q\nwant %q", got, want)
	}

	reloaded, err := todo.Load(h.path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := []todo.Task{{Text: "Walk dog", Done: true}, {Text: "Buy milk"}}
	if !reflect.DeepEqual(reloaded.Tasks(), want) {
		t.Errorf("reloaded: got %+v, want %+v", reloaded.Tasks(), want)
	}

	out := h.out.String()
	for _, needle := range []string{`"Walk dog" added.`, `"Buy milk" added.`, "Task marked as: Done", "Goodbye!"} {
		if !strings.Contains(out, needle) {
			t.Errorf("output missing %q:\n%s", needle, out)
		}
	}
}

func TestMenuShowsListingAndRule(t *testing.T) {
	h := newHarness(t, "✔ Walk dog\n✖ Buy milk\n", sel("quit"))

	if err := h.loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	menu := h.prompter.calls[0]
	if menu.title != "TO DO List" {
		t.Errorf("menu title: got %q", menu.title)
	}
	wantText := "Your tasks:\n\n1. ✔ Walk dog\n2. ✖ Buy milk\n\n" + strings.Repeat("─", 23) + "\n\nChoose an option:"
	if menu.text != wantText {
		t.Errorf("menu text:\ngot  %q\nwant %q", menu.text, wantText)
	}
	if !reflect.DeepEqual(menu.options, MenuOptions) {
		t.Errorf("menu options: got %+v", menu.options)
	}
}

func TestMenuPlaceholderWhenEmpty(t *testing.T) {
	h := newHarness(t, "", sel("quit"))

	if err := h.loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(h.prompter.calls[0].text, ui.EmptyListMessage) {
		t.Errorf("menu text missing placeholder: %q", h.prompter.calls[0].text)
	}
}

func TestCanceledDialogsAreNoOps(t *testing.T) {
	h := newHarness(t, "✖ Buy milk\n",
		selCancel(),
		sel("add"), inputCancel(),
		sel("add"), input("   "),
		sel("add"), input(""),
		sel("toggle"), selCancel(),
		sel("remove"), selCancel(),
		sel("clear"), confirm(false),
	)

	err := h.loop.Run(context.Background())
	if !errors.Is(err, errScriptDone) {
		t.Fatalf("Run: got %v, want script exhaustion", err)
	}

	want := []todo.Task{{Text: "Buy milk"}}
	if !reflect.DeepEqual(h.loop.Tasks(), want) {
		t.Errorf("tasks changed: got %+v, want %+v", h.loop.Tasks(), want)
	}
	if got, _ := h.fileContent(t); got != "✖ Buy milk\n" {
		t.Errorf("file changed without quit: %q", got)
	}
	if h.out.Len() != 0 {
		t.Errorf("no-ops printed output: %q", h.out.String())
	}
}

func TestEmptyListWarnings(t *testing.T) {
	h := newHarness(t, "", sel("toggle"), sel("remove"), sel("quit"))

	if err := h.loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Only menus were shown; no task picker for an empty list.
	for i, call := range h.prompter.calls {
		if call.title != "TO DO List" {
			t.Errorf("call %d: unexpected dialog %q", i, call.title)
		}
	}
	out := h.out.String()
	for _, needle := range []string{"No tasks to update.", "No tasks to remove."} {
		if !strings.Contains(out, needle) {
			t.Errorf("output missing %q:\n%s", needle, out)
		}
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	h := newHarness(t, "✖ A\n✔ B\n",
		sel("toggle"), sel("2"),
		sel("toggle"), sel("2"),
		sel("quit"),
	)

	if err := h.loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got, _ := h.fileContent(t); got != "✖ A\n✔ B\n" {
		t.Errorf("file: got %q", got)
	}
	out := h.out.String()
	if !strings.Contains(out, "Task marked as: Not done") || !strings.Contains(out, "Task marked as: Done") {
		t.Errorf("toggle messages missing:\n%s", out)
	}
}

func TestTaskPickerOptions(t *testing.T) {
	h := newHarness(t, "✖ A\n✔ B\n", sel("remove"), sel("1"), sel("quit"))

	if err := h.loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	picker := h.prompter.calls[1]
	if picker.title != "Remove Task" || picker.text != "Select a task:" {
		t.Errorf("picker: got %q / %q", picker.title, picker.text)
	}
	want := []ui.Option{{Value: "1", Label: "A"}, {Value: "2", Label: "B"}}
	if !reflect.DeepEqual(picker.options, want) {
		t.Errorf("picker options: got %+v, want %+v", picker.options, want)
	}
}

func TestRemoveShiftsTasks(t *testing.T) {
	h := newHarness(t, "✖ A\n✔ B\n✖ C\n", sel("remove"), sel("2"), sel("quit"))

	if err := h.loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got, _ := h.fileContent(t); got != "✖ A\n✖ C\n" {
		t.Errorf("file: got %q", got)
	}
	if !strings.Contains(h.out.String(), `Removed "B".`) {
		t.Errorf("remove message missing: %q", h.out.String())
	}
}

func TestFeedbackQuotesTextVerbatim(t *testing.T) {
	h := newHarness(t, "",
		sel("add"), input(`say "hi" \ bye`),
		sel("remove"), sel("1"),
		sel("quit"),
	)

	if err := h.loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	out := h.out.String()
	for _, needle := range []string{`"Say "hi" \ bye" added.`, `Removed "Say "hi" \ bye".`} {
		if !strings.Contains(out, needle) {
			t.Errorf("output missing %q:\n%s", needle, out)
		}
	}
}

func TestClearConfirmed(t *testing.T) {
	h := newHarness(t, "✖ A\n✔ B\n", sel("clear"), confirm(true), sel("quit"))

	if err := h.loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	confirmCall := h.prompter.calls[1]
	if confirmCall.title != "Confirm" || confirmCall.text != "Delete ALL tasks?" {
		t.Errorf("confirm dialog: got %q / %q", confirmCall.title, confirmCall.text)
	}
	if got, ok := h.fileContent(t); !ok || got != "" {
		t.Errorf("file: got %q (exists %v), want empty", got, ok)
	}
	if !strings.Contains(h.out.String(), "All tasks cleared.") {
		t.Errorf("clear message missing: %q", h.out.String())
	}
}

func TestLegacyFileRewrittenWithMarkers(t *testing.T) {
	h := newHarness(t, "Buy milk\n\nwalk the dog\n", sel("quit"))

	if err := h.loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got, _ := h.fileContent(t); got != "✖ Buy milk\n✖ walk the dog\n" {
		t.Errorf("file: got %q", got)
	}
}

func TestDialogErrorStopsWithoutSaving(t *testing.T) {
	boom := errors.New("terminal gone")
	h := newHarness(t, "✖ A\n", sel("add"), input("b"), failWith("select", boom))

	err := h.loop.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run: got %v, want %v", err, boom)
	}
	if got, _ := h.fileContent(t); got != "✖ A\n" {
		t.Errorf("file changed: %q", got)
	}
}

func TestCanceledContextStopsWithoutSaving(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := newHarness(t, "", sel("quit"))
	err := h.loop.Run(ctx)
	if !IsCanceled(err) {
		t.Fatalf("Run: got %v, want cancellation", err)
	}
	if _, ok := h.fileContent(t); ok {
		t.Error("task file written after cancellation")
	}
}

func TestLoadErrorIsReturned(t *testing.T) {
	theme, err := ui.NewTheme("matrix", lipgloss.NewRenderer(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	l := New(&scriptedPrompter{t: t}, theme, t.TempDir(), WithOutput(io.Discard))
	if err := l.Run(context.Background()); err == nil {
		t.Fatal("expected error when the task path is a directory")
	}
}

func TestUnknownMenuChoiceIgnored(t *testing.T) {
	h := newHarness(t, "", sel("dance"), sel("quit"))

	if err := h.loop.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(h.prompter.calls) != 2 {
		t.Errorf("calls: got %d, want 2", len(h.prompter.calls))
	}
}
