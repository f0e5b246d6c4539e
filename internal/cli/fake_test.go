package cli

import (
	"context"
	"io"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/clientdir/internal/model"
)

type fakeResource struct {
	mu sync.Mutex

	clients   []model.Client
	listErr   error
	createID  int
	createErr error
	updateErr error
	deleteErr error

	calls []string
}

func (f *fakeResource) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call)
}

func (f *fakeResource) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.calls...)
}

func (f *fakeResource) List(_ context.Context) ([]model.Client, error) {
	f.record("list")

	if f.listErr != nil {
		return nil, f.listErr
	}

	return append([]model.Client(nil), f.clients...), nil
}

func (f *fakeResource) Create(_ context.Context, payload model.Payload) (*model.Client, error) {
	f.record("create")

	if f.createErr != nil {
		return nil, f.createErr
	}

	c := payload.Client(f.createID)

	return &c, nil
}

func (f *fakeResource) Update(_ context.Context, id int, payload model.Payload) (*model.Client, error) {
	f.record("update")

	if f.updateErr != nil {
		return nil, f.updateErr
	}

	c := payload.Client(id)

	return &c, nil
}

func (f *fakeResource) Delete(_ context.Context, _ int) error {
	f.record("delete")
	return f.deleteErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleClients() []model.Client {
	return []model.Client{
		{
			ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz",
			Phone: "1-770-736-8031 x56442", Website: "hildegard.org",
			Address: &model.Address{Street: "Kulas Light", Suite: "Apt. 556", City: "Gwenborough", Zipcode: "92998-3874"},
			Company: model.Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net"},
		},
		{
			ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv",
			Phone: "010-692-6593 x09125", Website: "anastasia.net",
			Company: model.Company{Name: "Deckow-Crist"},
		},
		{
			ID: 3, Name: "Clementine Bauch", Username: "Samantha", Email: "Nathan@yesenia.net",
			Phone: "1-463-123-4447", Website: "ramiro.info",
			Company: model.Company{Name: "Romaguera-Jacobson"},
		},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}
