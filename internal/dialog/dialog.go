package dialog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Kind - тип модального решения
type Kind string

const (
	KindEmergencyConfirm Kind = "emergency-confirm"
	KindFilterSelect     Kind = "filter-select"
	KindLogoutConfirm    Kind = "logout-confirm"
)

// Стандартные ответы подтверждающих диалогов
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// ErrUnknownDialog возвращается при ответе на несуществующий
// или уже разрешенный диалог
var ErrUnknownDialog = errors.New("unknown or already resolved dialog")

// Dialog - ожидающее решение пользователя. Заменяет блокирующие
// confirm/prompt: логика ждет значение, а не модальное окно.
type Dialog struct {
	ID      uuid.UUID `json:"id"`
	Kind    Kind      `json:"kind"`
	Prompt  string    `json:"prompt"`
	Options []string  `json:"options,omitempty"`
}

type pendingDialog struct {
	dialog Dialog
	answer chan string
}

// Broker хранит ожидающие диалоги и доставляет ответы
type Broker struct {
	mu      sync.Mutex
	pending map[uuid.UUID]*pendingDialog
}

// NewBroker создает брокер диалогов
func NewBroker() *Broker {
	return &Broker{
		pending: make(map[uuid.UUID]*pendingDialog),
	}
}

// Request регистрирует диалог и блокируется до ответа или отмены контекста
func (b *Broker) Request(ctx context.Context, kind Kind, prompt string, options []string) (string, error) {
	p := &pendingDialog{
		dialog: Dialog{
			ID:      uuid.New(),
			Kind:    kind,
			Prompt:  prompt,
			Options: options,
		},
		answer: make(chan string, 1),
	}

	b.mu.Lock()
	b.pending[p.dialog.ID] = p
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.pending, p.dialog.ID)
		b.mu.Unlock()
	}()

	select {
	case answer := <-p.answer:
		return answer, nil
	case <-ctx.Done():
		return "", fmt.Errorf("dialog %s abandoned: %w", p.dialog.ID, ctx.Err())
	}
}

// Resolve доставляет ответ ожидающему диалогу
func (b *Broker) Resolve(id uuid.UUID, answer string) error {
	b.mu.Lock()
	p, ok := b.pending[id]
	if ok {
		delete(b.pending, id)
	}
	b.mu.Unlock()

	if !ok {
		return ErrUnknownDialog
	}
	p.answer <- answer
	return nil
}

// Pending возвращает снимок ожидающих диалогов
func (b *Broker) Pending() []Dialog {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Dialog, 0, len(b.pending))
	for _, p := range b.pending {
		out = append(out, p.dialog)
	}
	return out
}
