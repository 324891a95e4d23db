package dialog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestAndResolve(t *testing.T) {
	b := NewBroker()
	result := make(chan string, 1)

	go func() {
		answer, err := b.Request(context.Background(), KindLogoutConfirm, "Are you sure you want to logout?", []string{AnswerYes, AnswerNo})
		require.NoError(t, err)
		result <- answer
	}()

	// Ждем появления диалога в списке ожидающих
	var pending []Dialog
	require.Eventually(t, func() bool {
		pending = b.Pending()
		return len(pending) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, KindLogoutConfirm, pending[0].Kind)
	require.NoError(t, b.Resolve(pending[0].ID, AnswerYes))
	assert.Equal(t, AnswerYes, <-result)
	assert.Empty(t, b.Pending())
}

func TestRequest_AbandonedOnContextCancel(t *testing.T) {
	b := NewBroker()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	go func() {
		_, err := b.Request(ctx, KindEmergencyConfirm, "Are you in immediate danger?", nil)
		errCh <- err
	}()

	require.Eventually(t, func() bool { return len(b.Pending()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	err := <-errCh
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, b.Pending())
}

func TestResolve_UnknownDialog(t *testing.T) {
	b := NewBroker()

	err := b.Resolve(uuid.New(), AnswerNo)

	assert.ErrorIs(t, err, ErrUnknownDialog)
}

func TestResolve_SecondAnswerRejected(t *testing.T) {
	b := NewBroker()
	result := make(chan string, 1)

	go func() {
		answer, _ := b.Request(context.Background(), KindFilterSelect, "Select filter", []string{"All", "Theft"})
		result <- answer
	}()

	var pending []Dialog
	require.Eventually(t, func() bool {
		pending = b.Pending()
		return len(pending) == 1
	}, time.Second, 5*time.Millisecond)

	id := pending[0].ID
	require.NoError(t, b.Resolve(id, "Theft"))
	assert.ErrorIs(t, b.Resolve(id, "All"), ErrUnknownDialog)
	assert.Equal(t, "Theft", <-result)
}
