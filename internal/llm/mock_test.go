package llm_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/davetashner/plotsleuth/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_ReturnsContent(t *testing.T) {
	m := llm.NewMockProvider(`{"answer": 42}`)

	resp, err := m.Complete(context.Background(), llm.Request{Prompt: "question"})
	require.NoError(t, err)

	assert.Equal(t, `{"answer": 42}`, resp.Content)
	assert.Equal(t, "mock", resp.Model)
}

func TestMockProvider_ReturnsError(t *testing.T) {
	boom := errors.New("upstream exploded")
	m := llm.NewMockProviderErr(boom)

	resp, err := m.Complete(context.Background(), llm.Request{Prompt: "question"})
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	m := llm.NewMockProvider("ok")

	_, err := m.Complete(context.Background(), llm.Request{Prompt: "first"})
	require.NoError(t, err)
	_, err = m.Complete(context.Background(), llm.Request{Prompt: "second", MaxTokens: 400})
	require.NoError(t, err)

	calls := m.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "first", calls[0].Prompt)
	assert.Equal(t, "second", calls[1].Prompt)
	assert.Equal(t, 400, calls[1].MaxTokens)
}

func TestMockProvider_RespectsContextCancellation(t *testing.T) {
	m := llm.NewMockProvider("ok")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := m.Complete(ctx, llm.Request{Prompt: "hi"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, context.Canceled)

	// Cancelled calls are not recorded.
	assert.Empty(t, m.Calls())
}

func TestMockProvider_ConcurrentCalls(t *testing.T) {
	m := llm.NewMockProvider("ok")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Complete(context.Background(), llm.Request{Prompt: "p"})
		}()
	}
	wg.Wait()

	assert.Len(t, m.Calls(), 10)
}
