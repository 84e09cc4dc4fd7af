package view_test

import (
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/borkshop/termites/internal/view"
)

func TestLogs(t *testing.T) {
	var logs view.Logs
	logs.Init(3)
	assert.Empty(t, logs.Lines())

	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&logs, "message %d\n", i)
		if i < 3 {
			assert.Len(t, logs.Lines(), i)
			continue
		}
		assert.Equal(t, []string{
			fmt.Sprintf("message %d", i-2),
			fmt.Sprintf("message %d", i-1),
			fmt.Sprintf("message %d", i),
		}, logs.Lines())
	}

	lines := logs.Lines()
	lines[0] = "mutated"
	assert.Equal(t, "message 3", logs.Lines()[0])
}

func TestLogs_Write(t *testing.T) {
	var logs view.Logs
	logs.Init(10)

	for _, tc := range []struct {
		write    string
		expected []string
	}{
		{"one\n", []string{"one"}},
		{"two\nthr", []string{"one", "two"}},
		{"ee\n", []string{"one", "two", "three"}},
		{"\nfour\nfive\n", []string{"one", "two", "three", "", "four", "five"}},
		{"six", []string{"one", "two", "three", "", "four", "five"}},
	} {
		n, err := logs.Write([]byte(tc.write))
		assert.NoError(t, err)
		assert.Equal(t, len(tc.write), n)
		assert.Equal(t, tc.expected, logs.Lines(), "after %q", tc.write)
	}
}

func TestLogs_logger(t *testing.T) {
	var logs view.Logs
	logs.Init(2)
	logger := log.New(&logs, "termites: ", 0)
	logger.Printf("paused at %v", "t3")
	logger.Println("resumed")
	assert.Equal(t, []string{"termites: paused at t3", "termites: resumed"}, logs.Lines())
}

func TestLogs_uninitialized(t *testing.T) {
	var logs view.Logs
	assert.PanicsWithValue(t, "log buffer used before Init", func() {
		logs.Write([]byte("nope\n"))
	})
	assert.Panics(t, func() { logs.Init(0) })
}
