package restyutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	mu       sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id string, contents string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages[id] = contents
}

func TestInstrumentClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	output := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	client.SetHeader("X-Test", "yes")
	InstrumentClient(client, output)

	for i := 0; i < 2; i++ {
		_, err := client.R().Get(srv.URL + "/summoner")
		require.NoError(t, err)
	}

	require.Len(t, output.messages, 2)
	message := output.messages["2"]
	require.Contains(t, message, "GET "+srv.URL+"/summoner")
	require.Contains(t, message, "X-Test: yes")
	require.Contains(t, message, "200")
	require.Contains(t, message, "Content-Type: text/html")
	require.Contains(t, message, "<html>ok</html>")
}

func TestInstrumentClientWithoutOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	client := resty.New()
	InstrumentClient(client, nil)
	_, err := client.R().Get(srv.URL)
	require.NoError(t, err)
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dump")
	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)

	output.Write("1", "hello")
	contents, err := os.ReadFile(filepath.Join(dir, "1.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(contents))
}
