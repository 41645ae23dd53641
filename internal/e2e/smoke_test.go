package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	server := newBankServer(t)

	env := []string{
		"HOME=" + home,
		"AB_API_BASE_URL=" + server.URL + "/api/v1",
		"AB_STORAGE_SESSION_DIR=" + filepath.Join(home, "run"),
		"AB_STORAGE_USE_PASS=false",
	}

	_, stderr, err := runAB(t, binaryPath, env, "signin", "--email", "tony@stark.com", "--password", "password123", "--remember")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runAB(t, binaryPath, env, "profile")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Welcome back Tony Stark!")

	_, stderr, err = runAB(t, binaryPath, env, "signout", "--forget")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runAB(t, binaryPath, env, "profile")
	require.Error(t, err)
	assert.Contains(t, stderr, "sign in required")
}

func newBankServer(t *testing.T) *httptest.Server {
	t.Helper()

	const token = "aaa.bbb.ccc"
	write := func(w http.ResponseWriter, status int, body any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": status, "body": body})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/user/login", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]string{"token": token})
	})
	mux.HandleFunc("/api/v1/user/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			write(w, http.StatusUnauthorized, nil)
			return
		}
		write(w, http.StatusOK, map[string]string{"id": "42", "email": "tony@stark.com", "firstName": "Tony", "lastName": "Stark"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ab-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ab")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ab binary: %s", string(output))
	return binaryPath
}

func runAB(t *testing.T, binaryPath string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
