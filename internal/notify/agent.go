package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"
	"github.com/zalando/go-keyring"

	"steady/internal/constants"
)

var (
	findProcessFunc  = ps.FindProcess
	keyringGetSecret = keyring.Get
)

// Agent is the client side of the local delivery agent: a tray process that
// renders banners on behalf of the CLI. The agent advertises its webhook
// port and pid through a lockfile in the config directory and keeps its
// shared secret in the OS keyring.
type Agent struct {
	configDir string
}

// PushPayload is the webhook body the agent accepts.
type PushPayload struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	DurationMs uint32 `json:"duration_ms"`
}

func NewAgent(configDir string) *Agent {
	return &Agent{configDir: configDir}
}

// Reachable reports whether a live, validated agent is accepting pushes.
func (a *Agent) Reachable() bool {
	_, _, err := a.discover()
	return err == nil
}

// Notify delivers one banner through the agent webhook.
func (a *Agent) Notify(title, body string) error {
	port, secret, err := a.discover()
	if err != nil {
		return err
	}

	payload := PushPayload{
		Title:      title,
		Body:       body,
		DurationMs: constants.NotificationDurationMs,
	}
	return pushNotification(port, secret, payload)
}

// discover reads the agent lockfile, validates the advertised process and
// fetches the webhook secret from the OS keyring.
func (a *Agent) discover() (string, string, error) {
	lockfilePath := filepath.Join(a.configDir, constants.AgentLockfileName)
	port, pid, err := parseLockfile(lockfilePath)
	if err != nil {
		return "", "", err
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("steady-agent process not running")
	}
	if !strings.HasPrefix(process.Executable(), constants.AgentExecutablePrefix) {
		return "", "", fmt.Errorf("process with PID %d is not steady-agent (is %s)", pid, process.Executable())
	}

	secret, err := keyringGetSecret(constants.AppName, constants.AgentSecretKeyringUser)
	if err != nil {
		return "", "", fmt.Errorf("agent webhook secret not available: %w", err)
	}
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("agent webhook secret is empty")
	}

	return port, secret, nil
}

// parseLockfile reads "port|pid" from the agent lockfile.
func parseLockfile(path string) (string, int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", 0, errors.New("steady-agent is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return "", 0, errors.New("agent lockfile is malformed")
	}

	port := strings.TrimSpace(parts[0])
	if port == "" {
		return "", 0, errors.New("port in agent lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", 0, errors.New("invalid port number in agent lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", 0, fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, errors.New("invalid process ID in agent lockfile")
	}

	return port, pid, nil
}

func pushNotification(port string, secret string, payload PushPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Steady-Secret", secret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	respBody, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification push failed with status %d: %s", res.StatusCode, string(respBody))
}
