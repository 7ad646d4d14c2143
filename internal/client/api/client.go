package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/tasksync/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с sync-сервером
type Client struct {
	httpClient   *http.Client
	baseURL      string
	maxBatchSize int
}

// NewClient создает новый API клиент.
// maxBatchSize ограничивает размер исходящего батча; батч большего размера
// отклоняется локально с ErrBatchTooLarge. Неположительное значение
// заменяется дефолтом api.MaxBatchSize.
func NewClient(baseURL string, maxBatchSize int) *Client {
	if maxBatchSize <= 0 {
		maxBatchSize = api.MaxBatchSize
	}

	return &Client{
		baseURL:      baseURL,
		maxBatchSize: maxBatchSize,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// Initialize регистрирует новую реплику на сервере
func (c *Client) Initialize(ctx context.Context, req api.InitializeRequest) (*api.InitializeResponse, error) {
	var resp api.InitializeResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/initialize", req.NodeID, req, &resp); err != nil {
		return nil, fmt.Errorf("initialize request failed: %w", err)
	}
	return &resp, nil
}

// Synchronize выполняет один sync-раунд: отправляет батч локальных изменений
// и получает изменения сервера. Батч больше maxBatchSize отклоняется локально
// до какого-либо сетевого вызова.
func (c *Client) Synchronize(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
	if len(req.Changes) > c.maxBatchSize {
		return nil, fmt.Errorf("%w: %d changes exceed limit %d", ErrBatchTooLarge, len(req.Changes), c.maxBatchSize)
	}

	var resp api.SyncResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/synchronize", req.NodeID, req, &resp); err != nil {
		return nil, fmt.Errorf("synchronize request failed: %w", err)
	}
	return &resp, nil
}

// GetState возвращает последнее известное серверу слитое состояние.
// Диагностический эндпоинт для сверки расхождений.
func (c *Client) GetState(ctx context.Context, nodeID string) (*api.StateResponse, error) {
	var resp api.StateResponse
	url := fmt.Sprintf("/api/v1/sync/state/%s", nodeID)
	if err := c.doRequest(ctx, http.MethodGet, url, nodeID, nil, &resp); err != nil {
		return nil, fmt.Errorf("get state request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос и классифицирует ошибки по таксономии
// транспорта: сетевые отказы, таймауты и 5xx временные, остальное нет.
// nodeID передается в заголовке X-Node-ID, сервер использует его как ключ
// rate limiting'а.
func (c *Client) doRequest(ctx context.Context, method, path, nodeID string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if nodeID != "" {
		req.Header.Set("X-Node-ID", nodeID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyStatusError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// classifyTransportError сводит ошибки http.Client к таксономии транспорта
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
}

// classifyStatusError сводит неуспешные статус коды к таксономии транспорта
func classifyStatusError(statusCode int, respBody []byte) error {
	message := string(respBody)
	var errResp api.ErrorResponse
	if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
	}

	switch {
	case statusCode >= 500:
		return fmt.Errorf("%w (%d): %s", ErrServerError, statusCode, message)
	case statusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w (%d): %s", ErrServerError, statusCode, message)
	case statusCode == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w (%d): %s", ErrBatchTooLarge, statusCode, message)
	default:
		return fmt.Errorf("request failed with status %d: %s", statusCode, message)
	}
}
