package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthReport is the outcome of one HealthCheck. Details are flat strings so
// callers can merge them into their own health payloads.
type HealthReport struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client    *Client
	timeout   time.Duration
	mu        sync.Mutex
	lastCheck time.Time
	lastError string
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{
		client:  client,
		timeout: 2 * time.Second,
	}
}

// HealthCheck performs a health check on the Redis connection
func (h *HealthChecker) HealthCheck() HealthReport {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastError = ""
	pingResult := h.testPing()
	operationResult := pingResult && h.testBasicOperations()
	poolResult := pingResult && h.testConnectionPool()

	status := StatusDown
	if pingResult && operationResult && poolResult {
		status = StatusUp
	}

	h.lastCheck = time.Now()
	config := h.client.GetConfig()

	return HealthReport{
		Status: status,
		Details: map[string]string{
			"host":                  config.Host,
			"port":                  strconv.Itoa(config.Port),
			"database":              strconv.Itoa(config.Database),
			"ping_successful":       strconv.FormatBool(pingResult),
			"operations_successful": strconv.FormatBool(operationResult),
			"pool_healthy":          strconv.FormatBool(poolResult),
			"last_check":            h.lastCheck.Format(time.RFC3339),
			"last_error":            h.lastError,
		},
	}
}

// testPing tests basic connectivity to Redis
func (h *HealthChecker) testPing() bool {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	if err := h.client.Ping(ctx); err != nil {
		h.lastError = fmt.Sprintf("ping failed: %v", err)
		return false
	}
	return true
}

// testBasicOperations round-trips a short-lived key
func (h *HealthChecker) testBasicOperations() bool {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	testKey := "health_check_test"
	testValue := "test_value"

	if err := h.client.Set(ctx, testKey, testValue, time.Minute); err != nil {
		h.lastError = fmt.Sprintf("set operation failed: %v", err)
		return false
	}

	value, err := h.client.Get(ctx, testKey)
	if err != nil {
		h.lastError = fmt.Sprintf("get operation failed: %v", err)
		return false
	}
	if value != testValue {
		h.lastError = fmt.Sprintf("value mismatch: expected %s, got %s", testValue, value)
		return false
	}

	if err := h.client.Delete(ctx, testKey); err != nil {
		h.lastError = fmt.Sprintf("delete operation failed: %v", err)
		return false
	}
	return true
}

// testConnectionPool tests the connection pool health
func (h *HealthChecker) testConnectionPool() bool {
	stats := h.client.Stats()
	if stats.TotalConns == 0 && stats.IdleConns == 0 {
		h.lastError = "connection pool is not accessible"
		return false
	}
	return true
}
