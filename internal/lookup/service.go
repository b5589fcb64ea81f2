package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/zip-lookup/internal/model"
)

// Postal service constants
const (
	DefaultBaseURL = "http://api.zippopotam.us"
	CountryPath    = "us"
	TaskIDPrefix   = "lookup-"

	// Upper bound on the body we are willing to read; real answers are a few KB
	MaxBodyBytes = 1 << 20
)

var (
	// ErrUnexpectedStatus is wrapped into results for non-success statuses other than 404.
	ErrUnexpectedStatus = errors.New("unexpected status from postal service")
	// ErrEmptyBody is returned when the service answers without a body.
	ErrEmptyBody = errors.New("empty response body")
)

// Service handles lookup operations
type Service struct {
	client  *http.Client
	baseURL string
	timeout time.Duration

	tasks      map[string]*model.LookupTask // in-flight tasks only
	tasksMutex sync.RWMutex
	onResult   func(*model.LookupTask) // callback for UI updates
}

// NewService creates a new lookup service. An empty baseURL selects
// DefaultBaseURL; a zero timeout means requests never time out.
func NewService(baseURL string, timeout time.Duration) *Service {
	s := &Service{
		client: &http.Client{},
		tasks:  make(map[string]*model.LookupTask),
	}
	s.SetBaseURL(baseURL)
	s.SetTimeout(timeout)
	return s
}

// SetHTTPClient replaces the HTTP client used for requests
func (s *Service) SetHTTPClient(client *http.Client) {
	if client == nil {
		return
	}
	s.tasksMutex.Lock()
	s.client = client
	s.tasksMutex.Unlock()
}

// SetResultCallback sets the callback function for completed lookups
func (s *Service) SetResultCallback(callback func(*model.LookupTask)) {
	s.tasksMutex.Lock()
	s.onResult = callback
	s.tasksMutex.Unlock()
}

// SetBaseURL sets the postal service endpoint
func (s *Service) SetBaseURL(baseURL string) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	s.tasksMutex.Lock()
	s.baseURL = baseURL
	s.tasksMutex.Unlock()
}

// SetTimeout sets the per-request timeout
func (s *Service) SetTimeout(timeout time.Duration) {
	if timeout < 0 {
		timeout = 0
	}
	s.tasksMutex.Lock()
	s.timeout = timeout
	s.tasksMutex.Unlock()
}

// Dispatch starts an asynchronous lookup for zip. Requests are never
// de-duplicated or cancelled, so when several are in flight the one that
// completes last is the one the UI ends up showing.
func (s *Service) Dispatch(zip string) (*model.LookupTask, bool) {
	if !model.IsValidZip(zip) {
		ignoredDispatches.Inc()
		return nil, false
	}

	task := model.NewLookupTask(generateTaskID(), zip)

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()
	lookupsInFlight.Inc()

	log.Printf("Dispatching lookup %s for %s", task.ID, zip)
	go s.runTask(task)

	return task, true
}

// Lookup performs a blocking lookup for zip
func (s *Service) Lookup(ctx context.Context, zip string) (model.LookupResult, error) {
	if _, err := model.ParseZip(zip); err != nil {
		ignoredDispatches.Inc()
		return model.LookupResult{Zip: zip}, fmt.Errorf("lookup %q: %w", zip, err)
	}

	started := time.Now()
	result := s.fetch(ctx, zip)
	observeResult(result, time.Since(started).Seconds())
	return result, nil
}

// ActiveCount returns the number of in-flight lookups
func (s *Service) ActiveCount() int {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return len(s.tasks)
}

// GetTask returns an in-flight task by ID
func (s *Service) GetTask(id string) (*model.LookupTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// runTask performs the request for a dispatched task and reports it
func (s *Service) runTask(task *model.LookupTask) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusRequesting
	s.tasksMutex.Unlock()

	result := s.fetch(context.Background(), task.Zip)

	s.tasksMutex.Lock()
	task.Complete(result)
	delete(s.tasks, task.ID)
	s.tasksMutex.Unlock()

	lookupsInFlight.Dec()
	observeResult(result, task.Duration().Seconds())

	if result.Outcome.IsFailure() {
		log.Printf("Lookup %s for %s failed (%s): %v", task.ID, task.Zip, result.Outcome, result.Err)
	} else {
		log.Printf("Lookup %s for %s completed: %s, %d places", task.ID, task.Zip, result.Outcome, len(result.Places))
	}

	s.notifyResult(task)
}

// fetch issues the GET request and classifies the response
func (s *Service) fetch(ctx context.Context, zip string) model.LookupResult {
	s.tasksMutex.RLock()
	client := s.client
	endpoint := s.baseURL + "/" + CountryPath + "/" + zip
	timeout := s.timeout
	s.tasksMutex.RUnlock()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.NewFailedResult(zip, model.OutcomeNetworkError, 0, fmt.Errorf("request creation failed: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return model.NewFailedResult(zip, model.OutcomeNetworkError, 0, fmt.Errorf("http request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return model.NewFailedResult(zip, model.OutcomeNetworkError, resp.StatusCode, fmt.Errorf("read response failed: %w", err))
	}

	// Unknown codes come back as 404 with an empty JSON object.
	if resp.StatusCode == http.StatusNotFound {
		return model.NewLookupResult(zip, resp.StatusCode, nil)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.NewFailedResult(zip, model.OutcomeHTTPError, resp.StatusCode,
			fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status))
	}

	decoded, err := decodePostalResponse(body)
	if err != nil {
		return model.NewFailedResult(zip, model.OutcomeParseError, resp.StatusCode, err)
	}

	return model.NewLookupResult(zip, resp.StatusCode, decoded)
}

// notifyResult calls the result callback if set
func (s *Service) notifyResult(task *model.LookupTask) {
	s.tasksMutex.RLock()
	callback := s.onResult
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(task)
	}
}

// generateTaskID generates a unique, time-ordered task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
