package lookup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/zip-lookup/internal/model"
)

const beverlyHills = `{"post code":"90210","country":"United States","country abbreviation":"US","places":[{"place name":"Beverly Hills","longitude":"-118.4","state":"California","state abbreviation":"CA","latitude":"34.09"}]}`

// postalServer serves canned bodies per zip and counts requests.
type postalServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newPostalServer(t *testing.T, handler func(w http.ResponseWriter, zip string)) *postalServer {
	t.Helper()
	ps := &postalServer{}
	ps.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ps.hits.Add(1)
		zip := strings.TrimPrefix(r.URL.Path, "/us/")
		handler(w, zip)
	}))
	t.Cleanup(ps.Close)
	return ps
}

func cannedHandler(w http.ResponseWriter, zip string) {
	w.Header().Set("Content-Type", "application/json")
	switch zip {
	case "90210":
		_, _ = w.Write([]byte(beverlyHills))
	case "11111":
		_, _ = w.Write([]byte(`{"post code":"11111","places":[]}`))
	case "22222":
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`oops`))
	case "33333":
		_, _ = w.Write([]byte(`{"post code":`))
	case "44444":
		_, _ = w.Write([]byte(`{}`))
	case "55555":
		// empty 200 body
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{}`))
	}
}

func TestNewService(t *testing.T) {
	service := NewService("", 0)

	assert.Equal(t, DefaultBaseURL, service.baseURL)
	assert.Zero(t, service.timeout)
	assert.Zero(t, service.ActiveCount())

	service.SetBaseURL("http://example.test/ ")
	assert.Equal(t, "http://example.test", service.baseURL)

	service.SetTimeout(-time.Second)
	assert.Zero(t, service.timeout)
}

func TestLookupOutcomes(t *testing.T) {
	server := newPostalServer(t, cannedHandler)
	service := NewService(server.URL, time.Second)

	tests := []struct {
		zip        string
		outcome    model.Outcome
		statusCode int
		places     int
	}{
		{"90210", model.OutcomeFound, http.StatusOK, 1},
		{"11111", model.OutcomeNoPlaces, http.StatusOK, 0},
		{"00000", model.OutcomeNotFound, http.StatusNotFound, 0},
		{"44444", model.OutcomeNotFound, http.StatusOK, 0},
		{"22222", model.OutcomeHTTPError, http.StatusInternalServerError, 0},
		{"33333", model.OutcomeParseError, http.StatusOK, 0},
		{"55555", model.OutcomeParseError, http.StatusOK, 0},
	}

	for _, test := range tests {
		t.Run(test.zip, func(t *testing.T) {
			result, err := service.Lookup(context.Background(), test.zip)
			require.NoError(t, err)
			assert.Equal(t, test.zip, result.Zip)
			assert.Equal(t, test.outcome, result.Outcome)
			assert.Equal(t, test.statusCode, result.StatusCode)
			assert.Len(t, result.Places, test.places)
			assert.Equal(t, test.outcome.IsFailure(), result.Err != nil)
		})
	}
}

func TestLookupFoundDecodesPlaces(t *testing.T) {
	server := newPostalServer(t, cannedHandler)
	service := NewService(server.URL, 0)

	result, err := service.Lookup(context.Background(), "90210")
	require.NoError(t, err)
	require.Len(t, result.Places, 1)

	assert.Equal(t, "90210", result.PostCode)
	assert.Equal(t, model.Place{
		State:             "California",
		StateAbbreviation: "CA",
		PlaceName:         "Beverly Hills",
		Latitude:          "34.09",
		Longitude:         "-118.4",
	}, result.Places[0])
}

func TestLookupHTTPErrorWrapsSentinel(t *testing.T) {
	server := newPostalServer(t, cannedHandler)
	service := NewService(server.URL, 0)

	result, err := service.Lookup(context.Background(), "22222")
	require.NoError(t, err)
	assert.True(t, errors.Is(result.Err, ErrUnexpectedStatus))
}

func TestLookupInvalidZipMakesNoRequest(t *testing.T) {
	server := newPostalServer(t, cannedHandler)
	service := NewService(server.URL, 0)

	for _, zip := range []string{"", "9021", "902101", "abcde", "9021x"} {
		_, err := service.Lookup(context.Background(), zip)
		assert.ErrorIs(t, err, model.ErrInvalidZip, zip)

		task, ok := service.Dispatch(zip)
		assert.False(t, ok, zip)
		assert.Nil(t, task)
	}

	assert.Zero(t, server.hits.Load())
}

func TestLookupNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	service := NewService(url, time.Second)
	result, err := service.Lookup(context.Background(), "90210")
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeNetworkError, result.Outcome)
	assert.Zero(t, result.StatusCode)
	assert.Error(t, result.Err)
}

func TestLookupTimeout(t *testing.T) {
	release := make(chan struct{})
	server := newPostalServer(t, func(w http.ResponseWriter, zip string) {
		<-release
	})
	defer close(release)

	service := NewService(server.URL, 20*time.Millisecond)
	result, err := service.Lookup(context.Background(), "90210")
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeNetworkError, result.Outcome)
	assert.ErrorIs(t, result.Err, context.DeadlineExceeded)
}

func TestLookupCountsOutcomes(t *testing.T) {
	server := newPostalServer(t, cannedHandler)
	service := NewService(server.URL, 0)

	counter := lookupsTotal.WithLabelValues(model.OutcomeNotFound.String())
	before := testutil.ToFloat64(counter)

	_, err := service.Lookup(context.Background(), "00000")
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestDispatchInvokesCallbackOnce(t *testing.T) {
	server := newPostalServer(t, cannedHandler)
	service := NewService(server.URL, time.Second)

	done := make(chan *model.LookupTask, 4)
	service.SetResultCallback(func(task *model.LookupTask) {
		done <- task
	})

	dispatched, ok := service.Dispatch("90210")
	require.True(t, ok)
	require.NotNil(t, dispatched)
	assert.True(t, strings.HasPrefix(dispatched.ID, TaskIDPrefix))

	select {
	case task := <-done:
		assert.Equal(t, dispatched.ID, task.ID)
		assert.Equal(t, model.TaskStatusCompleted, task.Status)
		assert.Equal(t, model.OutcomeFound, task.Result.Outcome)
	case <-time.After(2 * time.Second):
		t.Fatal("callback was not invoked")
	}

	select {
	case task := <-done:
		t.Fatalf("unexpected second callback for %s", task.ID)
	case <-time.After(50 * time.Millisecond):
	}

	assert.Zero(t, service.ActiveCount())
}

func TestDispatchDoesNotDeduplicate(t *testing.T) {
	server := newPostalServer(t, cannedHandler)
	service := NewService(server.URL, time.Second)

	var wg sync.WaitGroup
	wg.Add(3)
	service.SetResultCallback(func(*model.LookupTask) { wg.Done() })

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		task, ok := service.Dispatch("90210")
		require.True(t, ok)
		ids[task.ID] = true
	}

	wg.Wait()
	assert.Len(t, ids, 3)
	assert.EqualValues(t, 3, server.hits.Load())
}

func TestDispatchLastCompletedWins(t *testing.T) {
	slow := make(chan struct{})
	server := newPostalServer(t, func(w http.ResponseWriter, zip string) {
		if zip == "90210" {
			<-slow
		}
		cannedHandler(w, zip)
	})

	service := NewService(server.URL, 0)
	order := make(chan string, 2)
	service.SetResultCallback(func(task *model.LookupTask) {
		order <- task.Zip
	})

	_, ok := service.Dispatch("90210")
	require.True(t, ok)
	_, ok = service.Dispatch("00000")
	require.True(t, ok)

	assert.Equal(t, "00000", <-order)
	close(slow)
	assert.Equal(t, "90210", <-order)
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	id2 := generateTaskID()

	assert.NotEqual(t, id1, id2)
	assert.True(t, strings.HasPrefix(id1, TaskIDPrefix))
	assert.Len(t, id1, len(TaskIDPrefix)+36)
}

func TestDecodePostalResponse(t *testing.T) {
	resp, err := decodePostalResponse([]byte(beverlyHills))
	require.NoError(t, err)
	require.NotNil(t, resp.PostCode)
	assert.Equal(t, "90210", *resp.PostCode)
	assert.Equal(t, "US", resp.CountryAbbreviation)

	_, err = decodePostalResponse(nil)
	assert.ErrorIs(t, err, ErrEmptyBody)

	_, err = decodePostalResponse([]byte("<html>"))
	assert.Error(t, err)
}
