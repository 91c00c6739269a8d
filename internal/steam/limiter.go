package steam

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Upstream rate-limit groups. Calls within a group are serialized and spaced
// by the group's minimum interval; different groups proceed independently.
const (
	GroupStoreDetail = "store-detail"
	GroupTagLookup   = "tag-lookup"
)

const (
	backoffBase = time.Second
	maxAttempts = 5
)

type group struct {
	mu          sync.Mutex
	minInterval time.Duration
	lastCall    time.Time
}

// Limiter serializes outbound HTTP calls per named group so that no two
// calls to the same group start closer together than the group's minimum
// interval, and retries rate-limited or server-error responses with
// exponential backoff. After retries are exhausted the last failing response
// is returned rather than an error; callers inspect the status code.
type Limiter struct {
	http   *http.Client
	clock  Clock
	log    *zap.Logger
	groups map[string]*group
}

// NewLimiter builds a Limiter with one group per entry in intervals.
func NewLimiter(httpClient *http.Client, clock Clock, log *zap.Logger, intervals map[string]time.Duration) *Limiter {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	groups := make(map[string]*group, len(intervals))
	for name, iv := range intervals {
		groups[name] = &group{minInterval: iv}
	}
	return &Limiter{
		http:   httpClient,
		clock:  clock,
		log:    log,
		groups: groups,
	}
}

// Do executes req under the named group's rate limit. The group's last-call
// timestamp is advanced only after the call fully resolves, so a slow call
// cannot let the next one start early.
func (l *Limiter) Do(ctx context.Context, groupName string, req *http.Request) (*http.Response, error) {
	g, ok := l.groups[groupName]
	if !ok {
		g = &group{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.lastCall.IsZero() {
		wait := g.minInterval - l.clock.Now().Sub(g.lastCall)
		if wait > 0 {
			if err := l.clock.Sleep(ctx, wait); err != nil {
				return nil, err
			}
		}
	}

	resp, err := l.doWithRetry(ctx, groupName, req)
	g.lastCall = l.clock.Now()
	return resp, err
}

func (l *Limiter) doWithRetry(ctx context.Context, groupName string, req *http.Request) (*http.Response, error) {
	var resp *http.Response
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			delay := backoffBase << (attempt - 1)
			// An upstream Retry-After is a floor, not a replacement.
			if ra := retryAfter(resp); ra > delay {
				delay = ra
			}
			drain(resp)
			l.log.Warn("upstream retry",
				zap.String("group", groupName),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
			)
			if err := l.clock.Sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		var err error
		resp, err = l.http.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode < 500 {
			return resp, nil
		}
	}
	// Out of attempts; hand the failing response back for inspection.
	return resp, nil
}

// retryAfter parses a Retry-After header, supporting both delay-seconds and
// HTTP-date forms. Returns 0 when absent or unparseable.
func retryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return time.Until(at)
	}
	return 0
}

func drain(resp *http.Response) {
	if resp == nil {
		return
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}
