package printer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/epos-dev/go-epos/epos"
	"github.com/epos-dev/go-epos/soap"
	"github.com/epos-dev/go-epos/status"
)

// The device treats requests with a cache validator as unchanged and answers
// from cache; the epoch date forces it to parse every request.
const ifModifiedSince = "Thu, 01 Jan 1970 00:00:00 GMT"

// Job records the outcome of a dispatched print job.
type Job struct {
	// ID is the print job ID sent with the request.
	ID string
	// Response is the decoded device response.
	Response *status.Response
	// Done is the time the exchange completed.
	Done time.Time
}

// Client dispatches print jobs to a single device endpoint.
//
// A Client is safe for concurrent use; each Print call performs an independent
// HTTP exchange.
type Client struct {
	cfg     *Config
	metrics ClientMetrics

	// jobs retains completed jobs by print job ID when WithJobID is enabled.
	jobs *xsync.MapOf[string, *Job]

	// historyMu guards history, the eviction order of the jobs map.
	historyMu sync.Mutex
	history   []string
}

// NewClient creates a client from the given configuration.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	return &Client{
		cfg:  cfg,
		jobs: xsync.NewMapOf[string, *Job](),
	}, nil
}

// Metrics returns the client's dispatch metrics.
func (c *Client) Metrics() *ClientMetrics {
	return &c.metrics
}

// Job returns the retained result of a completed print job by its job ID.
// Results are retained only when WithJobID is enabled, and the oldest results
// are evicted beyond the configured history size.
func (c *Client) Job(id string) (*Job, bool) {
	return c.jobs.Load(id)
}

// Print dispatches the document as one print job: it consumes the document,
// wraps its command stream in the transport envelope, performs exactly one
// HTTP POST, and decodes the reply.
//
// The document is spent afterwards, even on failure; a new document is
// required for the next job. Cancellation and network timeouts are controlled
// by ctx.
//
// It returns the decoded response on success. A device-reported failure is
// returned as a *ResponseError carrying the full response; transport failures
// and malformed replies are returned as-is. Retrying is a caller decision.
func (c *Client) Print(ctx context.Context, doc *epos.Document) (*status.Response, error) {
	if doc == nil {
		return nil, ErrDocumentNil
	}

	fragments, err := doc.Take()
	if err != nil {
		return nil, err
	}

	jobID := ""
	if c.cfg.autoJobID {
		jobID = uuid.NewString()
	}

	c.metrics.incJobSendCount()
	c.metrics.incJobInflightCount()
	defer c.metrics.decJobInflightCount()

	resp, err := c.exchange(ctx, soap.BuildRequest(doc.Mode(), fragments, jobID))
	if err != nil {
		c.metrics.incJobErrCount()
		c.cfg.logger.Error("print job failed", "jobID", jobID, "error", err)
		return nil, err
	}

	if jobID != "" {
		c.recordJob(&Job{ID: jobID, Response: resp, Done: time.Now()})
	}

	if !resp.Success {
		c.metrics.incJobErrCount()
		c.cfg.logger.Error("device reported print failure", "jobID", jobID, "code", resp.Code, "status", resp.Status)
		return nil, &ResponseError{Response: resp}
	}

	c.cfg.logger.Debug("print job succeeded", "jobID", jobID, "status", resp.Status, "battery", resp.Battery)

	return resp, nil
}

// exchange performs the single HTTP POST of a print job and parses the reply
// envelope.
func (c *Client) exchange(ctx context.Context, body []byte) (*status.Response, error) {
	endpoint := *c.cfg.Endpoint()
	query := endpoint.Query()
	query.Set("devid", c.cfg.DeviceID())
	query.Set("timeout", fmt.Sprintf("%d", c.cfg.DeviceTimeout()))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("If-Modified-Since", ifModifiedSince)

	c.cfg.logger.Debug("posting print job", "url", endpoint.String(), "body", string(body))

	httpResp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post print job: %w", err)
	}
	defer httpResp.Body.Close()

	replyBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read reply: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrHTTPStatus, httpResp.Status)
	}

	c.cfg.logger.Debug("received reply", "status", httpResp.Status, "body", string(replyBody))

	return soap.ParseResponse(replyBody)
}

// recordJob retains a completed job and evicts the oldest one beyond the
// configured history size.
func (c *Client) recordJob(job *Job) {
	c.jobs.Store(job.ID, job)

	c.historyMu.Lock()
	defer c.historyMu.Unlock()

	c.history = append(c.history, job.ID)
	for len(c.history) > c.cfg.jobHistorySize {
		c.jobs.Delete(c.history[0])
		c.history = c.history[1:]
	}
}
