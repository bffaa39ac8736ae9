package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"stagelink/internal/pkg/config"
	"stagelink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFound    = errs.New("venue not found in directory")
	ErrDirectoryFailure = errs.New("venue directory unavailable")
)

// VenueDirectoryClient verifies venue identities against the external
// profile service. Every call is bounded by the configured timeout so a
// slow upstream degrades the booking confirm instead of hanging it.
type VenueDirectoryClient struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

func NewVenueDirectoryClient(cfg config.UpstreamConfig) *VenueDirectoryClient {
	return &VenueDirectoryClient{
		baseURL: cfg.VenueDirectoryURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		timeout: cfg.Timeout,
	}
}

func (c *VenueDirectoryClient) VerifyVenue(ctx context.Context, venueID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/venues/%s", c.baseURL, venueID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build venue directory request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "venue directory call failed"), ErrDirectoryFailure)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errs.Mark(errs.New(fmt.Sprintf("venue %s not registered", venueID)), ErrVenueNotFound)
	default:
		return errs.Mark(errs.New(fmt.Sprintf("venue directory returned status %d", resp.StatusCode)), ErrDirectoryFailure)
	}
}
