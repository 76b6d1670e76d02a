// Package http configures the resty client used to talk to the server API.
package http

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Opt configures a *resty.Client.
type Opt func(*resty.Client) error

// New creates a resty.Client for baseURL and applies opts.
func New(baseURL string, opts ...Opt) (*resty.Client, error) {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// RetryPolicy describes the parameters for HTTP request retry logic.
type RetryPolicy struct {
	Count   int           // Number of retry attempts
	Wait    time.Duration // Wait time between retries
	MaxWait time.Duration // Maximum wait time between retries
}

func (p RetryPolicy) valid() bool {
	return p.Count > 0 || p.Wait > 0 || p.MaxWait > 0
}

// WithRetryPolicy applies the first policy with a positive field. Retries
// happen on transport errors and 5xx answers.
func WithRetryPolicy(policies ...RetryPolicy) Opt {
	return func(c *resty.Client) error {
		for _, policy := range policies {
			if !policy.valid() {
				continue
			}
			if policy.Count > 0 {
				c.SetRetryCount(policy.Count)
			}
			if policy.Wait > 0 {
				c.SetRetryWaitTime(policy.Wait)
			}
			if policy.MaxWait > 0 {
				c.SetRetryMaxWaitTime(policy.MaxWait)
			}
			c.AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || r.StatusCode() >= http.StatusInternalServerError
			})
			break
		}
		return nil
	}
}

// WithTimeout sets the request timeout to the first positive value.
func WithTimeout(timeouts ...time.Duration) Opt {
	return func(c *resty.Client) error {
		for _, t := range timeouts {
			if t > 0 {
				c.SetTimeout(t)
				break
			}
		}
		return nil
	}
}
