// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sessions provides functions that return AWS sessions to use in the AWS SDK.
package sessions

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/cloudslash/logsweeper/internal/pkg/version"
)

const (
	userAgentHeader = "User-Agent"

	clientTimeout = 30 * time.Second
)

// Provider creates sessions.
type Provider struct {
	region  string
	profile string
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithRegion overrides the region of every session the provider creates.
func WithRegion(region string) ProviderOption {
	return func(p *Provider) {
		p.region = region
	}
}

// WithProfile makes the provider create sessions against the named AWS profile
// instead of the default one.
func WithProfile(profile string) ProviderOption {
	return func(p *Provider) {
		p.profile = profile
	}
}

// NewProvider returns a session Provider.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Session returns a session configured against the provider's profile and region.
// Shared config files ("~/.aws/config") are honored.
func (p *Provider) Session() (*session.Session, error) {
	conf := newConfig()
	if p.region != "" {
		conf = conf.WithRegion(p.region)
	}
	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *conf,
		SharedConfigState: session.SharedConfigEnable,
		Profile:           p.profile,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if aws.StringValue(sess.Config.Region) == "" {
		return nil, &errMissingRegion{}
	}
	sess.Handlers.Build.PushBackNamed(userAgentHandler())
	return sess, nil
}

// newConfig returns a config with an end-to-end request timeout and verbose credentials errors.
func newConfig() *aws.Config {
	c := &http.Client{
		Timeout: clientTimeout,
	}
	return aws.NewConfig().
		WithHTTPClient(c).
		WithCredentialsChainVerboseErrors(true)
}

// userAgentHandler returns a http request handler that sets a custom user agent to all aws requests.
func userAgentHandler() request.NamedHandler {
	return request.NamedHandler{
		Name: "UserAgentHandler",
		Fn: func(r *request.Request) {
			userAgent := r.HTTPRequest.Header.Get(userAgentHeader)
			r.HTTPRequest.Header.Set(userAgentHeader,
				fmt.Sprintf("logsweeper/%s (%s) %s", version.Version, runtime.GOOS, userAgent))
		},
	}
}
