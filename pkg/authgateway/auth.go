package authgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/restful-booker/messaging/pkg/httpclient"
)

const (
	ValidateEndpoint = "/auth/validate"
)

type AuthGateway interface {
	CheckAuth(ctx context.Context, token string) (bool, error)
}

type authGateway struct {
	client httpclient.HTTPClient
	config Config
}

func NewAuthGateway(cfg Config, client httpclient.HTTPClient) AuthGateway {
	return &authGateway{config: cfg, client: client}
}

// CheckAuth reports whether the auth service accepts token. Only a 200 counts as valid;
// transport failures are returned as errors.
func (a *authGateway) CheckAuth(ctx context.Context, token string) (bool, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(ValidateTokenRequest{Token: token}); err != nil {
		return false, fmt.Errorf("encoding error: %w", err)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}

	resp, err := a.client.Post(ctx, a.config.BaseURL+ValidateEndpoint, &buf, headers)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return false, ErrTimeout
		}

		return false, err
	}

	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == StatusOK, nil
}
