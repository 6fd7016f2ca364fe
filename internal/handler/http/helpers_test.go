package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/mock"
	"github.com/SaurabViena/heirloom/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "heirloom-gateway"
)

var (
	testDestination = common.HexToAddress("0x00000000000000000000000000000000000000d5")
	testSubmitter   = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	testViewer      = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

func testConfig() *config.GatewayConfig {
	return &config.GatewayConfig{
		App: config.App{Version: "v1.2.3"},
		Server: config.Server{
			HTTPAddress:    ":0",
			RequestTimeout: 5 * time.Second,
		},
		Auth: config.Auth{
			TokenSignKey:  testSignKey,
			TokenIssuer:   testIssuer,
			TokenDuration: time.Hour,
		},
	}
}

func newTestRouter(t *testing.T, cfg *config.GatewayConfig) (http.Handler, *mock.MockGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockGateway(ctrl)
	return NewHandler(gateway, cfg, nil, logger.Nop()).Init(), gateway
}

func do(t *testing.T, router http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func testHandle(b byte) models.Handle {
	var h models.Handle
	h[0] = b
	h[models.HandleLength-1] = b
	return h
}
