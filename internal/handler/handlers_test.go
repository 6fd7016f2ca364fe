package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/mock"
)

func TestNewHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockGateway(ctrl)

	cfg := &config.GatewayConfig{Server: config.Server{HTTPAddress: ":8080"}}
	handlers, err := NewHandlers(gateway, cfg, nil, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)

	_, err = NewHandlers(gateway, &config.GatewayConfig{}, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
