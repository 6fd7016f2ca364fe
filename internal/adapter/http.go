package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/SaurabViena/heirloom/internal/config"
	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/utils"
	"github.com/SaurabViena/heirloom/models"
)

// HTTPSession is a gateway client over the gateway's JSON API. The gateway
// keys are fetched once, on the first successful Ready.
type HTTPSession struct {
	client   *utils.HTTPClient
	aclToken string

	mu   sync.RWMutex
	keys *models.GatewayKeys

	logger *logger.Logger
}

// NewHTTPSession returns a session for the gateway at cfg.HTTPAddress.
func NewHTTPSession(cfg config.Adapter, log *logger.Logger) (*HTTPSession, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	return &HTTPSession{
		client:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		aclToken: strings.TrimSpace(cfg.ACLToken),
		logger:   log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Ready fetches the gateway keys if they are not cached yet.
func (s *HTTPSession) Ready(ctx context.Context) error {
	_, err := s.gatewayKeys(ctx)
	return err
}

// WidthBits returns the element width published by the gateway. Gateways
// that do not publish one use [models.DefaultWidthBits].
func (s *HTTPSession) WidthBits(ctx context.Context) (int, error) {
	keys, err := s.gatewayKeys(ctx)
	if err != nil {
		return 0, err
	}
	if keys.WidthBits == 0 {
		return models.DefaultWidthBits, nil
	}
	return keys.WidthBits, nil
}

func (s *HTTPSession) gatewayKeys(ctx context.Context) (models.GatewayKeys, error) {
	s.mu.RLock()
	keys := s.keys
	s.mu.RUnlock()
	if keys != nil {
		return *keys, nil
	}

	var fetched models.GatewayKeys
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&fetched).
		Get(routeKeys)
	if err != nil {
		return models.GatewayKeys{}, fmt.Errorf("%w: fetch gateway keys: %w", fhe.ErrNotReady, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GatewayKeys{}, fmt.Errorf("%w: fetch gateway keys: %w", fhe.ErrNotReady, err)
	}
	if len(fetched.NetworkKey) != 32 {
		return models.GatewayKeys{}, fmt.Errorf("%w: gateway returned a %d-byte network key", fhe.ErrNotReady, len(fetched.NetworkKey))
	}

	s.mu.Lock()
	s.keys = &fetched
	s.mu.Unlock()

	s.logger.Debug().Str("func", "*HTTPSession.gatewayKeys").
		Int64("chain_id", fetched.ChainID).
		Str("verifier", fetched.Verifier.Hex()).
		Msg("gateway keys loaded")

	return fetched, nil
}

func (s *HTTPSession) CreateBatch(destination, submitter common.Address) fhe.BatchBuilder {
	return &httpBatch{session: s, destination: destination, submitter: submitter}
}

func (s *HTTPSession) GenerateKeypair() (models.Keypair, error) {
	return fhe.GenerateKeypair()
}

// BuildGrant uses the domain of the cached gateway keys, so Ready must have
// succeeded before.
func (s *HTTPSession) BuildGrant(publicKey []byte, destinations []common.Address, issuedAt time.Time, duration time.Duration) (models.UnsignedGrant, error) {
	s.mu.RLock()
	keys := s.keys
	s.mu.RUnlock()
	if keys == nil {
		return models.UnsignedGrant{}, fmt.Errorf("%w: gateway keys not loaded", fhe.ErrNotReady)
	}
	domain := fhe.GrantDomain{ChainID: keys.ChainID, Verifier: keys.Verifier}
	return domain.Build(publicKey, destinations, issuedAt, duration)
}

func (s *HTTPSession) DecryptBatch(ctx context.Context, req fhe.DecryptRequest) (map[models.Handle]models.FieldElement, error) {
	payload := models.UserDecryptPayload{
		Pairs:           make([]models.HandleContractPair, len(req.Pairs)),
		PublicKey:       req.Keypair.PublicKey,
		Signature:       req.Signature,
		Contracts:       req.Destinations,
		UserAddress:     req.Viewer,
		StartTimestamp:  req.IssuedAt.Unix(),
		DurationSeconds: int64(req.Duration / time.Second),
	}
	for i, p := range req.Pairs {
		payload.Pairs[i] = models.HandleContractPair{Handle: p.Handle, Contract: p.Destination}
	}

	var result models.UserDecryptResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post(routeUserDecrypt)
	if err != nil {
		return nil, fmt.Errorf("%w: user decrypt request: %w", fhe.ErrDecryptionFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	sealed := make(map[models.Handle][]byte, len(result.Results))
	for _, r := range result.Results {
		sealed[r.Handle] = r.Payload
	}
	values, err := fhe.OpenResults(req.Keypair, sealed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fhe.ErrDecryptionFailed, err)
	}
	return values, nil
}

func (s *HTTPSession) VerifyInput(ctx context.Context, destination, submitter common.Address, bundle models.CiphertextBundle) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(models.VerifyInputRequest{
			Destination: destination,
			Submitter:   submitter,
			Handles:     bundle.Handles,
			Proof:       bundle.Proof,
		}).
		Post(routeVerifyInput)
	if err != nil {
		return fmt.Errorf("%w: verify input request: %w", fhe.ErrNotReady, err)
	}
	return mapHTTPError(resp)
}

// Allow requires the ACL bearer token issued by the gateway operator.
func (s *HTTPSession) Allow(ctx context.Context, handles []models.Handle, account common.Address) error {
	if len(handles) == 0 {
		return nil
	}

	req := s.client.R().
		SetContext(ctx).
		SetBody(models.ACLRequest{Handles: handles, Account: account})
	if s.aclToken != "" {
		req.SetAuthToken(s.aclToken)
	}

	resp, err := req.Post(routeACL)
	if err != nil {
		return fmt.Errorf("%w: acl request: %w", fhe.ErrNotReady, err)
	}
	return mapHTTPError(resp)
}

type httpBatch struct {
	session     *HTTPSession
	destination common.Address
	submitter   common.Address
	values      []models.FieldElement
}

func (b *httpBatch) Append(value models.FieldElement) fhe.BatchBuilder {
	b.values = append(b.values, value)
	return b
}

func (b *httpBatch) Seal(ctx context.Context) (models.CiphertextBundle, error) {
	keys, err := b.session.gatewayKeys(ctx)
	if err != nil {
		return models.CiphertextBundle{}, err
	}

	boxes, err := fhe.SealInputs(keys.NetworkKey, b.destination, b.submitter, b.values)
	if err != nil {
		return models.CiphertextBundle{}, fmt.Errorf("%w: %w", fhe.ErrEncryptionFailed, err)
	}
	inputs := make([]hexutil.Bytes, len(boxes))
	for i, box := range boxes {
		inputs[i] = box
	}

	var bundle models.CiphertextBundle
	resp, err := b.session.client.R().
		SetContext(ctx).
		SetBody(models.InputsRequest{Destination: b.destination, Submitter: b.submitter, Inputs: inputs}).
		SetResult(&bundle).
		Post(routeInputs)
	if err != nil {
		return models.CiphertextBundle{}, fmt.Errorf("%w: inputs request: %w", fhe.ErrEncryptionFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CiphertextBundle{}, fmt.Errorf("%w: %w", fhe.ErrEncryptionFailed, err)
	}
	return bundle, nil
}
