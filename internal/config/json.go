package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		SignerKey          string `json:"signer_key"`
		KeystorePath       string `json:"keystore_path"`
		KeystorePassphrase string `json:"keystore_passphrase"`
		Destination        string `json:"destination"`
		ChainID            int64  `json:"chain_id"`
		Verifier           string `json:"verifier"`
		NameMaxLength      int    `json:"name_max_length"`
		LogLevel           string `json:"log_level"`
		LogDir             string `json:"log_dir"`
		Version            string `json:"version"`
	} `json:"app,omitempty"`

	Decryption struct {
		GrantDuration Duration `json:"grant_duration"`
		Timeout       Duration `json:"timeout"`
	} `json:"decryption,omitempty"`

	Adapter struct {
		Mode           string   `json:"mode"`
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		ACLToken       string   `json:"acl_token"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Vault struct {
			DSN string `json:"dsn"`
		} `json:"vault,omitempty"`

		Ciphertext struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
			Dir    string `json:"dir"`
		} `json:"ciphertext,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Engine struct {
		KMSKeyURI        string `json:"kms_key_uri"`
		WrappedMasterKey string `json:"wrapped_master_key"`
		WidthBits        int    `json:"width_bits"`
	} `json:"engine,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Workers struct {
		GCInterval     Duration `json:"gc_interval"`
		GCDiscardRatio float64  `json:"gc_discard_ratio"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SignerKey:          j.App.SignerKey,
			KeystorePath:       j.App.KeystorePath,
			KeystorePassphrase: j.App.KeystorePassphrase,
			Destination:        j.App.Destination,
			ChainID:            j.App.ChainID,
			Verifier:           j.App.Verifier,
			NameMaxLength:      j.App.NameMaxLength,
			LogLevel:           j.App.LogLevel,
			LogDir:             j.App.LogDir,
			Version:            j.App.Version,
		},
		Decryption: Decryption{
			GrantDuration: time.Duration(j.Decryption.GrantDuration),
			Timeout:       time.Duration(j.Decryption.Timeout),
		},
		Adapter: Adapter{
			Mode:           j.Adapter.Mode,
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			ACLToken:       j.Adapter.ACLToken,
		},
		Storage: Storage{
			Vault: Vault{DSN: j.Storage.Vault.DSN},
			Ciphertext: Ciphertext{
				Driver: j.Storage.Ciphertext.Driver,
				DSN:    j.Storage.Ciphertext.DSN,
				Dir:    j.Storage.Ciphertext.Dir,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			RateLimit:      j.Server.RateLimit,
			RateBurst:      j.Server.RateBurst,
			CORSOrigins:    j.Server.CORSOrigins,
		},
		Engine: Engine{
			KMSKeyURI:        j.Engine.KMSKeyURI,
			WrappedMasterKey: j.Engine.WrappedMasterKey,
			WidthBits:        j.Engine.WidthBits,
		},
		Auth: Auth{
			TokenSignKey:  j.Auth.TokenSignKey,
			TokenIssuer:   j.Auth.TokenIssuer,
			TokenDuration: time.Duration(j.Auth.TokenDuration),
		},
		Workers: Workers{
			GCInterval:     time.Duration(j.Workers.GCInterval),
			GCDiscardRatio: j.Workers.GCDiscardRatio,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
