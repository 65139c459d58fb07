package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-keepass-http/internal/adapter"
	"github.com/MKhiriev/go-keepass-http/internal/config"
	"github.com/MKhiriev/go-keepass-http/internal/crypto"
	"github.com/MKhiriev/go-keepass-http/internal/logger"
	"github.com/MKhiriev/go-keepass-http/internal/recorder"
	"github.com/MKhiriev/go-keepass-http/internal/service"
	"github.com/MKhiriev/go-keepass-http/internal/store"
	"github.com/MKhiriev/go-keepass-http/internal/tui"
	"github.com/MKhiriev/go-keepass-http/models"
)

// App runs one credential lookup against the companion: restore or
// establish an association, send the configured query, and deliver the
// result.
type App struct {
	cfg *config.ClientConfig

	companion    adapter.CompanionAdapter
	associations store.AssociationRepository
	cipher       crypto.CipherService
	keyStore     crypto.KeyStore
	recorder     recorder.Recorder
	picker       *tui.Picker
	logger       *logger.Logger
}

// NewApp wires the adapter, the association store, and the crypto
// services from the validated client configuration.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	companion, err := adapter.NewHTTPCompanionAdapter(adapter.HTTPConfig{
		Address:        cfg.Companion.Address,
		RequestTimeout: cfg.Companion.RequestTimeout,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create companion adapter: %w", err)
	}

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("create association store: %w", err)
	}

	var rec recorder.Recorder = recorder.Nop{}
	if cfg.App.Debug {
		rec = recorder.NewDebugRecorder(cfg.App.DebugRecordLimit, log)
	}

	return &App{
		cfg:          cfg,
		companion:    companion,
		associations: store.NewAssociationRepository(db),
		cipher:       crypto.NewCipherService(),
		keyStore:     crypto.NewKeyStore(),
		recorder:     rec,
		picker:       tui.New(log),
		logger:       log,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	var address config.NetAddress
	if err := address.Set(a.cfg.Companion.Address); err != nil {
		return fmt.Errorf("parse companion address: %w", err)
	}

	conn, err := a.openConnection(ctx, address.Host, address.Port)
	if err != nil {
		return err
	}

	mode, value := service.SearchByURL, a.cfg.Query.URL
	if a.cfg.Query.SearchString != "" {
		mode, value = service.SearchByCustomString, a.cfg.Query.SearchString
	}

	credentials, err := conn.RetrieveCredentials(ctx, mode, value)
	if err != nil {
		return fmt.Errorf("retrieve credentials: %w", err)
	}

	return a.deliver(credentials)
}

// openConnection restores a stored association for the endpoint when one
// exists, and runs the full association ceremony otherwise. A stored
// bundle the companion no longer recognizes is dropped and replaced.
func (a *App) openConnection(ctx context.Context, host string, port int) (service.ConnectionService, error) {
	rec, err := a.associations.Get(ctx, host, port)
	switch {
	case err == nil:
		conn, restoreErr := a.restoreConnection(ctx, host, port, rec)
		if restoreErr == nil {
			return conn, nil
		}
		if !errors.Is(restoreErr, service.ErrAssociationRejected) {
			return nil, restoreErr
		}
		a.logger.Warn().Str("host", host).Int("port", port).
			Msg("stored association no longer recognized, re-associating")
		if err = a.associations.Delete(ctx, host, port); err != nil {
			return nil, fmt.Errorf("drop stale association: %w", err)
		}
	case !errors.Is(err, store.ErrAssociationNotFound):
		return nil, fmt.Errorf("load association: %w", err)
	}

	return a.associate(ctx, host, port)
}

func (a *App) restoreConnection(ctx context.Context, host string, port int, rec store.AssociationRecord) (service.ConnectionService, error) {
	key, err := a.keyStore.Open(rec.SealedKey, a.cfg.App.Passphrase)
	if err != nil {
		return nil, fmt.Errorf("unseal stored key: %w", err)
	}

	conn, err := service.RestoreConnection(models.ConnectionInfo{
		Host:     host,
		Port:     port,
		ClientID: rec.ClientID,
		Key:      key,
	}, a.companion, a.cipher, a.recorder, a.logger)
	if err != nil {
		return nil, fmt.Errorf("restore connection: %w", err)
	}

	verified, err := conn.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if !verified {
		return nil, fmt.Errorf("%w: companion rejected stored id %q", service.ErrAssociationRejected, rec.ClientID)
	}

	return conn, nil
}

func (a *App) associate(ctx context.Context, host string, port int) (service.ConnectionService, error) {
	conn := service.NewConnection(host, port, a.companion, a.cipher, a.recorder, a.logger)

	if _, err := conn.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := conn.Associate(ctx); err != nil {
		return nil, fmt.Errorf("associate: %w", err)
	}

	info := conn.Info()
	sealed, err := a.keyStore.Seal(info.Key, a.cfg.App.Passphrase)
	if err != nil {
		return nil, fmt.Errorf("seal key: %w", err)
	}

	err = a.associations.Save(ctx, store.AssociationRecord{
		Host:      host,
		Port:      port,
		ClientID:  info.ClientID,
		SealedKey: sealed,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("save association: %w", err)
	}

	return conn, nil
}

// deliver hands the result to the user: a single match goes straight to
// the clipboard, multiple matches go through the picker.
func (a *App) deliver(credentials []models.Credential) error {
	switch len(credentials) {
	case 0:
		fmt.Println("Ничего не найдено")
		return nil
	case 1:
		return a.copyPassword(credentials[0])
	}

	selected, err := a.picker.Pick(credentials)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return err
	}

	return a.copyPassword(selected)
}

func (a *App) copyPassword(credential models.Credential) error {
	if err := clipboard.WriteAll(credential.Password); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	label := credential.Name
	if label == "" {
		label = credential.Username
	}
	fmt.Printf("Пароль для %q скопирован в буфер обмена\n", label)

	return nil
}
