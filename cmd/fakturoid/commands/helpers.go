// Package commands implements the fakturoid CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoidclient"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	NotAvailable = "N/A"
)

// Common static errors used throughout the commands package.
var (
	ErrNotLoggedIn       = errors.New("not logged in. Use 'fakturoid login' to store credentials")
	ErrSubjectIDRequired = errors.New("subject id is required")
	ErrInvoiceIDRequired = errors.New("invoice id is required")
	ErrExpenseIDRequired = errors.New("expense id is required")
	ErrInvalidEvent      = errors.New("invalid event name")
	ErrNameRequired      = errors.New("subject name is required")
)

// CreateClient builds an API client from viper configuration (config file,
// environment, flags).
func CreateClient() (fakturoid.Client, error) {
	slug := viper.GetString("slug")
	clientID := viper.GetString("client_id")
	clientSecret := viper.GetString("client_secret")

	if slug == "" || clientID == "" || clientSecret == "" {
		return nil, ErrNotLoggedIn
	}

	config := &fakturoid.Config{
		Slug:         slug,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		BaseURL:      viper.GetString("base_url"),
	}

	if viper.GetBool("verbose") {
		logger, err := newZapLogger()
		if err != nil {
			return nil, err
		}

		config.Debug = true
		config.Logger = logger
	}

	client, err := fakturoidclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// zapLogger adapts a zap logger to the client's Logger interface.
type zapLogger struct {
	logger *zap.SugaredLogger
}

func newZapLogger() (*zapLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	return &zapLogger{logger: logger.Sugar()}, nil
}

func (l *zapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debugw(msg, flatten(fields)...)
}

func (l *zapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Infow(msg, flatten(fields)...)
}

func (l *zapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warnw(msg, flatten(fields)...)
}

func (l *zapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Errorw(msg, flatten(fields)...)
}

func flatten(fields map[string]interface{}) []interface{} {
	flat := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		flat = append(flat, key, value)
	}

	return flat
}

// renderEncoded writes the value as indented JSON or YAML. The caller handles
// the table format itself.
func renderEncoded(value interface{}, format string) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("encoding to JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("encoding to YAML: %w", err)
		}

		return nil
	}

	return nil
}

func stringOrNA(value *string) string {
	if value == nil || *value == "" {
		return NotAvailable
	}

	return *value
}

func int64OrNA(value *int64) string {
	if value == nil {
		return NotAvailable
	}

	return fmt.Sprintf("%d", *value)
}
