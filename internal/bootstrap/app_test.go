package bootstrap

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Domenick1991/ticketoffice/config"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LogConfig
		level     logrus.Level
		formatter logrus.Formatter
		wantErr   bool
	}{
		{name: "text", cfg: config.LogConfig{Level: "debug", Format: "text"}, level: logrus.DebugLevel, formatter: &logrus.TextFormatter{}},
		{name: "json", cfg: config.LogConfig{Level: "warn", Format: "json"}, level: logrus.WarnLevel, formatter: &logrus.JSONFormatter{}},
		{name: "bad level", cfg: config.LogConfig{Level: "loud", Format: "text"}, wantErr: true},
		{name: "bad format", cfg: config.LogConfig{Level: "info", Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.level, logger.GetLevel())
			assert.IsType(t, tt.formatter, logger.Formatter)
		})
	}
}

func TestRun(t *testing.T) {
	logger, hook := test.NewNullLogger()
	var out bytes.Buffer
	input := strings.Join([]string{
		"1", "02", "1088", "Ana", "Gómez", "300", "05/11/1990", "F", "1", "01/01/2999", "08:00",
		"3",
		"8",
	}, "\n") + "\n"

	err := Run(context.Background(), config.Default(), logger, strings.NewReader(input), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Tiquete comprado exitosamente.")
	assert.Contains(t, out.String(), "Documento: 1088")
	assert.Contains(t, out.String(), "Gracias por utilizar el sistema de tiquetes.")
	assert.Equal(t, "ticket office closed", hook.LastEntry().Message)
}
